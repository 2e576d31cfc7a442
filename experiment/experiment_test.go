package experiment_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mincover/anneal"
	"github.com/katalvlaran/mincover/builder"
	"github.com/katalvlaran/mincover/experiment"
)

func quietRunner(repeats int) *experiment.Runner {
	return &experiment.Runner{
		Repeats: repeats,
		Seed:    7,
		Logger:  log.New(io.Discard),
	}
}

const starDoc = `<gexf><graph>
  <nodes>
    <node id="hub"/><node id="l1"/><node id="l2"/><node id="l3"/>
  </nodes>
  <edges>
    <edge source="hub" target="l1"/>
    <edge source="hub" target="l2"/>
    <edge source="hub" target="l3"/>
  </edges>
</graph></gexf>`

func TestRunner_RunGraph(t *testing.T) {
	g, err := builder.Star(6)
	require.NoError(t, err)

	sum, err := quietRunner(5).RunGraph("star", g, 1)
	require.NoError(t, err)

	assert.Equal(t, "star", sum.Name)
	assert.Equal(t, 6, sum.Vertices)
	assert.Equal(t, 5, sum.Edges)
	assert.Equal(t, 1, sum.MaxNode)

	// Every repeat finds the hub, so the statistics are degenerate.
	assert.Equal(t, 5, sum.BestCovered)
	assert.Equal(t, []string{builder.CenterID}, sum.BestCover)
	assert.InDelta(t, 5.0, sum.MeanCovered, 1e-9)
	assert.InDelta(t, 0.0, sum.StdDevCovered, 1e-9)
	assert.Greater(t, sum.MeanRuntime, time.Duration(0))
}

func TestRunGraph_SingleRepeatHasZeroStdDev(t *testing.T) {
	g, err := builder.Cycle(5)
	require.NoError(t, err)

	sum, err := quietRunner(0).RunGraph("cycle", g, 2)
	require.NoError(t, err)
	assert.Zero(t, sum.StdDevCovered)
	assert.InDelta(t, float64(sum.BestCovered), sum.MeanCovered, 1e-9)
}

func TestRunGraph_SearchErrorPropagates(t *testing.T) {
	g, err := builder.Cycle(4)
	require.NoError(t, err)

	_, err = quietRunner(1).RunGraph("cycle", g, 99)
	assert.ErrorIs(t, err, anneal.ErrBadMaxNode)
}

func TestRunGraph_Reproducible(t *testing.T) {
	g, err := builder.RandomSparse(30, 0.15, 3)
	require.NoError(t, err)

	a, err := quietRunner(4).RunGraph("sparse", g, 6)
	require.NoError(t, err)
	b, err := quietRunner(4).RunGraph("sparse", g, 6)
	require.NoError(t, err)

	assert.Equal(t, a.BestCovered, b.BestCovered)
	assert.Equal(t, a.BestCover, b.BestCover)
	assert.Equal(t, a.MeanCovered, b.MeanCovered)
	assert.Equal(t, a.StdDevCovered, b.StdDevCovered)
}

func TestRun_BatchSkipsBrokenSpecs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "star.gexf")
	require.NoError(t, os.WriteFile(path, []byte(starDoc), 0o600))

	specs := []experiment.Spec{
		{Name: "missing", Path: filepath.Join(dir, "nope.gexf"), MaxNode: 1},
		{Name: "bad-maxnode", Path: path, MaxNode: 0},
		{Name: "too-large", Path: path, MaxNode: 50},
		{Name: "star", Path: path, MaxNode: 1},
	}

	sums, err := quietRunner(3).Run(specs)
	require.NoError(t, err)
	require.Len(t, sums, 1, "only the valid spec survives")

	assert.Equal(t, "star", sums[0].Name)
	assert.Equal(t, 3, sums[0].BestCovered)
	assert.Equal(t, []string{"hub"}, sums[0].BestCover)
}

func TestRun_EmptyBatch(t *testing.T) {
	_, err := quietRunner(1).Run(nil)
	assert.ErrorIs(t, err, experiment.ErrNoSpecs)
}
