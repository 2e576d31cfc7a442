package experiment

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/mincover/anneal"
	"github.com/katalvlaran/mincover/core"
	"github.com/katalvlaran/mincover/gexf"
)

// ErrNoSpecs is returned by Run when the batch is empty.
var ErrNoSpecs = errors.New("experiment: no specs to run")

// Spec names one dataset of a batch: a GEXF file on disk and the cover
// cardinality to search for.
type Spec struct {
	Name    string
	Path    string
	MaxNode int
}

// Summary aggregates the repeated runs over one dataset.
type Summary struct {
	Name     string
	Vertices int
	Edges    int
	MaxNode  int

	// BestCover is the best solution seen across all repeats; its score
	// is BestCovered.
	BestCover   []string
	BestCovered int

	MeanCovered   float64
	StdDevCovered float64
	MeanRuntime   time.Duration
}

// Runner executes a batch of annealing experiments.
//
// Repeats is the number of searches per dataset (min 1). Seed is the
// parent seed; each repeat derives its own stream from it, so a fixed
// parent seed reproduces the whole batch. Options are forwarded to
// every anneal.Search call (a per-repeat seed is appended last and
// wins over any WithSeed in Options).
type Runner struct {
	Repeats int
	Seed    int64
	Logger  *log.Logger
	Options []anneal.Option
}

// Run loads and executes every spec in order. Specs that fail to load
// or fail validation are logged and skipped, the rest of the batch
// still runs. Returns ErrNoSpecs for an empty batch.
func (r *Runner) Run(specs []Spec) ([]Summary, error) {
	if len(specs) == 0 {
		return nil, ErrNoSpecs
	}

	logger := r.logger()
	summaries := make([]Summary, 0, len(specs))

	for _, spec := range specs {
		if spec.MaxNode <= 0 {
			logger.Warn("skipping spec: MaxNode must be positive",
				"name", spec.Name, "maxNode", spec.MaxNode)

			continue
		}

		g, err := gexf.ParseFile(spec.Path)
		if err != nil {
			logger.Error("skipping spec: cannot load graph",
				"name", spec.Name, "path", spec.Path, "err", err)

			continue
		}

		sum, err := r.RunGraph(spec.Name, g, spec.MaxNode)
		if err != nil {
			logger.Error("skipping spec: search failed",
				"name", spec.Name, "err", err)

			continue
		}
		summaries = append(summaries, sum)
	}

	return summaries, nil
}

// RunGraph repeats the search over an already-built graph and folds the
// outcomes into one Summary. Errors from anneal.Search (nil/empty
// graph, MaxNode out of range) are returned as-is.
func (r *Runner) RunGraph(name string, g *core.Graph, maxNode int) (Summary, error) {
	logger := r.logger()
	repeats := r.Repeats
	if repeats < 1 {
		repeats = 1
	}

	sum := Summary{
		Name:     name,
		Vertices: g.VertexCount(),
		Edges:    g.EdgeCount(),
		MaxNode:  maxNode,
	}

	scores := make([]float64, 0, repeats)
	runtimes := make([]float64, 0, repeats)

	start := time.Now()
	for i := 0; i < repeats; i++ {
		opts := make([]anneal.Option, 0, len(r.Options)+1)
		opts = append(opts, r.Options...)
		opts = append(opts, anneal.WithSeed(anneal.DeriveSeed(r.Seed, uint64(i))))

		runStart := time.Now()
		res, err := anneal.Search(g, maxNode, opts...)
		if err != nil {
			return Summary{}, err
		}

		scores = append(scores, float64(res.Covered))
		runtimes = append(runtimes, float64(time.Since(runStart)))

		if res.Covered > sum.BestCovered || sum.BestCover == nil {
			sum.BestCovered = res.Covered
			sum.BestCover = res.Cover
		}
	}

	sum.MeanCovered = stat.Mean(scores, nil)
	if repeats > 1 {
		sum.StdDevCovered = stat.StdDev(scores, nil)
	}
	sum.MeanRuntime = time.Duration(stat.Mean(runtimes, nil))

	logger.Info("experiment done",
		"name", name,
		"vertices", sum.Vertices,
		"edges", sum.Edges,
		"maxNode", maxNode,
		"repeats", repeats,
		"best", sum.BestCovered,
		"mean", sum.MeanCovered,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)

	return sum, nil
}

func (r *Runner) logger() *log.Logger {
	if r.Logger != nil {
		return r.Logger
	}

	return log.Default()
}
