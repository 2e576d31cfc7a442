package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "mincover.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoadConfig_Full(t *testing.T) {
	path := writeConfig(t, `
[defaults]
initial_temp  = 2000.0
cooling_rate  = 0.85
max_iteration = 300
early_stop    = 0
move_policy   = "uniform"
cooling_law   = "geometric"
seed          = 42
repeats       = 3

[[graphs]]
name     = "toy"
path     = "toy.gexf"
max_node = 4

[[graphs]]
path     = "unnamed.gexf"
max_node = 2
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, int64(42), cfg.Defaults.Seed)
	assert.Equal(t, 3, cfg.Defaults.Repeats)

	specs := cfg.Specs()
	require.Len(t, specs, 2)
	assert.Equal(t, "toy", specs[0].Name)
	assert.Equal(t, "unnamed.gexf", specs[1].Name, "name falls back to path")

	opts, err := cfg.SearchOptions()
	require.NoError(t, err)
	assert.Len(t, opts, 6, "all six search keys were set")
}

func TestLoadConfig_OmittedKeysAreNotForwarded(t *testing.T) {
	path := writeConfig(t, `
[[graphs]]
name     = "toy"
path     = "toy.gexf"
max_node = 4
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	opts, err := cfg.SearchOptions()
	require.NoError(t, err)
	assert.Empty(t, opts, "anneal defaults take over")
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
		assert.Error(t, err)
	})

	t.Run("no graphs", func(t *testing.T) {
		path := writeConfig(t, `[defaults]`+"\n"+`seed = 1`)
		_, err := LoadConfig(path)
		assert.ErrorIs(t, err, ErrNoGraphs)
	})

	t.Run("graph without path", func(t *testing.T) {
		path := writeConfig(t, `
[[graphs]]
name     = "toy"
max_node = 4
`)
		_, err := LoadConfig(path)
		assert.Error(t, err)
	})

	t.Run("bad move_policy", func(t *testing.T) {
		path := writeConfig(t, `
[defaults]
move_policy = "greedy"

[[graphs]]
path     = "toy.gexf"
max_node = 4
`)
		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		_, err = cfg.SearchOptions()
		assert.ErrorContains(t, err, "move_policy")
	})

	t.Run("bad cooling_law", func(t *testing.T) {
		path := writeConfig(t, `
[defaults]
cooling_law = "linear"

[[graphs]]
path     = "toy.gexf"
max_node = 4
`)
		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		_, err = cfg.SearchOptions()
		assert.ErrorContains(t, err, "cooling_law")
	})
}
