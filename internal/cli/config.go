package cli

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/mincover/anneal"
	"github.com/katalvlaran/mincover/experiment"
)

// ErrNoGraphs - the config file declares no [[graphs]] entries.
var ErrNoGraphs = errors.New("cli: config declares no graphs")

// Config mirrors the TOML config consumed by the run command:
//
//	[defaults]
//	initial_temp  = 1500.0
//	cooling_rate  = 0.9
//	max_iteration = 1500
//	early_stop    = 150
//	move_policy   = "degree"     # or "uniform"
//	cooling_law   = "decay"      # or "geometric"
//	seed          = 7
//	repeats       = 5
//
//	[[graphs]]
//	name     = "yeast"
//	path     = "datasets/yeast.gexf"
//	max_node = 300
//
// Every [defaults] key is optional; anneal.DefaultOptions fills the
// gaps. max_iteration = 0 is honored (score the initial solution) and
// early_stop = 0 disables the stagnation budget, so presence in the
// file, not the zero value, decides whether a key is forwarded.
type Config struct {
	Defaults Defaults     `toml:"defaults"`
	Graphs   []GraphEntry `toml:"graphs"`

	meta toml.MetaData
}

// Defaults is the [defaults] table.
type Defaults struct {
	InitialTemp  float64 `toml:"initial_temp"`
	CoolingRate  float64 `toml:"cooling_rate"`
	MaxIteration int     `toml:"max_iteration"`
	EarlyStop    int     `toml:"early_stop"`
	MovePolicy   string  `toml:"move_policy"`
	CoolingLaw   string  `toml:"cooling_law"`
	Seed         int64   `toml:"seed"`
	Repeats      int     `toml:"repeats"`
}

// GraphEntry is one [[graphs]] table.
type GraphEntry struct {
	Name    string `toml:"name"`
	Path    string `toml:"path"`
	MaxNode int    `toml:"max_node"`
}

// LoadConfig reads and validates a TOML config file.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("cli: load config %s: %w", path, err)
	}
	cfg.meta = meta

	if len(cfg.Graphs) == 0 {
		return nil, ErrNoGraphs
	}
	for i, g := range cfg.Graphs {
		if g.Name == "" {
			cfg.Graphs[i].Name = g.Path
		}
		if g.Path == "" {
			return nil, fmt.Errorf("cli: graph %q has no path", g.Name)
		}
	}

	return &cfg, nil
}

// Specs converts the [[graphs]] entries to experiment specs.
func (c *Config) Specs() []experiment.Spec {
	specs := make([]experiment.Spec, len(c.Graphs))
	for i, g := range c.Graphs {
		specs[i] = experiment.Spec{Name: g.Name, Path: g.Path, MaxNode: g.MaxNode}
	}

	return specs
}

// SearchOptions translates the [defaults] table into anneal options,
// forwarding only the keys actually present in the file.
func (c *Config) SearchOptions() ([]anneal.Option, error) {
	var opts []anneal.Option

	if c.meta.IsDefined("defaults", "initial_temp") {
		opts = append(opts, anneal.WithInitialTemp(c.Defaults.InitialTemp))
	}
	if c.meta.IsDefined("defaults", "cooling_rate") {
		opts = append(opts, anneal.WithCoolingRate(c.Defaults.CoolingRate))
	}
	if c.meta.IsDefined("defaults", "max_iteration") {
		opts = append(opts, anneal.WithMaxIteration(c.Defaults.MaxIteration))
	}
	if c.meta.IsDefined("defaults", "early_stop") {
		opts = append(opts, anneal.WithEarlyStop(c.Defaults.EarlyStop))
	}

	if c.meta.IsDefined("defaults", "move_policy") {
		switch c.Defaults.MovePolicy {
		case "degree":
			opts = append(opts, anneal.WithMovePolicy(anneal.MoveDegreeBiased))
		case "uniform":
			opts = append(opts, anneal.WithMovePolicy(anneal.MoveUniform))
		default:
			return nil, fmt.Errorf("cli: unknown move_policy %q (want degree|uniform)", c.Defaults.MovePolicy)
		}
	}

	if c.meta.IsDefined("defaults", "cooling_law") {
		switch c.Defaults.CoolingLaw {
		case "decay":
			opts = append(opts, anneal.WithCoolingLaw(anneal.CoolGeometricDecay))
		case "geometric":
			opts = append(opts, anneal.WithCoolingLaw(anneal.CoolGeometric))
		default:
			return nil, fmt.Errorf("cli: unknown cooling_law %q (want decay|geometric)", c.Defaults.CoolingLaw)
		}
	}

	return opts, nil
}
