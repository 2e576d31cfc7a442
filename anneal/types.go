// Package anneal - option bundle, result type and sentinel errors.
package anneal

import "errors"

// Sentinel errors returned by Search and Coverage. All parameter
// checks fail fast, before any search state is constructed; there is
// no partial-success mode.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("anneal: graph is nil")

	// ErrEmptyGraph indicates the graph has no vertices.
	ErrEmptyGraph = errors.New("anneal: graph has no vertices")

	// ErrBadMaxNode indicates MaxNode is not in [1, |V|].
	ErrBadMaxNode = errors.New("anneal: MaxNode out of range")

	// ErrBadIterations indicates a negative MaxIteration.
	// MaxIteration == 0 is valid and returns the scored initial solution.
	ErrBadIterations = errors.New("anneal: MaxIteration must be non-negative")

	// ErrBadTemperature indicates InitialTemp ≤ 0.
	ErrBadTemperature = errors.New("anneal: InitialTemp must be positive")

	// ErrBadCoolingRate indicates an explicitly set CoolingRate outside (0,1).
	ErrBadCoolingRate = errors.New("anneal: CoolingRate must be in (0,1)")

	// ErrBadEarlyStop indicates a negative EarlyStop budget.
	ErrBadEarlyStop = errors.New("anneal: EarlyStop must be non-negative")

	// ErrVertexNotFound indicates a cover member absent from the graph.
	ErrVertexNotFound = errors.New("anneal: cover vertex not found in graph")
)

// MovePolicy selects how the entering vertex of a swap is chosen.
type MovePolicy int

const (
	// MoveDegreeBiased picks the non-member vertex of maximum degree,
	// first-in-sorted-order on ties. This is the default policy.
	MoveDegreeBiased MovePolicy = iota

	// MoveUniform picks uniformly at random among non-members.
	MoveUniform
)

// CoolingLaw selects the temperature schedule.
type CoolingLaw int

const (
	// CoolGeometricDecay applies T *= rate·(1 − i/MaxIteration) each
	// iteration: geometric cooling with an extra linear decay factor
	// that drives the temperature toward zero as i approaches
	// MaxIteration. Default law; default rate 0.9.
	CoolGeometricDecay CoolingLaw = iota

	// CoolGeometric applies plain T *= rate each iteration.
	// Default rate 0.95.
	CoolGeometric
)

// Defaults for the option bundle.
const (
	// DefaultInitialTemp is the starting temperature.
	DefaultInitialTemp = 1500.0

	// DefaultMaxIteration bounds the number of iterations.
	DefaultMaxIteration = 1500

	// DefaultEarlyStop is the stagnation budget: the search stops after
	// this many consecutive accepted-but-not-improving moves.
	DefaultEarlyStop = 150

	// EarlyStopDisabled disables the stagnation budget entirely.
	EarlyStopDisabled = 0

	// Per-law default cooling rates, applied when CoolingRate is left
	// unset (zero).
	defaultDecayRate     = 0.9
	defaultGeometricRate = 0.95
)

// Options configures a Search run.
//
// MaxNode      – exact cover cardinality (required, 1 ≤ MaxNode ≤ |V|).
// InitialTemp  – starting temperature (> 0). Default 1500.
// CoolingRate  – per-iteration cooling factor in (0,1). Zero means
// "use the law's default": 0.9 for CoolGeometricDecay,
// 0.95 for CoolGeometric.
// MaxIteration – iteration bound (≥ 0). Default 1500.
// EarlyStop    – stagnation budget (≥ 0); EarlyStopDisabled (0) turns
// the budget off. Default 150.
// MovePolicy   – entering-vertex selection. Default MoveDegreeBiased.
// CoolingLaw   – temperature schedule. Default CoolGeometricDecay.
// Seed         – RNG seed; 0 maps to a fixed default stream.
type Options struct {
	MaxNode      int
	InitialTemp  float64
	CoolingRate  float64
	MaxIteration int
	EarlyStop    int
	MovePolicy   MovePolicy
	CoolingLaw   CoolingLaw
	Seed         int64
}

// Option is a functional option for configuring Search.
type Option func(*Options)

// WithInitialTemp sets the starting temperature. Must be positive;
// validated by Search (ErrBadTemperature).
func WithInitialTemp(t float64) Option {
	return func(o *Options) { o.InitialTemp = t }
}

// WithCoolingRate sets the per-iteration cooling factor explicitly.
// Must lie in (0,1); validated by Search (ErrBadCoolingRate).
func WithCoolingRate(r float64) Option {
	return func(o *Options) { o.CoolingRate = r }
}

// WithMaxIteration sets the iteration bound. Zero is allowed and
// returns the scored initial solution; negative values are rejected.
func WithMaxIteration(n int) Option {
	return func(o *Options) { o.MaxIteration = n }
}

// WithEarlyStop sets the stagnation budget. Pass EarlyStopDisabled
// (or use WithoutEarlyStop) to run the full iteration budget.
func WithEarlyStop(n int) Option {
	return func(o *Options) { o.EarlyStop = n }
}

// WithoutEarlyStop disables the stagnation budget.
func WithoutEarlyStop() Option {
	return func(o *Options) { o.EarlyStop = EarlyStopDisabled }
}

// WithMovePolicy selects the entering-vertex policy.
func WithMovePolicy(p MovePolicy) Option {
	return func(o *Options) { o.MovePolicy = p }
}

// WithCoolingLaw selects the temperature schedule.
func WithCoolingLaw(law CoolingLaw) Option {
	return func(o *Options) { o.CoolingLaw = law }
}

// WithSeed fixes the RNG seed for reproducible runs. Seed 0 maps to a
// fixed default stream, so the zero value is still deterministic.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// DefaultOptions returns the canonical configuration for the given
// cover size: the "improved" variant of the heuristic (degree-biased
// moves, geometric-decay cooling, early stop at 150).
func DefaultOptions(maxNode int) Options {
	return Options{
		MaxNode:      maxNode,
		InitialTemp:  DefaultInitialTemp,
		CoolingRate:  0, // resolved per CoolingLaw at validation time
		MaxIteration: DefaultMaxIteration,
		EarlyStop:    DefaultEarlyStop,
		MovePolicy:   MoveDegreeBiased,
		CoolingLaw:   CoolGeometricDecay,
		Seed:         0,
	}
}

// Result is the outcome of a Search run: the best cover observed
// across the whole walk and the number of edges it covers.
type Result struct {
	// Cover lists the member vertex IDs in sorted order.
	Cover []string

	// Covered is the number of edges with at least one endpoint in Cover.
	Covered int
}
