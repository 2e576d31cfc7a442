package builder

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/katalvlaran/mincover/core"
)

// Sentinel errors returned by topology constructors.
var (
	// ErrTooFewVertices indicates n is below the constructor's minimum.
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrInvalidProbability indicates an edge probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability not in [0,1]")
)

// CenterID is the fixed hub vertex ID used by Star.
const CenterID = "Center"

// vertexID returns the canonical ID for vertex index i ("V0", "V1", …).
func vertexID(i int) string {
	return "V" + strconv.Itoa(i)
}

// Cycle builds the simple cycle C_n: V0—V1—…—V(n−1)—V0.
// Requires n ≥ 3.
// Complexity: O(n).
func Cycle(n int) (*core.Graph, error) {
	const min = 3
	if n < min {
		return nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, min, ErrTooFewVertices)
	}

	g := core.NewGraph()
	for i := 0; i < n; i++ {
		if err := g.AddVertex(vertexID(i)); err != nil {
			return nil, fmt.Errorf("Cycle: %w", err)
		}
	}
	for i := 0; i < n; i++ {
		if _, err := g.AddEdge(vertexID(i), vertexID((i+1)%n)); err != nil {
			return nil, fmt.Errorf("Cycle: %w", err)
		}
	}

	return g, nil
}

// Path builds the simple path P_n: V0—V1—…—V(n−1).
// Requires n ≥ 2.
// Complexity: O(n).
func Path(n int) (*core.Graph, error) {
	const min = 2
	if n < min {
		return nil, fmt.Errorf("Path: n=%d < min=%d: %w", n, min, ErrTooFewVertices)
	}

	g := core.NewGraph()
	for i := 0; i < n; i++ {
		if err := g.AddVertex(vertexID(i)); err != nil {
			return nil, fmt.Errorf("Path: %w", err)
		}
	}
	for i := 1; i < n; i++ {
		if _, err := g.AddEdge(vertexID(i-1), vertexID(i)); err != nil {
			return nil, fmt.Errorf("Path: %w", err)
		}
	}

	return g, nil
}

// Star builds a star with hub CenterID and n−1 leaves V1..V(n−1),
// spokes emitted in ascending leaf order.
// Requires n ≥ 2.
// Complexity: O(n).
func Star(n int) (*core.Graph, error) {
	const min = 2
	if n < min {
		return nil, fmt.Errorf("Star: n=%d < min=%d: %w", n, min, ErrTooFewVertices)
	}

	g := core.NewGraph()
	if err := g.AddVertex(CenterID); err != nil {
		return nil, fmt.Errorf("Star: %w", err)
	}
	for i := 1; i < n; i++ {
		if _, err := g.AddEdge(CenterID, vertexID(i)); err != nil {
			return nil, fmt.Errorf("Star: %w", err)
		}
	}

	return g, nil
}

// Complete builds the complete simple graph K_n with edges emitted in
// lexicographic index order (i < j).
// Requires n ≥ 1.
// Complexity: O(n²).
func Complete(n int) (*core.Graph, error) {
	const min = 1
	if n < min {
		return nil, fmt.Errorf("Complete: n=%d < min=%d: %w", n, min, ErrTooFewVertices)
	}

	g := core.NewGraph()
	for i := 0; i < n; i++ {
		if err := g.AddVertex(vertexID(i)); err != nil {
			return nil, fmt.Errorf("Complete: %w", err)
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if _, err := g.AddEdge(vertexID(i), vertexID(j)); err != nil {
				return nil, fmt.Errorf("Complete: %w", err)
			}
		}
	}

	return g, nil
}

// RandomSparse builds an Erdős–Rényi G(n, p) graph: each unordered
// pair {i, j} with i < j is included independently with probability p.
// The trial order is fixed (i ascending, then j ascending), so the
// result is deterministic for a fixed seed.
// Requires n ≥ 1 and 0 ≤ p ≤ 1.
// Complexity: O(n²) Bernoulli trials.
func RandomSparse(n int, p float64, seed int64) (*core.Graph, error) {
	const min = 1
	if n < min {
		return nil, fmt.Errorf("RandomSparse: n=%d < min=%d: %w", n, min, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("RandomSparse: p=%g: %w", p, ErrInvalidProbability)
	}

	g := core.NewGraph()
	for i := 0; i < n; i++ {
		if err := g.AddVertex(vertexID(i)); err != nil {
			return nil, fmt.Errorf("RandomSparse: %w", err)
		}
	}

	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() >= p {
				continue
			}
			if _, err := g.AddEdge(vertexID(i), vertexID(j)); err != nil {
				return nil, fmt.Errorf("RandomSparse: %w", err)
			}
		}
	}

	return g, nil
}
