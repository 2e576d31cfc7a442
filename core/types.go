// Package core defines the Graph and Edge types and the NewGraph
// constructor. Method implementations live in methods.go.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that an empty string was used as a vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates a parallel edge was attempted; the Graph
	// stores at most one edge per unordered vertex pair.
	ErrDuplicateEdge = errors.New("core: duplicate edge")
)

// Edge is an undirected connection between two vertices.
//
// From and To record the endpoint order in which the edge was added;
// the orientation carries no meaning. A self-loop has From == To.
type Edge struct {
	// ID uniquely identifies this edge within its Graph.
	ID string

	// From is the first endpoint's vertex ID.
	From string

	// To is the second endpoint's vertex ID.
	To string
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an in-memory undirected simple graph.
//
// mu guards vertices, edges, edgeList and adjacency. edgeList preserves
// insertion order so Edges() is deterministic for a fixed build sequence.
type Graph struct {
	mu sync.RWMutex

	allowLoops bool

	nextEdgeID uint64

	vertices map[string]struct{}
	edges    map[string]*Edge
	edgeList []*Edge

	// adjacency[u][v] = edge ID of the (u,v) edge.
	// Both orientations are stored; a loop is stored once at [v][v].
	adjacency map[string]map[string]string
}

// NewGraph creates an empty Graph. By default self-loops are rejected;
// pass WithLoops() to permit them.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]struct{}),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Looped reports whether self-loops are permitted by policy.
// Complexity: O(1).
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}
