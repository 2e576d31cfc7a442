package core

import (
	"sort"
	"strconv"
)

// AddVertex inserts a vertex with the given ID. Adding an existing
// vertex is a no-op. Returns ErrEmptyVertexID for the empty string.
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertexLocked(id)

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// AddEdge inserts an undirected edge between from and to, inserting
// either endpoint first if missing. Returns the new edge's ID.
//
// Errors:
//   - ErrEmptyVertexID  if either endpoint ID is empty.
//   - ErrLoopNotAllowed if from == to and loops are disabled.
//   - ErrDuplicateEdge  if an edge between the endpoints already exists.
//
// Complexity: O(1).
func (g *Graph) AddEdge(from, to string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.Looped() {
		return "", ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, dup := g.adjacency[from][to]; dup {
		return "", ErrDuplicateEdge
	}

	g.ensureVertexLocked(from)
	g.ensureVertexLocked(to)

	g.nextEdgeID++
	eid := "e" + strconv.FormatUint(g.nextEdgeID, 10)

	e := &Edge{ID: eid, From: from, To: to}
	g.edges[eid] = e
	g.edgeList = append(g.edgeList, e)

	g.linkLocked(from, to, eid)
	if from != to {
		g.linkLocked(to, from, eid)
	}

	return eid, nil
}

// HasEdge reports whether an edge between from and to exists
// (orientation-insensitive).
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[from][to]

	return ok
}

// Vertices returns all vertex IDs in sorted order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.mu.RUnlock()

	sort.Strings(ids)

	return ids
}

// Edges returns copies of all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, len(g.edgeList))
	for i, e := range g.edgeList {
		cp := *e
		out[i] = &cp
	}

	return out
}

// Degree returns the degree of the given vertex. A self-loop
// contributes 2, the usual graph-theoretic convention.
// Returns ErrVertexNotFound for unknown IDs.
// Complexity: O(deg(v)).
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}

	deg := 0
	for to := range g.adjacency[id] {
		if to == id {
			deg += 2 // loop: both endpoints are id
		} else {
			deg++
		}
	}

	return deg, nil
}

// NeighborIDs returns the sorted IDs of all vertices adjacent to id.
// A looped vertex lists itself. Returns ErrVertexNotFound for unknown IDs.
// Complexity: O(deg(v) log deg(v)).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()

	if _, ok := g.vertices[id]; !ok {
		g.mu.RUnlock()

		return nil, ErrVertexNotFound
	}

	out := make([]string, 0, len(g.adjacency[id]))
	for to := range g.adjacency[id] {
		out = append(out, to)
	}
	g.mu.RUnlock()

	sort.Strings(out)

	return out, nil
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edgeList)
}

// Clone returns a deep copy of the graph. The copy shares no state
// with the original and preserves edge insertion order.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := NewGraph()
	c.allowLoops = g.allowLoops
	c.nextEdgeID = g.nextEdgeID

	for id := range g.vertices {
		c.vertices[id] = struct{}{}
	}
	for _, e := range g.edgeList {
		cp := *e
		c.edges[cp.ID] = &cp
		c.edgeList = append(c.edgeList, &cp)
		c.linkLocked(cp.From, cp.To, cp.ID)
		if cp.From != cp.To {
			c.linkLocked(cp.To, cp.From, cp.ID)
		}
	}

	return c
}

// ensureVertexLocked inserts id into the vertex set. Caller holds mu.
func (g *Graph) ensureVertexLocked(id string) {
	if _, ok := g.vertices[id]; !ok {
		g.vertices[id] = struct{}{}
	}
}

// linkLocked records the adjacency entry from→to. Caller holds mu.
func (g *Graph) linkLocked(from, to, eid string) {
	if g.adjacency[from] == nil {
		g.adjacency[from] = make(map[string]string)
	}
	g.adjacency[from][to] = eid
}
