// Package anneal - cover state with incremental coverage maintenance.
package anneal

import (
	"sort"

	"github.com/katalvlaran/mincover/core"
)

// Coverage counts, from scratch, the edges of g with at least one
// endpoint in members. It is the reference evaluator: the incremental
// bookkeeping inside the search must agree with it on every reachable
// state.
//
// Errors: ErrNilGraph; ErrVertexNotFound if a member is absent from g.
// Complexity: O(k + E) where k = len(members).
func Coverage(g *core.Graph, members []string) (int, error) {
	if g == nil {
		return 0, ErrNilGraph
	}

	in := make(map[string]struct{}, len(members))
	for _, id := range members {
		if !g.HasVertex(id) {
			return 0, ErrVertexNotFound
		}
		in[id] = struct{}{}
	}

	covered := 0
	for _, e := range g.Edges() {
		if _, ok := in[e.From]; ok {
			covered++

			continue
		}
		if _, ok := in[e.To]; ok {
			covered++
		}
	}

	return covered, nil
}

// edgeRef is an immutable endpoint pair; a self-loop has u == v.
type edgeRef struct {
	u, v string
}

// coverState is the mutable candidate solution: a member set of fixed
// cardinality plus incrementally maintained coverage counts.
//
// deg[i] is the number of endpoints of edge i currently in the member
// set (0, 1 or 2; a covered self-loop counts 2). covered is the number
// of edges with deg > 0 and always equals what Coverage would recount.
type coverState struct {
	edges    []edgeRef
	incident map[string][]int // vertex → indices of incident edges; loops listed once

	deg     []int
	covered int

	members    map[string]struct{}
	memberList []string       // mirrors members for O(1) uniform picks
	memberPos  map[string]int // member → index in memberList
}

// newCoverState indexes the graph's edges and scores the initial
// member set.
// Complexity: O(V + E + k).
func newCoverState(g *core.Graph, members []string) *coverState {
	raw := g.Edges()

	s := &coverState{
		edges:      make([]edgeRef, len(raw)),
		incident:   make(map[string][]int),
		deg:        make([]int, len(raw)),
		members:    make(map[string]struct{}, len(members)),
		memberList: append([]string(nil), members...),
		memberPos:  make(map[string]int, len(members)),
	}

	for i, e := range raw {
		s.edges[i] = edgeRef{u: e.From, v: e.To}
		s.incident[e.From] = append(s.incident[e.From], i)
		if e.To != e.From {
			s.incident[e.To] = append(s.incident[e.To], i)
		}
	}

	for pos, id := range s.memberList {
		s.members[id] = struct{}{}
		s.memberPos[id] = pos
	}

	for i, e := range s.edges {
		s.deg[i] = s.endpointCount(e)
		if s.deg[i] > 0 {
			s.covered++
		}
	}

	return s
}

// endpointCount returns how many endpoints of e are members
// (a member self-loop counts 2).
func (s *coverState) endpointCount(e edgeRef) int {
	if e.u == e.v {
		if _, ok := s.members[e.u]; ok {
			return 2
		}

		return 0
	}

	n := 0
	if _, ok := s.members[e.u]; ok {
		n++
	}
	if _, ok := s.members[e.v]; ok {
		n++
	}

	return n
}

// mult returns how many endpoints of edge i equal id (2 for a loop at id).
func (s *coverState) mult(i int, id string) int {
	e := s.edges[i]
	n := 0
	if e.u == id {
		n++
	}
	if e.v == id {
		n++
	}

	return n
}

// swapDelta returns the coverage change of replacing member out with
// non-member in, without mutating the state.
//
// Only edges incident to out or in can change covered status: an edge
// loses coverage iff out was its sole member endpoint and in is not an
// endpoint; an edge gains coverage iff it was uncovered and in is an
// endpoint. The edge {out,in}, if present, stays covered either way.
// Complexity: O(deg(out) + deg(in)).
func (s *coverState) swapDelta(out, in string) int {
	delta := 0

	for _, i := range s.incident[out] {
		// out is a member, so deg > 0 here.
		if s.deg[i]-s.mult(i, out)+s.mult(i, in) == 0 {
			delta--
		}
	}

	for _, i := range s.incident[in] {
		if s.mult(i, out) > 0 {
			continue // the {out,in} edge was handled above
		}
		if s.deg[i] == 0 {
			delta++
		}
	}

	return delta
}

// applySwap commits the out→in swap, updating membership, per-edge
// endpoint counts and the cached covered total. Cardinality is
// preserved: exactly one removal and one addition.
// Complexity: O(deg(out) + deg(in)).
func (s *coverState) applySwap(out, in string) {
	for _, i := range s.incident[out] {
		s.deg[i] -= s.mult(i, out)
		if s.deg[i] == 0 {
			s.covered--
		}
	}

	delete(s.members, out)
	s.members[in] = struct{}{}

	pos := s.memberPos[out]
	delete(s.memberPos, out)
	s.memberList[pos] = in
	s.memberPos[in] = pos

	for _, i := range s.incident[in] {
		wasZero := s.deg[i] == 0
		s.deg[i] += s.mult(i, in)
		if wasZero && s.deg[i] > 0 {
			s.covered++
		}
	}
}

// size returns the member-set cardinality.
func (s *coverState) size() int { return len(s.memberList) }

// snapshot returns the member IDs as a sorted copy, detached from the
// mutable state.
// Complexity: O(k log k).
func (s *coverState) snapshot() []string {
	out := append([]string(nil), s.memberList...)
	sort.Strings(out)

	return out
}

// recount recomputes covered from scratch; used to cross-check the
// incremental bookkeeping in tests.
// Complexity: O(E).
func (s *coverState) recount() int {
	covered := 0
	for _, e := range s.edges {
		if s.endpointCount(e) > 0 {
			covered++
		}
	}

	return covered
}
