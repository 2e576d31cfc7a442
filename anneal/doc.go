// Package anneal approximates the fixed-cardinality Minimum Vertex
// Cover problem with simulated annealing.
//
// Overview:
//
//   - The search keeps a candidate cover of exactly MaxNode vertices
//     and repeatedly proposes swap moves: one member leaves (picked
//     uniformly at random), one non-member enters. Under the default
//     MoveDegreeBiased policy the entering vertex is the non-member of
//     maximum degree; MoveUniform picks uniformly instead.
//   - A move is scored by the number of edges covered by the candidate
//     set. Improvements over the best score seen so far are always
//     accepted; worse moves are accepted with probability
//     exp(delta/temperature), where delta compares against the
//     best-ever score, not the current one. That harsher-than-textbook
//     acceptance test is a deliberate characteristic of this heuristic.
//   - Temperature starts at InitialTemp and cools each iteration, by
//     CoolGeometricDecay (T *= rate·(1 − i/MaxIteration), the default)
//     or plain CoolGeometric (T *= rate). Once temperature reaches
//     zero the probabilistic branch rejects instead of evaluating exp
//     with a non-positive divisor.
//   - The loop stops at MaxIteration, or earlier after EarlyStop
//     consecutive accepted-but-not-improving moves. Rejected moves do
//     not count toward stagnation. The best solution seen is returned,
//     which need not be the final one.
//
// Coverage is maintained incrementally: each vertex's incident edges
// are indexed once and a swap touches only O(deg(out)+deg(in)) edges.
// The incremental count always equals a from-scratch recount; the
// exported Coverage function provides the from-scratch form.
//
// Complexity:
//
//   - Setup: O(V + E) for the incidence index and initial count.
//   - Per iteration: O(V) to scan non-members for the entering vertex
//     plus O(deg(out) + deg(in)) to score and apply the swap.
//
// Determinism:
//
//   - All randomness flows from the injected Seed; a Seed of 0 maps to
//     a fixed default stream. Same graph, options and seed ⇒ identical
//     Result.
//
// Error handling (sentinel errors, checked before any state exists):
//
//   - ErrNilGraph, ErrEmptyGraph
//   - ErrBadMaxNode       — MaxNode ≤ 0 or MaxNode > |V|
//   - ErrBadIterations    — MaxIteration < 0 (0 is valid: the scored
//     initial solution is returned unchanged)
//   - ErrBadTemperature   — InitialTemp ≤ 0
//   - ErrBadCoolingRate   — explicit rate outside (0,1)
//   - ErrBadEarlyStop     — EarlyStop < 0
//
// Example:
//
//	g, _ := builder.Cycle(4)
//	res, err := anneal.Search(g, 2, anneal.WithSeed(7))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Cover, res.Covered) // two opposite corners, 4
package anneal
