// Package mincover approximates the fixed-cardinality Minimum Vertex
// Cover problem with a randomized local search (simulated annealing).
//
// Given an undirected graph and a target cover size k, the solver looks
// for a subset of exactly k vertices that maximizes the number of edges
// with at least one endpoint in the subset.
//
// The module is organized as small, focused packages:
//
//	core/        — undirected simple graph container (vertices, edges, degrees)
//	builder/     — deterministic topology constructors for tests and demos
//	anneal/      — the annealing search: cover state, moves, schedule, loop
//	gexf/        — GEXF graph reader producing core.Graph values
//	experiment/  — batch driver: named graphs, repeated timed runs, statistics
//	cmd/mincover — CLI wrapping the experiment driver
//
// All randomized behavior is driven by an injected seed: the same seed,
// graph and options always produce the same cover.
//
//	go get github.com/katalvlaran/mincover
package mincover
