// Package builder provides deterministic topology constructors for
// tests, examples, benchmarks and the demo command.
//
// Every constructor emits vertices and edges in a stable, documented
// order, so the graphs it produces are byte-for-byte reproducible:
//
//   - Cycle(n)            — simple cycle C_n (n ≥ 3)
//   - Path(n)             — simple path P_n (n ≥ 2)
//   - Star(n)             — hub "Center" plus n−1 leaves (n ≥ 2)
//   - Complete(n)         — complete graph K_n (n ≥ 1)
//   - RandomSparse(n, p, seed) — Erdős–Rényi G(n, p), deterministic per seed
//
// Vertex IDs follow the scheme "V0".."Vn-1" (the star hub keeps the
// fixed ID "Center"). Sentinel errors: ErrTooFewVertices,
// ErrInvalidProbability. Constructors never panic.
package builder
