// Package core provides the undirected simple graph container used
// throughout mincover.
//
// Overview:
//
//   - A Graph holds a set of string-identified vertices and a set of
//     undirected edges, with optional self-loops.
//   - All mutating and querying methods are safe for concurrent use;
//     a single RWMutex guards the vertex, edge and adjacency maps.
//   - The solver consumes only the read side: Vertices(), Edges() and
//     Degree(). Everything else exists to make graphs easy to build
//     from loaders, generators and tests.
//
// Determinism:
//
//   - Vertices() returns IDs in sorted order.
//   - Edges() returns edges in insertion order.
//
// Both orders are stable for a fixed construction sequence, which is
// what makes seeded search runs reproducible.
//
// Error handling (sentinel errors):
//
//   - ErrEmptyVertexID  — an empty string was used as a vertex ID.
//   - ErrVertexNotFound — a query referenced a vertex that does not exist.
//   - ErrLoopNotAllowed — a self-loop was added without WithLoops().
//   - ErrDuplicateEdge  — a second edge between the same endpoints.
//
// The container intentionally supports neither edge weights nor
// directed edges: the vertex-cover solver is defined on plain
// undirected graphs, and the loader collapses anything richer.
package core
