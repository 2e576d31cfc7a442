// Package gexf loads undirected graphs from GEXF documents
// (https://gexf.net), the interchange format most graph datasets in
// the wild ship in.
//
// What model is used?
//
//   - Only the node and edge lists are read; attributes, viz extensions
//     and dynamics are ignored.
//   - Every graph is treated as undirected regardless of the document's
//     defaultedgetype.
//   - Duplicate edges between the same endpoint pair collapse to one.
//   - Self-loops are kept.
//   - An edge referencing an undeclared node inserts that node, the
//     same auto-insert contract core.AddEdge follows.
//
// Entry points: Parse for a stream, ParseFile for a path on disk.
//
// Errors: ErrBadDocument for malformed XML or missing endpoint
// references, ErrNoNodes for a well-formed document with an empty node
// list.
package gexf
