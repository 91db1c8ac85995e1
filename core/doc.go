// Package core provides a small thread-safe graph keyed by string vertex IDs.
//
// What:
//
//   - Graph holds vertices and edges; directedness is fixed at construction
//     (WithDirected).
//   - AddEdge creates missing endpoints and returns a generated edge ID.
//   - Vertices lists IDs in ascending order so traversals are reproducible.
//
// Why:
//
//   - Relations between puzzle entities that are not grid cells (page
//     ordering rules, for example) are expressed as edges and handed to
//     the algorithms in package dfs.
//
// Complexity:
//
//   - AddVertex, AddEdge, HasVertex, HasEdge: O(1) amortized.
//   - Vertices: O(V log V). Neighbors: O(d log d) for out-degree d.
//
// Errors:
//
//   - ErrEmptyVertexID, ErrVertexNotFound, ErrLoopNotAllowed.
package core
