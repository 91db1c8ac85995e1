// Package dfs implements depth-first algorithms over core.Graph.
//
// What:
//
//   - TopologicalSort orders the vertices of a directed graph so that
//     every edge u→v places u before v.
//
// Options:
//
//   - WithCancelContext(ctx) aborts the traversal once ctx is done.
//
// Errors:
//
//   - ErrGraphNil      if the graph pointer is nil.
//   - ErrUndirected    if the graph is not directed.
//   - ErrCycleDetected if a back edge is found.
//   - ErrNeighborFetch wraps a failed neighbour lookup.
//
// Complexity:
//
//   - Time O(V + E), Memory O(V) for the state map and recursion.
//
// Ties are broken by ascending vertex ID, so the order is deterministic.
package dfs
