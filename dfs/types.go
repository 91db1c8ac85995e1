package dfs

import "errors"

// Visitation states.
const (
	White = iota // unvisited
	Gray         // on the current DFS path
	Black        // finished
)

var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrUndirected is returned when an algorithm needs a directed graph.
	ErrUndirected = errors.New("dfs: graph is not directed")

	// ErrCycleDetected is returned when a cycle prevents an ordering.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrNeighborFetch wraps a failure to list a vertex's neighbours.
	ErrNeighborFetch = errors.New("dfs: failed to fetch neighbors")
)
