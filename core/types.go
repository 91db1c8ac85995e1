package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge connects From to To. Directed is copied from the Graph at insertion.
type Edge struct {
	ID       string
	From     string
	To       string
	Weight   int64
	Directed bool
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether new edges are one-way.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithLoops permits self-loops.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an in-memory graph guarded by a single RWMutex.
// out[from] lists edges leaving from; for undirected graphs every edge is
// listed under both endpoints.
type Graph struct {
	mu sync.RWMutex

	directed   bool
	allowLoops bool

	nextEdgeID uint64
	vertices   map[string]struct{}
	out        map[string][]*Edge
}

// NewGraph creates an empty Graph. By default it is undirected and
// rejects self-loops.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]struct{}),
		out:      make(map[string][]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}
