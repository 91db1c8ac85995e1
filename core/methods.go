package core

import (
	"fmt"
	"sort"
	"strconv"
)

// AddVertex inserts id if missing. Adding an existing vertex is a no-op.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.vertices[id] = struct{}{}
	return nil
}

// HasVertex reports whether id exists.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]
	return ok
}

// AddEdge connects from to to with the given weight, creating missing
// endpoints, and returns the new edge's ID.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", fmt.Errorf("%w: %s", ErrLoopNotAllowed, from)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices[from] = struct{}{}
	g.vertices[to] = struct{}{}
	g.nextEdgeID++
	e := &Edge{
		ID:       "e" + strconv.FormatUint(g.nextEdgeID, 10),
		From:     from,
		To:       to,
		Weight:   weight,
		Directed: g.directed,
	}
	g.out[from] = append(g.out[from], e)
	if !g.directed && from != to {
		g.out[to] = append(g.out[to], e)
	}
	return e.ID, nil
}

// HasEdge reports whether an edge from→to exists. In undirected graphs
// the reverse orientation matches too.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, e := range g.out[from] {
		if e.To == to || (!e.Directed && e.From == to) {
			return true
		}
	}
	return false
}

// Neighbors returns the edges incident to id, ordered by the opposite
// endpoint and then by edge ID.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrVertexNotFound, id)
	}
	edges := make([]*Edge, len(g.out[id]))
	copy(edges, g.out[id])
	other := func(e *Edge) string {
		if e.From == id {
			return e.To
		}
		return e.From
	}
	sort.Slice(edges, func(i, j int) bool {
		if a, b := other(edges[i]), other(edges[j]); a != b {
			return a < b
		}
		return edges[i].ID < edges[j].ID
	})
	return edges, nil
}

// Vertices returns every vertex ID in ascending order.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.vertices)
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }
