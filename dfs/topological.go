package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/aoc2024/core"
)

// TopoOption configures TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context
}

// WithCancelContext sets the cancellation context. A nil ctx is ignored.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

type topoSorter struct {
	graph *core.Graph
	ctx   context.Context
	state map[string]int
	order []string // post-order
}

// TopologicalSort returns the vertices of g in topological order.
// Starting points and neighbours are visited in ascending ID order.
func TopologicalSort(g *core.Graph, options ...TopoOption) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirected
	}
	opts := topoOptions{ctx: context.Background()}
	for _, opt := range options {
		opt(&opts)
	}

	verts := g.Vertices()
	t := &topoSorter{
		graph: g,
		ctx:   opts.ctx,
		state: make(map[string]int, len(verts)),
		order: make([]string, 0, len(verts)),
	}
	for _, v := range verts {
		if t.state[v] != White {
			continue
		}
		if err := t.visit(v); err != nil {
			return nil, err
		}
	}
	for i, j := 0, len(t.order)-1; i < j; i, j = i+1, j-1 {
		t.order[i], t.order[j] = t.order[j], t.order[i]
	}
	return t.order, nil
}

func (t *topoSorter) visit(id string) error {
	if err := t.ctx.Err(); err != nil {
		return err
	}
	switch t.state[id] {
	case Gray:
		return fmt.Errorf("%w: through %s", ErrCycleDetected, id)
	case Black:
		return nil
	}
	t.state[id] = Gray

	edges, err := t.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNeighborFetch, err)
	}
	for _, e := range edges {
		if !e.Directed || e.From != id {
			continue
		}
		if err := t.visit(e.To); err != nil {
			return err
		}
	}

	t.state[id] = Black
	t.order = append(t.order, id)
	return nil
}
