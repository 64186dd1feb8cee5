package dfs

import (
	"fmt"

	"github.com/katalvlaran/spantree/core"
)

// frame is one activation of the walk: vertex v, its depth, and the index of
// the next adjacency entry to examine.
type frame struct {
	v     int
	depth int
	next  int
	nbs   []core.Neighbor
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
	stack []frame
}

// DFS performs depth-first search on graph g from start, visiting neighbors
// in adjacency order. With WithFullTraversal it then covers every remaining
// component; start may be core.NoVertex in that mode.
// Returns DFSResult, and the partial result with an error if aborted by
// context or hook.
//
// Complexity: O(V + E) time, O(V) memory.
func DFS(g *core.Graph, start int, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	if !g.HasVertex(start) && !(dopts.FullTraversal && start == core.NoVertex) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	n := g.Order()
	res := &DFSResult{
		Start:     start,
		Order:     make([]int, 0, n),
		PostOrder: make([]int, 0, n),
		Depth:     make([]int, n+1),
		Parent:    make([]int, n+1),
		Visited:   make([]bool, n+1),
	}
	for v := range res.Depth {
		res.Depth[v] = Unreached
	}

	w := &dfsWalker{graph: g, opts: dopts, res: res, stack: make([]frame, 0, n)}
	defer func() { res.SkippedNeighbors = w.opts.SkippedNeighbors }()

	if g.HasVertex(start) {
		if err := w.traverse(start); err != nil {
			return res, err
		}
	}
	if dopts.FullTraversal {
		for v := 1; v <= n; v++ {
			if res.Visited[v] {
				continue
			}
			if res.Start == core.NoVertex {
				res.Start = v
			}
			if err := w.traverse(v); err != nil {
				return res, err
			}
		}
	}

	return res, nil
}

// traverse runs one DFS tree rooted at root.
func (w *dfsWalker) traverse(root int) error {
	if err := w.opts.Ctx.Err(); err != nil {
		return err
	}
	if err := w.discover(root, core.NoVertex, 0); err != nil {
		return err
	}
	for len(w.stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := &w.stack[len(w.stack)-1]
		if top.next == len(top.nbs) {
			if err := w.finish(top.v); err != nil {
				return err
			}
			continue
		}
		u := top.nbs[top.next].Vertex
		top.next++

		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(u) {
			w.opts.SkippedNeighbors++
			continue
		}
		if w.res.Visited[u] {
			continue
		}
		if w.opts.MaxDepth >= 0 && top.depth+1 > w.opts.MaxDepth {
			continue
		}
		// top is invalid once discover grows the stack.
		if err := w.discover(u, top.v, top.depth+1); err != nil {
			return err
		}
	}

	return nil
}

// discover marks v, records it in pre-order, runs OnVisit and pushes its frame.
func (w *dfsWalker) discover(v, parent, depth int) error {
	w.res.Visited[v] = true
	w.res.Depth[v] = depth
	w.res.Parent[v] = parent
	w.res.Order = append(w.res.Order, v)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
		}
	}
	w.stack = append(w.stack, frame{v: v, depth: depth, nbs: w.graph.Neighbors(v)})

	return nil
}

// finish pops v's frame, runs OnExit and records it in post-order.
func (w *dfsWalker) finish(v int) error {
	w.stack = w.stack[:len(w.stack)-1]
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(v); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %d: %w", v, err)
		}
	}
	w.res.PostOrder = append(w.res.PostOrder, v)

	return nil
}
