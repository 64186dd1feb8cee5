package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/spantree/core"
)

// queueItem pairs a vertex id with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// ring is a fixed-capacity circular queue. Every vertex is enqueued at most
// once, so capacity V never overflows.
type ring struct {
	buf        []queueItem
	head, size int
}

func newRing(capacity int) *ring { return &ring{buf: make([]queueItem, capacity)} }

func (q *ring) push(it queueItem) {
	q.buf[(q.head+q.size)%len(q.buf)] = it
	q.size++
}

func (q *ring) pop() queueItem {
	it := q.buf[q.head]
	q.head = (q.head + 1) % len(q.buf)
	q.size--

	return it
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   *ring
	visited []bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Neighbors are taken in adjacency order and marked on enqueue.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error. The partial result is returned with
// cancellation and hook errors.
//
// Complexity: O(V + E) time, O(V) memory.
func BFS(g *core.Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	n := g.Order()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   newRing(n),
		visited: make([]bool, n+1),
		res: &BFSResult{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n+1),
			Parent: make([]int, n+1),
		},
	}
	for v := range w.res.Depth {
		w.res.Depth[v] = Unreached
	}

	w.enqueue(start, 0, core.NoVertex)

	return w.res, w.loop()
}

// enqueue marks v visited at depth d, records its parent, calls OnEnqueue,
// and adds it to the queue.
func (w *walker) enqueue(v, d, parent int) {
	w.visited[v] = true
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.opts.OnEnqueue(v, d)
	w.queue.push(queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for w.queue.size > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue.pop()
		w.opts.OnDequeue(item.v, item.depth)
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.v)
	if err := w.opts.OnVisit(item.v, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nb := range w.graph.Neighbors(item.v) {
		if w.visited[nb.Vertex] || !w.opts.FilterNeighbor(item.v, nb.Vertex) {
			continue
		}
		w.enqueue(nb.Vertex, nextDepth, item.v)
	}
}
