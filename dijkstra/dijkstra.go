package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/ipq"
)

// Dijkstra computes shortest distances from source to every vertex of g.
//
// The loop is process-then-extract: v starts as the source (which is never
// queued), all neighbors of v are relaxed, and only then is the next v
// extracted. The last extracted vertex is relaxed like every other one.
//
// Relaxation of neighbor u through edge weight w:
//
//	if dist[v] + w < dist[u] { dist[u] = dist[v] + w; parent[u] = v; insert or Decreased }
//
// A settled vertex always has dist ≤ dist[v], so it is never queued again.
// Unreachable vertices keep Dist core.Infinity; that is not an error.
//
// Options:
//
//   - WithMaxDistance(x): vertices farther than x are reported unreached.
//   - WithInfEdgeThreshold(t): edges with weight ≥ t are skipped.
//   - WithOnRelax, WithOnSettle: tracing hooks.
//
// Errors: ErrNilGraph, ErrVertexNotFound.
// Complexity: O((V + E) log V) time, O(V) memory.
func Dijkstra(g *core.Graph, source int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source %d", ErrVertexNotFound, source)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := g.Order()
	res := &Result{
		Source: source,
		Dist:   make([]int64, n+1),
		Parent: make([]int, n+1),
		Order:  make([]int, 0, n),
	}
	for v := range res.Dist {
		res.Dist[v] = core.Infinity
	}
	pq, err := ipq.New(n, ipq.Slice[int64](res.Dist))
	if err != nil {
		return nil, err
	}

	r := &runner{g: g, options: cfg, res: res, pq: pq}
	res.Dist[source] = 0
	if err = r.process(source); err != nil {
		return nil, err
	}

	return res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	res     *Result
	pq      *ipq.IndexedHeap // keyed on res.Dist
}

// process settles v, relaxes it, and extracts the next v until the queue is empty.
func (r *runner) process(v int) error {
	for {
		if r.res.Dist[v] > r.options.MaxDistance {
			r.discardBeyond(v)
			return nil
		}
		r.res.Order = append(r.res.Order, v)
		if r.options.OnSettle != nil {
			r.options.OnSettle(v, r.res.Dist[v])
		}
		if err := r.relax(v); err != nil {
			return err
		}
		if r.pq.IsEmpty() {
			return nil
		}
		v = r.pq.ExtractMin()
	}
}

// relax examines each neighbor u of v and lowers dist[u] when the route
// through v is strictly shorter.
func (r *runner) relax(v int) error {
	dist, parent := r.res.Dist, r.res.Parent
	for _, nb := range r.g.Neighbors(v) {
		u, w := nb.Vertex, nb.Weight
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		// Sums at or beyond core.Infinity cannot improve anything.
		if w >= core.Infinity-dist[v] {
			continue
		}
		d := dist[v] + w
		if d >= dist[u] {
			continue
		}
		dist[u] = d
		parent[u] = v
		if r.options.OnRelax != nil {
			r.options.OnRelax(v, u, d)
		}

		var err error
		if r.pq.Contains(u) {
			err = r.pq.Decreased(u)
		} else {
			err = r.pq.Insert(u)
		}
		if err != nil {
			return fmt.Errorf("dijkstra: queue update for %d: %w", u, err)
		}
	}

	return nil
}

// discardBeyond resets v and every still-queued vertex to unreached.
func (r *runner) discardBeyond(v int) {
	pending := append(r.pq.Snapshot(), v)
	for _, u := range pending {
		r.res.Dist[u] = core.Infinity
		r.res.Parent[u] = core.NoVertex
	}
}
