package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/dijkstra"
	"github.com/katalvlaran/spantree/unionfind"
)

// Printer writes algorithm results as text. The first write error is kept
// and every later call becomes a no-op; check it with Err.
type Printer struct {
	w     io.Writer
	label LabelFn
	err   error
}

// Option configures a Printer.
type Option func(*Printer)

// WithLabels replaces the default Label function. A nil fn is ignored.
func WithLabels(fn LabelFn) Option {
	return func(p *Printer) {
		if fn != nil {
			p.label = fn
		}
	}
}

// New returns a Printer writing to w with letter labels.
func New(w io.Writer, opts ...Option) *Printer {
	p := &Printer{w: w, label: Label}
	for _, fn := range opts {
		fn(p)
	}

	return p
}

// Err returns the first write error, if any.
func (p *Printer) Err() error { return p.err }

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// Adjacency prints one line per vertex listing its adjacency entries in
// storage order:
//
//	adj[A] -> |D | 5| -> |B | 1| ->
func (p *Printer) Adjacency(g *core.Graph) error {
	for v := 1; v <= g.Order(); v++ {
		var b strings.Builder
		fmt.Fprintf(&b, "adj[%s] ->", p.label(v))
		for _, nb := range g.Neighbors(v) {
			fmt.Fprintf(&b, " |%s | %d| ->", p.label(nb.Vertex), nb.Weight)
		}
		p.printf("%s\n", b.String())
	}

	return p.err
}

// ParentArray prints "child -> parent" for every vertex; roots and
// unreached vertices point at "@".
func (p *Printer) ParentArray(parent []int) error {
	for v := 1; v < len(parent); v++ {
		p.printf("%s -> %s\n", p.label(v), p.label(parent[v]))
	}

	return p.err
}

// KruskalEdges prints accepted edges as "Edge A--1--B".
func (p *Printer) KruskalEdges(edges []core.Edge) error {
	for _, e := range edges {
		p.printf("Edge %s--%d--%s\n", p.label(e.U), e.Weight, p.label(e.V))
	}

	return p.err
}

// ShortestPaths prints vertex, parent and distance per vertex; unreached
// vertices show "inf".
func (p *Printer) ShortestPaths(res *dijkstra.Result) error {
	for v := 1; v < len(res.Dist); v++ {
		d := "inf"
		if res.Dist[v] != core.Infinity {
			d = fmt.Sprint(res.Dist[v])
		}
		p.printf("v = %s parent = %s dist = %s\n", p.label(v), p.label(res.Parent[v]), d)
	}

	return p.err
}

// Order prints a traversal sequence on one line.
func (p *Printer) Order(order []int) error {
	parts := make([]string, len(order))
	for i, v := range order {
		parts[i] = p.label(v)
	}
	p.printf("%s\n", strings.Join(parts, " "))

	return p.err
}

// Sets prints the partition held by ds as "Set{A B }  Set{C }".
func (p *Printer) Sets(ds unionfind.DisjointSet) error {
	var b strings.Builder
	for i, set := range unionfind.Sets(ds) {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString("Set{")
		for _, v := range set {
			b.WriteString(p.label(v))
			b.WriteByte(' ')
		}
		b.WriteString("}")
	}
	p.printf("%s\n", b.String())

	return p.err
}

// Weight prints "Weight of <what> = <total>".
func (p *Printer) Weight(what string, total int64) error {
	p.printf("Weight of %s = %d\n", what, total)

	return p.err
}
