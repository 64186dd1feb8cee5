package main

import (
	"errors"

	"github.com/maruel/subcommands"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/prim_kruskal"
)

var cmdPrim = &subcommands.Command{
	UsageLine: "prim <options>",
	ShortDesc: "computes a minimum spanning tree with Prim's algorithm",
	LongDesc: `Grows a minimum spanning tree from -source and prints the parent of
every vertex followed by the total weight. Exits with 2 when some vertex is
unreachable from the source.`,
	CommandRun: func() subcommands.CommandRun {
		c := &primRun{}
		c.Init(true)
		c.InitSource()
		return c
	},
}

type primRun struct {
	commonFlags
}

func (c *primRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	if len(args) != 0 {
		return report(a, errPositional)
	}
	s, err := c.start(a)
	if err != nil {
		return report(a, err)
	}
	defer s.close()

	g, err := s.graph()
	if err != nil {
		return s.fail(err)
	}
	res, err := prim_kruskal.Prim(g, s.cfg.Source, prim_kruskal.WithOnSettle(func(v, parent int, w int64) {
		s.log.Debug("settle", "vertex", v, "parent", parent, "weight", w)
	}))
	if err != nil {
		return s.fail(err)
	}

	s.out.ParentArray(res.Parent)
	if err := s.out.Weight("MST", res.Weight); err != nil {
		return s.fail(err)
	}
	if !res.Spanning() {
		s.log.Warn("graph is disconnected", "source", res.Source, "unreached", res.Unreached())
		return exitIncomplete
	}

	return exitOK
}

var cmdKruskal = &subcommands.Command{
	UsageLine: "kruskal <options>",
	ShortDesc: "computes a minimum spanning tree with Kruskal's algorithm",
	LongDesc: `Accepts edges in non-decreasing weight order and prints them, the total
weight and the final union-find sets. On a disconnected graph the spanning
forest is printed and the command exits with 2.`,
	CommandRun: func() subcommands.CommandRun {
		c := &kruskalRun{}
		c.Init(true)
		c.Flags.String("disjoint-set", "", "union-find implementation: forest or compressed")
		return c
	},
}

type kruskalRun struct {
	commonFlags
}

func (c *kruskalRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	if len(args) != 0 {
		return report(a, errPositional)
	}
	s, err := c.start(a)
	if err != nil {
		return report(a, err)
	}
	defer s.close()

	g, err := s.graph()
	if err != nil {
		return s.fail(err)
	}
	res, err := prim_kruskal.Kruskal(g,
		prim_kruskal.WithDisjointSet(s.disjointSet()),
		prim_kruskal.WithOnAccept(func(e core.Edge) {
			s.log.Debug("accept", "u", e.U, "v", e.V, "weight", e.Weight)
		}),
		prim_kruskal.WithOnReject(func(e core.Edge) {
			s.log.Debug("reject", "u", e.U, "v", e.V, "weight", e.Weight)
		}),
	)
	if res == nil {
		return s.fail(err)
	}

	s.out.KruskalEdges(res.Edges)
	s.out.Weight("MST", res.Weight)
	if perr := s.out.Sets(res.Components); perr != nil {
		return s.fail(perr)
	}
	if errors.Is(err, prim_kruskal.ErrDisconnected) {
		s.log.Warn("graph is disconnected", "err", err, "components", len(res.Sets()))
		return exitIncomplete
	}
	if err != nil {
		return s.fail(err)
	}

	return exitOK
}

var cmdMST = &subcommands.Command{
	UsageLine: "mst <options>",
	ShortDesc: "prints minimum spanning tree edges using the configured algorithm",
	LongDesc: `Runs the algorithm named by -algorithm (or the "algorithm" config key),
prim or kruskal, and prints the tree edges and total weight. Exits with 2 when
the graph is disconnected.`,
	CommandRun: func() subcommands.CommandRun {
		c := &mstRun{}
		c.Init(true)
		c.InitSource()
		c.Flags.String("algorithm", "", "prim or kruskal")
		c.Flags.String("disjoint-set", "", "union-find implementation for kruskal: forest or compressed")
		return c
	},
}

type mstRun struct {
	commonFlags
}

func (c *mstRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	if len(args) != 0 {
		return report(a, errPositional)
	}
	s, err := c.start(a)
	if err != nil {
		return report(a, err)
	}
	defer s.close()

	g, err := s.graph()
	if err != nil {
		return s.fail(err)
	}
	edges, total, err := prim_kruskal.Compute(g,
		prim_kruskal.WithMethod(s.cfg.Algorithm),
		prim_kruskal.WithSource(s.cfg.Source),
		prim_kruskal.WithDisjointSet(s.disjointSet()),
	)
	if err != nil && !errors.Is(err, prim_kruskal.ErrDisconnected) {
		return s.fail(err)
	}

	s.out.KruskalEdges(edges)
	if perr := s.out.Weight("MST", total); perr != nil {
		return s.fail(perr)
	}
	if err != nil {
		s.log.Warn("graph is disconnected", "algorithm", s.cfg.Algorithm, "err", err)
		return exitIncomplete
	}

	return exitOK
}
