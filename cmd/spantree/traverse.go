package main

import (
	"github.com/maruel/subcommands"

	"github.com/katalvlaran/spantree/bfs"
	"github.com/katalvlaran/spantree/dfs"
)

var cmdBFS = &subcommands.Command{
	UsageLine: "bfs <options>",
	ShortDesc: "prints the breadth-first visit order from a source vertex",
	LongDesc:  "Runs a breadth-first search from -source and prints the vertices in visit order, then the parent of every vertex.",
	CommandRun: func() subcommands.CommandRun {
		c := &bfsRun{}
		c.Init(true)
		c.InitSource()
		c.Flags.IntVar(&c.maxDepth, "max-depth", 0, "stop expanding at this depth, 0 means unlimited")
		return c
	},
}

type bfsRun struct {
	commonFlags
	maxDepth int
}

func (c *bfsRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
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
	res, err := bfs.BFS(g, s.cfg.Source,
		bfs.WithMaxDepth(c.maxDepth),
		bfs.WithOnVisit(func(v, depth int) error {
			s.log.Debug("visit", "vertex", v, "depth", depth)
			return nil
		}),
	)
	if err != nil {
		return s.fail(err)
	}

	s.out.Order(res.Order)
	if err := s.out.ParentArray(res.Parent); err != nil {
		return s.fail(err)
	}

	return exitOK
}

var cmdDFS = &subcommands.Command{
	UsageLine: "dfs <options>",
	ShortDesc: "prints the depth-first visit order, or a cycle",
	LongDesc: `Runs an iterative depth-first search from -source and prints the pre-order
and post-order. -all continues from every undiscovered vertex. -cycle prints
one cycle of the graph instead, or an empty line when there is none.`,
	CommandRun: func() subcommands.CommandRun {
		c := &dfsRun{}
		c.Init(true)
		c.InitSource()
		c.Flags.BoolVar(&c.all, "all", false, "traverse every component")
		c.Flags.BoolVar(&c.cycle, "cycle", false, "find a cycle instead of traversing")
		return c
	},
}

type dfsRun struct {
	commonFlags
	all   bool
	cycle bool
}

func (c *dfsRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
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

	if c.cycle {
		cycle, err := dfs.FindCycle(g)
		if err != nil {
			return s.fail(err)
		}
		if cycle == nil {
			s.log.Info("graph is acyclic")
		}
		if err := s.out.Order(cycle); err != nil {
			return s.fail(err)
		}

		return exitOK
	}

	opts := []dfs.Option{
		dfs.WithOnVisit(func(v int) error {
			s.log.Debug("discover", "vertex", v)
			return nil
		}),
		dfs.WithOnExit(func(v int) error {
			s.log.Debug("finish", "vertex", v)
			return nil
		}),
	}
	if c.all {
		opts = append(opts, dfs.WithFullTraversal())
	}
	res, err := dfs.DFS(g, s.cfg.Source, opts...)
	if err != nil {
		return s.fail(err)
	}

	s.out.Order(res.Order)
	if err := s.out.Order(res.PostOrder); err != nil {
		return s.fail(err)
	}

	return exitOK
}
