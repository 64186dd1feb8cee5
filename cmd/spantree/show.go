package main

import (
	"github.com/maruel/subcommands"
)

var cmdShow = &subcommands.Command{
	UsageLine: "show <options>",
	ShortDesc: "prints the adjacency lists of a graph",
	LongDesc:  "Loads an edge list and prints each vertex's adjacency entries in storage order, most recently added first.",
	CommandRun: func() subcommands.CommandRun {
		c := &showRun{}
		c.Init(true)
		return c
	},
}

type showRun struct {
	commonFlags
}

func (c *showRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
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
	if err := s.out.Adjacency(g); err != nil {
		return s.fail(err)
	}

	return exitOK
}
