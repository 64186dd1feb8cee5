package main

import (
	"fmt"
	"math"

	"github.com/maruel/subcommands"

	"github.com/katalvlaran/spantree/dijkstra"
)

var cmdDijkstra = &subcommands.Command{
	UsageLine: "dijkstra <options>",
	ShortDesc: "computes shortest paths from a source vertex",
	LongDesc: `Runs Dijkstra's algorithm from -source and prints the parent and distance
of every vertex. Unreachable vertices print "inf". With -to the path to that
vertex is printed instead.`,
	CommandRun: func() subcommands.CommandRun {
		c := &dijkstraRun{}
		c.Init(true)
		c.InitSource()
		c.Flags.IntVar(&c.to, "to", 0, "print only the path to this vertex")
		c.Flags.Int64Var(&c.maxDistance, "max-distance", math.MaxInt64, "leave vertices farther than this unreached")
		return c
	},
}

type dijkstraRun struct {
	commonFlags
	to          int
	maxDistance int64
}

func (c *dijkstraRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	if len(args) != 0 {
		return report(a, errPositional)
	}
	if c.maxDistance < 0 {
		return report(a, fmt.Errorf("%w: %d", dijkstra.ErrBadMaxDistance, c.maxDistance))
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
	res, err := dijkstra.Dijkstra(g, s.cfg.Source,
		dijkstra.WithMaxDistance(c.maxDistance),
		dijkstra.WithOnRelax(func(v, u int, d int64) {
			s.log.Debug("relax", "from", v, "to", u, "dist", d)
		}),
		dijkstra.WithOnSettle(func(v int, d int64) {
			s.log.Debug("settle", "vertex", v, "dist", d)
		}),
	)
	if err != nil {
		return s.fail(err)
	}

	if c.to != 0 {
		path, err := res.PathTo(c.to)
		if err != nil {
			return s.fail(err)
		}
		s.out.Order(path)
		if err := s.out.Weight("path", res.Dist[c.to]); err != nil {
			return s.fail(err)
		}

		return exitOK
	}
	if err := s.out.ShortestPaths(res); err != nil {
		return s.fail(err)
	}
	if !res.Spanning() {
		s.log.Info("some vertices are unreached", "unreached", res.Unreached())
	}

	return exitOK
}
