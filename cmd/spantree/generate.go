package main

import (
	"fmt"
	"io"
	"os"

	"github.com/maruel/subcommands"

	"github.com/katalvlaran/spantree/builder"
	"github.com/katalvlaran/spantree/edgelist"
)

var cmdGenerate = &subcommands.Command{
	UsageLine: "generate <options>",
	ShortDesc: "writes a generated graph as an edge list",
	LongDesc: `Builds a graph of the given -shape and writes it in the edge-list format
read by the other commands. Shapes: path, cycle, star, wheel, complete, grid
(-rows x -cols), bipartite (-n x -m), random (-n vertices, edge probability -p).
Weights are drawn uniformly from [-min, -max] with -seed.`,
	CommandRun: func() subcommands.CommandRun {
		c := &generateRun{}
		c.Init(false)
		c.Flags.StringVar(&c.shape, "shape", "path", "graph shape")
		c.Flags.IntVar(&c.n, "n", 5, "vertex count (rows for grid, left side for bipartite)")
		c.Flags.IntVar(&c.m, "m", 3, "columns for grid, right side for bipartite")
		c.Flags.Float64Var(&c.p, "p", 0.3, "edge probability for random")
		c.Flags.Int64Var(&c.seed, "seed", 1, "random seed")
		c.Flags.Int64Var(&c.min, "min", 1, "minimum edge weight")
		c.Flags.Int64Var(&c.max, "max", 9, "maximum edge weight")
		c.Flags.StringVar(&c.output, "output", "", "write to this file instead of stdout")
		return c
	},
}

type generateRun struct {
	commonFlags
	shape    string
	n, m     int
	p        float64
	seed     int64
	min, max int64
	output   string
}

// constructor maps -shape to a builder constructor.
func (c *generateRun) constructor() (builder.Constructor, error) {
	switch c.shape {
	case "path":
		return builder.Path(c.n), nil
	case "cycle":
		return builder.Cycle(c.n), nil
	case "star":
		return builder.Star(c.n), nil
	case "wheel":
		return builder.Wheel(c.n), nil
	case "complete":
		return builder.Complete(c.n), nil
	case "grid":
		return builder.Grid(c.n, c.m), nil
	case "bipartite":
		return builder.CompleteBipartite(c.n, c.m), nil
	case "random":
		return builder.RandomSparse(c.n, c.p), nil
	default:
		return nil, fmt.Errorf("unknown shape %q", c.shape)
	}
}

func (c *generateRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	if len(args) != 0 {
		return report(a, errPositional)
	}
	if c.min < 0 || c.max < c.min {
		return report(a, fmt.Errorf("weights need 0 <= min <= max, got %d and %d", c.min, c.max))
	}
	cons, err := c.constructor()
	if err != nil {
		return report(a, err)
	}
	s, err := c.start(a)
	if err != nil {
		return report(a, err)
	}
	defer s.close()

	order, edges, err := builder.BuildEdges(
		[]builder.BuilderOption{builder.WithSeed(c.seed), builder.WithUniformWeight(c.min, c.max)},
		cons,
	)
	if err != nil {
		return s.fail(err)
	}
	s.log.Info("graph generated", "shape", c.shape, "vertices", order, "edges", len(edges), "seed", c.seed)

	var w io.Writer = a.GetOut()
	if c.output != "" {
		f, err := os.Create(c.output)
		if err != nil {
			return s.fail(err)
		}
		defer f.Close()
		w = f
	}
	if err := edgelist.Write(w, order, edges); err != nil {
		return s.fail(err)
	}

	return exitOK
}
