package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/maruel/subcommands"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/edgelist"
	"github.com/katalvlaran/spantree/format"
	"github.com/katalvlaran/spantree/unionfind"
)

// Exit codes.
const (
	exitOK         = 0
	exitInput      = 1
	exitIncomplete = 2
)

// stdin is read when the input is "-".
var stdin io.Reader = os.Stdin

// flagKeys maps flag names to configuration keys.
var flagKeys = map[string]string{
	"input":        "input",
	"source":       "source",
	"algorithm":    "algorithm",
	"disjoint-set": "disjoint_set",
	"labels":       "labels",
	"log-level":    "log.level",
	"log-format":   "log.format",
}

// commonFlags is embedded by every command run.
type commonFlags struct {
	subcommands.CommandRunBase
	configPath string
}

// Init registers the shared flags. Values are only read back through
// overrides, so flags left unset never shadow the file or environment.
func (c *commonFlags) Init(input bool) {
	c.Flags.StringVar(&c.configPath, "config", "", "YAML configuration file (default $SPANTREE_CONFIG)")
	if input {
		c.Flags.String("input", "", "edge-list file, - reads stdin")
		c.Flags.String("labels", "", "vertex labels: letters or decimal")
	}
	c.Flags.String("log-level", "", "debug, info, warn or error")
	c.Flags.String("log-format", "", "text or json")
}

// InitSource registers -source.
func (c *commonFlags) InitSource() {
	c.Flags.Int("source", 1, "start vertex")
}

func (c *commonFlags) overrides() map[string]any {
	out := map[string]any{}
	c.Flags.Visit(func(f *flag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			out[key] = f.Value.String()
		}
	})

	return out
}

// session is the state shared by one command invocation.
type session struct {
	app      subcommands.Application
	cfg      *Config
	log      *slog.Logger
	out      *format.Printer
	closeLog func() error
}

func (c *commonFlags) start(a subcommands.Application) (*session, error) {
	cfg, err := loadConfig(c.configPath, c.overrides())
	if err != nil {
		return nil, err
	}
	log, closeLog := newLogger(cfg.Log, a.GetErr())
	labels := format.Label
	if cfg.Labels == "decimal" {
		labels = format.Decimal
	}

	return &session{
		app:      a,
		cfg:      cfg,
		log:      log,
		out:      format.New(a.GetOut(), format.WithLabels(labels)),
		closeLog: closeLog,
	}, nil
}

func (s *session) close() {
	if err := s.closeLog(); err != nil {
		fmt.Fprintf(s.app.GetErr(), "%s: close log: %s\n", s.app.GetName(), err)
	}
}

// graph loads the configured input.
func (s *session) graph() (*core.Graph, error) {
	var (
		g   *core.Graph
		err error
	)
	if s.cfg.Input == "-" {
		g, err = edgelist.Parse(stdin)
	} else {
		g, err = edgelist.Load(s.cfg.Input)
	}
	if err != nil {
		return nil, err
	}
	s.log.Info("graph loaded", "input", s.cfg.Input, "vertices", g.Order(), "edges", g.Size())

	return g, nil
}

func (s *session) disjointSet() unionfind.Factory {
	if s.cfg.DisjointSet == "compressed" {
		return unionfind.CompressedFactory
	}

	return unionfind.ForestFactory
}

// fail logs err, prints it and returns exitInput.
func (s *session) fail(err error) int {
	s.log.Error("command failed", "err", err)

	return report(s.app, err)
}

func report(a subcommands.Application, err error) int {
	fmt.Fprintf(a.GetErr(), "%s: %s\n", a.GetName(), err)

	return exitInput
}

var errPositional = errors.New("position arguments not expected")
