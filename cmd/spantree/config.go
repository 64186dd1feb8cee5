package main

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/katalvlaran/spantree/prim_kruskal"
)

const (
	envPrefix    = "SPANTREE_"
	configEnvVar = "SPANTREE_CONFIG"
)

// ErrBadConfig wraps every validation failure reported by Config.Validate.
var ErrBadConfig = errors.New("spantree: invalid configuration")

// Config is the merged CLI configuration.
type Config struct {
	Input       string    `koanf:"input"`
	Source      int       `koanf:"source"`
	Algorithm   string    `koanf:"algorithm"`
	DisjointSet string    `koanf:"disjoint_set"` // forest, compressed
	Labels      string    `koanf:"labels"`       // letters, decimal
	Log         LogConfig `koanf:"log"`
}

// LogConfig configures the slog logger built by newLogger.
type LogConfig struct {
	Level      string `koanf:"level"`  // debug, info, warn, error
	Format     string `koanf:"format"` // json, text
	Output     string `koanf:"output"` // stderr, file
	File       string `koanf:"file"`
	MaxSize    int    `koanf:"max_size"` // MB
	MaxBackups int    `koanf:"max_backups"`
	MaxAge     int    `koanf:"max_age"` // days
	Compress   bool   `koanf:"compress"`
}

var defaults = map[string]any{
	"input":        "-",
	"source":       1,
	"algorithm":    prim_kruskal.MethodKruskal,
	"disjoint_set": "forest",
	"labels":       "letters",

	"log.level":       "info",
	"log.format":      "text",
	"log.output":      "stderr",
	"log.file":        "spantree.log",
	"log.max_size":    10,
	"log.max_backups": 3,
	"log.max_age":     7,
	"log.compress":    false,
}

// envKeyMappings covers keys whose names contain underscores; every other
// SPANTREE_A_B variable maps to a.b.
var envKeyMappings = map[string]string{
	"disjoint_set":    "disjoint_set",
	"log_max_size":    "log.max_size",
	"log_max_backups": "log.max_backups",
	"log_max_age":     "log.max_age",
}

// loadConfig merges, lowest priority first: defaults, the YAML file at path
// (or $SPANTREE_CONFIG when path is empty), SPANTREE_* variables, and
// overrides, which holds the flags set on the command line.
func loadConfig(path string, overrides map[string]any) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path == "" {
		path = os.Getenv(configEnvVar)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.ProviderWithValue(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, fmt.Errorf("load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func envKey(name, value string) (string, any) {
	key := strings.ToLower(strings.TrimPrefix(name, envPrefix))
	if key == "config" {
		// SPANTREE_CONFIG names the file, it is not a setting.
		return "", nil
	}
	if mapped, ok := envKeyMappings[key]; ok {
		return mapped, value
	}

	return strings.ReplaceAll(key, "_", "."), value
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs *multierror.Error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = multierror.Append(errs, fmt.Errorf("%w: %s", ErrBadConfig, fmt.Sprintf(format, args...)))
		}
	}

	check(c.Input != "", "input is empty")
	check(c.Source >= 1, "source %d is not a vertex", c.Source)
	check(oneOf(c.Algorithm, prim_kruskal.MethodPrim, prim_kruskal.MethodKruskal), "algorithm %q", c.Algorithm)
	check(oneOf(c.DisjointSet, "forest", "compressed"), "disjoint_set %q", c.DisjointSet)
	check(oneOf(c.Labels, "letters", "decimal"), "labels %q", c.Labels)
	check(oneOf(c.Log.Level, "debug", "info", "warn", "error"), "log.level %q", c.Log.Level)
	check(oneOf(c.Log.Format, "json", "text"), "log.format %q", c.Log.Format)
	check(oneOf(c.Log.Output, "stderr", "file"), "log.output %q", c.Log.Output)
	check(c.Log.Output != "file" || c.Log.File != "", "log.file is empty")

	return errs.ErrorOrNil()
}

func oneOf(s string, allowed ...string) bool {
	return slices.Contains(allowed, s)
}
