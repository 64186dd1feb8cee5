package main

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// newLogger builds the CLI logger. Output "file" writes through a rotating
// lumberjack.Logger; anything else writes to stderr. The returned close
// function releases the file and is safe to call for stderr.
func newLogger(cfg LogConfig, stderr io.Writer) (*slog.Logger, func() error) {
	var lvl slog.Level
	switch cfg.Level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	writer := stderr
	closeFn := func() error { return nil }
	if cfg.Output == "file" {
		lj := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		writer, closeFn = lj, lj.Close
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(writer, opts)
	default:
		handler = slog.NewTextHandler(writer, opts)
	}

	return slog.New(handler), closeFn
}
