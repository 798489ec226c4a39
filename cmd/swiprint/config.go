package main

import (
	"io"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/reglet-dev/swiprint/application/config"
	"github.com/reglet-dev/swiprint/format"
	"github.com/reglet-dev/swiprint/log"
)

// loadConfig reads --config, if given, and applies the logging overrides.
func loadConfig(cmd *cli.Command) (config.Config, error) {
	cfg := config.Default()
	if path := cmd.String("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return config.Config{}, err
		}
	}
	if v := cmd.String("log-level"); v != "" {
		cfg.Log.Level = v
	}
	if v := cmd.String("log-format"); v != "" {
		cfg.Log.Format = v
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newLogger builds the host logger described by cfg, writing to w.
func newLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	level := cfg.SlogLevel()
	switch cfg.Format {
	case "json":
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	case "console":
		return slog.New(log.NewConsoleHandler(format.NewWriterEmitter(w), log.WithLevel(level)))
	default:
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	}
}
