package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/nifkit/internal/nifbench"
	"github.com/dmitrymomot/nifkit/pkg/config"
	"github.com/dmitrymomot/nifkit/pkg/environment"
	"github.com/dmitrymomot/nifkit/pkg/validator"
)

const maxCases = 10_000_000

// benchConfig is read from NIFBENCH_* variables.
type benchConfig struct {
	Cases      int    `env:"CASES" envDefault:"10000"`
	Iterations int    `env:"ITERATIONS" envDefault:"1000"`
	Seed       int64  `env:"SEED" envDefault:"0"`
	Format     string `env:"FORMAT" envDefault:"text"`
}

// appConfig holds the unprefixed process settings.
type appConfig struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL"`
}

type settings struct {
	bench    benchConfig
	env      environment.Environment
	logLevel *slog.Level
}

var errInvalidConfig = errors.New("invalid configuration")

func loadSettings(opts ...config.Option) (*settings, error) {
	var app appConfig
	if err := config.Load(&app, opts...); err != nil {
		return nil, err
	}

	var bench benchConfig
	if err := config.Load(&bench, append(opts, config.WithPrefix("NIFBENCH_"))...); err != nil {
		return nil, err
	}

	if err := validator.Apply(
		validator.MinNum("NIFBENCH_CASES", bench.Cases, 1),
		validator.MaxNum("NIFBENCH_CASES", bench.Cases, maxCases),
		validator.MinNum("NIFBENCH_ITERATIONS", bench.Iterations, 1),
	); err != nil {
		return nil, errors.Join(errInvalidConfig, err)
	}

	switch nifbench.Format(bench.Format) {
	case nifbench.FormatText, nifbench.FormatJSON, nifbench.FormatYAML:
	default:
		return nil, fmt.Errorf("%w: NIFBENCH_FORMAT %q: %w", errInvalidConfig, bench.Format, nifbench.ErrUnknownFormat)
	}

	s := &settings{bench: bench, env: environment.Parse(app.Env)}
	if app.LogLevel != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(app.LogLevel)); err != nil {
			return nil, fmt.Errorf("%w: LOG_LEVEL: %w", errInvalidConfig, err)
		}
		s.logLevel = &lvl
	}
	return s, nil
}
