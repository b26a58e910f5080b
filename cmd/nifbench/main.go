// Command nifbench times every NIF implementation over a generated data set
// and prints a comparison.
//
// Settings come from the environment (or a .env file):
//
//	NIFBENCH_CASES       identifiers per pass (default 10000)
//	NIFBENCH_ITERATIONS  passes per variant (default 1000)
//	NIFBENCH_SEED        generator seed, 0 picks one from the clock
//	NIFBENCH_FORMAT      text, json or yaml
//	APP_ENV              development, staging or production
//	LOG_LEVEL            debug, info, warn or error
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/bgrewell/usage"
	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/dmitrymomot/nifkit/internal/nifbench"
	"github.com/dmitrymomot/nifkit/pkg/logger"
)

func main() {
	u := usage.NewUsage()
	help := u.AddBooleanOption("h", "help", false, "Show this help message", "optional", nil)
	verbose := u.AddBooleanOption("v", "verbose", false, "Enable debug logging", "optional", nil)
	quiet := u.AddBooleanOption("q", "quiet", false, "Disable the progress spinner", "optional", nil)
	parsed := u.Parse()

	if !parsed {
		u.PrintError(fmt.Errorf("failed to parse arguments"))
		os.Exit(2)
	}

	if *help {
		u.PrintUsage()
		os.Exit(0)
	}

	s, err := loadSettings()
	if err != nil {
		u.PrintError(err)
		os.Exit(2)
	}

	// Per-iteration events are debug records; keep them behind -v or LOG_LEVEL.
	level := slog.LevelInfo
	if s.logLevel != nil {
		level = *s.logLevel
	}
	if *verbose {
		level = slog.LevelDebug
	}
	log := logger.New(
		logger.WithEnvironment(s.env, "nifbench"),
		logger.WithLevel(level),
		logger.WithContextExtractors(nifbench.RunIDExtractor),
	)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ctx = nifbench.ContextWithRunID(ctx, uuid.NewString())
	colored := term.IsTerminal(int(os.Stdout.Fd()))
	if err := run(ctx, os.Stdout, log, s, colored, colored && !*quiet); err != nil {
		log.ErrorContext(ctx, "benchmark failed", logger.Error(err))
		stop()
		os.Exit(1)
	}
}

// run generates the cases, benchmarks every variant and writes the report to w.
// The spinner is shown only when spin is set; colored applies to text output.
func run(ctx context.Context, w io.Writer, log *slog.Logger, s *settings, colored, spin bool) error {
	seed := s.bench.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.DebugContext(ctx, "generating cases", logger.Count("cases", s.bench.Cases), slog.Int64("seed", seed))
	cases := nifbench.Generate(rand.New(rand.NewSource(seed)), s.bench.Cases)

	var spinner *progressSpinner
	if spin {
		sp, err := newProgressSpinner(fmt.Sprintf(" running %d variants", len(nifbench.Variants())))
		if err != nil {
			log.WarnContext(ctx, "progress updates disabled", logger.Error(err))
		} else {
			spinner = sp
		}
	}

	report, err := nifbench.Run(ctx, cases, s.bench.Iterations, nifbench.Variants(),
		nifbench.WithLogger(log),
		nifbench.WithProgress(spinner.progress()),
	)
	if err != nil {
		spinner.fail(err)
		return err
	}
	spinner.done(report.Fastest)

	return nifbench.Write(w, report, nifbench.Format(s.bench.Format), colored)
}
