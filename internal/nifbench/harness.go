package nifbench

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/nifkit/pkg/logger"
	"github.com/dmitrymomot/nifkit/pkg/validator"
)

// Option configures Run.
type Option func(*runConfig)

type runConfig struct {
	log      *slog.Logger
	progress func(done, total int)
	runID    string
	now      func() time.Time
}

// WithLogger sets the logger for run events. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *runConfig) {
		if l != nil {
			c.log = l
		}
	}
}

// WithProgress registers fn, called after every completed iteration.
func WithProgress(fn func(done, total int)) Option {
	return func(c *runConfig) { c.progress = fn }
}

// WithRunID overrides the generated run identifier.
func WithRunID(id string) Option {
	return func(c *runConfig) {
		if id != "" {
			c.runID = id
		}
	}
}

// withClock replaces time.Now in tests.
func withClock(now func() time.Time) Option {
	return func(c *runConfig) { c.now = now }
}

// Report is the outcome of one harness run. Results are ordered fastest first.
type Report struct {
	RunID      string   `json:"run_id" yaml:"run_id"`
	Cases      int      `json:"cases" yaml:"cases"`
	Iterations int      `json:"iterations" yaml:"iterations"`
	Fastest    string   `json:"fastest" yaml:"fastest"`
	Mismatch   string   `json:"mismatch,omitempty" yaml:"mismatch,omitempty"`
	Results    []Result `json:"results" yaml:"results"`
}

// Result holds the timings of one variant over the whole case list.
type Result struct {
	Name      string        `json:"name" yaml:"name"`
	Avg       time.Duration `json:"avg_ns" yaml:"avg"`
	Min       time.Duration `json:"min_ns" yaml:"min"`
	Max       time.Duration `json:"max_ns" yaml:"max"`
	Accepted  int           `json:"accepted" yaml:"accepted"`
	SlowerPct float64       `json:"slower_pct" yaml:"slower_pct"`
}

// Run times every variant over cases, iterations times, and reports the
// average, minimum and maximum pass duration per variant.
//
// Before timing, each variant is checked against the first one on every
// case; the first disagreeing input is recorded in Report.Mismatch.
// Cancelling ctx stops the run between passes. Run keeps no shared state,
// so concurrent calls are safe.
//
// The run id comes from WithRunID, then from ctx (see ContextWithRunID),
// and is generated otherwise. It is stored in the context passed to every
// log call; register RunIDExtractor on the logger to record it.
func Run(ctx context.Context, cases []string, iterations int, variants []Variant, opts ...Option) (*Report, error) {
	if err := validator.Apply(
		validator.LenAtLeast("cases", cases, 1),
		validator.MinNum("iterations", iterations, 1),
		validator.LenAtLeast("variants", variants, 1),
		noNilFuncs("variants", variants),
	); err != nil {
		return nil, errors.Join(ErrInvalidInput, err)
	}

	cfg := &runConfig{
		log: logger.Discard(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.runID == "" {
		if id, ok := RunIDFromContext(ctx); ok {
			cfg.runID = id
		} else {
			cfg.runID = uuid.NewString()
		}
	}
	ctx = ContextWithRunID(ctx, cfg.runID)
	log := cfg.log.With(logger.Component("harness"))

	report := &Report{
		RunID:      cfg.runID,
		Cases:      len(cases),
		Iterations: iterations,
		Results:    make([]Result, len(variants)),
	}

	for i, v := range variants {
		report.Results[i] = Result{Name: v.Name, Min: time.Duration(1<<63 - 1)}
	}
	if name, input, ok := disagreement(cases, variants, report.Results); ok {
		report.Mismatch = fmt.Sprintf("%s disagrees with %s on %q", name, variants[0].Name, input)
		log.WarnContext(ctx, "variants disagree", logger.Variant(name), slog.String("input", input))
	}

	log.InfoContext(ctx, "benchmark started",
		logger.Count("cases", len(cases)),
		logger.Count("iterations", iterations),
		logger.Count("variants", len(variants)),
	)

	totals := make([]time.Duration, len(variants))
	for it := 1; it <= iterations; it++ {
		var spent time.Duration
		for i, v := range variants {
			if err := ctx.Err(); err != nil {
				log.WarnContext(ctx, "benchmark cancelled", logger.Iteration(it), logger.Error(err))
				return nil, fmt.Errorf("%w: %w", ErrCancelled, err)
			}
			elapsed, accepted := timePass(cfg.now, v.Fn, cases)
			totals[i] += elapsed
			spent += elapsed
			r := &report.Results[i]
			if accepted != r.Accepted {
				log.WarnContext(ctx, "unstable verdicts", logger.Variant(v.Name),
					logger.Iteration(it), logger.Count("accepted", accepted))
			}
			r.Min = min(r.Min, elapsed)
			r.Max = max(r.Max, elapsed)
		}
		log.DebugContext(ctx, "iteration finished", logger.Iteration(it), logger.Duration(spent))
		if cfg.progress != nil {
			cfg.progress(it, iterations)
		}
	}

	for i := range report.Results {
		report.Results[i].Avg = totals[i] / time.Duration(iterations)
	}
	rank(report)

	log.InfoContext(ctx, "benchmark finished", logger.Variant(report.Fastest))
	return report, nil
}

// disagreement counts accepted cases per variant into results and returns
// the first variant and input whose verdict differs from variants[0].
func disagreement(cases []string, variants []Variant, results []Result) (string, string, bool) {
	var (
		name, input string
		found       bool
	)
	for _, c := range cases {
		want := variants[0].Fn(c)
		for i, v := range variants {
			got := want
			if i > 0 {
				got = v.Fn(c)
			}
			if got {
				results[i].Accepted++
			}
			if got != want && !found {
				name, input, found = v.Name, c, true
			}
		}
	}
	return name, input, found
}

// timePass returns the pass duration and the number of accepted cases.
func timePass(now func() time.Time, fn func(string) bool, cases []string) (time.Duration, int) {
	n := 0
	start := now()
	for _, c := range cases {
		if fn(c) {
			n++
		}
	}
	return now().Sub(start), n
}

func noNilFuncs(field string, variants []Variant) validator.Rule {
	return validator.Rule{
		Check: func() bool {
			for _, v := range variants {
				if v.Fn == nil {
					return false
				}
			}
			return true
		},
		Error: validator.ValidationError{
			Field:          field,
			Message:        "must not contain a variant without a function",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// rank orders results by average time and fills Fastest and SlowerPct.
func rank(report *Report) {
	slices.SortStableFunc(report.Results, func(a, b Result) int {
		return cmp.Compare(a.Avg, b.Avg)
	})
	fastest := report.Results[0]
	report.Fastest = fastest.Name
	for i := range report.Results {
		r := &report.Results[i]
		if fastest.Avg > 0 {
			r.SlowerPct = (float64(r.Avg)/float64(fastest.Avg) - 1) * 100
		}
	}
}
