package nifbench

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/nifkit/pkg/logger"
)

type runIDKey struct{}

// ContextWithRunID returns a copy of ctx carrying the benchmark run id.
// Run picks it up when no WithRunID option is given.
func ContextWithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey{}, id)
}

// RunIDFromContext returns the run id stored in ctx, if any.
func RunIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(runIDKey{}).(string)
	return id, ok && id != ""
}

// RunIDExtractor adds the run id to log records.
// Register it with logger.WithContextExtractors.
func RunIDExtractor(ctx context.Context) (slog.Attr, bool) {
	id, ok := RunIDFromContext(ctx)
	if !ok {
		return slog.Attr{}, false
	}
	return logger.RunID(id), true
}
