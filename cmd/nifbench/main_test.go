package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/nifkit/internal/nifbench"
	"github.com/dmitrymomot/nifkit/pkg/logger"
)

func TestRun(t *testing.T) {
	s := &settings{bench: benchConfig{Cases: 100, Iterations: 2, Seed: 1, Format: "json"}}

	buf := &bytes.Buffer{}
	ctx := nifbench.ContextWithRunID(context.Background(), "run-test")
	err := run(ctx, buf, logger.Discard(), s, false, false)
	require.NoError(t, err)

	var report nifbench.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))
	assert.Equal(t, "run-test", report.RunID)
	assert.Equal(t, 100, report.Cases)
	assert.Len(t, report.Results, len(nifbench.Variants()))
	assert.Empty(t, report.Mismatch)
}

func TestRun_ColoredWithoutSpinner(t *testing.T) {
	s := &settings{bench: benchConfig{Cases: 50, Iterations: 1, Seed: 1, Format: "text"}}

	buf := &bytes.Buffer{}
	require.NoError(t, run(context.Background(), buf, logger.Discard(), s, true, false))
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "--- BENCHMARK RESULTS ---")
}

func TestRun_LogsRunIDFromContext(t *testing.T) {
	s := &settings{bench: benchConfig{Cases: 20, Iterations: 1, Seed: 1, Format: "json"}}

	logs := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(logs),
		logger.WithLevel(slog.LevelDebug),
		logger.WithContextExtractors(nifbench.RunIDExtractor),
	)
	ctx := nifbench.ContextWithRunID(context.Background(), "run-log")
	require.NoError(t, run(ctx, &bytes.Buffer{}, log, s, false, false))

	lines := strings.Split(strings.TrimSpace(logs.String()), "\n")
	require.NotEmpty(t, lines)
	for _, line := range lines {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		assert.Equal(t, "run-log", entry["run_id"], line)
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := &settings{bench: benchConfig{Cases: 10, Iterations: 5, Seed: 1, Format: "text"}}
	err := run(ctx, &bytes.Buffer{}, logger.Discard(), s, false, false)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProgressText(t *testing.T) {
	assert.Equal(t, " iteration 1/4 - 25%", progressText(1, 4))
	assert.Equal(t, " iteration 4/4 - 100%", progressText(4, 4))

	var p *progressSpinner
	assert.Nil(t, p.progress())
	assert.NotPanics(t, func() {
		p.done("Canonical")
		p.fail(context.Canceled)
	})
}
