package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/nifkit/pkg/logger"
)

func TestAttrs(t *testing.T) {
	t.Parallel()

	t.Run("error", func(t *testing.T) {
		assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
		attr := logger.Error(errors.New("boom"))
		assert.Equal(t, "error", attr.Key)
	})

	t.Run("run id", func(t *testing.T) {
		assert.True(t, logger.RunID(nil).Equal(slog.Attr{}))
		assert.Equal(t, "run_id", logger.RunID("abc").Key)
	})

	t.Run("scalars", func(t *testing.T) {
		assert.True(t, logger.Component("harness").Equal(slog.String("component", "harness")))
		assert.True(t, logger.Variant("Canonical").Equal(slog.String("variant", "Canonical")))
		assert.True(t, logger.Iteration(3).Equal(slog.Int("iteration", 3)))
		assert.True(t, logger.Count("cases", 10).Equal(slog.Int("cases", 10)))
		assert.True(t, logger.Duration(time.Second).Equal(slog.Duration("duration", time.Second)))
	})
}
