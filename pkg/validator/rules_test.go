package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/nifkit/pkg/validator"
)

func TestValidNIF(t *testing.T) {
	t.Parallel()
	t.Run("valid numbers", func(t *testing.T) {
		for _, v := range []string{"123456789", "450000001"} {
			err := validator.Apply(validator.ValidNIF("nif", v))
			assert.NoError(t, err, "NIF should be valid: %s", v)
		}
	})

	t.Run("invalid numbers", func(t *testing.T) {
		for _, v := range []string{"", "123456780", "450000000", "12345678", "1234567a9", "400000000"} {
			err := validator.Apply(validator.ValidNIF("nif", v))
			require.Error(t, err, "NIF should be rejected: %q", v)

			verrs := validator.ExtractValidationErrors(err)
			require.NotNil(t, verrs)
			assert.Equal(t, "validation.nif", verrs[0].TranslationKey)
			assert.Equal(t, map[string]any{"field": "nif"}, verrs[0].TranslationValues)
		}
	})
}

func TestNIFPrefix(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.NIFPrefix("nif", "45").Check())
	assert.True(t, validator.NIFPrefix("nif", "123").Check())

	rule := validator.NIFPrefix("nif", "40")
	assert.False(t, rule.Check())
	assert.Equal(t, "validation.nif_prefix", rule.Error.TranslationKey)
}

func TestMinNum(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.MinNum("iterations", 1, 1).Check())
	assert.True(t, validator.MinNum("iterations", 1000, 1).Check())

	rule := validator.MinNum("iterations", 0, 1)
	assert.False(t, rule.Check())
	assert.Equal(t, "must be at least 1", rule.Error.Message)
	assert.Equal(t, "validation.min", rule.Error.TranslationKey)
	assert.Equal(t, map[string]any{"field": "iterations", "min": 1}, rule.Error.TranslationValues)
}

func TestMaxNum(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.MaxNum("ratio", 0.5, 1.0).Check())

	rule := validator.MaxNum("ratio", 1.5, 1.0)
	assert.False(t, rule.Check())
	assert.Equal(t, "must be at most 1", rule.Error.Message)
}

func TestLenAtLeast(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.LenAtLeast("cases", []string{"1"}, 1).Check())

	rule := validator.LenAtLeast("cases", []string(nil), 1)
	assert.False(t, rule.Check())
	assert.Equal(t, "must contain at least 1 items", rule.Error.Message)
}
