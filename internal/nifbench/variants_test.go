package nifbench_test

import (
	"math/rand"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/nifkit/internal/nifbench"
	"github.com/dmitrymomot/nifkit/pkg/nif"
)

func TestVariants_KnownVectors(t *testing.T) {
	t.Parallel()

	vectors := map[string]bool{
		"123456789":  true,
		"123456780":  false,
		"450000000":  false,
		"450000001":  true,
		"":           false,
		"12345678":   false,
		"1234567890": false,
		"1234567a9":  false,
		"a23456789":  false,
		"1a3456789":  false,
		"400000000":  false,
		"012345678":  false,
		"+23456789":  false,
		"1234567é":   false,
	}

	for _, v := range nifbench.Variants() {
		v := v
		t.Run(v.Name, func(t *testing.T) {
			t.Parallel()
			for in, want := range vectors {
				assert.Equal(t, want, v.Fn(in), "%s(%q)", v.Name, in)
			}
		})
	}
}

func TestVariants_Names(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for _, v := range nifbench.Variants() {
		require.NotEmpty(t, v.Name)
		require.NotNil(t, v.Fn)
		assert.False(t, seen[v.Name], "duplicate variant %s", v.Name)
		seen[v.Name] = true
	}
	assert.True(t, seen["Canonical"])
}

func TestVariants_AgreeOnGeneratedInput(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(20240601))
	cases := nifbench.Generate(r, 20000)
	for i := 0; i < 5000; i++ {
		cases = append(cases, string(sample(r)))
	}

	accepted := 0
	for _, in := range cases {
		want := nif.Validate(in)
		if want {
			accepted++
		}
		for _, v := range nifbench.Variants() {
			if got := v.Fn(in); got != want {
				t.Fatalf("%s(%q) = %v, canonical says %v", v.Name, in, got, want)
			}
		}
	}
	// The generator must exercise both outcomes.
	assert.Greater(t, accepted, len(cases)/2)
	assert.Less(t, accepted, len(cases))
}

func TestVariants_AgreeOnAllPrefixes(t *testing.T) {
	t.Parallel()

	// Every two-digit prefix with every check digit and a fixed body.
	for p := 0; p < 100; p++ {
		for check := 0; check < 10; check++ {
			in := string([]byte{byte('0' + p/10), byte('0' + p%10), '3', '1', '4', '1', '5', '9', byte('0' + check)})
			want := nif.Validate(in)
			for _, v := range nifbench.Variants() {
				assert.Equal(t, want, v.Fn(in), "%s(%q)", v.Name, in)
			}
		}
	}
}

func TestVariants_QuickCheck(t *testing.T) {
	t.Parallel()

	for _, v := range nifbench.Variants() {
		v := v
		t.Run(v.Name, func(t *testing.T) {
			t.Parallel()
			prop := func(s nifbench.Sample) bool {
				return v.Fn(string(s)) == nif.Validate(string(s))
			}
			cfg := &quick.Config{MaxCount: 10000, Rand: rand.New(rand.NewSource(7))}
			require.NoError(t, quick.Check(prop, cfg))
		})
	}
}

func TestValidate_Properties(t *testing.T) {
	t.Parallel()

	cfg := &quick.Config{MaxCount: 10000, Rand: rand.New(rand.NewSource(11))}

	t.Run("accepted input has nine digits", func(t *testing.T) {
		prop := func(s nifbench.Sample) bool {
			if !nif.Validate(string(s)) {
				return true
			}
			if len(s) != nif.Length {
				return false
			}
			for i := 0; i < len(s); i++ {
				if s[i] < '0' || s[i] > '9' {
					return false
				}
			}
			return true
		}
		require.NoError(t, quick.Check(prop, cfg))
	})

	t.Run("wrong length is rejected", func(t *testing.T) {
		prop := func(s string) bool {
			if len(s) == nif.Length {
				return true
			}
			return !nif.Validate(s)
		}
		require.NoError(t, quick.Check(prop, cfg))
	})

	t.Run("exactly one check digit fits", func(t *testing.T) {
		prop := func(s nifbench.Sample) bool {
			in := string(s)
			if len(in) != nif.Length || !nif.HasValidPrefix(in) {
				return true
			}
			if _, ok := nif.CheckDigit(in[:8]); !ok {
				return true
			}
			hits := 0
			for d := byte('0'); d <= '9'; d++ {
				if nif.Validate(in[:8] + string(d)) {
					hits++
				}
			}
			return hits == 1
		}
		require.NoError(t, quick.Check(prop, cfg))
	})
}

func sample(r *rand.Rand) nifbench.Sample {
	return nifbench.Sample("").Generate(r, 20).Interface().(nifbench.Sample)
}

func benchmarkVariant(b *testing.B, fn func(string) bool) {
	cases := nifbench.Generate(rand.New(rand.NewSource(1)), 1024)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		fn(cases[i&1023])
	}
}

func BenchmarkOriginal(b *testing.B)     { benchmarkVariant(b, nifbench.Original) }
func BenchmarkSetBased(b *testing.B)     { benchmarkVariant(b, nifbench.SetBased) }
func BenchmarkDirect(b *testing.B)       { benchmarkVariant(b, nifbench.Direct) }
func BenchmarkUnrolled(b *testing.B)     { benchmarkVariant(b, nifbench.Unrolled) }
func BenchmarkBitwise(b *testing.B)      { benchmarkVariant(b, nifbench.Bitwise) }
func BenchmarkFixedArray(b *testing.B)   { benchmarkVariant(b, nifbench.FixedArray) }
func BenchmarkBitwiseShift(b *testing.B) { benchmarkVariant(b, nifbench.BitwiseShift) }
func BenchmarkCanonical(b *testing.B)    { benchmarkVariant(b, nif.Validate) }
