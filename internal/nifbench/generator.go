package nifbench

import (
	"math/rand"
	"reflect"
	"strings"

	"github.com/dmitrymomot/nifkit/pkg/nif"
)

// Generate returns n identifiers: about 70% carry an allowed prefix and a
// correct check digit, the rest are split between wrong length, a
// disallowed prefix and a random check digit.
func Generate(r *rand.Rand, n int) []string {
	out := make([]string, 0, max(n, 0))
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.Reset()
		if r.Float64() < 0.7 {
			writeValid(r, &b)
		} else {
			writeMalformed(r, &b)
		}
		out = append(out, b.String())
	}
	return out
}

func writePrefix(r *rand.Rand, b *strings.Builder) {
	if r.Float64() < 0.6 {
		b.WriteString(singlePrefixes[r.Intn(len(singlePrefixes))])
		return
	}
	b.WriteString(doublePrefixes[r.Intn(len(doublePrefixes))])
}

func writeDigits(r *rand.Rand, b *strings.Builder, n int) {
	for j := 0; j < n; j++ {
		b.WriteByte(byte('0' + r.Intn(10)))
	}
}

func writeValid(r *rand.Rand, b *strings.Builder) {
	writePrefix(r, b)
	writeDigits(r, b, nif.Length-1-b.Len())
	d, _ := nif.CheckDigit(b.String())
	b.WriteByte(d)
}

func writeMalformed(r *rand.Rand, b *strings.Builder) {
	switch r.Intn(3) {
	case 0:
		n := nif.Length - 1
		if r.Intn(2) == 0 {
			n = nif.Length + 1
		}
		writeDigits(r, b, n)
	case 1:
		b.WriteString("4")
		b.WriteByte(byte('0' + r.Intn(2)))
		writeDigits(r, b, nif.Length-2)
	default:
		writePrefix(r, b)
		writeDigits(r, b, nif.Length-b.Len())
	}
}

// Sample is an arbitrary identifier for property tests. Besides the
// Generate distribution it also yields empty, non-ASCII, lettered and
// oversized strings.
type Sample string

var junkRunes = []rune("0123456789abcXYZ -+./\x00é€")

// Generate implements quick.Generator.
func (Sample) Generate(r *rand.Rand, size int) reflect.Value {
	var s string
	switch r.Intn(4) {
	case 0, 1:
		s = Generate(r, 1)[0]
	case 2:
		// Valid shape with a single byte replaced.
		id := []byte(Generate(r, 1)[0])
		if len(id) > 0 {
			id[r.Intn(len(id))] = byte(r.Intn(256))
		}
		s = string(id)
	default:
		n := r.Intn(size + 1)
		var b strings.Builder
		for i := 0; i < n; i++ {
			b.WriteRune(junkRunes[r.Intn(len(junkRunes))])
		}
		s = b.String()
	}
	return reflect.ValueOf(Sample(s))
}
