package nifbench

import (
	"slices"
	"strconv"

	"github.com/dmitrymomot/nifkit/pkg/nif"
)

// Variant is a named implementation of the NIF predicate.
type Variant struct {
	Name string
	Fn   func(string) bool
}

// Variants returns every implementation in a fixed order.
// All of them must agree with nif.Validate on every input.
func Variants() []Variant {
	return []Variant{
		{Name: "Original", Fn: Original},
		{Name: "Set-based", Fn: SetBased},
		{Name: "Direct comparison", Fn: Direct},
		{Name: "Unrolled", Fn: Unrolled},
		{Name: "Bitwise", Fn: Bitwise},
		{Name: "Fixed array", Fn: FixedArray},
		{Name: "Bitwise shift", Fn: BitwiseShift},
		{Name: "Canonical", Fn: nif.Validate},
	}
}

var (
	singlePrefixes = []string{"1", "2", "3", "5", "6", "8"}
	doublePrefixes = []string{"45", "70", "71", "72", "74", "75", "77", "79", "90", "91", "98", "99"}

	singlePrefixSet = toSet(singlePrefixes)
	doublePrefixSet = toSet(doublePrefixes)
)

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func mod11(total int) int {
	r := total % 11
	if r < 2 {
		return 0
	}
	return 11 - r
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Original checks prefixes with slice lookups and parses every digit with strconv.
func Original(s string) bool {
	if len(s) != nif.Length {
		return false
	}
	if !slices.Contains(singlePrefixes, s[:1]) && !slices.Contains(doublePrefixes, s[:2]) {
		return false
	}
	var d [nif.Length]int
	for i := range d {
		n, err := strconv.Atoi(s[i : i+1])
		if err != nil || n < 0 {
			return false
		}
		d[i] = n
	}
	total := d[0]*9 + d[1]*8 + d[2]*7 + d[3]*6 + d[4]*5 + d[5]*4 + d[6]*3 + d[7]*2
	return mod11(total) == d[8]
}

// SetBased checks prefixes against package-level hash sets.
func SetBased(s string) bool {
	if len(s) != nif.Length {
		return false
	}
	for i := 0; i < nif.Length; i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	if _, ok := singlePrefixSet[s[:1]]; !ok {
		if _, ok := doublePrefixSet[s[:2]]; !ok {
			return false
		}
	}
	total := 0
	for i := 0; i < 8; i++ {
		total += int(s[i]-'0') * (9 - i)
	}
	return mod11(total) == int(s[8]-'0')
}

// Direct checks prefixes with equality chains and no containers.
func Direct(s string) bool {
	if len(s) != nif.Length {
		return false
	}
	for i := 0; i < nif.Length; i++ {
		if !isDigit(s[i]) {
			return false
		}
	}

	c0, c1 := s[0], s[1]
	switch {
	case c0 == '1' || c0 == '2' || c0 == '3' || c0 == '5' || c0 == '6' || c0 == '8':
	case c0 == '4' && c1 == '5':
	case c0 == '7' && (c1 == '0' || c1 == '1' || c1 == '2' || c1 == '4' || c1 == '5' || c1 == '7' || c1 == '9'):
	case c0 == '9' && (c1 == '0' || c1 == '1' || c1 == '8' || c1 == '9'):
	default:
		return false
	}

	total := int(s[0]-'0')*9 + int(s[1]-'0')*8 + int(s[2]-'0')*7 + int(s[3]-'0')*6 +
		int(s[4]-'0')*5 + int(s[5]-'0')*4 + int(s[6]-'0')*3 + int(s[7]-'0')*2
	return mod11(total) == int(s[8]-'0')
}

// Unrolled loads all nine bytes into locals and checks them without a loop.
func Unrolled(s string) bool {
	if len(s) != nif.Length {
		return false
	}
	c0, c1, c2, c3, c4, c5, c6, c7, c8 := s[0], s[1], s[2], s[3], s[4], s[5], s[6], s[7], s[8]
	if !isDigit(c0) || !isDigit(c1) || !isDigit(c2) || !isDigit(c3) || !isDigit(c4) ||
		!isDigit(c5) || !isDigit(c6) || !isDigit(c7) || !isDigit(c8) {
		return false
	}

	switch c0 {
	case '1', '2', '3', '5', '6', '8':
	case '4':
		if c1 != '5' {
			return false
		}
	case '7':
		switch c1 {
		case '0', '1', '2', '4', '5', '7', '9':
		default:
			return false
		}
	case '9':
		switch c1 {
		case '0', '1', '8', '9':
		default:
			return false
		}
	default:
		return false
	}

	d0, d1, d2, d3 := int(c0-'0'), int(c1-'0'), int(c2-'0'), int(c3-'0')
	d4, d5, d6, d7 := int(c4-'0'), int(c5-'0'), int(c6-'0'), int(c7-'0')
	total := d0*9 + d1*8 + d2*7 + d3*6 + d4*5 + d5*4 + d6*3 + d7*2
	return mod11(total) == int(c8-'0')
}

// Masks indexed by digit value.
const (
	validFirst = 1<<1 | 1<<2 | 1<<3 | 1<<5 | 1<<6 | 1<<8
	valid7x    = 1<<0 | 1<<1 | 1<<2 | 1<<4 | 1<<5 | 1<<7 | 1<<9
	valid9x    = 1<<0 | 1<<1 | 1<<8 | 1<<9
)

// Bitwise tests the first digit first and reads the second only when needed.
func Bitwise(s string) bool {
	if len(s) != nif.Length {
		return false
	}
	c0 := s[0]
	if !isDigit(c0) {
		return false
	}
	c1 := s[1]
	if (1<<(c0-'0'))&validFirst == 0 {
		if !isDigit(c1) {
			return false
		}
		switch c0 {
		case '4':
			if c1 != '5' {
				return false
			}
		case '7':
			if (1<<(c1-'0'))&valid7x == 0 {
				return false
			}
		case '9':
			if (1<<(c1-'0'))&valid9x == 0 {
				return false
			}
		default:
			return false
		}
	}
	for i := 1; i < nif.Length; i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	sum := int(c0-'0')*9 + int(c1-'0')*8 + int(s[2]-'0')*7 + int(s[3]-'0')*6 +
		int(s[4]-'0')*5 + int(s[5]-'0')*4 + int(s[6]-'0')*3 + int(s[7]-'0')*2
	return mod11(sum) == int(s[8]-'0')
}

// FixedArray copies the digit values into a stack array before any rule runs.
func FixedArray(s string) bool {
	if len(s) != nif.Length {
		return false
	}
	var d [nif.Length]byte
	for i := 0; i < nif.Length; i++ {
		d[i] = s[i] - '0'
		if d[i] > 9 {
			return false
		}
	}
	if (1<<d[0])&validFirst == 0 {
		switch d[0] {
		case 4:
			if d[1] != 5 {
				return false
			}
		case 7:
			if (1<<d[1])&valid7x == 0 {
				return false
			}
		case 9:
			if (1<<d[1])&valid9x == 0 {
				return false
			}
		default:
			return false
		}
	}
	sum := int(d[0])*9 + int(d[1])*8 + int(d[2])*7 + int(d[3])*6 +
		int(d[4])*5 + int(d[5])*4 + int(d[6])*3 + int(d[7])*2
	return mod11(sum) == int(d[8])
}

// BitwiseShift uses masks for the prefix and shifts for the x8 and x2 weights.
func BitwiseShift(s string) bool {
	if len(s) != nif.Length {
		return false
	}
	c0, c1 := s[0], s[1]
	if !isDigit(c0) || !isDigit(c1) {
		return false
	}
	d0, d1 := int(c0-'0'), int(c1-'0')
	if (1<<d0)&validFirst == 0 {
		var ok bool
		switch d0 {
		case 4:
			ok = d1 == 5
		case 7:
			ok = (1<<d1)&valid7x != 0
		case 9:
			ok = (1<<d1)&valid9x != 0
		}
		if !ok {
			return false
		}
	}
	for i := 2; i < nif.Length; i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	sum := d0*9 + d1<<3 + int(s[2]-'0')*7 + int(s[3]-'0')*6 +
		int(s[4]-'0')*5 + int(s[5]-'0')*4 + int(s[6]-'0')*3 + int(s[7]-'0')<<1
	return mod11(sum) == int(s[8]-'0')
}
