// Package nif validates nine-digit tax identification numbers (NIF).
//
// A NIF is valid when it consists of exactly nine ASCII digits, its first
// digit (or first two digits) belongs to the allowed prefix table, and its
// ninth digit equals the mod-11 check digit computed from the first eight:
//
//	total     = d0*9 + d1*8 + d2*7 + d3*6 + d4*5 + d5*4 + d6*3 + d7*2
//	remainder = total % 11
//	check     = 0 if remainder < 2, otherwise 11 - remainder
//
// Allowed prefixes are the single digits 1, 2, 3, 5, 6, 8 and the pairs
// 45, 70, 71, 72, 74, 75, 77, 79, 90, 91, 98, 99.
//
// # Usage
//
//	if !nif.Validate(input) {
//	    // reject
//	}
//
// # Performance Considerations
//
// The prefix table is held in constant bit masks, so membership is a single
// shift-and-AND. Validate does not allocate, keeps no state between calls and
// is safe for concurrent use. Malformed input is rejected on length first,
// then on character class, before the prefix and checksum are evaluated.
package nif
