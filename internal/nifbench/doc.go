// Package nifbench measures alternative implementations of the NIF predicate.
//
// Variants lists hand-tuned versions of the check (slice lookups, hash sets,
// equality chains, bit masks) next to the canonical nif.Validate. They exist
// to compare speed and to prove equivalence in tests; production code calls
// nif.Validate directly.
//
// Generate builds a reproducible mix of valid and malformed identifiers, Run
// times every variant over it, and Write renders the resulting Report as a
// text table, JSON or YAML.
package nifbench
