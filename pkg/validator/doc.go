// Package validator provides small declarative validation rules that report
// field-level, translation-friendly errors.
//
// A Rule couples a boolean Check with the ValidationError to report when the
// check fails. Apply evaluates any number of rules and aggregates the failures
// into ValidationErrors, which implements error and matches
// ErrValidationFailed under errors.Is.
//
// # Rules
//
//   - ValidNIF, NIFPrefix – tax identification numbers, backed by package nif
//   - MinNum, MaxNum      – numeric bounds
//   - LenAtLeast          – minimum slice length
//
// # Usage
//
//	err := validator.Apply(
//	    validator.ValidNIF("nif", form.NIF),
//	    validator.MinNum("iterations", cfg.Iterations, 1),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, f := range verrs.Fields() {
//	        // report verrs.Get(f)
//	    }
//	}
//
// Rules carry no state and are safe for concurrent use.
package validator
