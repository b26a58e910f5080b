package validator

import "github.com/dmitrymomot/nifkit/pkg/nif"

// ValidNIF validates a nine-digit tax identification number.
func ValidNIF(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return nif.Validate(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "invalid tax identification number",
			TranslationKey: "validation.nif",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// NIFPrefix validates only the leading digits of a tax identification number.
// Useful for rejecting obviously wrong input while it is still being typed.
func NIFPrefix(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return nif.HasValidPrefix(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "tax identification number has an unknown prefix",
			TranslationKey: "validation.nif_prefix",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
