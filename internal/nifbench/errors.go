package nifbench

import "errors"

var (
	// ErrInvalidInput is returned by Run for an empty case list, a non-positive
	// iteration count or no variants. It is joined with validator.ValidationErrors.
	ErrInvalidInput = errors.New("invalid benchmark input")

	// ErrCancelled is returned by Run when its context is done before the last pass.
	ErrCancelled = errors.New("benchmark cancelled")

	// ErrUnknownFormat is returned by Write for an unsupported output format.
	ErrUnknownFormat = errors.New("unknown report format")
)
