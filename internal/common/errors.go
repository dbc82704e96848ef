// Package common defines sentinel errors shared by the contactbook layers.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// View-level errors: raw form input failed a field rule.
	ErrValidation = errors.New("validation error")
)
