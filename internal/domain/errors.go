package domain

import "errors"

// ErrInvalidInput is returned when a calculation is invoked with a parameter
// outside its documented domain. Validation failures wrap it, so callers can
// check with errors.Is.
var ErrInvalidInput = errors.New("invalid input")
