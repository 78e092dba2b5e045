package ratio

import "errors"

// ErrLengthMismatch is returned when two forms of different length are
// combined (e.g. added or compared).
var ErrLengthMismatch = errors.New("ratio: form length mismatch")

// ErrEmptyForm is returned when an operation requires at least one
// coefficient (the constant term) but the form has zero length.
var ErrEmptyForm = errors.New("ratio: form has no coefficients")
