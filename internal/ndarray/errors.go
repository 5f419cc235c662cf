package ndarray

import "errors"

// Errors returned by array operations. They are wrapped with context,
// so match them with errors.Is.
var (
	ErrShape             = errors.New("invalid shape")
	ErrDimensionMismatch = errors.New("coordinate count does not match rank")
	ErrLengthMismatch    = errors.New("array lengths differ")
	ErrIndexOutOfRange   = errors.New("coordinate out of range")
)
