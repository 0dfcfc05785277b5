package tensorrefs

import "errors"

var (
	// ErrDimensionMismatch is returned when a tensor's dimension does
	// not match the point set being built.
	ErrDimensionMismatch = errors.New("tensorrefs: dimension mismatch")
)
