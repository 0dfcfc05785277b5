// Package multiindex: sentinel error set.
//
// ERROR PRIORITY: dimension mismatch -> negative component -> not-lower.
package multiindex

import "errors"

var (
	// ErrDimensionMismatch indicates a tuple whose length differs from
	// the set's configured dimension.
	ErrDimensionMismatch = errors.New("multiindex: tuple dimension mismatch")

	// ErrNegativeComponent indicates a tuple with a negative entry;
	// multi-indices are tuples of non-negative integers.
	ErrNegativeComponent = errors.New("multiindex: negative component")

	// ErrNotLower indicates an operation that requires a downward-closed
	// set was given one that isn't.
	ErrNotLower = errors.New("multiindex: set is not downward-closed")

	// ErrEmptySet indicates an operation that requires at least one
	// entry was given an empty set.
	ErrEmptySet = errors.New("multiindex: set is empty")
)
