package iodata

import "errors"

// ERROR PRIORITY: stream errors are surfaced in read order; a truncated
// or malformed token always wins over any downstream validation.
var (
	// ErrTruncatedStream is returned when a read hits EOF partway
	// through a required token or block.
	ErrTruncatedStream = errors.New("iodata: truncated stream")

	// ErrMalformedToken is returned when a token is present but cannot
	// be parsed as the expected type (int, float, flag byte).
	ErrMalformedToken = errors.New("iodata: malformed token")

	// ErrUnknownRule is returned when a header names a rule string
	// onedwrapper.ParseRule does not recognize.
	ErrUnknownRule = errors.New("iodata: unknown rule name")

	// ErrDimensionMismatch is returned when a decoded block's shape
	// disagrees with the header that announced it.
	ErrDimensionMismatch = errors.New("iodata: dimension mismatch")
)
