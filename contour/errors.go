package contour

import "errors"

// ERROR PRIORITY: validation errors from NewSelector are returned in the
// order the arguments are listed in the constructor's signature.
var (
	// ErrUnknownType is returned by ParseType for a name that does not
	// match any contour family.
	ErrUnknownType = errors.New("contour: unknown contour type")

	// ErrDimensionMismatch is returned when a weight vector's length
	// does not match the selector's dimension (linear families) or
	// twice it (curved families).
	ErrDimensionMismatch = errors.New("contour: weight vector length mismatch")

	// ErrNegativeWeight is returned when an anisotropic weight is <= 0;
	// contour functions here require strictly positive linear weights
	// to stay non-decreasing and to guarantee Select terminates.
	ErrNegativeWeight = errors.New("contour: anisotropic weight must be positive")

	// ErrNoExactness is returned by an ip*/qp* selector when it was
	// constructed without an ExactnessFunc.
	ErrNoExactness = errors.New("contour: ip/qp contour type requires an exactness function")

	// ErrNegativeDepth is returned by Select for a negative depth.
	ErrNegativeDepth = errors.New("contour: depth must be non-negative")
)
