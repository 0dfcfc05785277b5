package waveletgrid

import "errors"

// ERROR PRIORITY: constructor/option errors are checked in the order
// their corresponding Option was applied; operation errors are checked
// in the order documented on each method.
var (
	// ErrNotMade is returned by any operation that requires Make to
	// have run first.
	ErrNotMade = errors.New("waveletgrid: grid has not been made")

	// ErrNoValuesLoaded is returned by SetRefinement, Evaluate, and
	// Integrate when no values have ever been loaded.
	ErrNoValuesLoaded = errors.New("waveletgrid: no values loaded")

	// ErrRowCountMismatch is returned by LoadNeededPoints when the
	// supplied value batch does not have one row per needed point.
	ErrRowCountMismatch = errors.New("waveletgrid: value batch row count does not match needed point count")

	// ErrDimensionMismatch is returned when a caller-supplied point or
	// weight vector does not match the grid's dimension.
	ErrDimensionMismatch = errors.New("waveletgrid: dimension mismatch")

	// ErrOutputIndex is returned for an out-of-range output index.
	ErrOutputIndex = errors.New("waveletgrid: output index out of range")

	// ErrLevelLimitLength is returned when a level-limit slice's length
	// does not equal the grid's dimension.
	ErrLevelLimitLength = errors.New("waveletgrid: level limit slice length must equal dimension")

	// ErrInvalidOrder is returned by NewWavelet for any order other
	// than 1 or 3.
	ErrInvalidOrder = errors.New("waveletgrid: order must be 1 or 3")

	// ErrCoefficientCountMismatch is returned by SetHierarchicalCoefficients
	// when the supplied slice does not have one entry per point.
	ErrCoefficientCountMismatch = errors.New("waveletgrid: coefficient count does not match point count")
)
