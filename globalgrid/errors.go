package globalgrid

import "errors"

// ERROR PRIORITY: constructor/option errors are checked in the order
// their corresponding Option was applied; operation errors are checked
// in the order documented on each method.
var (
	// ErrNotMade is returned by any operation that requires Make to
	// have run first.
	ErrNotMade = errors.New("globalgrid: grid has not been made")

	// ErrNoValuesLoaded is returned by SetSurplusRefinement,
	// EstimateAnisotropicCoefficients, Evaluate, and Integrate when no
	// values have ever been loaded.
	ErrNoValuesLoaded = errors.New("globalgrid: no values loaded")

	// ErrRowCountMismatch is returned by LoadNeededPoints when the
	// supplied value batch does not have one row per needed point.
	ErrRowCountMismatch = errors.New("globalgrid: value batch row count does not match needed point count")

	// ErrPointNotPending is returned by dynamic construction's
	// LoadConstructedPoint when x does not match any point the journal
	// is currently waiting on.
	ErrPointNotPending = errors.New("globalgrid: point is not pending in the construction journal")

	// ErrNoPendingRefinement is returned by AcceptUpdatedTensors when
	// no refinement is currently staged.
	ErrNoPendingRefinement = errors.New("globalgrid: no refinement is pending")

	// ErrDimensionMismatch is returned when a caller-supplied point or
	// weight vector does not match the grid's dimension.
	ErrDimensionMismatch = errors.New("globalgrid: dimension mismatch")

	// ErrOutputIndex is returned for an out-of-range output index.
	ErrOutputIndex = errors.New("globalgrid: output index out of range")

	// ErrNoConstructionInProgress is returned by dynamic-construction
	// operations called before BeginConstruction.
	ErrNoConstructionInProgress = errors.New("globalgrid: no construction in progress")

	// ErrLevelLimitLength is returned when a level-limit slice's length
	// does not equal the grid's dimension.
	ErrLevelLimitLength = errors.New("globalgrid: level limit slice length must equal dimension")
)
