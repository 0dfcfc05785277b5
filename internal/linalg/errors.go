package linalg

import "errors"

// Sentinel errors for the linalg package. Priority order documented as
// checked: shape mismatch -> singularity -> convergence failure.
var (
	// ErrDimensionMismatch indicates incompatible operand shapes.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrSingular is returned when a direct solve hits a (near-)zero pivot.
	ErrSingular = errors.New("linalg: singular matrix")

	// ErrNonSquare indicates a square matrix was required but the operand wasn't.
	ErrNonSquare = errors.New("linalg: matrix is not square")

	// ErrLeastSquaresFailed indicates the least-squares solver could not
	// produce a solution: the regularized normal equations could not be
	// solved, or the solution is not finite.
	ErrLeastSquaresFailed = errors.New("linalg: least-squares solve failed")
)
