package surplus

import (
	"github.com/lvlath/tsgrid/multiindex"
	"github.com/lvlath/tsgrid/onedwrapper"
)

// GridView is the read-only slice of GlobalGrid state a surplus
// Estimator needs. globalgrid.Grid implements this directly.
type GridView interface {
	Dim() int
	ActiveTensors() *multiindex.MultiIndexSet
	Points() *multiindex.MultiIndexSet
	Wrapper() *onedwrapper.OneDWrapper
	// Evaluate returns the grid's current interpolant for output at x.
	Evaluate(x []float64, output int) (float64, error)
}

// Estimator computes hierarchical surpluses for a grid's loaded values.
type Estimator interface {
	// Surpluses returns one value per view.Points() entry (same order),
	// optionally normalized by the maximum absolute surplus.
	Surpluses(view GridView, output int, normalize bool) ([]float64, error)
}
