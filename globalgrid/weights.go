package globalgrid

import (
	"fmt"

	"github.com/lvlath/tsgrid/internal/linalg"
	"github.com/lvlath/tsgrid/internal/numeric"
	"github.com/lvlath/tsgrid/internal/smolyak"
	"github.com/lvlath/tsgrid/multiindex"
	"github.com/lvlath/tsgrid/onedwrapper"
)

// ActiveTensors returns the grid's active tensor set. Satisfies
// surplus.GridView.
func (g *Grid) ActiveTensors() *multiindex.MultiIndexSet {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.activeTensors
}

// Points returns the grid's current (loaded) point set. Satisfies
// surplus.GridView.
func (g *Grid) Points() *multiindex.MultiIndexSet {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.points
}

// Wrapper returns the grid's 1-D rule cache. Satisfies surplus.GridView.
func (g *Grid) Wrapper() *onedwrapper.OneDWrapper {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.wrapper
}

// GetPoints returns the loaded point set's coordinate rows.
func (g *Grid) GetPoints() ([][]float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.coordsOf(g.points)
}

// GetNeededPoints returns the pending point set's coordinate rows.
func (g *Grid) GetNeededPoints() ([][]float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.coordsOf(g.needed)
}

// coordsOf resolves a set of dimension-index tuples to real coordinates
// via the grid's wrapper, per-dimension node index -> value lookup. The
// caller holds at least a read lock.
func (g *Grid) coordsOf(idxSet *multiindex.MultiIndexSet) ([][]float64, error) {
	if idxSet == nil {
		return nil, nil
	}
	out := make([][]float64, idxSet.Len())
	for i := 0; i < idxSet.Len(); i++ {
		idx := idxSet.At(i)
		x := make([]float64, g.numDims)
		for j, k := range idx {
			v, err := g.wrapper.Node(g.smallestLevelFor(k), k)
			if err != nil {
				return nil, fmt.Errorf("globalgrid.coordsOf: %w", err)
			}
			x[j] = v
		}
		out[i] = x
	}
	return out, nil
}

// smallestLevelFor resolves the smallest level at which node index k is
// defined: nested tables are meta-ordered so a node's index is invariant
// across every level that contains it, so the smallest level whose point
// count exceeds k always resolves to the same coordinate as any larger
// level would.
func (g *Grid) smallestLevelFor(k int) int {
	for level := 0; ; level++ {
		n, err := g.wrapper.NumPoints(level)
		if err != nil || k < n {
			return level
		}
	}
}

// GetQuadratureWeights returns one weight per loaded point (spec §4.1).
func (g *Grid) GetQuadratureWeights() ([]float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.made {
		return nil, ErrNotMade
	}
	return smolyak.QuadratureWeights(g.wrapper, g.activeTensors, g.activeW, g.tensorRefs, g.points.Len())
}

// GetInterpolationWeights returns one weight per loaded point for query
// point x (spec §4.1).
func (g *Grid) GetInterpolationWeights(x []float64) ([]float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.made {
		return nil, ErrNotMade
	}
	if len(x) != g.numDims {
		return nil, fmt.Errorf("globalgrid.GetInterpolationWeights: %w", ErrDimensionMismatch)
	}
	return smolyak.InterpolationWeights(g.wrapper, g.activeTensors, g.activeW, g.tensorRefs, g.maxLevels, x, g.points.Len())
}

// Evaluate returns the grid's interpolant for output at x: y = values^T
// . weights(x). Satisfies surplus.GridView.
func (g *Grid) Evaluate(x []float64, output int) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.evaluateLocked(x, output)
}

// evaluateLocked is Evaluate's body, callable with the mutex already held
// (read or write) by the caller. Used directly by lockFreeView, which
// backs the estimator calls made from within SetAnisotropicRefinement and
// SetSurplusRefinement while the write lock is already held: those cannot
// go through Evaluate/ActiveTensors/Points/Wrapper, since sync.RWMutex is
// not reentrant and a writer already owns the lock.
func (g *Grid) evaluateLocked(x []float64, output int) (float64, error) {
	if g.values == nil {
		return 0, ErrNoValuesLoaded
	}
	if output < 0 || output >= g.numOutputs {
		return 0, fmt.Errorf("globalgrid.Evaluate: %w", ErrOutputIndex)
	}
	if len(x) != g.numDims {
		return 0, fmt.Errorf("globalgrid.Evaluate: %w", ErrDimensionMismatch)
	}
	weights, err := smolyak.InterpolationWeights(g.wrapper, g.activeTensors, g.activeW, g.tensorRefs, g.maxLevels, x, g.points.Len())
	if err != nil {
		return 0, fmt.Errorf("globalgrid.Evaluate: %w", err)
	}
	var y float64
	for i, w := range weights {
		y += w * g.values.At(i, output)
	}
	return y, nil
}

// lockFreeView adapts a Grid already locked by its caller to
// surplus.GridView without taking a nested lock. Construct with
// g.viewLocked() and pass to an Estimator only while g.mu is held.
type lockFreeView struct{ g *Grid }

func (v *lockFreeView) Dim() int { return v.g.numDims }

func (v *lockFreeView) ActiveTensors() *multiindex.MultiIndexSet { return v.g.activeTensors }

func (v *lockFreeView) Points() *multiindex.MultiIndexSet { return v.g.points }

func (v *lockFreeView) Wrapper() *onedwrapper.OneDWrapper { return v.g.wrapper }

func (v *lockFreeView) Evaluate(x []float64, output int) (float64, error) {
	return v.g.evaluateLocked(x, output)
}

// viewLocked returns a surplus.GridView usable while g.mu is already held
// by the caller (read or write).
func (g *Grid) viewLocked() *lockFreeView { return &lockFreeView{g: g} }

// EvaluateBatch evaluates output at every row of xs, in parallel over
// disjoint output slots, per spec §5's fork-join model.
func (g *Grid) EvaluateBatch(xs [][]float64, output int) ([]float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.values == nil {
		return nil, ErrNoValuesLoaded
	}
	if output < 0 || output >= g.numOutputs {
		return nil, fmt.Errorf("globalgrid.EvaluateBatch: %w", ErrOutputIndex)
	}

	out := make([]float64, len(xs))
	errs := make([]error, len(xs))
	numeric.Parallel(len(xs), 8, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if len(xs[i]) != g.numDims {
				errs[i] = fmt.Errorf("globalgrid.EvaluateBatch: row %d: %w", i, ErrDimensionMismatch)
				continue
			}
			weights, err := smolyak.InterpolationWeights(g.wrapper, g.activeTensors, g.activeW, g.tensorRefs, g.maxLevels, xs[i], g.points.Len())
			if err != nil {
				errs[i] = fmt.Errorf("globalgrid.EvaluateBatch: row %d: %w", i, err)
				continue
			}
			var y float64
			for k, w := range weights {
				y += w * g.values.At(k, output)
			}
			out[i] = y
		}
	})
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// EvaluateBatchMatrix is the GEMM form of EvaluateBatch: it assembles
// every query point's interpolation weights into a dense
// len(xs) x numPoints matrix and multiplies by the values matrix in a
// single call, per spec §4.1's "with BLAS available" note.
func (g *Grid) EvaluateBatchMatrix(xs [][]float64) (*linalg.DenseMatrix, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.values == nil {
		return nil, ErrNoValuesLoaded
	}
	weightRows := make([][]float64, len(xs))
	for i, x := range xs {
		if len(x) != g.numDims {
			return nil, fmt.Errorf("globalgrid.EvaluateBatchMatrix: row %d: %w", i, ErrDimensionMismatch)
		}
		w, err := smolyak.InterpolationWeights(g.wrapper, g.activeTensors, g.activeW, g.tensorRefs, g.maxLevels, x, g.points.Len())
		if err != nil {
			return nil, fmt.Errorf("globalgrid.EvaluateBatchMatrix: row %d: %w", i, err)
		}
		weightRows[i] = w
	}
	weightMatrix, err := linalg.NewDenseMatrixFromRows(weightRows)
	if err != nil {
		return nil, fmt.Errorf("globalgrid.EvaluateBatchMatrix: %w", err)
	}
	return weightMatrix.MulMat(g.values)
}

// Integrate returns the quadrature approximation of output's integral.
func (g *Grid) Integrate(output int) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.values == nil {
		return 0, ErrNoValuesLoaded
	}
	if output < 0 || output >= g.numOutputs {
		return 0, fmt.Errorf("globalgrid.Integrate: %w", ErrOutputIndex)
	}
	weights, err := smolyak.QuadratureWeights(g.wrapper, g.activeTensors, g.activeW, g.tensorRefs, g.points.Len())
	if err != nil {
		return 0, fmt.Errorf("globalgrid.Integrate: %w", err)
	}
	var y float64
	for i, w := range weights {
		y += w * g.values.At(i, output)
	}
	return y, nil
}
