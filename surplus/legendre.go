package surplus

import (
	"fmt"
	"math"

	"github.com/lvlath/tsgrid/internal/numeric"
	"github.com/lvlath/tsgrid/internal/smolyak"
	"github.com/lvlath/tsgrid/multiindex"
	"github.com/lvlath/tsgrid/onedwrapper"
	"github.com/lvlath/tsgrid/tensorrefs"
)

// Legendre estimates hierarchical surpluses by projecting the grid's
// current interpolant onto the tensor-product Legendre basis, per spec
// §4.2. It carries no state: every call builds its own auxiliary
// quadrature grid sized to the view it is given.
type Legendre struct{}

// NewLegendre returns a Legendre surplus estimator.
func NewLegendre() *Legendre { return &Legendre{} }

// fullBox builds the full hyperrectangular tensor set {0..levels[j]}^d.
// A full box is already downward closed, so it doubles as its own
// "lower set" input to tensorrefs.BuildNested.
func fullBox(levels []int) (*multiindex.MultiIndexSet, error) {
	d := len(levels)
	box, err := multiindex.New(d)
	if err != nil {
		return nil, err
	}
	sizes := make([]int, d)
	for j, l := range levels {
		sizes[j] = l + 1
	}
	n := 1
	for _, s := range sizes {
		n *= s
	}
	for k := 0; k < n; k++ {
		t := tensorrefs.Unravel(k, sizes)
		if _, err := box.Insert(t); err != nil {
			return nil, err
		}
	}
	return box, nil
}

// Surpluses implements Estimator.
func (Legendre) Surpluses(view GridView, output int, normalize bool) ([]float64, error) {
	d := view.Dim()
	active := view.ActiveTensors()
	if active == nil || active.Len() == 0 {
		return nil, ErrNoActiveTensors
	}

	// Step 1: per-dimension bound on interpolation exactness across
	// every active tensor.
	bounds := make([]int, d)
	for i := 0; i < active.Len(); i++ {
		t := active.At(i)
		for j := 0; j < d; j++ {
			e, err := view.Wrapper().IExact(t[j])
			if err != nil {
				return nil, fmt.Errorf("surplus.Legendre.Surpluses: %w", err)
			}
			if e > bounds[j] {
				bounds[j] = e
			}
		}
	}

	// Step 2: pick the auxiliary rule and per-dimension levels that
	// dominate those bounds.
	table, levels, err := chooseAuxRule(bounds)
	if err != nil {
		return nil, fmt.Errorf("surplus.Legendre.Surpluses: %w", err)
	}
	auxWrapper := onedwrapper.New(table)

	// Step 3: Q is the single full box at the chosen levels; its only
	// active tensor is its own top corner, with weight 1 (a full box's
	// Smolyak coefficient identity), but we still route through the
	// general machinery for consistency and to obtain the point set.
	box, err := fullBox(levels)
	if err != nil {
		return nil, fmt.Errorf("surplus.Legendre.Surpluses: %w", err)
	}
	activeQ, wQ, err := smolyak.ActiveTensors(box)
	if err != nil {
		return nil, fmt.Errorf("surplus.Legendre.Surpluses: %w", err)
	}
	auxPoints, auxRefs, err := smolyak.BuildPoints(auxWrapper, box, activeQ, auxWrapper.Nested())
	if err != nil {
		return nil, fmt.Errorf("surplus.Legendre.Surpluses: %w", err)
	}
	auxWeights, err := smolyak.QuadratureWeights(auxWrapper, activeQ, wQ, auxRefs, auxPoints.Len())
	if err != nil {
		return nil, fmt.Errorf("surplus.Legendre.Surpluses: %w", err)
	}

	// Step 4: evaluate the grid's current interpolant at every
	// auxiliary point.
	auxValues := make([]float64, auxPoints.Len())
	auxCoords := make([][]float64, auxPoints.Len())
	for k := 0; k < auxPoints.Len(); k++ {
		idx := auxPoints.At(k)
		x := make([]float64, d)
		for j := 0; j < d; j++ {
			v, err := auxWrapper.Node(levels[j], idx[j])
			if err != nil {
				return nil, fmt.Errorf("surplus.Legendre.Surpluses: %w", err)
			}
			x[j] = v
		}
		auxCoords[k] = x
		val, err := view.Evaluate(x, output)
		if err != nil {
			return nil, fmt.Errorf("surplus.Legendre.Surpluses: %w", err)
		}
		auxValues[k] = val
	}

	// Step 5: project onto the Legendre basis at each grid point.
	points := view.Points()
	surpluses := make([]float64, points.Len())
	for p := 0; p < points.Len(); p++ {
		degree := points.At(p)
		sum := 0.0
		for k := 0; k < auxPoints.Len(); k++ {
			basis := 1.0
			for j := 0; j < d; j++ {
				basis *= numeric.LegendreP(degree[j], auxCoords[k][j])
			}
			sum += auxWeights[k] * auxValues[k] * basis
		}
		norm := 1.0
		for j := 0; j < d; j++ {
			norm *= math.Sqrt(float64(degree[j]) + 0.5)
		}
		surpluses[p] = sum * norm
	}

	// Step 6: optional normalization by the maximum magnitude.
	if normalize {
		maxAbs := 0.0
		for _, s := range surpluses {
			if a := math.Abs(s); a > maxAbs {
				maxAbs = a
			}
		}
		if maxAbs > 0 {
			for i := range surpluses {
				surpluses[i] /= maxAbs
			}
		}
	}

	return surpluses, nil
}
