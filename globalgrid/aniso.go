package globalgrid

import (
	"fmt"
	"math"

	"github.com/lvlath/tsgrid/contour"
	"github.com/lvlath/tsgrid/internal/linalg"
	"github.com/lvlath/tsgrid/internal/numeric"
)

// EstimateAnisotropicCoefficients estimates per-dimension anisotropic
// weights for typ from output's hierarchical surpluses (spec §4.3).
func (g *Grid) EstimateAnisotropicCoefficients(typ contour.Type, output int) ([]float64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.values == nil {
		return nil, fmt.Errorf("globalgrid.EstimateAnisotropicCoefficients: %w", ErrNoValuesLoaded)
	}
	if output < 0 || output >= g.numOutputs {
		return nil, fmt.Errorf("globalgrid.EstimateAnisotropicCoefficients: %w", ErrOutputIndex)
	}
	return g.estimateAnisotropicCoefficientsLocked(typ, output)
}

// estimateAnisotropicCoefficientsLocked is EstimateAnisotropicCoefficients's
// body, callable with the mutex already held (used by
// SetAnisotropicRefinement).
func (g *Grid) estimateAnisotropicCoefficientsLocked(typ contour.Type, output int) ([]float64, error) {
	surpluses, err := g.estimator.Surpluses(g.viewLocked(), output, false)
	if err != nil {
		return nil, err
	}

	curved := typ.Shape == contour.ShapeCurved
	d := g.numDims
	var cols int
	if curved {
		cols = 2*d + 1
	} else {
		cols = d + 1
	}

	var rows [][]float64
	var b []float64
	for i, s := range surpluses {
		abs := math.Abs(s)
		if abs <= numeric.SurplusSignificance {
			continue
		}
		p := g.points.At(i)
		row := make([]float64, cols)
		for j := 0; j < d; j++ {
			row[j] = float64(p[j])
		}
		if curved {
			for j := 0; j < d; j++ {
				row[d+j] = math.Log(float64(p[j]) + 1)
			}
		}
		row[cols-1] = 1
		rows = append(rows, row)
		b = append(b, -math.Log(abs))
	}

	weights := make([]float64, cols-1)
	if len(rows) >= cols {
		a, err := linalg.NewDenseMatrixFromRows(rows)
		if err != nil {
			return nil, err
		}
		x, err := g.leastSquares.Solve(a, b, numeric.LeastSquaresTol)
		if err != nil {
			return nil, err
		}
		for j := 0; j < cols-1; j++ {
			weights[j] = x[j] * 1000
			weights[j] = math.Round(weights[j])
		}
	}

	postProcessAnisotropicWeights(weights, d, curved)
	return weights, nil
}

// postProcessAnisotropicWeights implements spec §4.3's post-processing:
// if every linear weight is non-positive, replace the whole vector with
// isotropic ones (zeroing any curved tail); otherwise replace each
// non-positive linear weight with the smallest strictly positive linear
// weight and clamp each curved weight's magnitude to its linear
// counterpart, preserving sign.
//
// The "smallest positive weight" reading follows the C++ routine's
// comment rather than its actual behavior (a max-scan misleadingly named
// min_weight); see DESIGN.md's ambiguity-flag decision 2.
func postProcessAnisotropicWeights(weights []float64, d int, curved bool) {
	minPositive := math.Inf(1)
	anyPositive := false
	for j := 0; j < d; j++ {
		if weights[j] > 0 {
			anyPositive = true
			if weights[j] < minPositive {
				minPositive = weights[j]
			}
		}
	}
	if !anyPositive {
		for j := 0; j < d; j++ {
			weights[j] = 1
		}
		if curved {
			for j := d; j < 2*d; j++ {
				weights[j] = 0
			}
		}
		return
	}
	for j := 0; j < d; j++ {
		if weights[j] <= 0 {
			weights[j] = minPositive
		}
	}
	if curved {
		for j := 0; j < d; j++ {
			lin := weights[j]
			cur := weights[d+j]
			if math.Abs(cur) > lin {
				if cur < 0 {
					weights[d+j] = -lin
				} else {
					weights[d+j] = lin
				}
			}
		}
	}
}
