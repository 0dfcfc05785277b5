package waveletgrid

import (
	"fmt"

	"github.com/lvlath/tsgrid/internal/linalg"
	"github.com/lvlath/tsgrid/multiindex"
)

// Points returns the grid's current (loaded) point set.
func (g *Grid) Points() *multiindex.MultiIndexSet {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.points
}

// GetPoints returns the loaded point set's coordinate rows.
func (g *Grid) GetPoints() ([][]float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.made {
		return nil, ErrNotMade
	}
	return g.coordsLocked(), nil
}

// GetNeededPoints returns the pending point set's coordinate rows.
func (g *Grid) GetNeededPoints() ([][]float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.made {
		return nil, ErrNotMade
	}
	out := make([][]float64, g.needed.Len())
	for i := 0; i < g.needed.Len(); i++ {
		p := g.needed.At(i)
		x := make([]float64, g.numDims)
		for j, pj := range p {
			x[j] = g.wavelet.node(pj)
		}
		out[i] = x
	}
	return out, nil
}

// GetQuadratureWeights returns one weight per loaded point, solving
// M^T*w=q with q_i = prod_j integral psi_{p_{i,j}} (spec §4.4).
func (g *Grid) GetQuadratureWeights() ([]float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.made {
		return nil, ErrNotMade
	}
	if g.collocation == nil {
		return nil, fmt.Errorf("waveletgrid.GetQuadratureWeights: %w", ErrNoValuesLoaded)
	}
	n := g.points.Len()
	q := make([]float64, n)
	for i := 0; i < n; i++ {
		q[i] = g.basisIntegral(g.points.At(i))
	}
	w, err := g.solver.SolveTranspose(g.collocation, q)
	if err != nil {
		return nil, fmt.Errorf("waveletgrid.GetQuadratureWeights: %w", err)
	}
	return w, nil
}

// GetInterpolationWeights returns one weight per loaded point for query
// point x, solving M^T*w=q with q_i = psi_{p_i}(x) (spec §4.4).
func (g *Grid) GetInterpolationWeights(x []float64) ([]float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.made {
		return nil, ErrNotMade
	}
	if len(x) != g.numDims {
		return nil, fmt.Errorf("waveletgrid.GetInterpolationWeights: %w", ErrDimensionMismatch)
	}
	if g.collocation == nil {
		return nil, fmt.Errorf("waveletgrid.GetInterpolationWeights: %w", ErrNoValuesLoaded)
	}
	n := g.points.Len()
	q := make([]float64, n)
	for i := 0; i < n; i++ {
		q[i] = g.evalBasis(g.points.At(i), x)
	}
	w, err := g.solver.SolveTranspose(g.collocation, q)
	if err != nil {
		return nil, fmt.Errorf("waveletgrid.GetInterpolationWeights: %w", err)
	}
	return w, nil
}

// Evaluate returns the grid's interpolant for output at x, computed
// directly from the hierarchical coefficients: y = sum_i c_i*psi_{p_i}(x).
func (g *Grid) Evaluate(x []float64, output int) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.evaluateLocked(x, output)
}

func (g *Grid) evaluateLocked(x []float64, output int) (float64, error) {
	if g.coefficients == nil {
		return 0, ErrNoValuesLoaded
	}
	if output < 0 || output >= g.numOutputs {
		return 0, fmt.Errorf("waveletgrid.Evaluate: %w", ErrOutputIndex)
	}
	if len(x) != g.numDims {
		return 0, fmt.Errorf("waveletgrid.Evaluate: %w", ErrDimensionMismatch)
	}
	var y float64
	for i := 0; i < g.points.Len(); i++ {
		b := g.evalBasis(g.points.At(i), x)
		if b == 0 {
			continue
		}
		y += b * g.coefficients.At(i, output)
	}
	return y, nil
}

// Integrate returns the quadrature approximation of output's integral,
// computed directly as q.c rather than by re-solving for weights.
func (g *Grid) Integrate(output int) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.coefficients == nil {
		return 0, ErrNoValuesLoaded
	}
	if output < 0 || output >= g.numOutputs {
		return 0, fmt.Errorf("waveletgrid.Integrate: %w", ErrOutputIndex)
	}
	var y float64
	for i := 0; i < g.points.Len(); i++ {
		y += g.basisIntegral(g.points.At(i)) * g.coefficients.At(i, output)
	}
	return y, nil
}

// GetHierarchicalCoefficients returns output's current surpluses, one
// per loaded point, in points order.
func (g *Grid) GetHierarchicalCoefficients(output int) ([]float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.coefficients == nil {
		return nil, ErrNoValuesLoaded
	}
	if output < 0 || output >= g.numOutputs {
		return nil, fmt.Errorf("waveletgrid.GetHierarchicalCoefficients: %w", ErrOutputIndex)
	}
	n := g.points.Len()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = g.coefficients.At(i, output)
	}
	return out, nil
}

// SetHierarchicalCoefficients accepts externally supplied coefficients
// for output and recomputes values by evaluating the basis expansion
// at the grid's own nodes (spec §4.4's "Set coefficients directly").
func (g *Grid) SetHierarchicalCoefficients(coeffs []float64, output int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.made {
		return fmt.Errorf("waveletgrid.SetHierarchicalCoefficients: %w", ErrNotMade)
	}
	if output < 0 || output >= g.numOutputs {
		return fmt.Errorf("waveletgrid.SetHierarchicalCoefficients: %w", ErrOutputIndex)
	}
	n := g.points.Len()
	if len(coeffs) != n {
		return fmt.Errorf("waveletgrid.SetHierarchicalCoefficients: %w", ErrCoefficientCountMismatch)
	}

	if g.coefficients == nil {
		c, err := linalg.NewDenseMatrix(n, g.numOutputs)
		if err != nil {
			return fmt.Errorf("waveletgrid.SetHierarchicalCoefficients: %w", err)
		}
		g.coefficients = c
	}
	if g.values == nil {
		v, err := linalg.NewDenseMatrix(n, g.numOutputs)
		if err != nil {
			return fmt.Errorf("waveletgrid.SetHierarchicalCoefficients: %w", err)
		}
		g.values = v
	}
	for i, c := range coeffs {
		g.coefficients.Set(i, output, c)
	}

	coords := g.coordsLocked()
	basisPoints := make([][]int, n)
	for i := 0; i < n; i++ {
		basisPoints[i] = g.points.At(i)
	}
	for row := 0; row < n; row++ {
		var y float64
		for col := 0; col < n; col++ {
			b := g.evalBasis(basisPoints[col], coords[row])
			if b == 0 {
				continue
			}
			y += b * coeffs[col]
		}
		g.values.Set(row, output, y)
	}

	g.log.Event("set_hierarchical_coefficients", "grid_id", g.id, "output", output, "num_points", n)
	return nil
}
