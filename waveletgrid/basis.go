package waveletgrid

import "fmt"

// basis1D evaluates psi_p(x): order 1 is a compactly supported linear
// hat function, order 3 a compactly supported smooth quartic bump
// (Wendland-style); both satisfy psi_p(node(p))=1 and vanish at
// node(p)+-radius(p).
func (g *Grid) basis1D(p int, x float64) float64 {
	r := g.wavelet.supportRadius(p)
	t := (x - g.wavelet.node(p)) / r
	if t < -1 || t > 1 {
		return 0
	}
	if g.order == 1 {
		v := 1 - abs(t)
		if v < 0 {
			return 0
		}
		return v
	}
	u := 1 - t*t
	return u * u
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// fullBasisIntegral1D is integral_{-1}^{1} of the canonical shape
// (order 1: triangle of base 2, height 1; order 3: quartic bump),
// independent of node position or radius.
func (g *Grid) fullBasisIntegral1D() float64 {
	if g.order == 1 {
		return 1
	}
	return 16.0 / 15.0
}

// basisIntegral1D returns integral_{-1}^{1} psi_p(x) dx: the full
// value scaled by radius, halved for the two domain-endpoint nodes
// whose nominal support is clipped in half by the domain edge.
func (g *Grid) basisIntegral1D(p int) float64 {
	v := g.wavelet.supportRadius(p) * g.fullBasisIntegral1D()
	if g.wavelet.isBoundary(p) {
		v /= 2
	}
	return v
}

// evalBasis computes prod_j psi_{p_j}(x_j) (spec §4.4).
func (g *Grid) evalBasis(p []int, x []float64) float64 {
	v := 1.0
	for j, pj := range p {
		v *= g.basis1D(pj, x[j])
		if v == 0 {
			return 0
		}
	}
	return v
}

// basisIntegral computes prod_j integral psi_{p_j}, the per-basis
// quadrature exactness term q_i of spec §4.4's "Weights" subsection.
func (g *Grid) basisIntegral(p []int) float64 {
	v := 1.0
	for _, pj := range p {
		v *= g.basisIntegral1D(pj)
	}
	return v
}

// EvaluateHierarchicalFunctions returns [psi_{p_0}(x), psi_{p_1}(x), ...]
// over every currently loaded point, the raw basis row used internally
// to build M^T*w = q for interpolation weights and evaluation.
func (g *Grid) EvaluateHierarchicalFunctions(x []float64) ([]float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.made {
		return nil, ErrNotMade
	}
	if len(x) != g.numDims {
		return nil, fmt.Errorf("waveletgrid.EvaluateHierarchicalFunctions: %w", ErrDimensionMismatch)
	}
	n := g.points.Len()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = g.evalBasis(g.points.At(i), x)
	}
	return out, nil
}
