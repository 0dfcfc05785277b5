package onedwrapper

import "math"

// gaussLegendreTable implements the classical (non-nested) Gauss-Legendre
// rule: level L has n=L+1 points, the roots of the degree-n Legendre
// polynomial, found by Newton iteration from the standard asymptotic
// initial guess. Quadrature exactness is 2n-1; interpolation exactness
// (as an algebraic interpolant through n points) is n-1.
type gaussLegendreTable struct{}

func (gaussLegendreTable) Nested() bool  { return false }
func (gaussLegendreTable) MaxLevel() int { return -1 }

func (gaussLegendreTable) NumPoints(level int) (int, error) {
	if level < 0 {
		return 0, ErrLevelUnavailable
	}
	return level + 1, nil
}

// legendreAndDerivative evaluates P_n(x) and P_n'(x) via the standard
// three-term recurrence, matching the recurrence spec.md §4.2 names:
// L_0=1, L_1=x, n*L_n = (2n-1)*x*L_{n-1} - (n-1)*L_{n-2}.
func legendreAndDerivative(n int, x float64) (p, dp float64) {
	if n == 0 {
		return 1, 0
	}
	p0, p1 := 1.0, x
	for k := 2; k <= n; k++ {
		p2 := (float64(2*k-1)*x*p1 - float64(k-1)*p0) / float64(k)
		p0, p1 = p1, p2
	}
	dp = float64(n) / (x*x - 1) * (x*p1 - p0)
	return p1, dp
}

func gaussLegendreNodesWeights(n int) (nodes, weights []float64) {
	if n == 0 {
		return []float64{0}, []float64{2}
	}
	nodes = make([]float64, n)
	weights = make([]float64, n)
	for i := 0; i < n; i++ {
		x := math.Cos(math.Pi * (float64(i) + 0.75) / (float64(n) + 0.5))
		for iter := 0; iter < 100; iter++ {
			p, dp := legendreAndDerivative(n, x)
			dx := p / dp
			x -= dx
			if math.Abs(dx) < 1e-15 {
				break
			}
		}
		_, dp := legendreAndDerivative(n, x)
		nodes[i] = x
		weights[i] = 2 / ((1 - x*x) * dp * dp)
	}
	// ascending order
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
		weights[i], weights[j] = weights[j], weights[i]
	}
	return nodes, weights
}

func (gaussLegendreTable) Nodes(level int) ([]float64, error) {
	if level < 0 {
		return nil, ErrLevelUnavailable
	}
	nodes, _ := gaussLegendreNodesWeights(level + 1)
	return nodes, nil
}

func (gaussLegendreTable) Weights(level int) ([]float64, error) {
	if level < 0 {
		return nil, ErrLevelUnavailable
	}
	_, weights := gaussLegendreNodesWeights(level + 1)
	return weights, nil
}

func (gaussLegendreTable) IExact(level int) (int, error) {
	if level < 0 {
		return 0, ErrLevelUnavailable
	}
	return level, nil
}

func (gaussLegendreTable) QExact(level int) (int, error) {
	if level < 0 {
		return 0, ErrLevelUnavailable
	}
	return 2*level + 1, nil
}
