package onedwrapper

import "math"

// lejaTable implements a nested, one-new-point-per-level sequence rule:
// level L has L+1 nodes, each new node greedily chosen (over a fine
// candidate mesh) to maximize the product of distances to every
// previously chosen node — the defining property of a Leja sequence.
//
// The restricted ("rleja") variant adds each new candidate's mirror
// image in the same round, keeping the sequence symmetric about 0, which
// is the customary "restricted Leja" growth used to keep sparse grids
// built from it symmetric.
//
// Quadrature weights are obtained by numerically integrating each
// node's Lagrange basis polynomial against a high-order Gauss-Legendre
// rule (interpolatoryWeights below): Leja nodes have no closed-form
// weight formula the way Gauss/Clenshaw-Curtis rules do.
type lejaTable struct {
	restricted bool
}

func newLejaTable(restricted bool) lejaTable { return lejaTable{restricted: restricted} }

func (lejaTable) Nested() bool  { return true }
func (lejaTable) MaxLevel() int { return -1 }

func (t lejaTable) NumPoints(level int) (int, error) {
	if level < 0 {
		return 0, ErrLevelUnavailable
	}
	return level + 1, nil
}

const lejaMeshResolution = 4001

func lejaCandidateMesh() []float64 {
	mesh := make([]float64, lejaMeshResolution)
	for i := range mesh {
		mesh[i] = -1 + 2*float64(i)/float64(lejaMeshResolution-1)
	}
	return mesh
}

// lejaSequence generates the first n nodes of a (restricted) Leja
// sequence. Deterministic and side-effect-free; OneDWrapper is
// responsible for caching results across calls.
func lejaSequence(n int, restricted bool) []float64 {
	if n <= 0 {
		return nil
	}
	nodes := make([]float64, 0, n)
	nodes = append(nodes, 0)
	mesh := lejaCandidateMesh()
	used := make([]bool, len(mesh))

	next := func() (float64, int) {
		bestScore := -1.0
		bestIdx := -1
		for i, c := range mesh {
			if used[i] {
				continue
			}
			score := 1.0
			for _, x := range nodes {
				score *= math.Abs(c - x)
			}
			if score > bestScore {
				bestScore = score
				bestIdx = i
			}
		}
		return mesh[bestIdx], bestIdx
	}

	for len(nodes) < n {
		c, idx := next()
		used[idx] = true
		nodes = append(nodes, c)
		if restricted && len(nodes) < n {
			mirror := -c
			for i, m := range mesh {
				if !used[i] && math.Abs(m-mirror) < 1.0/float64(lejaMeshResolution) {
					used[i] = true
					nodes = append(nodes, m)
					break
				}
			}
		}
	}
	return nodes[:n]
}

// interpolatoryWeights returns the quadrature weights of the unique
// degree-(n-1) interpolatory rule through nodes, on the uniform weight
// [-1,1], by integrating each Lagrange basis polynomial with a
// sufficiently high-order Gauss-Legendre rule.
func interpolatoryWeights(nodes []float64) []float64 {
	n := len(nodes)
	quadN := 4 * n
	if quadN < 50 {
		quadN = 50
	}
	qx, qw := gaussLegendreNodesWeights(quadN)

	weights := make([]float64, n)
	for i := range nodes {
		var acc float64
		for k, x := range qx {
			val := 1.0
			for j, xj := range nodes {
				if j == i {
					continue
				}
				val *= (x - xj) / (nodes[i] - xj)
			}
			acc += qw[k] * val
		}
		weights[i] = acc
	}
	return weights
}

func (t lejaTable) Nodes(level int) ([]float64, error) {
	if level < 0 {
		return nil, ErrLevelUnavailable
	}
	return lejaSequence(level+1, t.restricted), nil
}

func (t lejaTable) Weights(level int) ([]float64, error) {
	nodes, err := t.Nodes(level)
	if err != nil {
		return nil, err
	}
	return interpolatoryWeights(nodes), nil
}

func (lejaTable) IExact(level int) (int, error) {
	if level < 0 {
		return 0, ErrLevelUnavailable
	}
	return level, nil
}

func (lejaTable) QExact(level int) (int, error) {
	if level < 0 {
		return 0, ErrLevelUnavailable
	}
	return level, nil
}
