package smolyak

import (
	"github.com/lvlath/tsgrid/multiindex"
	"github.com/lvlath/tsgrid/onedwrapper"
	"github.com/lvlath/tsgrid/tensorrefs"
)

// RuleView is the subset of onedwrapper.OneDWrapper that weight
// accumulation needs; *onedwrapper.OneDWrapper satisfies it directly.
type RuleView interface {
	NumPoints(level int) (int, error)
	Weight(level, idx int) (float64, error)
}

func product(sizes []int) int {
	p := 1
	for _, n := range sizes {
		p *= n
	}
	return p
}

func tensorSizes(wrapper RuleView, t []int) ([]int, error) {
	sizes := make([]int, len(t))
	for j, level := range t {
		n, err := wrapper.NumPoints(level)
		if err != nil {
			return nil, err
		}
		sizes[j] = n
	}
	return sizes, nil
}

// QuadratureWeights accumulates, for each active tensor i,
// W_i * prod_j wrapper.Weight(t_j, k_j) into weights[refs.Ref(i)[k]],
// per spec §4.1.
func QuadratureWeights(wrapper RuleView, activeTensors *multiindex.MultiIndexSet, activeW []int, refs *tensorrefs.TensorRefs, numPoints int) ([]float64, error) {
	weights := make([]float64, numPoints)
	for i := 0; i < activeTensors.Len(); i++ {
		t := activeTensors.At(i)
		sizes, err := tensorSizes(wrapper, t)
		if err != nil {
			return nil, err
		}
		ref := refs.Ref(i)
		W := float64(activeW[i])
		n := product(sizes)
		for k := 0; k < n; k++ {
			idx := tensorrefs.Unravel(k, sizes)
			prod := 1.0
			for j, kj := range idx {
				wjk, err := wrapper.Weight(t[j], kj)
				if err != nil {
					return nil, err
				}
				prod *= wjk
			}
			weights[ref[k]] += W * prod
		}
	}
	return weights, nil
}

// lagrangeBasisValues evaluates every degree-(len(nodes)-1) Lagrange
// basis polynomial of nodes at x.
func lagrangeBasisValues(nodes []float64, x float64) []float64 {
	vals := make([]float64, len(nodes))
	for i := range nodes {
		v := 1.0
		for j := range nodes {
			if j == i {
				continue
			}
			v *= (x - nodes[j]) / (nodes[i] - nodes[j])
		}
		vals[i] = v
	}
	return vals
}

// InterpolationWeights builds the per-dimension Lagrange cache up to
// maxLevels and accumulates W_i * prod_j L_{t_j,k_j}(x_j) into
// weights[refs.Ref(i)[k]], per spec §4.1.
func InterpolationWeights(wrapper *onedwrapper.OneDWrapper, activeTensors *multiindex.MultiIndexSet, activeW []int, refs *tensorrefs.TensorRefs, maxLevels []int, x []float64, numPoints int) ([]float64, error) {
	d := len(x)
	cache := make([][][]float64, d)
	for j := 0; j < d; j++ {
		cache[j] = make([][]float64, maxLevels[j]+1)
		for lvl := 0; lvl <= maxLevels[j]; lvl++ {
			nodes, err := wrapper.Nodes(lvl)
			if err != nil {
				return nil, err
			}
			cache[j][lvl] = lagrangeBasisValues(nodes, x[j])
		}
	}

	weights := make([]float64, numPoints)
	for i := 0; i < activeTensors.Len(); i++ {
		t := activeTensors.At(i)
		sizes := make([]int, d)
		for j, lvl := range t {
			sizes[j] = len(cache[j][lvl])
		}
		ref := refs.Ref(i)
		W := float64(activeW[i])
		n := product(sizes)
		for k := 0; k < n; k++ {
			idx := tensorrefs.Unravel(k, sizes)
			prod := 1.0
			for j, kj := range idx {
				prod *= cache[j][t[j]][kj]
			}
			weights[ref[k]] += W * prod
		}
	}
	return weights, nil
}
