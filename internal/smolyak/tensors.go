package smolyak

import "github.com/lvlath/tsgrid/multiindex"

// ActiveTensors computes the Smolyak combinatorial coefficient
// w(t) = sum_{s in {0,1}^d} (-1)^|s| * [t+s in tensors] for every
// t in tensors (spec §3), and returns the order-preserving subsequence
// with w(t) != 0 together with the aligned coefficient slice.
//
// Complexity: O(n * 2^d) where n = tensors.Len(); d is expected small
// (a handful of dimensions), matching the domain this contour/tensor
// machinery targets.
func ActiveTensors(tensors *multiindex.MultiIndexSet) (*multiindex.MultiIndexSet, []int, error) {
	d := tensors.Dim()
	active, err := multiindex.New(d)
	if err != nil {
		return nil, nil, err
	}
	var weights []int

	neighbor := make([]int, d)
	corners := 1 << uint(d)
	for i := 0; i < tensors.Len(); i++ {
		t := tensors.At(i)
		w := 0
		for s := 0; s < corners; s++ {
			copy(neighbor, t)
			sign := 1
			for j := 0; j < d; j++ {
				if s&(1<<uint(j)) != 0 {
					neighbor[j]++
					sign = -sign
				}
			}
			if tensors.Contains(neighbor) {
				w += sign
			}
		}
		if w != 0 {
			if _, err := active.Insert(t); err != nil {
				return nil, nil, err
			}
			weights = append(weights, w)
		}
	}
	return active, weights, nil
}
