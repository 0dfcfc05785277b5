package tensorrefs

import "github.com/lvlath/tsgrid/multiindex"

// RefsForExistingPoints builds TensorRefs for activeTensors against an
// already-populated nested point set, without inserting anything into
// it. Used by incremental refinement, where the canonical point array's
// positions are fixed by prior loads and only new tensors' refs need
// resolving into it.
//
// Only meaningful for nested rules: a non-nested point set carries no
// stable per-tuple identity across separate BuildNonNested calls, so
// incremental refinement of a non-nested grid rebuilds its point set and
// refs from scratch instead (see globalgrid's accept-refinement path).
func RefsForExistingPoints(sizer LevelSizer, points, activeTensors *multiindex.MultiIndexSet) (*TensorRefs, error) {
	d := points.Dim()
	refs := make([][]int, activeTensors.Len())
	for i := 0; i < activeTensors.Len(); i++ {
		t := activeTensors.At(i)
		if len(t) != d {
			return nil, ErrDimensionMismatch
		}
		sizes, err := levelSizes(sizer, t)
		if err != nil {
			return nil, err
		}
		n := productOf(sizes)
		ref := make([]int, n)
		for k := 0; k < n; k++ {
			pos, ok := points.IndexOf(pointAt(t, sizes, k))
			if !ok {
				panic("tsgrid: internal invariant violated: refined nested point missing from global point set")
			}
			ref[k] = pos
		}
		refs[i] = ref
	}
	return &TensorRefs{nested: true, refs: refs}, nil
}
