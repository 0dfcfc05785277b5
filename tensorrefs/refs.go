package tensorrefs

import (
	"fmt"

	"github.com/lvlath/tsgrid/multiindex"
)

// LevelSizer reports the number of 1-D points at a given level.
// *onedwrapper.OneDWrapper satisfies this directly.
type LevelSizer interface {
	NumPoints(level int) (int, error)
}

// TensorRefs holds, for each active tensor (in the same order as the
// activeTensors set it was built from), the tensor-local-product-index
// -> global-point-set-position mapping.
type TensorRefs struct {
	nested bool
	refs   [][]int
}

// Nested reports which policy built this TensorRefs.
func (r *TensorRefs) Nested() bool { return r.nested }

// Len returns the number of active tensors covered.
func (r *TensorRefs) Len() int { return len(r.refs) }

// Ref returns tensor i's tensor-local-index -> point-position array.
// Panics on out-of-range i: callers always iterate 0..Len()-1.
func (r *TensorRefs) Ref(i int) []int { return r.refs[i] }

// Unravel decomposes a flat product index k, over a product of extents
// sizes, into its per-dimension components using last-dimension-fastest
// (row-major) unfolding: sizes[len-1] varies fastest.
//
// This is the exact unraveling spec §4.1 prescribes for quadrature and
// interpolation weight accumulation, so GlobalGrid reuses it directly
// rather than re-deriving it.
func Unravel(k int, sizes []int) []int {
	d := len(sizes)
	idx := make([]int, d)
	rem := k
	for j := d - 1; j >= 0; j-- {
		idx[j] = rem % sizes[j]
		rem /= sizes[j]
	}
	return idx
}

func productOf(sizes []int) int {
	p := 1
	for _, n := range sizes {
		p *= n
	}
	return p
}

func levelSizes(sizer LevelSizer, t []int) ([]int, error) {
	sizes := make([]int, len(t))
	for j, level := range t {
		n, err := sizer.NumPoints(level)
		if err != nil {
			return nil, err
		}
		sizes[j] = n
	}
	return sizes, nil
}

// pointAt returns the global point tuple for local index k of tensor t,
// given t's per-dimension 1-D point sizes.
func pointAt(t []int, sizes []int, k int) []int {
	local := Unravel(k, sizes)
	// The point tuple *is* the per-dimension 1-D node index (a nested
	// rule's level-t[j] node k is the same node as at any higher level
	// that contains it — the caller resolves that identity via node
	// value, not level; here we key purely on the local product index,
	// which is what nested dedup by point-index equality requires).
	return local
}

// BuildNested constructs the global (deduplicated) point set and the
// TensorRefs for the active tensors, per spec §4.1's nested-rule policy:
// the point set is the union, over every tensor in the full lower set
// (not just the active ones), of that tensor's local product grid.
func BuildNested(sizer LevelSizer, allTensors, activeTensors *multiindex.MultiIndexSet) (*multiindex.MultiIndexSet, *TensorRefs, error) {
	d := allTensors.Dim()
	points, err := multiindex.New(d)
	if err != nil {
		return nil, nil, err
	}

	for i := 0; i < allTensors.Len(); i++ {
		t := allTensors.At(i)
		sizes, err := levelSizes(sizer, t)
		if err != nil {
			return nil, nil, fmt.Errorf("tensorrefs.BuildNested: tensor %v: %w", t, err)
		}
		n := productOf(sizes)
		for k := 0; k < n; k++ {
			if _, err := points.Insert(pointAt(t, sizes, k)); err != nil {
				return nil, nil, err
			}
		}
	}

	refs := make([][]int, activeTensors.Len())
	for i := 0; i < activeTensors.Len(); i++ {
		t := activeTensors.At(i)
		if len(t) != d {
			return nil, nil, ErrDimensionMismatch
		}
		sizes, err := levelSizes(sizer, t)
		if err != nil {
			return nil, nil, fmt.Errorf("tensorrefs.BuildNested: active tensor %v: %w", t, err)
		}
		n := productOf(sizes)
		ref := make([]int, n)
		for k := 0; k < n; k++ {
			pos, ok := points.IndexOf(pointAt(t, sizes, k))
			if !ok {
				panic("tsgrid: internal invariant violated: nested point missing from global point set")
			}
			ref[k] = pos
		}
		refs[i] = ref
	}

	return points, &TensorRefs{nested: true, refs: refs}, nil
}

// BuildNonNested constructs the global point set and TensorRefs for a
// non-nested rule: the point set is the plain concatenation, in
// activeTensors order, of each active tensor's local product grid, with
// no deduplication.
func BuildNonNested(sizer LevelSizer, activeTensors *multiindex.MultiIndexSet) (*multiindex.MultiIndexSet, *TensorRefs, error) {
	d := activeTensors.Dim()
	points, err := multiindex.New(d)
	if err != nil {
		return nil, nil, err
	}

	refs := make([][]int, activeTensors.Len())
	for i := 0; i < activeTensors.Len(); i++ {
		t := activeTensors.At(i)
		sizes, err := levelSizes(sizer, t)
		if err != nil {
			return nil, nil, fmt.Errorf("tensorrefs.BuildNonNested: active tensor %v: %w", t, err)
		}
		n := productOf(sizes)
		ref := make([]int, n)
		for k := 0; k < n; k++ {
			// Every local point becomes a fresh, un-deduplicated global
			// point: MultiIndexSet's key-based Insert would silently
			// collapse coincidentally-equal tuples from different
			// tensors, which is wrong here, so InsertRaw always appends.
			pos, err := points.InsertRaw(pointAt(t, sizes, k))
			if err != nil {
				return nil, nil, err
			}
			ref[k] = pos
		}
		refs[i] = ref
	}

	return points, &TensorRefs{nested: false, refs: refs}, nil
}
