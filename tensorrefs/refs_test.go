package tensorrefs_test

import (
	"testing"

	"github.com/lvlath/tsgrid/multiindex"
	"github.com/lvlath/tsgrid/tensorrefs"
	"github.com/stretchr/testify/require"
)

// fixedSizer reports numPoints(level) = level+1, matching a
// linearly-growing 1-D rule closely enough to exercise the plumbing
// without depending on onedwrapper.
type fixedSizer struct{}

func (fixedSizer) NumPoints(level int) (int, error) { return level + 1, nil }

func TestUnravelLastDimFastest(t *testing.T) {
	sizes := []int{2, 3}
	// k=0..5 over a 2x3 grid, last dim (index 1, size 3) fastest.
	want := [][]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}
	for k, exp := range want {
		require.Equal(t, exp, tensorrefs.Unravel(k, sizes))
	}
}

func TestBuildNestedDeduplicatesAcrossTensors(t *testing.T) {
	// d=1, tensors {0},{1}: level 0 has 1 point, level 1 has 2 points;
	// the level-1 grid's point 0 must NOT be assumed equal to level 0's
	// point 0 by tuple value alone in general, but here Unravel-based
	// point identity is exactly what nested dedup uses, and both level
	// 0 and level 1 tensors independently enumerate local index 0, so
	// tensor {0}'s point (0) and tensor {1}'s point (0) collapse to one
	// global point while tensor {1}'s point (1) is a second, distinct
	// global point.
	all, _ := multiindex.New(1)
	_, _ = all.Insert([]int{0})
	_, _ = all.Insert([]int{1})
	active, _ := multiindex.New(1)
	_, _ = active.Insert([]int{1})

	points, refs, err := tensorrefs.BuildNested(fixedSizer{}, all, active)
	require.NoError(t, err)
	require.Equal(t, 2, points.Len())
	require.True(t, refs.Nested())
	require.Equal(t, 1, refs.Len())
	require.Equal(t, []int{0, 1}, refs.Ref(0))
}

func TestBuildNonNestedDoesNotDeduplicate(t *testing.T) {
	active, _ := multiindex.New(1)
	_, _ = active.Insert([]int{0})
	_, _ = active.Insert([]int{0}) // no-op: MultiIndexSet.Insert dedups the tensor set itself
	require.Equal(t, 1, active.Len())

	// Two distinct active tensors that happen to produce identical local
	// index tuples must NOT collapse into one point under the
	// non-nested policy.
	active2, _ := multiindex.New(1)
	_, _ = active2.Insert([]int{0})
	_, _ = active2.Insert([]int{1})

	points, refs, err := tensorrefs.BuildNonNested(fixedSizer{}, active2)
	require.NoError(t, err)
	// tensor level 0 -> 1 point, tensor level 1 -> 2 points, concatenated.
	require.Equal(t, 3, points.Len())
	require.Equal(t, 2, refs.Len())
	require.Equal(t, []int{0}, refs.Ref(0))
	require.Equal(t, []int{1, 2}, refs.Ref(1))
}
