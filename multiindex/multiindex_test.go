package multiindex_test

import (
	"testing"

	"github.com/lvlath/tsgrid/multiindex"
	"github.com/stretchr/testify/require"
)

func TestInsertAndContains(t *testing.T) {
	s, err := multiindex.New(2)
	require.NoError(t, err)

	added, err := s.Insert([]int{0, 0})
	require.NoError(t, err)
	require.True(t, added)

	added, err = s.Insert([]int{0, 0})
	require.NoError(t, err)
	require.False(t, added, "duplicate insert must be a no-op")

	require.True(t, s.Contains([]int{0, 0}))
	require.False(t, s.Contains([]int{1, 0}))
	require.Equal(t, 1, s.Len())
}

func TestInsertRejectsBadTuples(t *testing.T) {
	s, err := multiindex.New(2)
	require.NoError(t, err)

	_, err = s.Insert([]int{1})
	require.ErrorIs(t, err, multiindex.ErrDimensionMismatch)

	_, err = s.Insert([]int{-1, 0})
	require.ErrorIs(t, err, multiindex.ErrNegativeComponent)
}

func TestIsLower(t *testing.T) {
	s, err := multiindex.New(2)
	require.NoError(t, err)
	for _, t2 := range [][]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		_, err := s.Insert(t2)
		require.NoError(t, err)
	}
	require.True(t, s.IsLower())

	// Remove the (0,1) predecessor; (1,1) now lacks a required chain.
	s2 := s.Filter(func(t []int) bool { return !(t[0] == 0 && t[1] == 1) })
	require.False(t, s2.IsLower())
}

func TestCompleteLower(t *testing.T) {
	s, err := multiindex.New(2)
	require.NoError(t, err)
	_, err = s.Insert([]int{2, 1})
	require.NoError(t, err)

	hull := s.CompleteLower()
	require.True(t, hull.IsLower())
	// hull must contain every (i,j) with i<=2, j<=1.
	for i := 0; i <= 2; i++ {
		for j := 0; j <= 1; j++ {
			require.True(t, hull.Contains([]int{i, j}), "missing (%d,%d)", i, j)
		}
	}
}

func TestDifferenceAndUnion(t *testing.T) {
	a, _ := multiindex.New(1)
	b, _ := multiindex.New(1)
	for _, v := range []int{0, 1, 2} {
		_, _ = a.Insert([]int{v})
	}
	for _, v := range []int{1, 2, 3} {
		_, _ = b.Insert([]int{v})
	}

	diff, err := a.Difference(b)
	require.NoError(t, err)
	require.Equal(t, 1, diff.Len())
	require.True(t, diff.Contains([]int{0}))

	union, err := a.Union(b)
	require.NoError(t, err)
	require.Equal(t, 4, union.Len())
	for _, v := range []int{0, 1, 2, 3} {
		require.True(t, union.Contains([]int{v}))
	}
}

func TestSortLexAndMaxPerDim(t *testing.T) {
	s, _ := multiindex.New(2)
	for _, t2 := range [][]int{{1, 0}, {0, 2}, {0, 0}, {1, 1}} {
		_, _ = s.Insert(t2)
	}
	s.SortLex()
	got := s.Slice()
	want := [][]int{{0, 0}, {0, 2}, {1, 0}, {1, 1}}
	require.Equal(t, want, got)

	require.Equal(t, []int{1, 2}, s.MaxPerDim())
}
