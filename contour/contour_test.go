package contour_test

import (
	"testing"

	"github.com/lvlath/tsgrid/contour"
	"github.com/stretchr/testify/require"
)

func TestParseTypeRoundTrips(t *testing.T) {
	for _, typ := range []contour.Type{
		contour.TypeLevel, contour.TypeTensor, contour.TypeHyperbolic, contour.TypeCurved,
		contour.TypeIPTotal, contour.TypeIPTensor, contour.TypeIPHyperbolic, contour.TypeIPCurved,
		contour.TypeQPTotal, contour.TypeQPTensor, contour.TypeQPHyperbolic, contour.TypeQPCurved,
	} {
		parsed, err := contour.ParseType(typ.String())
		require.NoError(t, err)
		require.Equal(t, typ, parsed)
	}
}

func TestParseTypeUnknown(t *testing.T) {
	_, err := contour.ParseType("nope")
	require.ErrorIs(t, err, contour.ErrUnknownType)
}

func TestLevelSelectIsLower(t *testing.T) {
	sel, err := contour.NewSelector(3, contour.TypeLevel, nil, nil)
	require.NoError(t, err)
	set, err := sel.Select(3)
	require.NoError(t, err)
	require.True(t, set.IsLower())
	require.True(t, set.Contains([]int{3, 0, 0}))
	require.True(t, set.Contains([]int{1, 1, 1}))
	require.False(t, set.Contains([]int{4, 0, 0}))
	require.False(t, set.Contains([]int{2, 1, 1}))
}

func TestTensorSelectIsFullTensorProduct(t *testing.T) {
	sel, err := contour.NewSelector(2, contour.TypeTensor, nil, nil)
	require.NoError(t, err)
	set, err := sel.Select(2)
	require.NoError(t, err)
	// max(t0,t1) <= 2 over {0,1,2}^2 is the full (2+1)x(2+1) grid.
	require.Equal(t, 9, set.Len())
	require.True(t, set.Contains([]int{2, 2}))
	require.False(t, set.Contains([]int{3, 0}))
}

func TestAnisotropicWeightsFavorCheaperDimension(t *testing.T) {
	sel, err := contour.NewSelector(2, contour.TypeLevel, []float64{1, 2}, nil)
	require.NoError(t, err)
	set, err := sel.Select(4)
	require.NoError(t, err)
	// t0 alone can reach 4 (weight 1), t1 alone can only reach 2 (weight 2).
	require.True(t, set.Contains([]int{4, 0}))
	require.True(t, set.Contains([]int{0, 2}))
	require.False(t, set.Contains([]int{0, 3}))
}

func TestCurvedDemotesToLevelWhenWeightsEmpty(t *testing.T) {
	sel, err := contour.NewSelector(2, contour.TypeCurved, nil, nil)
	require.NoError(t, err)
	levelSel, err := contour.NewSelector(2, contour.TypeLevel, nil, nil)
	require.NoError(t, err)
	for depth := 0; depth <= 3; depth++ {
		got, err := sel.Select(depth)
		require.NoError(t, err)
		want, err := levelSel.Select(depth)
		require.NoError(t, err)
		require.True(t, got.Equal(want))
	}
}

func TestIPTotalRequiresExactness(t *testing.T) {
	_, err := contour.NewSelector(2, contour.TypeIPTotal, nil, nil)
	require.ErrorIs(t, err, contour.ErrNoExactness)
}

func TestIPTotalUsesExactnessFunc(t *testing.T) {
	// g(level) = 2*level: doubles every exactness value.
	g := func(level int) (int, error) { return 2 * level, nil }
	sel, err := contour.NewSelector(1, contour.TypeIPTotal, nil, g)
	require.NoError(t, err)
	v, err := sel.Value([]int{3})
	require.NoError(t, err)
	require.InDelta(t, 6.0, v, 1e-12)
}

func TestApplyLevelLimits(t *testing.T) {
	sel, err := contour.NewSelector(2, contour.TypeLevel, nil, nil)
	require.NoError(t, err)
	set, err := sel.Select(4)
	require.NoError(t, err)
	limited, err := contour.ApplyLevelLimits(set, []int{1, -1})
	require.NoError(t, err)
	require.True(t, limited.Contains([]int{1, 3}))
	require.False(t, limited.Contains([]int{2, 2}))
}

func TestNegativeWeightRejected(t *testing.T) {
	_, err := contour.NewSelector(2, contour.TypeLevel, []float64{1, -1}, nil)
	require.ErrorIs(t, err, contour.ErrNegativeWeight)
}
