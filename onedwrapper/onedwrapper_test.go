package onedwrapper_test

import (
	"math"
	"testing"

	"github.com/lvlath/tsgrid/onedwrapper"
	"github.com/stretchr/testify/require"
)

func TestClenshawCurtisIntegratesConstant(t *testing.T) {
	table, err := onedwrapper.NewRuleTable(onedwrapper.RuleClenshawCurtis)
	require.NoError(t, err)
	w := onedwrapper.New(table)

	for level := 0; level <= 4; level++ {
		weights, err := w.Weights(level)
		require.NoError(t, err)
		var sum float64
		for _, v := range weights {
			sum += v
		}
		require.InDelta(t, 2.0, sum, 1e-10, "level %d weights must sum to the interval length", level)
	}
}

func TestClenshawCurtisNested(t *testing.T) {
	table, err := onedwrapper.NewRuleTable(onedwrapper.RuleClenshawCurtis)
	require.NoError(t, err)
	w := onedwrapper.New(table)

	n0, err := w.Nodes(1)
	require.NoError(t, err)
	n1, err := w.Nodes(2)
	require.NoError(t, err)
	for _, x := range n0 {
		found := false
		for _, y := range n1 {
			if math.Abs(x-y) < 1e-12 {
				found = true
				break
			}
		}
		require.True(t, found, "level 1 node %v must appear in level 2", x)
	}
}

func TestGaussLegendreExactness(t *testing.T) {
	table, err := onedwrapper.NewRuleTable(onedwrapper.RuleGaussLegendre)
	require.NoError(t, err)
	w := onedwrapper.New(table)

	// 3 points (level 2) integrate x^4 exactly? No: exactness is 2n-1=5,
	// so x^4 (degree 4 <= 5) must be exact: integral of x^4 over [-1,1] = 2/5.
	nodes, err := w.Nodes(2)
	require.NoError(t, err)
	weights, err := w.Weights(2)
	require.NoError(t, err)
	var sum float64
	for i, x := range nodes {
		sum += weights[i] * x * x * x * x
	}
	require.InDelta(t, 2.0/5.0, sum, 1e-10)
}

func TestOneDWrapperCachesMonotonically(t *testing.T) {
	table, err := onedwrapper.NewRuleTable(onedwrapper.RuleClenshawCurtis)
	require.NoError(t, err)
	w := onedwrapper.New(table)
	require.Equal(t, 0, w.NumLevels())

	_, err = w.NumPoints(3)
	require.NoError(t, err)
	require.Equal(t, 4, w.NumLevels())

	_, err = w.NumPoints(1)
	require.NoError(t, err)
	require.Equal(t, 4, w.NumLevels(), "requesting a lower level must not shrink the cache")
}

func TestClenshawCurtisNestedByIndex(t *testing.T) {
	table, err := onedwrapper.NewRuleTable(onedwrapper.RuleClenshawCurtis)
	require.NoError(t, err)
	w := onedwrapper.New(table)

	for level := 0; level < 4; level++ {
		lo, err := w.Nodes(level)
		require.NoError(t, err)
		hi, err := w.Nodes(level + 1)
		require.NoError(t, err)
		require.LessOrEqual(t, len(lo), len(hi))
		for i, v := range lo {
			require.InDelta(t, v, hi[i], 1e-12, "level %d index %d must match level %d at the same index", level, i, level+1)
		}
	}
}

func TestGaussPattersonNestedByIndex(t *testing.T) {
	table, err := onedwrapper.NewRuleTable(onedwrapper.RuleGaussPatterson)
	require.NoError(t, err)
	w := onedwrapper.New(table)

	for level := 0; level < 2; level++ {
		lo, err := w.Nodes(level)
		require.NoError(t, err)
		hi, err := w.Nodes(level + 1)
		require.NoError(t, err)
		for i, v := range lo {
			require.InDelta(t, v, hi[i], 1e-12)
		}
	}
}

func TestGaussPattersonLevelUnavailable(t *testing.T) {
	table, err := onedwrapper.NewRuleTable(onedwrapper.RuleGaussPatterson)
	require.NoError(t, err)
	w := onedwrapper.New(table)

	_, err = w.NumPoints(3)
	require.ErrorIs(t, err, onedwrapper.ErrLevelUnavailable)
}

func TestCustomTabulatedRoundTrips(t *testing.T) {
	custom, err := onedwrapper.NewCustomTabulated(
		[][]float64{{0}, {-1, 1}},
		[][]float64{{2}, {1, 1}},
		[]int{0, 1},
		[]int{1, 1},
		true,
	)
	require.NoError(t, err)
	w := onedwrapper.New(custom)

	n, err := w.NumPoints(1)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	_, err = w.NumPoints(2)
	require.ErrorIs(t, err, onedwrapper.ErrCustomRuleTooShort)
}
