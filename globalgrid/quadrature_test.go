package globalgrid_test

import (
	"testing"

	"github.com/lvlath/tsgrid/contour"
	"github.com/lvlath/tsgrid/globalgrid"
	"github.com/lvlath/tsgrid/onedwrapper"
	"github.com/stretchr/testify/require"
)

func mustGrid(t *testing.T, dims, outputs int, rule onedwrapper.Rule, opts ...globalgrid.Option) *globalgrid.Grid {
	t.Helper()
	g, err := globalgrid.NewGlobal(dims, outputs, rule, opts...)
	require.NoError(t, err)
	return g
}

func loadConstant(t *testing.T, g *globalgrid.Grid, c float64) {
	t.Helper()
	pts, err := g.GetNeededPoints()
	require.NoError(t, err)
	values := make([][]float64, len(pts))
	for i := range values {
		values[i] = []float64{c}
	}
	require.NoError(t, g.LoadNeededPoints(values))
}

func TestQuadratureWeightsSumToIntervalLength(t *testing.T) {
	g := mustGrid(t, 2, 1, onedwrapper.RuleClenshawCurtis)
	require.NoError(t, g.Make(4, contour.TypeLevel, nil))
	loadConstant(t, g, 1)

	w, err := g.GetQuadratureWeights()
	require.NoError(t, err)
	var sum float64
	for _, wi := range w {
		sum += wi
	}
	require.InDelta(t, 4.0, sum, 1e-9)
}

func TestIntegrateConstantFunction(t *testing.T) {
	g := mustGrid(t, 2, 1, onedwrapper.RuleClenshawCurtis)
	require.NoError(t, g.Make(3, contour.TypeLevel, nil))
	loadConstant(t, g, 3)

	y, err := g.Integrate(0)
	require.NoError(t, err)
	require.InDelta(t, 12.0, y, 1e-8)
}

func TestIntegrateBeforeValuesLoadedFails(t *testing.T) {
	g := mustGrid(t, 1, 1, onedwrapper.RuleClenshawCurtis)
	require.NoError(t, g.Make(2, contour.TypeLevel, nil))
	_, err := g.Integrate(0)
	require.ErrorIs(t, err, globalgrid.ErrNoValuesLoaded)
}

func TestGetQuadratureWeightsBeforeMakeFails(t *testing.T) {
	g := mustGrid(t, 1, 1, onedwrapper.RuleClenshawCurtis)
	_, err := g.GetQuadratureWeights()
	require.ErrorIs(t, err, globalgrid.ErrNotMade)
}

func TestQuadratureIntegratesLinearExactly(t *testing.T) {
	g := mustGrid(t, 1, 1, onedwrapper.RuleClenshawCurtis)
	require.NoError(t, g.Make(3, contour.TypeLevel, nil))

	pts, err := g.GetNeededPoints()
	require.NoError(t, err)
	values := make([][]float64, len(pts))
	for i, p := range pts {
		values[i] = []float64{2*p[0] + 1}
	}
	require.NoError(t, g.LoadNeededPoints(values))

	y, err := g.Integrate(0)
	require.NoError(t, err)
	// integral of 2x+1 over [-1,1] is 2.
	require.InDelta(t, 2.0, y, 1e-8)
}

func TestQuadratureWeightsMatchPointCount(t *testing.T) {
	g := mustGrid(t, 2, 1, onedwrapper.RuleClenshawCurtis)
	require.NoError(t, g.Make(2, contour.TypeLevel, nil))
	loadConstant(t, g, 1)

	w, err := g.GetQuadratureWeights()
	require.NoError(t, err)
	pts, err := g.GetPoints()
	require.NoError(t, err)
	require.Equal(t, len(pts), len(w))
}
