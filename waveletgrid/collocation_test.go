package waveletgrid_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMakeProducesNeededPointsBeforeAnyValues(t *testing.T) {
	g := mustGrid(t, 2, 1, 1)
	require.NoError(t, g.Make(2))

	pts, err := g.GetNeededPoints()
	require.NoError(t, err)
	require.NotEmpty(t, pts)

	loaded, err := g.GetPoints()
	require.NoError(t, err)
	require.Empty(t, loaded)
}

func TestLoadNeededPointsInterpolatesExactlyAtGridNodes(t *testing.T) {
	g := mustGrid(t, 1, 1, 1)
	require.NoError(t, g.Make(3))
	loadFunc(t, g, func(x []float64) float64 { return x[0] })

	pts, err := g.GetPoints()
	require.NoError(t, err)
	for _, p := range pts {
		y, err := g.Evaluate(p, 0)
		require.NoError(t, err)
		require.InDelta(t, p[0], y, 1e-9)
	}
}

func TestLoadNeededPointsRowCountMismatchFails(t *testing.T) {
	g := mustGrid(t, 1, 1, 1)
	require.NoError(t, g.Make(2))
	err := g.LoadNeededPoints([][]float64{{0}})
	require.Error(t, err)
}

func TestEvaluateBeforeValuesLoadedFails(t *testing.T) {
	g := mustGrid(t, 1, 1, 1)
	require.NoError(t, g.Make(2))
	_, err := g.Evaluate([]float64{0}, 0)
	require.Error(t, err)
}

func TestSetHierarchicalCoefficientsReflectsInValues(t *testing.T) {
	g := mustGrid(t, 1, 1, 1)
	require.NoError(t, g.Make(2))
	loadFunc(t, g, func(x []float64) float64 { return x[0] })

	c, err := g.GetHierarchicalCoefficients(0)
	require.NoError(t, err)

	scaled := make([]float64, len(c))
	for i, ci := range c {
		scaled[i] = ci * 2
	}
	require.NoError(t, g.SetHierarchicalCoefficients(scaled, 0))

	pts, err := g.GetPoints()
	require.NoError(t, err)
	for _, p := range pts {
		y, err := g.Evaluate(p, 0)
		require.NoError(t, err)
		require.InDelta(t, 2*p[0], y, 1e-9)
	}
}

func TestGetQuadratureWeightsIntegratesConstantOverDomainLength(t *testing.T) {
	g := mustGrid(t, 1, 1, 1)
	require.NoError(t, g.Make(3))
	loadConstant(t, g, 1)

	w, err := g.GetQuadratureWeights()
	require.NoError(t, err)
	var sum float64
	for _, wi := range w {
		sum += wi
	}
	require.InDelta(t, 2.0, sum, 1e-6)
}

func TestIntegrateMatchesGetQuadratureWeightsDotValues(t *testing.T) {
	g := mustGrid(t, 1, 1, 1)
	require.NoError(t, g.Make(3))
	loadFunc(t, g, func(x []float64) float64 { return x[0] * x[0] })

	direct, err := g.Integrate(0)
	require.NoError(t, err)

	w, err := g.GetQuadratureWeights()
	require.NoError(t, err)
	pts, err := g.GetPoints()
	require.NoError(t, err)
	var viaWeights float64
	for i, p := range pts {
		viaWeights += w[i] * (p[0] * p[0])
	}
	require.InDelta(t, direct, viaWeights, 1e-6)
}
