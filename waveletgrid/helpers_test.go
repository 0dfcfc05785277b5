package waveletgrid_test

import (
	"testing"

	"github.com/lvlath/tsgrid/waveletgrid"
	"github.com/stretchr/testify/require"
)

func mustGrid(t *testing.T, dims, outputs, order int, opts ...waveletgrid.Option) *waveletgrid.Grid {
	t.Helper()
	g, err := waveletgrid.NewWavelet(dims, outputs, order, opts...)
	require.NoError(t, err)
	return g
}

func loadFunc(t *testing.T, g *waveletgrid.Grid, f func(x []float64) float64) {
	t.Helper()
	pts, err := g.GetNeededPoints()
	require.NoError(t, err)
	values := make([][]float64, len(pts))
	for i, p := range pts {
		values[i] = []float64{f(p)}
	}
	require.NoError(t, g.LoadNeededPoints(values))
}

func loadConstant(t *testing.T, g *waveletgrid.Grid, c float64) {
	t.Helper()
	pts, err := g.GetNeededPoints()
	require.NoError(t, err)
	values := make([][]float64, len(pts))
	for i := range values {
		values[i] = []float64{c}
	}
	require.NoError(t, g.LoadNeededPoints(values))
}
