package waveletgrid_test

import (
	"bytes"
	"testing"

	"github.com/lvlath/tsgrid/waveletgrid"
	"github.com/stretchr/testify/require"
)

func requireSamePoints(t *testing.T, want, got *waveletgrid.Grid) {
	t.Helper()
	wp, err := want.GetPoints()
	require.NoError(t, err)
	gp, err := got.GetPoints()
	require.NoError(t, err)
	require.Equal(t, len(wp), len(gp))
	for i := range wp {
		require.InDeltaSlice(t, wp[i], gp[i], 1e-12)
	}
}

func TestSaveLoadTextRoundTrip(t *testing.T) {
	g := mustGrid(t, 2, 1, 1)
	require.NoError(t, g.Make(2))
	loadFunc(t, g, func(x []float64) float64 { return x[0] + 2*x[1] })

	var buf bytes.Buffer
	require.NoError(t, g.Save(&buf, false))

	got, err := waveletgrid.Load(&buf, false)
	require.NoError(t, err)

	requireSamePoints(t, g, got)
	y, err := got.Evaluate([]float64{0.25, -0.25}, 0)
	require.NoError(t, err)
	want, err := g.Evaluate([]float64{0.25, -0.25}, 0)
	require.NoError(t, err)
	require.InDelta(t, want, y, 1e-9)
}

func TestSaveLoadBinaryRoundTrip(t *testing.T) {
	g := mustGrid(t, 2, 1, 3)
	require.NoError(t, g.Make(2))
	loadFunc(t, g, func(x []float64) float64 { return x[0]*x[0] - x[1] })

	var buf bytes.Buffer
	require.NoError(t, g.Save(&buf, true))

	got, err := waveletgrid.Load(&buf, true)
	require.NoError(t, err)

	requireSamePoints(t, g, got)

	c1, err := g.GetHierarchicalCoefficients(0)
	require.NoError(t, err)
	c2, err := got.GetHierarchicalCoefficients(0)
	require.NoError(t, err)
	require.Equal(t, len(c1), len(c2))
	for i := range c1 {
		require.InDelta(t, c1[i], c2[i], 1e-9)
	}
}

func TestSaveLoadRoundTripBeforeValuesLoaded(t *testing.T) {
	g := mustGrid(t, 2, 1, 1)
	require.NoError(t, g.Make(2))

	pts, err := g.GetNeededPoints()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, g.Save(&buf, false))

	got, err := waveletgrid.Load(&buf, false)
	require.NoError(t, err)

	gotPts, err := got.GetNeededPoints()
	require.NoError(t, err)
	require.Equal(t, len(pts), len(gotPts))

	values := make([][]float64, len(gotPts))
	for i, p := range gotPts {
		values[i] = []float64{p[0] * p[1]}
	}
	require.NoError(t, got.LoadNeededPoints(values))
}

func TestSaveLoadRoundTripWithPendingRefinement(t *testing.T) {
	g := mustGrid(t, 1, 1, 1)
	require.NoError(t, g.Make(2))
	loadFunc(t, g, func(x []float64) float64 { return x[0] * x[0] })

	require.NoError(t, g.SetRefinement(1e-9, waveletgrid.RefinementClassic))

	var buf bytes.Buffer
	require.NoError(t, g.Save(&buf, true))

	got, err := waveletgrid.Load(&buf, true)
	require.NoError(t, err)

	wantNeeded, err := g.GetNeededPoints()
	require.NoError(t, err)
	gotNeeded, err := got.GetNeededPoints()
	require.NoError(t, err)
	require.Equal(t, len(wantNeeded), len(gotNeeded))
}

func TestSaveLoadRoundTripNoOutputs(t *testing.T) {
	g := mustGrid(t, 1, 0, 1)
	require.NoError(t, g.Make(2))

	var buf bytes.Buffer
	require.NoError(t, g.Save(&buf, false))

	got, err := waveletgrid.Load(&buf, false)
	require.NoError(t, err)
	requireSamePoints(t, g, got)
}

func TestLoadTruncatedStreamFails(t *testing.T) {
	g := mustGrid(t, 2, 1, 1)
	require.NoError(t, g.Make(2))
	loadConstant(t, g, 1)

	var buf bytes.Buffer
	require.NoError(t, g.Save(&buf, true))

	truncated := bytes.NewReader(buf.Bytes()[:buf.Len()/2])
	_, err := waveletgrid.Load(truncated, true)
	require.Error(t, err)
}
