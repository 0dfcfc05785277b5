package globalgrid_test

import (
	"bytes"
	"testing"

	"github.com/lvlath/tsgrid/contour"
	"github.com/lvlath/tsgrid/globalgrid"
	"github.com/lvlath/tsgrid/onedwrapper"
	"github.com/stretchr/testify/require"
)

func requireSamePoints(t *testing.T, want, got *globalgrid.Grid) {
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

func TestSaveLoadTextRoundTripNestedRule(t *testing.T) {
	g := mustGrid(t, 2, 1, onedwrapper.RuleClenshawCurtis)
	require.NoError(t, g.Make(3, contour.TypeLevel, nil))
	loadFunc(t, g, func(x []float64) float64 { return 2*x[0] - 3*x[1] + 1 })

	var buf bytes.Buffer
	require.NoError(t, g.Save(&buf, false))

	got, err := globalgrid.Load(&buf, false)
	require.NoError(t, err)

	requireSamePoints(t, g, got)
	y, err := got.Evaluate([]float64{0.3, -0.5}, 0)
	require.NoError(t, err)
	require.InDelta(t, 2*0.3-3*(-0.5)+1, y, 1e-8)
}

func TestSaveLoadBinaryRoundTripNestedRule(t *testing.T) {
	g := mustGrid(t, 2, 1, onedwrapper.RuleClenshawCurtis)
	require.NoError(t, g.Make(3, contour.TypeLevel, nil))
	loadFunc(t, g, func(x []float64) float64 { return 2*x[0] - 3*x[1] + 1 })

	var buf bytes.Buffer
	require.NoError(t, g.Save(&buf, true))

	got, err := globalgrid.Load(&buf, true)
	require.NoError(t, err)

	requireSamePoints(t, g, got)
	y, err := got.Evaluate([]float64{0.3, -0.5}, 0)
	require.NoError(t, err)
	require.InDelta(t, 2*0.3-3*(-0.5)+1, y, 1e-8)
}

func TestSaveLoadRoundTripNonNestedRule(t *testing.T) {
	g := mustGrid(t, 2, 1, onedwrapper.RuleGaussLegendre)
	require.NoError(t, g.Make(2, contour.TypeLevel, nil))
	loadFunc(t, g, func(x []float64) float64 { return x[0] + x[1] })

	var buf bytes.Buffer
	require.NoError(t, g.Save(&buf, true))

	got, err := globalgrid.Load(&buf, true)
	require.NoError(t, err)

	requireSamePoints(t, g, got)

	w1, err := g.GetQuadratureWeights()
	require.NoError(t, err)
	w2, err := got.GetQuadratureWeights()
	require.NoError(t, err)
	require.Equal(t, len(w1), len(w2))
	for i := range w1 {
		require.InDelta(t, w1[i], w2[i], 1e-12)
	}
}

func TestSaveLoadRoundTripBeforeValuesLoaded(t *testing.T) {
	g := mustGrid(t, 2, 1, onedwrapper.RuleClenshawCurtis)
	require.NoError(t, g.Make(2, contour.TypeLevel, nil))

	pts, err := g.GetNeededPoints()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, g.Save(&buf, false))

	got, err := globalgrid.Load(&buf, false)
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
	g := mustGrid(t, 2, 1, onedwrapper.RuleClenshawCurtis)
	require.NoError(t, g.Make(2, contour.TypeLevel, nil))
	loadFunc(t, g, func(x []float64) float64 { return x[0]*x[0] + x[1] })

	require.NoError(t, g.SetSurplusRefinement(1e-9, 0))

	var buf bytes.Buffer
	require.NoError(t, g.Save(&buf, true))

	got, err := globalgrid.Load(&buf, true)
	require.NoError(t, err)

	wantNeeded, err := g.GetNeededPoints()
	require.NoError(t, err)
	gotNeeded, err := got.GetNeededPoints()
	require.NoError(t, err)
	require.Equal(t, len(wantNeeded), len(gotNeeded))

	require.NoError(t, got.AcceptUpdatedTensors())
}

func TestSaveLoadRoundTripNoOutputs(t *testing.T) {
	g := mustGrid(t, 1, 0, onedwrapper.RuleClenshawCurtis)
	require.NoError(t, g.Make(2, contour.TypeLevel, nil))

	var buf bytes.Buffer
	require.NoError(t, g.Save(&buf, false))

	got, err := globalgrid.Load(&buf, false)
	require.NoError(t, err)
	requireSamePoints(t, g, got)
}

func TestSaveLoadRoundTripCustomTabulated(t *testing.T) {
	custom, err := onedwrapper.NewCustomTabulated(
		[][]float64{{0}, {-1, 1}},
		[][]float64{{2}, {1, 1}},
		[]int{0, 1},
		[]int{1, 1},
		true,
	)
	require.NoError(t, err)

	g := mustGrid(t, 1, 1, onedwrapper.RuleCustomTabulated, globalgrid.WithCustomTable(custom))
	require.NoError(t, g.Make(1, contour.TypeLevel, nil))
	loadFunc(t, g, func(x []float64) float64 { return x[0] })

	var buf bytes.Buffer
	require.NoError(t, g.Save(&buf, false))

	got, err := globalgrid.Load(&buf, false)
	require.NoError(t, err)
	requireSamePoints(t, g, got)
}

func TestLoadUnknownRuleNameFails(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("1 0 0.0e+00 0.0e+00 not-a-real-rule")

	_, err := globalgrid.Load(&buf, false)
	require.Error(t, err)
}

func TestLoadTruncatedStreamFails(t *testing.T) {
	g := mustGrid(t, 2, 1, onedwrapper.RuleClenshawCurtis)
	require.NoError(t, g.Make(2, contour.TypeLevel, nil))
	loadConstant(t, g, 1)

	var buf bytes.Buffer
	require.NoError(t, g.Save(&buf, true))

	truncated := bytes.NewReader(buf.Bytes()[:buf.Len()/2])
	_, err := globalgrid.Load(truncated, true)
	require.Error(t, err)
}
