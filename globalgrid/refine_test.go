package globalgrid_test

import (
	"testing"

	"github.com/lvlath/tsgrid/contour"
	"github.com/lvlath/tsgrid/globalgrid"
	"github.com/lvlath/tsgrid/onedwrapper"
	"github.com/stretchr/testify/require"
)

func TestSetAnisotropicRefinementGrowsGrid(t *testing.T) {
	g := mustGrid(t, 2, 1, onedwrapper.RuleClenshawCurtis)
	require.NoError(t, g.Make(2, contour.TypeLevel, nil))
	loadFunc(t, g, func(x []float64) float64 { return x[0]*x[0] + x[1] })

	before, err := g.GetPoints()
	require.NoError(t, err)

	require.NoError(t, g.SetAnisotropicRefinement(3, contour.TypeIPTotal, 0))

	needed, err := g.GetNeededPoints()
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(needed), 3)

	loadFunc(t, g, func(x []float64) float64 { return x[0]*x[0] + x[1] })

	after, err := g.GetPoints()
	require.NoError(t, err)
	require.Greater(t, len(after), len(before))
}

func TestSetAnisotropicRefinementWithoutValuesFails(t *testing.T) {
	g := mustGrid(t, 1, 1, onedwrapper.RuleClenshawCurtis)
	require.NoError(t, g.Make(2, contour.TypeLevel, nil))

	err := g.SetAnisotropicRefinement(2, contour.TypeIPTotal, 0)
	require.ErrorIs(t, err, globalgrid.ErrNoValuesLoaded)
}

func TestSetSurplusRefinementFlagsHighVariationPoints(t *testing.T) {
	g := mustGrid(t, 1, 1, onedwrapper.RuleClenshawCurtis)
	require.NoError(t, g.Make(3, contour.TypeLevel, nil))
	loadFunc(t, g, func(x []float64) float64 { return x[0] * x[0] * x[0] * x[0] * x[0] })

	require.NoError(t, g.SetSurplusRefinement(1e-6, 0))

	needed, err := g.GetNeededPoints()
	require.NoError(t, err)
	require.NotEmpty(t, needed)
}

func TestAcceptUpdatedTensorsWithoutStagedRefinementFails(t *testing.T) {
	g := mustGrid(t, 1, 1, onedwrapper.RuleClenshawCurtis)
	require.NoError(t, g.Make(2, contour.TypeLevel, nil))
	err := g.AcceptUpdatedTensors()
	require.ErrorIs(t, err, globalgrid.ErrNoPendingRefinement)
}

func TestRemoveTensorsByLimitBeforeMakeFails(t *testing.T) {
	g := mustGrid(t, 1, 1, onedwrapper.RuleClenshawCurtis)
	err := g.RemoveTensorsByLimit([]int{-1})
	require.ErrorIs(t, err, globalgrid.ErrNotMade)
}

func TestRemoveTensorsByLimitShrinksGrid(t *testing.T) {
	g := mustGrid(t, 2, 1, onedwrapper.RuleClenshawCurtis)
	require.NoError(t, g.Make(3, contour.TypeLevel, nil))
	loadFunc(t, g, func(x []float64) float64 { return x[0] + x[1] })

	before, err := g.GetPoints()
	require.NoError(t, err)

	require.NoError(t, g.RemoveTensorsByLimit([]int{1, -1}))

	after, err := g.GetPoints()
	require.NoError(t, err)
	require.LessOrEqual(t, len(after), len(before))
}
