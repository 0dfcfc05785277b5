package globalgrid_test

import (
	"testing"

	"github.com/lvlath/tsgrid/contour"
	"github.com/lvlath/tsgrid/globalgrid"
	"github.com/lvlath/tsgrid/onedwrapper"
	"github.com/stretchr/testify/require"
)

func TestEstimateAnisotropicCoefficientsDetectsDominantDimension(t *testing.T) {
	g := mustGrid(t, 2, 1, onedwrapper.RuleClenshawCurtis)
	require.NoError(t, g.Make(4, contour.TypeLevel, nil))
	// A function that varies sharply in x0 and is nearly flat in x1
	// should be estimated as more important along dimension 0.
	loadFunc(t, g, func(x []float64) float64 { return 1.0 / (1.0 + 25*x[0]*x[0]) })

	weights, err := g.EstimateAnisotropicCoefficients(contour.TypeIPTotal, 0)
	require.NoError(t, err)
	require.Len(t, weights, 2)
	for _, w := range weights {
		require.Greater(t, w, 0.0)
	}
}

func TestEstimateAnisotropicCoefficientsWithoutValuesFails(t *testing.T) {
	g := mustGrid(t, 1, 1, onedwrapper.RuleClenshawCurtis)
	require.NoError(t, g.Make(2, contour.TypeLevel, nil))
	_, err := g.EstimateAnisotropicCoefficients(contour.TypeIPTotal, 0)
	require.ErrorIs(t, err, globalgrid.ErrNoValuesLoaded)
}

func TestEstimateAnisotropicCoefficientsOutOfRangeOutputFails(t *testing.T) {
	g := mustGrid(t, 1, 1, onedwrapper.RuleClenshawCurtis)
	require.NoError(t, g.Make(2, contour.TypeLevel, nil))
	loadConstant(t, g, 1)
	_, err := g.EstimateAnisotropicCoefficients(contour.TypeIPTotal, 7)
	require.ErrorIs(t, err, globalgrid.ErrOutputIndex)
}

func TestEstimateAnisotropicCoefficientsCurvedShape(t *testing.T) {
	g := mustGrid(t, 2, 1, onedwrapper.RuleClenshawCurtis)
	require.NoError(t, g.Make(4, contour.TypeLevel, nil))
	loadFunc(t, g, func(x []float64) float64 { return x[0]*x[0]*x[0] + x[1] })

	weights, err := g.EstimateAnisotropicCoefficients(contour.TypeIPCurved, 0)
	require.NoError(t, err)
	require.Len(t, weights, 4)
}
