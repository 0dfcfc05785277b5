package numeric_test

import (
	"testing"

	"github.com/lvlath/tsgrid/internal/numeric"
	"github.com/stretchr/testify/require"
)

func TestLegendrePKnownValues(t *testing.T) {
	require.InDelta(t, 1.0, numeric.LegendreP(0, 0.5), 1e-12)
	require.InDelta(t, 0.5, numeric.LegendreP(1, 0.5), 1e-12)
	// P_2(x) = (3x^2-1)/2
	require.InDelta(t, -0.125, numeric.LegendreP(2, 0.5), 1e-12)
	// P_3(x) = (5x^3-3x)/2
	require.InDelta(t, -0.4375, numeric.LegendreP(3, 0.5), 1e-12)
}
