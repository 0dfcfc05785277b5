package waveletgrid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDyadicTableLevelZeroIsEndpointsAndMidpoint(t *testing.T) {
	tab := newDyadicTable()
	require.Equal(t, 3, tab.numPoints(0))
	require.Equal(t, -1.0, tab.node(0))
	require.Equal(t, 0.0, tab.node(1))
	require.Equal(t, 1.0, tab.node(2))
}

func TestDyadicTablePrefixNesting(t *testing.T) {
	tab := newDyadicTable()
	prevValues := append([]float64(nil), tab.values...)
	for level := 1; level <= 4; level++ {
		tab.ensureLevel(level)
		require.GreaterOrEqual(t, len(tab.values), len(prevValues))
		for i, v := range prevValues {
			require.Equal(t, v, tab.values[i], "level %d must keep level %d's prefix", level, level-1)
		}
		prevValues = append([]float64(nil), tab.values...)
	}
}

func TestDyadicTablePointCountDoublesPerLevel(t *testing.T) {
	tab := newDyadicTable()
	// numPoints(l) = 2^(l+1)+1: 3, 5, 9, 17, ...
	want := []int{3, 5, 9, 17, 33}
	for level, n := range want {
		require.Equal(t, n, tab.numPoints(level))
	}
}

func TestDyadicTableMidpointIsRoot(t *testing.T) {
	tab := newDyadicTable()
	require.Equal(t, -1, tab.parentOf(1))
}

func TestDyadicTableEndpointsArePermanentLeaves(t *testing.T) {
	tab := newDyadicTable()
	tab.ensureLevel(5)
	require.True(t, tab.isBoundary(0))
	require.True(t, tab.isBoundary(2))
	left, right := tab.children(0)
	require.Equal(t, -1, left)
	require.Equal(t, -1, right)
	left, right = tab.children(2)
	require.Equal(t, -1, left)
	require.Equal(t, -1, right)
}

func TestDyadicTableChildBirthIsOneLevelAfterParent(t *testing.T) {
	tab := newDyadicTable()
	tab.ensureLevel(4)
	// children grows the table by a level for nodes on the newest level,
	// so the loop bound is fixed to the nodes that exist through level 4.
	n := len(tab.values)
	for p := 0; p < n; p++ {
		left, right := tab.children(p)
		for _, c := range [2]int{left, right} {
			if c == -1 {
				continue
			}
			require.Equal(t, tab.birthLevel(p)+1, tab.birthLevel(c))
			require.Equal(t, p, tab.parentOf(c))
		}
	}
}

func TestDyadicTableEveryNonRootNodeHasParent(t *testing.T) {
	tab := newDyadicTable()
	tab.ensureLevel(4)
	for p := 1; p < len(tab.values); p++ {
		if p == 0 || p == 1 || p == 2 {
			continue
		}
		require.NotEqual(t, -1, tab.parentOf(p))
	}
}

func TestWavelet1DOrder3ReadsOneLevelFiner(t *testing.T) {
	w1, err := newWavelet1D(1)
	require.NoError(t, err)
	w3, err := newWavelet1D(3)
	require.NoError(t, err)

	for level := 0; level <= 3; level++ {
		n1, err := w1.NumPoints(level + 1)
		require.NoError(t, err)
		n3, err := w3.NumPoints(level)
		require.NoError(t, err)
		require.Equal(t, n1, n3)
	}
}

func TestNewWavelet1DRejectsBadOrder(t *testing.T) {
	_, err := newWavelet1D(2)
	require.ErrorIs(t, err, ErrInvalidOrder)
}

func TestSupportRadiusHalvesEveryLevel(t *testing.T) {
	w, err := newWavelet1D(1)
	require.NoError(t, err)
	require.Equal(t, 1.0, w.supportRadius(1)) // root, birth level 0

	w.table.ensureLevel(2)
	// The first point born at level 2 in index order, -0.75 (between
	// node(0)=-1 and the level-1 node -0.5, its parent), has support
	// radius 1/4.
	var lvl2 int = -1
	for p := 0; p < len(w.table.values); p++ {
		if w.table.birthLevel(p) == 2 {
			lvl2 = p
			break
		}
	}
	require.NotEqual(t, -1, lvl2)
	require.InDelta(t, 0.25, w.supportRadius(lvl2), 1e-12)
}
