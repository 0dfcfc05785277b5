package waveletgrid

import (
	"fmt"

	"github.com/lvlath/tsgrid/internal/linalg"
	"github.com/lvlath/tsgrid/multiindex"
)

// LoadNeededPoints attaches values (one row per current needed point,
// in needed's order) to the grid, merges needed into points, rebuilds
// the collocation matrix from scratch, and solves for the per-output
// hierarchical coefficients (spec §4.4's "Coefficients").
func (g *Grid) LoadNeededPoints(values [][]float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.made {
		return fmt.Errorf("waveletgrid.LoadNeededPoints: %w", ErrNotMade)
	}
	if len(values) != g.needed.Len() {
		return fmt.Errorf("waveletgrid.LoadNeededPoints: %w", ErrRowCountMismatch)
	}
	if g.numOutputs > 0 {
		for i, row := range values {
			if len(row) != g.numOutputs {
				return fmt.Errorf("waveletgrid.LoadNeededPoints: row %d: %w", i, ErrDimensionMismatch)
			}
		}
	}

	// WaveletGrid's point identity is always value-based (nested by
	// construction), so a deduplicating Union is correct here, unlike
	// GlobalGrid's non-nested rules; points and needed are disjoint by
	// construction regardless.
	merged, err := g.points.Union(g.needed)
	if err != nil {
		return fmt.Errorf("waveletgrid.LoadNeededPoints: %w", err)
	}

	if g.numOutputs > 0 {
		newValues, err := linalg.NewDenseMatrixFromRows(padRows(merged.Len(), g.points.Len(), values, g.values))
		if err != nil {
			return fmt.Errorf("waveletgrid.LoadNeededPoints: %w", err)
		}
		g.values = newValues
	}

	g.points = merged
	g.needed, _ = multiindex.New(g.numDims)

	if err := g.rebuildCollocationLocked(); err != nil {
		return fmt.Errorf("waveletgrid.LoadNeededPoints: %w", err)
	}
	if g.numOutputs > 0 {
		if err := g.solveCoefficientsLocked(); err != nil {
			return fmt.Errorf("waveletgrid.LoadNeededPoints: %w", err)
		}
	}

	g.log.Event("load", "grid_id", g.id, "num_points", g.points.Len())
	return nil
}

// padRows builds the merged values matrix's rows: the existing loaded
// rows first (unchanged), followed by the freshly supplied rows for
// needed, matching Union's "existing first, then new" ordering.
func padRows(total, existing int, fresh [][]float64, old *linalg.DenseMatrix) [][]float64 {
	rows := make([][]float64, total)
	for i := 0; i < existing; i++ {
		rows[i] = old.Row(i)
	}
	for i, row := range fresh {
		rows[existing+i] = append([]float64(nil), row...)
	}
	return rows
}
