package globalgrid

import (
	"fmt"

	"github.com/lvlath/tsgrid/internal/linalg"
	"github.com/lvlath/tsgrid/internal/smolyak"
	"github.com/lvlath/tsgrid/multiindex"
	"github.com/lvlath/tsgrid/tensorrefs"
)

// LoadNeededPoints attaches values (one row per current needed point, in
// needed's order) to the grid, merging needed into points and, if a
// refinement is staged, accepting it (spec §4.1's applyUpdatedTensors).
func (g *Grid) LoadNeededPoints(values [][]float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.loadNeededPointsLocked(values)
}

// loadNeededPointsLocked is LoadNeededPoints's body, callable with the
// mutex already held (used by dynamic construction's EjectCompleteTensor).
func (g *Grid) loadNeededPointsLocked(values [][]float64) error {
	if !g.made {
		return fmt.Errorf("globalgrid.LoadNeededPoints: %w", ErrNotMade)
	}
	if len(values) != g.needed.Len() {
		return fmt.Errorf("globalgrid.LoadNeededPoints: %w", ErrRowCountMismatch)
	}
	if g.numOutputs > 0 {
		for i, row := range values {
			if len(row) != g.numOutputs {
				return fmt.Errorf("globalgrid.LoadNeededPoints: row %d: %w", i, ErrDimensionMismatch)
			}
		}
	}

	// needed was produced as a Difference against points (or, for a fresh
	// Make, points is empty), so the two are already disjoint by
	// construction: a positional Concat, not a deduplicating Union, is
	// what preserves a non-nested rule's tensor-concatenated point
	// identity (equal-valued tuples from distinct tensors must remain
	// distinct positions matching distinct values rows).
	merged, err := g.points.Concat(g.needed)
	if err != nil {
		return fmt.Errorf("globalgrid.LoadNeededPoints: %w", err)
	}

	if g.numOutputs > 0 {
		newValues, err := linalg.NewDenseMatrixFromRows(padRows(merged.Len(), g.points.Len(), values, g.values))
		if err != nil {
			return fmt.Errorf("globalgrid.LoadNeededPoints: %w", err)
		}
		g.values = newValues
	}

	g.points = merged
	g.needed, _ = multiindex.New(g.numDims)

	if g.updatedTensors != nil {
		if err := g.applyUpdatedTensors(); err != nil {
			return fmt.Errorf("globalgrid.LoadNeededPoints: %w", err)
		}
	}

	g.log.Event("load", "grid_id", g.id, "num_points", g.points.Len())
	return nil
}

// AcceptUpdatedTensors adopts a staged refinement without waiting for
// LoadNeededPoints; ErrNoPendingRefinement if none is staged. Exposed for
// callers that stage a refinement, load its needed points via a separate
// path (e.g. dynamic construction), and only then want the updated
// tensors folded in explicitly.
func (g *Grid) AcceptUpdatedTensors() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.updatedTensors == nil {
		return fmt.Errorf("globalgrid.AcceptUpdatedTensors: %w", ErrNoPendingRefinement)
	}
	return g.applyUpdatedTensors()
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

// applyUpdatedTensors adopts a staged refinement: updated_* become the
// grid's tensors, max_levels is recomputed unconditionally from the new
// tensor set, and tensor_refs is rebuilt against the now-merged point
// set (fixing the staleness ambiguity noted in spec §9: recomputing
// max_levels here, not conditionally on whether points was previously
// empty, is required for a second-or-later refinement round to see the
// right per-dimension bounds).
func (g *Grid) applyUpdatedTensors() error {
	g.tensors = g.updatedTensors
	g.activeTensors = g.updatedActiveTensors
	g.activeW = g.updatedActiveW
	g.maxLevels = g.tensors.MaxPerDim()

	if g.wrapper.Nested() {
		refs, err := tensorrefs.RefsForExistingPoints(g.wrapper, g.points, g.activeTensors)
		if err != nil {
			return err
		}
		g.tensorRefs = refs
	} else {
		// Non-nested rules have no stable per-tuple point identity
		// across separate builds; refinement rebuilds the point set and
		// refs from scratch and any previously loaded values must be
		// reloaded against the new point set.
		points, refs, err := smolyak.BuildPoints(g.wrapper, g.tensors, g.activeTensors, false)
		if err != nil {
			return err
		}
		g.points = points
		g.tensorRefs = refs
		g.values = nil
		g.needed = points.Clone()
	}

	g.updatedTensors, g.updatedActiveTensors, g.updatedActiveW = nil, nil, nil
	return nil
}
