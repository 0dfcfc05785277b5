package globalgrid

import (
	"fmt"
	"math"

	"github.com/lvlath/tsgrid/contour"
	"github.com/lvlath/tsgrid/multiindex"
)

// updateGrid reselects tensors at level under typ/weights/limits, unions
// them with the existing tensor set, and stages the result as a pending
// refinement: needed = points_of(updated_active_tensors) \ points. It
// falls back to a full Make if no values have ever been loaded, per
// spec §4.1's failure-mode note.
func (g *Grid) updateGrid(level int, typ contour.Type, weights []float64, limits []int) error {
	if g.values == nil && g.points.Len() == 0 {
		return g.makeLocked(level, typ, weights)
	}

	fresh, err := g.selectTensors(level, typ, weights)
	if err != nil {
		return err
	}
	if limits != nil {
		fresh, err = contour.ApplyLevelLimits(fresh, limits)
		if err != nil {
			return err
		}
	}
	updatedTensors, err := g.tensors.Union(fresh)
	if err != nil {
		return err
	}
	updatedActive, updatedW, updatedPoints, _, err := g.buildFromTensors(updatedTensors)
	if err != nil {
		return err
	}
	needed, err := updatedPoints.Difference(g.points)
	if err != nil {
		return err
	}

	g.updatedTensors = updatedTensors
	g.updatedActiveTensors = updatedActive
	g.updatedActiveW = updatedW
	g.needed = needed
	return nil
}

// makeLocked is Make's body without acquiring the mutex, for reuse by
// callers (updateGrid's values-not-loaded fallback) that already hold it.
func (g *Grid) makeLocked(depth int, typ contour.Type, weights []float64) error {
	tensors, err := g.selectTensors(depth, typ, weights)
	if err != nil {
		return err
	}
	active, activeW, points, refs, err := g.buildFromTensors(tensors)
	if err != nil {
		return err
	}
	g.tensors = tensors
	g.activeTensors = active
	g.activeW = activeW
	g.tensorRefs = refs
	g.maxLevels = tensors.MaxPerDim()
	empty, _ := multiindex.New(g.numDims)
	g.points = empty
	g.needed = points
	g.values = nil
	g.updatedTensors, g.updatedActiveTensors, g.updatedActiveW = nil, nil, nil
	g.made = true
	return nil
}

// SetAnisotropicRefinement estimates anisotropic weights for output and
// repeatedly calls updateGrid with increasing level until needed has at
// least minGrowth points (spec §4.1).
func (g *Grid) SetAnisotropicRefinement(minGrowth int, typ contour.Type, output int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.values == nil {
		return fmt.Errorf("globalgrid.SetAnisotropicRefinement: %w", ErrNoValuesLoaded)
	}
	if output < 0 || output >= g.numOutputs {
		return fmt.Errorf("globalgrid.SetAnisotropicRefinement: %w", ErrOutputIndex)
	}

	weights, err := g.estimateAnisotropicCoefficientsLocked(typ, output)
	if err != nil {
		return fmt.Errorf("globalgrid.SetAnisotropicRefinement: %w", err)
	}

	currentDepth := 0
	for _, l := range g.tensors.MaxPerDim() {
		if l > currentDepth {
			currentDepth = l
		}
	}
	for level := currentDepth + 1; ; level++ {
		if err := g.updateGrid(level, typ, weights, g.levelLimits); err != nil {
			return fmt.Errorf("globalgrid.SetAnisotropicRefinement: %w", err)
		}
		if g.needed.Len() >= minGrowth {
			break
		}
	}
	g.log.Event("anisotropic_refinement", "grid_id", g.id, "output", output, "needed", g.needed.Len())
	return nil
}

// SetSurplusRefinement flags points with normalized hierarchical
// surplus magnitude above tol, expands the flagged set by its immediate
// per-dimension successors, completes the lower hull, and stages the
// result as a pending refinement (spec §4.1/§4.2).
func (g *Grid) SetSurplusRefinement(tol float64, output int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.values == nil {
		return fmt.Errorf("globalgrid.SetSurplusRefinement: %w", ErrNoValuesLoaded)
	}
	if output < 0 || output >= g.numOutputs {
		return fmt.Errorf("globalgrid.SetSurplusRefinement: %w", ErrOutputIndex)
	}

	surpluses, err := g.estimator.Surpluses(g.viewLocked(), output, true)
	if err != nil {
		return fmt.Errorf("globalgrid.SetSurplusRefinement: %w", err)
	}

	flagged, err := multiindex.New(g.numDims)
	if err != nil {
		return err
	}
	for i, s := range surpluses {
		if math.Abs(s) > tol {
			t := g.points.At(i)
			if _, err := flagged.Insert(t); err != nil {
				return err
			}
			for j := 0; j < g.numDims; j++ {
				child := append([]int(nil), t...)
				child[j]++
				if g.levelLimits != nil && g.levelLimits[j] >= 0 && child[j] > g.levelLimits[j] {
					continue
				}
				if !g.points.Contains(child) {
					if _, err := flagged.Insert(child); err != nil {
						return err
					}
				}
			}
		}
	}

	updatedPoints, err := g.points.Union(flagged)
	if err != nil {
		return err
	}
	updatedPoints = updatedPoints.CompleteLower()

	// The lower hull of the flagged index tuples becomes the updated
	// tensor set; needed is every point of its active tensors that is not
	// already loaded (a level-l tensor can hold more points than the
	// single index tuple l, e.g. 2^l+1 per dimension for Clenshaw-Curtis).
	updatedActive, updatedW, tensorPoints, _, err := g.buildFromTensors(updatedPoints)
	if err != nil {
		return err
	}
	needed, err := tensorPoints.Difference(g.points)
	if err != nil {
		return err
	}

	g.updatedTensors = updatedPoints
	g.updatedActiveTensors = updatedActive
	g.updatedActiveW = updatedW
	g.needed = needed

	g.log.Event("surplus_refinement", "grid_id", g.id, "output", output, "tol", tol, "needed", needed.Len())
	return nil
}
