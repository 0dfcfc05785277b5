package globalgrid

import (
	"fmt"

	"github.com/lvlath/tsgrid/contour"
	"github.com/lvlath/tsgrid/internal/smolyak"
	"github.com/lvlath/tsgrid/multiindex"
	"github.com/lvlath/tsgrid/tensorrefs"
)

// selectTensors runs contour.Selector at depth and applies the grid's
// level limits, per spec §4.1's tensor-selection subsection.
func (g *Grid) selectTensors(depth int, typ contour.Type, weights []float64) (*multiindex.MultiIndexSet, error) {
	var exactness contour.ExactnessFunc
	switch typ.Exactness {
	case contour.ExactInterpolation:
		exactness = g.wrapper.IExact
	case contour.ExactQuadrature:
		exactness = g.wrapper.QExact
	}
	sel, err := contour.NewSelector(g.numDims, typ, weights, exactness)
	if err != nil {
		return nil, err
	}
	set, err := sel.Select(depth)
	if err != nil {
		return nil, err
	}
	if g.levelLimits != nil {
		set, err = contour.ApplyLevelLimits(set, g.levelLimits)
		if err != nil {
			return nil, err
		}
	}
	return set, nil
}

// buildFromTensors computes active tensors, the point set, and
// TensorRefs for a freshly selected tensor set, per spec §4.1.
func (g *Grid) buildFromTensors(tensors *multiindex.MultiIndexSet) (active *multiindex.MultiIndexSet, activeW []int, points *multiindex.MultiIndexSet, refs *tensorrefs.TensorRefs, err error) {
	active, activeW, err = smolyak.ActiveTensors(tensors)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	points, refs, err = smolyak.BuildPoints(g.wrapper, tensors, active, g.wrapper.Nested())
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return active, activeW, points, refs, nil
}

// Make selects the initial tensor set at depth under contour typ (with
// optional anisotropic weights) and populates the grid's needed points.
// Any previously loaded values are discarded: Make (re)starts
// construction from scratch, matching the "attempting refinement before
// any values are loaded falls back to makeGrid" failure mode of spec
// §4.1.
func (g *Grid) Make(depth int, typ contour.Type, weights []float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	tensors, err := g.selectTensors(depth, typ, weights)
	if err != nil {
		return fmt.Errorf("globalgrid.Make: %w", err)
	}
	active, activeW, points, refs, err := g.buildFromTensors(tensors)
	if err != nil {
		return fmt.Errorf("globalgrid.Make: %w", err)
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

	g.log.Event("make", "grid_id", g.id, "depth", depth, "type", typ.String(), "num_tensors", tensors.Len(), "num_points", points.Len())
	return nil
}
