package waveletgrid

import (
	"fmt"

	"github.com/lvlath/tsgrid/contour"
	"github.com/lvlath/tsgrid/multiindex"
	"github.com/lvlath/tsgrid/tensorrefs"
)

// Make selects the tensor set at depth (always total-degree level, per
// spec §4.4) and populates the grid's needed points as the nested
// union, over every selected tensor, of that tensor's local dyadic
// grid. Any previously loaded values, collocation matrix, and
// coefficients are discarded.
func (g *Grid) Make(depth int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	sel, err := contour.NewSelector(g.numDims, contour.TypeLevel, nil, nil)
	if err != nil {
		return fmt.Errorf("waveletgrid.Make: %w", err)
	}
	tensors, err := sel.Select(depth)
	if err != nil {
		return fmt.Errorf("waveletgrid.Make: %w", err)
	}
	if g.levelLimits != nil {
		tensors, err = contour.ApplyLevelLimits(tensors, g.levelLimits)
		if err != nil {
			return fmt.Errorf("waveletgrid.Make: %w", err)
		}
	}

	// WaveletGrid has no Smolyak combination step, so the active-tensor
	// argument BuildNested also wants is simply the full tensor set:
	// every tensor contributes its whole local grid to the union, and
	// the per-tensor refs BuildNested additionally computes are unused
	// here (collocation is assembled directly from point coordinates).
	// The tensor set itself is not retained: unlike GlobalGrid, nothing
	// downstream (refinement, persistence) ever consults it again.
	points, _, err := tensorrefs.BuildNested(g.wavelet, tensors, tensors)
	if err != nil {
		return fmt.Errorf("waveletgrid.Make: %w", err)
	}

	empty, _ := multiindex.New(g.numDims)
	g.points = empty
	g.needed = points
	g.values = nil
	g.collocation = nil
	g.coefficients = nil
	g.made = true

	g.log.Event("make", "grid_id", g.id, "depth", depth, "num_tensors", tensors.Len(), "num_points", points.Len())
	return nil
}
