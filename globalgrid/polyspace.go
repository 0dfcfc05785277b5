package globalgrid

import (
	"fmt"

	"github.com/lvlath/tsgrid/internal/linalg"
	"github.com/lvlath/tsgrid/internal/smolyak"
	"github.com/lvlath/tsgrid/multiindex"
)

// GetPolynomialSpace returns the polynomial space the grid currently
// resolves: the union, over active tensors, of the box
// [0, iExact(L_j)] per dimension (spec §4.2's P). The surplus estimator
// recomputes the same per-dimension bounds from the active tensors itself
// and does not call this method.
func (g *Grid) GetPolynomialSpace() (*multiindex.MultiIndexSet, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.made {
		return nil, ErrNotMade
	}
	space, err := multiindex.New(g.numDims)
	if err != nil {
		return nil, err
	}
	for i := 0; i < g.activeTensors.Len(); i++ {
		t := g.activeTensors.At(i)
		bounds := make([]int, g.numDims)
		for j, level := range t {
			e, err := g.wrapper.IExact(level)
			if err != nil {
				return nil, fmt.Errorf("globalgrid.GetPolynomialSpace: %w", err)
			}
			bounds[j] = e
		}
		if err := insertBox(space, bounds); err != nil {
			return nil, err
		}
	}
	return space, nil
}

// insertBox inserts every tuple of the box [0,bounds[0]] x ... x
// [0,bounds[d-1]] into set.
func insertBox(set *multiindex.MultiIndexSet, bounds []int) error {
	d := len(bounds)
	sizes := make([]int, d)
	n := 1
	for j, b := range bounds {
		sizes[j] = b + 1
		n *= sizes[j]
	}
	t := make([]int, d)
	for k := 0; k < n; k++ {
		rem := k
		for j := d - 1; j >= 0; j-- {
			t[j] = rem % sizes[j]
			rem /= sizes[j]
		}
		if _, err := set.Insert(append([]int(nil), t...)); err != nil {
			return err
		}
	}
	return nil
}

// RemoveTensorsByLimit prunes the current (and any staged updated_*)
// tensor set to the given per-dimension limits and recomputes active
// tensors, points, and refs from what remains. A negative limit entry
// leaves that dimension unbounded.
func (g *Grid) RemoveTensorsByLimit(limits []int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.made {
		return ErrNotMade
	}
	if len(limits) != g.numDims {
		return fmt.Errorf("globalgrid.RemoveTensorsByLimit: %w", ErrLevelLimitLength)
	}

	pruned := g.tensors.Filter(func(t []int) bool {
		for j, tj := range t {
			if limits[j] >= 0 && tj > limits[j] {
				return false
			}
		}
		return true
	})

	active, activeW, err := smolyak.ActiveTensors(pruned)
	if err != nil {
		return fmt.Errorf("globalgrid.RemoveTensorsByLimit: %w", err)
	}
	points, refs, err := smolyak.BuildPoints(g.wrapper, pruned, active, g.wrapper.Nested())
	if err != nil {
		return fmt.Errorf("globalgrid.RemoveTensorsByLimit: %w", err)
	}

	g.tensors = pruned
	g.activeTensors = active
	g.activeW = activeW
	g.tensorRefs = refs
	g.maxLevels = pruned.MaxPerDim()

	// Every remaining loaded point is still valid (removing tensors can
	// only shrink the point set); values not referenced by any surviving
	// tensor are dropped by rebuilding points/values from the pruned set.
	rebuiltValues := make([][]float64, 0, points.Len())
	if g.values != nil {
		for i := 0; i < points.Len(); i++ {
			pos, ok := g.points.IndexOf(points.At(i))
			if ok {
				rebuiltValues = append(rebuiltValues, g.values.Row(pos))
			} else {
				rebuiltValues = append(rebuiltValues, make([]float64, g.numOutputs))
			}
		}
	}

	g.points = points
	g.needed, _ = multiindex.New(g.numDims)
	if g.values != nil && len(rebuiltValues) > 0 {
		nv, err := linalg.NewDenseMatrixFromRows(rebuiltValues)
		if err != nil {
			return fmt.Errorf("globalgrid.RemoveTensorsByLimit: %w", err)
		}
		g.values = nv
	} else if g.values != nil {
		g.values = nil
	}

	g.updatedTensors, g.updatedActiveTensors, g.updatedActiveW = nil, nil, nil
	return nil
}
