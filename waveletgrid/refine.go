package waveletgrid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lvlath/tsgrid/internal/linalg"
	"github.com/lvlath/tsgrid/multiindex"
)

// RefinementMap selects the refinement decision rule of spec §4.4.
type RefinementMap int

const (
	// RefinementClassic ("parents_first") flags direction j of a point
	// whenever |coefficient|/max|value| exceeds tol for some output.
	RefinementClassic RefinementMap = iota
	// RefinementDirectionSelective ("fds") additionally requires the
	// point's 1-D directional coefficient, fit against its own line of
	// points along j, to exceed tol by the same measure.
	RefinementDirectionSelective
)

func (m RefinementMap) String() string {
	if m == RefinementDirectionSelective {
		return "fds"
	}
	return "classic"
}

// SetRefinement flags (point, direction) pairs whose coefficient
// magnitude (spec §4.4's refinement map) exceeds tol relative to the
// output's largest loaded value, then adds successors: a flagged
// direction whose immediate parent is missing gets only that parent
// this round; otherwise both children are added, skipping any -1
// (absent) child and any child outside levelLimits. New points are
// appended to needed without enforcing downward closure — the next
// LoadNeededPoints rebuilds the collocation matrix from scratch
// regardless of shape.
func (g *Grid) SetRefinement(tol float64, mode RefinementMap) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.coefficients == nil {
		return fmt.Errorf("waveletgrid.SetRefinement: %w", ErrNoValuesLoaded)
	}

	n := g.points.Len()
	maxAbsV := make([]float64, g.numOutputs)
	for k := 0; k < g.numOutputs; k++ {
		for i := 0; i < n; i++ {
			if a := abs(g.values.At(i, k)); a > maxAbsV[k] {
				maxAbsV[k] = a
			}
		}
	}

	flagged := make([][]bool, n)
	for i := range flagged {
		flagged[i] = make([]bool, g.numDims)
	}

	for j := 0; j < g.numDims; j++ {
		var dirMaps []map[int]float64
		if mode == RefinementDirectionSelective && tol > 0 {
			dirMaps = make([]map[int]float64, g.numOutputs)
			for k := 0; k < g.numOutputs; k++ {
				dm, err := g.directionalCoefficientsLocked(k, j)
				if err != nil {
					return fmt.Errorf("waveletgrid.SetRefinement: direction %d: %w", j, err)
				}
				dirMaps[k] = dm
			}
		}
		for i := 0; i < n; i++ {
			if tol == 0 {
				flagged[i][j] = true
				continue
			}
			for k := 0; k < g.numOutputs; k++ {
				if maxAbsV[k] == 0 {
					continue
				}
				globalRatio := abs(g.coefficients.At(i, k)) / maxAbsV[k]
				ok := globalRatio > tol
				if ok && mode == RefinementDirectionSelective {
					dirRatio := abs(dirMaps[k][i]) / maxAbsV[k]
					ok = dirRatio > tol
				}
				if ok {
					flagged[i][j] = true
					break
				}
			}
		}
	}

	fresh, err := multiindex.New(g.numDims)
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		p := g.points.At(i)
		for j := 0; j < g.numDims; j++ {
			if !flagged[i][j] {
				continue
			}
			if err := g.addSuccessorsLocked(fresh, p, j); err != nil {
				return fmt.Errorf("waveletgrid.SetRefinement: %w", err)
			}
		}
	}

	merged, err := g.needed.Union(fresh)
	if err != nil {
		return err
	}
	g.needed = merged

	g.log.Event("refine", "grid_id", g.id, "mode", mode.String(), "tol", tol, "needed", g.needed.Len())
	return nil
}

// addSuccessorsLocked implements spec §4.4's "Adding successors" for a
// single flagged (p, j): parent first if missing, else both children.
func (g *Grid) addSuccessorsLocked(fresh *multiindex.MultiIndexSet, p []int, j int) error {
	pj := p[j]
	if par := g.wavelet.parent(pj); par != -1 {
		parentTuple := append([]int(nil), p...)
		parentTuple[j] = par
		if !g.points.Contains(parentTuple) && !g.needed.Contains(parentTuple) {
			_, err := fresh.Insert(parentTuple)
			return err
		}
	}

	left, right := g.wavelet.children(pj)
	for _, child := range [2]int{left, right} {
		if child == -1 {
			continue
		}
		if g.levelLimits != nil && g.levelLimits[j] >= 0 && g.wavelet.birthLevel(child) > g.levelLimits[j] {
			continue
		}
		childTuple := append([]int(nil), p...)
		childTuple[j] = child
		if g.points.Contains(childTuple) || g.needed.Contains(childTuple) || fresh.Contains(childTuple) {
			continue
		}
		if _, err := fresh.Insert(childTuple); err != nil {
			return err
		}
	}
	return nil
}

// linesAlongLocked groups the grid's points into 1-D lines along
// dimension dim: every point sharing the same coordinates in every
// other dimension belongs to the same line (spec §4.4's fds mode).
func (g *Grid) linesAlongLocked(dim int) map[string][]int {
	lines := make(map[string][]int)
	n := g.points.Len()
	for i := 0; i < n; i++ {
		p := g.points.At(i)
		var b strings.Builder
		for j, v := range p {
			if j == dim {
				continue
			}
			b.WriteString(strconv.Itoa(v))
			b.WriteByte(',')
		}
		key := b.String()
		lines[key] = append(lines[key], i)
	}
	return lines
}

// directionalCoefficientsLocked fits an independent 1-D wavelet
// subgrid, restricted to dimension dim, along every line of points
// sharing the grid's other coordinates, and returns each point's
// resulting 1-D coefficient (spec §4.4's fds mode). Caller holds the
// write lock.
func (g *Grid) directionalCoefficientsLocked(output, dim int) (map[int]float64, error) {
	out := make(map[int]float64, g.points.Len())
	for _, idxs := range g.linesAlongLocked(dim) {
		m, err := linalg.NewSparseMatrix(len(idxs), len(idxs))
		if err != nil {
			return nil, err
		}
		v := make([]float64, len(idxs))
		for row, gi := range idxs {
			x := g.wavelet.node(g.points.At(gi)[dim])
			v[row] = g.values.At(gi, output)
			cols := make([]int, 0, len(idxs))
			vals := make([]float64, 0, len(idxs))
			for col, gj := range idxs {
				b := g.basis1D(g.points.At(gj)[dim], x)
				if b != 0 {
					cols = append(cols, col)
					vals = append(vals, b)
				}
			}
			if err := m.SetRow(row, cols, vals); err != nil {
				return nil, err
			}
		}
		m.Finalize()
		c, err := g.solver.Solve(m, v)
		if err != nil {
			return nil, fmt.Errorf("solving 1-D subgrid for direction %d: %w", dim, err)
		}
		for row, gi := range idxs {
			out[gi] = c[row]
		}
	}
	return out, nil
}
