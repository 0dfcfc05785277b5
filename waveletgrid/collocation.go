package waveletgrid

import (
	"fmt"

	"github.com/lvlath/tsgrid/internal/linalg"
	"github.com/lvlath/tsgrid/internal/numeric"
)

// collocationBlockSize is the row-block granularity assembly is
// partitioned into for parallelism (spec §4.4).
const collocationBlockSize = 32

// coordsLocked resolves every current point's real coordinates via the
// grid's wavelet node table. Caller holds at least a read lock.
func (g *Grid) coordsLocked() [][]float64 {
	n := g.points.Len()
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		p := g.points.At(i)
		x := make([]float64, g.numDims)
		for j, pj := range p {
			x[j] = g.wavelet.node(pj)
		}
		out[i] = x
	}
	return out
}

// rebuildCollocationLocked assembles the CSR collocation matrix M,
// M[row][col] = psi_{points[col]}(coords[row]), in parallel blocks of
// collocationBlockSize rows (spec §4.4). Caller holds the write lock.
func (g *Grid) rebuildCollocationLocked() error {
	n := g.points.Len()
	if n == 0 {
		g.collocation = nil
		return nil
	}
	m, err := linalg.NewSparseMatrix(n, n)
	if err != nil {
		return err
	}
	coords := g.coordsLocked()
	basisPoints := make([][]int, n)
	for i := 0; i < n; i++ {
		basisPoints[i] = g.points.At(i)
	}

	errs := make([]error, n)
	numeric.Parallel(n, collocationBlockSize, func(lo, hi int) {
		for row := lo; row < hi; row++ {
			x := coords[row]
			cols := make([]int, 0, n)
			vals := make([]float64, 0, n)
			for col := 0; col < n; col++ {
				v := g.evalBasis(basisPoints[col], x)
				if v != 0 {
					cols = append(cols, col)
					vals = append(vals, v)
				}
			}
			if err := m.SetRow(row, cols, vals); err != nil {
				errs[row] = err
			}
		}
	})
	for _, e := range errs {
		if e != nil {
			return fmt.Errorf("waveletgrid: assembling collocation matrix: %w", e)
		}
	}
	m.Finalize()
	g.collocation = m
	return nil
}

// solveCoefficientsLocked solves M*c_{:,k}=v_{:,k} for every output k
// (spec §4.4's "Coefficients"). Caller holds the write lock.
func (g *Grid) solveCoefficientsLocked() error {
	n := g.points.Len()
	coeffs, err := linalg.NewDenseMatrix(n, g.numOutputs)
	if err != nil {
		return err
	}
	for k := 0; k < g.numOutputs; k++ {
		v := make([]float64, n)
		for i := 0; i < n; i++ {
			v[i] = g.values.At(i, k)
		}
		c, err := g.solver.Solve(g.collocation, v)
		if err != nil {
			return fmt.Errorf("waveletgrid: solving coefficients for output %d: %w", k, err)
		}
		for i, ci := range c {
			coeffs.Set(i, k, ci)
		}
	}
	g.coefficients = coeffs
	return nil
}
