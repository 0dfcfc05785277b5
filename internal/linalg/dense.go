package linalg

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// DenseMatrix is a row-major dense matrix of float64, backed by
// gonum.org/v1/gonum/mat.Dense so the direct/least-squares solvers below
// can operate on it without a copy.
type DenseMatrix struct {
	raw *mat.Dense
	r, c int
}

// NewDenseMatrix allocates a zero r x c matrix. Returns ErrDimensionMismatch
// if either dimension is non-positive.
func NewDenseMatrix(r, c int) (*DenseMatrix, error) {
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("linalg.NewDenseMatrix(%d,%d): %w", r, c, ErrDimensionMismatch)
	}
	return &DenseMatrix{raw: mat.NewDense(r, c, nil), r: r, c: c}, nil
}

// NewDenseMatrixFromRows builds a DenseMatrix by copying rows (all rows
// must share the same length).
func NewDenseMatrixFromRows(rows [][]float64) (*DenseMatrix, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("linalg.NewDenseMatrixFromRows: %w", ErrDimensionMismatch)
	}
	c := len(rows[0])
	m, err := NewDenseMatrix(len(rows), c)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("linalg.NewDenseMatrixFromRows: row %d: %w", i, ErrDimensionMismatch)
		}
		for j, v := range row {
			m.raw.Set(i, j, v)
		}
	}
	return m, nil
}

// Rows returns the row count.
func (m *DenseMatrix) Rows() int { return m.r }

// Cols returns the column count.
func (m *DenseMatrix) Cols() int { return m.c }

// At returns the element at (row, col). Panics on out-of-range indices,
// matching gonum's own convention for hot accessors.
func (m *DenseMatrix) At(row, col int) float64 { return m.raw.At(row, col) }

// Set assigns the element at (row, col).
func (m *DenseMatrix) Set(row, col int, v float64) { m.raw.Set(row, col, v) }

// AddRow appends a new zero row and returns its index.
func (m *DenseMatrix) AddRow() int {
	grown := mat.NewDense(m.r+1, m.c, nil)
	grown.Copy(m.raw)
	m.raw = grown
	m.r++
	return m.r - 1
}

// Row returns a copy of row i.
func (m *DenseMatrix) Row(i int) []float64 {
	out := make([]float64, m.c)
	mat.Row(out, i, m.raw)
	return out
}

// SetRow overwrites row i.
func (m *DenseMatrix) SetRow(i int, vals []float64) error {
	if len(vals) != m.c {
		return fmt.Errorf("linalg.DenseMatrix.SetRow(%d): %w", i, ErrDimensionMismatch)
	}
	m.raw.SetRow(i, vals)
	return nil
}

// Raw exposes the underlying gonum matrix for callers that need to hand
// it directly to a gonum routine.
func (m *DenseMatrix) Raw() *mat.Dense { return m.raw }

// MulVec computes m*x, returning ErrDimensionMismatch if len(x) != m.Cols().
func (m *DenseMatrix) MulVec(x []float64) ([]float64, error) {
	if len(x) != m.c {
		return nil, fmt.Errorf("linalg.DenseMatrix.MulVec: %w", ErrDimensionMismatch)
	}
	xv := mat.NewVecDense(m.c, x)
	var yv mat.VecDense
	yv.MulVec(m.raw, xv)
	out := make([]float64, m.r)
	for i := range out {
		out[i] = yv.AtVec(i)
	}
	return out, nil
}

// MulMat computes m * other via a single dense GEMM, used by GlobalGrid's
// batch evaluation path when interpolation weights for many query points
// have been assembled into a dense matrix.
func (m *DenseMatrix) MulMat(other *DenseMatrix) (*DenseMatrix, error) {
	if m.c != other.r {
		return nil, fmt.Errorf("linalg.DenseMatrix.MulMat: %w", ErrDimensionMismatch)
	}
	out := mat.NewDense(m.r, other.c, nil)
	out.Mul(m.raw, other.raw)
	return &DenseMatrix{raw: out, r: m.r, c: other.c}, nil
}
