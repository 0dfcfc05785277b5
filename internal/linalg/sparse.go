package linalg

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// SparseMatrix is a compressed-sparse-row matrix assembled once and then
// solved (never mutated in place afterwards). Rows are built via
// SetRow during assembly and the CSR arrays are frozen by Finalize.
//
// Grounded on the row-triple assembly pattern of RuiCat-circuit's
// mna/mat sparse matrix (rows collected as (col,val) pairs, compacted on
// finalize) and rwcarlsen-fem/sparse's map-of-maps row representation,
// adapted here to a frozen CSR layout since the wavelet collocation
// matrix, once assembled, is only ever solved against, never edited.
type SparseMatrix struct {
	rows, cols int
	// during assembly: one unsorted (col,val) slice per row
	building [][]entry
	// after Finalize: CSR arrays
	rowPtr  []int
	colIdx  []int
	vals    []float64
	finalized bool
}

type entry struct {
	col int
	val float64
}

// NewSparseMatrix allocates an r x c sparse matrix ready for row-wise
// assembly via SetRow.
func NewSparseMatrix(r, c int) (*SparseMatrix, error) {
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("linalg.NewSparseMatrix(%d,%d): %w", r, c, ErrDimensionMismatch)
	}
	return &SparseMatrix{rows: r, cols: c, building: make([][]entry, r)}, nil
}

// Rows returns the row count.
func (m *SparseMatrix) Rows() int { return m.rows }

// Cols returns the column count.
func (m *SparseMatrix) Cols() int { return m.cols }

// SetRow records the non-zero (col, value) pairs for a row during
// assembly. Safe to call from multiple goroutines provided each call
// targets a distinct row (the collocation-matrix builder partitions rows
// into disjoint blocks of 32 per spec, so this holds by construction).
func (m *SparseMatrix) SetRow(row int, cols []int, values []float64) error {
	if m.finalized {
		return fmt.Errorf("linalg.SparseMatrix.SetRow: matrix already finalized")
	}
	if row < 0 || row >= m.rows {
		return fmt.Errorf("linalg.SparseMatrix.SetRow(%d): %w", row, ErrDimensionMismatch)
	}
	if len(cols) != len(values) {
		return fmt.Errorf("linalg.SparseMatrix.SetRow(%d): %w", row, ErrDimensionMismatch)
	}
	es := make([]entry, 0, len(cols))
	for i, c := range cols {
		if values[i] != 0 {
			es = append(es, entry{col: c, val: values[i]})
		}
	}
	m.building[row] = es
	return nil
}

// Finalize compacts the assembled rows into CSR arrays. Idempotent.
func (m *SparseMatrix) Finalize() {
	if m.finalized {
		return
	}
	m.rowPtr = make([]int, m.rows+1)
	nnz := 0
	for _, es := range m.building {
		nnz += len(es)
	}
	m.colIdx = make([]int, 0, nnz)
	m.vals = make([]float64, 0, nnz)
	for i, es := range m.building {
		sort.Slice(es, func(a, b int) bool { return es[a].col < es[b].col })
		m.rowPtr[i] = len(m.colIdx)
		for _, e := range es {
			m.colIdx = append(m.colIdx, e.col)
			m.vals = append(m.vals, e.val)
		}
	}
	m.rowPtr[m.rows] = len(m.colIdx)
	m.building = nil
	m.finalized = true
}

// NNZ returns the number of stored non-zero entries. Finalize must have
// been called.
func (m *SparseMatrix) NNZ() int { return len(m.vals) }

// RowView returns the (columns, values) of row i in ascending column
// order. Finalize must have been called.
func (m *SparseMatrix) RowView(i int) ([]int, []float64) {
	lo, hi := m.rowPtr[i], m.rowPtr[i+1]
	return m.colIdx[lo:hi], m.vals[lo:hi]
}

// MulVec computes m*x. Finalize must have been called.
func (m *SparseMatrix) MulVec(x []float64) ([]float64, error) {
	if len(x) != m.cols {
		return nil, fmt.Errorf("linalg.SparseMatrix.MulVec: %w", ErrDimensionMismatch)
	}
	out := make([]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		cols, vals := m.RowView(i)
		var s float64
		for k, c := range cols {
			s += vals[k] * x[c]
		}
		out[i] = s
	}
	return out, nil
}

// MulVecTranspose computes m^T*x. Finalize must have been called.
func (m *SparseMatrix) MulVecTranspose(x []float64) ([]float64, error) {
	if len(x) != m.rows {
		return nil, fmt.Errorf("linalg.SparseMatrix.MulVecTranspose: %w", ErrDimensionMismatch)
	}
	out := make([]float64, m.cols)
	for i := 0; i < m.rows; i++ {
		cols, vals := m.RowView(i)
		xi := x[i]
		if xi == 0 {
			continue
		}
		for k, c := range cols {
			out[c] += vals[k] * xi
		}
	}
	return out, nil
}

// dense materializes the sparse matrix as a gonum dense matrix for the
// direct-solve fallback used by DefaultSparseSolver. Wavelet collocation
// systems in this port are modest enough (the caller controls grid depth)
// that a dense LU is an acceptable default; a caller needing genuine
// sparse-factorization performance supplies their own SparseSolver.
func (m *SparseMatrix) dense() *mat.Dense {
	d := mat.NewDense(m.rows, m.cols, nil)
	for i := 0; i < m.rows; i++ {
		cols, vals := m.RowView(i)
		for k, c := range cols {
			d.Set(i, c, vals[k])
		}
	}
	return d
}
