package linalg

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// DenseSolver solves A*x = b for a square dense A. DefaultSparseSolver
// delegates to it after densifying the collocation matrix.
type DenseSolver interface {
	Solve(a *DenseMatrix, b []float64) ([]float64, error)
}

// SparseSolver solves M*x = b and M^T*x = b for the wavelet collocation
// matrix. WaveletGrid depends only on this interface; DefaultSparseSolver
// is the gonum-backed implementation wired in by NewWavelet unless a
// caller supplies their own via WithSparseSolver.
type SparseSolver interface {
	Solve(m *SparseMatrix, b []float64) ([]float64, error)
	SolveTranspose(m *SparseMatrix, b []float64) ([]float64, error)
}

// LeastSquares solves the regularized least-squares problem A*x ~= b used
// by the anisotropic coefficient estimator (globalgrid's aniso.go).
type LeastSquares interface {
	Solve(a *DenseMatrix, b []float64, tol float64) ([]float64, error)
}

// gonumDenseSolver implements DenseSolver via gonum's LU decomposition.
type gonumDenseSolver struct{}

// DefaultDenseSolver returns the gonum-LU-backed DenseSolver.
func DefaultDenseSolver() DenseSolver { return gonumDenseSolver{} }

func (gonumDenseSolver) Solve(a *DenseMatrix, b []float64) ([]float64, error) {
	if a.Rows() != a.Cols() {
		return nil, fmt.Errorf("linalg.DenseSolver.Solve: %w", ErrNonSquare)
	}
	if a.Rows() != len(b) {
		return nil, fmt.Errorf("linalg.DenseSolver.Solve: %w", ErrDimensionMismatch)
	}
	var lu mat.LU
	lu.Factorize(a.raw)
	if lu.Cond() > 1e15 {
		return nil, fmt.Errorf("linalg.DenseSolver.Solve: %w", ErrSingular)
	}
	bv := mat.NewVecDense(len(b), b)
	var xv mat.VecDense
	if err := lu.SolveVecTo(&xv, false, bv); err != nil {
		return nil, fmt.Errorf("linalg.DenseSolver.Solve: %w: %v", ErrSingular, err)
	}
	x := make([]float64, xv.Len())
	for i := range x {
		x[i] = xv.AtVec(i)
	}
	return x, nil
}

// gonumSparseSolver implements SparseSolver by densifying and running an
// LU solve; see SparseMatrix.dense for the rationale.
type gonumSparseSolver struct{ dense DenseSolver }

// DefaultSparseSolver returns the gonum-LU-backed SparseSolver.
func DefaultSparseSolver() SparseSolver { return gonumSparseSolver{dense: DefaultDenseSolver()} }

func (s gonumSparseSolver) Solve(m *SparseMatrix, b []float64) ([]float64, error) {
	d := &DenseMatrix{raw: m.dense(), r: m.rows, c: m.cols}
	return s.dense.Solve(d, b)
}

func (s gonumSparseSolver) SolveTranspose(m *SparseMatrix, b []float64) ([]float64, error) {
	var t mat.Dense
	t.CloneFrom(m.dense().T())
	d := &DenseMatrix{raw: &t, r: m.cols, c: m.rows}
	return s.dense.Solve(d, b)
}

// gonumLeastSquares implements LeastSquares by solving the regularized
// normal equations (A^T*A + tol*I)*x = A^T*b, so a rank-deficient A (for
// example an all-zero column) still yields a solution. It fails only when
// that system cannot be solved or the result is not finite.
type gonumLeastSquares struct{}

// DefaultLeastSquares returns the gonum-backed regularized LeastSquares solver.
func DefaultLeastSquares() LeastSquares { return gonumLeastSquares{} }

func (gonumLeastSquares) Solve(a *DenseMatrix, b []float64, tol float64) ([]float64, error) {
	if a.Rows() != len(b) {
		return nil, fmt.Errorf("linalg.LeastSquares.Solve: %w", ErrDimensionMismatch)
	}
	var ata mat.Dense
	ata.Mul(a.raw.T(), a.raw)
	for i := 0; i < a.Cols(); i++ {
		ata.Set(i, i, ata.At(i, i)+tol)
	}
	var atb mat.VecDense
	atb.MulVec(a.raw.T(), mat.NewVecDense(len(b), append([]float64(nil), b...)))
	var xv mat.VecDense
	if err := xv.SolveVec(&ata, &atb); err != nil {
		return nil, fmt.Errorf("linalg.LeastSquares.Solve: %w: %v", ErrLeastSquaresFailed, err)
	}

	out := make([]float64, a.Cols())
	for i := range out {
		v := xv.AtVec(i)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("linalg.LeastSquares.Solve: %w", ErrLeastSquaresFailed)
		}
		out[i] = v
	}
	return out, nil
}
