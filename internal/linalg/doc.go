// Package linalg defines the linear-algebra seams the sparse-grid core
// depends on without owning: dense storage, a dense direct solver, a
// sparse solver for the wavelet collocation system, and a regularized
// least-squares solver for the anisotropic coefficient estimator.
//
// The core (globalgrid, waveletgrid, surplus) is written against the
// interfaces in this file only. DefaultDenseSolver/DefaultSparseSolver/
// DefaultLeastSquares return gonum.org/v1/gonum/mat-backed implementations
// so the module is runnable end to end without a caller having to supply
// their own numerical backend, but any conforming implementation
// (BLAS-accelerated, GPU-backed, ...) can be substituted: the sparse
// solver via waveletgrid's WithSparseSolver option or SetSparseSolver
// method, the least-squares solver via globalgrid's SetLeastSquares.
package linalg
