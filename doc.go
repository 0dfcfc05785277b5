// Package tsgrid is a sparse tensor-product grid library for
// high-dimensional interpolation and quadrature.
//
// What is tsgrid?
//
//	A thread-safe library that builds Smolyak-combination and wavelet
//	collocation sparse grids over hyperrectangular domains:
//		- GlobalGrid: Smolyak combination over a library of 1-D quadrature
//		  and interpolation rules (Clenshaw-Curtis, Gauss-Legendre,
//		  Gauss-Patterson, Leja/RLeja, and custom-tabulated tables)
//		- WaveletGrid: nested dyadic collocation over compactly supported
//		  wavelet bases, refined directly on point-local coefficients
//
// Both engines share the same tensor-selection and persistence
// machinery and expose the same load/refine/evaluate/integrate shape:
// select an initial tensor or point set, evaluate the target function
// at the points the grid asks for, load the values back in, optionally
// refine toward regions of high variation, and repeat.
//
// Under the hood, everything is organized under focused subpackages:
//
//	multiindex/  — ordered sets of d-tuples, the grid's point/tensor identity
//	contour/     — level selectors (total degree, hyperbolic cross, curved, ...)
//	onedwrapper/ — cached per-level 1-D rule nodes/weights
//	internal/smolyak  — active-tensor inclusion-exclusion and Smolyak combination
//	tensorrefs/  — per-tensor index arrays into the deduplicated global point set
//	globalgrid/  — the Smolyak engine
//	waveletgrid/ — the wavelet collocation engine
//	surplus/     — hierarchical surplus estimation for anisotropic refinement
//	iodata/      — text/binary persistence shared by both engines
//	internal/linalg   — dense/sparse solver interfaces used by both engines
//	internal/obs      — optional structured diagnostic logging
//	internal/numeric  — bounded fork-join helper for parallel assembly
//
// Quick example: build a level-4 Clenshaw-Curtis grid over [-1,1]^2 and
// interpolate a smooth function away from any grid node — see
// globalgrid's ExampleGrid and waveletgrid's ExampleGrid.
package tsgrid
