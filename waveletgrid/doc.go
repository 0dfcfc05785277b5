// Package waveletgrid implements WaveletGrid: a nested dyadic sparse
// grid whose basis functions are compactly supported wavelets rather
// than global polynomials. Unlike GlobalGrid's Smolyak combination
// formula, WaveletGrid interpolates by directly solving a sparse
// collocation system.
//
// Implementation
//
//	Stage 1 — Make: total-degree-level tensor selection produces the
//	  downward-closed tensor set; tensorrefs.BuildNested unions each
//	  tensor's local dyadic grid into the deduplicated point set.
//	Stage 2 — Load: values are attached to points, the CSR collocation
//	  matrix M is (re)assembled in parallel row blocks, and per-output
//	  hierarchical coefficients are solved from M*c=v.
//	Stage 3 — Refine: SetRefinement flags (point, direction) pairs and
//	  stages new points into needed, following the parent-first
//	  successor rule; the next LoadNeededPoints rebuilds M from scratch.
//
// A Grid is not safe for concurrent mutation; Evaluate*/GetPoints/
// GetQuadratureWeights are safe for concurrent reads provided no
// mutation is in flight (spec §5).
package waveletgrid
