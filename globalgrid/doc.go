// Package globalgrid implements GlobalGrid: the Smolyak combination
// engine over a downward-closed multi-index set of tensor-product
// rules. It assembles quadrature and interpolation weights, evaluates
// and integrates loaded function values, and supports both anisotropic
// (a-priori) and surplus (a-posteriori) adaptive refinement, plus a
// dynamic out-of-order construction mode for asynchronous evaluation.
//
// Implementation
//
//	Stage 1 — Make: tensor selection (contour.Selector) produces the
//	  lower set; internal/smolyak computes active tensors, the point
//	  set, and TensorRefs.
//	Stage 2 — Load: values are attached to points; quadrature/
//	  interpolation weights and surplus-based refinement become
//	  available once the grid has values.
//	Stage 3 — Refine: SetAnisotropicRefinement/SetSurplusRefinement stage
//	  updated_* fields; the next LoadNeededPoints call accepts them.
//
// A Grid is not safe for concurrent mutation; Evaluate*/GetPoints/
// GetQuadratureWeights are safe for concurrent reads provided no
// mutation is in flight (spec §5).
package globalgrid
