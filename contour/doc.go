// Package contour implements TensorSelector: it enumerates the initial
// lower multi-index set from (depth, contour type, anisotropic weights,
// rule exactness), per spec §4.1's contour table.
//
// A Type names one of the twelve contour families (level, tensor,
// hyperbolic, curved, and their ip*/qp* interpolation/quadrature-
// exactness variants). Selection always produces a downward-closed set
// because every contour function here is non-decreasing in each
// component: increasing any t[j] (holding the rest fixed) never
// decreases f(t), so { t : f(t) <= depth } is automatically lower.
package contour
