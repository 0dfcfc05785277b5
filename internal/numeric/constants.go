package numeric

// NumTol is the point-identification tolerance (TSG_NUM_TOL in the
// original design): two node coordinates within this distance are the
// same node. Also used as the base unit for the surplus-significance
// threshold below.
const NumTol = 1e-12

// LeastSquaresTol is the regularization tolerance for the anisotropic
// coefficient estimator's least-squares solve.
const LeastSquaresTol = 1e-5

// SurplusSignificance is the minimum |surplus| considered non-negligible
// by the anisotropic coefficient estimator (1000 * NumTol).
const SurplusSignificance = 1000 * NumTol
