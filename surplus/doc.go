// Package surplus computes hierarchical surpluses for GlobalGrid
// against a Legendre basis, using an auxiliary Gauss-Patterson (falling
// back to Clenshaw-Curtis) quadrature grid, per spec §4.2.
//
// Estimator is deliberately independent of package globalgrid: it only
// depends on the narrow GridView capability interface, so
// globalgrid.Grid can implement GridView and depend on
// surplus.Estimator without a cyclic import (the auxiliary quadrature
// grid this package builds internally uses internal/smolyak directly,
// never a *globalgrid.Grid).
package surplus
