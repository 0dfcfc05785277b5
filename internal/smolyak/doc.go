// Package smolyak implements the Smolyak-combination arithmetic shared
// by globalgrid and surplus: active-tensor selection via
// inclusion-exclusion, point-set/TensorRefs construction, and
// quadrature/interpolation weight accumulation (spec §4.1).
//
// It exists as its own package specifically to break what would
// otherwise be a cyclic dependency: globalgrid.Grid depends on
// surplus.Estimator, and computing a surplus estimate needs to build an
// auxiliary Smolyak quadrature grid — but that auxiliary grid must not
// require constructing a full globalgrid.Grid. Both packages instead
// depend on this one.
package smolyak
