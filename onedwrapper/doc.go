// Package onedwrapper caches, per level, the nodes/weights/point-count of
// a chosen one-dimensional quadrature-and-interpolation rule.
//
// A OneDWrapper is deliberately dumb: it knows nothing about tensors or
// multi-indices, only "give me level L's nodes/weights", and it grows its
// cache lazily up to the highest level anyone has asked for (spec
// invariant 6: "wrapper is kept loaded up to the greatest level ever
// referenced"). The actual rule mathematics (nodes, weights, exactness)
// live behind the RuleTable interface; this package ships a handful of
// analytic/tabulated RuleTable implementations sufficient to exercise
// the grid engines end to end, but a caller can supply their own (e.g. a
// vendor's tabulated Gauss-Patterson set beyond the levels built in here).
package onedwrapper
