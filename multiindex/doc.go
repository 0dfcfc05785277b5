// Package multiindex implements MultiIndexSet, an ordered set of
// non-negative integer d-tuples: insertion, lookup, set-difference,
// downward-closure checking/completion, lexicographic sorting, and
// stable iteration.
//
// A MultiIndexSet backs three distinct roles across the sparse-grid
// core: the lower set of tensors (contour/globalgrid), the active-tensor
// subsequence (globalgrid), and the point index set itself (globalgrid,
// waveletgrid) — the same ordered-set behavior serves all three, so it
// lives in its own package rather than being duplicated per role.
package multiindex
