// Package tensorrefs builds the per-active-tensor index arrays a Smolyak
// combination needs to accumulate quadrature/interpolation weights: for
// active tensor i, refs[i][k] is the position, in the grid's global
// point set, of the k-th point of that tensor's local product grid.
//
// Two policies apply depending on whether the underlying 1-D rule
// nests:
//
//   - Nested: the global point set is the deduplicated union, over
//     every tensor in the (non-active-filtered) lower set, of each
//     tensor's product grid — duplicate points collapse by point-index
//     equality (spec §3, "duplicates collapsed").
//   - Non-nested: the global point set is the plain concatenation of
//     each active tensor's local product grid, in tensor order, with
//     no deduplication — different tensors' node indices at the same
//     position are not comparable across levels for a non-nested rule.
package tensorrefs
