package onedwrapper

import "github.com/lvlath/tsgrid/internal/numeric"

// metaOrder builds the index-nested node ordering a truly nested rule
// needs: rawNodesAtLevel(l) returns that level's nodes in whatever
// natural order the closed-form formula produces (e.g. increasing
// angle), which is usually NOT index-consistent across levels — the
// node at position i of level l and position i of level l+1 need not be
// the same physical point. TensorRefs and GlobalGrid's nested
// point-set dedup rely on index equality, not node-value search, so
// OneDWrapper needs an ordering where level l's node array is a literal
// prefix of level l+1's.
//
// metaOrder recovers that prefix ordering: it walks levels 0..level in
// order, appending each level's genuinely new node values (by value, not
// position) to a running meta array. Because a nested rule's level-l+1
// node set is a value superset of level l's, this always terminates with
// exactly numPoints(level) entries.
//
// It returns the meta-ordered node array for `level` and the permutation
// mapping the raw (level-local) node order to meta-index positions, so
// callers can reorder a level's weights to match.
func metaOrder(rawNodesAtLevel func(l int) []float64, level int) (meta []float64, rawToMeta []int) {
	meta = append(meta, rawNodesAtLevel(0)...)
	for l := 1; l <= level; l++ {
		for _, v := range rawNodesAtLevel(l) {
			if indexOfNode(meta, v) < 0 {
				meta = append(meta, v)
			}
		}
	}
	raw := rawNodesAtLevel(level)
	rawToMeta = make([]int, len(raw))
	for i, v := range raw {
		rawToMeta[i] = indexOfNode(meta, v)
	}
	return meta, rawToMeta
}

func indexOfNode(nodes []float64, v float64) int {
	for i, n := range nodes {
		if numeric.SameNode(n, v) {
			return i
		}
	}
	return -1
}

// permuteByRawIndex reorders values (given in raw/level-local order) into
// meta-index order using the mapping metaOrder returned.
func permuteByRawIndex(values []float64, rawToMeta []int) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[rawToMeta[i]] = v
	}
	return out
}
