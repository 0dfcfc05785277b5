package waveletgrid

import "fmt"

// dyadicTable is the shared one-dimensional node/tree structure behind
// both wavelet orders (spec §4.4's rule1D). Level 0 holds the two
// domain endpoints and the midpoint; every later level bisects every
// existing adjacent gap, appending the new midpoints (in left-to-right
// order) after whatever the table already holds — a level's node array
// is therefore always a literal prefix of the next level's, exactly the
// "meta-order" nesting onedwrapper's Clenshaw-Curtis table relies on,
// so a node's global index is invariant across every level containing
// it.
//
// Because every adjacent gap at level L-1 is always between one "old"
// point (born before L-1) and the point born at L-1 itself, a node
// born at level L has exactly two neighbors at the moment of its
// birth, of which exactly one was born at L-1 and the other earlier;
// its parent is the later-born (finer) of the two. The two level-0
// endpoints tie (both born at level 0) against the level-0 midpoint,
// broken in the midpoint's favor, giving the classical structure where
// the midpoint is the root of the entire tree and the endpoints are
// permanent leaves.
type dyadicTable struct {
	values      []float64
	birth       []int
	parent      []int
	left, right []int // child global index, -1 until generated
	succ, pred  []int // sorted-by-value doubly linked list over all existing points
	levelStart  []int // levelStart[l] = number of points that exist through level l
}

func newDyadicTable() *dyadicTable {
	return &dyadicTable{
		values:     []float64{-1, 0, 1},
		birth:      []int{0, 0, 0},
		parent:     []int{-1, -1, -1},
		left:       []int{-1, -1, -1},
		right:      []int{-1, -1, -1},
		succ:       []int{1, 2, -1},
		pred:       []int{-1, 0, 1},
		levelStart: []int{3},
	}
}

// ensureLevel grows the table, if necessary, so levelStart has an entry
// for every level through level.
func (t *dyadicTable) ensureLevel(level int) {
	for len(t.levelStart)-1 < level {
		nextLevel := len(t.levelStart)
		cur := 0 // global index 0 (value -1) is always the sorted-order head
		for t.succ[cur] != -1 {
			a, b := cur, t.succ[cur]
			mid := (t.values[a] + t.values[b]) / 2

			var par int
			switch {
			case t.birth[a] > t.birth[b]:
				par = a
			case t.birth[b] > t.birth[a]:
				par = b
			case t.values[a] == 0:
				par = a
			default:
				par = b
			}

			newIdx := len(t.values)
			t.values = append(t.values, mid)
			t.birth = append(t.birth, nextLevel)
			t.parent = append(t.parent, par)
			t.left = append(t.left, -1)
			t.right = append(t.right, -1)
			t.succ = append(t.succ, b)
			t.pred = append(t.pred, a)

			t.succ[a] = newIdx
			t.pred[b] = newIdx
			if par == a {
				t.right[par] = newIdx
			} else {
				t.left[par] = newIdx
			}

			cur = b
		}
		t.levelStart = append(t.levelStart, len(t.values))
	}
}

func (t *dyadicTable) numPoints(level int) int {
	t.ensureLevel(level)
	return t.levelStart[level]
}

func (t *dyadicTable) ensureIndex(p int) {
	for len(t.values) <= p {
		t.ensureLevel(len(t.levelStart))
	}
}

func (t *dyadicTable) node(p int) float64 {
	t.ensureIndex(p)
	return t.values[p]
}

func (t *dyadicTable) birthLevel(p int) int {
	t.ensureIndex(p)
	return t.birth[p]
}

func (t *dyadicTable) parentOf(p int) int {
	t.ensureIndex(p)
	return t.parent[p]
}

// children returns p's left and right child global indices, generating
// one more level of the table if p's children have not been born yet.
// A child is always born at birth[p]+1 once p has any successors at
// all; the two domain endpoints (p==0, p==2) never gain children.
func (t *dyadicTable) children(p int) (left, right int) {
	t.ensureIndex(p)
	t.ensureLevel(t.birth[p] + 1)
	return t.left[p], t.right[p]
}

// isBoundary reports whether p is one of the two permanent domain
// endpoints (value -1 or +1), whose support is clipped in half by the
// domain edge.
func (t *dyadicTable) isBoundary(p int) bool {
	t.ensureIndex(p)
	return p == 0 || p == 2
}

// wavelet1D is the order-aware 1-D rule (spec's rule1D): order 3 reads
// the shared dyadic table one level finer than order 1, which is
// exactly what makes numPoints(order3, l) == 2^{l+2}+1 fall out of
// numPoints(order1, l+1) == 2^{(l+1)+1}+1 for free, while both orders
// address the very same global node identities.
type wavelet1D struct {
	order int
	table *dyadicTable
}

func newWavelet1D(order int) (*wavelet1D, error) {
	if order != 1 && order != 3 {
		return nil, ErrInvalidOrder
	}
	return &wavelet1D{order: order, table: newDyadicTable()}, nil
}

func (w *wavelet1D) tableLevel(level int) int {
	if w.order == 3 {
		return level + 1
	}
	return level
}

// NumPoints satisfies tensorrefs.LevelSizer.
func (w *wavelet1D) NumPoints(level int) (int, error) {
	if level < 0 {
		return 0, fmt.Errorf("waveletgrid: negative level %d", level)
	}
	return w.table.numPoints(w.tableLevel(level)), nil
}

func (w *wavelet1D) node(p int) float64        { return w.table.node(p) }
func (w *wavelet1D) birthLevel(p int) int      { return w.table.birthLevel(p) }
func (w *wavelet1D) parent(p int) int          { return w.table.parentOf(p) }
func (w *wavelet1D) children(p int) (int, int) { return w.table.children(p) }
func (w *wavelet1D) isBoundary(p int) bool     { return w.table.isBoundary(p) }

// supportRadius is the half-width of node p's basis support: 2^-birth,
// which is exactly the spacing between p and each of its two immediate
// dyadic neighbors at the moment of its birth.
func (w *wavelet1D) supportRadius(p int) float64 {
	l := w.birthLevel(p)
	r := 1.0
	for i := 0; i < l; i++ {
		r /= 2
	}
	return r
}
