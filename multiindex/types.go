package multiindex

import (
	"fmt"
	"strconv"
	"strings"
)

// MultiIndexSet is an insertion-ordered set of d-tuples of non-negative
// integers, with O(1) membership testing via a string-keyed index.
//
// The zero value is not usable; construct with New.
type MultiIndexSet struct {
	d       int
	entries [][]int
	index   map[string]int // key(t) -> position in entries
}

// New constructs an empty MultiIndexSet of dimension d. d==0 is legal and
// denotes the degenerate zero-dimensional grid (spec: "a grid is created
// empty (d=m=0)"); it can only ever contain the empty tuple.
func New(d int) (*MultiIndexSet, error) {
	if d < 0 {
		return nil, fmt.Errorf("multiindex.New(%d): %w", d, ErrNegativeComponent)
	}
	return &MultiIndexSet{d: d, index: make(map[string]int)}, nil
}

// Dim returns the tuple length this set was constructed with.
func (s *MultiIndexSet) Dim() int { return s.d }

// Len returns the number of tuples currently in the set.
func (s *MultiIndexSet) Len() int { return len(s.entries) }

// At returns a defensive copy of the tuple at position i.
// Panics on out-of-range i: iteration order is an internal invariant,
// not user input, so an out-of-range i is a programmer error.
func (s *MultiIndexSet) At(i int) []int {
	t := make([]int, s.d)
	copy(t, s.entries[i])
	return t
}

// key produces the map key for a tuple; comma-separated decimal is cheap
// to compute and never collides across different-length tuples because
// callers only ever key tuples of the set's fixed dimension d.
func key(t []int) string {
	var b strings.Builder
	for i, v := range t {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

func (s *MultiIndexSet) validate(t []int) error {
	if len(t) != s.d {
		return fmt.Errorf("multiindex: tuple has %d components, set has dimension %d: %w", len(t), s.d, ErrDimensionMismatch)
	}
	for _, v := range t {
		if v < 0 {
			return fmt.Errorf("multiindex: component %d: %w", v, ErrNegativeComponent)
		}
	}
	return nil
}

// Contains reports whether t is present in the set.
func (s *MultiIndexSet) Contains(t []int) bool {
	_, ok := s.index[key(t)]
	return ok
}

// IndexOf returns the position of t in insertion order, if present.
func (s *MultiIndexSet) IndexOf(t []int) (int, bool) {
	i, ok := s.index[key(t)]
	return i, ok
}

// Clone returns a deep, independent copy.
func (s *MultiIndexSet) Clone() *MultiIndexSet {
	out := &MultiIndexSet{d: s.d, entries: make([][]int, len(s.entries)), index: make(map[string]int, len(s.index))}
	for i, t := range s.entries {
		cp := make([]int, len(t))
		copy(cp, t)
		out.entries[i] = cp
	}
	for k, v := range s.index {
		out.index[k] = v
	}
	return out
}

// Equal reports whether two sets contain the same tuples, irrespective
// of insertion order.
func (s *MultiIndexSet) Equal(other *MultiIndexSet) bool {
	if s.d != other.d || s.Len() != other.Len() {
		return false
	}
	for k := range s.index {
		if _, ok := other.index[k]; !ok {
			return false
		}
	}
	return true
}

// String renders the set for debugging/logging.
func (s *MultiIndexSet) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, t := range s.entries {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", t)
	}
	b.WriteString("}")
	return b.String()
}
