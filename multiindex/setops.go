package multiindex

import "fmt"

// Difference returns a new set containing every tuple of s not present in
// other, preserving s's insertion order.
func (s *MultiIndexSet) Difference(other *MultiIndexSet) (*MultiIndexSet, error) {
	if s.d != other.d {
		return nil, fmt.Errorf("multiindex.Difference: %w", ErrDimensionMismatch)
	}
	out, _ := New(s.d)
	for _, t := range s.entries {
		if !other.Contains(t) {
			_, _ = out.Insert(t)
		}
	}
	return out, nil
}

// Union returns a new set containing every tuple present in s or other,
// with s's entries first (in s's order) followed by other's new entries
// (in other's order).
func (s *MultiIndexSet) Union(other *MultiIndexSet) (*MultiIndexSet, error) {
	if s.d != other.d {
		return nil, fmt.Errorf("multiindex.Union: %w", ErrDimensionMismatch)
	}
	out := s.Clone()
	for _, t := range other.entries {
		_, _ = out.Insert(t)
	}
	return out, nil
}

// Concat appends other's entries to s positionally, via InsertRaw:
// unlike Union, equal tuples from s and other are kept as distinct
// entries rather than collapsed. Use this to merge sets whose entries
// are already known to be free of unwanted duplication (e.g. s and
// other are disjoint by construction, as with a points set and its
// freshly computed needed set) and where position identity matters, as
// it does for a non-nested rule's tensor-concatenated point list.
func (s *MultiIndexSet) Concat(other *MultiIndexSet) (*MultiIndexSet, error) {
	if s.d != other.d {
		return nil, fmt.Errorf("multiindex.Concat: %w", ErrDimensionMismatch)
	}
	out, _ := New(s.d)
	for _, t := range s.entries {
		if _, err := out.InsertRaw(t); err != nil {
			return nil, err
		}
	}
	for _, t := range other.entries {
		if _, err := out.InsertRaw(t); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Filter returns a new set containing only the tuples for which keep
// returns true, preserving s's insertion order.
func (s *MultiIndexSet) Filter(keep func(t []int) bool) *MultiIndexSet {
	out, _ := New(s.d)
	for _, t := range s.entries {
		if keep(t) {
			_, _ = out.Insert(t)
		}
	}
	return out
}

// MaxPerDim returns, for each dimension j, the maximum t[j] over every
// tuple in the set (spec invariant 5: max_levels[j] = max_{t in tensors} t[j]).
// Returns all-zero for an empty set.
func (s *MultiIndexSet) MaxPerDim() []int {
	out := make([]int, s.d)
	for _, t := range s.entries {
		for j, v := range t {
			if v > out[j] {
				out[j] = v
			}
		}
	}
	return out
}
