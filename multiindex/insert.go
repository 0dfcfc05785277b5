package multiindex

// Insert adds t if not already present, returning whether it was newly
// added. Returns an error (t is left un-added) if t's dimension doesn't
// match the set or any component is negative.
//
// Complexity: O(d) for validation and key hashing, amortized O(1) for the
// map insert.
func (s *MultiIndexSet) Insert(t []int) (bool, error) {
	if err := s.validate(t); err != nil {
		return false, err
	}
	k := key(t)
	if _, exists := s.index[k]; exists {
		return false, nil
	}
	cp := make([]int, len(t))
	copy(cp, t)
	s.index[k] = len(s.entries)
	s.entries = append(s.entries, cp)
	return true, nil
}

// InsertRaw appends t unconditionally, even if an equal tuple is already
// present, and returns its position. Unlike Insert, it does not update
// the membership index for t if a prior equal tuple already owns that
// key, so Contains/IndexOf continue to resolve to the first occurrence:
// callers that need this are tracking positions externally (e.g. a
// non-nested tensor-product point list, where logically distinct points
// can carry equal index tuples across different tensors and must not be
// collapsed the way Insert's set semantics would collapse them).
func (s *MultiIndexSet) InsertRaw(t []int) (int, error) {
	if err := s.validate(t); err != nil {
		return 0, err
	}
	cp := make([]int, len(t))
	copy(cp, t)
	pos := len(s.entries)
	if _, exists := s.index[key(t)]; !exists {
		s.index[key(t)] = pos
	}
	s.entries = append(s.entries, cp)
	return pos, nil
}

// InsertAll inserts every tuple in ts, stopping at the first invalid one.
// Returns the number of tuples newly added before any error.
func (s *MultiIndexSet) InsertAll(ts [][]int) (int, error) {
	added := 0
	for _, t := range ts {
		ok, err := s.Insert(t)
		if err != nil {
			return added, err
		}
		if ok {
			added++
		}
	}
	return added, nil
}
