package onedwrapper

import (
	"fmt"
	"sync"
)

// OneDWrapper caches nodes, quadrature weights, and per-level point
// counts for a chosen RuleTable, growing the cache lazily up to the
// highest level any caller has referenced (spec invariant 6). It never
// shrinks: once level L is cached it stays cached for the wrapper's
// lifetime.
//
// Safe for concurrent use: EnsureLevel takes a write lock only when it
// actually needs to extend the cache: repeated Ensure/lookup calls at an
// already-cached level only ever take the read lock.
type OneDWrapper struct {
	table RuleTable

	mu      sync.RWMutex
	nodes   [][]float64
	weights [][]float64
	iExact  []int
	qExact  []int
}

// New wraps table. The cache starts empty; call EnsureLevel (or any
// accessor, which calls it implicitly) to populate it.
func New(table RuleTable) *OneDWrapper {
	return &OneDWrapper{table: table}
}

// Nested reports whether the underlying rule nests.
func (w *OneDWrapper) Nested() bool { return w.table.Nested() }

// NumLevels returns 1 + the highest level currently cached (0 if
// nothing has been referenced yet).
func (w *OneDWrapper) NumLevels() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.nodes)
}

// EnsureLevel grows the cache, if needed, so that every level in
// [0, level] is populated.
func (w *OneDWrapper) EnsureLevel(level int) error {
	if level < 0 {
		return fmt.Errorf("onedwrapper.EnsureLevel(%d): %w", level, ErrLevelUnavailable)
	}

	w.mu.RLock()
	have := len(w.nodes) > level
	w.mu.RUnlock()
	if have {
		return nil
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	for l := len(w.nodes); l <= level; l++ {
		nodes, err := w.table.Nodes(l)
		if err != nil {
			return fmt.Errorf("onedwrapper.EnsureLevel(%d): %w", level, err)
		}
		weights, err := w.table.Weights(l)
		if err != nil {
			return fmt.Errorf("onedwrapper.EnsureLevel(%d): %w", level, err)
		}
		iE, errI := w.table.IExact(l)
		qE, err := w.table.QExact(l)
		if err != nil {
			return fmt.Errorf("onedwrapper.EnsureLevel(%d): %w", level, err)
		}
		if errI != nil {
			iE = -1 // sentinel: no interpolation exactness defined at this level
		}
		w.nodes = append(w.nodes, nodes)
		w.weights = append(w.weights, weights)
		w.iExact = append(w.iExact, iE)
		w.qExact = append(w.qExact, qE)
	}
	return nil
}

// NumPoints returns the number of points at level, extending the cache
// if needed.
func (w *OneDWrapper) NumPoints(level int) (int, error) {
	if err := w.EnsureLevel(level); err != nil {
		return 0, err
	}
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.nodes[level]), nil
}

// Nodes returns a defensive copy of level's nodes.
func (w *OneDWrapper) Nodes(level int) ([]float64, error) {
	if err := w.EnsureLevel(level); err != nil {
		return nil, err
	}
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]float64, len(w.nodes[level]))
	copy(out, w.nodes[level])
	return out, nil
}

// Node returns node idx at level.
func (w *OneDWrapper) Node(level, idx int) (float64, error) {
	if err := w.EnsureLevel(level); err != nil {
		return 0, err
	}
	w.mu.RLock()
	defer w.mu.RUnlock()
	if idx < 0 || idx >= len(w.nodes[level]) {
		return 0, fmt.Errorf("onedwrapper.Node(%d,%d): %w", level, idx, ErrLevelUnavailable)
	}
	return w.nodes[level][idx], nil
}

// Weights returns a defensive copy of level's quadrature weights.
func (w *OneDWrapper) Weights(level int) ([]float64, error) {
	if err := w.EnsureLevel(level); err != nil {
		return nil, err
	}
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]float64, len(w.weights[level]))
	copy(out, w.weights[level])
	return out, nil
}

// Weight returns the quadrature weight of node idx at level.
func (w *OneDWrapper) Weight(level, idx int) (float64, error) {
	if err := w.EnsureLevel(level); err != nil {
		return 0, err
	}
	w.mu.RLock()
	defer w.mu.RUnlock()
	if idx < 0 || idx >= len(w.weights[level]) {
		return 0, fmt.Errorf("onedwrapper.Weight(%d,%d): %w", level, idx, ErrLevelUnavailable)
	}
	return w.weights[level][idx], nil
}

// IExact returns level's interpolation exactness, or
// ErrNoInterpolationExactness if the underlying table has none defined
// there.
func (w *OneDWrapper) IExact(level int) (int, error) {
	if err := w.EnsureLevel(level); err != nil {
		return 0, err
	}
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.iExact[level] < 0 {
		return 0, fmt.Errorf("onedwrapper.IExact(%d): %w", level, ErrNoInterpolationExactness)
	}
	return w.iExact[level], nil
}

// QExact returns level's quadrature exactness.
func (w *OneDWrapper) QExact(level int) (int, error) {
	if err := w.EnsureLevel(level); err != nil {
		return 0, err
	}
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.qExact[level], nil
}
