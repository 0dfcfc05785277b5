package globalgrid

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/lvlath/tsgrid/contour"
	"github.com/lvlath/tsgrid/internal/numeric"
	"github.com/lvlath/tsgrid/multiindex"
	"github.com/lvlath/tsgrid/tensorrefs"
)

// journalEntry tracks one candidate tensor's construction progress: its
// local product-grid coordinates, the priority it was scored with (lower
// is more urgent), and which of its local points have been filled. id
// tags every log line touching this entry so a caller correlating a
// dynamic-construction session's output doesn't have to re-derive it
// from the tensor tuple.
type journalEntry struct {
	id        uuid.UUID
	tensor    []int
	priority  float64
	coords    [][]float64 // one row per local point, in tensor-local product order
	tuples    [][]int     // matching dimension-index tuples, same order as coords
	values    [][]float64 // nil until filled
	remaining int
}

// dynamicData is the out-of-order construction journal
// (DynamicConstructorDataGlobal in spec §4.1).
type dynamicData struct {
	entries []*journalEntry
}

func keyOf(t []int) string {
	var b strings.Builder
	for i, v := range t {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

// BeginConstruction opens a dynamic-construction journal. The grid must
// already have been Make'd (even to an empty tensor set).
func (g *Grid) BeginConstruction() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.made {
		return fmt.Errorf("globalgrid.BeginConstruction: %w", ErrNotMade)
	}
	g.dynamic = &dynamicData{}
	return nil
}

// exclusiveChildren returns every t+e_j, for t in tensors and every
// dimension j, that is not already in tensors and respects levelLimits.
func exclusiveChildren(tensors *multiindex.MultiIndexSet, levelLimits []int) [][]int {
	seen := make(map[string]bool)
	var out [][]int
	for i := 0; i < tensors.Len(); i++ {
		t := tensors.At(i)
		for j := range t {
			child := append([]int(nil), t...)
			child[j]++
			if levelLimits != nil && levelLimits[j] >= 0 && child[j] > levelLimits[j] {
				continue
			}
			if tensors.Contains(child) {
				continue
			}
			k := keyOf(child)
			if seen[k] {
				continue
			}
			seen[k] = true
			out = append(out, child)
		}
	}
	return out
}

// GetCandidateConstructionPoints scores every exclusive child of the
// grid's current tensors under typ/weights, submits them to the
// construction journal ordered by ascending score (lower score is more
// urgent), and returns the flattened list of node coordinates the host
// should evaluate.
func (g *Grid) GetCandidateConstructionPoints(typ contour.Type, weights []float64) ([][]float64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.dynamic == nil {
		return nil, fmt.Errorf("globalgrid.GetCandidateConstructionPoints: %w", ErrNoConstructionInProgress)
	}

	var exactness contour.ExactnessFunc
	switch typ.Exactness {
	case contour.ExactInterpolation:
		exactness = g.wrapper.IExact
	case contour.ExactQuadrature:
		exactness = g.wrapper.QExact
	}
	sel, err := contour.NewSelector(g.numDims, typ, weights, exactness)
	if err != nil {
		return nil, fmt.Errorf("globalgrid.GetCandidateConstructionPoints: %w", err)
	}

	children := exclusiveChildren(g.tensors, g.levelLimits)
	type scored struct {
		t     []int
		score float64
	}
	var cands []scored
	for _, t := range children {
		v, err := sel.Value(t)
		if err != nil {
			return nil, fmt.Errorf("globalgrid.GetCandidateConstructionPoints: %w", err)
		}
		cands = append(cands, scored{t, v})
	}
	sort.SliceStable(cands, func(a, b int) bool { return cands[a].score < cands[b].score })

	var flat [][]float64
	for _, c := range cands {
		sizes := make([]int, g.numDims)
		n := 1
		for j, lvl := range c.t {
			np, err := g.wrapper.NumPoints(lvl)
			if err != nil {
				return nil, fmt.Errorf("globalgrid.GetCandidateConstructionPoints: %w", err)
			}
			sizes[j] = np
			n *= np
		}
		entry := &journalEntry{id: uuid.New(), tensor: c.t, priority: c.score, remaining: n}
		for k := 0; k < n; k++ {
			idx := tensorrefs.Unravel(k, sizes)
			x := make([]float64, g.numDims)
			for j, kj := range idx {
				v, err := g.wrapper.Node(c.t[j], kj)
				if err != nil {
					return nil, fmt.Errorf("globalgrid.GetCandidateConstructionPoints: %w", err)
				}
				x[j] = v
			}
			entry.coords = append(entry.coords, x)
			entry.tuples = append(entry.tuples, idx)
			flat = append(flat, x)
		}
		entry.values = make([][]float64, n)
		g.dynamic.entries = append(g.dynamic.entries, entry)
	}

	return flat, nil
}

// LoadConstructedPoint records y for the journal point nearest x within
// numeric.NumTol (spec §4.1's x -> index translation).
func (g *Grid) LoadConstructedPoint(x, y []float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.dynamic == nil {
		return fmt.Errorf("globalgrid.LoadConstructedPoint: %w", ErrNoConstructionInProgress)
	}
	if len(y) != g.numOutputs {
		return fmt.Errorf("globalgrid.LoadConstructedPoint: %w", ErrDimensionMismatch)
	}

	for _, entry := range g.dynamic.entries {
		for i, c := range entry.coords {
			if entry.values[i] != nil {
				continue
			}
			if numeric.SamePoint(c, x) {
				entry.values[i] = append([]float64(nil), y...)
				entry.remaining--
				return nil
			}
		}
	}
	return fmt.Errorf("globalgrid.LoadConstructedPoint: %w", ErrPointNotPending)
}

// EjectCompleteTensor returns the highest-priority (lowest score)
// journal tensor whose every local point has been filled, folds it into
// the grid's tensors/points/values, and removes it from the journal.
// ok is false if no tensor is currently complete.
func (g *Grid) EjectCompleteTensor() (tensor []int, ok bool, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.dynamic == nil {
		return nil, false, fmt.Errorf("globalgrid.EjectCompleteTensor: %w", ErrNoConstructionInProgress)
	}

	best := -1
	for i, e := range g.dynamic.entries {
		if e.remaining == 0 && (best == -1 || e.priority < g.dynamic.entries[best].priority) {
			best = i
		}
	}
	if best == -1 {
		return nil, false, nil
	}
	entry := g.dynamic.entries[best]
	g.dynamic.entries = append(g.dynamic.entries[:best], g.dynamic.entries[best+1:]...)

	single, _ := multiindex.New(g.numDims)
	_, _ = single.Insert(entry.tensor)
	newTensors, err := g.tensors.Union(single)
	if err != nil {
		return nil, false, err
	}
	newActive, newW, newPoints, _, err := g.buildFromTensors(newTensors)
	if err != nil {
		return nil, false, err
	}
	needed, err := newPoints.Difference(g.points)
	if err != nil {
		return nil, false, err
	}

	byTuple := make(map[string][]float64, len(entry.tuples))
	for i, tup := range entry.tuples {
		byTuple[keyOf(tup)] = entry.values[i]
	}
	orderedValues := make([][]float64, needed.Len())
	for i := 0; i < needed.Len(); i++ {
		v, ok := byTuple[keyOf(needed.At(i))]
		if !ok {
			return nil, false, fmt.Errorf("globalgrid.EjectCompleteTensor: %w", ErrPointNotPending)
		}
		orderedValues[i] = v
	}

	g.updatedTensors = newTensors
	g.updatedActiveTensors = newActive
	g.updatedActiveW = newW
	g.needed = needed

	if err := g.loadNeededPointsLocked(orderedValues); err != nil {
		return nil, false, err
	}

	g.log.Event("eject_tensor", "grid_id", g.id, "tensor_id", entry.id, "tensor", entry.tensor)
	return entry.tensor, true, nil
}

// Evaluator is the host-supplied function-value callback dynamic
// construction drives (spec §4.1/§6: "the host evaluates f(x) for each
// point and calls loadConstructedPoint").
type Evaluator interface {
	Evaluate(x []float64) (y []float64, err error)
}

// RunConstruction drives a full dynamic-construction session: it opens
// the journal if needed, fetches candidate points, evaluates up to
// budget of them via eval, loads each result, and ejects every tensor
// that becomes complete along the way. budget <= 0 evaluates every
// candidate returned by one GetCandidateConstructionPoints call.
func (g *Grid) RunConstruction(typ contour.Type, weights []float64, budget int, eval Evaluator) error {
	g.mu.Lock()
	if g.dynamic == nil {
		g.dynamic = &dynamicData{}
	}
	g.mu.Unlock()

	points, err := g.GetCandidateConstructionPoints(typ, weights)
	if err != nil {
		return fmt.Errorf("globalgrid.RunConstruction: %w", err)
	}
	if budget > 0 && budget < len(points) {
		points = points[:budget]
	}
	for _, x := range points {
		y, err := eval.Evaluate(x)
		if err != nil {
			return fmt.Errorf("globalgrid.RunConstruction: %w", err)
		}
		if err := g.LoadConstructedPoint(x, y); err != nil {
			return fmt.Errorf("globalgrid.RunConstruction: %w", err)
		}
	}
	for {
		_, ok, err := g.EjectCompleteTensor()
		if err != nil {
			return fmt.Errorf("globalgrid.RunConstruction: %w", err)
		}
		if !ok {
			break
		}
	}
	return nil
}
