package globalgrid

import (
	"fmt"
	"io"

	"github.com/lvlath/tsgrid/internal/linalg"
	"github.com/lvlath/tsgrid/internal/smolyak"
	"github.com/lvlath/tsgrid/iodata"
	"github.com/lvlath/tsgrid/multiindex"
	"github.com/lvlath/tsgrid/onedwrapper"
	"github.com/lvlath/tsgrid/tensorrefs"
)

// Save writes the grid to w in the fixed schema of spec §6: a header
// (dims, outputs, alpha, beta, rule name, optional custom-rule block),
// the tensor sets and their Smolyak coefficients, the loaded/pending
// point sets, per-dimension max levels, the values block, and any
// staged refinement.
//
// binary selects the fixed-width int32/float64 encoding; the default
// (false) is the 17-significant-digit scientific text format.
func (g *Grid) Save(w io.Writer, binary bool) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var enc iodata.Writer
	if binary {
		enc = iodata.NewBinaryWriter(w)
	} else {
		enc = iodata.NewTextWriter(w)
	}
	if err := g.encode(enc); err != nil {
		return fmt.Errorf("globalgrid.Save: %w", err)
	}
	return enc.Flush()
}

func (g *Grid) encode(w iodata.Writer) error {
	if err := w.WriteInt(g.numDims); err != nil {
		return err
	}
	if err := w.WriteInt(g.numOutputs); err != nil {
		return err
	}
	if err := w.WriteFloat(g.alpha); err != nil {
		return err
	}
	if err := w.WriteFloat(g.beta); err != nil {
		return err
	}
	if err := w.WriteString(g.rule.String()); err != nil {
		return err
	}
	if g.numDims <= 0 {
		return nil
	}

	if g.rule == onedwrapper.RuleCustomTabulated {
		if err := iodata.WriteCustomTabulated(w, g.custom); err != nil {
			return err
		}
	}

	if err := iodata.WriteMultiIndexSet(w, g.tensors); err != nil {
		return err
	}
	if err := iodata.WriteMultiIndexSet(w, g.activeTensors); err != nil {
		return err
	}
	if err := iodata.WriteInts(w, g.activeW); err != nil {
		return err
	}

	if err := iodata.WriteOptionalMultiIndexSet(w, g.points); err != nil {
		return err
	}
	if err := iodata.WriteOptionalMultiIndexSet(w, g.needed); err != nil {
		return err
	}

	for _, l := range g.maxLevels {
		if err := w.WriteInt(l); err != nil {
			return err
		}
	}

	if g.numOutputs > 0 {
		if g.values == nil {
			if err := w.WriteFlag(false); err != nil {
				return err
			}
		} else {
			if err := w.WriteFlag(true); err != nil {
				return err
			}
			if err := iodata.WriteDenseMatrix(w, g.values); err != nil {
				return err
			}
		}
	}

	if g.updatedTensors == nil {
		return w.WriteFlag(false)
	}
	if err := w.WriteFlag(true); err != nil {
		return err
	}
	if err := iodata.WriteMultiIndexSet(w, g.updatedTensors); err != nil {
		return err
	}
	if err := iodata.WriteMultiIndexSet(w, g.updatedActiveTensors); err != nil {
		return err
	}
	return iodata.WriteInts(w, g.updatedActiveW)
}

// Load reconstructs a Grid from r, previously written by Save with the
// same binary flag.
func Load(r io.Reader, binary bool, opts ...Option) (*Grid, error) {
	var dec iodata.Reader
	if binary {
		dec = iodata.NewBinaryReader(r)
	} else {
		dec = iodata.NewTextReader(r)
	}
	g, err := decode(dec, opts)
	if err != nil {
		return nil, fmt.Errorf("globalgrid.Load: %w", err)
	}
	return g, nil
}

func decode(r iodata.Reader, opts []Option) (*Grid, error) {
	numDims, err := r.ReadInt()
	if err != nil {
		return nil, err
	}
	numOutputs, err := r.ReadInt()
	if err != nil {
		return nil, err
	}
	alpha, err := r.ReadFloat()
	if err != nil {
		return nil, err
	}
	beta, err := r.ReadFloat()
	if err != nil {
		return nil, err
	}
	ruleName, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	rule, err := onedwrapper.ParseRule(ruleName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", iodata.ErrUnknownRule, ruleName)
	}

	allOpts := append([]Option{WithAlphaBeta(alpha, beta)}, opts...)

	if numDims <= 0 {
		return NewGlobal(numDims, numOutputs, rule, allOpts...)
	}

	if rule == onedwrapper.RuleCustomTabulated {
		custom, err := iodata.ReadCustomTabulated(r)
		if err != nil {
			return nil, err
		}
		allOpts = append(allOpts, WithCustomTable(custom))
	}

	g, err := NewGlobal(numDims, numOutputs, rule, allOpts...)
	if err != nil {
		return nil, err
	}

	tensors, err := iodata.ReadMultiIndexSet(r, numDims)
	if err != nil {
		return nil, err
	}
	activeTensors, err := iodata.ReadMultiIndexSet(r, numDims)
	if err != nil {
		return nil, err
	}
	activeW, err := iodata.ReadInts(r)
	if err != nil {
		return nil, err
	}

	points, err := iodata.ReadOptionalMultiIndexSet(r, numDims)
	if err != nil {
		return nil, err
	}
	if points == nil {
		points, _ = multiindex.New(numDims)
	}
	needed, err := iodata.ReadOptionalMultiIndexSet(r, numDims)
	if err != nil {
		return nil, err
	}
	if needed == nil {
		needed, _ = multiindex.New(numDims)
	}

	maxLevels := make([]int, numDims)
	for i := range maxLevels {
		v, err := r.ReadInt()
		if err != nil {
			return nil, err
		}
		maxLevels[i] = v
	}

	var values *linalg.DenseMatrix
	if numOutputs > 0 {
		present, err := r.ReadFlag()
		if err != nil {
			return nil, err
		}
		if present {
			m, err := iodata.ReadDenseMatrix(r)
			if err != nil {
				return nil, err
			}
			values = m
		}
	}

	pending, err := r.ReadFlag()
	if err != nil {
		return nil, err
	}
	var updatedTensors, updatedActiveTensors *multiindex.MultiIndexSet
	var updatedActiveW []int
	if pending {
		updatedTensors, err = iodata.ReadMultiIndexSet(r, numDims)
		if err != nil {
			return nil, err
		}
		updatedActiveTensors, err = iodata.ReadMultiIndexSet(r, numDims)
		if err != nil {
			return nil, err
		}
		updatedActiveW, err = iodata.ReadInts(r)
		if err != nil {
			return nil, err
		}
	}

	// tensorRefs isn't itself part of the stream: it's derived from
	// (tensors, activeTensors, points, needed) exactly the way Make and
	// applyUpdatedTensors derive it from a live grid's fields, since it
	// must resolve into the array points will become once needed is
	// loaded, not just into whatever points already holds.
	//
	// A nested rule's point set has stable per-tuple identity, so the
	// eventual array is simply points and needed concatenated (the two
	// are disjoint by construction) and RefsForExistingPoints resolves
	// tensor-local indices into it by tuple lookup.
	//
	// A non-nested rule carries no such identity (equal-valued tuples
	// from distinct tensors are distinct positions), so its refs are
	// always a pure function of (wrapper, activeTensors) alone; rebuild
	// them fresh rather than resolving against the persisted points,
	// matching how applyUpdatedTensors already rebuilds non-nested refs
	// from scratch on every refinement round.
	var tensorRefs *tensorrefs.TensorRefs
	if g.wrapper.Nested() {
		merged, err := points.Union(needed)
		if err != nil {
			return nil, err
		}
		tensorRefs, err = tensorrefs.RefsForExistingPoints(g.wrapper, merged, activeTensors)
		if err != nil {
			return nil, err
		}
	} else {
		_, refs, err := smolyak.BuildPoints(g.wrapper, tensors, activeTensors, false)
		if err != nil {
			return nil, err
		}
		tensorRefs = refs
	}

	g.mu.Lock()
	g.tensors = tensors
	g.activeTensors = activeTensors
	g.activeW = activeW
	g.points = points
	g.needed = needed
	g.maxLevels = maxLevels
	g.tensorRefs = tensorRefs
	g.values = values
	g.updatedTensors = updatedTensors
	g.updatedActiveTensors = updatedActiveTensors
	g.updatedActiveW = updatedActiveW
	g.made = true
	g.mu.Unlock()

	return g, nil
}
