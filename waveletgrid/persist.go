package waveletgrid

import (
	"fmt"
	"io"

	"github.com/lvlath/tsgrid/internal/linalg"
	"github.com/lvlath/tsgrid/iodata"
	"github.com/lvlath/tsgrid/multiindex"
)

// Save writes the grid to w in the wavelet schema of spec §6: a header
// (dims, outputs, order), then flagged blocks for points, needed,
// coefficients, and values.
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
		return fmt.Errorf("waveletgrid.Save: %w", err)
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
	if err := w.WriteInt(g.order); err != nil {
		return err
	}
	if g.numDims <= 0 {
		return nil
	}

	if err := iodata.WriteOptionalMultiIndexSet(w, g.points); err != nil {
		return err
	}
	if err := iodata.WriteOptionalMultiIndexSet(w, g.needed); err != nil {
		return err
	}

	if g.coefficients == nil {
		if err := w.WriteFlag(false); err != nil {
			return err
		}
	} else {
		if err := w.WriteFlag(true); err != nil {
			return err
		}
		// Spec's wavelet block is num_outputs x num_points, row-major:
		// the transpose of how the grid keeps coefficients internally
		// (num_points x num_outputs, matching values).
		if err := iodata.WriteDenseMatrix(w, transposeDense(g.coefficients)); err != nil {
			return err
		}
	}

	if g.values == nil {
		return w.WriteFlag(false)
	}
	if err := w.WriteFlag(true); err != nil {
		return err
	}
	return iodata.WriteDenseMatrix(w, g.values)
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
		return nil, fmt.Errorf("waveletgrid.Load: %w", err)
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
	order, err := r.ReadInt()
	if err != nil {
		return nil, err
	}

	if numDims <= 0 {
		return NewWavelet(numDims, numOutputs, order, opts...)
	}

	g, err := NewWavelet(numDims, numOutputs, order, opts...)
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

	hasCoeffs, err := r.ReadFlag()
	if err != nil {
		return nil, err
	}
	var coefficients *linalg.DenseMatrix
	if hasCoeffs {
		m, err := iodata.ReadDenseMatrix(r)
		if err != nil {
			return nil, err
		}
		coefficients = transposeDense(m)
	}

	hasValues, err := r.ReadFlag()
	if err != nil {
		return nil, err
	}
	var values *linalg.DenseMatrix
	if hasValues {
		values, err = iodata.ReadDenseMatrix(r)
		if err != nil {
			return nil, err
		}
	}

	g.mu.Lock()
	g.points = points
	g.needed = needed
	g.coefficients = coefficients
	g.values = values
	g.made = true
	g.mu.Unlock()

	if values != nil && points.Len() > 0 {
		g.mu.Lock()
		err := g.rebuildCollocationLocked()
		g.mu.Unlock()
		if err != nil {
			return nil, err
		}
	}

	return g, nil
}

func transposeDense(m *linalg.DenseMatrix) *linalg.DenseMatrix {
	t, _ := linalg.NewDenseMatrix(m.Cols(), m.Rows())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			t.Set(j, i, m.At(i, j))
		}
	}
	return t
}
