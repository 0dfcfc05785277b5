package iodata

import (
	"fmt"

	"github.com/lvlath/tsgrid/internal/linalg"
	"github.com/lvlath/tsgrid/multiindex"
	"github.com/lvlath/tsgrid/onedwrapper"
)

// WriteMultiIndexSet writes set's length followed by its entries
// flattened in insertion order (d ints per entry, d implied by set.Dim()
// and known from the stream's header on read).
func WriteMultiIndexSet(w Writer, set *multiindex.MultiIndexSet) error {
	if err := w.WriteInt(set.Len()); err != nil {
		return err
	}
	for i := 0; i < set.Len(); i++ {
		for _, v := range set.At(i) {
			if err := w.WriteInt(v); err != nil {
				return err
			}
		}
	}
	return nil
}

// ReadMultiIndexSet is WriteMultiIndexSet's mirror; d is the dimension
// announced by the stream's header.
func ReadMultiIndexSet(r Reader, d int) (*multiindex.MultiIndexSet, error) {
	n, err := r.ReadInt()
	if err != nil {
		return nil, err
	}
	set, err := multiindex.New(d)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		t := make([]int, d)
		for j := range t {
			v, err := r.ReadInt()
			if err != nil {
				return nil, err
			}
			t[j] = v
		}
		if _, err := set.InsertRaw(t); err != nil {
			return nil, fmt.Errorf("iodata.ReadMultiIndexSet: entry %d: %w", i, err)
		}
	}
	return set, nil
}

// WriteOptionalMultiIndexSet writes a presence flag followed by the set
// if present, per spec §6's "flag + optional <set>" blocks.
func WriteOptionalMultiIndexSet(w Writer, set *multiindex.MultiIndexSet) error {
	if set == nil {
		return w.WriteFlag(false)
	}
	if err := w.WriteFlag(true); err != nil {
		return err
	}
	return WriteMultiIndexSet(w, set)
}

// ReadOptionalMultiIndexSet is WriteOptionalMultiIndexSet's mirror.
func ReadOptionalMultiIndexSet(r Reader, d int) (*multiindex.MultiIndexSet, error) {
	present, err := r.ReadFlag()
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}
	return ReadMultiIndexSet(r, d)
}

// WriteDenseMatrix writes m's shape followed by its rows in row-major
// order.
func WriteDenseMatrix(w Writer, m *linalg.DenseMatrix) error {
	if err := w.WriteInt(m.Rows()); err != nil {
		return err
	}
	if err := w.WriteInt(m.Cols()); err != nil {
		return err
	}
	for i := 0; i < m.Rows(); i++ {
		for _, v := range m.Row(i) {
			if err := w.WriteFloat(v); err != nil {
				return err
			}
		}
	}
	return nil
}

// ReadDenseMatrix is WriteDenseMatrix's mirror.
func ReadDenseMatrix(r Reader) (*linalg.DenseMatrix, error) {
	rows, err := r.ReadInt()
	if err != nil {
		return nil, err
	}
	cols, err := r.ReadInt()
	if err != nil {
		return nil, err
	}
	data := make([][]float64, rows)
	for i := range data {
		row := make([]float64, cols)
		for j := range row {
			v, err := r.ReadFloat()
			if err != nil {
				return nil, err
			}
			row[j] = v
		}
		data[i] = row
	}
	return linalg.NewDenseMatrixFromRows(data)
}

// WriteCustomTabulated writes a CustomTabulated table: level count, its
// nestedness flag, then per level nodes/weights/iExact/qExact.
func WriteCustomTabulated(w Writer, c *onedwrapper.CustomTabulated) error {
	levels := c.MaxLevel() + 1
	if err := w.WriteInt(levels); err != nil {
		return err
	}
	if err := w.WriteFlag(c.Nested()); err != nil {
		return err
	}
	for l := 0; l < levels; l++ {
		nodes, err := c.Nodes(l)
		if err != nil {
			return err
		}
		weights, err := c.Weights(l)
		if err != nil {
			return err
		}
		iExact, err := c.IExact(l)
		if err != nil {
			return err
		}
		qExact, err := c.QExact(l)
		if err != nil {
			return err
		}
		if err := WriteFloats(w, nodes); err != nil {
			return err
		}
		if err := WriteFloats(w, weights); err != nil {
			return err
		}
		if err := w.WriteInt(iExact); err != nil {
			return err
		}
		if err := w.WriteInt(qExact); err != nil {
			return err
		}
	}
	return nil
}

// ReadCustomTabulated is WriteCustomTabulated's mirror.
func ReadCustomTabulated(r Reader) (*onedwrapper.CustomTabulated, error) {
	levels, err := r.ReadInt()
	if err != nil {
		return nil, err
	}
	nested, err := r.ReadFlag()
	if err != nil {
		return nil, err
	}
	nodes := make([][]float64, levels)
	weights := make([][]float64, levels)
	iExact := make([]int, levels)
	qExact := make([]int, levels)
	for l := 0; l < levels; l++ {
		nodes[l], err = ReadFloats(r)
		if err != nil {
			return nil, err
		}
		weights[l], err = ReadFloats(r)
		if err != nil {
			return nil, err
		}
		iExact[l], err = r.ReadInt()
		if err != nil {
			return nil, err
		}
		qExact[l], err = r.ReadInt()
		if err != nil {
			return nil, err
		}
	}
	return onedwrapper.NewCustomTabulated(nodes, weights, iExact, qExact, nested)
}
