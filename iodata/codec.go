package iodata

// Writer is the scalar primitive surface Save builds on; TextWriter and
// BinaryWriter both satisfy it, so every higher-level block encoder
// (WriteMultiIndexSet, WriteDenseMatrix, WriteCustomTabulated) is
// written once and reused by both formats.
type Writer interface {
	WriteInt(v int) error
	WriteFloat(v float64) error
	WriteString(v string) error
	WriteFlag(v bool) error
	Flush() error
}

// Reader is Writer's mirror on the decode side.
type Reader interface {
	ReadInt() (int, error)
	ReadFloat() (float64, error)
	ReadString() (string, error)
	ReadFlag() (bool, error)
}

// WriteInts writes len(vals) followed by each element, space/fixed-width
// delimited per the underlying Writer's format.
func WriteInts(w Writer, vals []int) error {
	if err := w.WriteInt(len(vals)); err != nil {
		return err
	}
	for _, v := range vals {
		if err := w.WriteInt(v); err != nil {
			return err
		}
	}
	return nil
}

// ReadInts is WriteInts's mirror.
func ReadInts(r Reader) ([]int, error) {
	n, err := r.ReadInt()
	if err != nil {
		return nil, err
	}
	out := make([]int, n)
	for i := range out {
		v, err := r.ReadInt()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// WriteFloats mirrors WriteInts for float64 slices, used by dense-matrix
// row and per-level rule-table encoding.
func WriteFloats(w Writer, vals []float64) error {
	if err := w.WriteInt(len(vals)); err != nil {
		return err
	}
	for _, v := range vals {
		if err := w.WriteFloat(v); err != nil {
			return err
		}
	}
	return nil
}

// ReadFloats is WriteFloats's mirror.
func ReadFloats(r Reader) ([]float64, error) {
	n, err := r.ReadInt()
	if err != nil {
		return nil, err
	}
	out := make([]float64, n)
	for i := range out {
		v, err := r.ReadFloat()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
