package iodata_test

import (
	"bytes"
	"testing"

	"github.com/lvlath/tsgrid/internal/linalg"
	"github.com/lvlath/tsgrid/iodata"
	"github.com/lvlath/tsgrid/multiindex"
	"github.com/stretchr/testify/require"
)

func TestTextScalarRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := iodata.NewTextWriter(&buf)
	require.NoError(t, w.WriteInt(-7))
	require.NoError(t, w.WriteFloat(1.0/3.0))
	require.NoError(t, w.WriteString("clenshawcurtis"))
	require.NoError(t, w.WriteFlag(true))
	require.NoError(t, w.WriteFlag(false))
	require.NoError(t, w.Flush())

	r := iodata.NewTextReader(&buf)
	i, err := r.ReadInt()
	require.NoError(t, err)
	require.Equal(t, -7, i)

	f, err := r.ReadFloat()
	require.NoError(t, err)
	require.Equal(t, 1.0/3.0, f)

	s, err := r.ReadString()
	require.NoError(t, err)
	require.Equal(t, "clenshawcurtis", s)

	b1, err := r.ReadFlag()
	require.NoError(t, err)
	require.True(t, b1)

	b2, err := r.ReadFlag()
	require.NoError(t, err)
	require.False(t, b2)
}

func TestBinaryScalarRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := iodata.NewBinaryWriter(&buf)
	require.NoError(t, w.WriteInt(1234567))
	require.NoError(t, w.WriteFloat(-0.0009765625))
	require.NoError(t, w.WriteString("gausspatterson"))
	require.NoError(t, w.WriteFlag(false))
	require.NoError(t, w.Flush())

	r := iodata.NewBinaryReader(&buf)
	i, err := r.ReadInt()
	require.NoError(t, err)
	require.Equal(t, 1234567, i)

	f, err := r.ReadFloat()
	require.NoError(t, err)
	require.Equal(t, -0.0009765625, f)

	s, err := r.ReadString()
	require.NoError(t, err)
	require.Equal(t, "gausspatterson", s)

	flag, err := r.ReadFlag()
	require.NoError(t, err)
	require.False(t, flag)
}

func TestBinaryReadTruncatedStreamFails(t *testing.T) {
	var buf bytes.Buffer
	w := iodata.NewBinaryWriter(&buf)
	require.NoError(t, w.WriteInt(1))
	require.NoError(t, w.Flush())

	r := iodata.NewBinaryReader(&buf)
	_, err := r.ReadInt()
	require.NoError(t, err)
	_, err = r.ReadInt()
	require.ErrorIs(t, err, iodata.ErrTruncatedStream)
}

func buildSet(t *testing.T, d int, tuples [][]int) *multiindex.MultiIndexSet {
	t.Helper()
	set, err := multiindex.New(d)
	require.NoError(t, err)
	for _, tuple := range tuples {
		_, err := set.Insert(tuple)
		require.NoError(t, err)
	}
	return set
}

func TestMultiIndexSetRoundTripText(t *testing.T) {
	set := buildSet(t, 2, [][]int{{0, 0}, {1, 0}, {0, 1}, {2, 0}})

	var buf bytes.Buffer
	w := iodata.NewTextWriter(&buf)
	require.NoError(t, iodata.WriteMultiIndexSet(w, set))
	require.NoError(t, w.Flush())

	r := iodata.NewTextReader(&buf)
	got, err := iodata.ReadMultiIndexSet(r, 2)
	require.NoError(t, err)
	require.True(t, set.Equal(got))
}

func TestOptionalMultiIndexSetAbsent(t *testing.T) {
	var buf bytes.Buffer
	w := iodata.NewBinaryWriter(&buf)
	require.NoError(t, iodata.WriteOptionalMultiIndexSet(w, nil))
	require.NoError(t, w.Flush())

	r := iodata.NewBinaryReader(&buf)
	got, err := iodata.ReadOptionalMultiIndexSet(r, 3)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestDenseMatrixRoundTripBinary(t *testing.T) {
	m, err := linalg.NewDenseMatrixFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	var buf bytes.Buffer
	w := iodata.NewBinaryWriter(&buf)
	require.NoError(t, iodata.WriteDenseMatrix(w, m))
	require.NoError(t, w.Flush())

	r := iodata.NewBinaryReader(&buf)
	got, err := iodata.ReadDenseMatrix(r)
	require.NoError(t, err)
	require.Equal(t, m.Rows(), got.Rows())
	require.Equal(t, m.Cols(), got.Cols())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			require.Equal(t, m.At(i, j), got.At(i, j))
		}
	}
}
