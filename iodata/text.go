package iodata

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// TextWriter emits the text stream format: whitespace-separated tokens,
// floats at 17-significant-digit scientific precision, flags as the
// literal characters '0'/'1'.
type TextWriter struct {
	w        *bufio.Writer
	wroteOne bool
}

// NewTextWriter wraps w.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: bufio.NewWriter(w)}
}

func (t *TextWriter) sep() error {
	if t.wroteOne {
		if _, err := t.w.WriteString(" "); err != nil {
			return err
		}
	}
	t.wroteOne = true
	return nil
}

func (t *TextWriter) WriteInt(v int) error {
	if err := t.sep(); err != nil {
		return err
	}
	_, err := t.w.WriteString(strconv.Itoa(v))
	return err
}

// WriteFloat writes v in scientific notation at 17 significant digits
// (spec §6: "text uses scientific format at 17 significant digits").
func (t *TextWriter) WriteFloat(v float64) error {
	if err := t.sep(); err != nil {
		return err
	}
	_, err := t.w.WriteString(strconv.FormatFloat(v, 'e', 16, 64))
	return err
}

func (t *TextWriter) WriteString(v string) error {
	if err := t.sep(); err != nil {
		return err
	}
	_, err := t.w.WriteString(v)
	return err
}

func (t *TextWriter) WriteFlag(v bool) error {
	if err := t.sep(); err != nil {
		return err
	}
	if v {
		return t.w.WriteByte('1')
	}
	return t.w.WriteByte('0')
}

func (t *TextWriter) Flush() error { return t.w.Flush() }

// TextReader mirrors TextWriter, tokenizing on whitespace.
type TextReader struct {
	sc *bufio.Scanner
}

// NewTextReader wraps r.
func NewTextReader(r io.Reader) *TextReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)
	return &TextReader{sc: sc}
}

func (t *TextReader) token() (string, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return "", fmt.Errorf("iodata.TextReader: %w", err)
		}
		return "", ErrTruncatedStream
	}
	return t.sc.Text(), nil
}

func (t *TextReader) ReadInt() (int, error) {
	tok, err := t.token()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("iodata.TextReader.ReadInt(%q): %w", tok, ErrMalformedToken)
	}
	return v, nil
}

func (t *TextReader) ReadFloat() (float64, error) {
	tok, err := t.token()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("iodata.TextReader.ReadFloat(%q): %w", tok, ErrMalformedToken)
	}
	return v, nil
}

func (t *TextReader) ReadString() (string, error) { return t.token() }

func (t *TextReader) ReadFlag() (bool, error) {
	tok, err := t.token()
	if err != nil {
		return false, err
	}
	switch tok {
	case "1":
		return true, nil
	case "0":
		return false, nil
	default:
		return false, fmt.Errorf("iodata.TextReader.ReadFlag(%q): %w", tok, ErrMalformedToken)
	}
}
