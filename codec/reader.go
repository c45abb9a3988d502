// SPDX-License-Identifier: MIT
// Package: ellpack/codec
//
// reader.go: streaming parser for the three-line ELLPACK text layout.
//
//	<rows>,<cols>,<max_per_col>
//	<value_1>,...,<value_N>      N = cols·max_per_col, '*' = padding
//	<index_1>,...,<index_N>
//
// Stage 1 (Header): three unsigned integers, no '-' anywhere.
// Stage 2 (Values): exactly N fields; padding positions are remembered.
// Stage 3 (Indices): exactly N fields; padding must line up with Stage 2,
//   indices must be < rows and unique per column. A decreasing index marks
//   the matrix unsorted (soft) and is logged once.
// Stage 4 (Finish): oversized buffers are shrunk to an exact fit.

package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/katalvlaran/ellpack"
)

// Read parses the ELLPACK file at filename.
// Errors wrap ellpack.ErrIO (open/read) or ellpack.ErrParse (content); on
// error the returned matrix is nil.
func Read(filename string, opts ...Option) (*ellpack.Matrix, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("Read: %w: %w", ellpack.ErrIO, err)
	}
	defer f.Close()

	m, err := Decode(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("Read %s: %w", filename, err)
	}
	return m, nil
}

// Decode parses an ELLPACK matrix from r.
func Decode(r io.Reader, opts ...Option) (*ellpack.Matrix, error) {
	cfg := newConfig(opts...)
	d := &decoder{sc: newScanner(r, cfg.bufSize), cfg: cfg}
	m, err := d.decode()
	if err != nil {
		return nil, fmt.Errorf("Decode: %w", err)
	}
	return m, nil
}

type decoder struct {
	sc  *scanner
	cfg config

	m       *ellpack.Matrix
	n       int    // fields per data line
	padding bitset // padding positions seen on the values line
}

func (d *decoder) decode() (*ellpack.Matrix, error) {
	// Stage 1: header.
	if err := d.header(); err != nil {
		return nil, err
	}

	// Stage 2: values.
	if err := d.values(); err != nil {
		return nil, err
	}

	// Stage 3: indices.
	if err := d.indices(); err != nil {
		return nil, err
	}

	// Stage 4: shrink.
	m := d.m
	if float64(len(m.Values)) < shrinkRatio*float64(cap(m.Values)) {
		m.Values = append(make([]float32, 0, len(m.Values)), m.Values...)
		m.Indices = append(make([]uint64, 0, len(m.Indices)), m.Indices...)
	}

	return m, nil
}

func (d *decoder) header() error {
	var dims [3]uint64
	k := 0
	for {
		field, eol, err := d.sc.next()
		if errors.Is(err, io.EOF) {
			if k == 0 {
				return ErrMissingHeader
			}
			return fmt.Errorf("header: %d fields: %w", k, ErrBadHeader)
		}
		if err != nil {
			return err
		}
		if k >= len(dims) {
			return fmt.Errorf("header: more than 3 fields: %w", ErrBadHeader)
		}
		tok := bytes.TrimSpace(field)
		if bytes.IndexByte(tok, '-') >= 0 {
			return fmt.Errorf("header: field %d %q: %w", k+1, tok, ErrNegativeDimension)
		}
		v, perr := strconv.ParseUint(string(tok), 10, 64)
		if perr != nil {
			if k == 0 && len(tok) == 0 && eol {
				return ErrMissingHeader
			}
			return fmt.Errorf("header: field %d %q: %w", k+1, tok, ErrBadHeader)
		}
		dims[k] = v
		k++
		if eol {
			break
		}
	}
	if k != len(dims) {
		return fmt.Errorf("header: %d fields: %w", k, ErrBadHeader)
	}

	rows, cols, maxPerCol := dims[0], dims[1], dims[2]
	if maxPerCol != 0 && cols > math.MaxInt/maxPerCol {
		return fmt.Errorf("header: %d×%d fields: %w", cols, maxPerCol, ErrShapeOverflow)
	}

	d.n = int(cols * maxPerCol)
	d.m = &ellpack.Matrix{Rows: rows, Cols: cols, MaxPerCol: maxPerCol, Sorted: true}
	if maxPerCol != 0 {
		d.m.NonZerosPerCol = make([]uint64, cols)
	}
	pre := min(d.n, maxPrealloc)
	d.m.Values = make([]float32, 0, pre)
	d.m.Indices = make([]uint64, 0, pre)

	return nil
}

// field returns the k-th field of a data line (0-based) with surrounding
// spaces removed and enforces the field count. An empty line is accepted as
// zero fields when n == 0.
func (d *decoder) field(line string, k int) ([]byte, error) {
	raw, eol, err := d.sc.next()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %d of %d fields: %w", line, k, d.n, ErrFieldCount)
	}
	if err != nil {
		return nil, err
	}
	if eol && k < d.n-1 {
		return nil, fmt.Errorf("%s: %d of %d fields: %w", line, k+1, d.n, ErrFieldCount)
	}
	if !eol && k == d.n-1 {
		return nil, fmt.Errorf("%s: more than %d fields: %w", line, d.n, ErrFieldCount)
	}
	return bytes.TrimSpace(raw), nil
}

// emptyLine consumes a data line that must carry no fields.
func (d *decoder) emptyLine(line string) error {
	raw, eol, err := d.sc.next()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return err
	}
	if !eol || len(bytes.TrimSpace(raw)) != 0 {
		return fmt.Errorf("%s: fields present, none expected: %w", line, ErrFieldCount)
	}
	return nil
}

func (d *decoder) values() error {
	if d.n == 0 {
		return d.emptyLine("values")
	}
	warned := false
	for k := 0; k < d.n; k++ {
		tok, err := d.field("values", k)
		if err != nil {
			return err
		}
		if isPadding(tok) {
			d.padding.set(k)
			continue
		}
		v, err := strconv.ParseFloat(string(tok), 32)
		if err != nil {
			return fmt.Errorf("values: field %d %q: %w", k+1, tok, ErrInvalidValue)
		}
		if !warned && (math.IsNaN(v) || math.IsInf(v, 0)) {
			d.cfg.logger.Warn("codec: non-finite value", "field", k+1, "value", string(tok))
			warned = true
		}
		d.m.Values = append(d.m.Values, float32(v))
	}
	return nil
}

func (d *decoder) indices() error {
	if d.n == 0 {
		return d.emptyLine("indices")
	}
	m := d.m
	width := int(m.MaxPerCol)
	var (
		colStart int                 // first entry of the current column in m.Indices
		seen     map[uint64]struct{} // built lazily once a column goes out of order
		warned   bool
	)
	for k := 0; k < d.n; k++ {
		col, pos := k/width, k%width
		if pos == 0 {
			colStart, seen = len(m.Indices), nil
		}

		tok, err := d.field("indices", k)
		if err != nil {
			return err
		}
		if isPadding(tok) {
			if !d.padding.get(k) {
				return fmt.Errorf("indices: field %d: '*' under a value: %w", k+1, ErrPaddingMismatch)
			}
			continue
		}
		if d.padding.get(k) {
			return fmt.Errorf("indices: field %d %q under '*': %w", k+1, tok, ErrPaddingMismatch)
		}
		if bytes.IndexByte(tok, '-') >= 0 {
			return fmt.Errorf("indices: field %d %q: %w", k+1, tok, ErrNegativeIndex)
		}
		idx, err := strconv.ParseUint(string(tok), 10, 64)
		if err != nil {
			return fmt.Errorf("indices: field %d %q: %w", k+1, tok, ErrInvalidIndex)
		}
		if idx >= m.Rows {
			return fmt.Errorf("indices: field %d: row %d ≥ %d: %w", k+1, idx, m.Rows, ErrIndexOutOfRange)
		}

		prev := m.Indices[colStart:]
		if n := len(prev); n > 0 {
			last := prev[n-1]
			switch {
			case seen != nil:
				if _, dup := seen[idx]; dup {
					return fmt.Errorf("indices: column %d: row %d: %w", col, idx, ErrDuplicateIndex)
				}
			case idx == last:
				return fmt.Errorf("indices: column %d: row %d: %w", col, idx, ErrDuplicateIndex)
			case idx < last:
				seen = make(map[uint64]struct{}, width)
				for _, r := range prev {
					seen[r] = struct{}{}
				}
				if _, dup := seen[idx]; dup {
					return fmt.Errorf("indices: column %d: row %d: %w", col, idx, ErrDuplicateIndex)
				}
			}
			if seen != nil {
				seen[idx] = struct{}{}
				m.Sorted = false
				if !warned {
					d.cfg.logger.Warn("codec: column not sorted, sorted algorithms disabled", "column", col)
					warned = true
				}
			}
		}
		m.Indices = append(m.Indices, idx)
		m.NonZerosPerCol[col]++
	}

	if len(m.Indices) != len(m.Values) {
		return fmt.Errorf("indices: %d entries vs %d values: %w", len(m.Indices), len(m.Values), ErrPaddingMismatch)
	}
	return nil
}

// isPadding accepts "*" (surrounding spaces are already trimmed).
func isPadding(tok []byte) bool {
	return len(tok) == 1 && tok[0] == '*'
}
