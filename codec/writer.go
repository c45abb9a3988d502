// SPDX-License-Identifier: MIT
// Package: ellpack/codec
//
// writer.go: serializes a result accumulator into the text layout.
//
// The header carries the longest column actually filled; shorter columns are
// padded with '*'. Values use %e notation (6 fraction digits), indices plain
// decimal. The accumulator is only read.

package codec

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/katalvlaran/ellpack"
	"github.com/katalvlaran/ellpack/accumulator"
)

// Encode writes acc as a rows×cols ELLPACK matrix to w.
//
// Errors: ErrInvalidResult for a poisoned or released accumulator,
// ErrNoColumns when cols == 0, ErrShapeMismatch when cols != acc.Len(),
// ellpack.ErrIO when w fails.
func Encode(w io.Writer, acc *accumulator.Accumulator, rows, cols uint64) error {
	const method = "Encode"
	if !acc.Valid() {
		if cause := acc.Err(); cause != nil {
			return fmt.Errorf("%s: %w: %w", method, ErrInvalidResult, cause)
		}
		return fmt.Errorf("%s: %w", method, ErrInvalidResult)
	}
	if cols == 0 {
		return fmt.Errorf("%s: %w", method, ErrNoColumns)
	}
	if cols != uint64(acc.Len()) {
		return fmt.Errorf("%s: %d columns declared, %d held: %w", method, cols, acc.Len(), ErrShapeMismatch)
	}

	longest := acc.LongestColumn()
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)

	buf = strconv.AppendUint(buf[:0], rows, 10)
	buf = append(buf, ',')
	buf = strconv.AppendUint(buf, cols, 10)
	buf = append(buf, ',')
	buf = strconv.AppendUint(buf, longest, 10)
	buf = append(buf, '\n')
	bw.Write(buf)

	writeLine(bw, acc, longest, func(dst []byte, c *accumulator.Column, k int) []byte {
		return strconv.AppendFloat(dst, float64(c.Values()[k]), 'e', 6, 32)
	})
	writeLine(bw, acc, longest, func(dst []byte, c *accumulator.Column, k int) []byte {
		return strconv.AppendUint(dst, c.Indices()[k], 10)
	})

	// bufio.Writer keeps the first error; Flush reports it.
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%s: %w: %w", method, ellpack.ErrIO, err)
	}
	return nil
}

// writeLine emits one data line: every column padded to longest fields.
func writeLine(bw *bufio.Writer, acc *accumulator.Accumulator, longest uint64,
	format func([]byte, *accumulator.Column, int) []byte) {
	buf := make([]byte, 0, 32)
	first := true
	for j := 0; j < acc.Len(); j++ {
		c := acc.Column(j)
		used := uint64(c.UsedHeight())
		for k := uint64(0); k < longest; k++ {
			buf = buf[:0]
			if !first {
				buf = append(buf, ',')
			}
			first = false
			if k < used {
				buf = format(buf, c, int(k))
			} else {
				buf = append(buf, '*')
			}
			bw.Write(buf)
		}
	}
	bw.WriteByte('\n')
}

// Write encodes acc into filename. The layout goes to a temporary file in the
// same directory that is renamed over filename only after a complete, flushed
// write; on any failure the temporary file is removed.
func Write(filename string, acc *accumulator.Accumulator, rows, cols uint64) (err error) {
	const method = "Write"
	dir, base := filepath.Split(filename)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return fmt.Errorf("%s: %w: %w", method, ellpack.ErrIO, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = Encode(tmp, acc, rows, cols); err != nil {
		return fmt.Errorf("%s %s: %w", method, filename, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%s: %w: %w", method, ellpack.ErrIO, err)
	}
	if err = os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("%s: %w: %w", method, ellpack.ErrIO, err)
	}
	return nil
}

// EncodeMatrix writes m in the text layout. The header's max_per_col is the
// longest stored column, which may be smaller than m.MaxPerCol.
func EncodeMatrix(w io.Writer, m *ellpack.Matrix) error {
	acc, err := accumulator.FromMatrix(m)
	if err != nil {
		return fmt.Errorf("EncodeMatrix: %w", err)
	}
	return Encode(w, acc, m.Rows, m.Cols)
}

// WriteMatrix is Write for a Matrix.
func WriteMatrix(filename string, m *ellpack.Matrix) error {
	acc, err := accumulator.FromMatrix(m)
	if err != nil {
		return fmt.Errorf("WriteMatrix: %w", err)
	}
	return Write(filename, acc, m.Rows, m.Cols)
}
