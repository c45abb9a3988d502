// SPDX-License-Identifier: MIT
// Package: ellpack
//
// dump.go: human-readable debug dump of a Matrix.

package ellpack

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes a multi-line description of m: the shape line followed by one
// line per column listing row:value pairs. Intended for debugging only; the
// format is not stable.
func (m *Matrix) Dump(w io.Writer) error {
	if m == nil {
		_, err := fmt.Fprintln(w, "ellpack.Matrix(nil)")
		return err
	}
	if _, err := fmt.Fprintf(w, "ellpack.Matrix rows=%d cols=%d max_per_col=%d nnz=%d sorted=%t\n",
		m.Rows, m.Cols, m.MaxPerCol, m.TotalNonZero(), m.Sorted); err != nil {
		return err
	}

	off := m.Offsets()
	for j := 0; j+1 < len(off); j++ {
		var sb strings.Builder
		fmt.Fprintf(&sb, "  col %d [%d]:", j, off[j+1]-off[j])
		for k := off[j]; k < off[j+1]; k++ {
			fmt.Fprintf(&sb, " %d:%g", m.Indices[k], m.Values[k])
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}

	return nil
}

// String implements fmt.Stringer using Dump.
func (m *Matrix) String() string {
	var sb strings.Builder
	_ = m.Dump(&sb) // strings.Builder never fails
	return sb.String()
}
