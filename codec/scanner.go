// SPDX-License-Identifier: MIT
// Package: ellpack/codec
//
// scanner.go: bounded-buffer field scanner.
//
// The input is split into fields on ',' and '\n'. Only one working buffer of
// fixed size is held in memory; a field cut off by the end of a read is moved
// to the front of the buffer and completed by the next refill. A field longer
// than the whole buffer is rejected (ErrTokenTooLong).

package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/ellpack"
)

// maxEmptyReads bounds consecutive (0, nil) reads before giving up.
const maxEmptyReads = 100

type scanner struct {
	r     io.Reader
	buf   []byte
	start int // first unconsumed byte
	end   int // one past the last buffered byte
	eof   bool
	line  int // 1-based line of the next field
}

func newScanner(r io.Reader, size int) *scanner {
	return &scanner{r: r, buf: make([]byte, size), line: 1}
}

// next returns the next field and whether it closed its line (a '\n' or the
// end of input followed it). The field aliases the buffer and is valid until
// the following call. At the end of input next returns io.EOF.
func (s *scanner) next() ([]byte, bool, error) {
	for {
		if i := bytes.IndexAny(s.buf[s.start:s.end], ",\n"); i >= 0 {
			field := s.buf[s.start : s.start+i]
			eol := s.buf[s.start+i] == '\n'
			s.start += i + 1
			if eol {
				s.line++
				field = bytes.TrimSuffix(field, []byte{'\r'})
			}
			return field, eol, nil
		}

		if s.eof {
			if s.start == s.end {
				return nil, true, io.EOF
			}
			field := bytes.TrimSuffix(s.buf[s.start:s.end], []byte{'\r'})
			s.start = s.end
			return field, true, nil
		}

		if err := s.fill(); err != nil {
			return nil, false, err
		}
	}
}

// fill moves the partial field to the front and reads more bytes.
func (s *scanner) fill() error {
	if s.start > 0 {
		s.end = copy(s.buf, s.buf[s.start:s.end])
		s.start = 0
	}
	if s.end == len(s.buf) {
		return fmt.Errorf("line %d: field longer than %d bytes: %w", s.line, len(s.buf), ErrTokenTooLong)
	}

	for empty := 0; ; empty++ {
		n, err := s.r.Read(s.buf[s.end:])
		s.end += n
		if errors.Is(err, io.EOF) {
			s.eof = true
			return nil
		}
		if err != nil {
			return fmt.Errorf("line %d: %w: %w", s.line, ellpack.ErrIO, err)
		}
		if n > 0 {
			return nil
		}
		if empty >= maxEmptyReads {
			return fmt.Errorf("line %d: %w: %w", s.line, ellpack.ErrIO, io.ErrNoProgress)
		}
	}
}
