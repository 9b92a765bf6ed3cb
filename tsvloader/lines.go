// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsvloader

import (
	"bufio"
	"io"
)

// initialLineBufCap is the starting capacity of a lineReader's reused
// buffer (spec.md 4.7 performance contract).
const initialLineBufCap = 500

// lineReader reads one '\n'-terminated line at a time into a single
// reused, grow-only buffer (initial capacity 500 bytes) whose capacity is
// doubled whenever a line overflows it, rather than re-allocating per
// line.
type lineReader struct {
	r   *bufio.Reader
	buf []byte
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReader(r), buf: make([]byte, 0, initialLineBufCap)}
}

// readLine returns the next line, without its trailing newline, and
// whether one was read at all. err is io.EOF once the underlying reader
// is exhausted; a final line with no trailing '\n' is still returned with
// ok == true alongside err == io.EOF.
func (lr *lineReader) readLine() (line []byte, ok bool, err error) {
	lr.buf = lr.buf[:0]
	for {
		chunk, rerr := lr.r.ReadSlice('\n')
		if need := len(lr.buf) + len(chunk); need > cap(lr.buf) {
			newCap := cap(lr.buf) * 2
			if newCap == 0 {
				newCap = initialLineBufCap
			}
			for newCap < need {
				newCap *= 2
			}
			grown := make([]byte, len(lr.buf), newCap)
			copy(grown, lr.buf)
			lr.buf = grown
		}
		lr.buf = append(lr.buf, chunk...)
		if rerr == bufio.ErrBufferFull {
			continue
		}
		if rerr != nil {
			if len(lr.buf) == 0 {
				return nil, false, rerr
			}
			return trimEOL(lr.buf), true, rerr
		}
		return trimEOL(lr.buf), true, nil
	}
}

func trimEOL(b []byte) []byte {
	n := len(b)
	for n > 0 && (b[n-1] == '\n' || b[n-1] == '\r') {
		n--
	}
	return b[:n]
}
