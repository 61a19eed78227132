// MIT License
//
// Copyright (c) 2022-2026 GoAkt Team
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package segment

import (
	"bytes"
	"iter"
)

// LengthFieldSize is the width in bytes of the little-endian length prefix
// that precedes every embedded type name.
const LengthFieldSize = 4

// marker is the high byte of a length prefix followed by the root namespace
// most embedded type names start with.
var marker = []byte("\x00System")

// Locate returns the offsets at which embedded type names start in buf, in
// ascending order. Each offset points at the first byte of the type name and
// is one past the end of the 4-byte length prefix.
//
// Detection is heuristic: a type name is assumed wherever a zero byte is
// directly followed by "System". Lengths are small, so the high byte of the
// little-endian prefix is zero and sits right before the name. Any other byte
// run matching the marker is reported as well. Matches too close to the start
// of buf to carry a full length prefix are skipped.
//
// The returned sequence is lazy and can be ranged over more than once.
func Locate(buf []byte) iter.Seq[int] {
	return func(yield func(int) bool) {
		offset := 0
		for offset < len(buf) {
			idx := bytes.Index(buf[offset:], marker)
			if idx < 0 {
				return
			}

			start := offset + idx + 1
			offset = start
			if start < LengthFieldSize {
				continue
			}

			if !yield(start) {
				return
			}
		}
	}
}
