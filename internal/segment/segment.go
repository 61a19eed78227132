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
	"encoding/binary"
)

// Segment is a view over one embedded, length-prefixed type name.
// It is only valid for the duration of a single rewrite pass.
type Segment struct {
	// Start is the offset of the first byte of the type name.
	Start int
	// DeclaredLength is the value held by the length prefix.
	DeclaredLength uint32
	// Content is the type name text, clamped to the end of the buffer.
	Content []byte
}

// At returns the segment whose type name starts at start.
// start must be at least LengthFieldSize and at most len(buf).
func At(buf []byte, start int) Segment {
	declared := ReadLength(buf, start)
	end := len(buf)
	if uint64(start)+uint64(declared) < uint64(end) {
		end = start + int(declared)
	}

	return Segment{
		Start:          start,
		DeclaredLength: declared,
		Content:        buf[start:end:end],
	}
}

// Clamped reports whether the declared length runs past the end of the buffer.
func (s Segment) Clamped() bool {
	return uint64(len(s.Content)) < uint64(s.DeclaredLength)
}

// ReadLength decodes the length prefix occupying buf[start-4:start].
func ReadLength(buf []byte, start int) uint32 {
	return binary.LittleEndian.Uint32(buf[start-LengthFieldSize : start])
}

// WriteLength overwrites the length prefix occupying buf[start-4:start].
func WriteLength(buf []byte, start int, length uint32) {
	binary.LittleEndian.PutUint32(buf[start-LengthFieldSize:start], length)
}

// Pair is an old token and the token that replaces it.
type Pair struct {
	Old []byte
	New []byte
}

// Delta counts the non-overlapping occurrences of the old token in content
// and returns the length change replacing all of them would cause.
func (p Pair) Delta(content []byte) (occurrences, delta int) {
	if len(p.Old) == 0 {
		return 0, 0
	}

	occurrences = bytes.Count(content, p.Old)
	return occurrences, occurrences * (len(p.New) - len(p.Old))
}
