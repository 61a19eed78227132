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

package replace

import (
	"bytes"

	"github.com/tochemey/crossframe/internal/segment"
)

// All applies every pair to the whole of buf, in order, and returns the
// result. Replacement is not limited to type names: any byte run matching an
// old token is rewritten, including runs inside opaque field values.
//
// The result never aliases buf, so callers may hand in pooled scratch memory.
func All(buf []byte, pairs ...segment.Pair) []byte {
	out := buf
	replaced := false
	for _, pair := range pairs {
		if len(pair.Old) == 0 {
			continue
		}
		out = bytes.ReplaceAll(out, pair.Old, pair.New)
		replaced = true
	}

	if !replaced {
		return bytes.Clone(buf)
	}
	return out
}
