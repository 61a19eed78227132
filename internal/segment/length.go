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

// Truncate8 narrows v to the 8-bit counter legacy writers carry type name
// lengths in. Values outside [0, 255] wrap around, matching the prefixes
// produced by peers running the legacy rewriter.
func Truncate8(v int) uint32 {
	return uint32(uint8(v))
}

// Corrected returns the new length prefix for a type name declared with
// declared bytes once delta bytes of substitutions are applied, and whether
// the prefix must be written back. The arithmetic goes through Truncate8, so
// declared lengths above 255 are rewritten even when delta is zero. A
// corrected value of zero is never written.
func Corrected(declared uint32, delta int) (uint32, bool) {
	corrected := Truncate8(int(declared) + delta)
	return corrected, corrected != 0 && corrected != declared
}
