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

package remote

import "github.com/tochemey/crossframe/internal/compression"

// Compression is the algorithm wrapping payloads on the wire. Payloads are
// decompressed before they are rewritten and compressed after.
type Compression int

const (
	// NoCompression leaves payloads as produced by the inner serializer.
	// This is the default.
	NoCompression Compression = iota

	// ZstdCompression uses the Zstandard (RFC 8878) algorithm.
	//
	// Pros:
	//   - Good compression ratio with very low CPU overhead.
	//   - Fast in both directions.
	//
	// Cons:
	//   - Slightly larger output than Brotli on text-heavy payloads.
	ZstdCompression

	// BrotliCompression uses the Brotli (RFC 7932) algorithm.
	//
	// Pros:
	//   - Best ratio on payloads dominated by type name text, which is what
	//     cross-runtime payloads mostly carry.
	//
	// Cons:
	//   - Compression is notably slower than Zstd.
	BrotliCompression
)

// String returns the content-coding name of the compression
func (c Compression) String() string {
	switch c {
	case NoCompression:
		return "identity"
	case ZstdCompression:
		return compression.ZstdName
	case BrotliCompression:
		return compression.BrotliName
	default:
		return "unknown"
	}
}

func (c Compression) valid() bool {
	return c >= NoCompression && c <= BrotliCompression
}

func (c Compression) codec() *compression.Codec {
	switch c {
	case ZstdCompression:
		return compression.Zstd()
	case BrotliCompression:
		return compression.Brotli()
	default:
		return nil
	}
}
