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

package compression

import (
	"io"

	"connectrpc.com/connect"
	"github.com/andybalholm/brotli"
)

// BrotliName is the identifier of Brotli compression.
const BrotliName = "br"

var brotliCodec = newCodec(BrotliName, newBrotliCompressor, newBrotliDecompressor)

// Brotli returns the shared Brotli codec, compressing at the default level.
func Brotli() *Codec {
	return brotliCodec
}

func newBrotliCompressor() connect.Compressor {
	return brotli.NewWriterLevel(nil, brotli.DefaultCompression)
}

func newBrotliDecompressor() connect.Decompressor {
	return &brotliDecompressor{Reader: brotli.NewReader(nil)}
}

// brotliDecompressor adds the Close brotli.Reader lacks.
type brotliDecompressor struct {
	*brotli.Reader
}

func (d *brotliDecompressor) Reset(r io.Reader) error {
	return d.Reader.Reset(r)
}

func (d *brotliDecompressor) Close() error {
	return nil
}
