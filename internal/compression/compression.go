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

// Package compression compresses whole payloads with pooled zstd and brotli
// codecs exposed through connect's Compressor and Decompressor interfaces.
package compression

import (
	"bytes"
	"errors"
	"io"
	"sync"

	"connectrpc.com/connect"
)

// MaxDecompressedSize bounds the size of a decompressed payload.
const MaxDecompressedSize = 64 << 20

// ErrSizeLimitExceeded is returned when a payload decompresses past MaxDecompressedSize.
var ErrSizeLimitExceeded = errors.New("compression: decompressed payload exceeds size limit")

// Codec compresses and decompresses whole payloads.
// A Codec is safe for concurrent use.
type Codec struct {
	name          string
	compressors   sync.Pool
	decompressors sync.Pool
}

func newCodec(name string, newCompressor func() connect.Compressor, newDecompressor func() connect.Decompressor) *Codec {
	codec := &Codec{name: name}
	codec.compressors.New = func() any { return newCompressor() }
	codec.decompressors.New = func() any { return newDecompressor() }
	return codec
}

// Name returns the content-coding name of the codec.
func (c *Codec) Name() string {
	return c.name
}

// Compress returns the compressed form of src.
func (c *Codec) Compress(src []byte) ([]byte, error) {
	compressor := c.compressors.Get().(connect.Compressor)

	out := new(bytes.Buffer)
	compressor.Reset(out)
	if _, err := compressor.Write(src); err != nil {
		_ = compressor.Close()
		return nil, err
	}

	// a failed compressor is not returned to the pool
	if err := compressor.Close(); err != nil {
		return nil, err
	}

	compressor.Reset(io.Discard)
	c.compressors.Put(compressor)
	return out.Bytes(), nil
}

// Decompress returns the decompressed form of src.
func (c *Codec) Decompress(src []byte) ([]byte, error) {
	decompressor := c.decompressors.Get().(connect.Decompressor)
	if err := decompressor.Reset(bytes.NewReader(src)); err != nil {
		_ = decompressor.Close()
		return nil, err
	}

	out, err := io.ReadAll(io.LimitReader(decompressor, MaxDecompressedSize+1))
	if err != nil {
		_ = decompressor.Close()
		return nil, err
	}

	c.decompressors.Put(decompressor)
	if len(out) > MaxDecompressedSize {
		return nil, ErrSizeLimitExceeded
	}
	return out, nil
}

// compressionError is a connect.Compressor which returns err upon first use.
type compressionError struct {
	err error
}

func (c *compressionError) Write([]byte) (int, error) { return 0, c.err }
func (c *compressionError) Reset(io.Writer)           {}
func (c *compressionError) Close() error              { return c.err }
