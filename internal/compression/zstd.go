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
	"github.com/klauspost/compress/zstd"
)

// ZstdName is the identifier of Zstandard compression.
const ZstdName = "zstd"

var zstdCodec = newCodec(ZstdName, newZstdCompressor, newZstdDecompressor)

// Zstd returns the shared Zstandard codec.
func Zstd() *Codec {
	return zstdCodec
}

// Both directions run on the calling goroutine so pooled codecs never own
// background workers.
func newZstdEncoder(w io.Writer) (*zstd.Encoder, error) {
	return zstd.NewWriter(w,
		zstd.WithEncoderLevel(zstd.SpeedFastest),
		zstd.WithEncoderConcurrency(1),
		zstd.WithLowerEncoderMem(true),
	)
}

func newZstdDecoder(r io.Reader) (*zstd.Decoder, error) {
	return zstd.NewReader(r,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderLowmem(true),
		zstd.WithDecoderMaxMemory(MaxDecompressedSize),
	)
}

func newZstdCompressor() connect.Compressor {
	encoder, err := newZstdEncoder(nil)
	if err != nil {
		return &compressionError{err: err}
	}
	return encoder
}

func newZstdDecompressor() connect.Decompressor {
	return &zstdDecompressor{}
}

// zstdDecompressor adapts zstd.Decoder to connect.Decompressor.
// The decoder is created on first Reset and dropped on Close.
type zstdDecompressor struct {
	decoder *zstd.Decoder
}

func (d *zstdDecompressor) Read(p []byte) (int, error) {
	if d.decoder == nil {
		return 0, io.EOF
	}
	return d.decoder.Read(p)
}

func (d *zstdDecompressor) Reset(r io.Reader) error {
	if d.decoder == nil {
		var err error
		d.decoder, err = newZstdDecoder(r)
		return err
	}
	return d.decoder.Reset(r)
}

func (d *zstdDecompressor) Close() error {
	if d.decoder == nil {
		return nil
	}
	// zstd.Decoder cannot be re-used after close, even via Reset
	d.decoder.Close()
	d.decoder = nil
	return nil
}
