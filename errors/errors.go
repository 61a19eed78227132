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

package errors

import "errors"

var (
	// ErrNilSerializer is returned when a cross-runtime serializer is created
	// without an inner serializer to delegate to.
	ErrNilSerializer = errors.New("inner serializer is required")

	// ErrNilRewriter is returned when the remote configuration has no rewriter.
	ErrNilRewriter = errors.New("rewriter is required")

	// ErrInvalidCompression is returned when the configured compression is not supported.
	ErrInvalidCompression = errors.New("invalid compression")

	// ErrNilMessage is returned when a nil message is handed to Serialize.
	ErrNilMessage = errors.New("message is nil")

	// ErrEmptyPayload is returned when an empty payload is handed to Deserialize.
	ErrEmptyPayload = errors.New("payload is empty")

	// ErrSerializeFailed wraps failures of the inner serializer on the outbound path.
	ErrSerializeFailed = errors.New("failed to serialize message")

	// ErrDeserializeFailed wraps failures of the inner serializer on the inbound path.
	ErrDeserializeFailed = errors.New("failed to deserialize message")

	// ErrCompressFailed wraps failures compressing an outbound payload.
	ErrCompressFailed = errors.New("failed to compress payload")

	// ErrDecompressFailed wraps failures decompressing an inbound payload.
	ErrDecompressFailed = errors.New("failed to decompress payload")
)
