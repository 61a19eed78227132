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

import (
	"fmt"

	gerrors "github.com/tochemey/crossframe/errors"
	"github.com/tochemey/crossframe/internal/compression"
	"github.com/tochemey/crossframe/log"
	"github.com/tochemey/crossframe/rewriter"
)

// CrossRuntimeSerializer decorates a Serializer bound to the local runtime
// flavor so that it accepts payloads produced under the other flavor.
//
// Inbound payloads are decompressed, rewritten and handed to the inner
// serializer. Outbound payloads are serialized, optionally rewritten for the
// peer's flavor (see WithOutboundRewrite) and compressed.
//
// CrossRuntimeSerializer is safe for concurrent use when the inner
// serializer is.
type CrossRuntimeSerializer struct {
	inner    Serializer
	inbound  *rewriter.Rewriter
	outbound *rewriter.Rewriter
	codec    *compression.Codec
	logger   log.Logger
}

var _ Serializer = (*CrossRuntimeSerializer)(nil)

// NewCrossRuntimeSerializer creates a CrossRuntimeSerializer delegating to inner.
func NewCrossRuntimeSerializer(inner Serializer, opts ...Option) (*CrossRuntimeSerializer, error) {
	if inner == nil {
		return nil, gerrors.ErrNilSerializer
	}

	config := NewConfig(opts...)
	if err := config.Validate(); err != nil {
		return nil, err
	}

	serializer := &CrossRuntimeSerializer{
		inner:   inner,
		inbound: config.Rewriter(),
		codec:   config.Compression().codec(),
		logger:  config.Logger(),
	}

	if config.OutboundRewrite() {
		serializer.outbound = rewriter.New(
			rewriter.WithProfile(config.Rewriter().Profile().Inverse()),
			rewriter.WithLogger(config.Logger()),
		)
	}

	return serializer, nil
}

// Serialize encodes message with the inner serializer.
func (x *CrossRuntimeSerializer) Serialize(message any) ([]byte, error) {
	if message == nil {
		return nil, gerrors.ErrNilMessage
	}

	payload, err := x.inner.Serialize(message)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", gerrors.ErrSerializeFailed, err)
	}

	if x.outbound != nil {
		payload = x.rewrite(x.outbound, payload)
	}

	if x.codec != nil {
		compressed, err := x.codec.Compress(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", gerrors.ErrCompressFailed, err)
		}
		payload = compressed
	}

	return payload, nil
}

// Deserialize decodes data with the inner serializer once it has been
// rewritten for the local runtime flavor.
func (x *CrossRuntimeSerializer) Deserialize(data []byte) (any, error) {
	if len(data) == 0 {
		return nil, gerrors.ErrEmptyPayload
	}

	payload := data
	if x.codec != nil {
		decompressed, err := x.codec.Decompress(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", gerrors.ErrDecompressFailed, err)
		}
		payload = decompressed
	}

	message, err := x.inner.Deserialize(x.rewrite(x.inbound, payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", gerrors.ErrDeserializeFailed, err)
	}
	return message, nil
}

func (x *CrossRuntimeSerializer) rewrite(rewriter *rewriter.Rewriter, payload []byte) []byte {
	out := rewriter.Rewrite(payload)
	if x.logger.Enabled(log.DebugLevel) && len(out) != len(payload) {
		x.logger.Debugf("rewrote %d byte payload (%s) to %d bytes", len(payload), rewriter.Profile(), len(out))
	}
	return out
}
