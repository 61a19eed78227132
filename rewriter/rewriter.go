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

// Package rewriter repairs serialized payloads produced by one runtime flavor
// so that the other flavor can deserialize them.
//
// The wire format embeds assembly-qualified type names, each preceded by a
// 4-byte little-endian length. Payloads from the other flavor reference its
// core-library assembly, which the local deserializer cannot resolve. A
// rewrite pass runs in two phases:
//
//  1. Every embedded type name is located and its length prefix is corrected
//     for the substitutions about to happen inside it.
//  2. The old tokens are replaced across the whole buffer.
//
// The second phase is global: matching bytes outside type names
// are rewritten too.
package rewriter

import (
	"bytes"
	"context"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	otelmetric "go.opentelemetry.io/otel/metric"

	"github.com/tochemey/crossframe/flavor"
	"github.com/tochemey/crossframe/internal/bufferpool"
	"github.com/tochemey/crossframe/internal/dynamic"
	"github.com/tochemey/crossframe/internal/metric"
	"github.com/tochemey/crossframe/internal/replace"
	"github.com/tochemey/crossframe/internal/segment"
	"github.com/tochemey/crossframe/log"
)

var (
	passthroughOpts = []otelmetric.AddOption{otelmetric.WithAttributeSet(attribute.NewSet(attribute.String("outcome", metric.OutcomePassthrough)))}
	rewrittenOpts   = []otelmetric.AddOption{otelmetric.WithAttributeSet(attribute.NewSet(attribute.String("outcome", metric.OutcomeRewritten)))}
)

// Rewriter rewrites payloads toward the target flavor of its profile.
// A Rewriter is safe for concurrent use.
type Rewriter struct {
	profile       flavor.Profile
	assembly      segment.Pair
	logger        log.Logger
	cell          *dynamic.Cell
	meterProvider otelmetric.MeterProvider
	metrics       *metric.RewriteMetric
}

// New creates a Rewriter. Without options it rewrites toward the flavor of
// the running process, logs nothing and records no metrics.
func New(opts ...Option) *Rewriter {
	r := &Rewriter{
		profile: flavor.Current(),
		logger:  log.DiscardLogger,
		cell:    dynamic.NewCell(),
	}

	for _, opt := range opts {
		opt.Apply(r)
	}

	r.assembly = segment.Pair{
		Old: r.profile.OldAssemblyToken(),
		New: r.profile.NewAssemblyToken(),
	}

	if r.meterProvider != nil {
		provider := metric.New(metric.WithMeterProvider(r.meterProvider))
		instruments, err := metric.NewRewriteMetric(provider.Meter())
		if err != nil {
			r.logger.Warnf("rewrite metrics disabled: %v", err)
		} else {
			r.metrics = instruments
		}
	}

	return r
}

// Profile returns the rewrite direction.
func (r *Rewriter) Profile() flavor.Profile {
	return r.profile
}

// Rewrite returns buf ready for a deserializer of the target flavor.
//
// When buf does not reference the other flavor's core library it is returned
// as is, without allocating. Otherwise a new buffer is returned and buf is
// left untouched.
func (r *Rewriter) Rewrite(buf []byte) []byte {
	if !bytes.Contains(buf, r.assembly.Old) {
		r.recordPassthrough()
		return buf
	}

	scratch := bufferpool.Pool.Copy(buf)
	defer bufferpool.Pool.Put(scratch)

	work := scratch.Bytes()
	patched, dynamicSeen := r.repairLengths(work)

	pairs := make([]segment.Pair, 1, 2)
	pairs[0] = r.assembly
	if dynamicSeen {
		if token := r.cell.Load(); len(token) > 0 {
			pairs = append(pairs, segment.Pair{Old: token, New: dynamic.LegacyToken})
		}
	}

	out := replace.All(work, pairs...)
	r.recordRewrite(patched, len(out)-len(buf))
	return out
}

// repairLengths corrects, in place, the length prefix of every type name in
// work for the substitutions the replace phase will perform. It returns the
// number of prefixes written and whether a dynamic-object name was met.
func (r *Rewriter) repairLengths(work []byte) (patched int, dynamicSeen bool) {
	debug := r.logger.Enabled(log.DebugLevel)
	for start := range segment.Locate(work) {
		seg := segment.At(work, start)
		if seg.Clamped() && debug {
			r.logger.Debugf("type name at offset %d declares %d bytes but only %d remain", start, seg.DeclaredLength, len(seg.Content))
		}

		// both deltas are taken against the original content
		_, delta := r.assembly.Delta(seg.Content)
		if r.profile.DynamicEnabled() {
			if occurrences := bytes.Count(seg.Content, dynamic.Marker); occurrences > 0 {
				dynamicSeen = true
				if token := r.cell.Discover(seg.Content); len(token) > 0 {
					delta += occurrences * (len(dynamic.LegacyToken) - len(token))
				}
			}
		}

		corrected, write := segment.Corrected(seg.DeclaredLength, delta)
		if !write {
			continue
		}

		segment.WriteLength(work, start, corrected)
		patched++
		if debug {
			r.logger.Debugf("type name at offset %d: length %d -> %d", start, seg.DeclaredLength, corrected)
		}
	}
	return patched, dynamicSeen
}

func (r *Rewriter) recordPassthrough() {
	if r.metrics == nil {
		return
	}
	r.metrics.RewriteCount().Add(context.Background(), 1, passthroughOpts...)
}

func (r *Rewriter) recordRewrite(patched, delta int) {
	if r.metrics == nil {
		return
	}
	ctx := context.Background()
	r.metrics.RewriteCount().Add(ctx, 1, rewrittenOpts...)
	r.metrics.SegmentsPatched().Add(ctx, int64(patched))
	r.metrics.BytesDelta().Record(ctx, int64(delta))
}

var defaultRewriter = sync.OnceValue(func() *Rewriter {
	return New()
})

// Default returns the process-wide Rewriter targeting flavor.Current().
func Default() *Rewriter {
	return defaultRewriter()
}

// Rewrite rewrites buf with the process-wide Rewriter.
func Rewrite(buf []byte) []byte {
	return Default().Rewrite(buf)
}
