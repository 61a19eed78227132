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

package metric

import "go.opentelemetry.io/otel/metric"

// Rewrite outcomes reported under the "outcome" attribute.
const (
	OutcomePassthrough = "passthrough"
	OutcomeRewritten   = "rewritten"
)

// RewriteMetric groups the instruments describing rewrite passes.
//
// Instruments:
//   - crossframe.rewrite.count     (Int64Counter, attribute outcome)
//   - crossframe.segments.patched  (Int64Counter)
//   - crossframe.bytes.delta       (Int64Histogram, unit: By)
type RewriteMetric struct {
	rewriteCount    metric.Int64Counter
	segmentsPatched metric.Int64Counter
	bytesDelta      metric.Int64Histogram
}

// NewRewriteMetric creates the rewrite instruments using the provided Meter.
// It returns an error if any instrument cannot be created.
func NewRewriteMetric(meter metric.Meter) (*RewriteMetric, error) {
	var instruments RewriteMetric
	var err error

	if instruments.rewriteCount, err = meter.Int64Counter(
		"crossframe.rewrite.count",
		metric.WithDescription("Total number of payloads handed to the rewriter"),
	); err != nil {
		return nil, err
	}

	if instruments.segmentsPatched, err = meter.Int64Counter(
		"crossframe.segments.patched",
		metric.WithDescription("Total number of type name length prefixes rewritten"),
	); err != nil {
		return nil, err
	}

	if instruments.bytesDelta, err = meter.Int64Histogram(
		"crossframe.bytes.delta",
		metric.WithDescription("Size difference between rewritten and original payloads"),
		metric.WithUnit("By"),
	); err != nil {
		return nil, err
	}

	return &instruments, nil
}

// RewriteCount returns the counter of payloads seen, split by outcome.
func (x *RewriteMetric) RewriteCount() metric.Int64Counter {
	return x.rewriteCount
}

// SegmentsPatched returns the counter of length prefixes rewritten.
func (x *RewriteMetric) SegmentsPatched() metric.Int64Counter {
	return x.segmentsPatched
}

// BytesDelta returns the histogram of payload size changes.
func (x *RewriteMetric) BytesDelta() metric.Int64Histogram {
	return x.bytesDelta
}
