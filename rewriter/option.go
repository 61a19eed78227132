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

package rewriter

import (
	"go.opentelemetry.io/otel/metric"

	"github.com/tochemey/crossframe/flavor"
	"github.com/tochemey/crossframe/log"
)

// Option is the interface that applies a Rewriter option.
type Option interface {
	// Apply sets the Option value of a Rewriter.
	Apply(*Rewriter)
}

// enforce compilation error
var _ Option = OptionFunc(nil)

// OptionFunc implements the Option interface.
type OptionFunc func(*Rewriter)

// Apply applies the option to the Rewriter
func (f OptionFunc) Apply(r *Rewriter) {
	f(r)
}

// WithProfile sets the rewrite direction. Defaults to flavor.Current().
func WithProfile(profile flavor.Profile) Option {
	return OptionFunc(func(r *Rewriter) {
		r.profile = profile
	})
}

// WithLogger sets the logger. Defaults to log.DiscardLogger.
func WithLogger(logger log.Logger) Option {
	return OptionFunc(func(r *Rewriter) {
		if logger != nil {
			r.logger = logger
		}
	})
}

// WithMeterProvider enables rewrite metrics recorded through provider.
// Metrics are disabled unless this option is set.
func WithMeterProvider(provider metric.MeterProvider) Option {
	return OptionFunc(func(r *Rewriter) {
		r.meterProvider = provider
	})
}
