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
	gerrors "github.com/tochemey/crossframe/errors"
	"github.com/tochemey/crossframe/internal/validation"
	"github.com/tochemey/crossframe/log"
	"github.com/tochemey/crossframe/rewriter"
)

// Config defines the cross-runtime serializer configuration.
type Config struct {
	compression     Compression
	outboundRewrite bool
	rewriter        *rewriter.Rewriter
	logger          log.Logger
}

var _ validation.Validator = (*Config)(nil)

// NewConfig returns a Config initialized with the defaults and the supplied
// options: no compression, inbound rewriting with rewriter.Default() and no
// outbound rewriting.
func NewConfig(opts ...Option) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt.Apply(cfg)
	}
	return cfg
}

// DefaultConfig returns the default config
func DefaultConfig() *Config {
	return &Config{
		compression: NoCompression,
		rewriter:    rewriter.Default(),
		logger:      log.DiscardLogger,
	}
}

// Compression returns the compression algorithm to use
func (x *Config) Compression() Compression {
	return x.compression
}

// OutboundRewrite reports whether outbound payloads are rewritten
func (x *Config) OutboundRewrite() bool {
	return x.outboundRewrite
}

// Rewriter returns the inbound rewriter
func (x *Config) Rewriter() *rewriter.Rewriter {
	return x.rewriter
}

// Logger returns the logger
func (x *Config) Logger() log.Logger {
	return x.logger
}

// Validate checks the configuration and returns every violation found.
func (x *Config) Validate() error {
	return validation.New(validation.AllErrors()).
		AddCheck(x.compression.valid(), gerrors.ErrInvalidCompression).
		AddCheck(x.rewriter != nil, gerrors.ErrNilRewriter).
		Validate()
}
