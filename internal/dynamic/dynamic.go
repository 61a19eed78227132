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

// Package dynamic discovers the assembly-qualified name of the dynamic-object
// type embedded by modern runtimes. Its version and public key token depend on
// the installed package, so the exact bytes are read from the payload the
// first time they are seen and cached for later replacements.
package dynamic

import (
	"regexp"

	"go.uber.org/atomic"
)

var (
	// Marker is the stable prefix identifying the modern dynamic-object type
	// regardless of its version.
	Marker = []byte("System.Dynamic.ExpandoObject, System.Linq.Expressions")

	// LegacyToken is the assembly-qualified name of the dynamic-object type on
	// the legacy runtime.
	LegacyToken = []byte("System.Dynamic.ExpandoObject, System.Core, Version=4.0.0.0, Culture=neutral, PublicKeyToken=b77a5c561934e089")

	modernPattern = regexp.MustCompile(
		`System\.Dynamic\.ExpandoObject, System\.Linq\.Expressions, Version=[0-9]+\.[0-9]+\.[0-9]+\.[0-9]+(?:, Culture=[^,\]]*)?, PublicKeyToken=[a-zA-Z0-9]*`,
	)
)

// Extract returns the first modern dynamic-object name found in content, or
// nil when there is none. The returned slice does not alias content.
func Extract(content []byte) []byte {
	match := modernPattern.Find(content)
	if match == nil {
		return nil
	}
	return append([]byte(nil), match...)
}

// Cell holds the discovered dynamic-object name. It is empty until the first
// successful extraction and never changes afterwards. A Cell is safe for
// concurrent use; racing discoveries extract identical bytes and the first
// store wins.
type Cell struct {
	token atomic.Pointer[[]byte]
}

// NewCell creates an empty Cell.
func NewCell() *Cell {
	return &Cell{}
}

// Load returns the discovered name, or nil when nothing has been discovered yet.
func (c *Cell) Load() []byte {
	if token := c.token.Load(); token != nil {
		return *token
	}
	return nil
}

// Discover returns the cached name, extracting it from content when the cell
// is still empty. It returns nil when content holds no match, leaving the cell
// empty for a later attempt.
func (c *Cell) Discover(content []byte) []byte {
	if token := c.Load(); token != nil {
		return token
	}

	found := Extract(content)
	if found == nil {
		return nil
	}

	c.token.CompareAndSwap(nil, &found)
	return c.Load()
}
