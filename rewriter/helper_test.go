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
	"encoding/binary"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	legacyToken = "mscorlib"
	modernToken = "System.Private.CoreLib"
	// modernExpando is how a modern host names the dynamic-object type.
	modernExpando = "System.Dynamic.ExpandoObject, System.Linq.Expressions, Version=4.2.2.0, PublicKeyToken=b03f5f7f11d50a3a"
	legacyExpando = "System.Dynamic.ExpandoObject, System.Core, Version=4.0.0.0, Culture=neutral, PublicKeyToken=b77a5c561934e089"
)

// payload assembles a buffer from raw byte runs and length-prefixed type names.
type payload struct {
	buf []byte
}

func (p *payload) typeName(name string) *payload {
	return p.typeNameWithLength(name, uint32(len(name)))
}

func (p *payload) typeNameWithLength(name string, length uint32) *payload {
	p.buf = binary.LittleEndian.AppendUint32(p.buf, length)
	p.buf = append(p.buf, name...)
	return p
}

func (p *payload) raw(b ...byte) *payload {
	p.buf = append(p.buf, b...)
	return p
}

func (p *payload) text(s string) *payload {
	p.buf = append(p.buf, s...)
	return p
}

func (p *payload) bytes() []byte {
	return p.buf
}

// lengthAt reads the length prefix of the type name starting at start.
func lengthAt(buf []byte, start int) uint32 {
	return binary.LittleEndian.Uint32(buf[start-4 : start])
}

// padded returns prefix extended with filler bytes to exactly size bytes.
func padded(t *testing.T, prefix string, size int) string {
	t.Helper()
	require.LessOrEqual(t, len(prefix), size)
	return prefix + strings.Repeat("a", size-len(prefix))
}
