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
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tochemey/crossframe/flavor"
	"github.com/tochemey/crossframe/log"
)

func TestRewrite(t *testing.T) {
	toModern := New(WithProfile(flavor.NewProfile(flavor.Modern)))
	toLegacy := New(WithProfile(flavor.NewProfile(flavor.Legacy)))

	t.Run("Returns the input when no old token is present", func(t *testing.T) {
		buf := new(payload).
			raw(0xA1).
			typeName("Acme.Orders.Created, Acme.Orders").
			raw(0x07, 0x05).text("key1").
			bytes()
		out := toModern.Rewrite(buf)
		require.Equal(t, buf, out)
		assert.True(t, &buf[0] == &out[0])
	})

	t.Run("Returns the input when it already targets the local flavor", func(t *testing.T) {
		buf := new(payload).typeName("System.String, " + modernToken).bytes()
		out := toModern.Rewrite(buf)
		assert.True(t, &buf[0] == &out[0])
	})

	t.Run("Does not allocate when there is nothing to rewrite", func(t *testing.T) {
		buf := new(payload).typeName("Acme.Orders.Created, Acme.Orders").raw(0x01, 0x00).bytes()
		allocs := testing.AllocsPerRun(100, func() {
			_ = toModern.Rewrite(buf)
		})
		assert.Zero(t, allocs)
	})

	t.Run("Handles nil and empty buffers", func(t *testing.T) {
		assert.Nil(t, toModern.Rewrite(nil))
		assert.Empty(t, toModern.Rewrite([]byte{}))
	})

	t.Run("Corrects a legacy type name for a modern host", func(t *testing.T) {
		name := "System.Collections.Generic.List`1[[Acme.Orders.Order, Acme.Orders]], mscorlib,%core%"
		require.Len(t, name, 84)

		buf := new(payload).raw(0x0A).typeName(name).raw(0x01, 0x00, 0x00, 0x00).bytes()
		out := toModern.Rewrite(buf)

		expected := strings.Replace(name, legacyToken, modernToken, 1)
		assert.EqualValues(t, 84+(len(modernToken)-len(legacyToken)), lengthAt(out, 5))
		assert.EqualValues(t, 98, lengthAt(out, 5))
		assert.Equal(t, expected, string(out[5:5+98]))
		assert.Equal(t, []byte{0x01, 0x00, 0x00, 0x00}, out[5+98:])
	})

	t.Run("Corrects a modern type name for a legacy host", func(t *testing.T) {
		name := "System.Collections.DictionaryEntry, " + modernToken + ",%core%"
		buf := new(payload).typeName(name).text("value1").bytes()
		out := toLegacy.Rewrite(buf)

		expected := strings.ReplaceAll(name, modernToken, legacyToken)
		assert.EqualValues(t, len(expected), lengthAt(out, 4))
		assert.Equal(t, expected+"value1", string(out[4:]))
	})

	t.Run("Counts every occurrence within a type name", func(t *testing.T) {
		name := "System.Collections.Generic.Dictionary`2[[System.String, mscorlib,%core%],[System.String, mscorlib,%core%]], mscorlib,%core%"
		buf := new(payload).raw(0xB9).typeName(name).bytes()
		out := toModern.Rewrite(buf)

		expected := strings.ReplaceAll(name, legacyToken, modernToken)
		assert.EqualValues(t, len(expected), lengthAt(out, 5))
		assert.Equal(t, expected, string(out[5:]))
	})

	t.Run("Corrects each type name independently", func(t *testing.T) {
		first := "System.Collections.Generic.List`1[[System.String, mscorlib,%core%]], mscorlib,%core%"
		second := "System.Collections.DictionaryEntry, mscorlib,%core%"
		third := "System.Guid, Acme"
		buf := new(payload).
			raw(0x01).typeName(first).
			raw(0x07, 0x05).text("test1").
			raw(0x02).typeName(second).
			raw(0x03).typeName(third).
			bytes()

		out := toModern.Rewrite(buf)
		expected := new(payload).
			raw(0x01).typeName(strings.ReplaceAll(first, legacyToken, modernToken)).
			raw(0x07, 0x05).text("test1").
			raw(0x02).typeName(strings.ReplaceAll(second, legacyToken, modernToken)).
			raw(0x03).typeName(third).
			bytes()
		assert.Equal(t, expected, out)
	})

	t.Run("Leaves the input untouched", func(t *testing.T) {
		buf := new(payload).typeName("System.Int32, mscorlib").bytes()
		original := bytes.Clone(buf)
		out := toModern.Rewrite(buf)
		assert.Equal(t, original, buf)
		assert.NotEqual(t, buf, out)
	})

	t.Run("Replaces tokens outside type names", func(t *testing.T) {
		buf := new(payload).
			typeName("System.String, mscorlib").
			raw(0x07, 0x08).text("mscorlib").
			raw(0xFF).text("a mscorlib b").
			bytes()
		require.Equal(t, 3, bytes.Count(buf, []byte(legacyToken)))

		out := toModern.Rewrite(buf)
		assert.Zero(t, bytes.Count(out, []byte(legacyToken)))
		assert.Equal(t, 3, bytes.Count(out, []byte(modernToken)))
		assert.EqualValues(t, len("System.String, "+modernToken), lengthAt(out, 4))
	})

	t.Run("Replaces tokens when no type name was located", func(t *testing.T) {
		buf := []byte("\x07\x08mscorlib")
		out := toModern.Rewrite(buf)
		assert.Equal(t, "\x07\x08"+modernToken, string(out))
	})

	t.Run("Is idempotent", func(t *testing.T) {
		buf := new(payload).typeName("System.Int64, mscorlib").raw(0x08).bytes()
		once := toModern.Rewrite(buf)
		twice := toModern.Rewrite(once)
		assert.Equal(t, once, twice)
		assert.True(t, &once[0] == &twice[0])
	})

	t.Run("Wraps corrected lengths past 255", func(t *testing.T) {
		name := padded(t, "System.String, mscorlib,", 250)
		buf := new(payload).typeName(name).bytes()
		out := toModern.Rewrite(buf)

		// 250 + 14 = 264 does not fit the 8-bit counter
		assert.EqualValues(t, 8, lengthAt(out, 4))
		assert.Len(t, out, 4+264)
	})

	t.Run("Truncates declared lengths above 255", func(t *testing.T) {
		long := padded(t, "System.Acme.Payload,", 300)
		buf := new(payload).typeName(long).text(" mscorlib").bytes()
		out := toModern.Rewrite(buf)
		assert.EqualValues(t, 44, lengthAt(out, 4))
	})

	t.Run("Tolerates declared lengths overrunning the buffer", func(t *testing.T) {
		buf := new(payload).typeNameWithLength("System.String, mscorlib", 200).bytes()
		var out []byte
		require.NotPanics(t, func() { out = toModern.Rewrite(buf) })
		assert.EqualValues(t, 214, lengthAt(out, 4))
	})

	t.Run("Treats marker bytes in opaque data as a type name", func(t *testing.T) {
		buf := new(payload).
			typeName("System.Int32, mscorlib").
			raw(0x05, 0x00, 0x00, 0x00).text("System").
			bytes()
		out := toModern.Rewrite(buf)
		// the opaque run is taken for a 5 byte type name and left unchanged
		assert.EqualValues(t, 5, lengthAt(out, len(out)-len("System")))
	})
}

func TestRewriteDynamicObject(t *testing.T) {
	t.Run("Rewrites the discovered name for a legacy host", func(t *testing.T) {
		rewriter := New(WithProfile(flavor.NewProfile(flavor.Legacy)))
		name := "System.Collections.Generic.List`1[[" + modernExpando + "]], " + modernToken
		buf := new(payload).raw(0x01).typeName(name).raw(0x00).bytes()

		out := rewriter.Rewrite(buf)
		expected := strings.ReplaceAll(strings.ReplaceAll(name, modernToken, legacyToken), modernExpando, legacyExpando)
		assert.EqualValues(t, len(expected), lengthAt(out, 5))
		assert.Equal(t, expected, string(out[5:len(out)-1]))
		assert.Equal(t, modernExpando, string(rewriter.cell.Load()))
	})

	t.Run("Reuses the discovered name", func(t *testing.T) {
		rewriter := New(WithProfile(flavor.NewProfile(flavor.Legacy)))
		first := new(payload).typeName(modernExpando + ", " + modernToken).bytes()
		_ = rewriter.Rewrite(first)

		second := new(payload).
			typeName("System.Object, " + modernToken).
			typeName(modernExpando).
			bytes()
		out := rewriter.Rewrite(second)
		assert.NotContains(t, string(out), modernExpando)
		assert.Contains(t, string(out), legacyExpando)
	})

	t.Run("Skips names it cannot parse", func(t *testing.T) {
		rewriter := New(WithProfile(flavor.NewProfile(flavor.Legacy)))
		name := "System.Dynamic.ExpandoObject, System.Linq.Expressions, " + modernToken
		buf := new(payload).typeName(name).bytes()

		out := rewriter.Rewrite(buf)
		expected := strings.ReplaceAll(name, modernToken, legacyToken)
		assert.EqualValues(t, len(expected), lengthAt(out, 4))
		assert.Equal(t, expected, string(out[4:]))
		assert.Nil(t, rewriter.cell.Load())
	})

	t.Run("Is not rewritten for a modern host", func(t *testing.T) {
		rewriter := New(WithProfile(flavor.NewProfile(flavor.Modern)))
		name := "System.Collections.Generic.List`1[[" + modernExpando + "]], mscorlib"
		buf := new(payload).typeName(name).bytes()

		out := rewriter.Rewrite(buf)
		assert.Contains(t, string(out), modernExpando)
		assert.Nil(t, rewriter.cell.Load())
	})
}

func TestRewriteConcurrently(t *testing.T) {
	rewriter := New(WithProfile(flavor.NewProfile(flavor.Legacy)))
	buf := new(payload).
		typeName("System.Collections.Generic.List`1[[" + modernExpando + "]], " + modernToken).
		typeName("System.String, " + modernToken).
		bytes()
	expected := New(WithProfile(flavor.NewProfile(flavor.Legacy))).Rewrite(buf)

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, expected, rewriter.Rewrite(buf))
		}()
	}
	wg.Wait()
}

func TestRewriteLogsPatchedSegments(t *testing.T) {
	buffer := new(bytes.Buffer)
	rewriter := New(
		WithProfile(flavor.NewProfile(flavor.Modern)),
		WithLogger(log.NewZap(log.DebugLevel, buffer)),
	)

	_ = rewriter.Rewrite(new(payload).typeName("System.Int32, mscorlib").bytes())
	assert.Contains(t, buffer.String(), "length 22 -> 36")
}

func TestNew(t *testing.T) {
	rewriter := New(WithLogger(nil))
	assert.Equal(t, flavor.Current(), rewriter.Profile())
	assert.Equal(t, log.DiscardLogger, rewriter.logger)
	assert.Nil(t, rewriter.metrics)
}

func TestDefault(t *testing.T) {
	assert.Same(t, Default(), Default())
	assert.Equal(t, flavor.Current(), Default().Profile())

	buf := []byte("no runtime reference")
	out := Rewrite(buf)
	assert.True(t, &buf[0] == &out[0])
}
