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

package log

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	Level   string `json:"level"`
	Message string `json:"msg"`
}

func decode(t *testing.T, buffer *bytes.Buffer) entry {
	t.Helper()
	var e entry
	require.NoError(t, json.Unmarshal(buffer.Bytes(), &e))
	return e
}

func TestZap(t *testing.T) {
	t.Run("With debug level", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(DebugLevel, buffer)
		require.Equal(t, DebugLevel, logger.LogLevel())

		logger.Debugf("patched %d type names", 2)
		e := decode(t, buffer)
		assert.Equal(t, "patched 2 type names", e.Message)
		assert.Equal(t, DebugLevel.String(), e.Level)
	})
	t.Run("With info level", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(InfoLevel, buffer)
		require.Equal(t, InfoLevel, logger.LogLevel())

		logger.Debug("hidden")
		assert.Zero(t, buffer.Len())
		assert.False(t, logger.Enabled(DebugLevel))
		assert.True(t, logger.Enabled(ErrorLevel))

		logger.Info("visible")
		e := decode(t, buffer)
		assert.Equal(t, "visible", e.Message)
		assert.Equal(t, InfoLevel.String(), e.Level)
	})
	t.Run("With warn level", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(WarningLevel, buffer)
		require.Equal(t, WarningLevel, logger.LogLevel())

		logger.Info("hidden")
		logger.Warnf("probe failed: %s", "boom")
		e := decode(t, buffer)
		assert.Equal(t, "probe failed: boom", e.Message)
		assert.Equal(t, WarningLevel.String(), e.Level)
	})
	t.Run("With error level", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(ErrorLevel, buffer)
		require.Equal(t, ErrorLevel, logger.LogLevel())

		logger.Warn("hidden")
		logger.Errorf("failed %s", "rewrite")
		e := decode(t, buffer)
		assert.Equal(t, "failed rewrite", e.Message)
		assert.Equal(t, ErrorLevel.String(), e.Level)
	})
	t.Run("LogOutput", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(InfoLevel, buffer)
		assert.Equal(t, []io.Writer{buffer}, logger.LogOutput())
		assert.NoError(t, logger.Flush())
	})
	t.Run("Buffers file outputs until Flush", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "crossframe.log")
		file, err := os.Create(path)
		require.NoError(t, err)
		t.Cleanup(func() { _ = file.Close() })

		logger := NewZap(InfoLevel, file)
		logger.Info("buffered")
		require.NoError(t, logger.Flush())

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "buffered")
	})
}

func TestZapWith(t *testing.T) {
	t.Run("Adds structured fields", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(InfoLevel, buffer)
		logger.With("flavor", "modern", "segments", 3, "orphan").Info("rewritten")

		var m map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(buffer.Bytes(), &m))
		assert.Contains(t, m, "flavor")
		assert.Contains(t, m, "segments")
		assert.Contains(t, m, "_")
	})
	t.Run("Returns the same logger without fields", func(t *testing.T) {
		logger := NewZap(InfoLevel, new(bytes.Buffer))
		assert.Equal(t, Logger(logger), logger.With())
		assert.Equal(t, Logger(logger), logger.With(42, "ignored"))
	})
}

func TestDiscardLogger(t *testing.T) {
	assert.False(t, DiscardLogger.Enabled(ErrorLevel))
	assert.Equal(t, DiscardLogger, DiscardLogger.With("k", "v"))
	assert.Equal(t, InfoLevel, DiscardLogger.LogLevel())
	assert.NoError(t, DiscardLogger.Flush())
	assert.Len(t, DiscardLogger.LogOutput(), 1)
	assert.NotPanics(t, func() {
		DiscardLogger.Debugf("x %d", 1)
		DiscardLogger.Error("x")
	})
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "info", InfoLevel.String())
	assert.Equal(t, "debug", DebugLevel.String())
	assert.Equal(t, "invalid", Level(42).String())
}
