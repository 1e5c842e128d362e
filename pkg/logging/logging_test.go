package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefixWriter(t *testing.T) {
	var buf bytes.Buffer
	pw := NewPrefixWriter("> ", &buf)

	n, err := pw.Write([]byte("one\ntw"))
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Equal(t, "> one\n", buf.String())

	_, err = pw.Write([]byte("o\nthree"))
	require.NoError(t, err)
	assert.Equal(t, "> one\n> two\n", buf.String())

	require.NoError(t, pw.Flush())
	assert.Equal(t, "> one\n> two\n> three", buf.String())
	require.NoError(t, pw.Flush())
	assert.Equal(t, "> one\n> two\n> three", buf.String())
}

func TestGetLogLevel(t *testing.T) {
	t.Setenv("BOXNAMES_LOG_LEVEL", "")
	assert.Equal(t, "warn", GetLogLevel())

	t.Setenv("BOXNAMES_LOG_LEVEL", "debug")
	assert.Equal(t, "debug", GetLogLevel())
}

func TestNewLogger(t *testing.T) {
	t.Setenv("BOXNAMES_JSON_LOG", "")
	var buf bytes.Buffer
	logger := NewLogger("test", "info", &buf)

	logger.Debug("hidden")
	logger.Info("🧪 visible", "box", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.True(t, strings.HasPrefix(out, "🎮 "))
	assert.Contains(t, out, "test: 🧪 visible: box=3")
}

func TestNewLoggerJSON(t *testing.T) {
	t.Setenv("BOXNAMES_JSON_LOG", "1")
	var buf bytes.Buffer
	NewLogger("test", "info", &buf).Info("loaded", "boxes", 14)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "{"))
	assert.Contains(t, out, `"boxes":14`)
}
