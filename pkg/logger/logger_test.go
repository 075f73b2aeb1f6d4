package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestAnsiToHTML(t *testing.T) {
	t.Run("colors become spans", func(t *testing.T) {
		out := ansiToHTML("\033[32minfo\033[0m done")
		assert.Equal(t, `<pre><span style="color: green;">info</span> done</pre>`, out)
	})

	t.Run("unknown code closes the open span", func(t *testing.T) {
		out := ansiToHTML("\033[31merr\033[35mplain")
		assert.Equal(t, `<pre><span style="color: red;">err</span>plain</pre>`, out)
	})

	t.Run("text is escaped", func(t *testing.T) {
		out := ansiToHTML("a < b & c")
		assert.Equal(t, "<pre>a &lt; b &amp; c</pre>", out)
	})

	t.Run("unterminated span is closed", func(t *testing.T) {
		out := ansiToHTML("\033[36mdebug")
		assert.Equal(t, `<pre><span style="color: cyan;">debug</span></pre>`, out)
	})
}

func TestBufferedLogger(t *testing.T) {
	z := New()
	z.Info("[v] started", zap.Int("sites", 3))
	z.Debug("[v-cull] seed")
	z.Warn("[v] short bisectors")

	raw := z.String()
	assert.Contains(t, raw, "[v] started")
	assert.Contains(t, raw, "sites")
	assert.Contains(t, raw, "[v-cull] seed")

	page := z.HTML()
	assert.True(t, strings.HasPrefix(page, "<pre>"))
	assert.Contains(t, page, `<span style="color: green;">info</span>`)
	assert.Contains(t, page, `<span style="color: yellow;">warn</span>`)

	z.ClearLogs()
	assert.Empty(t, z.String())
	assert.Equal(t, "<pre></pre>", z.HTML())
}

func TestConsoleLogger(t *testing.T) {
	var buf bytes.Buffer
	z := NewConsole(&buf, zapcore.InfoLevel)
	z.Debug("hidden")
	z.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Empty(t, z.HTML())
}

func TestNopLogger(t *testing.T) {
	z := NewNop()
	assert.NotPanics(t, func() {
		z.Info("x")
		z.Debug("x")
		z.Warn("x")
		z.Error("x")
		z.ClearLogs()
	})
	assert.Empty(t, z.String())
	assert.Empty(t, z.HTML())
}
