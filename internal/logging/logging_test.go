package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Formats(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		New(Config{Level: slog.LevelInfo, Format: FormatJSON, Output: &buf}).
			Info("loaded section", "kind", "works", "entries", 3)

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "loaded section", rec["msg"])
		assert.Equal(t, "INFO", rec["level"])
		assert.Equal(t, "works", rec["kind"])
		assert.EqualValues(t, 3, rec["entries"])
	})

	for _, format := range []Format{FormatText, Format("xml")} {
		t.Run("text/"+string(format), func(t *testing.T) {
			var buf bytes.Buffer
			New(Config{Level: slog.LevelInfo, Format: format, Output: &buf}).
				Info("loaded section", "kind", "works", "draft", true)

			out := buf.String()
			assert.False(t, json.Valid(buf.Bytes()))
			assert.Contains(t, out, "INFO")
			assert.Contains(t, out, "loaded section")
			assert.Contains(t, out, "kind=works")
			assert.Contains(t, out, "draft=true")
		})
	}
}

func TestNew_NilOutput(t *testing.T) {
	assert.NotNil(t, New(Config{Format: FormatText}))
	assert.NotNil(t, Default())
	assert.NotPanics(t, func() { NewDiscard().Error("dropped") })
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		name   string
		config slog.Level
		record slog.Level
		want   bool
	}{
		{"warn at default", slog.LevelWarn, slog.LevelWarn, true},
		{"info hidden at default", slog.LevelWarn, slog.LevelInfo, false},
		{"debug at debug", slog.LevelDebug, slog.LevelDebug, true},
		{"trace hidden at debug", slog.LevelDebug, LevelTrace, false},
		{"trace at trace", LevelTrace, LevelTrace, true},
		{"error hidden above error", slog.LevelError + 4, slog.LevelError, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(Config{Level: tt.config, Output: &buf})
			logger.Log(t.Context(), tt.record, "skipping entry", "slug", "desk")
			assert.Equal(t, tt.want, buf.Len() > 0, buf.String())
		})
	}
}

func TestLevelFromVerbosity(t *testing.T) {
	tests := []struct {
		v    int
		want slog.Level
	}{
		{-1, slog.LevelWarn},
		{0, slog.LevelWarn},
		{1, slog.LevelInfo},
		{2, slog.LevelDebug},
		{3, LevelTrace},
		{9, LevelTrace},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelFromVerbosity(tt.v), "verbosity %d", tt.v)
	}
	assert.Less(t, LevelTrace, slog.LevelDebug)
}

func TestParseFormat(t *testing.T) {
	f, ok := ParseFormat("json")
	assert.True(t, ok)
	assert.Equal(t, FormatJSON, f)

	f, ok = ParseFormat("text")
	assert.True(t, ok)
	assert.Equal(t, FormatText, f)

	_, ok = ParseFormat("JSON")
	assert.False(t, ok)
}

func TestNew_File(t *testing.T) {
	var console, file bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelWarn,
		Format: FormatText,
		Output: &console,
		File:   &file,
	})

	logger.Debug("skipping vanished entry", "slug", "gone")
	logger.Warn("skipping entry with invalid front matter", "slug", "broken")

	assert.NotContains(t, console.String(), "gone")
	assert.Contains(t, console.String(), "broken")

	lines := strings.Split(strings.TrimSpace(file.String()), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.True(t, json.Valid([]byte(line)), line)
	}
}

func TestContext(t *testing.T) {
	logger := NewDiscard()
	ctx := NewContext(t.Context(), logger)
	assert.Same(t, logger, FromContext(ctx))
	assert.Same(t, slog.Default(), FromContext(t.Context()))
}

func TestForTest(t *testing.T) {
	logger := ForTest(t)
	require.NotNil(t, logger)
	assert.True(t, logger.Enabled(t.Context(), LevelTrace))

	tw := &testWriter{t: t}
	n, err := tw.Write([]byte("record\n"))
	require.NoError(t, err)
	assert.Equal(t, len("record\n"), n)

	n, err = tw.Write(nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}
