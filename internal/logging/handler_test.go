package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	now := time.Now()
	logger.Info("listing entries", "kind", "works")

	output := buf.String()
	for _, want := range []string{"INFO", "listing entries", "kind=works", now.Format(time.Kitchen)} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got: %q", want, output)
		}
	}
	if !strings.HasSuffix(output, "\n") {
		t.Errorf("expected trailing newline, got: %q", output)
	}
}

func TestHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, nil)).With("kind", "projects")

	logger.Info("message", "slug", "folio")

	output := buf.String()
	if !strings.Contains(output, "kind=projects") {
		t.Errorf("expected common attribute in output, got: %q", output)
	}
	if !strings.Contains(output, "slug=folio") {
		t.Errorf("expected local attribute in output, got: %q", output)
	}
}

func TestHandler_Groups(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, nil)).WithGroup("http")

	logger.Info("request", "status", 200, slog.Group("req", "method", "GET"))

	output := buf.String()
	if !strings.Contains(output, "http.status=200") {
		t.Errorf("expected group prefix, got: %q", output)
	}
	if !strings.Contains(output, "http.req.method=GET") {
		t.Errorf("expected nested group prefix, got: %q", output)
	}
}

func TestHandler_QuotesValues(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, nil))

	logger.Info("skipped", "error", "invalid frontmatter: bad")

	if !strings.Contains(buf.String(), `error="invalid frontmatter: bad"`) {
		t.Errorf("expected quoted value, got: %q", buf.String())
	}
}

func TestHandler_Enabled(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})

	ctx := t.Context()
	if h.Enabled(ctx, slog.LevelInfo) {
		t.Error("expected Info level to be disabled when min level is Warn")
	}
	if !h.Enabled(ctx, slog.LevelWarn) {
		t.Error("expected Warn level to be enabled")
	}
	if !h.Enabled(ctx, slog.LevelError) {
		t.Error("expected Error level to be enabled")
	}
}

func TestHandler_Trace(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, &slog.HandlerOptions{Level: LevelTrace}))

	logger.Log(t.Context(), LevelTrace, "reading file")

	if !strings.Contains(buf.String(), "TRACE reading file") {
		t.Errorf("expected TRACE label, got: %q", buf.String())
	}
}

func TestHandler_NoTime(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, nil)

	r := slog.NewRecord(time.Time{}, slog.LevelInfo, "no time", 0)
	if err := h.Handle(t.Context(), r); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}

	if !strings.HasPrefix(buf.String(), "INFO") {
		t.Errorf("expected output to start with the level, got: %q", buf.String())
	}
}

func TestMultiHandler(t *testing.T) {
	var info, debug bytes.Buffer
	logger := slog.New(NewMultiHandler(
		NewHandler(&info, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&debug, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)).With("kind", "works")

	logger.Debug("debug only")
	logger.Info("both")

	if strings.Contains(info.String(), "debug only") {
		t.Errorf("info handler should not see debug records: %q", info.String())
	}
	if !strings.Contains(debug.String(), "debug only") || !strings.Contains(debug.String(), "both") {
		t.Errorf("debug handler missing records: %q", debug.String())
	}
	if !strings.Contains(info.String(), "kind=works") {
		t.Errorf("attrs not propagated: %q", info.String())
	}
}
