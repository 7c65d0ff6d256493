package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := new(bytes.Buffer)
	original := Logger()
	ReplaceLogger(slog.New(newHandler(buf)))
	t.Cleanup(func() {
		ReplaceLogger(original)
	})
	return buf
}

func TestInfoProducesLogfmtWithTimestamp(t *testing.T) {
	buf := captureLogs(t)

	Info(context.Background(), "hello", "unit", "gallon")

	line := strings.TrimSpace(buf.String())
	if line == "" {
		t.Fatalf("expected log output, got empty string")
	}
	if !strings.Contains(line, "ts=") {
		t.Fatalf("expected timestamp field in log line, got %q", line)
	}
	if !strings.Contains(line, "level=info") {
		t.Fatalf("expected level field in log line, got %q", line)
	}
	if !strings.Contains(line, "msg=hello") {
		t.Fatalf("expected message field in log line, got %q", line)
	}
	if !strings.Contains(line, "unit=gallon") {
		t.Fatalf("expected structured field in log line, got %q", line)
	}
}

func TestSetLevelFiltersDebug(t *testing.T) {
	buf := captureLogs(t)
	t.Cleanup(func() { _ = SetLevel("info") })

	if err := SetLevel("warn"); err != nil {
		t.Fatalf("SetLevel(warn) error = %v", err)
	}
	Debug(context.Background(), "quiet")
	Info(context.Background(), "also quiet")
	Warn(context.Background(), "loud")

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Fatalf("expected debug and info entries to be filtered, got %q", out)
	}
	if !strings.Contains(out, "level=warn") {
		t.Fatalf("expected warn entry, got %q", out)
	}
}

func TestSetLevelRejectsUnknown(t *testing.T) {
	if err := SetLevel("verbose"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestRequestIDIsAttachedFromContext(t *testing.T) {
	buf := captureLogs(t)

	ctx := WithRequestID(context.Background(), "abc-123")
	Info(ctx, "handled")
	Info(context.Background(), "plain")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected two log lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "request_id=abc-123") {
		t.Fatalf("expected request id in first line, got %q", lines[0])
	}
	if strings.Contains(lines[1], "request_id") {
		t.Fatalf("expected no request id in second line, got %q", lines[1])
	}
	if got := RequestID(ctx); got != "abc-123" {
		t.Fatalf("RequestID() = %q, want abc-123", got)
	}
}
