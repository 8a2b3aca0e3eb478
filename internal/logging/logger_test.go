package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestConsoleHandlerHoistsComponent(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "console", Output: &buf})
	if err != nil {
		t.Fatal(err)
	}

	NewComponentLogger(logger, "mover").Info("moved file",
		String("source", "/a/x.txt"),
		String("dest", "/a/Q1-2024/x.txt"),
	)

	line := buf.String()
	if !strings.Contains(line, " INFO mover: moved file") {
		t.Errorf("component not hoisted: %q", line)
	}
	if !strings.Contains(line, "source=/a/x.txt") || !strings.Contains(line, "dest=/a/Q1-2024/x.txt") {
		t.Errorf("attrs missing: %q", line)
	}
}

func TestConsoleHandlerQuotesValues(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Format: "console", Output: &buf})
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("note", String("path", "/with space/file.txt"))
	if !strings.Contains(buf.String(), `path="/with space/file.txt"`) {
		t.Errorf("value with space not quoted: %q", buf.String())
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Format: "console", Output: &buf})
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("hidden")
	logger.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info line emitted at warn level")
	}
	if !strings.Contains(out, "visible") {
		t.Error("warn line missing")
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Format: "json", Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("structured", Int("files", 3))
	out := buf.String()
	if !strings.Contains(out, `"msg":"structured"`) || !strings.Contains(out, `"files":3`) {
		t.Errorf("unexpected json output: %q", out)
	}
}

func TestUnsupportedFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := NewNop()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Error("nop logger should be disabled at every level")
	}
}
