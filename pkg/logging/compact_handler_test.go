package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func newTestLogger(level slog.Level) (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(NewCompactHandler(&buf, &slog.HandlerOptions{Level: level})), &buf
}

func TestCompactHandlerFormat(t *testing.T) {
	logger, buf := newTestLogger(slog.LevelDebug)

	logger.Info("collected file", "path", "src/main.c", "count", 3)

	out := buf.String()
	if !strings.HasPrefix(out, "[INFO]  ") {
		t.Errorf("output %q should start with level tag", out)
	}
	if !strings.Contains(out, "collected file") {
		t.Errorf("output %q missing message", out)
	}
	if !strings.Contains(out, "path=src/main.c") {
		t.Errorf("output %q missing path attribute", out)
	}
	if !strings.Contains(out, "count=3") {
		t.Errorf("output %q missing count attribute", out)
	}
}

func TestCompactHandlerLevelFiltering(t *testing.T) {
	logger, buf := newTestLogger(slog.LevelWarn)

	logger.Info("quiet")
	if buf.Len() != 0 {
		t.Errorf("info output %q should be suppressed at warn level", buf.String())
	}

	logger.Warn("loud")
	if !strings.Contains(buf.String(), "loud") {
		t.Errorf("warn output missing, got %q", buf.String())
	}
}

func TestCompactHandlerShortensRunID(t *testing.T) {
	logger, buf := newTestLogger(slog.LevelInfo)

	logger.Info("run started", "runID", "0123456789abcdef")

	out := buf.String()
	if !strings.Contains(out, "run=01234567") {
		t.Errorf("output %q should contain shortened run ID", out)
	}
	if strings.Contains(out, "89abcdef") {
		t.Errorf("output %q should not contain the full run ID", out)
	}
}

func TestCompactHandlerQuotesErrors(t *testing.T) {
	logger, buf := newTestLogger(slog.LevelInfo)

	logger.Warn("copy failed", "error", errors.New("permission denied"))

	if !strings.Contains(buf.String(), `error="permission denied"`) {
		t.Errorf("output %q missing quoted error", buf.String())
	}
}

func TestCompactHandlerBoundAttrs(t *testing.T) {
	logger, buf := newTestLogger(slog.LevelInfo)

	logger.With("mode", "collect").Info("done")

	if !strings.Contains(buf.String(), "mode=collect") {
		t.Errorf("output %q missing bound attribute", buf.String())
	}
}

func TestVerbosityLevel(t *testing.T) {
	tests := []struct {
		verbose int
		want    slog.Level
	}{
		{0, slog.LevelWarn},
		{1, slog.LevelInfo},
		{2, slog.LevelDebug},
		{3, LevelTrace},
		{7, LevelTrace},
	}

	for _, tt := range tests {
		if got := VerbosityLevel(tt.verbose); got != tt.want {
			t.Errorf("VerbosityLevel(%d) = %v, want %v", tt.verbose, got, tt.want)
		}
	}
}
