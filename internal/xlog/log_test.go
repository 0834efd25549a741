package xlog

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestSetOutputFormatsTraceLevel(t *testing.T) {
	var buf bytes.Buffer
	Logger.AddSource(false)
	Logger.SetLevel(LevelTrace)
	Logger.SetOutput(&buf)

	Logger.Trace("trace message")
	Logger.Info("info message")

	out := buf.String()
	for _, want := range []string{"level=TRACE", "trace message", "level=INFO", "info message"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestUnnamedLevelFallsBackToNumericLabel(t *testing.T) {
	var buf bytes.Buffer
	Logger.SetLevel(slog.Level(-6))
	Logger.SetOutput(&buf)

	Logger.Log(context.Background(), slog.Level(-6), "custom level message")

	if !strings.Contains(buf.String(), "level=DEBUG-2") {
		t.Errorf("output %q missing numeric level label", buf.String())
	}
}
