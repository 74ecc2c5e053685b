package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestDefaultIsSilent(t *testing.T) {
	Set(nil)
	if L().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger enabled for errors, want silent")
	}
}

func TestSet(t *testing.T) {
	var buf bytes.Buffer
	Set(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer Set(nil)

	L().Info("starting rotation loop", "frame", 3)
	if got := buf.String(); !strings.Contains(got, "starting rotation loop") || !strings.Contains(got, "frame=3") {
		t.Errorf("log output = %q, want message and frame attribute", got)
	}
}
