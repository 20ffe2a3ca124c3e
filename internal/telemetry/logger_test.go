package telemetry

import (
	"context"
	"log/slog"
	"testing"
)

func TestInitLogger_DebugLevel(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	InitLogger(true)
	if !slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		t.Error("expected debug level enabled with verbose logging")
	}

	InitLogger(false)
	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		t.Error("expected debug level disabled by default")
	}
}
