package telemetry

import (
	"log/slog"
	"os"
)

// InitLogger configures the default logger. Benchmark output owns stdout, so
// logs always go to stderr.
func InitLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}
