package logging

import (
	"log/slog"
	"os"
)

// Setup installs the bootstrap logger: JSON records on stderr, so
// command output on stdout stays clean. main replaces it with the full
// handler stack once the database is open.
func Setup() {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}
