package logging

import (
	"io"
	"log/slog"
	"os"
)

// Init installs the process-wide slog logger for the given environment.
func Init(env string) *slog.Logger {
	logger := New(os.Stdout, env)
	slog.SetDefault(logger)
	return logger
}

// New builds a logger writing to w. Production gets JSON at info level,
// everything else gets text at debug level.
func New(w io.Writer, env string) *slog.Logger {
	if env == "production" {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
