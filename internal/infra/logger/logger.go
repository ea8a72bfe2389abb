package logger

import (
	"io"
	"log/slog"
	"os"
)

// New returns a JSON logger on stdout; "dev" turns on debug output.
func New(env string) *slog.Logger {
	return NewWithWriter(env, os.Stdout)
}

func NewWithWriter(env string, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if env == "dev" {
		level = slog.LevelDebug
	}
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h).With("service", "sport-inventory")
}
