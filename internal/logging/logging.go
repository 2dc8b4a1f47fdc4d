// Package logging builds the slog logger used by the CLI. The client
// library itself logs nothing; every failure is returned to the caller.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// New returns a text-handler logger writing to stderr at the given level
// (debug, info, warn, error). Unrecognized levels fall back to info.
func New(level string) *slog.Logger {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}
