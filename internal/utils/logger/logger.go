// Package logger builds the shared *slog.Logger both binaries use.
package logger

import (
	"log/slog"
	"os"
)

// Setup returns a logger configured for the given environment.
//
// Development (dev): human-readable text output at DEBUG level.
// Staging: JSON output, still at DEBUG.
// Production (prod): machine-readable JSON at INFO level — easy to
// ingest by log aggregators.
func Setup(env string) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case "staging":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default: // "dev" and anything unrecognised
		return slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	}
}
