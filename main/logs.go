package main

import (
	"io"
	"log/slog"
)

// NewLogger creates a new logger with the given options.
func NewLogger(writer io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := slog.HandlerOptions{
		Level: level,
	}
	return slog.New(slog.NewTextHandler(writer, &opts))
}
