package main

import (
	"io"
	"log/slog"
)

// NewLogger creates a new logger with the given options.
func NewLogger(writer io.Writer) *slog.Logger {
	opts := slog.HandlerOptions{
		Level: slog.LevelInfo,
	}
	return slog.New(slog.NewTextHandler(writer, &opts))
}
