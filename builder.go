package composer

import (
	"log/slog"
)

// ComposerBuilder assembles a Composer step by step, for callers that
// prefer a fluent setup over positional arguments.
type ComposerBuilder struct {
	BPM    int
	A4Freq int
	Logger *slog.Logger
}

func NewComposerBuilder() *ComposerBuilder {
	return &ComposerBuilder{
		BPM:    120,
		A4Freq: DefaultA4Frequency,
		Logger: slog.Default(),
	}
}

func (cb *ComposerBuilder) WithTempo(bpm int) *ComposerBuilder {
	cb.BPM = bpm
	return cb
}

func (cb *ComposerBuilder) WithA4Frequency(hz int) *ComposerBuilder {
	cb.A4Freq = hz
	return cb
}

func (cb *ComposerBuilder) WithLogger(logger *slog.Logger) *ComposerBuilder {
	cb.Logger = logger
	return cb
}

func (cb *ComposerBuilder) Build() (*Composer, error) {
	return NewWithTuning(cb.BPM, cb.A4Freq, cb.Logger)
}
