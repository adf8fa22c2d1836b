package composer

import (
	"errors"
	"fmt"
)

// Token shape errors, always wrapped in a BadNoteError by Compile.
var (
	errNoFraction = errors.New("note has no leading fraction digits")
	errNoPitch    = errors.New("note has no pitch after the fraction")
)

// UnknownPitchError is returned when a pitch key is not one of the 108
// entries of the note table (octaves 0-8, twelve semitones each).
type UnknownPitchError struct {
	Pitch string
}

func (e *UnknownPitchError) Error() string {
	return fmt.Sprintf("unknown pitch %q: want a lowercase letter a-g, an optional # and an octave from 0 to 8, like c#4", e.Pitch)
}

// InvalidFractionError is returned for note fractions below 1. The
// fraction divides a whole note, so zero or negative values have no
// meaningful duration.
type InvalidFractionError struct {
	Fraction int
}

func (e *InvalidFractionError) Error() string {
	return fmt.Sprintf("invalid fraction %d: a fraction divides a whole note and must be at least 1", e.Fraction)
}

// InvalidTempoError is returned for tempos below 1 quarter beat per minute.
type InvalidTempoError struct {
	BPM int
}

func (e *InvalidTempoError) Error() string {
	return fmt.Sprintf("invalid tempo %d: want a positive number of quarter beats per minute", e.BPM)
}

// BadNoteError is what Compile fails with: it names the first malformed
// note of the score verbatim and wraps the underlying cause, so callers
// can tell the user exactly which note to fix. Use errors.As to get at
// the cause.
type BadNoteError struct {
	Token string
	Cause error
}

func (e *BadNoteError) Error() string {
	return fmt.Sprintf("bad note %q: %v (a note is a fraction followed by a pitch, like 8c#5)", e.Token, e.Cause)
}

func (e *BadNoteError) Unwrap() error { return e.Cause }
