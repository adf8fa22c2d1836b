// Package composer turns tunes written in the format of the (in)famous
// Nokia composer into series of frequency-duration pairs that can be
// played over any speaker or beeper.
//
// Fair warning: the notation is the musical equivalent of Brainfuck.
// There are no key signatures, so everything is written in quasi-absolute
// pitch, and you can rapidly lose your mind trying to tune a song.
package composer

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"sync"
)

// NokiaTune is a prefab rendition of the Nokia tune, because no Nokia
// composer clone is complete without one.
//
// C sharp, F sharp, G sharp.
const NokiaTune = "8e5 8d5 4f#4 4g#4 8c#5 8b4 4d4 4e4 8b4 8a4 4c#4 4e4 2a4"

// DefaultA4Frequency is standard A440 concert pitch.
const DefaultA4Frequency = 440

// Tone is a single compiled note: an integer frequency in hertz and a
// duration in milliseconds. A compiled score is an ordered slice of
// these, first note first.
type Tone struct {
	Freq     int
	Duration int
}

// Composer compiles scores at a fixed tuning and a changeable tempo.
// It is safe for concurrent use; a SetTempo call either fully precedes
// or fully follows a concurrent Compile, never lands in the middle.
type Composer struct {
	mu     sync.Mutex // guards bpm across a whole Compile
	bpm    int
	a4Freq int // immutable after construction
	logger *slog.Logger
}

// New creates a Composer with the given tempo, in quarter beats per
// minute, using A440 tuning. A nil logger means slog.Default().
func New(bpm int, lgr *slog.Logger) (*Composer, error) {
	return NewWithTuning(bpm, DefaultA4Frequency, lgr)
}

// NewWithTuning is New for music theorists: it also takes the frequency
// of a4 in Hz. If in doubt, use New.
func NewWithTuning(bpm, a4Frequency int, lgr *slog.Logger) (*Composer, error) {
	if bpm <= 0 {
		return nil, &InvalidTempoError{BPM: bpm}
	}
	if a4Frequency <= 0 {
		return nil, fmt.Errorf("a4 frequency must be positive, got %d", a4Frequency)
	}
	if lgr == nil {
		lgr = slog.Default()
	}
	return &Composer{
		bpm:    bpm,
		a4Freq: a4Frequency,
		logger: lgr,
	}, nil
}

// Compile converts a score to the tones that play it.
//
// A score is a series of whitespace-separated notes. Each note is
//
//	[fraction][a-g in lowercase][optional # for sharps][octave]
//
// where fraction is the length of the note as a divisor of the whole
// note (2 is a minim, 4 is a quarter, 8 is a quaver and so on), and
// octave runs from 0 to 8 with 4 in the middle. Note that:
//
//   - You can't use flats. 4db4 is invalid; write 4c#4 instead.
//   - Rests don't exist. Split the score in two and use Duration to
//     find out how long to stay silent.
//   - Dots don't exist either. A dotted note is its undotted self tied
//     to a note half its length, so write 4c4 8c4 instead of 4.c4.
//     Naively playing the pairs back to back slurs them, which makes
//     this workaround sound right.
//   - Fractions can be arbitrary integers: 3c4 3e4 3g4 is a triplet
//     about the length of a whole note.
//
// An empty or all-whitespace score compiles to no tones and no error.
// Otherwise Compile stops at the first malformed note and returns a
// *BadNoteError naming it; there is no partial result.
func (c *Composer) Compile(score string) ([]Tone, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	notes := strings.Fields(score)
	tones := make([]Tone, 0, len(notes))
	for _, note := range notes {
		fraction, pitch, err := splitNote(note)
		if err != nil {
			return nil, &BadNoteError{Token: note, Cause: err}
		}
		freq, err := frequency(pitch, c.a4Freq)
		if err != nil {
			return nil, &BadNoteError{Token: note, Cause: err}
		}
		dur, err := duration(fraction, c.bpm)
		if err != nil {
			return nil, &BadNoteError{Token: note, Cause: err}
		}
		tones = append(tones, Tone{Freq: freq, Duration: dur})
	}
	c.logger.Debug("compiled score", "notes", len(tones), "bpm", c.bpm, "a4", c.a4Freq)
	return tones, nil
}

// MustCompile is Compile for callers that would rather not deal with a
// typed error; it panics on a malformed score instead. The panic value
// is a plain error that still names the offending note and the cause.
func (c *Composer) MustCompile(score string) []Tone {
	tones, err := c.Compile(score)
	if err != nil {
		panic(fmt.Errorf("composer: %v", err))
	}
	return tones
}

// Frequency converts a pitch like "c#4" to its frequency in Hz under
// this Composer's tuning, computed as a4 * 2^(semitones from a4 / 12)
// and rounded to the nearest integer, halves away from zero. Middle C
// in A440 is 440 * 2^(-9/12) = 261.625..., rounded to 262 Hz, and
// Frequency("a4") is exactly the a4 frequency itself. Tempo plays no
// part in this.
func (c *Composer) Frequency(pitch string) (int, error) {
	return frequency(pitch, c.a4Freq)
}

// Duration converts a note fraction to its length in milliseconds at
// the current tempo. Since Compile has no rests, this is also how you
// find out how long to pause for one.
func (c *Composer) Duration(fraction int) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return duration(fraction, c.bpm)
}

// SetTempo changes the tempo on the fly to satisfy your inner lunatic.
// Previously compiled scores keep their durations; recompile them to
// pick up the new tempo. A Compile already running on another goroutine
// finishes with the tempo it started with.
func (c *Composer) SetTempo(bpm int) error {
	if bpm <= 0 {
		return &InvalidTempoError{BPM: bpm}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bpm = bpm
	return nil
}

// Tempo returns the amount of quarter beats (e.g. 4c4) this Composer
// crams into a minute.
func (c *Composer) Tempo() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bpm
}

// A4Frequency returns the frequency of a4 in Hz as used to convert
// pitches to frequencies. Not necessarily 440.
func (c *Composer) A4Frequency() int {
	return c.a4Freq
}

// splitNote splits a note at the boundary between its leading digit run
// and the pitch that follows.
func splitNote(note string) (fraction int, pitch string, err error) {
	i := 0
	for i < len(note) && note[i] >= '0' && note[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, "", errNoFraction
	}
	if i == len(note) {
		return 0, "", errNoPitch
	}
	fraction, err = strconv.Atoi(note[:i])
	if err != nil {
		return 0, "", err
	}
	return fraction, note[i:], nil
}

func frequency(pitch string, a4Freq int) (int, error) {
	st, err := Semitones(pitch)
	if err != nil {
		return 0, err
	}
	return int(math.Round(float64(a4Freq) * math.Pow(2, float64(st)/12.0))), nil
}

func duration(fraction, bpm int) (int, error) {
	if bpm <= 0 {
		return 0, &InvalidTempoError{BPM: bpm}
	}
	if fraction <= 0 {
		return 0, &InvalidFractionError{Fraction: fraction}
	}
	whole := 240.0 / float64(bpm) // at 240 bpm a whole note lasts exactly one second
	return int(whole / float64(fraction) * 1000), nil
}
