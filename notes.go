package composer

import "strconv"

// chromatic is the twelve note names of an octave, in order. The table
// below is generated from it, so the order matters.
var chromatic = [12]string{"c", "c#", "d", "d#", "e", "f", "f#", "g", "g#", "a", "a#", "b"}

// semitones maps a pitch key like "c#4" to its signed distance in
// semitones from a4. Built once at load, read-only afterwards, so
// concurrent lookups need no locking.
var semitones = make(map[string]int, 9*12)

func init() {
	n := 0
	for octave := 0; octave <= 8; octave++ {
		for _, note := range chromatic {
			semitones[note+strconv.Itoa(octave)] = n - 57 // c0 is 57 semitones below a4
			n++
		}
	}
}

// Semitones returns how many semitones away from a4 the given pitch is.
// Pitches below a4 give negative values; Semitones("a4") is 0. The pitch
// must be a lowercase letter a-g, an optional # and an octave digit from
// 0 to 8, or an UnknownPitchError is returned.
func Semitones(pitch string) (int, error) {
	st, ok := semitones[pitch]
	if !ok {
		return 0, &UnknownPitchError{Pitch: pitch}
	}
	return st, nil
}
