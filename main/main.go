// this is a command line frontend for the composer library.
// It compiles a Nokia composer score given on the command line (or the
// built-in Nokia tune if none is given) and either prints the resulting
// frequency-duration pairs or plays them over the speakers.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	// goerror is not a part of the composer library, just a handy way
	// to bail out of a main with a logged message.
	"github.com/denizsincar29/goerror"
	"github.com/dorukayhan/composer"
)

var (
	tempo   = flag.Int("tempo", 120, "quarter beats per minute")
	a4      = flag.Int("a4", composer.DefaultA4Frequency, "frequency of a4 in Hz, for music theorists")
	play    = flag.Bool("play", false, "play the score over the speakers instead of printing it")
	verbose = flag.Bool("verbose", false, "log what the composer is doing")
)

func main() {
	flag.Parse()
	logger := NewLogger(os.Stderr, *verbose)
	e := goerror.NewError(logger)

	score := strings.Join(flag.Args(), " ")
	if score == "" {
		score = composer.NokiaTune
		logger.Info("No score given, playing the Nokia tune")
	}

	comp, err := composer.NewComposerBuilder().
		WithTempo(*tempo).
		WithA4Frequency(*a4).
		WithLogger(logger).
		Build()
	e.Must(err, "Failed to create composer")

	tones, err := comp.Compile(score)
	e.Must(err, "Failed to compile score")

	if *play {
		e.Must(Play(tones), "Failed to play score")
		return
	}
	// one pair per line, ready for shell consumption
	for _, tone := range tones {
		fmt.Printf("%d\t%d\n", tone.Freq, tone.Duration)
	}
}
