// Rests don't exist in the score notation. This example shows the
// workaround: split the score around the rest and ask Duration how long
// to stay silent in between.
package main

import (
	"fmt"
	"os"

	// goerror is not a part of the composer library.
	"github.com/denizsincar29/goerror"
	"github.com/dorukayhan/composer"
)

func main() {
	// create a new logger
	logger := NewLogger(os.Stdout)
	e := goerror.NewError(logger)
	comp, err := composer.New(120, logger)
	e.Must(err, "Failed to create composer")

	// a phrase, a quarter rest, the same phrase an octave up
	before, err := comp.Compile("4b4 4a4 2g4")
	e.Must(err, "Failed to compile the first phrase")
	rest, err := comp.Duration(4)
	e.Must(err, "Failed to compute the rest duration")
	after, err := comp.Compile("4b5 4a5 2g5")
	e.Must(err, "Failed to compile the second phrase")

	for _, tone := range before {
		fmt.Printf("play %d Hz for %d ms\n", tone.Freq, tone.Duration)
	}
	fmt.Printf("stay silent for %d ms\n", rest)
	for _, tone := range after {
		fmt.Printf("play %d Hz for %d ms\n", tone.Freq, tone.Duration)
	}
}
