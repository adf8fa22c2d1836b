// This example compiles the built-in Nokia tune and plays it over the
// speakers as plain sine tones. Run it, feel the nostalgia.
package main

import (
	"os"

	// goerror is not a part of the composer library.
	"github.com/denizsincar29/goerror"
	"github.com/dorukayhan/composer"
)

func main() {
	// create a new logger
	logger := NewLogger(os.Stdout)
	e := goerror.NewError(logger)
	comp, err := composer.New(180, logger)
	e.Must(err, "Failed to create composer")

	tones, err := comp.Compile(composer.NokiaTune)
	e.Must(err, "Failed to compile the Nokia tune")
	logger.Info("Playing the Nokia tune", "notes", len(tones), "bpm", comp.Tempo())
	e.Must(Play(tones), "Failed to play the tune")
}
