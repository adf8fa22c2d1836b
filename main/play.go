package main

import (
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/dorukayhan/composer"
)

const sampleRate = beep.SampleRate(44100)

// sine returns an endless sine wave streamer at the given frequency.
func sine(freq int) beep.Streamer {
	step := float64(freq) / float64(sampleRate)
	var pos float64
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := math.Sin(2 * math.Pi * pos)
			samples[i][0] = v
			samples[i][1] = v
			pos += step
		}
		return len(samples), true
	})
}

// Play renders the compiled tones through the default speaker, back to
// back. Notes slur into each other, which is exactly what makes the
// tied-note workaround for dots sound right.
func Play(tones []composer.Tone) error {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}

	streamers := make([]beep.Streamer, 0, len(tones)+1)
	for _, tone := range tones {
		d := time.Duration(tone.Duration) * time.Millisecond
		streamers = append(streamers, beep.Take(sampleRate.N(d), sine(tone.Freq)))
	}

	done := make(chan struct{})
	streamers = append(streamers, beep.Callback(func() {
		close(done)
	}))
	speaker.Play(beep.Seq(streamers...))
	<-done
	return nil
}
