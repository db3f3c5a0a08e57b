// SPDX-License-Identifier: EPL-2.0

// Command sonotrack composes a sequence of tones into a track and either
// writes it as a WAV file or plays it on the detected audio backend.
//
// Usage:
//
//	sonotrack -notes C4,E4,G4,880 -duration 0.5 -o chord.wav
//	sonotrack -notes A4 -duration 2 -play
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sonouno/sonotrack"
	"github.com/sonouno/sonotrack/formats/wav"
	"github.com/sonouno/sonotrack/notes"
	"github.com/sonouno/sonotrack/track"
)

func main() {
	var (
		rate      = flag.Int("rate", 44100, "sampling rate in Hertz")
		noteList  = flag.String("notes", "A4", "comma-separated note names or frequencies in Hertz")
		duration  = flag.Float64("duration", 0.5, "duration of each tone in seconds")
		amplitude = flag.Float64("amplitude", 0.5, "tone amplitude, between 0 and 1")
		gap       = flag.Float64("gap", 0, "silence between tones in seconds")
		output    = flag.String("o", "", "output WAV path; required unless -play is set")
		format    = flag.String("f", "int16", "WAV sample format: int16, int32, float32 or float64")
		play      = flag.Bool("play", false, "play the track instead of writing a file")
	)
	flag.Parse()

	if *output == "" && !*play {
		fmt.Fprintln(os.Stderr, "either -o or -play is required")
		flag.Usage()
		os.Exit(2)
	}

	t, err := track.New(*rate, 1)
	if err != nil {
		fatal(err)
	}

	for _, field := range strings.Split(*noteList, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		hz, err := parsePitch(field).Frequency()
		if err != nil {
			fatal(err)
		}
		if err := t.AddSineWave(hz, *duration, *amplitude); err != nil {
			fatal(err)
		}
		if *gap > 0 {
			if err := t.AddBlank(*gap); err != nil {
				fatal(err)
			}
		}
	}

	if *output != "" {
		if err := wav.EncodeFile(*output, t, *format); err != nil {
			fatal(err)
		}
	}

	if *play {
		if err := sonotrack.Play(t); err != nil {
			fatal(err)
		}
	}
}

// parsePitch treats numeric fields as frequencies in Hertz and anything
// else as a note name.
func parsePitch(field string) notes.Pitch {
	if hz, err := strconv.ParseFloat(field, 64); err == nil {
		return notes.Hz(hz)
	}
	return notes.Name(field)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "sonotrack:", err)
	os.Exit(1)
}
