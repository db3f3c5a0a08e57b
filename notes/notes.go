// SPDX-License-Identifier: EPL-2.0

package notes

import (
	"fmt"
	"math"
)

// BaseFrequency is the frequency of the reference note A4, in Hertz.
const BaseFrequency = 440.0

var noteNames = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var flatNames = map[string]string{
	"Db": "C#",
	"Eb": "D#",
	"Gb": "F#",
	"Ab": "G#",
	"Bb": "A#",
}

var noteFrequencies = buildNoteFrequencies()

func buildNoteFrequencies() map[string]float64 {
	const octaves = 11 // C0 through B10

	// A4 sits at semitone index 4*12+9 counted from C0.
	const ibase = 4*12 + 9

	frequencies := make(map[string]float64, octaves*(len(noteNames)+len(flatNames)))

	for octave := 0; octave < octaves; octave++ {
		for i, name := range noteNames {
			n := octave*12 + i
			frequencies[fmt.Sprintf("%s%d", name, octave)] =
				math.Pow(2, float64(n-ibase)/12) * BaseFrequency
		}
		for flat, sharp := range flatNames {
			frequencies[fmt.Sprintf("%s%d", flat, octave)] =
				frequencies[fmt.Sprintf("%s%d", sharp, octave)]
		}
	}

	return frequencies
}

// NoteFrequencies returns the note frequencies of the scientific pitch
// notation, from C0 to B10. Sharp notes are denoted with a '#' character
// and flat notes with a 'b' letter.
func NoteFrequencies() map[string]float64 {
	out := make(map[string]float64, len(noteFrequencies))
	for k, v := range noteFrequencies {
		out[k] = v
	}
	return out
}

// Pitch is either a note name in scientific pitch notation or a numeric
// frequency in Hertz. Note names are resolved lazily by Frequency, so an
// unknown name is only reported when the pitch is used.
type Pitch struct {
	name   string
	hz     float64
	isNote bool
}

// Name returns a Pitch referring to a note name, e.g. "A4" or "C#3".
func Name(note string) Pitch {
	return Pitch{name: note, isNote: true}
}

// Hz returns a Pitch at the given frequency.
func Hz(frequency float64) Pitch {
	return Pitch{hz: frequency}
}

// Frequency resolves the pitch to a frequency in Hertz. A numeric pitch is
// returned as-is; a note name is looked up in the scientific pitch
// notation table and fails with ErrUnknownNote when it is not a note in
// the range C0 - B10.
func (p Pitch) Frequency() (float64, error) {
	if !p.isNote {
		return p.hz, nil
	}

	f, ok := noteFrequencies[p.name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNote, p.name)
	}
	return f, nil
}

// String returns the note name or the numeric frequency.
func (p Pitch) String() string {
	if p.isNote {
		return p.name
	}
	return fmt.Sprintf("%gHz", p.hz)
}
