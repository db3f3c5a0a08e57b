// SPDX-License-Identifier: EPL-2.0

// Package notes handles the scientific pitch notation.
//
// The covered octaves are 0 to 10, so that notes from C0 to B10 are
// defined, tuned to A4 = 440 Hz. Sharp notes are denoted with a '#'
// character and flat notes with a 'b' letter; enharmonic flats map to
// their sharp equivalents (Db4 == C#4).
//
// A Pitch is either a note name or a numeric frequency:
//
//	f, err := notes.Name("A4").Frequency() // 440
//	f, err = notes.Hz(261.63).Frequency()  // 261.63, never fails
//
// Pitch keeps the track synthesis layer numeric-only: callers resolve a
// pitch to a frequency before handing it to track.AddSineWave. Resolving
// an unrecognized note name fails with ErrUnknownNote.
package notes
