// SPDX-License-Identifier: EPL-2.0

// Package sonotrack builds audio tracks procedurally for Go applications.
//
// A track is a growable mono sample buffer with a writing cue. Content is
// laid down additively, so overlapping writes mix by summation, and the
// cue can be moved freely to compose sounds out of order. The track
// subpackage holds the buffer engine; this package ties the engine to the
// format codecs and the playback backends.
//
// # Quick Start
//
// Compose a short melody and write it to disk:
//
//	t := track.NewDefault()
//	for _, name := range []string{"C4", "E4", "G4"} {
//		hz, _ := notes.Name(name).Frequency()
//		t.AddSineWave(hz, 0.5, 0.5)
//	}
//	wav.EncodeFile("melody.wav", t, "int16")
//
// # Loading Files
//
// Load reads an audio file into a track, dispatching on the file
// extension:
//
//	t, err := sonotrack.Load("voice.mp3", 1)
//
// The following formats are supported:
//   - WAV (PCM 16/32-bit, IEEE float 32/64-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16-bit) via formats/aiff
//
// Multichannel sources are downmixed to mono by channel averaging.
//
// # Playback
//
// Play renders a track on the backend selected from the environment:
//
//	if err := sonotrack.Play(t); err != nil {
//		log.Fatal(err)
//	}
//
// See the players subpackage for backend selection.
package sonotrack
