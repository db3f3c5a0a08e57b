// SPDX-License-Identifier: EPL-2.0

// Package mp3 loads MP3 files into tracks.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 streams.
// Decoding is import-only: tracks cannot be written back as MP3.
//
//	f, _ := os.Open("audio.mp3")
//	t, err := mp3.Decode(f, 1)
//
// The decoder always produces 16-bit stereo PCM; the loader downmixes it
// to mono by averaging and rescales the samples so that full scale maps
// to the requested maximum amplitude. The track's sampling rate is the
// stream's native rate (typically 44100 or 48000 Hz).
package mp3
