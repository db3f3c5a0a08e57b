// SPDX-License-Identifier: EPL-2.0

// Package vorbis loads Ogg Vorbis files into tracks.
//
// This package uses github.com/jfreymuth/oggvorbis to decode the stream.
// Decoding is import-only: tracks cannot be written back as Ogg Vorbis.
//
//	f, _ := os.Open("audio.ogg")
//	t, err := vorbis.Decode(f, 1)
//
// The stream is decoded in full, downmixed to mono by averaging, and
// rescaled so that full scale maps to the requested maximum amplitude.
package vorbis
