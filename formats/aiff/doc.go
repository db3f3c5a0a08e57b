// SPDX-License-Identifier: EPL-2.0

// Package aiff loads AIFF files into tracks.
//
// This package uses github.com/go-audio/aiff to decode AIFF files.
// Decoding is import-only and restricted to 16-bit PCM, the common case.
//
//	f, _ := os.Open("audio.aiff")
//	t, err := aiff.Decode(f, 1)
//
// Multi-channel files are downmixed to mono by averaging and rescaled so
// that full scale maps to the requested maximum amplitude.
package aiff
