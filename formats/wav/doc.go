// SPDX-License-Identifier: EPL-2.0

// Package wav serializes tracks to and from the WAV container.
//
// # Supported Sample Encodings
//
// Four sample encodings are supported, with their conventional full-scale
// amplitudes:
//   - "int16": PCM 16-bit, full scale 32767
//   - "int32": PCM 32-bit, full scale 2147483647
//   - "float32": IEEE float 32-bit, full scale 1
//   - "float64": IEEE float 64-bit, full scale 1
//
// Encoding rescales the track samples from the track's maximum amplitude
// to the encoding's full scale; decoding rescales the other way, to the
// maximum amplitude requested by the caller. A round trip through any
// encoding therefore reproduces the original samples within that
// encoding's quantization error (for int16, within max amplitude / 32767).
//
// # Writing
//
//	t := track.NewDefault()
//	t.AddSineWave(440, 1, 0.25)
//	f, _ := os.Create("tone.wav")
//	err := wav.Encode(f, t, "int16")
//
// # Reading
//
//	t, err := wav.DecodeFile("tone.wav", 1)
//
// PCM files are parsed with github.com/go-audio/wav; IEEE float files use
// a canonical-layout parser. Multi-channel files are downmixed to mono by
// averaging.
//
// # Errors
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE stream.
//   - ErrUnsupportedSampleFormat: unknown encode format name.
//   - ErrUnsupportedWavEncoding: the file uses a sample encoding outside
//     the supported set (e.g. PCM 24-bit, A-law).
//   - ErrUnsupportedWavLayout: non-canonical chunk layout on the float
//     path.
package wav
