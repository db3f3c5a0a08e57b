// SPDX-License-Identifier: EPL-2.0

// Package track provides the growable sample buffer at the heart of
// sonotrack.
//
// A Track is a mono audio signal under construction. Events — sine waves,
// silences, raw sample blocks, the content of other tracks — are written at
// a movable write cue, and writes are additive: two events occupying the
// same time window sum their amplitudes. The assembled signal is read back
// with GetData as a contiguous, sample-accurate block.
//
// # Building a Track
//
//	t := track.NewDefault()
//	t.AddSineWave(440, 1, 0.25)
//	t.SetCueWrite(0)
//	t.AddSineWave(880, 1, 0.25) // mixed with the 440 Hz wave
//	data, _ := t.GetData(0)
//
// # Cue and logical size
//
// The write cue addresses the track in seconds and may be moved anywhere at
// or after time zero, including past the current end of the track. Writing
// after such a move leaves a gap that reads back as silence. The logical
// size of the track only ever grows; it is independent of the allocated
// buffer, which over-allocates on growth so that long sequences of short
// appends do not reallocate on every write.
//
// # Amplitude conventions
//
// Every track carries a maximum amplitude: the peak value its samples are
// scaled to. It is a convention, not a limit — nothing is clamped against
// it. When tracks with different conventions are mixed with AddTrack, the
// incoming data is rescaled so full-scale content stays full-scale. The
// utils package maps sample format names such as "int16" to their
// conventional maxima.
//
// # Errors
//
// Mutating operations validate their arguments before touching any state,
// so a failed call leaves the track unchanged. Sentinel errors:
//   - ErrInvalidArgument: negative time offsets or durations, amplitudes
//     outside [0, MaxAmplitude], repeat counts below one.
//   - ErrRateMismatch: mixing tracks with different sampling rates.
//   - ErrNotImplemented: partial-duration reads (reserved).
//
// # Concurrency
//
// A Track is exclusively owned by its caller and performs no internal
// locking. Tracks never share storage, so independent tracks may be built
// on separate goroutines and merged afterwards.
package track
