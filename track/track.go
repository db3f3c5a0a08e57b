// SPDX-License-Identifier: EPL-2.0

package track

import (
	"fmt"
	"math"

	"github.com/sonouno/sonotrack/utils"
)

const (
	// DefaultRate is the sampling rate used by NewDefault, in Hertz.
	DefaultRate = 44100

	// DefaultMaxAmplitude is the maximum amplitude used by NewDefault.
	DefaultMaxAmplitude = 1.0
)

// Track is a growable mono sample buffer with an independent write cue.
//
// Samples are stored as float64 values. Writes are additive: writing over a
// region that already holds samples sums the new values into the old ones,
// so overlapping events mix rather than replace each other. The allocated
// buffer is a capacity, not a logical length; Len reports the logical extent
// and readers never observe anything beyond it.
type Track struct {
	rate         int
	maxAmplitude float64

	// data is the allocated storage. Its length may exceed the logical
	// size (over-allocation) or fall short of it (trailing blank).
	data       []float64
	indexWrite int
	size       int
}

// New returns an empty track at the given sampling rate and maximum
// amplitude. The maximum amplitude is the peak value a sample may
// represent; it is used to rescale data between tracks and encodings,
// never to clamp.
func New(rate int, maxAmplitude float64) (*Track, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("non-positive sampling rate %d: %w", rate, ErrInvalidArgument)
	}
	if maxAmplitude <= 0 {
		return nil, fmt.Errorf("non-positive maximum amplitude %v: %w", maxAmplitude, ErrInvalidArgument)
	}

	return &Track{
		rate:         rate,
		maxAmplitude: maxAmplitude,
	}, nil
}

// NewDefault returns an empty track at 44100 Hz with a maximum amplitude
// of 1.
func NewDefault() *Track {
	t, _ := New(DefaultRate, DefaultMaxAmplitude)
	return t
}

// NewWithFormat returns an empty track whose maximum amplitude is the
// conventional full scale of the given sample format name, e.g. 32767 for
// "int16". See utils.MaxAmplitude for the supported names.
func NewWithFormat(rate int, format string) (*Track, error) {
	maxAmplitude, err := utils.MaxAmplitude(format)
	if err != nil {
		return nil, err
	}
	return New(rate, maxAmplitude)
}

// Rate returns the sampling rate in Hertz.
func (t *Track) Rate() int { return t.rate }

// MaxAmplitude returns the peak value a sample of this track may represent.
func (t *Track) MaxAmplitude() float64 { return t.maxAmplitude }

// SampleDuration returns the duration of a single sample, in seconds.
func (t *Track) SampleDuration() float64 { return 1 / float64(t.rate) }

// Duration returns the track duration, in seconds.
func (t *Track) Duration() float64 { return float64(t.size) / float64(t.rate) }

// CueWrite returns the starting time, in seconds, of the next write.
func (t *Track) CueWrite() float64 { return float64(t.indexWrite) / float64(t.rate) }

// Len returns the logical extent of the track, in samples. It can be
// greater (after a trailing blank) or lesser (after over-allocation) than
// the allocated buffer length.
func (t *Track) Len() int { return t.size }

// SetCueWrite sets the cue time for the next write. The cue may be placed
// beyond the current end of the track; the gap swept over by a subsequent
// write reads back as silence.
func (t *Track) SetCueWrite(seconds float64) error {
	if seconds < 0 {
		return fmt.Errorf("negative cue write value %v: %w", seconds, ErrInvalidArgument)
	}

	t.indexWrite = int(math.Round(seconds * float64(t.rate)))
	return nil
}

// AddBlank advances the write cue by the given duration without writing any
// samples. The region swept over, if beyond the previous end of the track,
// reads back as silence.
func (t *Track) AddBlank(duration float64) error {
	if duration < 0 {
		return fmt.Errorf("negative blank duration %v: %w", duration, ErrInvalidArgument)
	}

	t.indexWrite += int(duration * float64(t.rate))
	if t.indexWrite > t.size {
		t.size = t.indexWrite
	}
	return nil
}

// AddRawData adds a block of samples to the track at the current write cue.
// Existing samples in the written region are summed with the new values,
// not overwritten. The cue is advanced past the written block.
func (t *Track) AddRawData(data []float64) error {
	t.extend(len(data))

	for i, v := range data {
		t.data[t.indexWrite+i] += v
	}

	t.indexWrite += len(data)
	if t.indexWrite > t.size {
		t.size = t.indexWrite
	}
	return nil
}

// extend grows the allocated storage so that n more samples fit at the
// write cue. The growth increment is the immediate overflow plus the
// current logical size, so that repeated short appends reallocate in time
// proportional to the total content written rather than the number of
// writes. Newly allocated samples are zero.
func (t *Track) extend(n int) {
	overflow := t.indexWrite + n - len(t.data)
	if overflow <= 0 {
		return
	}

	grown := make([]float64, len(t.data)+overflow+t.size)
	copy(grown, t.data)
	t.data = grown
}

// GetData returns a copy of the track samples from the cueRead time to the
// logical end of the track. Samples past the last explicit write, including
// any trailing blank, are zero. The duration argument is reserved for
// partial reads and is not implemented; providing it fails with
// ErrNotImplemented.
func (t *Track) GetData(cueRead float64, duration ...float64) ([]float64, error) {
	if cueRead < 0 {
		return nil, fmt.Errorf("negative cue read value %v: %w", cueRead, ErrInvalidArgument)
	}
	if len(duration) > 0 {
		return nil, fmt.Errorf("partial reads: %w", ErrNotImplemented)
	}

	start := int(cueRead * float64(t.rate))
	if start >= t.size {
		return []float64{}, nil
	}

	out := make([]float64, t.size-start)
	if avail := min(t.size, len(t.data)); start < avail {
		copy(out, t.data[start:avail])
	}
	return out, nil
}

// AddSineWave synthesizes floor(rate*duration) samples of a sine wave at
// the given frequency and amplitude and adds them at the current write cue.
// The amplitude is an absolute sample value and must lie within
// [0, MaxAmplitude].
func (t *Track) AddSineWave(frequency, duration, amplitude float64) error {
	if amplitude < 0 {
		return fmt.Errorf("the amplitude %v is negative: %w", amplitude, ErrInvalidArgument)
	}
	if amplitude > t.maxAmplitude {
		return fmt.Errorf(
			"the amplitude %v is greater than the track maximum amplitude %v: %w",
			amplitude, t.maxAmplitude, ErrInvalidArgument,
		)
	}
	if duration < 0 {
		return fmt.Errorf("negative sine wave duration %v: %w", duration, ErrInvalidArgument)
	}

	nsample := int(float64(t.rate) * duration)
	data := make([]float64, nsample)
	omega := 2 * math.Pi * frequency / float64(t.rate)
	for i := range data {
		data[i] = amplitude * math.Sin(omega*float64(i))
	}

	return t.AddRawData(data)
}

// Repeat appends n-1 copies of the current track content to the track, so
// that the track ends up holding its content n times back to back. A value
// of 1 leaves the track unaffected.
func (t *Track) Repeat(n int) error {
	if n < 1 {
		return fmt.Errorf("the number of repeats %d is less than one: %w", n, ErrInvalidArgument)
	}
	if n == 1 {
		return nil
	}

	data, err := t.GetData(0)
	if err != nil {
		return err
	}

	// Copies are appended after the existing content, never overlaid.
	t.indexWrite = t.size
	for i := 0; i < n-1; i++ {
		if err := t.AddRawData(data); err != nil {
			return err
		}
	}
	return nil
}

// AddTrack adds the content of another track, read from cueRead to its end,
// at the current write cue. The two tracks must share the same sampling
// rate. When their maximum amplitudes differ, the incoming data is rescaled
// so that full-scale content in the other track maps to full-scale content
// in this one. The other track is not modified.
func (t *Track) AddTrack(other *Track, cueRead float64) error {
	if t.rate != other.rate {
		return fmt.Errorf(
			"cannot mix tracks with sampling rates %d and %d: %w",
			t.rate, other.rate, ErrRateMismatch,
		)
	}

	data, err := other.GetData(cueRead)
	if err != nil {
		return err
	}

	if t.maxAmplitude != other.maxAmplitude {
		scale := t.maxAmplitude / other.maxAmplitude
		for i := range data {
			data[i] *= scale
		}
	}

	return t.AddRawData(data)
}
