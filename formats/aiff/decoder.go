// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/sonouno/sonotrack/track"
	"github.com/sonouno/sonotrack/utils"
)

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Decode reads an AIFF file into a track at the file's sampling rate.
// Multi-channel files are downmixed to mono and the samples are rescaled
// so that full scale maps to maxAmplitude. Only 16-bit PCM is supported.
func Decode(r io.ReadSeeker, maxAmplitude float64) (*track.Track, error) {
	dec := aiff.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	if dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}

	format := dec.Format()
	if format == nil {
		return nil, ErrUnsupportedAiffLayout
	}

	samples, err := readAll(dec, format)
	if err != nil {
		return nil, err
	}

	mono := utils.DownmixMono(samples, format.NumChannels)
	if maxAmplitude != 1 {
		for i := range mono {
			mono[i] *= maxAmplitude
		}
	}

	t, err := track.New(format.SampleRate, maxAmplitude)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if err := t.AddRawData(mono); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return t, nil
}

// readAll drains the decoder, normalizing 16-bit samples to [-1, 1].
func readAll(dec aiffReader, format *goaudio.Format) ([]float64, error) {
	intBuf := &goaudio.IntBuffer{
		Data:   make([]int, 4096),
		Format: format,
	}

	var samples []float64
	for {
		n, err := dec.PCMBuffer(intBuf)
		if n == 0 {
			if err != nil && err != io.EOF {
				return nil, fmt.Errorf("%w", err)
			}
			break
		}

		for _, v := range intBuf.Data[:n] {
			samples = append(samples, float64(v)/32767.0)
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return samples, nil
}

// Loader adapts Decode to the track.Loader interface.
type Loader struct{}

func (Loader) Load(r io.ReadSeeker, maxAmplitude float64) (*track.Track, error) {
	return Decode(r, maxAmplitude)
}
