// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/sonouno/sonotrack/track"
	"github.com/sonouno/sonotrack/utils"
)

// Decode reads an Ogg Vorbis stream into a track at the stream's sampling
// rate. Multi-channel streams are downmixed to mono and the samples are
// rescaled so that full scale maps to maxAmplitude.
func Decode(r io.Reader, maxAmplitude float64) (*track.Track, error) {
	data, format, err := oggvorbis.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	samples := make([]float64, len(data))
	for i, v := range data {
		samples[i] = float64(v)
	}

	mono := utils.DownmixMono(samples, format.Channels)
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

// Loader adapts Decode to the track.Loader interface.
type Loader struct{}

func (Loader) Load(r io.ReadSeeker, maxAmplitude float64) (*track.Track, error) {
	return Decode(r, maxAmplitude)
}
