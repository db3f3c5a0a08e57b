// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/sonouno/sonotrack/track"
	"github.com/sonouno/sonotrack/utils"
)

// go-mp3 always outputs 16-bit little-endian PCM with two channels.
const (
	mp3Channels       = 2
	mp3BytesPerSample = 2
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	io.Reader
	SampleRate() int
}

// Decode reads an MP3 stream into a track at the stream's sampling rate.
// The stereo output of the decoder is downmixed to mono and rescaled so
// that full scale maps to maxAmplitude.
func Decode(r io.Reader, maxAmplitude float64) (*track.Track, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return decodeFrom(dec, maxAmplitude)
}

func decodeFrom(dec mp3Reader, maxAmplitude float64) (*track.Track, error) {
	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	samples := make([]float64, len(raw)/mp3BytesPerSample)
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(raw[mp3BytesPerSample*i:]))
		samples[i] = float64(v) / 32767.0
	}

	mono := utils.DownmixMono(samples, mp3Channels)
	if maxAmplitude != 1 {
		for i := range mono {
			mono[i] *= maxAmplitude
		}
	}

	t, err := track.New(dec.SampleRate(), maxAmplitude)
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
