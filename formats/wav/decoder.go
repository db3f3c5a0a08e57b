// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	goawav "github.com/go-audio/wav"

	"github.com/sonouno/sonotrack/track"
	"github.com/sonouno/sonotrack/utils"
)

// Decode reads a WAV file into a track at the file's sampling rate.
// Multi-channel files are downmixed to mono by channel averaging, and the
// samples are rescaled so that full scale in the file maps to
// maxAmplitude.
//
// Supported encodings are PCM 16/32-bit and IEEE float 32/64-bit.
func Decode(r io.ReadSeeker, maxAmplitude float64) (*track.Track, error) {
	d := goawav.NewDecoder(r)
	if !d.IsValidFile() {
		return nil, ErrNotWavFile
	}

	switch d.WavAudioFormat {
	case formatPCM:
		return decodePCM(d, maxAmplitude)
	case formatIEEEFloat:
		return decodeFloat(r, int(d.BitDepth), maxAmplitude)
	default:
		return nil, fmt.Errorf("%w: audio format %d", ErrUnsupportedWavEncoding, d.WavAudioFormat)
	}
}

// DecodeFile reads the WAV file at the given path into a track.
func DecodeFile(path string, maxAmplitude float64) (*track.Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	return Decode(f, maxAmplitude)
}

// Loader adapts Decode to the track.Loader interface.
type Loader struct{}

func (Loader) Load(r io.ReadSeeker, maxAmplitude float64) (*track.Track, error) {
	return Decode(r, maxAmplitude)
}

func decodePCM(d *goawav.Decoder, maxAmplitude float64) (*track.Track, error) {
	var sourceMax float64
	switch d.BitDepth {
	case 16:
		sourceMax = 32767
	case 32:
		sourceMax = 2147483647
	default:
		return nil, fmt.Errorf("%w: PCM %d-bit", ErrUnsupportedWavEncoding, d.BitDepth)
	}

	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	samples := make([]float64, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = float64(v)
	}

	return newTrack(samples, buf.Format.NumChannels, buf.Format.SampleRate, sourceMax, maxAmplitude)
}

// decodeFloat parses an IEEE-float WAV with the canonical 44-byte header
// layout. go-audio decodes PCM only, so float samples are read directly.
func decodeFloat(r io.ReadSeeker, bitDepth int, maxAmplitude float64) (*track.Track, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	header := make([]byte, 44)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if !bytes.HasPrefix(header[:4], []byte("RIFF")) || !bytes.HasPrefix(header[8:12], []byte("WAVE")) {
		return nil, ErrNotWavFile
	}
	// Assume the canonical layout: fmt chunk at 12, data chunk at 36.
	if !bytes.HasPrefix(header[12:16], []byte("fmt ")) || !bytes.HasPrefix(header[36:40], []byte("data")) {
		return nil, ErrUnsupportedWavLayout
	}

	channels := int(binary.LittleEndian.Uint16(header[22:24]))
	sampleRate := int(binary.LittleEndian.Uint32(header[24:28]))

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	dataSize := int(binary.LittleEndian.Uint32(header[40:44]))
	if dataSize < len(raw) {
		raw = raw[:dataSize]
	}

	var samples []float64
	switch bitDepth {
	case 32:
		samples = make([]float64, len(raw)/4)
		for i := range samples {
			bits := binary.LittleEndian.Uint32(raw[4*i : 4*i+4])
			samples[i] = float64(math.Float32frombits(bits))
		}
	case 64:
		samples = make([]float64, len(raw)/8)
		for i := range samples {
			bits := binary.LittleEndian.Uint64(raw[8*i : 8*i+8])
			samples[i] = math.Float64frombits(bits)
		}
	default:
		return nil, fmt.Errorf("%w: IEEE float %d-bit", ErrUnsupportedWavEncoding, bitDepth)
	}

	return newTrack(samples, channels, sampleRate, 1, maxAmplitude)
}

func newTrack(samples []float64, channels, rate int, sourceMax, maxAmplitude float64) (*track.Track, error) {
	mono := utils.DownmixMono(samples, channels)

	if scale := maxAmplitude / sourceMax; scale != 1 {
		for i := range mono {
			mono[i] *= scale
		}
	}

	t, err := track.New(rate, maxAmplitude)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if err := t.AddRawData(mono); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return t, nil
}
