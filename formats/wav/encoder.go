// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/sonouno/sonotrack/track"
	"github.com/sonouno/sonotrack/utils"
)

const (
	formatPCM       = 1
	formatIEEEFloat = 3
)

// encoding describes one supported sample encoding. put writes a single
// normalized sample in [-1, 1] into buf in little-endian order.
type encoding struct {
	audioFormat   uint16
	bitsPerSample uint16
	put           func(buf []byte, x float64)
}

var encodings = map[string]encoding{
	"int16": {formatPCM, 16, func(buf []byte, x float64) {
		binary.LittleEndian.PutUint16(buf, uint16(utils.Float64ToInt16(x)))
	}},
	"int32": {formatPCM, 32, func(buf []byte, x float64) {
		binary.LittleEndian.PutUint32(buf, uint32(utils.Float64ToInt32(x)))
	}},
	"float32": {formatIEEEFloat, 32, func(buf []byte, x float64) {
		binary.LittleEndian.PutUint32(buf, math.Float32bits(float32(x)))
	}},
	"float64": {formatIEEEFloat, 64, func(buf []byte, x float64) {
		binary.LittleEndian.PutUint64(buf, math.Float64bits(x))
	}},
}

// Encode writes the track content as a mono WAV file using the given
// sample format ("int16", "int32", "float32" or "float64"). The track
// samples are rescaled from the track's maximum amplitude to the full
// scale of the chosen format.
func Encode(w io.Writer, t *track.Track, format string) error {
	enc, ok := encodings[format]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedSampleFormat, format)
	}

	data, err := t.GetData(0)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	numChannels := uint16(1)
	bytesPerSample := int(enc.bitsPerSample / 8)
	byteRate := uint32(t.Rate()) * uint32(numChannels) * uint32(bytesPerSample)
	blockAlign := numChannels * uint16(bytesPerSample)
	dataSize := uint32(len(data) * bytesPerSample)
	riffSize := 36 + dataSize

	// Pre-allocate buffer for entire header (44 bytes)
	header := make([]byte, 44)

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], enc.audioFormat)
	binary.LittleEndian.PutUint16(header[22:24], numChannels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(t.Rate()))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], enc.bitsPerSample)

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	if len(data) == 0 {
		return nil
	}

	// Normalize to [-1, 1]; the per-format put function applies the
	// format's own full scale.
	scale := 1 / t.MaxAmplitude()

	// Convert and write in chunks to bound the buffer size
	const chunkSize = 8192
	bufSize := min(len(data), chunkSize)
	buf := make([]byte, bufSize*bytesPerSample)

	for i := 0; i < len(data); i += chunkSize {
		end := min(i+chunkSize, len(data))
		chunk := data[i:end]
		buf = buf[:len(chunk)*bytesPerSample]

		for j, s := range chunk {
			enc.put(buf[j*bytesPerSample:(j+1)*bytesPerSample], s*scale)
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// EncodeFile writes the track to a WAV file at the given path.
func EncodeFile(path string, t *track.Track, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := Encode(f, t, format); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
