// SPDX-License-Identifier: EPL-2.0

package players

import (
	"fmt"
	"io"

	"github.com/sonouno/sonotrack/formats/wav"
	"github.com/sonouno/sonotrack/track"
)

// BufferPlayer renders tracks as in-memory WAV objects written to an
// io.Writer instead of an audio device. It serves headless environments
// where the caller forwards the rendered audio elsewhere.
type BufferPlayer struct {
	w io.Writer
}

func NewBufferPlayer(w io.Writer) *BufferPlayer {
	return &BufferPlayer{w: w}
}

// Play encodes the readable window of the track as a 16-bit PCM WAV and
// writes it to the underlying writer.
func (p *BufferPlayer) Play(t *track.Track, cueRead float64, duration ...float64) error {
	data, err := t.GetData(cueRead, duration...)
	if err != nil {
		return err
	}

	window, err := track.New(t.Rate(), t.MaxAmplitude())
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	if err := window.AddRawData(data); err != nil {
		return fmt.Errorf("%w", err)
	}

	return wav.Encode(p.w, window, "int16")
}

// Close closes the underlying writer when it is closable.
func (p *BufferPlayer) Close() error {
	if c, ok := p.w.(io.Closer); ok {
		if err := c.Close(); err != nil {
			return fmt.Errorf("%w", err)
		}
	}
	return nil
}
