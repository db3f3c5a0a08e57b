// SPDX-License-Identifier: EPL-2.0

package players

import (
	"fmt"

	"github.com/gordonklaus/portaudio"

	"github.com/sonouno/sonotrack/track"
)

const framesPerBuffer = 1024

// PortAudioPlayer plays tracks on the default output device through the
// PortAudio library.
type PortAudioPlayer struct{}

// NewPortAudioPlayer initializes PortAudio. It fails with
// ErrNoOutputDevice when no default output device exists.
func NewPortAudioPlayer() (*PortAudioPlayer, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	dev, err := portaudio.DefaultOutputDevice()
	if err != nil || dev == nil {
		_ = portaudio.Terminate()
		return nil, ErrNoOutputDevice
	}

	return &PortAudioPlayer{}, nil
}

// Play writes the track to the default output stream, blocking until the
// last buffer has been submitted.
func (p *PortAudioPlayer) Play(t *track.Track, cueRead float64, duration ...float64) error {
	data, err := t.GetData(cueRead, duration...)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}

	out := make([]float32, framesPerBuffer)
	stream, err := portaudio.OpenDefaultStream(0, 1, float64(t.Rate()), len(out), &out)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return fmt.Errorf("%w", err)
	}
	defer stream.Stop()

	scale := 1 / t.MaxAmplitude()
	for i := 0; i < len(data); i += framesPerBuffer {
		for j := range out {
			if i+j < len(data) {
				out[j] = float32(data[i+j] * scale)
			} else {
				out[j] = 0
			}
		}
		if err := stream.Write(); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// Close terminates PortAudio.
func (p *PortAudioPlayer) Close() error {
	if err := portaudio.Terminate(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
