// SPDX-License-Identifier: EPL-2.0

package players

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync"

	"github.com/gen2brain/malgo"

	"github.com/sonouno/sonotrack/track"
)

// MalgoPlayer plays tracks on the default output device through the
// miniaudio library.
type MalgoPlayer struct {
	ctx *malgo.AllocatedContext
}

func NewMalgoPlayer() (*MalgoPlayer, error) {
	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &MalgoPlayer{ctx: ctx}, nil
}

// Play feeds the track to a playback device from the data callback,
// blocking until the last sample has been submitted.
func (p *MalgoPlayer) Play(t *track.Track, cueRead float64, duration ...float64) error {
	data, err := t.GetData(cueRead, duration...)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}

	cfg := malgo.DefaultDeviceConfig(malgo.Playback)
	cfg.Playback.Format = malgo.FormatF32
	cfg.Playback.Channels = 1
	cfg.SampleRate = uint32(t.Rate())

	scale := 1 / t.MaxAmplitude()
	pos := 0
	done := make(chan struct{})
	var once sync.Once

	callbacks := malgo.DeviceCallbacks{
		Data: func(out, in []byte, frameCount uint32) {
			const bytesPerSample = 4
			for i := range int(frameCount) {
				var v float32
				if pos < len(data) {
					v = float32(data[pos] * scale)
					pos++
				}
				binary.LittleEndian.PutUint32(out[i*bytesPerSample:], math.Float32bits(v))
			}
			if pos >= len(data) {
				once.Do(func() { close(done) })
			}
		},
	}

	device, err := malgo.InitDevice(p.ctx.Context, cfg, callbacks)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer device.Uninit()

	if err := device.Start(); err != nil {
		return fmt.Errorf("%w", err)
	}

	<-done
	return nil
}

// Close releases the miniaudio context.
func (p *MalgoPlayer) Close() error {
	if err := p.ctx.Uninit(); err != nil {
		return fmt.Errorf("%w", err)
	}
	p.ctx.Free()
	return nil
}
