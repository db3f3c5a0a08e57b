// SPDX-License-Identifier: EPL-2.0

package players

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/sonouno/sonotrack/track"
)

// Player renders a track to an output backend. The duration argument is
// reserved for partial playback and is not implemented.
type Player interface {
	Play(t *track.Track, cueRead float64, duration ...float64) error

	// Close releases the backend resources.
	Close() error
}

// Environment variables honored by Detect. A .env file in the working
// directory is loaded first.
const (
	// EnvPlayer selects the playback backend: "portaudio", "malgo" or
	// "buffer".
	EnvPlayer = "SONOTRACK_PLAYER"

	// EnvOutput sets the output path of the "buffer" backend; standard
	// output is used when unset.
	EnvOutput = "SONOTRACK_OUTPUT"
)

// Detect returns an audio player according to the current environment.
//
// When EnvPlayer names a backend, that backend is used. Otherwise the
// hardware backends are probed in order (PortAudio, then miniaudio) and
// the first one that initializes wins. Detect fails with ErrNoPlayer when
// no backend is available.
func Detect() (Player, error) {
	_ = godotenv.Load()

	switch backend := os.Getenv(EnvPlayer); backend {
	case "portaudio":
		return NewPortAudioPlayer()
	case "malgo":
		return NewMalgoPlayer()
	case "buffer":
		path := os.Getenv(EnvOutput)
		if path == "" {
			return NewBufferPlayer(os.Stdout), nil
		}
		f, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		return NewBufferPlayer(f), nil
	case "":
		// Probe below.
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}

	if p, err := NewPortAudioPlayer(); err == nil {
		return p, nil
	}
	if p, err := NewMalgoPlayer(); err == nil {
		return p, nil
	}
	return nil, ErrNoPlayer
}
