// SPDX-License-Identifier: EPL-2.0

package sonotrack

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sonouno/sonotrack/formats/aiff"
	"github.com/sonouno/sonotrack/formats/mp3"
	"github.com/sonouno/sonotrack/formats/vorbis"
	"github.com/sonouno/sonotrack/formats/wav"
	"github.com/sonouno/sonotrack/players"
	"github.com/sonouno/sonotrack/track"
)

// extensions maps file extensions to registry format keys.
var extensions = map[string]string{
	".wav":  "wav",
	".mp3":  "mp3",
	".ogg":  "ogg",
	".oga":  "ogg",
	".aif":  "aiff",
	".aiff": "aiff",
}

// DefaultRegistry returns a registry with every built-in loader
// registered.
func DefaultRegistry() *track.Registry {
	r := track.NewRegistry()
	r.Register("wav", wav.Loader{})
	r.Register("mp3", mp3.Loader{})
	r.Register("ogg", vorbis.Loader{})
	r.Register("aiff", aiff.Loader{})
	return r
}

// Load reads an audio file into a track, picking the loader from the
// file extension. Full-scale content in the source maps to maxAmplitude.
func Load(path string, maxAmplitude float64) (*track.Track, error) {
	ext := strings.ToLower(filepath.Ext(path))
	format, ok := extensions[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	loader, ok := DefaultRegistry().Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	return loader.Load(f, maxAmplitude)
}

// Play renders the whole track on the backend selected from the
// environment and blocks until playback completes.
func Play(t *track.Track) error {
	p, err := players.Detect()
	if err != nil {
		return err
	}
	defer p.Close()

	return p.Play(t, 0)
}
