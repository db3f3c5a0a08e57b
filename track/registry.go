// SPDX-License-Identifier: EPL-2.0

package track

import (
	"io"
	"sync"
)

// Loader constructs a Track from an input reader. The loaded track is
// scaled so that full-scale content in the source maps to maxAmplitude.
type Loader interface {
	Load(r io.ReadSeeker, maxAmplitude float64) (*Track, error)
}

// Registry holds loaders by format key (e.g., "wav", "mp3", "ogg").
type Registry struct {
	loaders map[string]Loader

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		loaders: make(map[string]Loader),
		mtx:     &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, l Loader) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.loaders[format] = l
}

func (r *Registry) Get(format string) (Loader, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	l, ok := r.loaders[format]
	return l, ok
}
