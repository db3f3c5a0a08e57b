// SPDX-License-Identifier: EPL-2.0

package sonotrack_test

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/sonouno/sonotrack"
	"github.com/sonouno/sonotrack/formats/wav"
	"github.com/sonouno/sonotrack/track"
)

func TestLoadRoundTrip(t *testing.T) {
	t.Parallel()

	src, err := track.New(8000, 1)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := src.AddSineWave(440, 0.25, 0.5); err != nil {
		t.Fatalf("AddSineWave() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "tone.wav")
	if err := wav.EncodeFile(path, src, "float64"); err != nil {
		t.Fatalf("EncodeFile() error = %v", err)
	}

	got, err := sonotrack.Load(path, 1)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got.Rate() != src.Rate() {
		t.Errorf("Rate() = %d, want %d", got.Rate(), src.Rate())
	}
	if got.Len() != src.Len() {
		t.Fatalf("Len() = %d, want %d", got.Len(), src.Len())
	}

	wantData, _ := src.GetData(0)
	gotData, _ := got.GetData(0)
	for i := range wantData {
		if math.Abs(gotData[i]-wantData[i]) > 1e-12 {
			t.Fatalf("sample %d = %v, want %v", i, gotData[i], wantData[i])
		}
	}
}

func TestLoadUnknownFormat(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"sound.flac", "sound", "sound.wav.bak"} {
		if _, err := sonotrack.Load(path, 1); !errors.Is(err, sonotrack.ErrUnknownFormat) {
			t.Errorf("Load(%q) error = %v, want ErrUnknownFormat", path, err)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	if _, err := sonotrack.Load(filepath.Join(t.TempDir(), "absent.wav"), 1); err == nil {
		t.Fatal("Load() expected error for missing file")
	}
}

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	reg := sonotrack.DefaultRegistry()
	for _, format := range []string{"wav", "mp3", "ogg", "aiff"} {
		if _, ok := reg.Get(format); !ok {
			t.Errorf("Get(%q) missing loader", format)
		}
	}
}
