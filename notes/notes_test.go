// SPDX-License-Identifier: EPL-2.0

package notes

import (
	"errors"
	"math"
	"testing"
)

func TestNoteFrequencies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		note string
		want float64
	}{
		{"A0", 27.5},
		{"A4", 440},
		{"C#4", 277.1826},
		{"Db4", 277.1826},
		{"C0", 16.3516},
		{"B10", 31608.5314},
	}

	frequencies := NoteFrequencies()

	for _, tt := range tests {
		t.Run(tt.note, func(t *testing.T) {
			got, ok := frequencies[tt.note]
			if !ok {
				t.Fatalf("note %q missing from table", tt.note)
			}
			if math.Abs(got-tt.want) > 1e-4*tt.want {
				t.Errorf("frequency = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNoteFrequencies_Size(t *testing.T) {
	t.Parallel()

	// 12 notes plus 5 flat aliases per octave, 11 octaves.
	want := 11 * (12 + 5)
	if got := len(NoteFrequencies()); got != want {
		t.Errorf("len(NoteFrequencies()) = %d, want %d", got, want)
	}
}

func TestNoteFrequencies_ReturnsCopy(t *testing.T) {
	t.Parallel()

	frequencies := NoteFrequencies()
	frequencies["A4"] = 432

	if got, _ := Name("A4").Frequency(); got != 440 {
		t.Errorf("table mutated through NoteFrequencies copy: A4 = %v", got)
	}
}

func TestPitch_Name(t *testing.T) {
	t.Parallel()

	got, err := Name("A4").Frequency()
	if err != nil {
		t.Fatalf("Frequency() error = %v", err)
	}
	if got != 440 {
		t.Errorf("Frequency() = %v, want 440", got)
	}
}

func TestPitch_Hz(t *testing.T) {
	t.Parallel()

	got, err := Hz(440).Frequency()
	if err != nil {
		t.Fatalf("Frequency() error = %v", err)
	}
	if got != 440 {
		t.Errorf("Frequency() = %v, want 440", got)
	}
}

func TestPitch_UnknownNote(t *testing.T) {
	t.Parallel()

	for _, note := range []string{"B-1", "C11", "B#4", "Cb4", "xxx"} {
		t.Run(note, func(t *testing.T) {
			_, err := Name(note).Frequency()
			if !errors.Is(err, ErrUnknownNote) {
				t.Errorf("Frequency() error = %v, want ErrUnknownNote", err)
			}
		})
	}
}

func TestPitch_String(t *testing.T) {
	t.Parallel()

	if got := Name("A4").String(); got != "A4" {
		t.Errorf("String() = %q, want %q", got, "A4")
	}
	if got := Hz(440).String(); got != "440Hz" {
		t.Errorf("String() = %q, want %q", got, "440Hz")
	}
}

func BenchmarkPitch_Frequency(b *testing.B) {
	p := Name("A4")

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, _ = p.Frequency()
	}
}
