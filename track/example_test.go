// SPDX-License-Identifier: EPL-2.0

package track_test

import (
	"fmt"

	"github.com/sonouno/sonotrack/track"
)

// Example_overlay demonstrates the additive write semantics: two events
// occupying the same time window sum their amplitudes.
func Example_overlay() {
	tr, _ := track.New(4, 1)
	tr.AddRawData([]float64{1, 1, 1, 1})
	tr.SetCueWrite(0.25)
	tr.AddRawData([]float64{2, 2})

	data, _ := tr.GetData(0)
	fmt.Println(data)
	// Output: [1 3 3 1]
}

// Example_gap shows that moving the write cue past the end of the track
// leaves a gap that reads back as silence.
func Example_gap() {
	tr, _ := track.New(2, 1)
	tr.AddBlank(2)
	tr.AddRawData([]float64{1, -1})

	data, _ := tr.GetData(0)
	fmt.Println(data)
	// Output: [0 0 0 0 1 -1]
}

// Example_chord plays three sine waves concurrently by rewinding the write
// cue between them.
func Example_chord() {
	tr := track.NewDefault()
	tr.AddSineWave(440, 1, 0.25)
	tr.SetCueWrite(0)
	tr.AddSineWave(554.37, 1, 0.25)
	tr.SetCueWrite(0)
	tr.AddSineWave(659.25, 1, 0.25)

	fmt.Printf("%.0f second chord, %d samples\n", tr.Duration(), tr.Len())
	// Output: 1 second chord, 44100 samples
}
