// SPDX-License-Identifier: EPL-2.0

package utils

// DownmixMono mixes an interleaved multi-channel sample block down to mono
// by averaging the channels of each frame. A mono input is returned
// unchanged. Trailing samples of an incomplete frame are dropped.
func DownmixMono(interleaved []float64, channels int) []float64 {
	if channels <= 1 {
		return interleaved
	}

	frames := len(interleaved) / channels
	out := make([]float64, frames)
	invChannels := 1 / float64(channels)

	switch channels {
	case 2: // Stereo (most common)
		for f := 0; f < frames; f++ {
			idx := f << 1
			out[f] = (interleaved[idx] + interleaved[idx+1]) * 0.5
		}
	default: // Generic path
		for f := 0; f < frames; f++ {
			sum := float64(0)
			baseIdx := f * channels
			for c := 0; c < channels; c++ {
				sum += interleaved[baseIdx+c]
			}
			out[f] = sum * invChannels
		}
	}

	return out
}
