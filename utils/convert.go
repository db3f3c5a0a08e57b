// SPDX-License-Identifier: EPL-2.0

package utils

// Float64ToInt16 converts a normalized sample in [-1, 1] to 16-bit PCM.
// Out-of-range values are clamped.
func Float64ToInt16(x float64) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}

// Float64ToInt32 converts a normalized sample in [-1, 1] to 32-bit PCM.
// Out-of-range values are clamped.
func Float64ToInt32(x float64) int32 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int32(x * 2147483647.0)
}
