// SPDX-License-Identifier: EPL-2.0

package utils

import "fmt"

// MaxAmplitude returns the conventional maximum amplitude for a sample
// format name:
//   - "int16": 32767
//   - "int32": 2147483647
//   - "float", "float32", "float64": 1
//
// Any other name fails with ErrUnknownSampleFormat.
func MaxAmplitude(format string) (float64, error) {
	switch format {
	case "int16":
		return 32767, nil
	case "int32":
		return 2147483647, nil
	case "float", "float32", "float64":
		return 1, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSampleFormat, format)
	}
}
