// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"errors"
	"testing"
)

func TestMaxAmplitude(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		want   float64
	}{
		{"int16", 32767},
		{"int32", 2147483647},
		{"float", 1},
		{"float32", 1},
		{"float64", 1},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			got, err := MaxAmplitude(tt.format)
			if err != nil {
				t.Fatalf("MaxAmplitude(%q) error = %v", tt.format, err)
			}
			if got != tt.want {
				t.Errorf("MaxAmplitude(%q) = %v, want %v", tt.format, got, tt.want)
			}
		})
	}
}

func TestMaxAmplitude_Unknown(t *testing.T) {
	t.Parallel()

	for _, format := range []string{"uint8", "xxx", ""} {
		t.Run(format, func(t *testing.T) {
			_, err := MaxAmplitude(format)
			if !errors.Is(err, ErrUnknownSampleFormat) {
				t.Errorf("MaxAmplitude(%q) error = %v, want ErrUnknownSampleFormat", format, err)
			}
		})
	}
}
