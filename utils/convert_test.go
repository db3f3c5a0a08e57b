// SPDX-License-Identifier: EPL-2.0

package utils

import "testing"

func TestFloat64ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   float64
		want int16
	}{
		{"zero", 0, 0},
		{"positive full scale", 1, 32767},
		{"negative full scale", -1, -32767},
		{"half scale", 0.5, 16383},
		{"clamped high", 2, 32767},
		{"clamped low", -2, -32767},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Float64ToInt16(tt.in); got != tt.want {
				t.Errorf("Float64ToInt16(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestFloat64ToInt32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   float64
		want int32
	}{
		{"zero", 0, 0},
		{"positive full scale", 1, 2147483647},
		{"negative full scale", -1, -2147483647},
		{"clamped high", 1.5, 2147483647},
		{"clamped low", -1.5, -2147483647},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Float64ToInt32(tt.in); got != tt.want {
				t.Errorf("Float64ToInt32(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}
