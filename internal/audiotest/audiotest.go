// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides sample-block helpers shared by tests.
package audiotest

import "math"

// Sine returns amplitude*sin(2*pi*frequency*t) sampled at rate for the
// given duration in seconds.
func Sine(rate int, frequency, duration, amplitude float64) []float64 {
	n := int(float64(rate) * duration)
	out := make([]float64, n)
	for i := range out {
		out[i] = amplitude * math.Sin(2*math.Pi*frequency*float64(i)/float64(rate))
	}
	return out
}

// Constant returns n samples of the given value.
func Constant(n int, value float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// AlmostEqual reports whether a and b have the same length and match
// element-wise within tol.
func AlmostEqual(a, b []float64, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}
