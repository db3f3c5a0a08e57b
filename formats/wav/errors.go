// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	// ErrNotWavFile indicates the input is not a valid WAV file.
	ErrNotWavFile = errors.New("not a WAV file")

	// ErrUnsupportedWavLayout indicates a WAV chunk layout this package
	// cannot parse.
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")

	// ErrUnsupportedSampleFormat indicates an encode request with a
	// sample format other than int16, int32, float32 or float64.
	ErrUnsupportedSampleFormat = errors.New("cannot infer a wave format for sample format")

	// ErrUnsupportedWavEncoding indicates a decode request for a sample
	// encoding outside the supported set.
	ErrUnsupportedWavEncoding = errors.New("unsupported WAV sample encoding")
)
