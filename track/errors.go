// SPDX-License-Identifier: EPL-2.0

package track

import "errors"

var (
	// ErrInvalidArgument indicates a negative time offset, an amplitude
	// outside [0, MaxAmplitude], or a repeat count less than one.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrRateMismatch indicates an attempt to mix tracks with different
	// sampling rates.
	ErrRateMismatch = errors.New("cannot mix tracks with different sampling rates")

	// ErrNotImplemented indicates a partial-duration read request, which
	// is reserved and not implemented.
	ErrNotImplemented = errors.New("not implemented")
)
