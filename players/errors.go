// SPDX-License-Identifier: EPL-2.0

package players

import "errors"

var (
	// ErrNoOutputDevice indicates no audio output device is available.
	ErrNoOutputDevice = errors.New("there is no output device available")

	// ErrNoPlayer indicates no playback backend could be initialized.
	ErrNoPlayer = errors.New("could not find an appropriate player")

	// ErrUnknownBackend indicates an unrecognized backend name in the
	// environment.
	ErrUnknownBackend = errors.New("unknown player backend")
)
