// SPDX-License-Identifier: EPL-2.0

package sonotrack

import "errors"

// ErrUnknownFormat indicates a file extension with no registered loader.
var ErrUnknownFormat = errors.New("unknown audio format")
