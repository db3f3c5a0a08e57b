// SPDX-License-Identifier: EPL-2.0

package notes

import "errors"

// ErrUnknownNote indicates a note name outside the scientific pitch
// notation range C0 - B10.
var ErrUnknownNote = errors.New("unknown note")
