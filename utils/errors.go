// SPDX-License-Identifier: EPL-2.0

package utils

import "errors"

// ErrUnknownSampleFormat indicates a sample format name with no known
// maximum amplitude convention.
var ErrUnknownSampleFormat = errors.New("the maximum amplitude cannot be inferred from the sample format")
