// SPDX-License-Identifier: EPL-2.0

package mpadec

import "errors"

// ErrUnknownFormat is returned by Decode for unregistered extensions.
var ErrUnknownFormat = errors.New("unknown audio format")
