// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrInvalidDstSize is returned when a read buffer does not hold a
	// whole number of frames.
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrInvalidRate is returned for a non-positive target sample rate.
	ErrInvalidRate = errors.New("sample rate must be positive")
)
