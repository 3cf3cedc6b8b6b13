// SPDX-License-Identifier: EPL-2.0

package mp2

import "errors"

var (
	// ErrNoFrames indicates the input holds no decodable Layer I/II frame.
	ErrNoFrames = errors.New("no MPEG audio Layer I/II frames found")

	// ErrSourceClosed is returned by ReadSamples after Close.
	ErrSourceClosed = errors.New("mp2 source is closed")
)
