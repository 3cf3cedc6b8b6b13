// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedFormat    = errors.New("only integer PCM WAV is supported")
	ErrUnsupportedBitDepth  = errors.New("only 16, 24 and 32-bit WAV is supported")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
)
