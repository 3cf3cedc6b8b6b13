// SPDX-License-Identifier: EPL-2.0

package mpa

import (
	"errors"

	"github.com/ik5/mpadec/internal/bits"
)

var (
	ErrNoFrameFound      = errors.New("mpa: no valid frame found")
	ErrOutOfData         = bits.ErrOutOfData
	ErrMalformedSideInfo = errors.New("mpa: malformed side information")
	ErrCRCMismatch       = errors.New("mpa: frame CRC mismatch")
	ErrNilDecoder        = errors.New("mpa: nil decoder")
	ErrDecoderClosed     = errors.New("mpa: decoder is closed")
	ErrShortBuffer       = errors.New("mpa: pcm buffer too short for frame")

	ErrBadSync            = errors.New("mpa: no sync word")
	ErrUnsupportedLayer   = errors.New("mpa: unsupported layer")
	ErrUnsupportedVersion = errors.New("mpa: unsupported MPEG version")
	ErrBadBitrate         = errors.New("mpa: free format or forbidden bitrate index")
	ErrBadSampleRate      = errors.New("mpa: reserved sample rate index")
)
