// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"io"

	"github.com/go-audio/aiff"

	"github.com/ik5/mpadec/audio"
	"github.com/ik5/mpadec/internal/memfile"
	"github.com/ik5/mpadec/internal/pcmio"
)

// Decoder reads uncompressed AIFF files. go-audio needs an io.ReadSeeker,
// so other readers are buffered in memory first.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := memfile.ReadSeeker(r)
	if err != nil {
		return nil, err
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	switch dec.BitDepth {
	case 16, 24, 32:
	default:
		return nil, ErrUnsupportedBitDepth
	}

	format := dec.Format()
	if format == nil || format.NumChannels < 1 || format.SampleRate <= 0 {
		return nil, ErrUnsupportedAiffLayout
	}

	return pcmio.NewSource(dec, format, int(dec.BitDepth)), nil
}
