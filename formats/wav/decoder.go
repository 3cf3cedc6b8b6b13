// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"io"

	"github.com/go-audio/wav"

	"github.com/ik5/mpadec/audio"
	"github.com/ik5/mpadec/internal/memfile"
	"github.com/ik5/mpadec/internal/pcmio"
)

const formatPCM = 1

// Decoder reads integer PCM WAV files. Inputs that cannot seek are
// buffered in memory first.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := memfile.ReadSeeker(r)
	if err != nil {
		return nil, err
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}
	if dec.WavAudioFormat != formatPCM {
		return nil, ErrUnsupportedFormat
	}

	switch dec.BitDepth {
	case 16, 24, 32:
	default:
		return nil, ErrUnsupportedBitDepth
	}

	format := dec.Format()
	if format == nil || format.SampleRate <= 0 {
		return nil, ErrUnsupportedWavLayout
	}

	return pcmio.NewSource(dec, format, int(dec.BitDepth)), nil
}
