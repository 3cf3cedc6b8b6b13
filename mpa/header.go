// SPDX-License-Identifier: EPL-2.0

package mpa

import (
	"github.com/ik5/mpadec/internal/bits"
	"github.com/ik5/mpadec/internal/tables"
)

// HeaderSize is the length of the fixed frame header in bytes.
const HeaderSize = 4

// Version is the MPEG audio ID.
type Version uint8

const (
	MPEG1 Version = 1
	MPEG2 Version = 2 // low sampling frequencies, ISO/IEC 13818-3
)

func (v Version) String() string {
	switch v {
	case MPEG1:
		return "MPEG-1"
	case MPEG2:
		return "MPEG-2"
	}
	return "unknown"
}

// Layer is the coding layer.
type Layer uint8

const (
	LayerI   Layer = 1
	LayerII  Layer = 2
	LayerIII Layer = 3
)

func (l Layer) String() string {
	switch l {
	case LayerI:
		return "Layer I"
	case LayerII:
		return "Layer II"
	case LayerIII:
		return "Layer III"
	}
	return "unknown"
}

// Mode is the channel mode.
type Mode uint8

const (
	ModeStereo Mode = iota
	ModeJointStereo
	ModeDualChannel
	ModeMono
)

func (m Mode) String() string {
	switch m {
	case ModeStereo:
		return "stereo"
	case ModeJointStereo:
		return "joint stereo"
	case ModeDualChannel:
		return "dual channel"
	case ModeMono:
		return "mono"
	}
	return "unknown"
}

// FrameHeader is a parsed and validated frame header.
type FrameHeader struct {
	Version         Version
	Layer           Layer
	Protected       bool // a 16-bit CRC follows the header
	BitrateIndex    int
	SampleRateIndex int
	Padding         bool
	Private         bool
	Mode            Mode
	ModeExtension   int
	Copyright       bool
	Original        bool
	Emphasis        int
}

// ParseHeader decodes the four header bytes at the start of b. It rejects
// Layer III, MPEG-2.5, free format and every reserved index. The errors
// are unwrapped sentinels so scanning stays allocation free.
func ParseHeader(b []byte) (FrameHeader, error) {
	if len(b) < HeaderSize {
		return FrameHeader{}, ErrOutOfData
	}

	var r bits.Reader
	r.Init(b[:HeaderSize])
	// 32 bits are available, so none of these reads can fail.
	field := func(n int) int {
		v, _ := r.ReadBits(n)
		return int(v)
	}

	if field(11) != 0x7FF {
		return FrameHeader{}, ErrBadSync
	}

	var h FrameHeader
	switch field(2) {
	case 3:
		h.Version = MPEG1
	case 2:
		h.Version = MPEG2
	default:
		// MPEG-2.5 or reserved.
		return FrameHeader{}, ErrUnsupportedVersion
	}

	switch field(2) {
	case 3:
		h.Layer = LayerI
	case 2:
		h.Layer = LayerII
	default:
		// Layer III or reserved.
		return FrameHeader{}, ErrUnsupportedLayer
	}

	h.Protected = field(1) == 0
	h.BitrateIndex = field(4)
	h.SampleRateIndex = field(2)
	h.Padding = field(1) == 1
	h.Private = field(1) == 1
	h.Mode = Mode(field(2))
	h.ModeExtension = field(2)
	h.Copyright = field(1) == 1
	h.Original = field(1) == 1
	h.Emphasis = field(2)

	if h.Bitrate() == 0 {
		return FrameHeader{}, ErrBadBitrate
	}
	if h.SampleRate() == 0 {
		return FrameHeader{}, ErrBadSampleRate
	}

	return h, nil
}

func (h FrameHeader) row() int {
	if h.Version == MPEG2 {
		return tables.LSF
	}
	return tables.MPEG1
}

// Bitrate returns the bitrate in kbps.
func (h FrameHeader) Bitrate() int {
	return tables.BitrateKbps(h.row(), int(h.Layer), h.BitrateIndex)
}

// SampleRate returns the sampling frequency in Hz.
func (h FrameHeader) SampleRate() int {
	return tables.SampleRate(h.row(), h.SampleRateIndex)
}

// Channels returns 1 for mono and 2 for every other mode.
func (h FrameHeader) Channels() int {
	if h.Mode == ModeMono {
		return 1
	}
	return 2
}

// SamplesPerFrame returns the PCM samples per channel a frame carries.
func (h FrameHeader) SamplesPerFrame() int {
	if h.Layer == LayerI {
		return 384
	}
	return 1152
}

// FrameLength returns the frame length in bytes including the header.
func (h FrameHeader) FrameLength() int {
	br := h.Bitrate() * 1000
	sr := h.SampleRate()
	if sr == 0 {
		return 0
	}

	pad := 0
	if h.Padding {
		pad = 1
	}

	if h.Layer == LayerI {
		return (12*br/sr + pad) * 4
	}
	return 144*br/sr + pad
}

// Bound returns the first subband coded jointly, or 32 outside joint
// stereo. Callers cap it at the subband limit in use.
func (h FrameHeader) Bound() int {
	if h.Mode != ModeJointStereo {
		return 32
	}
	return (h.ModeExtension + 1) * 4
}

// compatible reports whether o can follow h in the same stream.
func (h FrameHeader) compatible(o FrameHeader) bool {
	return h.Version == o.Version && h.Layer == o.Layer && h.SampleRateIndex == o.SampleRateIndex
}
