// SPDX-License-Identifier: EPL-2.0

package mpa

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ik5/mpadec/internal/bits"
	"github.com/ik5/mpadec/internal/synth"
	"github.com/ik5/mpadec/internal/tables"
)

const (
	maxSamplesPerFrame = 1152

	// MaxPCMLength is the interleaved buffer length that holds any frame.
	MaxPCMLength = maxSamplesPerFrame * synth.MaxChannels
)

// MaxSamplesPerFrame returns the largest per-channel sample count a frame
// can produce.
func MaxSamplesPerFrame() int { return maxSamplesPerFrame }

// Decoder decodes MPEG-1/2 Layer I and II frames. It keeps the synthesis
// history between calls, so one Decoder serves one stream. A Decoder is
// not safe for concurrent use.
type Decoder struct {
	filter  synth.Filter
	side    sideInfo
	samples subbandSamples
	reader  bits.Reader

	log      zerolog.Logger
	checkCRC bool
	closed   bool
}

// NewDecoder returns a decoder with silent history.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Close releases the decoder. Later calls fail with ErrDecoderClosed.
// Closing a nil or closed decoder is a no-op.
func (d *Decoder) Close() error {
	if d == nil {
		return nil
	}
	d.closed = true
	d.filter.Reset()

	return nil
}

// Reset clears the synthesis history, as after a seek or stream switch.
func (d *Decoder) Reset() {
	if d == nil {
		return
	}
	d.filter.Reset()
}

// Probe locates the next frame in input and reports it as Decode would,
// with Samples set to the frame's sample count. Nothing is decoded and the
// synthesis history is untouched.
func (d *Decoder) Probe(input []byte) (FrameInfo, error) {
	if err := d.usable(); err != nil {
		return FrameInfo{}, err
	}

	off, h, err := FindFrame(input)
	if err != nil {
		return FrameInfo{}, err
	}

	info := newFrameInfo(h, off)
	info.Samples = h.SamplesPerFrame()

	return info, nil
}

// DecodeFrame decodes the next frame of input into pcm, interleaved by
// channel, and never fails: problems show up as Samples == 0. FrameBytes
// is still set for a frame that was found but could not be decoded, so
// the caller can skip it.
func (d *Decoder) DecodeFrame(input []byte, pcm []int16) FrameInfo {
	info, _ := d.Decode(input, pcm)
	return info
}

// Decode is DecodeFrame with the reason for a zero-sample result. When a
// frame was found but is malformed, the returned FrameInfo describes it
// with Samples == 0. Other errors come with a zero FrameInfo.
func (d *Decoder) Decode(input []byte, pcm []int16) (FrameInfo, error) {
	if err := d.usable(); err != nil {
		return FrameInfo{}, err
	}

	off, h, err := FindFrame(input)
	if err != nil {
		return FrameInfo{}, err
	}

	if need := h.SamplesPerFrame() * h.Channels(); len(pcm) < need {
		return FrameInfo{}, fmt.Errorf("%w: need %d, have %d", ErrShortBuffer, need, len(pcm))
	}

	info := newFrameInfo(h, off)
	if err := d.readFrame(input[off:off+h.FrameLength()], h); err != nil {
		d.log.Debug().
			Err(err).
			Int("offset", off).
			Stringer("layer", h.Layer).
			Int("bitrate_kbps", h.Bitrate()).
			Msg("dropping frame")

		return info, err
	}

	d.synthesize(h, pcm)
	info.Samples = h.SamplesPerFrame()

	return info, nil
}

func (d *Decoder) usable() error {
	if d == nil {
		return ErrNilDecoder
	}
	if d.closed {
		return ErrDecoderClosed
	}
	return nil
}

// readFrame parses the side information and samples of frame into the
// decoder's scratch space. The synthesis history is not touched, so a
// failed frame leaves the decoder as it was.
func (d *Decoder) readFrame(frame []byte, h FrameHeader) error {
	r := &d.reader
	r.Init(frame)
	if err := r.Skip(HeaderSize * 8); err != nil {
		return err
	}
	if h.Protected {
		if err := r.Skip(16); err != nil {
			return err
		}
	}

	si := &d.side
	var err error
	if h.Layer == LayerI {
		si.reset(h, synth.Subbands)
		err = si.readLayerIAlloc(r)
	} else {
		tab := tables.Table(tables.SelectLayerII(h.row(), h.Bitrate(), h.Channels(), h.SampleRateIndex))
		si.reset(h, tab.SBLimit)
		if err = si.readLayerIIAlloc(r, tab); err == nil {
			err = si.readSCFSI(r)
		}
	}
	if err != nil {
		return fmt.Errorf("side information: %w", err)
	}

	if d.checkCRC && h.Protected {
		if got, want := frameCRC(frame, r.Position()), storedCRC(frame); got != want {
			return fmt.Errorf("%w: computed %#04x, stored %#04x", ErrCRCMismatch, got, want)
		}
	}

	if need := si.payloadBits(h.Layer); need > r.Remaining() {
		return fmt.Errorf("%w: allocation needs %d bits, %d left", ErrMalformedSideInfo, need, r.Remaining())
	}

	d.samples = subbandSamples{}
	if h.Layer == LayerI {
		if err = si.readLayerIScales(r); err == nil {
			si.prepare()
			err = si.readLayerISamples(r, &d.samples)
		}
	} else {
		if err = si.readLayerIIScales(r); err == nil {
			si.prepare()
			err = si.readLayerIISamples(r, &d.samples)
		}
	}
	if err != nil {
		return fmt.Errorf("samples: %w", err)
	}

	return nil
}

func (d *Decoder) synthesize(h FrameHeader, pcm []int16) {
	nch := h.Channels()
	slots := h.SamplesPerFrame() / synth.Subbands

	for slot := range slots {
		base := slot * synth.Subbands * nch
		for ch := range nch {
			d.filter.Synthesize(ch, &d.samples[ch][slot], pcm[base+ch:], nch)
		}
	}
}
