// SPDX-License-Identifier: EPL-2.0

// Package pcmio bridges audio.Source and the integer buffers of the
// go-audio codecs.
package pcmio

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/mpadec/audio"
	"github.com/ik5/mpadec/utils"
)

// BitDepth is the sample size written by Copy.
const BitDepth = 16

var ErrSourceClosed = errors.New("pcm source is closed")

// Reader is the read side of the go-audio wav and aiff decoders.
type Reader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Writer is the write side of the go-audio wav and aiff encoders.
type Writer interface {
	Write(buf *goaudio.IntBuffer) error
}

// Source adapts a go-audio decoder to audio.Source.
type Source struct {
	dec        Reader
	sampleRate int
	channels   int
	scale      float32
	buf        *goaudio.IntBuffer
	eof        bool
	closed     bool
}

// NewSource returns a Source reading integer samples of bitDepth bits.
func NewSource(dec Reader, format *goaudio.Format, bitDepth int) *Source {
	return &Source{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   max(format.NumChannels, 1),
		scale:      float32(int64(1) << (bitDepth - 1)),
		buf: &goaudio.IntBuffer{
			Format:         format,
			Data:           make([]int, 0, 4096),
			SourceBitDepth: bitDepth,
		},
	}
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) BufSize() int    { return cap(s.buf.Data) }

func (s *Source) Close() error {
	s.closed = true
	return nil
}

// ReadSamples reads up to len(dst) samples, whole frames only.
func (s *Source) ReadSamples(dst []float32) (int, error) {
	if s.closed {
		return 0, ErrSourceClosed
	}
	if s.eof {
		return 0, io.EOF
	}

	want := len(dst) - len(dst)%s.channels
	if want == 0 {
		return 0, nil
	}

	if cap(s.buf.Data) < want {
		s.buf.Data = make([]int, want)
	}
	s.buf.Data = s.buf.Data[:want]

	n, err := s.dec.PCMBuffer(s.buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("reading pcm: %w", err)
	}
	if n == 0 {
		s.eof = true
		return 0, io.EOF
	}

	for i, v := range s.buf.Data[:n] {
		dst[i] = float32(v) / s.scale
	}

	return n, nil
}

// Copy drains src into w as 16-bit integer samples and returns the number
// of frames written.
func Copy(w Writer, src audio.Source) (int, error) {
	channels := max(src.Channels(), 1)
	size := max(src.BufSize()/channels, 256) * channels

	in := make([]float32, size)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: src.SampleRate()},
		Data:           make([]int, size),
		SourceBitDepth: BitDepth,
	}

	frames := 0
	for {
		n, err := src.ReadSamples(in)
		n -= n % channels
		if n > 0 {
			buf.Data = buf.Data[:n]
			for i, v := range in[:n] {
				buf.Data[i] = int(utils.Float32ToInt16(v))
			}
			if werr := w.Write(buf); werr != nil {
				return frames, fmt.Errorf("writing pcm: %w", werr)
			}
			frames += n / channels
		}

		if errors.Is(err, io.EOF) {
			return frames, nil
		}
		if err != nil {
			return frames, fmt.Errorf("reading source: %w", err)
		}
		if n == 0 {
			return frames, io.ErrNoProgress
		}
	}
}
