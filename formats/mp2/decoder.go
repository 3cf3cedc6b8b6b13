// SPDX-License-Identifier: EPL-2.0

package mp2

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/ik5/mpadec/audio"
	"github.com/ik5/mpadec/mpa"
	"github.com/ik5/mpadec/utils"
)

const (
	// maxFrameLength is a padded Layer II frame at 384 kbps and 32 kHz,
	// the longest Layer I/II frame.
	maxFrameLength = 1729

	// lookahead keeps a frame and the header confirming it in the window.
	lookahead = 2*maxFrameLength + mpa.HeaderSize

	windowSize = 16 * 1024
)

type source struct {
	r   io.Reader
	dec *mpa.Decoder
	log zerolog.Logger

	window   []byte
	off, end int
	eof      bool

	pcm     []int16
	pending []float32

	sampleRate int
	channels   int
	frames     int
	closed     bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return mpa.MaxPCMLength }

func (s *source) Close() error {
	s.closed = true
	s.pending = nil
	return s.dec.Close()
}

// ReadSamples fills dst with whole interleaved frames, decoding as many
// MPEG frames as it takes.
func (s *source) ReadSamples(dst []float32) (int, error) {
	if s.closed {
		return 0, ErrSourceClosed
	}

	want := len(dst) - len(dst)%s.channels
	n := 0
	for n < want {
		if len(s.pending) == 0 {
			err := s.nextFrame()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return n, err
			}
		}

		c := copy(dst[n:want], s.pending)
		s.pending = s.pending[c:]
		n += c
	}

	if n == 0 && want > 0 {
		return 0, io.EOF
	}

	return n, nil
}

// fill compacts the window and reads until it is full or the input ends.
// Trailing tags are cut once the end is known.
func (s *source) fill() error {
	if s.eof {
		return nil
	}

	s.end = copy(s.window, s.window[s.off:s.end])
	s.off = 0

	for s.end < len(s.window) {
		n, err := s.r.Read(s.window[s.end:])
		s.end += n
		if errors.Is(err, io.EOF) {
			s.eof = true
			s.end = len(mpa.TrimTags(s.window[:s.end]))
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading mpeg audio: %w", err)
		}
		if n == 0 {
			break
		}
	}

	return nil
}

// nextFrame decodes one frame into pending.
func (s *source) nextFrame() error {
	for {
		if !s.eof && s.end-s.off < lookahead {
			if err := s.fill(); err != nil {
				return err
			}
		}

		data := s.window[s.off:s.end]
		if len(data) == 0 {
			return io.EOF
		}

		info, err := s.dec.Decode(data, s.pcm)
		switch {
		case err == nil:
			s.off += info.FrameBytes
			s.deliver(info)
			return nil

		case errors.Is(err, mpa.ErrNoFrameFound):
			if s.eof {
				s.off = s.end
				return io.EOF
			}
			// No frame starts early enough to have been confirmed.
			if drop := len(data) - lookahead; drop > 0 {
				s.off += drop
			}
			if err := s.fill(); err != nil {
				return err
			}

		case info.FrameBytes > 0:
			s.log.Debug().Err(err).Int("frame", s.frames).Msg("skipping undecodable frame")
			s.off += info.FrameBytes

		default:
			return err
		}
	}
}

// deliver converts the decoded frame to float32, matching the channel
// layout of the first frame.
func (s *source) deliver(info mpa.FrameInfo) {
	if s.frames == 0 {
		s.sampleRate, s.channels = info.SampleRate, info.Channels
		s.log.Debug().
			Int("rate", info.SampleRate).
			Int("channels", info.Channels).
			Int("layer", info.Layer).
			Int("bitrate_kbps", info.BitrateKbps).
			Msg("mpeg audio stream")
	}
	s.frames++
	if info.SampleRate != s.sampleRate {
		s.log.Warn().
			Int("frame", s.frames).
			Int("rate", info.SampleRate).
			Int("stream_rate", s.sampleRate).
			Msg("sample rate changed mid-stream")
	}

	pcm := s.pcm[:info.Samples*info.Channels]
	out := s.pending[:0]

	switch {
	case info.Channels == s.channels:
		for _, v := range pcm {
			out = append(out, utils.Int16ToFloat32(v))
		}
	case s.channels == 2:
		for _, v := range pcm {
			f := utils.Int16ToFloat32(v)
			out = append(out, f, f)
		}
	default:
		for i := 0; i+1 < len(pcm); i += 2 {
			out = append(out, (utils.Int16ToFloat32(pcm[i])+utils.Int16ToFloat32(pcm[i+1]))/2)
		}
	}

	s.pending = out
}

// Decoder decodes MPEG-1/2 Audio Layer I and II streams (.mp1, .mp2,
// .mpa). The zero value is ready to use.
type Decoder struct {
	// Logger receives dropped-frame reports. The zero value discards them.
	Logger zerolog.Logger

	// CheckCRC drops protected frames whose CRC does not match.
	CheckCRC bool
}

func (d Decoder) Decode(r io.Reader) (audio.Source, error) {
	s := &source{
		r:      r,
		log:    d.Logger,
		dec:    mpa.NewDecoder(mpa.WithLogger(d.Logger), mpa.WithCRCCheck(d.CheckCRC)),
		window: make([]byte, windowSize),
		pcm:    make([]int16, mpa.MaxPCMLength),
	}

	if err := s.fill(); err != nil {
		return nil, err
	}
	if err := s.skipID3v2(); err != nil {
		return nil, err
	}

	if err := s.nextFrame(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoFrames
		}
		return nil, err
	}

	return s, nil
}

// skipID3v2 drops a leading ID3v2 tag, which may be longer than the window.
func (s *source) skipID3v2() error {
	n := mpa.SkipID3v2(s.window[s.off:s.end])
	if n == 0 {
		return nil
	}

	if n <= s.end-s.off {
		s.off += n
		return nil
	}

	rest := int64(n - (s.end - s.off))
	s.off, s.end = 0, 0
	if _, err := io.CopyN(io.Discard, s.r, rest); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("skipping ID3v2 tag: %w", err)
	}

	return s.fill()
}
