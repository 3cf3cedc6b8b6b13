// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/mpadec/utils"
)

// Resampler converts src to another sample rate with cubic interpolation,
// preserving the channel count. When downsampling, source frames first go
// through a one-pole low-pass filter.
//
// For n source frames the output holds floor((n-1)*dst/src)+1 frames.
type Resampler struct {
	src      Source
	rate     int
	channels int
	step     float64 // source frames per output frame

	// hist holds frames t-1, t0, t+1, t+2; pos is the offset past t0.
	hist   [4][]float32
	valid  [4]bool
	pos    float64
	primed bool

	buf      []float32
	off, end int
	srcEOF   bool
	err      error

	lp     []float32
	lpInit bool
	alpha  float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := max(src.Channels(), 1)

	r := &Resampler{
		src:      src,
		rate:     dstRate,
		channels: channels,
		alpha:    1,
		buf:      make([]float32, max(src.BufSize()/channels, 64)*channels),
		lp:       make([]float32, channels),
	}
	if dstRate > 0 {
		r.step = float64(src.SampleRate()) / float64(dstRate)
	}
	if r.step > 1 {
		r.alpha = float32(1 / r.step)
	}

	for i := range r.hist {
		r.hist[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.rate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("closing resampler source: %w", err)
	}

	return nil
}

// fetch copies the next source frame into frame.
func (r *Resampler) fetch(frame []float32) bool {
	ch := r.channels
	for r.off >= r.end {
		if r.srcEOF || r.err != nil {
			return false
		}

		n, err := r.src.ReadSamples(r.buf)
		r.off, r.end = 0, n-n%ch
		if errors.Is(err, io.EOF) {
			r.srcEOF = true
		} else if err != nil {
			r.err = fmt.Errorf("resampling: %w", err)
		}
	}

	copy(frame, r.buf[r.off:r.off+ch])
	r.off += ch

	if r.alpha < 1 {
		if !r.lpInit {
			copy(r.lp, frame)
			r.lpInit = true
		}
		for c := range frame {
			r.lp[c] += r.alpha * (frame[c] - r.lp[c])
			frame[c] = r.lp[c]
		}
	}

	return true
}

// fill loads hist[3], repeating hist[2] past the end of the source.
func (r *Resampler) fill() {
	r.valid[3] = r.valid[2] && r.fetch(r.hist[3])
	if !r.valid[3] {
		copy(r.hist[3], r.hist[2])
	}
}

func (r *Resampler) prime() error {
	if !r.fetch(r.hist[1]) {
		if r.err != nil {
			return r.err
		}
		return io.EOF
	}
	copy(r.hist[0], r.hist[1])
	r.valid[0], r.valid[1] = true, true

	r.valid[2] = r.fetch(r.hist[2])
	if !r.valid[2] {
		copy(r.hist[2], r.hist[1])
	}
	r.fill()
	r.primed = true

	return nil
}

func (r *Resampler) advance() {
	h0 := r.hist[0]
	r.hist[0], r.hist[1], r.hist[2], r.hist[3] = r.hist[1], r.hist[2], r.hist[3], h0
	r.valid[0], r.valid[1], r.valid[2] = r.valid[1], r.valid[2], r.valid[3]
	r.fill()
}

// ReadSamples fills dst with whole frames at the target rate. The call
// that reaches the end of the source returns io.EOF with its data.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if r.rate <= 0 {
		return 0, ErrInvalidRate
	}
	ch := r.channels
	if len(dst)%ch != 0 {
		return 0, ErrInvalidDstSize
	}
	if r.step == 1 {
		return r.src.ReadSamples(dst)
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written, done := 0, false
	for written*ch < len(dst) {
		for r.pos >= 1 {
			r.pos--
			r.advance()
		}
		if !r.valid[1] || (r.pos > 0 && !r.valid[2]) {
			done = true
			break
		}

		t := float32(r.pos)
		out := dst[written*ch : (written+1)*ch]
		for c := range out {
			out[c] = utils.CubicInterpolate(r.hist[0][c], r.hist[1][c], r.hist[2][c], r.hist[3][c], t)
		}

		written++
		r.pos += r.step
	}

	n := written * ch
	switch {
	case r.err != nil:
		return n, r.err
	case done:
		return n, io.EOF
	}

	return n, nil
}
