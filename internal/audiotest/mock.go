// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides test fixtures: synthetic PCM sources, an
// MPEG Layer I/II frame builder and a reference analysis filter bank with
// a minimal encoder on top.
package audiotest

import (
	"io"
	"math"
)

// Waveform returns the value of sample n of channel ch.
type Waveform func(n, ch int) float32

// MockSource generates interleaved float32 PCM from a Waveform. It
// satisfies audio.Source without importing it.
type MockSource struct {
	rate, channels int
	frames, pos    int // per channel
	wave           Waveform
}

// NewMockSource returns a source of frames samples per channel.
func NewMockSource(rate, channels, frames int, wave Waveform) *MockSource {
	return &MockSource{rate: rate, channels: channels, frames: frames, wave: wave}
}

// NewSilentSource returns a source of zeros.
func NewSilentSource(rate, channels, frames int) *MockSource {
	return NewConstantSource(rate, channels, frames, 0)
}

// NewConstantSource returns a source holding value on every channel.
func NewConstantSource(rate, channels, frames int, value float32) *MockSource {
	return NewMockSource(rate, channels, frames, func(int, int) float32 { return value })
}

// NewSineSource returns a full-scale sine of freq Hz on every channel.
func NewSineSource(rate, channels, frames int, freq float64) *MockSource {
	return NewMockSource(rate, channels, frames, func(n, _ int) float32 {
		return float32(math.Sin(2 * math.Pi * freq * float64(n) / float64(rate)))
	})
}

func (m *MockSource) SampleRate() int { return m.rate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error    { return nil }

// Reset rewinds the source.
func (m *MockSource) Reset() { m.pos = 0 }

// ReadSamples fills whole frames of dst. The call that delivers the last
// frame also returns io.EOF.
func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.pos >= m.frames {
		return 0, io.EOF
	}

	n := min(len(dst)/m.channels, m.frames-m.pos)
	for f := range n {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.wave(m.pos+f, ch)
		}
	}
	m.pos += n

	if m.pos >= m.frames {
		return n * m.channels, io.EOF
	}

	return n * m.channels, nil
}
