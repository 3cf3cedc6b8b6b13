// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"testing"

	"github.com/ik5/mpadec/internal/audiotest"
)

func TestMonoMixer_ReadSamples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		wave     audiotest.Waveform
		want     float32
	}{
		{name: "mono passthrough", channels: 1, wave: func(int, int) float32 { return 0.25 }, want: 0.25},
		{name: "stereo", channels: 2, wave: func(_, ch int) float32 { return []float32{0.5, -0.1}[ch] }, want: 0.2},
		{name: "stereo cancels", channels: 2, wave: func(_, ch int) float32 { return []float32{0.5, -0.5}[ch] }, want: 0},
		{name: "four channels", channels: 4, wave: func(_, ch int) float32 { return float32(ch) * 0.1 }, want: 0.15},
		{name: "six channels", channels: 6, wave: func(int, int) float32 { return -0.3 }, want: -0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := NewMonoMixer(audiotest.NewMockSource(22050, tt.channels, 100, tt.wave))
			buf := make([]float32, 64)

			n, err := m.ReadSamples(buf)
			if err != nil {
				t.Fatalf("ReadSamples() error = %v", err)
			}
			if n != 64 {
				t.Fatalf("ReadSamples() = %d, want 64", n)
			}
			for i, v := range buf[:n] {
				if d := v - tt.want; d > 1e-6 || d < -1e-6 {
					t.Fatalf("sample %d = %v, want %v", i, v, tt.want)
				}
			}
		})
	}
}

func TestMonoMixer_EOF(t *testing.T) {
	t.Parallel()

	m := NewMonoMixer(audiotest.NewConstantSource(8000, 2, 100, 0.5))
	buf := make([]float32, 64)

	total := 0
	for {
		n, err := m.ReadSamples(buf)
		total += n
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if total != 100 {
		t.Errorf("read %d frames, want 100", total)
	}
	if n, err := m.ReadSamples(buf); n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("ReadSamples() after end = %d, %v", n, err)
	}
}

func TestMonoMixer_Metadata(t *testing.T) {
	t.Parallel()

	m := NewMonoMixer(audiotest.NewSilentSource(48000, 2, 10))

	if m.SampleRate() != 48000 {
		t.Errorf("SampleRate() = %d, want 48000", m.SampleRate())
	}
	if m.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", m.Channels())
	}
	if m.BufSize() != 4096 {
		t.Errorf("BufSize() = %d, want 4096", m.BufSize())
	}
	if n, err := m.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v", n, err)
	}
	if err := m.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

// Reads larger than the preallocated scratch buffer grow it.
func TestMonoMixer_LargeRead(t *testing.T) {
	t.Parallel()

	m := NewMonoMixer(audiotest.NewConstantSource(8000, 2, 20000, 0.1))
	buf := make([]float32, 16384)

	n, err := m.ReadSamples(buf)
	if err != nil || n != len(buf) {
		t.Fatalf("ReadSamples() = %d, %v", n, err)
	}
}

func TestMonoMixer_ZeroAllocs(t *testing.T) {
	src := audiotest.NewConstantSource(8000, 2, 1<<30, 0.1)
	m := NewMonoMixer(src)
	buf := make([]float32, 1024)

	allocs := testing.AllocsPerRun(100, func() {
		_, _ = m.ReadSamples(buf)
	})
	if allocs != 0 {
		t.Errorf("ReadSamples allocates %.1f times per call", allocs)
	}
}

func BenchmarkMonoMixer_Stereo(b *testing.B) {
	m := NewMonoMixer(audiotest.NewSineSource(44100, 2, 1<<30, 440))
	buf := make([]float32, 4096)

	b.ReportAllocs()
	b.ResetTimer()

	for b.Loop() {
		_, _ = m.ReadSamples(buf)
	}
}
