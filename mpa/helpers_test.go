// SPDX-License-Identifier: EPL-2.0

package mpa

import (
	"math"
	"testing"

	"github.com/ik5/mpadec/internal/audiotest"
	"github.com/ik5/mpadec/utils"
)

func mustBuild(t testing.TB, fs audiotest.FrameSpec) []byte {
	t.Helper()

	frame, err := fs.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return frame
}

func concat(frames ...[]byte) []byte {
	var out []byte
	for _, f := range frames {
		out = append(out, f...)
	}
	return out
}

// tone is a two-partial test signal; channel 1 is phase shifted.
func tone(n, ch, rate int, f1, f2 float64) float64 {
	t := float64(n) / float64(rate)
	return 0.4*math.Sin(2*math.Pi*f1*t+float64(ch)) + 0.3*math.Sin(2*math.Pi*f2*t+1)
}

type roundTrip struct {
	spec   audiotest.FrameSpec
	active int
	alloc  uint32
	frames int
	f1, f2 float64
}

// encode returns the source PCM (interleaved) and its encoded stream.
func (rt roundTrip) encode(t testing.TB) ([]float64, []byte) {
	t.Helper()

	enc := &audiotest.Encoder{Template: rt.spec, Active: rt.active, Alloc: rt.alloc}
	nch := rt.spec.Channels()
	h, err := ParseHeader(mustBuild(t, rt.spec))
	if err != nil {
		t.Fatalf("ParseHeader() error = %v", err)
	}
	rate := h.SampleRate()

	src := make([]float64, rt.frames*enc.SamplesPerFrame()*nch)
	for i := range src {
		src[i] = tone(i/nch, i%nch, rate, rt.f1, rt.f2)
	}

	stream, err := enc.Encode(src)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	return src, stream
}

// decodeAll decodes every frame of stream and returns the concatenated
// PCM with the per-frame infos.
func decodeAll(t testing.TB, d *Decoder, stream []byte) ([]int16, []FrameInfo) {
	t.Helper()

	var (
		out   []int16
		infos []FrameInfo
		pcm   = make([]int16, MaxPCMLength)
	)
	for pos := 0; pos < len(stream); {
		info, err := d.Decode(stream[pos:], pcm)
		if err != nil {
			t.Fatalf("Decode() at %d error = %v", pos, err)
		}
		out = append(out, pcm[:info.Samples*info.Channels]...)
		infos = append(infos, info)
		pos += info.FrameBytes
	}
	return out, infos
}

// checkDelayed compares decoded PCM with the source delayed by the filter
// bank, past the start-up transient.
func checkDelayed(t *testing.T, src []float64, got []int16, nch, tolerance int) {
	t.Helper()

	if len(got) != len(src) {
		t.Fatalf("decoded %d samples, want %d", len(got), len(src))
	}

	const delay = audiotest.FilterDelay
	worst := 0
	for n := 2 * delay; n < len(got)/nch; n++ {
		for ch := range nch {
			want := utils.Float64ToInt16(src[(n-delay)*nch+ch])
			d := int(got[n*nch+ch]) - int(want)
			worst = max(worst, d, -d)
		}
	}
	if worst > tolerance {
		t.Errorf("max deviation %d LSB, want <= %d", worst, tolerance)
	}
}
