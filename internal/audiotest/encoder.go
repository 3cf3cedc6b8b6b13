// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"math"

	"github.com/ik5/mpadec/internal/tables"
)

// Encoder is a minimal Layer I/II encoder for round trip tests. It runs
// the analysis bank, gives the first Active subbands of every channel the
// allocation code Alloc and leaves the rest silent. Joint stereo is not
// used.
type Encoder struct {
	Template FrameSpec
	Active   int
	Alloc    uint32

	filters [2]AnalysisFilter
}

// SamplesPerFrame returns the number of PCM samples per channel in one frame.
func (e *Encoder) SamplesPerFrame() int {
	if e.Template.Layer == 1 {
		return 384
	}
	return 1152
}

// Encode consumes interleaved PCM in [-1, 1) and returns the encoded frames
// back to back. A trailing partial frame is zero padded.
func (e *Encoder) Encode(pcm []float64) ([]byte, error) {
	nch := e.Template.Channels()
	spf := e.SamplesPerFrame()
	slots := spf / 32

	var out []byte
	in := make([]float64, 32)
	for start := 0; start < len(pcm); start += spf * nch {
		fs := e.Template
		var sub [2][36][32]float64

		for slot := range slots {
			for ch := range nch {
				for i := range in {
					idx := start + (slot*32+i)*nch + ch
					in[i] = 0
					if idx < len(pcm) {
						in[i] = pcm[idx]
					}
				}
				sub[ch][slot] = e.filters[ch].Step(in)
			}
		}

		var codes [2][32][36]uint32
		for ch := range nch {
			for sb := range e.Active {
				fs.Alloc[ch][sb] = e.Alloc
				levels := e.levels(&fs, sb)
				parts := 1
				if fs.Layer == 2 {
					parts = 3
				}
				per := slots / parts
				for p := range parts {
					peak := 0.0
					for s := p * per; s < (p+1)*per; s++ {
						peak = max(peak, math.Abs(sub[ch][s][sb]))
					}
					idx := scaleIndex(peak)
					fs.Scale[ch][sb][p] = uint32(idx)
					sf := tables.ScaleFactors[idx]
					for s := p * per; s < (p+1)*per; s++ {
						codes[ch][sb][s] = quantize(sub[ch][s][sb]/sf, levels)
					}
				}
			}
		}
		fs.Code = func(ch, sb, n int) uint32 { return codes[ch][sb][n] }

		frame, err := fs.Build()
		if err != nil {
			return nil, err
		}
		out = append(out, frame...)
	}

	return out, nil
}

func (e *Encoder) levels(fs *FrameSpec, sb int) int {
	if fs.Layer == 1 {
		q, _ := tables.LayerIQuantizer(e.Alloc)
		return q.Levels
	}
	return fs.AllocTable().Quantizer(sb, e.Alloc).Levels
}

// scaleIndex picks the smallest scale factor not below peak.
func scaleIndex(peak float64) int {
	idx := 0
	for idx+1 < tables.ReservedScaleFactor && tables.ScaleFactors[idx+1] >= peak {
		idx++
	}
	return idx
}

// quantize maps x in [-1, 1] to the code whose reconstruction
// 2*(code-half)/levels is nearest.
func quantize(x float64, levels int) uint32 {
	half := levels / 2
	c := math.Round(x*float64(levels)/2) + float64(half)
	return uint32(min(max(c, 0), float64(levels-1)))
}
