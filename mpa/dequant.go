// SPDX-License-Identifier: EPL-2.0

package mpa

import (
	"github.com/ik5/mpadec/internal/bits"
	"github.com/ik5/mpadec/internal/synth"
	"github.com/ik5/mpadec/internal/tables"
)

// subbandSamples holds the reconstructed samples of one frame by channel
// and time slot. Layer I fills 12 slots, Layer II 36.
type subbandSamples [2][36][synth.Subbands]float64

// prepare computes the per-part multipliers once the scale factors are known.
func (si *sideInfo) prepare() {
	for ch := range si.channels {
		for sb := range si.sblimit {
			q := si.alloc[ch][sb]
			if q.None() {
				continue
			}
			step := 2 / float64(q.Levels)
			for p, idx := range si.scf[ch][sb] {
				si.mult[ch][sb][p] = tables.ScaleFactors[idx&63] * step
			}
		}
	}
}

// readLayerISamples reads 12 samples per allocated subband. Above the
// bound one code serves both channels, each scaled by its own factor.
func (si *sideInfo) readLayerISamples(r *bits.Reader, out *subbandSamples) error {
	for s := range 12 {
		for sb := range si.sblimit {
			var code int
			for ch := range si.channels {
				q := si.alloc[ch][sb]
				if q.None() {
					continue
				}
				if !si.shares(ch, sb) {
					v, err := r.ReadBits(q.Bits)
					if err != nil {
						return err
					}
					code = int(v)
				}
				out[ch][s][sb] = float64(code-q.Half()) * si.mult[ch][sb][0]
			}
		}
	}

	return nil
}

// readLayerIISamples reads 12 granules of three samples. Granule gr uses
// scale factor part gr/4.
func (si *sideInfo) readLayerIISamples(r *bits.Reader, out *subbandSamples) error {
	var c [3]int
	for gr := range 12 {
		part := gr / 4
		for sb := range si.sblimit {
			for ch := range si.channels {
				q := si.alloc[ch][sb]
				if q.None() {
					continue
				}
				if !si.shares(ch, sb) {
					if err := readTriplet(r, q, &c); err != nil {
						return err
					}
				}

				m := si.mult[ch][sb][part]
				h := q.Half()
				for k, code := range c {
					out[ch][gr*3+k][sb] = float64(code-h) * m
				}
			}
		}
	}

	return nil
}

func readTriplet(r *bits.Reader, q tables.Quantizer, c *[3]int) error {
	if q.Grouped {
		v, err := r.ReadBits(q.Bits)
		if err != nil {
			return err
		}
		code := int(v)
		for k := range c {
			c[k] = code % q.Levels
			code /= q.Levels
		}
		return nil
	}

	for k := range c {
		v, err := r.ReadBits(q.Bits)
		if err != nil {
			return err
		}
		c[k] = int(v)
	}

	return nil
}
