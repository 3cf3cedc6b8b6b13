// SPDX-License-Identifier: EPL-2.0

package mpa

import (
	"fmt"

	"github.com/ik5/mpadec/internal/bits"
	"github.com/ik5/mpadec/internal/tables"
)

// sideInfo is the allocation and scale factor state of one frame.
type sideInfo struct {
	channels int
	sblimit  int
	bound    int

	alloc [2][32]tables.Quantizer
	scfsi [2][32]uint8
	scf   [2][32][3]uint8

	// mult folds the scale factor and 2/levels into one multiplier per
	// channel, subband and part.
	mult [2][32][3]float64
}

func (si *sideInfo) reset(h FrameHeader, sblimit int) {
	*si = sideInfo{
		channels: h.Channels(),
		sblimit:  sblimit,
		bound:    min(h.Bound(), sblimit),
	}
}

// shares reports whether channel ch of subband sb reuses channel 0's codes.
func (si *sideInfo) shares(ch, sb int) bool {
	return ch == 1 && sb >= si.bound
}

func (si *sideInfo) readLayerIAlloc(r *bits.Reader) error {
	for sb := range si.sblimit {
		for ch := range si.channels {
			if si.shares(ch, sb) {
				si.alloc[1][sb] = si.alloc[0][sb]
				continue
			}

			code, err := r.ReadBits(4)
			if err != nil {
				return err
			}
			q, ok := tables.LayerIQuantizer(code)
			if !ok {
				return fmt.Errorf("%w: allocation %d in subband %d", ErrMalformedSideInfo, code, sb)
			}
			si.alloc[ch][sb] = q
		}
	}

	return nil
}

func (si *sideInfo) readLayerIIAlloc(r *bits.Reader, tab *tables.AllocTable) error {
	for sb := range si.sblimit {
		nbal := tab.Nbal(sb)
		for ch := range si.channels {
			if si.shares(ch, sb) {
				si.alloc[1][sb] = si.alloc[0][sb]
				continue
			}

			code, err := r.ReadBits(nbal)
			if err != nil {
				return err
			}
			si.alloc[ch][sb] = tab.Quantizer(sb, code)
		}
	}

	return nil
}

func (si *sideInfo) readSCFSI(r *bits.Reader) error {
	for sb := range si.sblimit {
		for ch := range si.channels {
			if si.alloc[ch][sb].None() {
				continue
			}
			v, err := r.ReadBits(2)
			if err != nil {
				return err
			}
			si.scfsi[ch][sb] = uint8(v)
		}
	}

	return nil
}

// scaleCount is the number of scale factors transmitted per scfsi value.
var scaleCount = [4]int{3, 2, 1, 2}

// payloadBits returns the bits the scale factors and samples of the frame
// need.
func (si *sideInfo) payloadBits(layer Layer) int {
	// SampleBits counts three samples: Layer I carries 12 per subband,
	// Layer II 36.
	granules := 12
	if layer == LayerI {
		granules = 4
	}

	n := 0
	for sb := range si.sblimit {
		for ch := range si.channels {
			q := si.alloc[ch][sb]
			if q.None() {
				continue
			}

			if layer == LayerI {
				n += 6
			} else {
				n += 6 * scaleCount[si.scfsi[ch][sb]]
			}
			if !si.shares(ch, sb) {
				n += granules * q.SampleBits()
			}
		}
	}

	return n
}

func (si *sideInfo) readLayerIScales(r *bits.Reader) error {
	for sb := range si.sblimit {
		for ch := range si.channels {
			if si.alloc[ch][sb].None() {
				continue
			}
			v, err := r.ReadBits(6)
			if err != nil {
				return err
			}
			s := uint8(v)
			si.scf[ch][sb] = [3]uint8{s, s, s}
		}
	}

	return nil
}

func (si *sideInfo) readLayerIIScales(r *bits.Reader) error {
	var v [3]uint8
	for sb := range si.sblimit {
		for ch := range si.channels {
			if si.alloc[ch][sb].None() {
				continue
			}

			pattern := si.scfsi[ch][sb]
			for i := range scaleCount[pattern] {
				x, err := r.ReadBits(6)
				if err != nil {
					return err
				}
				v[i] = uint8(x)
			}

			switch pattern {
			case 0:
				si.scf[ch][sb] = v
			case 1:
				si.scf[ch][sb] = [3]uint8{v[0], v[0], v[1]}
			case 2:
				si.scf[ch][sb] = [3]uint8{v[0], v[0], v[0]}
			case 3:
				si.scf[ch][sb] = [3]uint8{v[0], v[1], v[1]}
			}
		}
	}

	return nil
}
