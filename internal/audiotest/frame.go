// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"fmt"

	"github.com/ik5/mpadec/internal/tables"
)

// ErrFrameOverflow is returned when the payload of a FrameSpec does not fit
// in the frame length implied by its header.
var ErrFrameOverflow = errors.New("audiotest: payload exceeds frame length")

// Channel modes as coded in the header.
const (
	ModeStereo = iota
	ModeJointStereo
	ModeDualChannel
	ModeMono
)

// FrameSpec describes one MPEG-1/2 Layer I or II frame at the bitstream
// level. Alloc, SCFSI and Scale hold the raw field values; Code returns the
// quantized code of sample n (0..11 for Layer I, 0..35 for Layer II) and
// may be nil for all-zero codes.
type FrameSpec struct {
	MPEG2           bool
	Layer           int
	BitrateIndex    int
	SampleRateIndex int
	Padding         bool
	Protected       bool
	Mode            int
	ModeExtension   int

	Alloc [2][32]uint32
	SCFSI [2][32]uint32
	Scale [2][32][3]uint32
	Code  func(ch, sb, n int) uint32
}

func (fs *FrameSpec) row() int {
	if fs.MPEG2 {
		return tables.LSF
	}
	return tables.MPEG1
}

// Channels returns 1 for mono frames and 2 otherwise.
func (fs *FrameSpec) Channels() int {
	if fs.Mode == ModeMono {
		return 1
	}
	return 2
}

// Length returns the frame length in bytes.
func (fs *FrameSpec) Length() int {
	br := tables.BitrateKbps(fs.row(), fs.Layer, fs.BitrateIndex) * 1000
	sr := tables.SampleRate(fs.row(), fs.SampleRateIndex)
	pad := 0
	if fs.Padding {
		pad = 1
	}
	if fs.Layer == 1 {
		return (12*br/sr + pad) * 4
	}
	return 144*br/sr + pad
}

func (fs *FrameSpec) bound(sblimit int) int {
	if fs.Mode != ModeJointStereo {
		return sblimit
	}
	return min((fs.ModeExtension+1)*4, sblimit)
}

// AllocTable returns the Layer II allocation table the header selects.
func (fs *FrameSpec) AllocTable() *tables.AllocTable {
	br := tables.BitrateKbps(fs.row(), fs.Layer, fs.BitrateIndex)
	return tables.Table(tables.SelectLayerII(fs.row(), br, fs.Channels(), fs.SampleRateIndex))
}

func (fs *FrameSpec) code(ch, sb, n int) uint32 {
	if fs.Code == nil {
		return 0
	}
	return fs.Code(ch, sb, n)
}

// Build serialises the frame, zero-filling the space after the payload.
func (fs *FrameSpec) Build() ([]byte, error) {
	w := newBitWriter()

	w.write(0xFFF, 12)
	w.flag(!fs.MPEG2)
	w.write(uint32(4-fs.Layer), 2)
	w.flag(!fs.Protected)
	w.write(uint32(fs.BitrateIndex), 4)
	w.write(uint32(fs.SampleRateIndex), 2)
	w.flag(fs.Padding)
	w.write(0, 1) // private
	w.write(uint32(fs.Mode), 2)
	w.write(uint32(fs.ModeExtension), 2)
	w.write(0, 4) // copyright, original, emphasis
	if fs.Protected {
		w.write(0, 16)
	}

	var crcEnd int
	if fs.Layer == 1 {
		crcEnd = fs.writeLayerI(w)
	} else {
		crcEnd = fs.writeLayerII(w)
	}

	n := fs.Length()
	payload, err := w.bytes()
	if err != nil {
		return nil, err
	}
	if len(payload) > n {
		return nil, fmt.Errorf("%w: %d bits for %d bytes", ErrFrameOverflow, w.n, n)
	}
	frame := make([]byte, n)
	copy(frame, payload)

	if fs.Protected {
		crc := CRC16(frame, 16, 16, 0xFFFF)
		crc = CRC16(frame, 48, crcEnd-48, crc)
		frame[4] = byte(crc >> 8)
		frame[5] = byte(crc)
	}

	return frame, nil
}

// writeLayerI returns the bit position where CRC coverage ends.
func (fs *FrameSpec) writeLayerI(w *bitWriter) int {
	nch := fs.Channels()
	bound := fs.bound(32)

	for sb := range 32 {
		for ch := range nch {
			if ch == 0 || sb < bound {
				w.write(fs.Alloc[ch][sb], 4)
			}
		}
	}
	crcEnd := w.n

	for sb := range 32 {
		for ch := range nch {
			if fs.alloc(ch, sb, bound) != 0 {
				w.write(fs.Scale[ch][sb][0], 6)
			}
		}
	}

	for s := range 12 {
		for sb := range 32 {
			for ch := range nch {
				a := fs.alloc(ch, sb, bound)
				if a == 0 || (ch == 1 && sb >= bound) {
					continue
				}
				w.write(fs.code(ch, sb, s), int(a)+1)
			}
		}
	}

	return crcEnd
}

// alloc resolves the allocation of a subband, sharing channel 0's above
// the joint stereo bound.
func (fs *FrameSpec) alloc(ch, sb, bound int) uint32 {
	if sb >= bound {
		return fs.Alloc[0][sb]
	}
	return fs.Alloc[ch][sb]
}

func (fs *FrameSpec) writeLayerII(w *bitWriter) int {
	nch := fs.Channels()
	tab := fs.AllocTable()
	bound := fs.bound(tab.SBLimit)

	for sb := range tab.SBLimit {
		for ch := range nch {
			if ch == 0 || sb < bound {
				w.write(fs.Alloc[ch][sb], tab.Nbal(sb))
			}
		}
	}

	for sb := range tab.SBLimit {
		for ch := range nch {
			if fs.alloc(ch, sb, bound) != 0 {
				w.write(fs.SCFSI[ch][sb], 2)
			}
		}
	}
	crcEnd := w.n

	for sb := range tab.SBLimit {
		for ch := range nch {
			if fs.alloc(ch, sb, bound) == 0 {
				continue
			}
			scf := fs.Scale[ch][sb]
			switch fs.SCFSI[ch][sb] {
			case 0:
				w.write(scf[0], 6)
				w.write(scf[1], 6)
				w.write(scf[2], 6)
			case 1:
				w.write(scf[0], 6)
				w.write(scf[2], 6)
			case 2:
				w.write(scf[0], 6)
			case 3:
				w.write(scf[0], 6)
				w.write(scf[1], 6)
			}
		}
	}

	for gr := range 12 {
		for sb := range tab.SBLimit {
			for ch := range nch {
				a := fs.alloc(ch, sb, bound)
				if a == 0 || (ch == 1 && sb >= bound) {
					continue
				}
				q := tab.Quantizer(sb, a)
				if q.Grouped {
					l := uint32(q.Levels)
					c := fs.code(ch, sb, gr*3) + l*(fs.code(ch, sb, gr*3+1)+l*fs.code(ch, sb, gr*3+2))
					w.write(c, q.Bits)
					continue
				}
				for k := range 3 {
					w.write(fs.code(ch, sb, gr*3+k), q.Bits)
				}
			}
		}
	}

	return crcEnd
}

// CRC16 feeds n bits of data starting at bit start through the ISO/IEC
// 11172-3 CRC-16 (polynomial 0x8005).
func CRC16(data []byte, start, n int, crc uint16) uint16 {
	for i := start; i < start+n; i++ {
		bit := uint16(data[i>>3]>>(7-uint(i&7))) & 1
		if (crc>>15)^bit == 1 {
			crc = crc<<1 ^ 0x8005
		} else {
			crc <<= 1
		}
	}
	return crc
}
