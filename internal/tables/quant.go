// SPDX-License-Identifier: EPL-2.0

package tables

// Quantizer describes one quantization class.
// For grouped classes Bits is the width of the code carrying three samples.
type Quantizer struct {
	Levels  int
	Bits    int
	Grouped bool
}

// None reports whether the class transmits no samples.
func (q Quantizer) None() bool { return q.Levels == 0 }

// Half is the code that reconstructs to zero.
func (q Quantizer) Half() int { return q.Levels / 2 }

// SampleBits is the number of bits a granule of three samples occupies.
func (q Quantizer) SampleBits() int {
	if q.Grouped {
		return q.Bits
	}

	return 3 * q.Bits
}

// Layer II quantizer classes (ISO/IEC 11172-3 Table B.4). Index 0 means no
// allocation.
var quantizers = [18]Quantizer{
	{},
	{Levels: 3, Bits: 5, Grouped: true},
	{Levels: 5, Bits: 7, Grouped: true},
	{Levels: 7, Bits: 3},
	{Levels: 9, Bits: 10, Grouped: true},
	{Levels: 15, Bits: 4},
	{Levels: 31, Bits: 5},
	{Levels: 63, Bits: 6},
	{Levels: 127, Bits: 7},
	{Levels: 255, Bits: 8},
	{Levels: 511, Bits: 9},
	{Levels: 1023, Bits: 10},
	{Levels: 2047, Bits: 11},
	{Levels: 4095, Bits: 12},
	{Levels: 8191, Bits: 13},
	{Levels: 16383, Bits: 14},
	{Levels: 32767, Bits: 15},
	{Levels: 65535, Bits: 16},
}

// LayerIForbidden is the Layer I allocation code the standard forbids.
const LayerIForbidden = 15

// LayerIQuantizer maps a 4-bit Layer I allocation code to its class: code
// a in 1..14 carries a+1 bits per sample. ok is false for the forbidden
// code 15.
func LayerIQuantizer(code uint32) (q Quantizer, ok bool) {
	switch {
	case code == 0:
		return Quantizer{}, true
	case code >= LayerIForbidden:
		return Quantizer{}, false
	}

	nb := int(code) + 1

	return Quantizer{Levels: 1<<nb - 1, Bits: nb}, true
}
