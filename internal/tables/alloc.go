// SPDX-License-Identifier: EPL-2.0

package tables

// AllocVariant names one of the Layer II bit allocation tables.
type AllocVariant uint8

const (
	AllocB2a AllocVariant = iota // 27 subbands, 56..80 kbps per channel, or 48 kHz at high rates
	AllocB2b                     // 30 subbands, high rates at 44.1 and 32 kHz
	AllocB2c                     // 8 subbands, low rates at 44.1 and 48 kHz
	AllocB2d                     // 12 subbands, low rates at 32 kHz
	AllocLSF                     // 30 subbands, MPEG-2 low sampling frequencies
)

func (v AllocVariant) String() string {
	switch v {
	case AllocB2a:
		return "B.2a"
	case AllocB2b:
		return "B.2b"
	case AllocB2c:
		return "B.2c"
	case AllocB2d:
		return "B.2d"
	case AllocLSF:
		return "LSF B.1"
	}

	return "unknown"
}

// Rows map an allocation code to a quantizer class index. Each table
// subband uses the first 1<<nbal entries of one row.
var classRows = [6][16]uint8{
	{0, 1, 2, 17},
	{0, 1, 2, 3, 4, 5, 6, 17},
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 17},
	{0, 1, 3, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17},
	{0, 1, 2, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16},
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
}

// run is a span of consecutive subbands sharing nbal and row.
type run struct {
	count, nbal, row uint8
}

var variantRuns = [...][]run{
	AllocB2a: {{3, 4, 3}, {8, 4, 2}, {12, 3, 1}, {4, 2, 0}},
	AllocB2b: {{3, 4, 3}, {8, 4, 2}, {12, 3, 1}, {7, 2, 0}},
	AllocB2c: {{2, 4, 4}, {6, 3, 4}},
	AllocB2d: {{2, 4, 4}, {10, 3, 4}},
	AllocLSF: {{4, 4, 5}, {7, 3, 4}, {19, 2, 4}},
}

// AllocTable is an expanded allocation table: per-subband field widths and
// class rows up to SBLimit.
type AllocTable struct {
	Variant AllocVariant
	SBLimit int
	nbal    [32]uint8
	row     [32]uint8
}

var allocTables = func() (t [len(variantRuns)]AllocTable) {
	for v, runs := range variantRuns {
		at := &t[v]
		at.Variant = AllocVariant(v)
		for _, r := range runs {
			for range r.count {
				at.nbal[at.SBLimit] = r.nbal
				at.row[at.SBLimit] = r.row
				at.SBLimit++
			}
		}
	}

	return t
}()

// Table returns the expanded table for v.
func Table(v AllocVariant) *AllocTable {
	return &allocTables[v]
}

// Nbal returns the width of the allocation field of subband sb, or 0 at
// and above SBLimit.
func (t *AllocTable) Nbal(sb int) int {
	if sb < 0 || sb >= t.SBLimit {
		return 0
	}

	return int(t.nbal[sb])
}

// Quantizer resolves an allocation code read for subband sb.
func (t *AllocTable) Quantizer(sb int, code uint32) Quantizer {
	n := t.Nbal(sb)
	if n == 0 || code >= 1<<uint(n) {
		return Quantizer{}
	}

	return quantizers[classRows[t.row[sb]][code]]
}

// SelectLayerII picks the allocation table for a Layer II frame.
// MPEG-1 tables depend on the bitrate per channel and on the sample rate.
func SelectLayerII(row, bitrateKbps, channels, sampleRateIndex int) AllocVariant {
	if row == LSF {
		return AllocLSF
	}

	perChannel := bitrateKbps
	if channels == 2 {
		perChannel /= 2
	}

	switch {
	case perChannel < 56:
		if sampleRateIndex == 2 {
			return AllocB2d
		}
		return AllocB2c
	case perChannel <= 80:
		return AllocB2a
	case sampleRateIndex == 1:
		return AllocB2a
	default:
		return AllocB2b
	}
}
