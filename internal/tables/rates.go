// SPDX-License-Identifier: EPL-2.0

package tables

// Row selectors for the rate tables. MPEG-2 LSF streams use the second row.
const (
	MPEG1 = 0
	LSF   = 1
)

// bitratesKbps is indexed by [MPEG1|LSF][layer-1][bitrate index]. Index 0
// (free format) and 15 (forbidden) hold zero.
var bitratesKbps = [2][2][16]int{
	{
		{0, 32, 64, 96, 128, 160, 192, 224, 256, 288, 320, 352, 384, 416, 448, 0},
		{0, 32, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320, 384, 0},
	},
	{
		{0, 32, 48, 56, 64, 80, 96, 112, 128, 144, 160, 176, 192, 224, 256, 0},
		{0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160, 0},
	},
}

var sampleRates = [2][4]int{
	{44100, 48000, 32000, 0},
	{22050, 24000, 16000, 0},
}

// BitrateKbps returns the bitrate for a header's bitrate index, or 0 when
// the combination is free format, forbidden or out of range.
func BitrateKbps(row, layer, index int) int {
	if row < MPEG1 || row > LSF || layer < 1 || layer > 2 || index < 0 || index > 15 {
		return 0
	}

	return bitratesKbps[row][layer-1][index]
}

// SampleRate returns the sampling frequency in Hz, or 0 for the reserved
// index 3 and anything out of range.
func SampleRate(row, index int) int {
	if row < MPEG1 || row > LSF || index < 0 || index > 3 {
		return 0
	}

	return sampleRates[row][index]
}
