// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// PCMScale maps a normalised sample in [-1, 1) onto the int16 range.
const PCMScale = 32768

// Float64ToInt16 scales x by PCMScale, rounds to the nearest integer and
// saturates at the int16 limits.
func Float64ToInt16(x float64) int16 {
	v := math.Round(x * PCMScale)
	switch {
	case v > math.MaxInt16:
		return math.MaxInt16
	case v < math.MinInt16:
		return math.MinInt16
	}

	return int16(v)
}

// Float32ToInt16 is Float64ToInt16 for float32 samples.
func Float32ToInt16(x float32) int16 {
	return Float64ToInt16(float64(x))
}

// Int16ToFloat32 is the inverse of Float32ToInt16 for in-range values.
func Int16ToFloat32(v int16) float32 {
	return float32(v) / PCMScale
}
