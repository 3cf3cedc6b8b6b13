// SPDX-License-Identifier: EPL-2.0

package tables

import "math"

// ReservedScaleFactor is the 6-bit index the standard does not assign.
const ReservedScaleFactor = 63

// ScaleFactors holds 2^(1 - i/3) for i in 0..62. The reserved index 63
// maps to zero and silences the subband.
var ScaleFactors = func() (t [64]float64) {
	for i := range ReservedScaleFactor {
		t[i] = math.Exp2(1 - float64(i)/3)
	}

	return t
}()
