// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"

	"github.com/ik5/mpadec/internal/tables"
)

// matrix[i][k] = cos((16+i)(2k+1)π/64), the polyphase matrixing
// coefficients N of ISO/IEC 11172-3 3-A.2.
var matrix = func() (n [64][32]float64) {
	for i := range 64 {
		for k := range 32 {
			n[i][k] = math.Cos(float64((16+i)*(2*k+1)) * math.Pi / 64)
		}
	}

	return n
}()

// window is tables.Window as real coefficients.
var window = func() (d [512]float64) {
	for i, w := range tables.Window {
		d[i] = float64(w) / tables.WindowScale
	}

	return d
}()
