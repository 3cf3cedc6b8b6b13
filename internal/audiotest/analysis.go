// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"math"

	"github.com/ik5/mpadec/internal/tables"
)

// FilterDelay is the delay in samples of an analysis bank followed by the
// synthesis bank.
const FilterDelay = 481

var analysisCos = func() (m [32][64]float64) {
	for k := range 32 {
		for i := range 64 {
			m[k][i] = math.Cos(float64((2*k+1)*(i-16)) * math.Pi / 64)
		}
	}
	return m
}()

// AnalysisFilter is the 32-band analysis filter bank of ISO/IEC 11172-3
// Annex C. The zero value starts from silence.
type AnalysisFilter struct {
	x [512]float64
}

// Step shifts in 32 new PCM samples and returns one slot of subband samples.
func (a *AnalysisFilter) Step(in []float64) (s [32]float64) {
	copy(a.x[32:], a.x[:480])
	for i := range 32 {
		a.x[31-i] = in[i]
	}

	var y [64]float64
	for i := range 64 {
		for j := range 8 {
			y[i] += float64(tables.Window[i+64*j]) / tables.WindowScale / 32 * a.x[i+64*j]
		}
	}
	for k := range 32 {
		for i := range 64 {
			s[k] += analysisCos[k][i] * y[i]
		}
	}

	return s
}
