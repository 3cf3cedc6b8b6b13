// SPDX-License-Identifier: EPL-2.0

// Package synth implements the 32-band polyphase synthesis filter bank
// shared by MPEG audio Layers I and II.
package synth

import "github.com/ik5/mpadec/utils"

const (
	// Subbands is the number of subband samples consumed per time slot,
	// and the number of PCM samples produced.
	Subbands = 32

	// MaxChannels bounds the channel index passed to Synthesize.
	MaxChannels = 2

	historyLen = 1024
)

// Filter holds the V history of each channel. The zero value is a filter
// with silent history.
type Filter struct {
	v   [MaxChannels][historyLen]float64
	pos [MaxChannels]int
}

// Reset zeroes the history of every channel.
func (f *Filter) Reset() {
	*f = Filter{}
}

// Synthesize turns one time slot of subband samples of channel ch into 32
// PCM samples written to out[0], out[stride], ... out[31*stride].
func (f *Filter) Synthesize(ch int, s *[Subbands]float64, out []int16, stride int) {
	v := &f.v[ch]

	// Shifting V by 64 is a move of the ring start.
	pos := (f.pos[ch] - 64) & (historyLen - 1)
	f.pos[ch] = pos

	for i := range 64 {
		row := &matrix[i]
		var acc float64
		for k, x := range s {
			acc += row[k] * x
		}
		v[pos+i] = acc
	}

	for j := range Subbands {
		var acc float64
		for i := range 8 {
			acc += v[(pos+i*128+j)&(historyLen-1)] * window[i*64+j]
			acc += v[(pos+i*128+96+j)&(historyLen-1)] * window[i*64+32+j]
		}
		out[j*stride] = utils.Float64ToInt16(acc)
	}
}
