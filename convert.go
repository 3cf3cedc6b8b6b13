// SPDX-License-Identifier: EPL-2.0

package mpadec

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/mpadec/audio"
	"github.com/ik5/mpadec/utils"
)

// Prepare wraps src in the stages needed to reach targetRate and, when
// mono is set, a single channel. A targetRate of 0 keeps the source rate.
func Prepare(src audio.Source, targetRate int, mono bool) audio.Source {
	if targetRate > 0 && targetRate != src.SampleRate() {
		src = audio.NewResampler(src, targetRate)
	}
	if mono && src.Channels() > 1 {
		src = audio.NewMonoMixer(src)
	}

	return src
}

// Convert drains src through Prepare and returns the result as interleaved
// 16-bit PCM together with its channel count. bufferSize is the read size
// in samples; 0 uses the source's own.
func Convert(src audio.Source, targetRate int, mono bool, bufferSize int) ([]int16, int, error) {
	out := Prepare(src, targetRate, mono)
	channels := out.Channels()

	if bufferSize <= 0 {
		bufferSize = out.BufSize()
	}
	bufferSize = max(bufferSize-bufferSize%channels, channels)
	buf := make([]float32, bufferSize)

	pcm := make([]int16, 0, max(out.SampleRate(), 1)*channels)
	for {
		n, err := out.ReadSamples(buf)
		for _, v := range buf[:n] {
			pcm = append(pcm, utils.Float32ToInt16(v))
		}

		if errors.Is(err, io.EOF) {
			return pcm, channels, nil
		}
		if err != nil {
			return nil, channels, fmt.Errorf("converting audio: %w", err)
		}
	}
}
