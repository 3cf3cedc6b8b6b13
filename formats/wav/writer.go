// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/mpadec/audio"
	"github.com/ik5/mpadec/internal/pcmio"
)

// Encode drains src into w as a 16-bit PCM WAV file and returns the number
// of frames written. w must seek so the chunk sizes can be patched.
func Encode(w io.WriteSeeker, src audio.Source) (int, error) {
	enc := wav.NewEncoder(w, src.SampleRate(), pcmio.BitDepth, src.Channels(), formatPCM)

	frames, err := pcmio.Copy(enc, src)
	if err != nil {
		return frames, err
	}

	if frames == 0 {
		// The encoder only emits headers along with the first samples.
		if err := enc.Write(&goaudio.IntBuffer{
			Format: &goaudio.Format{NumChannels: src.Channels(), SampleRate: src.SampleRate()},
		}); err != nil {
			return 0, fmt.Errorf("writing WAV header: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return frames, fmt.Errorf("finalizing WAV: %w", err)
	}

	return frames, nil
}

// WriteWAV16 writes interleaved 16-bit samples as a WAV file.
func WriteWAV16(w io.WriteSeeker, sampleRate, channels int, samples []int16) error {
	enc := wav.NewEncoder(w, sampleRate, pcmio.BitDepth, channels, formatPCM)

	data := make([]int, len(samples))
	for i, v := range samples {
		data[i] = int(v)
	}

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: pcmio.BitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing WAV samples: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing WAV: %w", err)
	}

	return nil
}
