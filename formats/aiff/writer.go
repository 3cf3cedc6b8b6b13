// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/mpadec/audio"
	"github.com/ik5/mpadec/internal/pcmio"
)

// Encode drains src into w as a 16-bit AIFF file and returns the number of
// frames written.
func Encode(w io.WriteSeeker, src audio.Source) (int, error) {
	enc := aiff.NewEncoder(w, src.SampleRate(), pcmio.BitDepth, src.Channels())

	frames, err := pcmio.Copy(enc, src)
	if err != nil {
		return frames, err
	}

	if err := enc.Close(); err != nil {
		return frames, fmt.Errorf("finalizing AIFF: %w", err)
	}

	return frames, nil
}

// WriteAIFF16 writes interleaved 16-bit samples as an AIFF file.
func WriteAIFF16(w io.WriteSeeker, sampleRate, channels int, samples []int16) error {
	enc := aiff.NewEncoder(w, sampleRate, pcmio.BitDepth, channels)

	data := make([]int, len(samples))
	for i, v := range samples {
		data[i] = int(v)
	}

	if err := enc.Write(&goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: pcmio.BitDepth,
	}); err != nil {
		return fmt.Errorf("writing AIFF samples: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing AIFF: %w", err)
	}

	return nil
}
