// SPDX-License-Identifier: EPL-2.0

package mp2_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/ik5/mpadec/formats/mp2"
	"github.com/ik5/mpadec/internal/audiotest"
)

// encodedTone returns three Layer II frames of a 1 kHz mono tone.
func encodedTone() []byte {
	enc := &audiotest.Encoder{
		Template: audiotest.FrameSpec{Layer: 2, BitrateIndex: 14, Mode: audiotest.ModeMono},
		Active:   8,
		Alloc:    15,
	}

	pcm := make([]float64, 3*enc.SamplesPerFrame())
	for i := range pcm {
		pcm[i] = 0.5 * math.Sin(2*math.Pi*1000*float64(i)/44100)
	}

	stream, err := enc.Encode(pcm)
	if err != nil {
		panic(err)
	}
	return stream
}

func ExampleDecoder_Decode() {
	source, err := mp2.Decoder{}.Decode(bytes.NewReader(encodedTone()))
	if err != nil {
		fmt.Printf("Decode error: %v\n", err)
		return
	}
	defer source.Close()

	fmt.Printf("Sample rate: %d Hz\n", source.SampleRate())
	fmt.Printf("Channels: %d\n", source.Channels())

	buf := make([]float32, source.BufSize())
	total := 0
	for {
		n, err := source.ReadSamples(buf)
		total += n
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			fmt.Printf("Read error: %v\n", err)
			return
		}
	}

	fmt.Printf("Samples: %d\n", total)
	// Output:
	// Sample rate: 44100 Hz
	// Channels: 1
	// Samples: 3456
}

func ExampleDecoder_Decode_notMPEG() {
	_, err := mp2.Decoder{}.Decode(bytes.NewReader([]byte("RIFF....WAVEfmt ")))
	if errors.Is(err, mp2.ErrNoFrames) {
		fmt.Println("no MPEG audio frames")
	}
	// Output: no MPEG audio frames
}
