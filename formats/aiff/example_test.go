// SPDX-License-Identifier: EPL-2.0

package aiff_test

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ik5/mpadec/formats/aiff"
	"github.com/ik5/mpadec/internal/memfile"
)

// ExampleDecoder_Decode writes a short AIFF file and decodes it.
func ExampleDecoder_Decode() {
	out := memfile.New(nil)
	if err := aiff.WriteAIFF16(out, 44100, 1, []int16{0, 16384, -16384}); err != nil {
		fmt.Printf("Write error: %v\n", err)
		return
	}

	src, err := aiff.Decoder{}.Decode(bytes.NewReader(out.Bytes()))
	if err != nil {
		fmt.Printf("Decode error: %v\n", err)
		return
	}

	buf := make([]float32, 8)
	n, _ := src.ReadSamples(buf)

	fmt.Printf("Sample Rate: %d Hz\n", src.SampleRate())
	fmt.Printf("Channels: %d\n", src.Channels())
	fmt.Println(buf[:n])
	// Output:
	// Sample Rate: 44100 Hz
	// Channels: 1
	// [0 0.5 -0.5]
}

// ExampleDecoder_Decode_errorHandling shows rejection of non-AIFF input.
func ExampleDecoder_Decode_errorHandling() {
	_, err := aiff.Decoder{}.Decode(bytes.NewReader([]byte("not aiff")))
	if errors.Is(err, aiff.ErrNotAiffFile) {
		fmt.Println("not an AIFF file")
	}
	// Output: not an AIFF file
}
