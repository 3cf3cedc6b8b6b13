// SPDX-License-Identifier: EPL-2.0

// Package mpadec decodes MPEG-1 and MPEG-2 Audio Layer I and II (.mp1,
// .mp2, .mpa) into PCM.
//
// The module is layered:
//
//   - mpa is the frame decoder: it locates, parses and decodes one frame at
//     a time from a caller-supplied byte buffer into 16-bit PCM.
//   - formats/mp2 streams an io.Reader through mpa as an audio.Source.
//   - audio holds the pipeline stages (Resampler, MonoMixer) and a Registry
//     of decoders by file extension.
//   - formats/wav and formats/aiff write the result, and read those formats
//     back as sources.
//
// This package ties them together.
//
// # Quick Start
//
//	registry := mpadec.NewRegistry(mp2.Decoder{})
//	in, _ := os.Open("news.mp2")
//	src, err := mpadec.Decode(registry, in.Name(), in)
//	if err != nil {
//	    // Handle error
//	}
//
//	// 8 kHz mono, 16-bit PCM
//	pcm, channels, err := mpadec.Convert(src, 8000, true, 4096)
//
// For long inputs, stream to a file instead of collecting samples:
//
//	out, _ := os.Create("news.wav")
//	frames, err := wav.Encode(out, mpadec.Prepare(src, 8000, true))
//
// # Frame Level Decoding
//
// Callers holding whole buffers can use mpa directly:
//
//	dec := mpa.NewDecoder()
//	pcm := make([]int16, mpa.MaxPCMLength)
//	for len(data) > 0 {
//	    info, err := dec.Decode(data, pcm)
//	    if info.FrameBytes == 0 {
//	        break
//	    }
//	    // pcm[:info.Samples*info.Channels] holds the frame when err == nil
//	    data = data[info.FrameBytes:]
//	}
package mpadec
