// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes WAV files on top of github.com/go-audio/wav.
//
// # Decoding
//
// The Decoder accepts integer PCM at 16, 24 or 32 bits and returns an
// audio.Source with samples normalized to [-1, 1]:
//
//	source, err := wav.Decoder{}.Decode(file)
//
// # Encoding
//
// Encode drains any audio.Source into a 16-bit PCM file, which is how
// decoded MPEG audio is saved:
//
//	src, _ := mp2.Decoder{}.Decode(in)
//	out, _ := os.Create("speech.wav")
//	frames, err := wav.Encode(out, src)
//
// WriteWAV16 writes a slice of interleaved samples directly. Both need an
// io.WriteSeeker so the chunk sizes can be filled in when the data is
// complete.
package wav
