// SPDX-License-Identifier: EPL-2.0

// Package aiff reads and writes AIFF (Audio Interchange File Format) files
// on top of github.com/go-audio/aiff.
//
// The Decoder accepts 16, 24 and 32-bit PCM and returns an audio.Source
// with samples normalized to [-1, 1]. Encode and WriteAIFF16 produce
// 16-bit big-endian PCM, the usual target when exporting decoded MPEG
// audio for macOS tools:
//
//	src, _ := mp2.Decoder{}.Decode(in)
//	out, _ := os.Create("speech.aiff")
//	frames, err := aiff.Encode(out, src)
package aiff
