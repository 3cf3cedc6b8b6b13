// SPDX-License-Identifier: EPL-2.0

// Package mp2 decodes MPEG-1 and MPEG-2 Audio Layer I and II streams
// (.mp1, .mp2, .mpa files) into an audio.Source.
//
// The decoder wraps the frame decoder of package mpa with a sliding read
// window, so any io.Reader can be consumed without loading the whole file:
//
//	f, _ := os.Open("speech.mp2")
//	source, err := mp2.Decoder{}.Decode(f)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, source.BufSize())
//	n, err := source.ReadSamples(buf)
//
// # Stream Handling
//
// A leading ID3v2 tag and trailing ID3v1 or APE tags are skipped. Junk
// between frames is resynchronised past, and frames that fail to decode
// are dropped and logged at debug level through the Decoder's Logger.
//
// The channel count and sample rate of the source are those of the first
// frame. Later frames with a different channel count are up- or
// down-mixed to match.
//
// # Limitations
//
//   - Layer III (MP3) frames are not decoded
//   - Free-format bitrate streams are not supported
//   - MPEG-2.5 sample rates are not supported
package mp2
