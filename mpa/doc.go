// SPDX-License-Identifier: EPL-2.0

// Package mpa decodes MPEG-1 and MPEG-2 (low sampling frequency) Audio
// Layer I and Layer II frames to 16-bit PCM.
//
// A Decoder is fed a byte slice that holds at least one frame, possibly
// preceded by anything else. It locates the next frame, decodes it into a
// caller-provided buffer and reports how many bytes to advance:
//
//	dec := mpa.NewDecoder()
//	defer dec.Close()
//
//	pcm := make([]int16, mpa.MaxPCMLength)
//	for len(data) > 0 {
//	    info := dec.DecodeFrame(data, pcm)
//	    if info.FrameBytes == 0 {
//	        break // no further frame
//	    }
//	    play(pcm[:info.Samples*info.Channels])
//	    data = data[info.FrameBytes:]
//	}
//
// A frame is only accepted when the header of the following frame
// confirms it, or when it fills the input exactly, so arbitrary data is
// not mistaken for audio. Trailing tags defeat that check for the last
// frame; strip them with TrimTags first.
//
// Layer III is not supported: such headers are never accepted.
package mpa
