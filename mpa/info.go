// SPDX-License-Identifier: EPL-2.0

package mpa

import "time"

// FrameInfo describes the frame a call located. The zero value means no
// frame was found.
type FrameInfo struct {
	// Samples is the number of PCM samples per channel written to the
	// caller's buffer. It is 0 when the frame could not be decoded.
	Samples     int
	SampleRate  int
	Channels    int
	Layer       int
	BitrateKbps int

	// FrameBytes is how far to advance the input: the offset of the frame
	// plus its length.
	FrameBytes int
	Offset     int

	Header FrameHeader
}

func newFrameInfo(h FrameHeader, offset int) FrameInfo {
	return FrameInfo{
		SampleRate:  h.SampleRate(),
		Channels:    h.Channels(),
		Layer:       int(h.Layer),
		BitrateKbps: h.Bitrate(),
		FrameBytes:  offset + h.FrameLength(),
		Offset:      offset,
		Header:      h,
	}
}

// Duration returns the play time of the decoded samples.
func (fi FrameInfo) Duration() time.Duration {
	if fi.SampleRate == 0 {
		return 0
	}
	return time.Duration(fi.Samples) * time.Second / time.Duration(fi.SampleRate)
}
