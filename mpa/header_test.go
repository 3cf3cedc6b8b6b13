// SPDX-License-Identifier: EPL-2.0

package mpa

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		b         []byte
		wantErr   error
		version   Version
		layer     Layer
		rate      int
		kbps      int
		channels  int
		length    int
		protected bool
	}{
		{
			name: "mpeg1 layer2 128k 44.1 stereo", b: []byte{0xFF, 0xFD, 0x80, 0x00},
			version: MPEG1, layer: LayerII, rate: 44100, kbps: 128, channels: 2, length: 417,
		},
		{
			name: "padded", b: []byte{0xFF, 0xFD, 0x82, 0x00},
			version: MPEG1, layer: LayerII, rate: 44100, kbps: 128, channels: 2, length: 418,
		},
		{
			name: "protected layer1 mono 48k", b: []byte{0xFF, 0xFE, 0xC4, 0xC0},
			version: MPEG1, layer: LayerI, rate: 48000, kbps: 384, channels: 1, length: 384, protected: true,
		},
		{
			name: "lsf layer2 64k 24k", b: []byte{0xFF, 0xF5, 0x84, 0x00},
			version: MPEG2, layer: LayerII, rate: 24000, kbps: 64, channels: 2, length: 384,
		},
		{name: "layer3", b: []byte{0xFF, 0xFB, 0x90, 0x00}, wantErr: ErrUnsupportedLayer},
		{name: "reserved layer", b: []byte{0xFF, 0xF9, 0x90, 0x00}, wantErr: ErrUnsupportedLayer},
		{name: "mpeg2.5", b: []byte{0xFF, 0xE5, 0x80, 0x00}, wantErr: ErrUnsupportedVersion},
		{name: "reserved version", b: []byte{0xFF, 0xED, 0x80, 0x00}, wantErr: ErrUnsupportedVersion},
		{name: "no sync", b: []byte{0x7F, 0xFD, 0x80, 0x00}, wantErr: ErrBadSync},
		{name: "free format", b: []byte{0xFF, 0xFD, 0x00, 0x00}, wantErr: ErrBadBitrate},
		{name: "bitrate 15", b: []byte{0xFF, 0xFD, 0xF0, 0x00}, wantErr: ErrBadBitrate},
		{name: "reserved rate", b: []byte{0xFF, 0xFD, 0x8C, 0x00}, wantErr: ErrBadSampleRate},
		{name: "short", b: []byte{0xFF, 0xFD, 0x80}, wantErr: ErrOutOfData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, err := ParseHeader(tt.b)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseHeader() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHeader() error = %v", err)
			}

			if h.Version != tt.version || h.Layer != tt.layer {
				t.Errorf("version/layer = %v/%v, want %v/%v", h.Version, h.Layer, tt.version, tt.layer)
			}
			if h.SampleRate() != tt.rate {
				t.Errorf("SampleRate() = %d, want %d", h.SampleRate(), tt.rate)
			}
			if h.Bitrate() != tt.kbps {
				t.Errorf("Bitrate() = %d, want %d", h.Bitrate(), tt.kbps)
			}
			if h.Channels() != tt.channels {
				t.Errorf("Channels() = %d, want %d", h.Channels(), tt.channels)
			}
			if h.FrameLength() != tt.length {
				t.Errorf("FrameLength() = %d, want %d", h.FrameLength(), tt.length)
			}
			if h.Protected != tt.protected {
				t.Errorf("Protected = %v, want %v", h.Protected, tt.protected)
			}
		})
	}
}

func TestFrameHeader_Fields(t *testing.T) {
	t.Parallel()

	// joint stereo, mode extension 3, copyright, original, emphasis 1
	h, err := ParseHeader([]byte{0xFF, 0xFD, 0x81, 0x7D})
	if err != nil {
		t.Fatal(err)
	}

	if !h.Private || h.Mode != ModeJointStereo || h.ModeExtension != 3 {
		t.Errorf("private/mode/ext = %v/%v/%d", h.Private, h.Mode, h.ModeExtension)
	}
	if !h.Copyright || !h.Original || h.Emphasis != 1 {
		t.Errorf("copyright/original/emphasis = %v/%v/%d", h.Copyright, h.Original, h.Emphasis)
	}
	if h.Bound() != 16 {
		t.Errorf("Bound() = %d, want 16", h.Bound())
	}
	if h.SamplesPerFrame() != 1152 {
		t.Errorf("SamplesPerFrame() = %d, want 1152", h.SamplesPerFrame())
	}
}

func TestHeaderStrings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		v    fmt.Stringer
		want string
	}{
		{MPEG1, "MPEG-1"},
		{MPEG2, "MPEG-2"},
		{Version(0), "unknown"},
		{LayerI, "Layer I"},
		{LayerII, "Layer II"},
		{LayerIII, "Layer III"},
		{Layer(0), "unknown"},
		{ModeStereo, "stereo"},
		{ModeJointStereo, "joint stereo"},
		{ModeDualChannel, "dual channel"},
		{ModeMono, "mono"},
		{Mode(7), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.v, got, tt.want)
		}
	}

	h, err := ParseHeader([]byte{0xFF, 0xFD, 0x80, 0x00})
	if err != nil {
		t.Fatal(err)
	}
	if got := fmt.Sprintf("%v %v %v", h.Version, h.Layer, h.Mode); got != "MPEG-1 Layer II stereo" {
		t.Errorf("header fields print as %q", got)
	}
}

func TestFrameHeader_Bound(t *testing.T) {
	t.Parallel()

	for ext, want := range []int{4, 8, 12, 16} {
		h := FrameHeader{Mode: ModeJointStereo, ModeExtension: ext}
		if got := h.Bound(); got != want {
			t.Errorf("ext %d: Bound() = %d, want %d", ext, got, want)
		}
	}
	if got := (FrameHeader{Mode: ModeStereo, ModeExtension: 1}).Bound(); got != 32 {
		t.Errorf("stereo Bound() = %d, want 32", got)
	}
}

// Every valid Layer I frame length is a multiple of four-byte slots.
func TestFrameHeader_LayerISlots(t *testing.T) {
	t.Parallel()

	for _, v := range []Version{MPEG1, MPEG2} {
		for br := 1; br < 15; br++ {
			for sr := range 3 {
				for _, pad := range []bool{false, true} {
					h := FrameHeader{Version: v, Layer: LayerI, BitrateIndex: br, SampleRateIndex: sr, Padding: pad}
					if n := h.FrameLength(); n%4 != 0 || n < 4*HeaderSize {
						t.Errorf("%+v: FrameLength() = %d", h, n)
					}
				}
			}
		}
	}
}
