// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ik5/mpadec/audio"
	"github.com/ik5/mpadec/formats/aiff"
	"github.com/ik5/mpadec/formats/mp2"
	"github.com/ik5/mpadec/formats/wav"
	"github.com/ik5/mpadec/internal/audiotest"
)

// stream returns two Layer II stereo frames at 44.1 kHz.
func stream(t *testing.T) []byte {
	t.Helper()

	enc := &audiotest.Encoder{
		Template: audiotest.FrameSpec{Layer: 2, BitrateIndex: 14, Mode: audiotest.ModeStereo},
		Active:   8,
		Alloc:    15,
	}
	pcm := make([]float64, 2*1152*2)
	for i := range pcm {
		pcm[i] = 0.3 * math.Sin(2*math.Pi*500*float64(i/2)/44100)
	}

	data, err := enc.Encode(pcm)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	return data
}

func TestRun(t *testing.T) {
	t.Parallel()

	data := stream(t)

	tests := []struct {
		name         string
		cfg          config
		stdin        bool
		wantRate     int
		wantChannels int
		wantSamples  int
	}{
		{
			name:     "wav passthrough",
			cfg:      config{output: "out.wav", format: formatWAV},
			wantRate: 44100, wantChannels: 2, wantSamples: 2 * 1152 * 2,
		},
		{
			name:     "wav mono 22050 from stdin",
			cfg:      config{input: "-", output: "out.wav", format: formatWAV, rate: 22050, mono: true},
			stdin:    true,
			wantRate: 22050, wantChannels: 1, wantSamples: 1152,
		},
		{
			name:     "aiff",
			cfg:      config{output: "out.aiff", format: formatAIFF, mono: true},
			wantRate: 44100, wantChannels: 1, wantSamples: 2 * 1152,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			cfg := tt.cfg
			cfg.output = filepath.Join(dir, cfg.output)
			if !tt.stdin {
				cfg.input = filepath.Join(dir, "in.mp2")
				if err := os.WriteFile(cfg.input, data, 0o600); err != nil {
					t.Fatal(err)
				}
			}

			var logs bytes.Buffer
			if err := run(cfg, bytes.NewReader(data), newLogger(&logs, zerolog.DebugLevel)); err != nil {
				t.Fatalf("run() error = %v", err)
			}
			if !strings.Contains(logs.String(), "decoded") {
				t.Errorf("logs missing the summary line:\n%s", logs.String())
			}

			out, err := os.Open(cfg.output)
			if err != nil {
				t.Fatal(err)
			}
			defer out.Close()

			var dec audio.Decoder = wav.Decoder{}
			if tt.cfg.format == formatAIFF {
				dec = aiff.Decoder{}
			}
			src, err := dec.Decode(out)
			if err != nil {
				t.Fatalf("reading output: %v", err)
			}

			if src.SampleRate() != tt.wantRate || src.Channels() != tt.wantChannels {
				t.Errorf("output = %d Hz / %d ch, want %d Hz / %d ch",
					src.SampleRate(), src.Channels(), tt.wantRate, tt.wantChannels)
			}

			total := 0
			buf := make([]float32, 1024)
			for {
				n, err := src.ReadSamples(buf)
				total += n
				if err != nil {
					break
				}
			}
			if total != tt.wantSamples {
				t.Errorf("output holds %d samples, want %d", total, tt.wantSamples)
			}
		})
	}
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	garbage := filepath.Join(dir, "noise.mp2")
	if err := os.WriteFile(garbage, []byte("definitely not mpeg audio"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		cfg  config
		want error
	}{
		{name: "missing input", cfg: config{input: filepath.Join(dir, "nope.mp2"), output: filepath.Join(dir, "a.wav")}, want: os.ErrNotExist},
		{name: "no frames", cfg: config{input: garbage, output: filepath.Join(dir, "b.wav")}, want: mp2.ErrNoFrames},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if err := run(tt.cfg, nil, zerolog.Nop()); !errors.Is(err, tt.want) {
				t.Errorf("run() error = %v, want %v", err, tt.want)
			}
		})
	}
}
