// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"flag"
	"io"
	"testing"

	"github.com/rs/zerolog"
)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestParseConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		env     map[string]string
		want    config
		wantErr error
	}{
		{
			name: "defaults",
			args: []string{"in.mp2", "out.wav"},
			want: config{input: "in.mp2", output: "out.wav", format: formatWAV, logLevel: zerolog.InfoLevel},
		},
		{
			name: "all flags",
			args: []string{"-rate", "8000", "-mono", "-crc", "-format", "AIFF", "-log-level", "debug", "-", "out.bin"},
			want: config{
				input: "-", output: "out.bin", format: formatAIFF,
				rate: 8000, mono: true, checkCRC: true, logLevel: zerolog.DebugLevel,
			},
		},
		{
			name: "format from extension",
			args: []string{"in.mpa", "out.AIF"},
			want: config{input: "in.mpa", output: "out.AIF", format: formatAIFF, logLevel: zerolog.InfoLevel},
		},
		{
			name: "level from environment",
			args: []string{"in.mp2", "out.wav"},
			env:  map[string]string{"LOG_LEVEL": "warn"},
			want: config{input: "in.mp2", output: "out.wav", format: formatWAV, logLevel: zerolog.WarnLevel},
		},
		{
			name: "flag beats environment",
			args: []string{"-log-level", "error", "in.mp2", "out.wav"},
			env:  map[string]string{"LOG_LEVEL": "debug"},
			want: config{input: "in.mp2", output: "out.wav", format: formatWAV, logLevel: zerolog.ErrorLevel},
		},
		{name: "missing output", args: []string{"in.mp2"}, wantErr: errUsage},
		{name: "extra argument", args: []string{"a", "b", "c"}, wantErr: errUsage},
		{name: "negative rate", args: []string{"-rate", "-1", "in.mp2", "out.wav"}, wantErr: errBadRate},
		{name: "bad format", args: []string{"-format", "flac", "in.mp2", "out.wav"}, wantErr: errUnknownFormat},
		{name: "help", args: []string{"-h"}, wantErr: flag.ErrHelp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseConfig(tt.args, env(tt.env), io.Discard)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("parseConfig() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseConfig() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("parseConfig() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]zerolog.Level{
		"debug": zerolog.DebugLevel,
		"INFO":  zerolog.InfoLevel,
		"warn":  zerolog.WarnLevel,
		"error": zerolog.ErrorLevel,
		"":      zerolog.InfoLevel,
		"loud":  zerolog.InfoLevel,
	}

	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
