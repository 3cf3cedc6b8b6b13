// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

const (
	formatWAV  = "wav"
	formatAIFF = "aiff"
)

var (
	errUsage         = errors.New("usage: mp2dec [flags] <input.{mp1,mp2,mpa}|-> <output.{wav,aiff}>")
	errUnknownFormat = errors.New("output format must be wav or aiff")
	errBadRate       = errors.New("rate must not be negative")
)

type config struct {
	input  string
	output string
	format string

	rate     int
	mono     bool
	checkCRC bool

	logLevel zerolog.Level
}

// parseConfig reads flags from args; LOG_LEVEL from getenv is the default
// for -log-level.
func parseConfig(args []string, getenv func(string) string, stderr io.Writer) (config, error) {
	var (
		cfg   config
		level string
	)

	fs := flag.NewFlagSet("mp2dec", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.rate, "rate", 0, "output sample rate in Hz, 0 keeps the stream rate")
	fs.BoolVar(&cfg.mono, "mono", false, "mix down to one channel")
	fs.BoolVar(&cfg.checkCRC, "crc", false, "drop protected frames whose CRC does not match")
	fs.StringVar(&cfg.format, "format", "", "output format: wav or aiff (default from the output extension)")
	fs.StringVar(&level, "log-level", getenv("LOG_LEVEL"), "debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() != 2 {
		return config{}, errUsage
	}
	cfg.input, cfg.output = fs.Arg(0), fs.Arg(1)

	if cfg.rate < 0 {
		return config{}, errBadRate
	}

	if cfg.format == "" {
		cfg.format = formatFromPath(cfg.output)
	}
	cfg.format = strings.ToLower(cfg.format)
	if cfg.format != formatWAV && cfg.format != formatAIFF {
		return config{}, fmt.Errorf("%w: %q", errUnknownFormat, cfg.format)
	}

	cfg.logLevel = parseLevel(level)

	return cfg, nil
}

func formatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".aif", ".aiff":
		return formatAIFF
	default:
		return formatWAV
	}
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
