// SPDX-License-Identifier: EPL-2.0

// Command mp2dec decodes an MPEG-1/2 Audio Layer I or II file to WAV or
// AIFF.
//
//	mp2dec [-rate 8000] [-mono] [-crc] [-format wav|aiff] input.mp2 output.wav
//
// An input of "-" reads the stream from stdin. The log level comes from
// -log-level or the LOG_LEVEL environment variable.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/ik5/mpadec"
	"github.com/ik5/mpadec/audio"
	"github.com/ik5/mpadec/formats/aiff"
	"github.com/ik5/mpadec/formats/mp2"
	"github.com/ik5/mpadec/formats/wav"
)

func main() {
	cfg, err := parseConfig(os.Args[1:], os.Getenv, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := newLogger(os.Stderr, cfg.logLevel)
	if err := run(cfg, os.Stdin, logger); err != nil {
		logger.Error().Err(err).Str("input", cfg.input).Msg("decoding failed")
		os.Exit(1)
	}
}

func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs

	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func run(cfg config, stdin io.Reader, logger zerolog.Logger) error {
	src, in, err := openSource(cfg, stdin, logger)
	if err != nil {
		return err
	}
	defer in.Close()
	defer src.Close()

	logger.Debug().
		Int("rate", src.SampleRate()).
		Int("channels", src.Channels()).
		Msg("input opened")

	out, err := os.Create(cfg.output)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer out.Close()

	pipeline := mpadec.Prepare(src, cfg.rate, cfg.mono)

	var frames int
	switch cfg.format {
	case formatAIFF:
		frames, err = aiff.Encode(out, pipeline)
	default:
		frames, err = wav.Encode(out, pipeline)
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", cfg.output, err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}

	logger.Info().
		Str("output", cfg.output).
		Str("format", cfg.format).
		Int("frames", frames).
		Int("rate", pipeline.SampleRate()).
		Int("channels", pipeline.Channels()).
		Msg("decoded")

	return nil
}

func openSource(cfg config, stdin io.Reader, logger zerolog.Logger) (audio.Source, io.Closer, error) {
	dec := mp2.Decoder{Logger: logger, CheckCRC: cfg.checkCRC}

	if cfg.input == "-" {
		src, err := dec.Decode(stdin)
		if err != nil {
			return nil, nil, fmt.Errorf("decoding stdin: %w", err)
		}
		return src, io.NopCloser(nil), nil
	}

	in, err := os.Open(cfg.input)
	if err != nil {
		return nil, nil, fmt.Errorf("opening input: %w", err)
	}

	src, err := mpadec.Decode(mpadec.NewRegistry(dec), cfg.input, in)
	if err != nil {
		in.Close()
		return nil, nil, err
	}

	return src, in, nil
}
