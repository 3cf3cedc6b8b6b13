// SPDX-License-Identifier: EPL-2.0

package mpa

import "github.com/rs/zerolog"

// Option configures a Decoder.
type Option func(*Decoder)

// WithLogger sets the logger dropped frames are reported to at debug level.
// The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(d *Decoder) {
		d.log = l
	}
}

// WithCRCCheck makes the decoder verify the CRC of protected frames and
// drop those that fail.
func WithCRCCheck(enabled bool) Option {
	return func(d *Decoder) {
		d.checkCRC = enabled
	}
}
