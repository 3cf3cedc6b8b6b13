// SPDX-License-Identifier: EPL-2.0

package mpadec

import (
	"fmt"
	"io"

	"github.com/ik5/mpadec/audio"
	"github.com/ik5/mpadec/formats/aiff"
	"github.com/ik5/mpadec/formats/mp2"
	"github.com/ik5/mpadec/formats/wav"
)

// NewRegistry returns a registry holding every decoder of this module:
// MPEG audio Layer I/II under mp1, mp2 and mpa, plus wav and aiff.
func NewRegistry(mpeg mp2.Decoder) *audio.Registry {
	r := audio.NewRegistry()
	r.Register(mpeg, "mp1", "mp2", "mpa")
	r.Register(wav.Decoder{}, "wav", "wave")
	r.Register(aiff.Decoder{}, "aiff", "aif")

	return r
}

// Decode picks a decoder from r by the extension of name.
func Decode(r *audio.Registry, name string, in io.Reader) (audio.Source, error) {
	dec, ok := r.ForFile(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, name)
	}

	src, err := dec.Decode(in)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}

	return src, nil
}
