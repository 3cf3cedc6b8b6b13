// SPDX-License-Identifier: EPL-2.0

// Package bits implements the MSB-first bit cursor used to walk MPEG audio
// headers, side information and sample codes.
package bits

import "errors"

// ErrOutOfData is returned when a read asks for more bits than remain.
var ErrOutOfData = errors.New("bit reader: out of data")

// Reader is a sequential cursor over a fixed byte slice. The slice is not
// copied and not owned. A failed read leaves the cursor where it was.
type Reader struct {
	buf   []byte
	pos   int // bit position
	limit int // len(buf) * 8
}

// NewReader returns a Reader positioned at the first bit of data.
func NewReader(data []byte) *Reader {
	r := &Reader{}
	r.Init(data)
	return r
}

// Init re-targets the reader at data, rewinding to bit zero. It lets a
// caller keep a Reader value on the stack instead of allocating one.
func (r *Reader) Init(data []byte) {
	r.buf = data
	r.pos = 0
	r.limit = len(data) * 8
}

// Position returns the number of bits consumed so far.
func (r *Reader) Position() int { return r.pos }

// Remaining returns the number of unread bits.
func (r *Reader) Remaining() int { return r.limit - r.pos }

// PeekBits returns the next n bits (n <= 32) without consuming them.
func (r *Reader) PeekBits(n int) (uint32, error) {
	if n < 0 || n > 32 {
		return 0, ErrOutOfData
	}
	if n == 0 {
		return 0, nil
	}
	if r.pos+n > r.limit {
		return 0, ErrOutOfData
	}

	var v uint64
	p := r.pos >> 3
	s := r.pos & 7
	need := (s + n + 7) >> 3 // bytes spanned, at most 5
	for i := range need {
		v = v<<8 | uint64(r.buf[p+i])
	}
	v >>= uint(need*8 - s - n)

	return uint32(v & (1<<uint(n) - 1)), nil
}

// ReadBits returns the next n bits (n <= 32) and advances the cursor.
func (r *Reader) ReadBits(n int) (uint32, error) {
	v, err := r.PeekBits(n)
	if err != nil {
		return 0, err
	}
	r.pos += n

	return v, nil
}

// Skip advances the cursor by n bits.
func (r *Reader) Skip(n int) error {
	if n < 0 || r.pos+n > r.limit {
		return ErrOutOfData
	}
	r.pos += n

	return nil
}
