// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"

	"github.com/Eyevinn/mp4ff/bits"
)

// bitWriter appends MSB-first bit fields and keeps the running bit count
// the CRC and overflow checks need.
type bitWriter struct {
	buf bytes.Buffer
	w   *bits.Writer
	n   int // bits written
}

func newBitWriter() *bitWriter {
	bw := &bitWriter{}
	bw.w = bits.NewWriter(&bw.buf)
	return bw
}

func (w *bitWriter) write(v uint32, width int) {
	if width == 0 {
		return
	}
	w.w.Write(uint(v), width)
	w.n += width
}

func (w *bitWriter) flag(b bool) {
	if b {
		w.write(1, 1)
		return
	}
	w.write(0, 1)
}

// bytes flushes the pending bits, zero padded to a byte boundary.
func (w *bitWriter) bytes() ([]byte, error) {
	w.w.Flush()
	if err := w.w.Error(); err != nil {
		return nil, err
	}
	return w.buf.Bytes(), nil
}
