// SPDX-License-Identifier: EPL-2.0

package mpa

// maxSyncMatches is how many following headers confirm a candidate.
const maxSyncMatches = 10

// FindFrame returns the offset and header of the first frame in buf. A
// candidate counts only if the whole frame is in buf and either the
// headers after it chain up (up to maxSyncMatches, or to the end of buf
// after at least one) or it fills buf exactly from offset 0.
func FindFrame(buf []byte) (int, FrameHeader, error) {
	for i := 0; i+HeaderSize <= len(buf); i++ {
		if buf[i] != 0xFF || buf[i+1]&0xF0 != 0xF0 {
			continue
		}

		h, err := ParseHeader(buf[i:])
		if err != nil {
			continue
		}

		n := h.FrameLength()
		if i+n > len(buf) {
			continue
		}
		if (i == 0 && n == len(buf)) || confirm(buf[i:], h) {
			return i, h, nil
		}
	}

	return 0, FrameHeader{}, ErrNoFrameFound
}

func confirm(buf []byte, first FrameHeader) bool {
	pos := 0
	h := first
	for matches := range maxSyncMatches {
		pos += h.FrameLength()
		if pos+HeaderSize > len(buf) {
			return matches > 0
		}

		next, err := ParseHeader(buf[pos:])
		if err != nil || !first.compatible(next) {
			return false
		}
		h = next
	}

	return true
}
