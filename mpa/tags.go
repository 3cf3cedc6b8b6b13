// SPDX-License-Identifier: EPL-2.0

package mpa

import (
	"bytes"
	"encoding/binary"
)

const (
	id3v2HeaderSize = 10
	id3v1Size       = 128
	apeFooterSize   = 32
)

// SkipID3v2 returns the size of an ID3v2 tag at the start of buf, footer
// included, or 0 when there is none. The result may exceed len(buf) when
// the tag is only partly buffered.
func SkipID3v2(buf []byte) int {
	if len(buf) < id3v2HeaderSize || !bytes.HasPrefix(buf, []byte("ID3")) {
		return 0
	}
	if buf[3] == 0xFF || buf[4] == 0xFF {
		return 0
	}

	size := 0
	for _, b := range buf[6:10] {
		if b&0x80 != 0 {
			return 0 // not a syncsafe integer
		}
		size = size<<7 | int(b)
	}

	n := id3v2HeaderSize + size
	if buf[5]&0x10 != 0 {
		n += id3v2HeaderSize // footer present
	}

	return n
}

// TrimID3v1 drops a trailing 128-byte ID3v1 tag.
func TrimID3v1(buf []byte) []byte {
	if len(buf) >= id3v1Size && bytes.HasPrefix(buf[len(buf)-id3v1Size:], []byte("TAG")) {
		return buf[:len(buf)-id3v1Size]
	}
	return buf
}

// TrimAPE drops a trailing APEv2 tag, header included when flagged.
func TrimAPE(buf []byte) []byte {
	if len(buf) < apeFooterSize {
		return buf
	}

	footer := buf[len(buf)-apeFooterSize:]
	if !bytes.HasPrefix(footer, []byte("APETAGEX")) {
		return buf
	}

	// Size covers items and footer; bit 31 of the flags marks a header.
	n := int(binary.LittleEndian.Uint32(footer[12:16]))
	if binary.LittleEndian.Uint32(footer[20:24])&(1<<31) != 0 {
		n += apeFooterSize
	}
	if n < apeFooterSize || n > len(buf) {
		return buf
	}

	return buf[:len(buf)-n]
}

// TrimTags removes trailing ID3v1 and APEv2 tags, in either order.
func TrimTags(buf []byte) []byte {
	return TrimAPE(TrimID3v1(TrimAPE(buf)))
}
