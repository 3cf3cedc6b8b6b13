// SPDX-License-Identifier: EPL-2.0

package mpa

const (
	crcPoly = 0x8005
	crcInit = 0xFFFF
)

// crc16 runs n bits of data, starting at bit offset start, through the
// CRC-16 register.
func crc16(crc uint16, data []byte, start, n int) uint16 {
	for i := start; i < start+n; i++ {
		bit := uint16(data[i>>3]>>(7-uint(i&7))) & 1
		msb := crc >> 15
		crc <<= 1
		if msb^bit != 0 {
			crc ^= crcPoly
		}
	}
	return crc
}

// frameCRC covers the last 16 header bits and the side information from
// the end of the CRC word up to bit end.
func frameCRC(frame []byte, end int) uint16 {
	crc := crc16(crcInit, frame, 16, 16)
	return crc16(crc, frame, (HeaderSize+2)*8, end-(HeaderSize+2)*8)
}

// storedCRC returns the CRC word carried after the header.
func storedCRC(frame []byte) uint16 {
	return uint16(frame[4])<<8 | uint16(frame[5])
}
