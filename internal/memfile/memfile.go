// SPDX-License-Identifier: EPL-2.0

// Package memfile provides an in-memory io.ReadWriteSeeker for the
// go-audio codecs, which need to seek on both read and write.
package memfile

import (
	"errors"
	"fmt"
	"io"
)

var ErrNegativeOffset = errors.New("memfile: negative position")

// File is a growable byte slice with a cursor.
type File struct {
	data   []byte
	offset int64
}

// New returns a File positioned at the start of data. data is not copied.
func New(data []byte) *File {
	return &File{data: data}
}

// Bytes returns the file contents.
func (f *File) Bytes() []byte { return f.data }

// Len returns the file size.
func (f *File) Len() int { return len(f.data) }

func (f *File) Read(p []byte) (int, error) {
	if f.offset >= int64(len(f.data)) {
		return 0, io.EOF
	}

	n := copy(p, f.data[f.offset:])
	f.offset += int64(n)

	return n, nil
}

// Write overwrites at the cursor, growing the file as needed. Seeking
// past the end and writing zero fills the gap.
func (f *File) Write(p []byte) (int, error) {
	end := f.offset + int64(len(p))
	if end > int64(len(f.data)) {
		if end > int64(cap(f.data)) {
			grown := make([]byte, len(f.data), max(end, 2*int64(cap(f.data))))
			copy(grown, f.data)
			f.data = grown
		}
		old := len(f.data)
		f.data = f.data[:end]
		if f.offset > int64(old) {
			clear(f.data[old:f.offset])
		}
	}

	n := copy(f.data[f.offset:], p)
	f.offset += int64(n)

	return n, nil
}

func (f *File) Seek(offset int64, whence int) (int64, error) {
	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = f.offset + offset
	case io.SeekEnd:
		pos = int64(len(f.data)) + offset
	default:
		return 0, fmt.Errorf("memfile: invalid whence %d", whence)
	}

	if pos < 0 {
		return 0, ErrNegativeOffset
	}

	f.offset = pos
	return pos, nil
}

// ReadSeeker returns r itself when it can seek, or a File holding all of
// r otherwise.
func ReadSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering input: %w", err)
	}

	return New(data), nil
}
