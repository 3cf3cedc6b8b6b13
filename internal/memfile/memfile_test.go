// SPDX-License-Identifier: EPL-2.0

package memfile

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestFile_WriteSeek(t *testing.T) {
	t.Parallel()

	f := New(nil)
	_, _ = f.Write([]byte("RIFF----WAVE"))
	_, _ = f.Seek(4, io.SeekStart)
	_, _ = f.Write([]byte("1234"))
	_, _ = f.Seek(0, io.SeekEnd)
	_, _ = f.Write([]byte("data"))

	if got := string(f.Bytes()); got != "RIFF1234WAVEdata" {
		t.Errorf("Bytes() = %q", got)
	}
	if f.Len() != 16 {
		t.Errorf("Len() = %d, want 16", f.Len())
	}
}

func TestFile_WritePastEnd(t *testing.T) {
	t.Parallel()

	f := New(make([]byte, 2, 16))
	_, _ = f.Seek(5, io.SeekStart)
	_, _ = f.Write([]byte{9})

	if want := []byte{0, 0, 0, 0, 0, 9}; !bytes.Equal(f.Bytes(), want) {
		t.Errorf("Bytes() = %v, want %v", f.Bytes(), want)
	}
}

func TestFile_Read(t *testing.T) {
	t.Parallel()

	f := New([]byte("abcdef"))
	buf := make([]byte, 4)

	if n, err := f.Read(buf); n != 4 || err != nil || string(buf) != "abcd" {
		t.Fatalf("Read() = %d, %v, %q", n, err, buf[:n])
	}
	if pos, _ := f.Seek(-1, io.SeekCurrent); pos != 3 {
		t.Errorf("Seek(-1, current) = %d, want 3", pos)
	}
	if n, _ := f.Read(buf); string(buf[:n]) != "def" {
		t.Errorf("Read() = %q, want def", buf[:n])
	}
	if _, err := f.Read(buf); !errors.Is(err, io.EOF) {
		t.Errorf("Read() at end error = %v, want EOF", err)
	}
}

func TestFile_SeekErrors(t *testing.T) {
	t.Parallel()

	f := New([]byte("abc"))
	if _, err := f.Seek(-4, io.SeekEnd); !errors.Is(err, ErrNegativeOffset) {
		t.Errorf("Seek before start error = %v", err)
	}
	if _, err := f.Seek(0, 42); err == nil {
		t.Error("Seek with bad whence succeeded")
	}
}

func TestReadSeeker(t *testing.T) {
	t.Parallel()

	seekable := bytes.NewReader([]byte("x"))
	if rs, err := ReadSeeker(seekable); err != nil || rs != seekable {
		t.Errorf("ReadSeeker(seekable) = %v, %v; want the same reader", rs, err)
	}

	rs, err := ReadSeeker(io.MultiReader(strings.NewReader("ab"), strings.NewReader("cd")))
	if err != nil {
		t.Fatalf("ReadSeeker() error = %v", err)
	}
	data, _ := io.ReadAll(rs)
	if string(data) != "abcd" {
		t.Errorf("buffered data = %q", data)
	}
}
