// SPDX-License-Identifier: GPL-2.0-or-later

// Package reader implements a sequential little-endian cursor over an
// immutable byte slice.
package reader

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/chewxy/math32"
)

type Reader struct {
	r    *bytes.Reader
	size int64
}

func New(data []byte) *Reader {
	return &Reader{r: bytes.NewReader(data), size: int64(len(data))}
}

func (q *Reader) read4() (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(q.r, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

func (q *Reader) ReadInt32() (int32, error) {
	u, err := q.read4()
	return int32(u), err
}

func (q *Reader) ReadUint32() (uint32, error) {
	return q.read4()
}

func (q *Reader) ReadFloat32() (float32, error) {
	u, err := q.read4()
	return math32.Float32frombits(u), err
}

// ReadBytes returns a copy of the next n bytes.
func (q *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 || int64(n) > int64(q.r.Len()) {
		return nil, io.ErrUnexpectedEOF
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(q.r, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Read decodes fixed-size data, see encoding/binary.Read.
func (q *Reader) Read(data interface{}) error {
	return binary.Read(q.r, binary.LittleEndian, data)
}

// ReadCString reads up to and including the next NUL byte and returns the
// bytes before it.
func (q *Reader) ReadCString() (string, error) {
	sb := bytes.Buffer{}
	for {
		b, err := q.r.ReadByte()
		if err != nil {
			return "", err
		}
		if b == 0 {
			break
		}
		sb.WriteByte(b)
	}
	return sb.String(), nil
}

// Offset returns the absolute position of the next unread byte.
func (q *Reader) Offset() int64 {
	return q.size - int64(q.r.Len())
}

// Len returns the number of bytes of the unread portion of the slice.
func (q *Reader) Len() int {
	return q.r.Len()
}
