package graphbinary

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"unicode/utf8"
)

//	Byte-layer primitives. All multi-byte quantities on the wire are
//	big-endian. Writes append to a bytes.Buffer and cannot fail; reads
//	consume a forward-only bytes.Reader and report truncation.

func writeInt(v int32, buf *bytes.Buffer) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(v))
	buf.Write(b[:])
}

func writeLong(v int64, buf *bytes.Buffer) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(v))
	buf.Write(b[:])
}

func writeUint32(v uint32, buf *bytes.Buffer) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

func writeUint64(v uint64, buf *bytes.Buffer) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	buf.Write(b[:])
}

//	[i32 byte length][utf-8 bytes], no type code, no value flag
func writeString(s string, buf *bytes.Buffer) {
	writeInt(int32(len(s)), buf)
	buf.WriteString(s)
}

func readBytes(r *bytes.Reader, n int) (b []byte, err error) {
	b = make([]byte, n)
	if _, err = io.ReadFull(r, b); err != nil {
		err = fmt.Errorf("%w: needed %d more bytes", ErrTruncated, n)
		return
	}
	return
}

func readUint8(r *bytes.Reader) (b byte, err error) {
	b, err = r.ReadByte()
	if err != nil {
		err = fmt.Errorf("%w: needed 1 more byte", ErrTruncated)
		return
	}
	return
}

func readInt(r *bytes.Reader) (v int32, err error) {
	b, err := readBytes(r, 4)
	if err != nil {
		return
	}
	v = int32(binary.BigEndian.Uint32(b))
	return
}

func readLong(r *bytes.Reader) (v int64, err error) {
	b, err := readBytes(r, 8)
	if err != nil {
		return
	}
	v = int64(binary.BigEndian.Uint64(b))
	return
}

func readUint32(r *bytes.Reader) (v uint32, err error) {
	b, err := readBytes(r, 4)
	if err != nil {
		return
	}
	v = binary.BigEndian.Uint32(b)
	return
}

func readUint64(r *bytes.Reader) (v uint64, err error) {
	b, err := readBytes(r, 8)
	if err != nil {
		return
	}
	v = binary.BigEndian.Uint64(b)
	return
}

func readString(r *bytes.Reader) (s string, err error) {
	n, err := readInt(r)
	if err != nil {
		return
	}
	if n < 0 {
		err = fmt.Errorf("%w: negative string length %d", ErrEncoding, n)
		return
	}
	b, err := readBytes(r, int(n))
	if err != nil {
		return
	}
	if !utf8.Valid(b) {
		err = fmt.Errorf("%w: string payload is not valid UTF-8", ErrEncoding)
		return
	}
	s = string(b)
	return
}

//	reads a length prefix for a collection or byte run
func readCount(r *bytes.Reader) (n int32, err error) {
	n, err = readInt(r)
	if err != nil {
		return
	}
	if n < 0 {
		err = fmt.Errorf("%w: negative length prefix %d", ErrEncoding, n)
	}
	return
}
