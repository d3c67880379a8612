package graphbinary

import (
	"bytes"
	"errors"
	"testing"
)

func TestWritePrimitives(t *testing.T) {
	buf := new(bytes.Buffer)
	writeInt(1, buf)
	writeLong(-2, buf)
	writeString("abc", buf)
	expected := []byte{
		0x00, 0x00, 0x00, 0x01,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xfe,
		0x00, 0x00, 0x00, 0x03, 0x61, 0x62, 0x63,
	}
	if !bytes.Equal(buf.Bytes(), expected) {
		t.Fatalf("wrote % x, expected % x", buf.Bytes(), expected)
	}
}

func TestReadPrimitives(t *testing.T) {
	r := bytes.NewReader([]byte{
		0x00, 0x00, 0x00, 0x01,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xfe,
		0x00, 0x00, 0x00, 0x03, 0x61, 0x62, 0x63,
	})
	i, err := readInt(r)
	if err != nil || i != 1 {
		t.Fatalf("readInt = %d, %v", i, err)
	}
	l, err := readLong(r)
	if err != nil || l != -2 {
		t.Fatalf("readLong = %d, %v", l, err)
	}
	s, err := readString(r)
	if err != nil || s != "abc" {
		t.Fatalf("readString = %q, %v", s, err)
	}
}

func TestReadPastEnd(t *testing.T) {
	if _, err := readInt(bytes.NewReader([]byte{0x00, 0x00})); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
	if _, err := readString(bytes.NewReader([]byte{0x00, 0x00, 0x00, 0x05, 0x61})); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
	if _, err := readUint8(bytes.NewReader(nil)); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestReadStringInvalidUTF8(t *testing.T) {
	_, err := readString(bytes.NewReader([]byte{0x00, 0x00, 0x00, 0x01, 0xff}))
	if !errors.Is(err, ErrEncoding) {
		t.Fatalf("expected ErrEncoding, got %v", err)
	}
}

func TestReadStringNegativeLength(t *testing.T) {
	_, err := readString(bytes.NewReader([]byte{0xff, 0xff, 0xff, 0xff}))
	if !errors.Is(err, ErrEncoding) {
		t.Fatalf("expected ErrEncoding, got %v", err)
	}
}

func TestStringLengthIsByteCount(t *testing.T) {
	buf := new(bytes.Buffer)
	writeString("é", buf)
	//	two UTF-8 bytes, one rune
	expected := []byte{0x00, 0x00, 0x00, 0x02, 0xc3, 0xa9}
	if !bytes.Equal(buf.Bytes(), expected) {
		t.Fatalf("wrote % x, expected % x", buf.Bytes(), expected)
	}
}
