package graphbinary

import (
	"bytes"
	"encoding/hex"
	"errors"
	"math"
	"testing"

	"github.com/satori/go.uuid"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func checkWrite(t *testing.T, value interface{}, expectedHex string) {
	t.Helper()
	data, err := NewWriter().WriteObject(value)
	if err != nil {
		t.Fatal(err)
	}
	expected := mustHex(t, expectedHex)
	if !bytes.Equal(data, expected) {
		t.Fatalf("encode(%v) = % x, expected % x", value, data, expected)
	}
}

func TestWriteNull(t *testing.T) {
	checkWrite(t, nil, "fe")
}

func TestWriteInt(t *testing.T) {
	checkWrite(t, int32(1), "010000000001")
	checkWrite(t, int32(-1), "0100ffffffff")
}

func TestWriteLong(t *testing.T) {
	checkWrite(t, int64(2), "02000000000000000002")
	checkWrite(t, 5, "02000000000000000005")
	checkWrite(t, int16(3), "02000000000000000003")
	checkWrite(t, uint32(4), "02000000000000000004")
}

func TestWriteLongOutOfRange(t *testing.T) {
	_, err := NewWriter().WriteObject(uint64(1) << 63)
	if !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
}

func TestWriteString(t *testing.T) {
	checkWrite(t, "abc", "030000000003616263")
	checkWrite(t, "", "030000000000")
}

func TestWriteBoolean(t *testing.T) {
	checkWrite(t, true, "270001")
	checkWrite(t, false, "270000")
}

func TestWriteByteAndByteBuffer(t *testing.T) {
	checkWrite(t, int8(-1), "2400ff")
	checkWrite(t, []byte{0x01, 0x02, 0x03}, "250000000003010203")
}

func TestWriteDoubleSpecials(t *testing.T) {
	checkWrite(t, 3.2, "0700400999999999999a")
	checkWrite(t, math.NaN(), "07007ff8000000000000")
	checkWrite(t, math.Inf(1), "07007ff0000000000000")
	checkWrite(t, math.Inf(-1), "0700fff0000000000000")
}

func TestWriteFloatSpecials(t *testing.T) {
	checkWrite(t, float32(1.0), "08003f800000")
	checkWrite(t, float32(math.NaN()), "08007fc00000")
	checkWrite(t, float32(math.Inf(1)), "08007f800000")
	checkWrite(t, float32(math.Inf(-1)), "0800ff800000")
}

func TestWriteList(t *testing.T) {
	checkWrite(t, []interface{}{int32(1), "a"}, "090000000002"+"010000000001"+"030000000001"+"61")
}

func TestWriteSet(t *testing.T) {
	checkWrite(t, Set{int32(2)}, "0b0000000001010000000002")
}

func TestWriteMapSingleEntry(t *testing.T) {
	checkWrite(t, map[interface{}]interface{}{"a": int32(1)},
		"0a0000000001"+"03000000000161"+"010000000001")
}

func TestWriteUUID(t *testing.T) {
	u, err := uuid.FromString("00112233-4455-6677-8899-aabbccddeeff")
	if err != nil {
		t.Fatal(err)
	}
	checkWrite(t, u, "0c00"+"00112233445566778899aabbccddeeff")
}

func TestWriteEnum(t *testing.T) {
	checkWrite(t, OrderDesc, "1a000000000464657363")
	checkWrite(t, TID, "2000000000026964")
	checkWrite(t, ScopeGlobal, "1f0000000006676c6f62616c")
}

func TestWriteMangledEnumName(t *testing.T) {
	//	a caller holding a source-mangled member still encodes canonically
	checkWrite(t, Scope("global_"), "1f0000000006676c6f62616c")
}

func TestWriteGenericContainers(t *testing.T) {
	//	[]string has no exact entry and encodes as a list of strings
	checkWrite(t, []string{"a"}, "09000000000103000000000161")
	checkWrite(t, map[string]int32{"a": 1}, "0a000000000103000000000161010000000001")
}

func TestWriteNestedNull(t *testing.T) {
	checkWrite(t, []interface{}{nil}, "090000000001fe")
}

func TestWriteVertex(t *testing.T) {
	v := Vertex{ID: int64(1), Label: "person"}
	checkWrite(t, v, "1100"+"02000000000000000001"+"00000006706572736f6e"+"fe")
}

func TestWritePointerDereference(t *testing.T) {
	v := &Vertex{ID: int64(1), Label: "person"}
	checkWrite(t, v, "1100"+"02000000000000000001"+"00000006706572736f6e"+"fe")
}

func TestWriteUnregisteredType(t *testing.T) {
	_, err := NewWriter().WriteObject(struct{ X int }{1})
	if !errors.Is(err, ErrUnregisteredType) {
		t.Fatalf("expected ErrUnregisteredType, got %v", err)
	}
}

func TestWriteGraphUnsupported(t *testing.T) {
	_, err := NewWriter().WriteObject(Graph{})
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestWriterOverride(t *testing.T) {
	//	replace the boolean serializer with one that inverts the payload
	override := serializerOf(false, BooleanType, func(v interface{}, buf *bytes.Buffer, w *Writer) error {
		if v.(bool) {
			buf.WriteByte(0x00)
		} else {
			buf.WriteByte(0x01)
		}
		return nil
	})
	data, err := NewWriter(override).WriteObject(true)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, mustHex(t, "270000")) {
		t.Fatalf("override not applied, got % x", data)
	}
}
