package graphbinary

import (
	"bytes"
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/satori/go.uuid"
)

//	Timestamp is an instant as milliseconds since the Unix epoch. It is
//	a distinct type so the timestamp wire code keeps its own shape and
//	never competes with date or the floating-point types for dispatch.
type Timestamp int64

var intSerializer = serializerOf(int32(0), IntType, func(v interface{}, buf *bytes.Buffer, w *Writer) error {
	writeInt(v.(int32), buf)
	return nil
})

var intDeserializer = deserializerOf(IntType, func(r *bytes.Reader, rd *Reader) (interface{}, error) {
	return readInt(r)
})

var longSerializer = serializerOf(int64(0), LongType, func(v interface{}, buf *bytes.Buffer, w *Writer) error {
	writeLong(v.(int64), buf)
	return nil
})

var intAsLongSerializer = serializerOf(int(0), LongType, func(v interface{}, buf *bytes.Buffer, w *Writer) error {
	writeLong(int64(v.(int)), buf)
	return nil
})

var longDeserializer = deserializerOf(LongType, func(r *bytes.Reader, rd *Reader) (interface{}, error) {
	return readLong(r)
})

//	Catches the remaining fixed-width integer shapes and widens them to
//	long. Unsigned values beyond the signed 64-bit range do not fit any
//	wire type here.
var integerFallbackSerializer = &TypeSerializer{
	DataType: LongType,
	Matches: func(v interface{}) bool {
		switch reflect.ValueOf(v).Kind() {
		case reflect.Int16, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint, reflect.Uint64:
			return true
		}
		return false
	},
	Write: func(v interface{}, buf *bytes.Buffer, w *Writer, asValue bool) error {
		rv := reflect.ValueOf(v)
		var wide int64
		switch rv.Kind() {
		case reflect.Int16:
			wide = rv.Int()
		default:
			u := rv.Uint()
			if u > math.MaxInt64 {
				return fmt.Errorf("%w: %d exceeds the signed 64-bit long", ErrOutOfRange, u)
			}
			wide = int64(u)
		}
		writeTypeAndFlag(LongType, asValue, buf)
		writeLong(wide, buf)
		return nil
	},
}

var stringSerializer = serializerOf("", StringType, func(v interface{}, buf *bytes.Buffer, w *Writer) error {
	writeString(v.(string), buf)
	return nil
})

var stringDeserializer = deserializerOf(StringType, func(r *bytes.Reader, rd *Reader) (interface{}, error) {
	return readString(r)
})

var dateSerializer = serializerOf(time.Time{}, DateType, func(v interface{}, buf *bytes.Buffer, w *Writer) error {
	writeLong(v.(time.Time).UnixMilli(), buf)
	return nil
})

var dateDeserializer = deserializerOf(DateType, func(r *bytes.Reader, rd *Reader) (interface{}, error) {
	ms, err := readLong(r)
	if err != nil {
		return nil, err
	}
	return time.UnixMilli(ms).UTC(), nil
})

var timestampSerializer = serializerOf(Timestamp(0), TimestampType, func(v interface{}, buf *bytes.Buffer, w *Writer) error {
	writeLong(int64(v.(Timestamp)), buf)
	return nil
})

var timestampDeserializer = deserializerOf(TimestampType, func(r *bytes.Reader, rd *Reader) (interface{}, error) {
	ms, err := readLong(r)
	if err != nil {
		return nil, err
	}
	return Timestamp(ms), nil
})

//	IEEE-754 canonical bit patterns emitted for the special values
const (
	doubleNaNBits    uint64 = 0x7ff8000000000000
	doublePosInfBits uint64 = 0x7ff0000000000000
	doubleNegInfBits uint64 = 0xfff0000000000000
	floatNaNBits     uint32 = 0x7fc00000
	floatPosInfBits  uint32 = 0x7f800000
	floatNegInfBits  uint32 = 0xff800000
)

func doubleBits(f float64) uint64 {
	switch {
	case math.IsNaN(f):
		return doubleNaNBits
	case math.IsInf(f, 1):
		return doublePosInfBits
	case math.IsInf(f, -1):
		return doubleNegInfBits
	}
	return math.Float64bits(f)
}

func floatBits(f float32) uint32 {
	f64 := float64(f)
	switch {
	case math.IsNaN(f64):
		return floatNaNBits
	case math.IsInf(f64, 1):
		return floatPosInfBits
	case math.IsInf(f64, -1):
		return floatNegInfBits
	}
	return math.Float32bits(f)
}

var doubleSerializer = serializerOf(float64(0), DoubleType, func(v interface{}, buf *bytes.Buffer, w *Writer) error {
	writeUint64(doubleBits(v.(float64)), buf)
	return nil
})

var doubleDeserializer = deserializerOf(DoubleType, func(r *bytes.Reader, rd *Reader) (interface{}, error) {
	bits, err := readUint64(r)
	if err != nil {
		return nil, err
	}
	return math.Float64frombits(bits), nil
})

var floatSerializer = serializerOf(float32(0), FloatType, func(v interface{}, buf *bytes.Buffer, w *Writer) error {
	writeUint32(floatBits(v.(float32)), buf)
	return nil
})

var floatDeserializer = deserializerOf(FloatType, func(r *bytes.Reader, rd *Reader) (interface{}, error) {
	bits, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	return math.Float32frombits(bits), nil
})

var uuidSerializer = serializerOf(uuid.UUID{}, UUIDType, func(v interface{}, buf *bytes.Buffer, w *Writer) error {
	buf.Write(v.(uuid.UUID).Bytes())
	return nil
})

var uuidDeserializer = deserializerOf(UUIDType, func(r *bytes.Reader, rd *Reader) (interface{}, error) {
	b, err := readBytes(r, 16)
	if err != nil {
		return nil, err
	}
	return uuid.FromBytes(b)
})

var byteSerializer = serializerOf(int8(0), ByteType, func(v interface{}, buf *bytes.Buffer, w *Writer) error {
	buf.WriteByte(byte(v.(int8)))
	return nil
})

var byteDeserializer = deserializerOf(ByteType, func(r *bytes.Reader, rd *Reader) (interface{}, error) {
	b, err := readUint8(r)
	if err != nil {
		return nil, err
	}
	return int8(b), nil
})

var byteBufferSerializer = serializerOf([]byte(nil), ByteBufferType, func(v interface{}, buf *bytes.Buffer, w *Writer) error {
	b := v.([]byte)
	writeInt(int32(len(b)), buf)
	buf.Write(b)
	return nil
})

var byteBufferDeserializer = deserializerOf(ByteBufferType, func(r *bytes.Reader, rd *Reader) (interface{}, error) {
	n, err := readCount(r)
	if err != nil {
		return nil, err
	}
	return readBytes(r, int(n))
})

var booleanSerializer = serializerOf(false, BooleanType, func(v interface{}, buf *bytes.Buffer, w *Writer) error {
	if v.(bool) {
		buf.WriteByte(0x01)
	} else {
		buf.WriteByte(0x00)
	}
	return nil
})

var booleanDeserializer = deserializerOf(BooleanType, func(r *bytes.Reader, rd *Reader) (interface{}, error) {
	b, err := readUint8(r)
	if err != nil {
		return nil, err
	}
	return b == 0x01, nil
})
