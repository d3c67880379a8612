package graphbinary

import (
	"bytes"
	"fmt"
)

//	Reader decodes GraphBinary bytes back into values. A Reader is
//	immutable after construction and safe for concurrent use; each call
//	owns its own cursor.
type Reader struct {
	deserializers map[DataType]*TypeDeserializer
}

//	NewReader builds a Reader from the default deserializer table with
//	the given overrides applied on top. An override with the same type
//	code as a built-in replaces it.
func NewReader(overrides ...*TypeDeserializer) *Reader {
	rd := &Reader{deserializers: map[DataType]*TypeDeserializer{}}
	for _, d := range defaultDeserializers() {
		rd.deserializers[d.DataType] = d
	}
	for _, d := range overrides {
		rd.deserializers[d.DataType] = d
	}
	return rd
}

//	ReadObject decodes one fully-qualified value from data. Trailing
//	bytes past the first complete value are ignored.
func (rd *Reader) ReadObject(data []byte) (v interface{}, err error) {
	return rd.ReadValue(bytes.NewReader(data))
}

//	ReadValue decodes one fully-qualified value from the cursor.
//	Composite deserializers call back into it for nested components.
func (rd *Reader) ReadValue(r *bytes.Reader) (v interface{}, err error) {
	code, err := readUint8(r)
	if err != nil {
		return
	}
	if DataType(code) == NullType {
		return
	}
	d, ok := rd.deserializers[DataType(code)]
	if !ok {
		err = fmt.Errorf("%w: 0x%02x", ErrUnknownTypeCode, code)
		return
	}
	return d.Read(r, rd)
}
