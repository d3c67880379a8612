package graphbinary

import (
	"bytes"
	"fmt"
	"reflect"
)

//	Writer encodes in-memory values to GraphBinary. A Writer is immutable
//	after construction and safe for concurrent use; each call owns its
//	own output buffer.
type Writer struct {
	serializers map[reflect.Type]*TypeSerializer
	fallbacks   []*TypeSerializer
}

//	NewWriter builds a Writer from the default serializer table with the
//	given overrides applied on top. An override with the same shape key
//	as a built-in replaces it.
func NewWriter(overrides ...*TypeSerializer) *Writer {
	w := &Writer{serializers: map[reflect.Type]*TypeSerializer{}}
	for _, s := range defaultSerializers() {
		w.register(s)
	}
	for _, s := range overrides {
		w.register(s)
	}
	return w
}

func (w *Writer) register(s *TypeSerializer) {
	if s.Type != nil {
		w.serializers[s.Type] = s
	}
	if s.Matches != nil {
		w.fallbacks = append(w.fallbacks, s)
	}
}

//	WriteObject encodes one value in fully-qualified form. A nil value
//	encodes to the single untyped null byte.
func (w *Writer) WriteObject(value interface{}) (data []byte, err error) {
	buf := new(bytes.Buffer)
	if err = w.write(value, buf); err != nil {
		return
	}
	data = buf.Bytes()
	return
}

//	write emits one fully-qualified value. Composite serializers call
//	back into it for their nested components.
func (w *Writer) write(v interface{}, buf *bytes.Buffer) error {
	return w.writeValue(v, buf, false)
}

func (w *Writer) writeValue(v interface{}, buf *bytes.Buffer, asValue bool) error {
	if v == nil {
		buf.WriteByte(byte(NullType))
		return nil
	}
	if s, ok := w.serializers[reflect.TypeOf(v)]; ok {
		return s.Write(v, buf, w, asValue)
	}
	for _, s := range w.fallbacks {
		if s.Matches(v) {
			log.Debugf("no exact serializer for %T, falling back to %s", v, s.DataType)
			return s.Write(v, buf, w, asValue)
		}
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr:
		if rv.IsNil() {
			buf.WriteByte(byte(NullType))
			return nil
		}
		return w.writeValue(rv.Elem().Interface(), buf, asValue)
	case reflect.Slice, reflect.Array:
		return w.writeGenericSlice(rv, buf, asValue)
	case reflect.Map:
		return w.writeGenericMap(rv, buf, asValue)
	}
	return fmt.Errorf("%w: %T", ErrUnregisteredType, v)
}

//	a slice of any element type encodes as a list of its elements
func (w *Writer) writeGenericSlice(rv reflect.Value, buf *bytes.Buffer, asValue bool) error {
	writeTypeAndFlag(ListType, asValue, buf)
	writeInt(int32(rv.Len()), buf)
	for i := 0; i < rv.Len(); i++ {
		if err := w.write(rv.Index(i).Interface(), buf); err != nil {
			return err
		}
	}
	return nil
}

//	a map of any key/element types encodes as a map of its entries
func (w *Writer) writeGenericMap(rv reflect.Value, buf *bytes.Buffer, asValue bool) error {
	writeTypeAndFlag(MapType, asValue, buf)
	writeInt(int32(rv.Len()), buf)
	iter := rv.MapRange()
	for iter.Next() {
		if err := w.write(iter.Key().Interface(), buf); err != nil {
			return err
		}
		if err := w.write(iter.Value().Interface(), buf); err != nil {
			return err
		}
	}
	return nil
}
