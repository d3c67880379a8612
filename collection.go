package graphbinary

import (
	"bytes"
	"fmt"
	"reflect"
)

var listSerializer = serializerOf([]interface{}(nil), ListType, func(v interface{}, buf *bytes.Buffer, w *Writer) error {
	items := v.([]interface{})
	writeInt(int32(len(items)), buf)
	for _, item := range items {
		if err := w.write(item, buf); err != nil {
			return err
		}
	}
	return nil
})

var listDeserializer = deserializerOf(ListType, func(r *bytes.Reader, rd *Reader) (interface{}, error) {
	return readValueList(r, rd)
})

func readValueList(r *bytes.Reader, rd *Reader) (items []interface{}, err error) {
	n, err := readCount(r)
	if err != nil {
		return
	}
	items = []interface{}{}
	for i := int32(0); i < n; i++ {
		var item interface{}
		if item, err = rd.ReadValue(r); err != nil {
			return
		}
		items = append(items, item)
	}
	return
}

//	sets share the list layout; only the type code differs
var setSerializer = serializerOf(Set(nil), SetType, func(v interface{}, buf *bytes.Buffer, w *Writer) error {
	items := v.(Set)
	writeInt(int32(len(items)), buf)
	for _, item := range items {
		if err := w.write(item, buf); err != nil {
			return err
		}
	}
	return nil
})

var setDeserializer = deserializerOf(SetType, func(r *bytes.Reader, rd *Reader) (interface{}, error) {
	items, err := readValueList(r, rd)
	if err != nil {
		return nil, err
	}
	return Set(items), nil
})

var mapSerializer = serializerOf(map[interface{}]interface{}(nil), MapType, func(v interface{}, buf *bytes.Buffer, w *Writer) error {
	entries := v.(map[interface{}]interface{})
	writeInt(int32(len(entries)), buf)
	for key, value := range entries {
		if err := w.write(key, buf); err != nil {
			return err
		}
		if err := w.write(value, buf); err != nil {
			return err
		}
	}
	return nil
})

var mapDeserializer = deserializerOf(MapType, func(r *bytes.Reader, rd *Reader) (interface{}, error) {
	n, err := readCount(r)
	if err != nil {
		return nil, err
	}
	entries := map[interface{}]interface{}{}
	for i := int32(0); i < n; i++ {
		key, err := rd.ReadValue(r)
		if err != nil {
			return nil, err
		}
		if key != nil && !reflect.TypeOf(key).Comparable() {
			return nil, fmt.Errorf("%w: map key of type %T is not hashable", ErrEncoding, key)
		}
		value, err := rd.ReadValue(r)
		if err != nil {
			return nil, err
		}
		entries[key] = value
	}
	return entries, nil
})

//	decode-only: each item carries a bulk and is expanded in place
var bulkSetDeserializer = deserializerOf(BulkSetType, func(r *bytes.Reader, rd *Reader) (interface{}, error) {
	n, err := readCount(r)
	if err != nil {
		return nil, err
	}
	items := []interface{}{}
	for i := int32(0); i < n; i++ {
		item, err := rd.ReadValue(r)
		if err != nil {
			return nil, err
		}
		bulk, err := readLong(r)
		if err != nil {
			return nil, err
		}
		if bulk < 0 {
			return nil, fmt.Errorf("%w: negative bulk %d", ErrEncoding, bulk)
		}
		for b := int64(0); b < bulk; b++ {
			items = append(items, item)
		}
	}
	return items, nil
})
