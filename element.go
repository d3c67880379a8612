package graphbinary

import (
	"bytes"
	"fmt"
	"reflect"
)

//	Graph element layouts. Element IDs are fully-qualified nested values;
//	labels and property keys are raw length-prefixed strings. The wire
//	format reserves trailing slots for element properties that this codec
//	never populates: writers emit a bare null marker per slot, readers
//	consume it.

func writeNullMarkers(n int, buf *bytes.Buffer) {
	for i := 0; i < n; i++ {
		buf.WriteByte(byte(NullType))
	}
}

func skipNullMarkers(r *bytes.Reader, n int) error {
	_, err := readBytes(r, n)
	return err
}

var vertexSerializer = serializerOf(Vertex{}, VertexType, func(v interface{}, buf *bytes.Buffer, w *Writer) error {
	vertex := v.(Vertex)
	if err := w.write(vertex.ID, buf); err != nil {
		return err
	}
	writeString(vertex.Label, buf)
	writeNullMarkers(1, buf)
	return nil
})

var vertexDeserializer = deserializerOf(VertexType, func(r *bytes.Reader, rd *Reader) (interface{}, error) {
	return readVertex(r, rd)
})

func readVertex(r *bytes.Reader, rd *Reader) (vertex Vertex, err error) {
	if vertex.ID, err = rd.ReadValue(r); err != nil {
		return
	}
	if vertex.Label, err = readString(r); err != nil {
		return
	}
	err = skipNullMarkers(r, 1)
	return
}

var edgeSerializer = serializerOf(Edge{}, EdgeType, func(v interface{}, buf *bytes.Buffer, w *Writer) error {
	edge := v.(Edge)
	if err := w.write(edge.ID, buf); err != nil {
		return err
	}
	writeString(edge.Label, buf)
	if err := w.write(edge.InV.ID, buf); err != nil {
		return err
	}
	writeString(edge.InV.Label, buf)
	if err := w.write(edge.OutV.ID, buf); err != nil {
		return err
	}
	writeString(edge.OutV.Label, buf)
	writeNullMarkers(2, buf)
	return nil
})

var edgeDeserializer = deserializerOf(EdgeType, func(r *bytes.Reader, rd *Reader) (interface{}, error) {
	var edge Edge
	var err error
	if edge.ID, err = rd.ReadValue(r); err != nil {
		return nil, err
	}
	if edge.Label, err = readString(r); err != nil {
		return nil, err
	}
	if edge.InV.ID, err = rd.ReadValue(r); err != nil {
		return nil, err
	}
	if edge.InV.Label, err = readString(r); err != nil {
		return nil, err
	}
	if edge.OutV.ID, err = rd.ReadValue(r); err != nil {
		return nil, err
	}
	if edge.OutV.Label, err = readString(r); err != nil {
		return nil, err
	}
	if err = skipNullMarkers(r, 2); err != nil {
		return nil, err
	}
	return edge, nil
})

var propertySerializer = serializerOf(Property{}, PropertyType, func(v interface{}, buf *bytes.Buffer, w *Writer) error {
	property := v.(Property)
	writeString(property.Key, buf)
	if err := w.write(property.Value, buf); err != nil {
		return err
	}
	writeNullMarkers(1, buf)
	return nil
})

var propertyDeserializer = deserializerOf(PropertyType, func(r *bytes.Reader, rd *Reader) (interface{}, error) {
	var property Property
	var err error
	if property.Key, err = readString(r); err != nil {
		return nil, err
	}
	if property.Value, err = rd.ReadValue(r); err != nil {
		return nil, err
	}
	if err = skipNullMarkers(r, 1); err != nil {
		return nil, err
	}
	return property, nil
})

var vertexPropertySerializer = serializerOf(VertexProperty{}, VertexPropertyType, func(v interface{}, buf *bytes.Buffer, w *Writer) error {
	vp := v.(VertexProperty)
	if err := w.write(vp.ID, buf); err != nil {
		return err
	}
	writeString(vp.Label, buf)
	if err := w.write(vp.Value, buf); err != nil {
		return err
	}
	writeNullMarkers(2, buf)
	return nil
})

var vertexPropertyDeserializer = deserializerOf(VertexPropertyType, func(r *bytes.Reader, rd *Reader) (interface{}, error) {
	var vp VertexProperty
	var err error
	if vp.ID, err = rd.ReadValue(r); err != nil {
		return nil, err
	}
	if vp.Label, err = readString(r); err != nil {
		return nil, err
	}
	if vp.Value, err = rd.ReadValue(r); err != nil {
		return nil, err
	}
	if err = skipNullMarkers(r, 2); err != nil {
		return nil, err
	}
	return vp, nil
})

var pathSerializer = serializerOf(Path{}, PathType, func(v interface{}, buf *bytes.Buffer, w *Writer) error {
	path := v.(Path)
	if err := w.write(path.Labels, buf); err != nil {
		return err
	}
	return w.write(path.Objects, buf)
})

var pathDeserializer = deserializerOf(PathType, func(r *bytes.Reader, rd *Reader) (interface{}, error) {
	var path Path
	labels, err := rd.ReadValue(r)
	if err != nil {
		return nil, err
	}
	objects, err := rd.ReadValue(r)
	if err != nil {
		return nil, err
	}
	if labels != nil {
		path.Labels = labels.([]interface{})
	}
	if objects != nil {
		path.Objects = objects.([]interface{})
	}
	return path, nil
})

var graphSerializer = &TypeSerializer{
	Type:     reflect.TypeOf(Graph{}),
	DataType: GraphType,
	Write: func(v interface{}, buf *bytes.Buffer, w *Writer, asValue bool) error {
		return fmt.Errorf("%w: graph serialization", ErrUnsupportedType)
	},
}

var graphDeserializer = &TypeDeserializer{
	DataType: GraphType,
	Read: func(r *bytes.Reader, rd *Reader) (interface{}, error) {
		return nil, fmt.Errorf("%w: graph deserialization", ErrUnsupportedType)
	},
}
