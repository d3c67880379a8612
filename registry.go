package graphbinary

import (
	"bytes"
	"fmt"
	"reflect"
)

//	A TypeSerializer converts one value shape to its wire form. Type is
//	the exact shape key; Matches, when set, is consulted in registration
//	order after exact lookup fails. Write is handed the whole value and
//	is responsible for the full framing, so write-only types that always
//	emit fully-qualified (P, TextP, Lambda) can take over.
type TypeSerializer struct {
	Type     reflect.Type
	DataType DataType
	Matches  func(v interface{}) bool
	Write    func(v interface{}, buf *bytes.Buffer, w *Writer, asValue bool) error
}

//	A TypeDeserializer reads one wire type. Read is invoked with the
//	cursor positioned immediately after the type code byte.
type TypeDeserializer struct {
	DataType DataType
	Read     func(r *bytes.Reader, rd *Reader) (interface{}, error)
}

func writeTypeAndFlag(dt DataType, asValue bool, buf *bytes.Buffer) {
	if !asValue {
		buf.WriteByte(byte(dt))
	}
	buf.WriteByte(0x00)
}

//	reads the value flag; low bit signals null, anything else is invalid
func readValueFlag(r *bytes.Reader) (null bool, err error) {
	flag, err := readUint8(r)
	if err != nil {
		return
	}
	switch flag {
	case 0x00:
	case 0x01:
		null = true
	default:
		err = fmt.Errorf("%w: invalid value flag 0x%02x", ErrEncoding, flag)
	}
	return
}

//	serializerOf builds the standard framing (type code unless value-only,
//	then a non-null flag) around a payload writer.
func serializerOf(shape interface{}, dt DataType, payload func(v interface{}, buf *bytes.Buffer, w *Writer) error) *TypeSerializer {
	return &TypeSerializer{
		Type:     reflect.TypeOf(shape),
		DataType: dt,
		Write: func(v interface{}, buf *bytes.Buffer, w *Writer, asValue bool) error {
			writeTypeAndFlag(dt, asValue, buf)
			return payload(v, buf, w)
		},
	}
}

//	deserializerOf builds the standard null handling around a payload
//	reader: a 0x01 flag yields nil with no further bytes consumed.
func deserializerOf(dt DataType, payload func(r *bytes.Reader, rd *Reader) (interface{}, error)) *TypeDeserializer {
	return &TypeDeserializer{
		DataType: dt,
		Read: func(r *bytes.Reader, rd *Reader) (interface{}, error) {
			null, err := readValueFlag(r)
			if err != nil {
				return nil, err
			}
			if null {
				return nil, nil
			}
			return payload(r, rd)
		},
	}
}

//	reservedDeserializer handles a type code that is part of the wire
//	format but has no implementation here. A null-marked value still
//	decodes to nil; anything else is refused.
func reservedDeserializer(dt DataType) *TypeDeserializer {
	return &TypeDeserializer{
		DataType: dt,
		Read: func(r *bytes.Reader, rd *Reader) (interface{}, error) {
			null, err := readValueFlag(r)
			if err != nil {
				return nil, err
			}
			if null {
				return nil, nil
			}
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, dt)
		},
	}
}

//	Registration order matters: entries with a Matches predicate are
//	consulted in this order when no exact shape entry applies.
func defaultSerializers() []*TypeSerializer {
	return []*TypeSerializer{
		intSerializer,
		longSerializer,
		intAsLongSerializer,
		stringSerializer,
		dateSerializer,
		timestampSerializer,
		doubleSerializer,
		floatSerializer,
		listSerializer,
		setSerializer,
		mapSerializer,
		uuidSerializer,
		byteSerializer,
		byteBufferSerializer,
		booleanSerializer,
		vertexSerializer,
		edgeSerializer,
		propertySerializer,
		vertexPropertySerializer,
		pathSerializer,
		graphSerializer,
		barrierSerializer,
		cardinalitySerializer,
		columnSerializer,
		directionSerializer,
		operatorSerializer,
		orderSerializer,
		pickSerializer,
		popSerializer,
		scopeSerializer,
		tSerializer,
		bindingSerializer,
		bytecodeSerializer,
		traverserSerializer,
		pSerializer,
		textPSerializer,
		lambdaSerializer,
		integerFallbackSerializer,
	}
}

func defaultDeserializers() []*TypeDeserializer {
	return []*TypeDeserializer{
		intDeserializer,
		longDeserializer,
		stringDeserializer,
		dateDeserializer,
		timestampDeserializer,
		doubleDeserializer,
		floatDeserializer,
		listDeserializer,
		setDeserializer,
		mapDeserializer,
		uuidDeserializer,
		byteDeserializer,
		byteBufferDeserializer,
		booleanDeserializer,
		bulkSetDeserializer,
		vertexDeserializer,
		edgeDeserializer,
		propertyDeserializer,
		vertexPropertyDeserializer,
		pathDeserializer,
		graphDeserializer,
		barrierDeserializer,
		cardinalityDeserializer,
		columnDeserializer,
		directionDeserializer,
		operatorDeserializer,
		orderDeserializer,
		pickDeserializer,
		popDeserializer,
		scopeDeserializer,
		tDeserializer,
		bindingDeserializer,
		bytecodeDeserializer,
		traverserDeserializer,
		reservedDeserializer(CustomType),
		reservedDeserializer(ClassType),
		reservedDeserializer(BigDecimalType),
		reservedDeserializer(BigIntegerType),
		reservedDeserializer(ShortType),
		reservedDeserializer(TraversalStrategyType),
		reservedDeserializer(TreeType),
		reservedDeserializer(MetricsType),
		reservedDeserializer(TraversalMetricsType),
	}
}
