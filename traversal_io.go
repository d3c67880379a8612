package graphbinary

import (
	"bytes"
	"reflect"
	"strings"
)

//	Enum members mangled with a trailing underscore in source languages
//	where the canonical name collides with a reserved word. Encoded
//	names are always the canonical form.
var symbolMap = map[string]string{
	"global_": "global", "as_": "as", "in_": "in", "and_": "and",
	"or_": "or", "is_": "is", "not_": "not", "from_": "from",
	"set_": "set", "list_": "list", "all_": "all", "with_": "with",
	"filter_": "filter", "id_": "id", "max_": "max", "min_": "min", "sum_": "sum",
}

func unmangleKeyword(symbol string) string {
	if canonical, ok := symbolMap[symbol]; ok {
		return canonical
	}
	return symbol
}

//	all enum tokens share the raw-string payload layout
func enumSerializer(shape interface{}, dt DataType) *TypeSerializer {
	return serializerOf(shape, dt, func(v interface{}, buf *bytes.Buffer, w *Writer) error {
		writeString(unmangleKeyword(reflect.ValueOf(v).String()), buf)
		return nil
	})
}

func enumDeserializer(dt DataType, construct func(name string) interface{}) *TypeDeserializer {
	return deserializerOf(dt, func(r *bytes.Reader, rd *Reader) (interface{}, error) {
		name, err := readString(r)
		if err != nil {
			return nil, err
		}
		return construct(name), nil
	})
}

var barrierSerializer = enumSerializer(Barrier(""), BarrierType)
var cardinalitySerializer = enumSerializer(Cardinality(""), CardinalityType)
var columnSerializer = enumSerializer(Column(""), ColumnType)
var directionSerializer = enumSerializer(Direction(""), DirectionType)
var operatorSerializer = enumSerializer(Operator(""), OperatorType)
var orderSerializer = enumSerializer(Order(""), OrderType)
var pickSerializer = enumSerializer(Pick(""), PickType)
var popSerializer = enumSerializer(Pop(""), PopType)
var scopeSerializer = enumSerializer(Scope(""), ScopeType)
var tSerializer = enumSerializer(T(""), TType)

var barrierDeserializer = enumDeserializer(BarrierType, func(name string) interface{} { return Barrier(name) })
var cardinalityDeserializer = enumDeserializer(CardinalityType, func(name string) interface{} { return Cardinality(name) })
var columnDeserializer = enumDeserializer(ColumnType, func(name string) interface{} { return Column(name) })
var directionDeserializer = enumDeserializer(DirectionType, func(name string) interface{} { return Direction(name) })
var operatorDeserializer = enumDeserializer(OperatorType, func(name string) interface{} { return Operator(name) })
var orderDeserializer = enumDeserializer(OrderType, func(name string) interface{} { return Order(name) })
var pickDeserializer = enumDeserializer(PickType, func(name string) interface{} { return Pick(name) })
var popDeserializer = enumDeserializer(PopType, func(name string) interface{} { return Pop(name) })
var scopeDeserializer = enumDeserializer(ScopeType, func(name string) interface{} { return Scope(name) })
var tDeserializer = enumDeserializer(TType, func(name string) interface{} { return T(name) })

var bindingSerializer = serializerOf(Binding{}, BindingType, func(v interface{}, buf *bytes.Buffer, w *Writer) error {
	binding := v.(Binding)
	writeString(binding.Key, buf)
	return w.write(binding.Value, buf)
})

var bindingDeserializer = deserializerOf(BindingType, func(r *bytes.Reader, rd *Reader) (interface{}, error) {
	var binding Binding
	var err error
	if binding.Key, err = readString(r); err != nil {
		return nil, err
	}
	if binding.Value, err = rd.ReadValue(r); err != nil {
		return nil, err
	}
	return binding, nil
})

func writeInstructions(instructions []Instruction, buf *bytes.Buffer, w *Writer) error {
	writeInt(int32(len(instructions)), buf)
	for _, instruction := range instructions {
		writeString(instruction.Operator, buf)
		writeInt(int32(len(instruction.Arguments)), buf)
		for _, argument := range instruction.Arguments {
			if err := w.write(argument, buf); err != nil {
				return err
			}
		}
	}
	return nil
}

func readInstructions(r *bytes.Reader, rd *Reader) (instructions []Instruction, err error) {
	n, err := readCount(r)
	if err != nil {
		return
	}
	for i := int32(0); i < n; i++ {
		var instruction Instruction
		if instruction.Operator, err = readString(r); err != nil {
			return
		}
		var argc int32
		if argc, err = readCount(r); err != nil {
			return
		}
		for j := int32(0); j < argc; j++ {
			var argument interface{}
			if argument, err = rd.ReadValue(r); err != nil {
				return
			}
			instruction.Arguments = append(instruction.Arguments, argument)
		}
		instructions = append(instructions, instruction)
	}
	return
}

var bytecodeSerializer = serializerOf(Bytecode{}, BytecodeType, func(v interface{}, buf *bytes.Buffer, w *Writer) error {
	bc := v.(Bytecode)
	if err := writeInstructions(bc.StepInstructions, buf, w); err != nil {
		return err
	}
	return writeInstructions(bc.SourceInstructions, buf, w)
})

var bytecodeDeserializer = deserializerOf(BytecodeType, func(r *bytes.Reader, rd *Reader) (interface{}, error) {
	var bc Bytecode
	var err error
	if bc.StepInstructions, err = readInstructions(r, rd); err != nil {
		return nil, err
	}
	if bc.SourceInstructions, err = readInstructions(r, rd); err != nil {
		return nil, err
	}
	return bc, nil
})

var traverserSerializer = serializerOf(Traverser{}, TraverserType, func(v interface{}, buf *bytes.Buffer, w *Writer) error {
	traverser := v.(Traverser)
	writeLong(traverser.Bulk, buf)
	return w.write(traverser.Value, buf)
})

var traverserDeserializer = deserializerOf(TraverserType, func(r *bytes.Reader, rd *Reader) (interface{}, error) {
	var traverser Traverser
	var err error
	if traverser.Bulk, err = readLong(r); err != nil {
		return nil, err
	}
	if traverser.Value, err = rd.ReadValue(r); err != nil {
		return nil, err
	}
	return traverser, nil
})

//	Predicates are write-only and always emit their type code with no
//	value flag, whatever framing was requested.
func predicateSerializer(shape interface{}, dt DataType) *TypeSerializer {
	return &TypeSerializer{
		Type:     reflect.TypeOf(shape),
		DataType: dt,
		Write: func(v interface{}, buf *bytes.Buffer, w *Writer, asValue bool) error {
			var operator string
			var value, other interface{}
			switch p := v.(type) {
			case P:
				operator, value, other = p.Operator, p.Value, p.Other
			case TextP:
				operator, value, other = p.Operator, p.Value, p.Other
			}
			buf.WriteByte(byte(dt))
			writeString(operator, buf)
			if other == nil {
				writeInt(1, buf)
				return w.write(value, buf)
			}
			writeInt(2, buf)
			if err := w.write(value, buf); err != nil {
				return err
			}
			return w.write(other, buf)
		},
	}
}

var pSerializer = predicateSerializer(P{}, PType)
var textPSerializer = predicateSerializer(TextP{}, TextPType)

//	scripting languages whose lambda scripts get the keyword prepended
func isLambdaLanguage(language string) bool {
	return language == "gremlin-python" || language == "gremlin-jython"
}

//	Lambdas are write-only and, like predicates, always fully qualified
//	with no value flag. The argument count is not recoverable without a
//	script parser, so -1 (unknown) is emitted.
var lambdaSerializer = &TypeSerializer{
	Type:     reflect.TypeOf(Lambda{}),
	DataType: LambdaType,
	Write: func(v interface{}, buf *bytes.Buffer, w *Writer, asValue bool) error {
		lambda := v.(Lambda)
		language := lambda.Language
		if language == "" {
			language = DefaultLambdaLanguage
		}
		script := lambda.Script
		if isLambdaLanguage(language) && !strings.HasPrefix(strings.TrimSpace(script), "lambda") {
			script = "lambda " + script
		}
		buf.WriteByte(byte(LambdaType))
		writeString(language, buf)
		writeString(script, buf)
		writeInt(-1, buf)
		return nil
	},
}
