package graphbinary

import "fmt"

//	GraphBinary v1 wire type codes
//	http://tinkerpop.apache.org/docs/current/dev/io/#graphbinary
type DataType byte

const (
	CustomType           DataType = 0x00
	IntType              DataType = 0x01
	LongType             DataType = 0x02
	StringType           DataType = 0x03
	DateType             DataType = 0x04
	TimestampType        DataType = 0x05
	ClassType            DataType = 0x06
	DoubleType           DataType = 0x07
	FloatType            DataType = 0x08
	ListType             DataType = 0x09
	MapType              DataType = 0x0a
	SetType              DataType = 0x0b
	UUIDType             DataType = 0x0c
	EdgeType             DataType = 0x0d
	PathType             DataType = 0x0e
	PropertyType         DataType = 0x0f
	GraphType            DataType = 0x10
	VertexType           DataType = 0x11
	VertexPropertyType   DataType = 0x12
	BarrierType          DataType = 0x13
	BindingType          DataType = 0x14
	BytecodeType         DataType = 0x15
	CardinalityType      DataType = 0x16
	ColumnType           DataType = 0x17
	DirectionType        DataType = 0x18
	OperatorType         DataType = 0x19
	OrderType            DataType = 0x1a
	PickType             DataType = 0x1b
	PopType              DataType = 0x1c
	LambdaType           DataType = 0x1d
	PType                DataType = 0x1e
	ScopeType            DataType = 0x1f
	TType                DataType = 0x20
	TraverserType        DataType = 0x21
	BigDecimalType       DataType = 0x22
	BigIntegerType       DataType = 0x23
	ByteType             DataType = 0x24
	ByteBufferType       DataType = 0x25
	ShortType            DataType = 0x26
	BooleanType          DataType = 0x27
	TextPType            DataType = 0x28
	TraversalStrategyType DataType = 0x29
	BulkSetType          DataType = 0x2a
	TreeType             DataType = 0x2b
	MetricsType          DataType = 0x2c
	TraversalMetricsType DataType = 0x2d
	NullType             DataType = 0xfe
)

var dataTypeNames = map[DataType]string{
	CustomType:            "custom",
	IntType:               "int",
	LongType:              "long",
	StringType:            "string",
	DateType:              "date",
	TimestampType:         "timestamp",
	ClassType:             "class",
	DoubleType:            "double",
	FloatType:             "float",
	ListType:              "list",
	MapType:               "map",
	SetType:               "set",
	UUIDType:              "uuid",
	EdgeType:              "edge",
	PathType:              "path",
	PropertyType:          "property",
	GraphType:             "graph",
	VertexType:            "vertex",
	VertexPropertyType:    "vertexproperty",
	BarrierType:           "barrier",
	BindingType:           "binding",
	BytecodeType:          "bytecode",
	CardinalityType:       "cardinality",
	ColumnType:            "column",
	DirectionType:         "direction",
	OperatorType:          "operator",
	OrderType:             "order",
	PickType:              "pick",
	PopType:               "pop",
	LambdaType:            "lambda",
	PType:                 "p",
	ScopeType:             "scope",
	TType:                 "t",
	TraverserType:         "traverser",
	BigDecimalType:        "bigdecimal",
	BigIntegerType:        "biginteger",
	ByteType:              "byte",
	ByteBufferType:        "bytebuffer",
	ShortType:             "short",
	BooleanType:           "boolean",
	TextPType:             "textp",
	TraversalStrategyType: "traversalstrategy",
	BulkSetType:           "bulkset",
	TreeType:              "tree",
	MetricsType:           "metrics",
	TraversalMetricsType:  "traversalmetrics",
	NullType:              "null",
}

func (dt DataType) String() string {
	if name, ok := dataTypeNames[dt]; ok {
		return name
	}
	return fmt.Sprintf("0x%02x", byte(dt))
}
