package graphbinary

//	Traversal-language constructs consumed by the codec: bytecode,
//	traversers, bindings, predicates, lambdas and the enum tokens.

type Instruction struct {
	Operator  string
	Arguments []interface{}
}

//	An ordered traversal program: source instructions configure the
//	traversal source, step instructions make up the traversal itself.
type Bytecode struct {
	SourceInstructions []Instruction
	StepInstructions   []Instruction
}

func (b *Bytecode) AddSource(operator string, arguments ...interface{}) {
	b.SourceInstructions = append(b.SourceInstructions, Instruction{Operator: operator, Arguments: arguments})
}

func (b *Bytecode) AddStep(operator string, arguments ...interface{}) {
	b.StepInstructions = append(b.StepInstructions, Instruction{Operator: operator, Arguments: arguments})
}

type Traverser struct {
	Bulk  int64
	Value interface{}
}

type Binding struct {
	Key   string
	Value interface{}
}

//	P is a predicate over a value, with an optional second operand
//	(e.g. between). TextP is its text-specific counterpart.
type P struct {
	Operator string
	Value    interface{}
	Other    interface{}
}

func PEq(value interface{}) P          { return P{Operator: "eq", Value: value} }
func PNeq(value interface{}) P         { return P{Operator: "neq", Value: value} }
func PLt(value interface{}) P          { return P{Operator: "lt", Value: value} }
func PLte(value interface{}) P         { return P{Operator: "lte", Value: value} }
func PGt(value interface{}) P          { return P{Operator: "gt", Value: value} }
func PGte(value interface{}) P         { return P{Operator: "gte", Value: value} }
func PWithin(values ...interface{}) P  { return P{Operator: "within", Value: []interface{}(values)} }
func PWithout(values ...interface{}) P { return P{Operator: "without", Value: []interface{}(values)} }
func PBetween(low, high interface{}) P { return P{Operator: "between", Value: low, Other: high} }
func PInside(low, high interface{}) P  { return P{Operator: "inside", Value: low, Other: high} }
func POutside(low, high interface{}) P { return P{Operator: "outside", Value: low, Other: high} }

type TextP struct {
	Operator string
	Value    interface{}
	Other    interface{}
}

func TextContaining(value string) TextP    { return TextP{Operator: "containing", Value: value} }
func TextNotContaining(value string) TextP { return TextP{Operator: "notContaining", Value: value} }
func TextStartingWith(value string) TextP  { return TextP{Operator: "startingWith", Value: value} }
func TextEndingWith(value string) TextP    { return TextP{Operator: "endingWith", Value: value} }

//	A script fragment shipped to the server for evaluation. An empty
//	Language selects DefaultLambdaLanguage.
type Lambda struct {
	Script   string
	Language string
}

var DefaultLambdaLanguage = "gremlin-python"

//	Enum tokens. Constants carry the canonical wire names; members that
//	exist only to dodge a reserved word in other language variants
//	(as_, in_, ...) have no Go counterpart.

type Barrier string

const (
	BarrierNormSack Barrier = "normSack"
)

type Cardinality string

const (
	CardinalitySingle Cardinality = "single"
	CardinalityList   Cardinality = "list"
	CardinalitySet    Cardinality = "set"
)

type Column string

const (
	ColumnKeys   Column = "keys"
	ColumnValues Column = "values"
)

type Direction string

const (
	DirectionBoth Direction = "BOTH"
	DirectionIn   Direction = "IN"
	DirectionOut  Direction = "OUT"
)

type Operator string

const (
	OperatorAddAll  Operator = "addAll"
	OperatorAnd     Operator = "and"
	OperatorAssign  Operator = "assign"
	OperatorDiv     Operator = "div"
	OperatorMax     Operator = "max"
	OperatorMin     Operator = "min"
	OperatorMinus   Operator = "minus"
	OperatorMult    Operator = "mult"
	OperatorOr      Operator = "or"
	OperatorSum     Operator = "sum"
	OperatorSumLong Operator = "sumLong"
)

type Order string

const (
	OrderAsc     Order = "asc"
	OrderDesc    Order = "desc"
	OrderShuffle Order = "shuffle"
)

type Pick string

const (
	PickAny  Pick = "any"
	PickNone Pick = "none"
)

type Pop string

const (
	PopFirst Pop = "first"
	PopLast  Pop = "last"
	PopAll   Pop = "all"
	PopMixed Pop = "mixed"
)

type Scope string

const (
	ScopeGlobal Scope = "global"
	ScopeLocal  Scope = "local"
)

type T string

const (
	TID    T = "id"
	TLabel T = "label"
	TKey   T = "key"
	TValue T = "value"
)
