package graphbinary

import (
	"bytes"
	"testing"
)

func TestWriteP(t *testing.T) {
	//	single operand: [code][operator][argc=1][value]; predicates carry
	//	no value flag
	checkWrite(t, PGt(int32(5)),
		"1e"+"000000026774"+"00000001"+"010000000005")
	//	two operands
	checkWrite(t, PBetween(int32(1), int32(10)),
		"1e"+"000000076265747765656e"+"00000002"+"010000000001"+"01000000000a")
}

func TestWriteTextP(t *testing.T) {
	checkWrite(t, TextContaining("ark"),
		"28"+"0000000a636f6e7461696e696e67"+"00000001"+"03000000000361726b")
}

func TestWritePWithin(t *testing.T) {
	//	within carries its operands as a single list value
	checkWrite(t, PWithin(int32(1), int32(2)),
		"1e"+"0000000677697468696e"+"00000001"+
			"090000000002"+"010000000001"+"010000000002")
}

func TestWriteLambda(t *testing.T) {
	//	default language, keyword prepended, argc unknown
	checkWrite(t, Lambda{Script: "x: x + 1"},
		"1d"+
			"0000000e6772656d6c696e2d707974686f6e"+
			"0000000f6c616d62646120783a2078202b2031"+
			"ffffffff")
}

func TestWriteLambdaKeywordNotDoubled(t *testing.T) {
	checkWrite(t, Lambda{Script: "lambda x: x + 1", Language: "gremlin-python"},
		"1d"+
			"0000000e6772656d6c696e2d707974686f6e"+
			"0000000f6c616d62646120783a2078202b2031"+
			"ffffffff")
}

func TestWriteLambdaForeignLanguage(t *testing.T) {
	//	non-scripting language: script passes through untouched
	checkWrite(t, Lambda{Script: "{ it.get() }", Language: "gremlin-groovy"},
		"1d"+
			"0000000e6772656d6c696e2d67726f6f7679"+
			"0000000c7b2069742e6765742829207d"+
			"ffffffff")
}

func TestWriteBinding(t *testing.T) {
	checkWrite(t, Binding{Key: "x", Value: int32(1)},
		"1400"+"0000000178"+"010000000001")
}

func TestWriteTraverser(t *testing.T) {
	checkWrite(t, Traverser{Bulk: 2, Value: "a"},
		"2100"+"0000000000000002"+"030000000001"+"61")
}

func TestWriteBytecode(t *testing.T) {
	var bc Bytecode
	bc.AddStep("V")
	bc.AddStep("tail", int64(3))
	data, err := NewWriter().WriteObject(bc)
	if err != nil {
		t.Fatal(err)
	}
	expected := mustHex(t, "1500"+
		"00000002"+ //	two steps
		"0000000156"+"00000000"+ //	V()
		"000000047461696c"+"00000001"+"02000000000000000003"+ //	tail(3)
		"00000000") //	no source instructions
	if !bytes.Equal(data, expected) {
		t.Fatalf("bytecode = % x, expected % x", data, expected)
	}
}

func TestWriteBytecodePointer(t *testing.T) {
	bc := &Bytecode{}
	bc.AddStep("V")
	viaPointer, err := NewWriter().WriteObject(bc)
	if err != nil {
		t.Fatal(err)
	}
	viaValue, err := NewWriter().WriteObject(*bc)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(viaPointer, viaValue) {
		t.Fatalf("pointer and value encodings differ: % x vs % x", viaPointer, viaValue)
	}
}

func TestReadEnumKeywordName(t *testing.T) {
	//	canonical names arrive as-is; Go has no colliding keywords to
	//	re-mangle around
	value, err := NewReader().ReadObject(mustHex(t, "1f0000000006676c6f62616c"))
	if err != nil {
		t.Fatal(err)
	}
	if value != ScopeGlobal {
		t.Fatalf("expected ScopeGlobal, got %#v", value)
	}
}

func TestPInsideBytecode(t *testing.T) {
	//	a predicate nested in bytecode keeps its flagless fully-qualified
	//	form
	var bc Bytecode
	bc.AddStep("has", "age", PGt(int32(30)))
	data, err := NewWriter().WriteObject(bc)
	if err != nil {
		t.Fatal(err)
	}
	pBytes := mustHex(t, "1e"+"000000026774"+"00000001"+"01000000001e")
	if !bytes.Contains(data, pBytes) {
		t.Fatalf("bytecode does not embed the flagless predicate: % x", data)
	}
}
