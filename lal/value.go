package lal

import (
	"reflect"
	"unsafe"

	"github.com/grailbio/base/log"
	"github.com/grailbio/lal/hash"
	"github.com/grailbio/lal/termutil"
)

// ValueType is the type of a Value.
type ValueType byte

const (
	// InvalidType is the type of a default-constructed Value.
	InvalidType ValueType = iota
	// UnitType is the "no value" result of statements with nothing to return.
	UnitType
	// BoolType is a boolean.
	BoolType
	// IntType is a signed 64-bit integer.
	IntType
	// FloatType is an IEEE-754 double.
	FloatType
	// StringType is a user-provided string literal. Strings are opaque: they
	// are never looked up as names.
	StringType
	// SymbolType is a literal symbol produced by the ' escape. Symbols behave
	// like strings in arithmetic, but forms that accept names will look them
	// up.
	SymbolType
	// ListType is a sequence of values.
	ListType
	// FuncType is a reference to a callable, builtin or user-defined.
	FuncType
)

// String returns a human-readable type name.
func (t ValueType) String() string {
	switch t {
	case InvalidType:
		return "invalid"
	case UnitType:
		return "none"
	case BoolType:
		return "bool"
	case IntType:
		return "int"
	case FloatType:
		return "float"
	case StringType:
		return "string"
	case SymbolType:
		return "symbol"
	case ListType:
		return "list"
	case FuncType:
		return "function"
	}
	return "unknown"
}

// LikeString returns true for types whose payload is text.
func (t ValueType) LikeString() bool {
	return t == StringType || t == SymbolType
}

// Value is a unified representation of a value in LAL. It can represent
// scalar values such as int64 and float64, as well as a List or a Func. A
// value is immutable once constructed.
type Value struct {
	typ ValueType
	p   unsafe.Pointer
	v   uint64
}

// Valid returns true if it stores a value. Only a default-constructed Value
// returns false.
func (v Value) Valid() bool { return v.typ != InvalidType }

// Type returns the type of the value.
func (v Value) Type() ValueType { return v.typ }

var (
	// Unit is the singleton "no value" value.
	Unit = Value{typ: UnitType}
	// True is a true Bool constant.
	True = NewBool(true)
	// False is a false Bool constant.
	False = NewBool(false)
)

// NewBool creates a new boolean value.
func NewBool(v bool) Value {
	if v {
		return Value{typ: BoolType, v: 1}
	}
	return Value{typ: BoolType, v: 0}
}

// Bool extracts a boolean value. "ast" is used only to report the source
// form on error.
//
// REQUIRES: v.Type()==BoolType
func (v Value) Bool(ast ASTNode) bool {
	if v.typ != BoolType {
		v.wrongTypeError(ast, "bool")
	}
	return v.v != 0
}

// NewInt creates a new integer.
func NewInt(v int64) Value {
	return Value{typ: IntType, v: uint64(v)}
}

// Int extracts an integer value. "ast" is used only to report the source
// form on error.
//
// REQUIRES: v.Type()==IntType
func (v Value) Int(ast ASTNode) int64 {
	if v.typ != IntType {
		v.wrongTypeError(ast, "int")
	}
	return int64(v.v)
}

// NewFloat creates a new float value.
func NewFloat(v float64) Value {
	uv := *(*uint64)(unsafe.Pointer(&v))
	return Value{typ: FloatType, v: uv}
}

// Float extracts a float64 value. "ast" is used only to report the source
// form on error.
//
// REQUIRES: v.Type()==FloatType
func (v Value) Float(ast ASTNode) float64 {
	if v.typ != FloatType {
		v.wrongTypeError(ast, "float")
	}
	return *(*float64)(unsafe.Pointer(&v.v))
}

// NewString creates a new String value.
func NewString(s string) Value {
	sh := (*reflect.StringHeader)(unsafe.Pointer(&s))
	return Value{typ: StringType, p: unsafe.Pointer(sh.Data), v: uint64(sh.Len)}
}

// NewSymbol creates a new literal-symbol value.
func NewSymbol(s string) Value {
	sh := (*reflect.StringHeader)(unsafe.Pointer(&s))
	return Value{typ: SymbolType, p: unsafe.Pointer(sh.Data), v: uint64(sh.Len)}
}

// Str extracts the text payload. "ast" is used only to report the source
// form on error.
//
// REQUIRES: v.Type() is one of {StringType,SymbolType}.
func (v Value) Str(ast ASTNode) string {
	if !v.typ.LikeString() {
		v.wrongTypeError(ast, "string")
	}
	sh := reflect.StringHeader{
		Data: uintptr(v.p),
		Len:  int(v.v),
	}
	return *(*string)(unsafe.Pointer(&sh))
}

// NewList creates a new List value. The caller must not mutate the slice
// after the call.
func NewList(vals []Value) Value {
	return Value{typ: ListType, p: unsafe.Pointer(&vals)}
}

// List extracts the element slice. The caller must not mutate the result.
// "ast" is used only to report the source form on error.
//
// REQUIRES: v.Type()==ListType
func (v Value) List(ast ASTNode) []Value {
	if v.typ != ListType {
		v.wrongTypeError(ast, "list")
	}
	return *(*[]Value)(v.p)
}

func (v Value) wrongTypeError(ast ASTNode, expectedType string) {
	throwf(TypeError, "%sexpect value of type %v, but found '%v' (type %v)",
		astContext(ast), expectedType, v, v.typ)
}

// Truthy reports the truthiness of a value: Int 0, Float 0, Bool false,
// Unit, and empty strings and lists are falsy; everything else is truthy.
func (v Value) Truthy() bool {
	switch v.typ {
	case UnitType:
		return false
	case BoolType:
		return v.v != 0
	case IntType:
		return int64(v.v) != 0
	case FloatType:
		return v.Float(nil) != 0
	case StringType, SymbolType:
		return v.v != 0 // v.v is the string length
	case ListType:
		return len(v.List(nil)) > 0
	case FuncType:
		return true
	}
	return false
}

// Hash computes a hash of the value.
func (v Value) Hash() hash.Hash {
	switch v.typ {
	case UnitType:
		return hash.String("(none)")
	case BoolType:
		return hash.Bool(v.Bool(nil))
	case IntType:
		return hash.Int(v.Int(nil))
	case FloatType:
		return hash.Float(v.Float(nil))
	case StringType, SymbolType:
		return hash.String(v.Str(nil))
	case ListType:
		return hashValues(v.List(nil))
	case FuncType:
		return v.Func(nil).hash
	}
	log.Panicf("Hash: invalid type %v", v.typ)
	return hash.Hash{}
}

func hashValues(values []Value) hash.Hash {
	h := hash.String("(list)")
	for _, v := range values {
		h = h.Merge(v.Hash())
	}
	return h
}

// valuesEqual implements the "eq" builtin's notion of equality: numeric
// values compare after Int->Float promotion, text values compare by payload,
// lists compare elementwise, and functions compare by identity. Values of
// otherwise-different types are unequal.
func valuesEqual(v0, v1 Value) bool {
	if v0.typ.isNumeric() && v1.typ.isNumeric() {
		if v0.typ == IntType && v1.typ == IntType {
			return v0.Int(nil) == v1.Int(nil)
		}
		return v0.asFloat() == v1.asFloat()
	}
	if v0.typ.LikeString() && v1.typ.LikeString() {
		return v0.Str(nil) == v1.Str(nil)
	}
	if v0.typ != v1.typ {
		return false
	}
	switch v0.typ {
	case UnitType:
		return true
	case BoolType:
		return v0.Bool(nil) == v1.Bool(nil)
	case ListType:
		l0, l1 := v0.List(nil), v1.List(nil)
		if len(l0) != len(l1) {
			return false
		}
		for i := range l0 {
			if !valuesEqual(l0[i], l1[i]) {
				return false
			}
		}
		return true
	case FuncType:
		return v0.p == v1.p
	}
	return false
}

func (t ValueType) isNumeric() bool { return t == IntType || t == FloatType }

// asFloat converts a numeric value to float64.
//
// REQUIRES: v.Type() is IntType or FloatType.
func (v Value) asFloat() float64 {
	if v.typ == IntType {
		return float64(v.Int(nil))
	}
	return v.Float(nil)
}

// Compare compares two ordered values. It returns -1,0,1 if v0<v1, v0==v1,
// v0>v1, respectively. Int/Float mixes promote to float; text compares
// lexicographically. Other types are not ordered; "ast" is for error
// messages.
func Compare(ast ASTNode, v0, v1 Value) int {
	if v0.typ.isNumeric() && v1.typ.isNumeric() {
		if v0.typ == IntType && v1.typ == IntType {
			vv0, vv1 := v0.Int(ast), v1.Int(ast)
			switch {
			case vv0 < vv1:
				return -1
			case vv0 == vv1:
				return 0
			default:
				return 1
			}
		}
		vv0, vv1 := v0.asFloat(), v1.asFloat()
		switch {
		case vv0 < vv1:
			return -1
		case vv0 == vv1:
			return 0
		default:
			return 1
		}
	}
	if v0.typ.LikeString() && v1.typ.LikeString() {
		vv0, vv1 := v0.Str(ast), v1.Str(ast)
		switch {
		case vv0 < vv1:
			return -1
		case vv0 == vv1:
			return 0
		default:
			return 1
		}
	}
	throwf(TypeError, "%scannot order '%v' (type %v) and '%v' (type %v)",
		astContext(ast), v0, v0.typ, v1, v1.typ)
	return 0
}

// PrintMode specifies how a value is printed in the Value.Print method.
type PrintMode int

const (
	// PrintValues prints values the way the print builtin shows them: strings
	// print as raw text.
	PrintValues PrintMode = iota
	// PrintSource prints values in source form: strings are quoted.
	PrintSource
)

// PrintArgs define parameters to the Value.Print method.
type PrintArgs struct {
	// Out is the output destination.
	Out termutil.Printer
	// Mode defines how the value is printed.
	Mode PrintMode
}

// String produces a human-readable string of the value in source form.
func (v Value) String() string {
	out := termutil.NewBufferPrinter()
	v.Print(PrintArgs{Out: out, Mode: PrintSource})
	return out.String()
}

// Print prints the value according to args.
func (v Value) Print(args PrintArgs) { v.printRec(args, 0) }

func (v Value) printRec(args PrintArgs, depth int) {
	switch v.typ {
	case InvalidType:
		args.Out.WriteString("(invalid)")
	case UnitType:
		args.Out.WriteString("none")
	case BoolType:
		if v.Bool(nil) {
			args.Out.WriteString("true")
		} else {
			args.Out.WriteString("false")
		}
	case IntType:
		args.Out.WriteInt(v.Int(nil))
	case FloatType:
		args.Out.WriteFloat(v.Float(nil))
	case StringType:
		if args.Mode == PrintValues && depth == 0 {
			args.Out.WriteString(v.Str(nil))
		} else {
			args.Out.WriteString("\"" + v.Str(nil) + "\"")
		}
	case SymbolType:
		args.Out.WriteString(v.Str(nil))
	case ListType:
		args.Out.WriteString("(")
		for i, elem := range v.List(nil) {
			if i > 0 {
				args.Out.WriteString(" ")
			}
			elem.printRec(args, depth+1)
		}
		args.Out.WriteString(")")
	case FuncType:
		v.Func(nil).print(args.Out)
	default:
		log.Panicf("Print: invalid type %v", v.typ)
	}
}
