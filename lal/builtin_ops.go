package lal

import (
	"math"
	"unicode/utf8"

	"github.com/grailbio/lal/symbol"
)

// !X
func builtinNot(fr *frame, args []Value) Value {
	return NewBool(!args[0].Truthy())
}

func init() {
	registerBuiltinForm(&form{
		name:    symbol.Intern("not"),
		exact:   true,
		numArgs: 1,
		apply:   builtinNot,
	})
}

// eq is true iff all arguments are equal by value.
func builtinEqual(fr *frame, args []Value) Value {
	for _, arg := range args[1:] {
		if !valuesEqual(args[0], arg) {
			return False
		}
	}
	return True
}

func init() {
	registerBuiltinForm(&form{
		name:    symbol.Intern("eq"),
		exact:   false,
		numArgs: 2,
		apply:   builtinEqual,
	})
}

func builtinLessThan(fr *frame, args []Value) Value {
	return NewBool(Compare(fr.call, args[0], args[1]) < 0)
}

func init() {
	registerBuiltinForm(&form{
		name:    symbol.Less,
		exact:   true,
		numArgs: 2,
		apply:   builtinLessThan,
	})
}

// none and true accepting any number of args means you can use them to
// ignore return values.
func init() {
	registerBuiltinForm(&form{
		name:    symbol.Intern("none"),
		exact:   false,
		numArgs: 0,
		apply:   func(fr *frame, args []Value) Value { return Unit },
	})
	registerBuiltinForm(&form{
		name:    symbol.Intern("true"),
		exact:   false,
		numArgs: 0,
		apply:   func(fr *frame, args []Value) Value { return True },
	})
}

// addValues implements one step of the + left-fold.
func addValues(fr *frame, a, b Value) Value {
	switch {
	case a.Type() == IntType && b.Type() == IntType:
		return NewInt(a.Int(fr.call) + b.Int(fr.call))
	case a.Type().isNumeric() && b.Type().isNumeric():
		return NewFloat(a.asFloat() + b.asFloat())
	case a.Type().LikeString() && b.Type().LikeString():
		return NewString(a.Str(fr.call) + b.Str(fr.call))
	case a.Type() == ListType && b.Type() == ListType:
		la, lb := a.List(fr.call), b.List(fr.call)
		merged := make([]Value, 0, len(la)+len(lb))
		merged = append(merged, la...)
		merged = append(merged, lb...)
		return NewList(merged)
	}
	throwf(TypeError, "Cannot add '%v' (type %v) and '%v' (type %v) in \"%s\".",
		a, a.Type(), b, b.Type(), fr.context())
	return Value{}
}

func builtinPlus(fr *frame, args []Value) Value {
	acc := args[0]
	for _, arg := range args[1:] {
		acc = addValues(fr, acc, arg)
	}
	return acc
}

func init() {
	registerBuiltinForm(&form{
		name:    symbol.Plus,
		exact:   false,
		numArgs: 1,
		apply:   builtinPlus,
	})
}

func subValues(fr *frame, a, b Value) Value {
	switch {
	case a.Type() == IntType && b.Type() == IntType:
		return NewInt(a.Int(fr.call) - b.Int(fr.call))
	case a.Type().isNumeric() && b.Type().isNumeric():
		return NewFloat(a.asFloat() - b.asFloat())
	}
	throwf(TypeError, "Cannot subtract '%v' (type %v) from '%v' (type %v) in \"%s\".",
		b, b.Type(), a, a.Type(), fr.context())
	return Value{}
}

// - with a single argument negates; with more it left-folds subtraction.
func builtinMinus(fr *frame, args []Value) Value {
	if len(args) == 1 {
		switch args[0].Type() {
		case IntType:
			return NewInt(-args[0].Int(fr.call))
		case FloatType:
			return NewFloat(-args[0].Float(fr.call))
		}
		throwf(TypeError, "Cannot negate '%v' (type %v) in \"%s\".",
			args[0], args[0].Type(), fr.context())
	}
	acc := args[0]
	for _, arg := range args[1:] {
		acc = subValues(fr, acc, arg)
	}
	return acc
}

func init() {
	registerBuiltinForm(&form{
		name:    symbol.Minus,
		exact:   false,
		numArgs: 1,
		apply:   builtinMinus,
	})
}

func builtinModulus(fr *frame, args []Value) Value {
	a := args[0].Int(fr.call)
	b := args[1].Int(fr.call)
	if b == 0 {
		throwf(TypeError, "Modulus by zero in \"%s\".", fr.context())
	}
	return NewInt(a % b)
}

func init() {
	registerBuiltinForm(&form{
		name:    symbol.Modulus,
		exact:   true,
		numArgs: 2,
		apply:   builtinModulus,
	})
}

func builtinSquareRoot(fr *frame, args []Value) Value {
	if !args[0].Type().isNumeric() {
		throwf(TypeError, "sqrt of '%v' (type %v) in \"%s\".",
			args[0], args[0].Type(), fr.context())
	}
	v := args[0].asFloat()
	if v < 0 {
		throwf(TypeError, "sqrt of negative number %v in \"%s\".", v, fr.context())
	}
	return NewFloat(math.Sqrt(v))
}

func init() {
	registerBuiltinForm(&form{
		name:    symbol.Intern("sqrt"),
		exact:   true,
		numArgs: 1,
		apply:   builtinSquareRoot,
	})
}

// chartoint converts a single-character string to its code point.
func builtinCharToInt(fr *frame, args []Value) Value {
	if !args[0].Type().LikeString() {
		args[0].wrongTypeError(fr.call, "string")
	}
	s := args[0].Str(fr.call)
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 || n != len(s) {
		throwf(TypeError, "chartoint needs a single character, got \"%s\" in \"%s\".",
			s, fr.context())
	}
	return NewInt(int64(r))
}

// inttochar converts a code point to a one-character string.
func builtinIntToChar(fr *frame, args []Value) Value {
	return NewString(string(rune(args[0].Int(fr.call))))
}

func init() {
	registerBuiltinForm(&form{
		name:    symbol.Intern("chartoint"),
		exact:   true,
		numArgs: 1,
		apply:   builtinCharToInt,
	})
	registerBuiltinForm(&form{
		name:    symbol.Intern("inttochar"),
		exact:   true,
		numArgs: 1,
		apply:   builtinIntToChar,
	})
}
