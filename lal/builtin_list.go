package lal

import (
	"github.com/grailbio/lal/symbol"
)

func builtinLen(fr *frame, args []Value) Value {
	switch args[0].Type() {
	case StringType, SymbolType:
		return NewInt(int64(len(args[0].Str(fr.call))))
	case ListType:
		return NewInt(int64(len(args[0].List(fr.call))))
	}
	throwf(TypeError, "len of '%v' (type %v) in \"%s\".",
		args[0], args[0].Type(), fr.context())
	return Value{}
}

// (nth idx ls) indexes into a list or a string.
func builtinNth(fr *frame, args []Value) Value {
	idx := args[0].Int(fr.call)
	switch args[1].Type() {
	case ListType:
		ls := args[1].List(fr.call)
		if idx < 0 || idx >= int64(len(ls)) {
			throwf(TypeError, "Index %d out of range for '%v' in \"%s\".",
				idx, args[1], fr.context())
		}
		return ls[idx]
	case StringType, SymbolType:
		s := args[1].Str(fr.call)
		if idx < 0 || idx >= int64(len(s)) {
			throwf(TypeError, "Index %d out of range for '%v' in \"%s\".",
				idx, args[1], fr.context())
		}
		return NewString(s[idx : idx+1])
	}
	throwf(TypeError, "nth of '%v' (type %v) in \"%s\".",
		args[1], args[1].Type(), fr.context())
	return Value{}
}

func flattenInto(flat []Value, ls []Value) []Value {
	for _, elem := range ls {
		if elem.Type() == ListType {
			flat = flattenInto(flat, elem.List(nil))
			continue
		}
		// Strings are kept whole, not decomposed.
		flat = append(flat, elem)
	}
	return flat
}

// flatten recursively flattens nested lists into a single list. A top-level
// string decomposes into its characters.
func builtinFlatten(fr *frame, args []Value) Value {
	switch args[0].Type() {
	case ListType:
		return NewList(flattenInto(nil, args[0].List(fr.call)))
	case StringType, SymbolType:
		var flat []Value
		for _, r := range args[0].Str(fr.call) {
			flat = append(flat, NewString(string(r)))
		}
		return NewList(flat)
	}
	throwf(NotIterableError, "Flatten \"%s\" not called with a list.", fr.context())
	return Value{}
}

func init() {
	registerBuiltinForm(&form{
		name:    symbol.Intern("len"),
		exact:   true,
		numArgs: 1,
		apply:   builtinLen,
	})
	registerBuiltinForm(&form{
		name:    symbol.Intern("nth"),
		exact:   true,
		numArgs: 2,
		apply:   builtinNth,
	})
	registerBuiltinForm(&form{
		name:    symbol.Intern("flatten"),
		exact:   true,
		numArgs: 1,
		apply:   builtinFlatten,
	})
}
