package lal

import (
	"github.com/grailbio/lal/symbol"
)

// (let NAME VALUE [NAME VALUE ...] BODY) binds names in an inner scope and
// evaluates BODY there. The outer scope is never modified; e.g. in
// (let 'x (let 'y 1 (+ y 0)) (+ x y)) the trailing y is an error, it exists
// only in the inner scope.

// bindingName extracts a binding name from a resolved value: a 'quoted
// literal symbol or a string.
func bindingName(fr *frame, v Value) symbol.ID {
	if !v.Type().LikeString() {
		throwf(TypeError, "Cannot bind to '%v' (type %v) in \"%s\".",
			v, v.Type(), fr.context())
	}
	s := v.Str(fr.call)
	if s == "" {
		throwf(TypeError, "Cannot bind to an empty name in \"%s\".", fr.context())
	}
	return symbol.Intern(s)
}

func letCanPrepare(fr *frame, idx int) bool {
	// -1 for the body: prepare once the last bound value is evaluated.
	return idx == len(fr.args)-2
}

func letPrepare(fr *frame) {
	sc := fr.scope.cloneLocal()
	for i := 0; i < len(fr.args)-1; i += 2 {
		sc.local.assign(bindingName(fr, fr.args[i].val), fr.args[i+1].val)
	}
	fr.scope = sc
}

func letValidate(fr *frame, n int) {
	// let requires matched pairs of name-value, followed by a single body.
	const expect = "(let <name> <value> ... (body))"
	if n < 3 {
		throwf(ArityError, "Too few arguments for let \"%s\". Expected %s",
			fr.context(), expect)
	}
	if n%2 == 0 {
		throwf(ArityError, "Wrong number arguments for let \"%s\". Expected %s",
			fr.context(), expect)
	}
}

func letApply(fr *frame, args []Value) Value {
	// The body has been executed by this point.
	return args[len(args)-1]
}

func init() {
	registerBuiltinForm(&form{
		name:              symbol.Intern("let"),
		exact:             false,
		numArgs:           3,
		validateOnResolve: true,
		canPrepare:        letCanPrepare,
		prepare:           letPrepare,
		validate:          letValidate,
		apply:             letApply,
	})
}
