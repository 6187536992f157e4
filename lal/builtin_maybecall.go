package lal

import (
	"github.com/grailbio/lal/symbol"
)

// maybeCallForm is the placeholder for calls whose selector the parser could
// not resolve: a user function (possibly defined later, e.g. the recursive
// reference in (defun 'f (f))), or a selector that is itself an expression.
// Arg 0 is the selector; once it has been evaluated, prepare instantiates
// the real form over the remaining (already resolved) arguments and
// schedules it as the trailing argument.
var maybeCallForm = &form{}

func init() {
	maybeCallForm.name = symbol.Invalid
	maybeCallForm.exact = false
	maybeCallForm.numArgs = 1
	maybeCallForm.canPrepare = maybeCallCanPrepare
	maybeCallForm.prepare = maybeCallPrepare
	maybeCallForm.apply = maybeCallApply
}

func maybeCallCanPrepare(fr *frame, idx int) bool {
	// The selector could be a call itself; wait for its value.
	return idx == 0
}

func (fr *frame) selectorName() string {
	if fr.call != nil && len(fr.call.Args) > 0 {
		return fr.call.Args[0].String()
	}
	return "?"
}

func maybeCallPrepare(fr *frame) {
	sel := fr.args[0].val
	if sel.Type() == SymbolType {
		// A 'quoted name, or a name bound to a symbol value, names the
		// function indirectly. Plain string values are not callable.
		name := sel.Str(nil)
		if name == "" {
			notCallable(fr, sel)
		}
		v, ok := fr.scope.Lookup(symbol.Intern(name))
		if !ok {
			throwf(UnknownSymbolError, "Reference to unknown symbol \"%s\" in \"%s\".",
				name, fr.context())
		}
		sel = v
	}
	if sel.Type() != FuncType {
		notCallable(fr, sel)
	}
	fn := sel.Func(fr.call)
	target := fn.form
	if !fn.builtin {
		target = userForm(fn)
	}
	child := &frame{
		sess:        fr.sess,
		call:        fr.call,
		form:        target,
		scope:       fr.scope,
		preResolved: true,
		args:        append([]evalArg(nil), fr.args[1:]...),
	}
	fr.args = append(fr.args[:1:1], evalArg{sub: child})
}

func notCallable(fr *frame, sel Value) {
	throwf(NotCallableError, "\"%s\" is not a function, it is %v (type %v). (in \"%s\")",
		fr.selectorName(), sel, sel.Type(), fr.context())
}

func maybeCallApply(fr *frame, args []Value) Value {
	// The result of the real function.
	return args[len(args)-1]
}
