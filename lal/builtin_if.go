package lal

import (
	"github.com/grailbio/lal/symbol"
)

// (if COND THEN [ELSE]) evaluates COND, then exactly one branch. The branch
// not taken is dropped from the argument list before it can be evaluated.

func ifCanPrepare(fr *frame, idx int) bool {
	// Only the condition needs to be evaluated.
	return idx == 0
}

func ifPrepare(fr *frame) {
	newArgs := []evalArg{fr.args[0]}
	if fr.args[0].val.Truthy() {
		newArgs = append(newArgs, fr.args[1])
	} else if len(fr.args) == 3 {
		newArgs = append(newArgs, fr.args[2])
	}
	// Only "then" with a falsy condition: no body to run.
	fr.args = newArgs
}

func ifValidate(fr *frame, n int) {
	if n < 2 || n > 3 {
		throwf(ArityError, "Expected 2 or 3 arguments for \"if\" in \"%s\", got %d.",
			fr.context(), n)
	}
}

func ifApply(fr *frame, args []Value) Value {
	// The chosen branch has been evaluated; the condition is still arg 0.
	if len(args) > 1 {
		return args[len(args)-1]
	}
	return Unit
}

func init() {
	registerBuiltinForm(&form{
		name:              symbol.Intern("if"),
		exact:             false,
		numArgs:           2,
		validateOnResolve: true,
		canPrepare:        ifCanPrepare,
		prepare:           ifPrepare,
		validate:          ifValidate,
		apply:             ifApply,
	})
}
