package lal

import (
	"github.com/grailbio/lal/hash"
	"github.com/grailbio/lal/symbol"
)

// form describes one callable operation: a builtin, a special form, or a
// user-defined function. The evaluator drives every call through the same
// protocol: resolve symbols, sortArgs, optionally validate, poll canPrepare
// while walking the arguments, prepare, and finally apply.
type form struct {
	// name is the symbol user code calls the form by. symbol.Invalid means
	// user code cannot reach the form by name (maybe-call, anonymous
	// functions).
	name symbol.ID
	// exact requires exactly numArgs arguments; otherwise numArgs is a
	// minimum.
	exact   bool
	numArgs int
	// variadic marks user functions with a trailing '* parameter.
	variadic bool
	// validateOnResolve validates the arg count right after symbol resolution
	// and expansion, before prepare may rewrite the arg list. Otherwise
	// validation runs after all children have been evaluated.
	validateOnResolve bool

	// canPrepare reports whether enough arguments have been evaluated for
	// prepare to run. idx is the index of the last evaluated argument, or -1
	// right after resolution. nil means "always".
	canPrepare func(fr *frame, idx int) bool
	// sortArgs permutes the resolved argument list before evaluation. nil
	// means identity.
	sortArgs func(args []evalArg) []evalArg
	// prepare may rewrite fr.args and replace fr.scope before the remaining
	// children are evaluated. It runs at most once per frame. nil means no-op.
	prepare func(fr *frame)
	// validate checks the argument count n. nil means defaultValidate.
	validate func(fr *frame, n int)
	// apply reduces the fully evaluated arguments to the call's result.
	apply func(fr *frame, args []Value) Value
}

// displayName returns the name used in error messages. Anonymous forms
// report an empty name.
func (f *form) displayName() string {
	if f.name == symbol.Invalid {
		return ""
	}
	return f.name.Str()
}

// defaultValidate checks the final argument count against the form's
// exact/numArgs declaration.
func defaultValidate(fr *frame, n int) {
	f := fr.form
	validateCount(fr, f, n)
}

func validateCount(fr *frame, f *form, n int) {
	insert := ""
	if !f.exact {
		insert = "at least "
	}
	pluralise := "s"
	if f.numArgs == 1 {
		pluralise = ""
	}
	if (f.exact && n != f.numArgs) || (!f.exact && n < f.numArgs) {
		throwf(ArityError, "Expected %s%d argument%s for function \"%s\", got %d.",
			insert, f.numArgs, pluralise, f.displayName(), n)
	}
}

// registerBuiltinForm wraps a form in a builtin Func, installs it in the
// global constant frame and returns its value. It should be called inside
// init().
func registerBuiltinForm(f *form) Value {
	fn := &Func{
		name:    f.name,
		builtin: true,
		form:    f,
		hash:    hash.String(f.name.Str()),
	}
	val := NewFunc(fn)
	globalConsts.set(f.name, val)
	return val
}

// lookupBuiltinForm resolves a form name at parse time. Only builtins are
// known before execution; anything else becomes a maybe-call.
func lookupBuiltinForm(name string) *form {
	if v, ok := globalConsts.lookup(symbol.Intern(name)); ok && v.Type() == FuncType {
		if fn := v.Func(nil); fn.builtin {
			return fn.form
		}
	}
	return nil
}
