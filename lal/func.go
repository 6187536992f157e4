package lal

import (
	"strings"
	"unsafe"

	"github.com/grailbio/lal/hash"
	"github.com/grailbio/lal/symbol"
	"github.com/grailbio/lal/termutil"
)

// Func represents a callable: a builtin form or a user-defined function. It
// is stored in a Value of FuncType.
type Func struct {
	// name is the name the function was defined under. symbol.Invalid for
	// anonymous functions, which are reachable only through the returned
	// value.
	name    symbol.ID
	builtin bool
	// form is the protocol record. Builtins carry it directly; user
	// functions synthesize one per dispatch via userForm.
	form *form

	// The following fields are set only for user-defined functions.
	params   []symbol.ID // in declaration order; symbol.Star is the catch-all
	variadic bool
	body     evalArg
	captures *callFrame // lambda capture snapshot, nil otherwise

	hash hash.Hash
}

// NewFunc creates a new function value.
func NewFunc(f *Func) Value {
	return Value{typ: FuncType, p: unsafe.Pointer(f)}
}

// Func extracts the function value.
//
// REQUIRES: v.Type()==FuncType.
func (v Value) Func(ast ASTNode) *Func {
	if v.typ != FuncType {
		v.wrongTypeError(ast, "function")
	}
	return (*Func)(v.p)
}

// Builtin returns true if the function is built into LAL.
func (f *Func) Builtin() bool { return f.builtin }

// Name returns the function's name, or "" for anonymous functions.
func (f *Func) Name() string {
	if f.name == symbol.Invalid {
		return ""
	}
	return f.name.Str()
}

// Hash returns the identity hash of the function.
func (f *Func) Hash() hash.Hash { return f.hash }

func (f *Func) print(out termutil.Printer) {
	if f.builtin {
		out.WriteString(f.name.Str())
		return
	}
	var argNames []string
	for _, p := range f.params {
		argNames = append(argNames, p.Str())
	}
	out.WriteString("λ")
	if f.name != symbol.Invalid {
		out.WriteString(f.name.Str())
	}
	out.WriteString("(" + strings.Join(argNames, " ") + ")")
	if f.body.node != nil {
		out.WriteString(f.body.node.String())
	} else {
		out.WriteString(f.body.val.String())
	}
}

// String generates a human-readable description.
func (f *Func) String() string {
	out := termutil.NewBufferPrinter()
	f.print(out)
	return out.String()
}

// requiredArgs is the number of mandatory arguments: all declared parameters
// except the '* catch-all.
func (f *Func) requiredArgs() int {
	n := len(f.params)
	if f.variadic {
		n--
	}
	return n
}

// userForm builds the protocol record that runs one invocation of a
// user-defined function. The shape mirrors the builtin special forms:
// prepare runs once all actual arguments are evaluated, binds them in a
// fresh scope, and schedules the body as the trailing argument; apply
// returns the body's result.
func userForm(f *Func) *form {
	uf := &form{
		name:     f.name,
		exact:    !f.variadic,
		numArgs:  f.requiredArgs(),
		variadic: f.variadic,
	}
	uf.canPrepare = func(fr *frame, idx int) bool {
		// About to schedule the body: every actual arg has been evaluated.
		return idx >= len(fr.args)-1
	}
	uf.prepare = func(fr *frame) {
		fr.scope = bindActuals(f, fr)
		fr.args = append(fr.args, f.body)
	}
	uf.validate = func(fr *frame, n int) {
		if fr.prepared {
			n-- // ignore the scheduled body
		}
		validateCount(fr, uf, n)
	}
	uf.apply = func(fr *frame, args []Value) Value {
		// The result of the function body.
		return args[len(args)-1]
	}
	return uf
}

// bindActuals builds the function's execution scope: an empty local frame
// seeded with lambda captures, the '*' catch-all (always defined for
// variadics, even when empty), and the positional parameters. The caller's
// local scope is never visible inside the function.
func bindActuals(f *Func, fr *frame) *bindings {
	sc := fr.scope.freshLocal()
	if f.captures != nil {
		syms, vals := f.captures.list()
		for i, sym := range syms {
			sc.local.assign(sym, vals[i])
		}
	}
	if f.variadic {
		sc.local.assign(symbol.Star, NewList(nil))
	}
	n := len(fr.args)
	for i, p := range f.params {
		if p == symbol.Star {
			rest := make([]Value, 0, n-i)
			for _, a := range fr.args[i:] {
				rest = append(rest, a.val)
			}
			sc.local.assign(symbol.Star, NewList(rest))
			break
		}
		if i >= n {
			if f.variadic {
				throwf(ArityError,
					"Wrong number of arguments for function \"%s\" in \"%s\". Got %d, expected at least %d.",
					f.Name(), fr.context(), n, f.requiredArgs())
			}
			// Fixed arity: report through the standard arity message.
			validateCount(fr, fr.form, n)
		}
		sc.local.assign(p, fr.args[i].val)
	}
	return sc
}
