package lal

import (
	"github.com/grailbio/lal/hash"
	"github.com/grailbio/lal/symbol"
)

// (defun NAME P1 P2 ... BODY) defines a function. The body must not be
// evaluated until the function is called, and a defun that is never executed
// (e.g. the branch of an if that is not taken) must not define anything. So
// prepare runs eagerly, right after symbol resolution, pops the body off the
// argument list and stashes it on the frame; apply installs the function
// once the name and parameters are evaluated.

// defunState is the frame aux of defun and lambda.
type defunState struct {
	body evalArg
}

func defunPrepare(fr *frame) {
	last := len(fr.args) - 1
	fr.aux = &defunState{body: fr.args[last]}
	fr.args = fr.args[:last]
	checkStarPlacement(fr, fr.args[1:])
}

// checkStarPlacement rejects a '* parameter anywhere but the last position.
func checkStarPlacement(fr *frame, params []evalArg) {
	for i, p := range params {
		if p.pending() || !p.val.Type().LikeString() {
			continue
		}
		if p.val.Str(nil) == "*" && i != len(params)-1 {
			throwf(ArityError, "\"'*\" must be the last parameter if present.")
		}
	}
}

// buildParams converts evaluated parameter-name values into symbols,
// re-checking the '* placement for names that were expressions.
func buildParams(fr *frame, args []Value) (params []symbol.ID, variadic bool) {
	for i, arg := range args {
		name := bindingName(fr, arg)
		if name == symbol.Star {
			if i != len(args)-1 {
				throwf(ArityError, "\"'*\" must be the last parameter if present.")
			}
			variadic = true
		}
		params = append(params, name)
	}
	return params, variadic
}

// funcName extracts the (possibly empty, meaning anonymous) function name.
func funcName(fr *frame, v Value) string {
	if !v.Type().LikeString() {
		throwf(TypeError, "Cannot name a function '%v' (type %v) in \"%s\".",
			v, v.Type(), fr.context())
	}
	return v.Str(fr.call)
}

func funcHash(name string, params []symbol.ID, variadic bool) hash.Hash {
	h := hash.String("(defun)").Merge(hash.String(name))
	for _, p := range params {
		h = h.Merge(p.Hash())
	}
	return h.Merge(hash.Bool(variadic))
}

func defunApply(fr *frame, args []Value) Value {
	st := fr.aux.(*defunState)
	// The name and parameters have the ' removed by now.
	name := funcName(fr, args[0])
	params, variadic := buildParams(fr, args[1:])
	fn := &Func{
		name:     symbol.Invalid,
		params:   params,
		variadic: variadic,
		body:     st.body,
		hash:     funcHash(name, params, variadic),
	}
	if name != "" {
		fn.name = symbol.Intern(name)
		fr.scope.setGlobal(fn.name, NewFunc(fn))
	}
	// Return the function itself, so it can be used as an argument.
	return NewFunc(fn)
}

func init() {
	registerBuiltinForm(&form{
		name:              symbol.Intern("defun"),
		exact:             false,
		numArgs:           2,
		validateOnResolve: true,
		prepare:           defunPrepare,
		apply:             defunApply,
	})
}

// (lambda CAPTURES P1 P2 ... BODY) defines an anonymous function whose
// capture list is snapshot at definition time. CAPTURES is a list of quoted
// names; each resolves against the local scope first, and the captured value
// persists regardless of later rebinding outside.
func lambdaApply(fr *frame, args []Value) Value {
	st := fr.aux.(*defunState)
	if args[0].Type() != ListType {
		throwf(TypeError, "lambda captures must be a list, got '%v' (type %v) in \"%s\".",
			args[0], args[0].Type(), fr.context())
	}
	captures := newCallFrame()
	for _, c := range args[0].List(fr.call) {
		if c.Type() != SymbolType {
			throwf(TypeError, "lambda capture names must be quoted symbols, got '%v' (type %v) in \"%s\".",
				c, c.Type(), fr.context())
		}
		sym := bindingName(fr, c)
		v, ok := fr.scope.Lookup(sym)
		if !ok {
			throwf(UnknownSymbolError, "Reference to unknown symbol \"%s\" in \"%s\".",
				c.Str(nil), fr.context())
		}
		captures.assign(sym, v)
	}
	params, variadic := buildParams(fr, args[1:])
	return NewFunc(&Func{
		name:     symbol.Invalid,
		params:   params,
		variadic: variadic,
		body:     st.body,
		captures: captures,
		hash:     funcHash("(lambda)", params, variadic),
	})
}

func init() {
	// lambda shares defun's prepare: arg 0 is the capture list rather than
	// the name, so parameters start at index 1 either way.
	registerBuiltinForm(&form{
		name:              symbol.Intern("lambda"),
		exact:             false,
		numArgs:           2,
		validateOnResolve: true,
		prepare:           defunPrepare,
		apply:             lambdaApply,
	})
}
