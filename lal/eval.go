package lal

import (
	"strconv"
	"strings"

	"github.com/grailbio/lal/symbol"
)

// evalArg is one slot in a frame's argument buffer. Exactly one of node, sub
// and val is meaningful: node is an unevaluated subexpression, sub a
// pre-resolved child frame scheduled by maybe-call dispatch, and val an
// evaluated value.
type evalArg struct {
	node ASTNode
	sub  *frame
	val  Value
}

func (a evalArg) pending() bool { return a.node != nil || a.sub != nil }

// frame holds the per-invocation state of one call: the argument buffer, the
// walk position, the active scope, and the resolved/prepared protocol bits.
// Keeping this state off the AST lets function bodies be re-entered without
// copying.
type frame struct {
	sess *Session
	// call is the source call, for error messages. Frames scheduled by
	// maybe-call dispatch share the dispatching call.
	call *ASTCall
	form *form

	args   []evalArg
	argIdx int
	scope  *bindings

	resolved bool
	prepared bool
	// preResolved frames received an already-resolved argument buffer from
	// maybe-call dispatch; symbol resolution is skipped but sortArgs and
	// early validation still run.
	preResolved bool

	// aux holds form-specific state: the stashed body for defun/lambda, the
	// condition count for cond.
	aux interface{}
}

func (fr *frame) context() string { return fr.call.String() }

// lookupVar resolves one raw argument token. It returns the value and
// whether the caller should splice it into the argument list (the *name
// expansion). "call" is only for the error message.
func lookupVar(b *bindings, tok string, call *ASTCall) (expand bool, val Value) {
	if strings.HasPrefix(tok, "'") {
		// ' escape char, don't evaluate.
		return false, NewSymbol(tok[1:])
	}
	if i, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return false, NewInt(i)
	}
	name := tok
	// A symbol preceded with * is expanded; "*" on its own is not.
	if strings.HasPrefix(tok, "*") && len(tok) > 1 {
		name = tok[1:]
		expand = true
	}
	if v, ok := b.Lookup(symbol.Intern(name)); ok {
		return expand, v
	}
	throwf(UnknownSymbolError, "Reference to unknown symbol \"%s\" in \"%s\".", name, call)
	return false, Value{}
}

// spliceValue converts an expanded value into individual argument slots.
// Lists splice elementwise; text splices one character at a time.
func spliceValue(v Value, call *ASTCall) []evalArg {
	switch v.Type() {
	case ListType:
		elems := v.List(nil)
		args := make([]evalArg, len(elems))
		for i, elem := range elems {
			args[i] = evalArg{val: elem}
		}
		return args
	case StringType, SymbolType:
		var args []evalArg
		for _, r := range v.Str(nil) {
			args = append(args, evalArg{val: NewString(string(r))})
		}
		return args
	}
	throwf(TypeError, "Cannot expand '%v' (type %v) into arguments in \"%s\".",
		v, v.Type(), call)
	return nil
}

// resolveArgs converts the call's raw argument nodes into the frame's
// argument buffer: subexpressions stay pending, literals pass through, and
// symbols resolve (with expansion splicing in place). It then applies
// sortArgs and, for validateOnResolve forms, validates the expanded count.
func (fr *frame) resolveArgs() {
	if !fr.preResolved {
		args := make([]evalArg, 0, len(fr.call.Args))
		for _, node := range fr.call.Args {
			switch n := node.(type) {
			case *ASTCall:
				args = append(args, evalArg{node: n})
			case *ASTLiteral:
				args = append(args, evalArg{val: n.Literal})
			case *ASTSymbol:
				expand, val := lookupVar(fr.scope, n.Name, fr.call)
				if expand {
					args = append(args, spliceValue(val, fr.call)...)
				} else {
					args = append(args, evalArg{val: val})
				}
			}
		}
		fr.args = args
	}
	if s := fr.form.sortArgs; s != nil {
		fr.args = s(fr.args)
	}
	if fr.form.validateOnResolve {
		fr.validateNow()
	}
	fr.resolved = true
}

func (fr *frame) canPrepareAt(idx int) bool {
	if fr.form.canPrepare == nil {
		return true
	}
	return fr.form.canPrepare(fr, idx)
}

func (fr *frame) doPrepare() {
	if p := fr.form.prepare; p != nil {
		p(fr)
	}
	fr.prepared = true
}

func (fr *frame) validateNow() {
	n := len(fr.args)
	if v := fr.form.validate; v != nil {
		v(fr, n)
		return
	}
	defaultValidate(fr, n)
}

func (fr *frame) applyNow() Value {
	vals := make([]Value, len(fr.args))
	for i, a := range fr.args {
		vals[i] = a.val
	}
	return fr.form.apply(fr, vals)
}

// execute evaluates a call tree without recursing on the host for flat
// nesting. Each stack entry is a paused frame waiting for the result of one
// of its argument subexpressions. The host stack still grows when a form's
// prepare itself executes code (cond conditions are frame-driven, but import
// and user bodies scheduled mid-walk keep nesting bounded by prepare depth
// only).
func (sess *Session) execute(call *ASTCall, scope *bindings) Value {
	var stack []*frame
	fr := &frame{sess: sess, call: call, form: call.form, scope: scope}
	for {
		if !fr.resolved {
			fr.resolveArgs()
		}
		// Forms like defun prepare eagerly, before any argument is walked, to
		// pull the body out of the evaluation path.
		if !fr.prepared && fr.canPrepareAt(-1) {
			fr.doPrepare()
		}
		descended := false
		for fr.argIdx < len(fr.args) {
			arg := fr.args[fr.argIdx]
			if arg.pending() {
				child := arg.sub
				if child == nil {
					sub := arg.node.(*ASTCall)
					child = &frame{sess: sess, call: sub, form: sub.form, scope: fr.scope}
				}
				stack = append(stack, fr)
				fr = child
				descended = true
				break
			}
			if !fr.prepared && fr.canPrepareAt(fr.argIdx) {
				// prepare may insert or remove args; revisit without
				// advancing.
				fr.doPrepare()
				continue
			}
			fr.argIdx++
		}
		if descended {
			continue
		}
		if !fr.form.validateOnResolve {
			fr.validateNow()
		}
		result := fr.applyNow()
		if len(stack) == 0 {
			return result
		}
		parent := stack[len(stack)-1]
		stack[len(stack)-1] = nil
		stack = stack[:len(stack)-1]
		// Place the result in the parent's slot without advancing, so the
		// parent re-polls canPrepare at this position.
		parent.args[parent.argIdx] = evalArg{val: result}
		fr = parent
	}
}
