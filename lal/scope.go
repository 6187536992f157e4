package lal

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/grailbio/base/log"
	"github.com/grailbio/lal/symbol"
)

// callFrame stores a set of name -> value bindings for one scope layer.
type callFrame struct {
	vars map[symbol.ID]Value
}

func newCallFrame() *callFrame { return &callFrame{} }

// set adds a new binding. It crashes if the symbol already exists. It is used
// for the builtin constant frame, where double registration is a bug.
func (f *callFrame) set(sym symbol.ID, v Value) {
	if f.vars == nil {
		f.vars = map[symbol.ID]Value{}
	} else if _, ok := f.vars[sym]; ok {
		log.Panicf("variable '%s' already exists in the frame", sym.Str())
	}
	f.vars[sym] = v
}

// assign adds or overwrites a binding. Shadowing and redefinition in user
// code go through assign.
func (f *callFrame) assign(sym symbol.ID, v Value) {
	if f.vars == nil {
		f.vars = map[symbol.ID]Value{}
	}
	f.vars[sym] = v
}

func (f *callFrame) lookup(name symbol.ID) (Value, bool) {
	if name == symbol.Invalid {
		panic(name)
	}
	if f.vars != nil {
		val, ok := f.vars[name]
		return val, ok
	}
	return Value{}, false
}

// clone creates a deep copy of the frame.
func (f *callFrame) clone() *callFrame {
	n := &callFrame{}
	if f.vars != nil {
		n.vars = make(map[symbol.ID]Value, len(f.vars))
		for k, v := range f.vars {
			n.vars[k] = v
		}
	}
	return n
}

// list lists variables and the corresponding values in the frame. It is slow
// and not for general use.
func (f *callFrame) list() (syms []symbol.ID, vals []Value) {
	for sym, val := range f.vars {
		syms = append(syms, sym)
		vals = append(vals, val)
	}
	return
}

// describe lists names of variables in the frame.
func (f *callFrame) describe() string {
	syms, _ := f.list()
	var vars []string
	for _, sym := range syms {
		vars = append(vars, sym.Str())
	}
	sort.Strings(vars)
	return fmt.Sprintf("frame: %v", vars)
}

// bindings stores variable -> value mappings. consts is the immutable frame
// of builtin functions shared by every session; global is the session-wide
// mutable frame grown by defun and import; local holds per-call bindings.
//
// Bindings is thread compatible. It is owned by one goroutine.
type bindings struct {
	consts *callFrame
	global *callFrame
	local  *callFrame
}

// Lookup finds the value bound to the given symbol, local scope first.
func (b *bindings) Lookup(name symbol.ID) (Value, bool) {
	if val, ok := b.local.lookup(name); ok {
		return val, true
	}
	if val, ok := b.global.lookup(name); ok {
		return val, true
	}
	return b.consts.lookup(name)
}

// cloneLocal returns bindings with a copied local frame. Mutations of the
// copy do not affect the caller's scope.
func (b *bindings) cloneLocal() *bindings {
	return &bindings{consts: b.consts, global: b.global, local: b.local.clone()}
}

// freshLocal returns bindings with an empty local frame.
func (b *bindings) freshLocal() *bindings {
	return &bindings{consts: b.consts, global: b.global, local: newCallFrame()}
}

// setGlobal adds or overwrites a variable in the global frame.
func (b *bindings) setGlobal(sym symbol.ID, val Value) {
	b.global.assign(sym, val)
}

// Describe dumps the binding contents in a human-readable fashion.
func (b *bindings) Describe() string {
	buf := bytes.NewBuffer(nil)
	buf.WriteString("local " + b.local.describe() + "\n")
	buf.WriteString("global " + b.global.describe() + "\n")
	return buf.String()
}

// globalConsts stores the builtin forms. It is populated by the init()
// function of each builtin_*.go file and immutable afterwards.
var globalConsts = newCallFrame()
