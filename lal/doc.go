// Package lal implements the LAL expression language: a small Lisp-like
// language whose programs are sequences of S-expression calls.
//
// Programs run inside a Session, which owns the global scope shared by every
// top-level block, the output sink used by print, and the loader behind
// import:
//
//	sess := lal.NewSession(lal.Opts{})
//	val, err := sess.Run(`(defun 'add 'a 'b (+ a b)) (add 1 2)`)
//
// Every call is driven through a two-phase protocol (resolve symbols,
// sortArgs, prepare, evaluate children, apply) by an explicit-stack
// evaluator, so flat nested chains like (+ (+ (+ 1 2) 3) 4) do not grow the
// host stack no matter how deep they are. Special forms (let, if, cond,
// defun, lambda, import and late-bound maybe-calls) hook the protocol to
// control which of their arguments are evaluated, and in which scope.
package lal
