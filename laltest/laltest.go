// Package laltest provides helper functions for unittests.
package laltest

import (
	"testing"

	"github.com/grailbio/base/must"
	"github.com/grailbio/lal/lal"
	"github.com/grailbio/lal/lib"
	"github.com/grailbio/lal/termutil"
)

// NewSession creates a session with good defaults for unittests: print
// output accumulates in the returned buffer, and the prelude is preloaded.
func NewSession() (*lal.Session, *termutil.BufferPrinter) {
	out := termutil.NewBufferPrinter()
	sess := lal.NewSession(lal.Opts{Out: out})
	_, err := sess.Run(lib.Script)
	must.Nil(err, "load lib")
	return sess, out
}

// Eval parses and evaluates a given program, failing the test on error.
func Eval(t testing.TB, str string, sess *lal.Session) lal.Value {
	t.Helper()
	val, err := sess.Run(str)
	if err != nil {
		t.Fatalf("eval `%s`: %v", str, err)
	}
	return val
}

// EvalErr evaluates a program expected to fail and returns the error.
func EvalErr(t testing.TB, str string, sess *lal.Session) *lal.Error {
	t.Helper()
	_, err := sess.Run(str)
	if err == nil {
		t.Fatalf("eval `%s`: expected an error", str)
	}
	lalErr, ok := err.(*lal.Error)
	if !ok {
		t.Fatalf("eval `%s`: unexpected error type %T: %v", str, err, err)
	}
	return lalErr
}
