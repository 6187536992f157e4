package lal_test

import (
	"testing"

	"github.com/grailbio/lal/lal"
	"github.com/grailbio/lal/laltest"
	"github.com/stretchr/testify/assert"
)

// Evaluation errors such as unknown symbols embed the offending call's
// printed form. The generic arity message names the function instead (see
// TestArityErrors).
func TestErrorsCarryCallContext(t *testing.T) {
	sess, _ := laltest.NewSession()
	err := laltest.EvalErr(t, "(sqrt abc)", sess)
	assert.Equal(t, lal.UnknownSymbolError, err.Kind)
	assert.Equal(t, `Reference to unknown symbol "abc" in "(sqrt abc)".`, err.Msg)
}

func TestArityErrors(t *testing.T) {
	sess, _ := laltest.NewSession()
	err := laltest.EvalErr(t, "(sqrt)", sess)
	assert.Equal(t, lal.ArityError, err.Kind)
	assert.Equal(t, `Expected 1 argument for function "sqrt", got 0.`, err.Msg)

	err = laltest.EvalErr(t, "(sqrt 1 2)", sess)
	assert.Equal(t, lal.ArityError, err.Kind)
	assert.Equal(t, `Expected 1 argument for function "sqrt", got 2.`, err.Msg)

	err = laltest.EvalErr(t, "(eq 1)", sess)
	assert.Equal(t, lal.ArityError, err.Kind)
	assert.Equal(t, `Expected at least 2 arguments for function "eq", got 1.`, err.Msg)
}

// Arity is validated against the final, expanded argument count.
func TestArityAfterExpansion(t *testing.T) {
	sess, _ := laltest.NewSession()
	// *ls counts as one arg in the source but two after expansion.
	val := laltest.Eval(t, "(let 'ls (list 1 2) (eq *ls))", sess)
	assert.Equal(t, false, val.Bool(nil))
	err := laltest.EvalErr(t, "(let 'ls (list 1) (eq *ls))", sess)
	assert.Equal(t, lal.ArityError, err.Kind)
}

func TestCondArityErrors(t *testing.T) {
	sess, _ := laltest.NewSession()
	err := laltest.EvalErr(t, "(cond (+ 0))", sess)
	assert.Equal(t, lal.ArityError, err.Kind)
	assert.Contains(t, err.Msg, "requires at least 2 arguments")
	assert.Contains(t, err.Msg, "(cond <condition> <action> ...)")

	err = laltest.EvalErr(t, "(cond (+ 0) (+ 0) (+ 1))", sess)
	assert.Equal(t, lal.ArityError, err.Kind)
	assert.Contains(t, err.Msg, "Wrong number arguments for cond")
}

func TestIfArityErrors(t *testing.T) {
	sess, _ := laltest.NewSession()
	err := laltest.EvalErr(t, "(if 1)", sess)
	assert.Equal(t, lal.ArityError, err.Kind)
	err = laltest.EvalErr(t, "(if 1 2 3 4)", sess)
	assert.Equal(t, lal.ArityError, err.Kind)
}

func TestTypeErrors(t *testing.T) {
	sess, _ := laltest.NewSession()
	err := laltest.EvalErr(t, `(+ 1 "a")`, sess)
	assert.Equal(t, lal.TypeError, err.Kind)
	assert.Contains(t, err.Msg, "Cannot add")

	err = laltest.EvalErr(t, `(< 1 "a")`, sess)
	assert.Equal(t, lal.TypeError, err.Kind)

	err = laltest.EvalErr(t, `(nth 0 5)`, sess)
	assert.Equal(t, lal.TypeError, err.Kind)

	err = laltest.EvalErr(t, `(% 1 0)`, sess)
	assert.Equal(t, lal.TypeError, err.Kind)

	err = laltest.EvalErr(t, `(- "a")`, sess)
	assert.Equal(t, lal.TypeError, err.Kind)
}

func TestFlattenNotIterable(t *testing.T) {
	sess, _ := laltest.NewSession()
	err := laltest.EvalErr(t, "(flatten 1)", sess)
	assert.Equal(t, lal.NotIterableError, err.Kind)
	assert.Contains(t, err.Msg, `Flatten "(flatten 1)" not called with a list.`)
}

// The first error aborts the run; later blocks do not execute.
func TestErrorAbortsRun(t *testing.T) {
	sess, out := laltest.NewSession()
	_, err := sess.Run(`(print "one") (sqrt nope) (print "two")`)
	assert.Error(t, err)
	assert.Equal(t, []string{"one"}, out.Lines())
}
