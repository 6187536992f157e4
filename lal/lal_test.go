package lal_test

import (
	"testing"

	"github.com/grailbio/lal/lal"
	"github.com/grailbio/lal/laltest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyProgram(t *testing.T) {
	sess, _ := laltest.NewSession()
	val := laltest.Eval(t, "", sess)
	assert.Equal(t, lal.UnitType, val.Type())
}

func TestArithmetic(t *testing.T) {
	sess, _ := laltest.NewSession()
	assert.Equal(t, int64(3), laltest.Eval(t, "(+ 1 2)", sess).Int(nil))
	assert.Equal(t, int64(10), laltest.Eval(t, "(+ 1 2 3 4)", sess).Int(nil))
	assert.Equal(t, int64(0), laltest.Eval(t, "(+ (+ 1) (- 1))", sess).Int(nil))
	assert.Equal(t, int64(3), laltest.Eval(t, "(- (+ 4 3) 4)", sess).Int(nil))
	assert.Equal(t, int64(2), laltest.Eval(t, "(% 5 3)", sess).Int(nil))
	assert.Equal(t, 2.0, laltest.Eval(t, "(sqrt (+ 2 2))", sess).Float(nil))
	assert.Equal(t, 3.0, laltest.Eval(t, "(+ (sqrt 16) (- 12 13))", sess).Float(nil))
	assert.Equal(t, 11.0, laltest.Eval(t, "(+ (sqrt (- 9 5)) (- 10 (+ (- 2 3) 2)))", sess).Float(nil))
}

func TestStringConcat(t *testing.T) {
	sess, _ := laltest.NewSession()
	assert.Equal(t, "bc", laltest.Eval(t, "(+ 'b 'c)", sess).Str(nil))
	assert.Equal(t, "ab", laltest.Eval(t, `(+ "a" "b")`, sess).Str(nil))
}

func TestLogicalOps(t *testing.T) {
	sess, _ := laltest.NewSession()
	assert.Equal(t, false, laltest.Eval(t, "(eq 1 2)", sess).Bool(nil))
	assert.Equal(t, true, laltest.Eval(t, "(eq 1 1 1 1)", sess).Bool(nil))
	assert.Equal(t, true, laltest.Eval(t, "(eq 1 (sqrt 1))", sess).Bool(nil))
	assert.Equal(t, true, laltest.Eval(t, "(not (eq 1 0))", sess).Bool(nil))
	assert.Equal(t, false, laltest.Eval(t, "(not (+ 1))", sess).Bool(nil))
	assert.Equal(t, true, laltest.Eval(t, "(< 1 2)", sess).Bool(nil))
	assert.Equal(t, false, laltest.Eval(t, "(< 2 2)", sess).Bool(nil))
	// none and true ignore their arguments.
	assert.Equal(t, lal.UnitType, laltest.Eval(t, "(none 1 2 3)", sess).Type())
	assert.Equal(t, true, laltest.Eval(t, "(true (eq 1 0))", sess).Bool(nil))
}

func TestIf(t *testing.T) {
	sess, _ := laltest.NewSession()
	assert.Equal(t, int64(-1), laltest.Eval(t, "(if 0 (+ 1) (- 1))", sess).Int(nil))
	assert.Equal(t, int64(1), laltest.Eval(t, "(if 1 (+ 1) (- 1))", sess).Int(nil))
	assert.Equal(t, int64(-1), laltest.Eval(t, "(if (- 2 2) (+ 1) (- 1))", sess).Int(nil))
	// Ifs can just have the "then" block, no "else".
	assert.Equal(t, lal.UnitType, laltest.Eval(t, "(if (eq 1 2) (+ 1))", sess).Type())
	assert.Equal(t, int64(1), laltest.Eval(t, "(if (eq 1 1) (+ 1))", sess).Int(nil))
}

func TestCond(t *testing.T) {
	sess, _ := laltest.NewSession()
	assert.Equal(t, int64(6), laltest.Eval(t, "(cond (+ 0) (+ 5) (+ 1) (+ 6))", sess).Int(nil))
	assert.Equal(t, int64(2), laltest.Eval(t, "(cond (eq 1 2) (+ 1) (eq 2 2) (+ 2))", sess).Int(nil))
	// First true condition wins.
	assert.Equal(t, int64(1), laltest.Eval(t, "(cond (eq 1 1) (+ 1) (eq 2 2) (+ 2))", sess).Int(nil))
	// Nothing matches, nothing returned.
	assert.Equal(t, lal.UnitType, laltest.Eval(t, "(cond (eq 1 2) (+ 1) (eq 2 3) (+ 2))", sess).Type())
}

// An action tied to a false condition must never run.
func TestCondDoesNotRunOtherActions(t *testing.T) {
	sess, out := laltest.NewSession()
	laltest.Eval(t, `(cond (eq 1 2) (print "a") (eq 2 2) (print "b") (eq 3 3) (print "c"))`, sess)
	assert.Equal(t, []string{"b"}, out.Lines())
}

func TestPrint(t *testing.T) {
	sess, out := laltest.NewSession()
	val := laltest.Eval(t, `(print "The result is:") (+ 1 2)`, sess)
	assert.Equal(t, int64(3), val.Int(nil))
	assert.Equal(t, []string{"The result is:"}, out.Lines())

	out.Reset()
	laltest.Eval(t, `(let 'foo 1 'bar "cat" (print foo bar))`, sess)
	assert.Equal(t, []string{"1 cat"}, out.Lines())

	out.Reset()
	laltest.Eval(t, `(print)`, sess)
	assert.Equal(t, "\n", out.String())
}

func TestComments(t *testing.T) {
	sess, out := laltest.NewSession()
	val := laltest.Eval(t, "# This is a comment\n# (+ 1 2)\n(print (+ 1 2))\n# Or after", sess)
	assert.Equal(t, lal.UnitType, val.Type())
	assert.Equal(t, []string{"3"}, out.Lines())
}

// A '#' inside a string is stripped by the normaliser; the truncated string
// literal then fails to parse. Pinned as a documented limitation.
func TestHashInStringLimitation(t *testing.T) {
	sess, _ := laltest.NewSession()
	err := laltest.EvalErr(t, `(print "a#b")`, sess)
	assert.Equal(t, lal.ParseError, err.Kind)
}

func TestMultipleBlocksShareGlobals(t *testing.T) {
	sess, _ := laltest.NewSession()
	val := laltest.Eval(t, "(defun 'add 'a 'b (+ a b)) (add 1 2)", sess)
	assert.Equal(t, int64(3), val.Int(nil))
	// Definitions persist across Run calls within a session.
	assert.Equal(t, int64(7), laltest.Eval(t, "(add 3 4)", sess).Int(nil))
}

func TestExpansion(t *testing.T) {
	sess, out := laltest.NewSession()
	assert.Equal(t, int64(3), laltest.Eval(t, "(let 'ls (list 1 2) (+ *ls))", sess).Int(nil))
	laltest.Eval(t, "(let 'ls (list 1 2 3) (print *ls))", sess)
	assert.Equal(t, []string{"1 2 3"}, out.Lines())
	// Text expands one character at a time.
	assert.Equal(t, int64(2), laltest.Eval(t, `(let 's "ab" (len (list *s)))`, sess).Int(nil))
}

func TestDeterministicRuns(t *testing.T) {
	const src = `
(defun 'f 'n (print n (+ n 1)))
(f 1)
(f 10)
(let 'x 5 (+ x 1))`
	sess1, out1 := laltest.NewSession()
	val1 := laltest.Eval(t, src, sess1)
	sess2, out2 := laltest.NewSession()
	val2 := laltest.Eval(t, src, sess2)
	assert.Equal(t, val1.String(), val2.String())
	assert.Equal(t, out1.Lines(), out2.Lines())
	assert.Equal(t, int64(6), val1.Int(nil))
	assert.Equal(t, []string{"1 2", "10 11"}, out1.Lines())
}

func TestArgumentOrdering(t *testing.T) {
	sess, out := laltest.NewSession()
	laltest.Eval(t, `(none (print 1) (print 2) (print 3))`, sess)
	require.Equal(t, []string{"1", "2", "3"}, out.Lines())
}

func TestRunReportsValueOfLastBlock(t *testing.T) {
	sess, _ := laltest.NewSession()
	assert.Equal(t, int64(4), laltest.Eval(t, "(+ 1 2) (+ 2 2)", sess).Int(nil))
}
