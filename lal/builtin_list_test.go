package lal_test

import (
	"testing"

	"github.com/grailbio/lal/lal"
	"github.com/grailbio/lal/laltest"
	"github.com/stretchr/testify/assert"
)

func TestLen(t *testing.T) {
	sess, _ := laltest.NewSession()
	assert.Equal(t, int64(3), laltest.Eval(t, `(len "foo")`, sess).Int(nil))
	assert.Equal(t, int64(0), laltest.Eval(t, `(len "")`, sess).Int(nil))
	assert.Equal(t, int64(2), laltest.Eval(t, "(len (list 1 2))", sess).Int(nil))
	assert.Equal(t, int64(0), laltest.Eval(t, "(len (list))", sess).Int(nil))
	err := laltest.EvalErr(t, "(len 5)", sess)
	assert.Equal(t, lal.TypeError, err.Kind)
}

func TestNth(t *testing.T) {
	sess, _ := laltest.NewSession()
	assert.Equal(t, int64(1), laltest.Eval(t, "(nth 0 (list 1 2))", sess).Int(nil))
	assert.Equal(t, int64(2), laltest.Eval(t, "(nth 1 (list 1 2))", sess).Int(nil))
	assert.Equal(t, "b", laltest.Eval(t, `(nth 1 "abc")`, sess).Str(nil))
	err := laltest.EvalErr(t, "(nth 2 (list 1 2))", sess)
	assert.Equal(t, lal.TypeError, err.Kind)
	assert.Contains(t, err.Msg, "out of range")
	err = laltest.EvalErr(t, "(nth (- 1) (list 1 2))", sess)
	assert.Equal(t, lal.TypeError, err.Kind)
}

func TestFlatten(t *testing.T) {
	sess, _ := laltest.NewSession()
	assert.Equal(t, "()", laltest.Eval(t, "(flatten (list))", sess).String())
	assert.Equal(t, "(1 2 3)", laltest.Eval(t, "(flatten (list 1 2 3))", sess).String())
	assert.Equal(t, "(1 2 3)", laltest.Eval(t, "(flatten (list (list 1 2) 3))", sess).String())
	assert.Equal(t, "(1 2 3 4 5)",
		laltest.Eval(t, "(flatten (list (list (list 1 2)) (list 3) (list 4 (list 5))))", sess).String())
	// String elements are preserved whole.
	assert.Equal(t, `(1 "ab")`, laltest.Eval(t, `(flatten (list 1 "ab"))`, sess).String())
	// A top-level string decomposes into characters.
	assert.Equal(t, `("a" "b")`, laltest.Eval(t, `(flatten "ab")`, sess).String())
}

func TestPrelude(t *testing.T) {
	sess, _ := laltest.NewSession()
	assert.Equal(t, "(1 2 3)", laltest.Eval(t, "(list 1 2 3)", sess).String())
	assert.Equal(t, "()", laltest.Eval(t, "(list)", sess).String())
	// list preserves nesting.
	assert.Equal(t, "((1 2) 3)", laltest.Eval(t, "(list (list 1 2) 3)", sess).String())
	assert.Equal(t, int64(1), laltest.Eval(t, "(first (list 1 2 3))", sess).Int(nil))
	assert.Equal(t, int64(3), laltest.Eval(t, "(last (list 1 2 3))", sess).Int(nil))
	assert.Equal(t, int64(5), laltest.Eval(t, "(inc 4)", sess).Int(nil))
	assert.Equal(t, int64(3), laltest.Eval(t, "(dec 4)", sess).Int(nil))
}
