package lal_test

import (
	"testing"

	"github.com/grailbio/lal/lal"
	"github.com/grailbio/lal/laltest"
	"github.com/grailbio/testutil/expect"
	"github.com/stretchr/testify/assert"
)

func TestPlusPromotion(t *testing.T) {
	sess, _ := laltest.NewSession()
	// Int stays Int.
	val := laltest.Eval(t, "(+ 1 2 3)", sess)
	expect.EQ(t, val.Type(), lal.IntType)
	expect.EQ(t, val.Int(nil), int64(6))
	// Any Float promotes the whole fold.
	val = laltest.Eval(t, "(+ 1 (sqrt 4) 1)", sess)
	expect.EQ(t, val.Type(), lal.FloatType)
	expect.EQ(t, val.Float(nil), 4.0)
	// Lists concatenate.
	val = laltest.Eval(t, "(+ (list 1 2) (list 3))", sess)
	expect.EQ(t, val.String(), "(1 2 3)")
}

func TestMinus(t *testing.T) {
	sess, _ := laltest.NewSession()
	assert.Equal(t, int64(-10), laltest.Eval(t, "(- 10)", sess).Int(nil))
	assert.Equal(t, int64(4), laltest.Eval(t, "(- 10 5 1)", sess).Int(nil))
	assert.Equal(t, -2.0, laltest.Eval(t, "(- (sqrt 4))", sess).Float(nil))
	assert.Equal(t, 1.0, laltest.Eval(t, "(- (sqrt 9) 2)", sess).Float(nil))
}

func TestFloatLiterals(t *testing.T) {
	sess, _ := laltest.NewSession()
	// There are no float literals; floats enter through sqrt.
	err := laltest.EvalErr(t, "(+ 1.5 1)", sess)
	assert.Equal(t, lal.UnknownSymbolError, err.Kind)
}

func TestModulus(t *testing.T) {
	sess, _ := laltest.NewSession()
	assert.Equal(t, int64(2), laltest.Eval(t, "(% 5 3)", sess).Int(nil))
	assert.Equal(t, int64(0), laltest.Eval(t, "(% 6 3)", sess).Int(nil))
}

func TestSqrt(t *testing.T) {
	sess, _ := laltest.NewSession()
	assert.Equal(t, 2.0, laltest.Eval(t, "(sqrt 4)", sess).Float(nil))
	assert.Equal(t, 2.0, laltest.Eval(t, "(sqrt (sqrt 16))", sess).Float(nil))
	err := laltest.EvalErr(t, "(sqrt (- 1))", sess)
	assert.Equal(t, lal.TypeError, err.Kind)
}

func TestEq(t *testing.T) {
	sess, _ := laltest.NewSession()
	assert.True(t, laltest.Eval(t, `(eq "a" "a")`, sess).Bool(nil))
	assert.True(t, laltest.Eval(t, `(eq 'a "a")`, sess).Bool(nil))
	assert.False(t, laltest.Eval(t, `(eq "a" "b")`, sess).Bool(nil))
	assert.True(t, laltest.Eval(t, "(eq (list 1 2) (list 1 2))", sess).Bool(nil))
	assert.False(t, laltest.Eval(t, "(eq (list 1 2) (list 2 1))", sess).Bool(nil))
	// eq across types is false, not an error.
	assert.False(t, laltest.Eval(t, `(eq 1 "1")`, sess).Bool(nil))
}

func TestCharConversions(t *testing.T) {
	sess, _ := laltest.NewSession()
	assert.Equal(t, int64('a'), laltest.Eval(t, `(chartoint "a")`, sess).Int(nil))
	assert.Equal(t, "a", laltest.Eval(t, "(inttochar 97)", sess).Str(nil))
	assert.Equal(t, "b", laltest.Eval(t, `(inttochar (+ (chartoint "a") 1))`, sess).Str(nil))
	err := laltest.EvalErr(t, `(chartoint "ab")`, sess)
	assert.Equal(t, lal.TypeError, err.Kind)
}
