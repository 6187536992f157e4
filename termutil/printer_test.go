package termutil_test

import (
	"bytes"
	"testing"

	"github.com/grailbio/lal/termutil"
	"github.com/stretchr/testify/assert"
)

func TestBufferPrinter(t *testing.T) {
	out := termutil.NewBufferPrinter()
	out.WriteString("x ")
	out.WriteInt(-10)
	out.WriteString(" ")
	out.WriteFloat(2)
	assert.Equal(t, "x -10 2.0", out.String())
	out.Reset()
	assert.Equal(t, 0, out.Len())
}

func TestBufferPrinterLines(t *testing.T) {
	out := termutil.NewBufferPrinter()
	assert.Nil(t, out.Lines())
	out.WriteString("a\nb\n")
	assert.Equal(t, []string{"a", "b"}, out.Lines())
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "2.0", termutil.FormatFloat(2.0))
	assert.Equal(t, "2.5", termutil.FormatFloat(2.5))
	assert.Equal(t, "-0.5", termutil.FormatFloat(-0.5))
	assert.Equal(t, "1e+20", termutil.FormatFloat(1e20))
}

func TestBatchPrinter(t *testing.T) {
	buf := &bytes.Buffer{}
	out := termutil.NewBatchPrinter(buf)
	out.WriteString("v=")
	out.WriteInt(3)
	n, err := out.Write([]byte("\n"))
	assert.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.NoError(t, out.Err())
	assert.Equal(t, "v=3\n", buf.String())
}
