// Package termutil provides helper classes for printing interpreter output on
// the terminal. A Printer is the line-oriented sink used by the "print"
// builtin and the REPL.
package termutil

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/grailbio/base/errors"
)

// Printer is an object for printing values. Thread compatible.
type Printer interface {
	// Write writes the given text data to the output. It implements io.Writer.
	Write(data []byte) (int, error)

	// WriteString is similar to Write(), but it takes a string.
	WriteString(data string)
	// WriteInt writes the value in decimal. It is equivalent to
	// WriteString(fmt.Sprintf("%v", v)).
	WriteInt(v int64)
	// WriteFloat writes the value in dotted decimal; integral values print with
	// a trailing ".0" so that they remain recognizable as floats.
	WriteFloat(v float64)

	// Err returns the first error encountered during writes, if any.
	Err() error

	// Close closes the printer and releases its resources.
	Close()
}

// FormatFloat formats a float the way WriteFloat prints it.
func FormatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eENI") { // exponents, NaN, Inf keep their form
		s += ".0"
	}
	return s
}

// batchPrinter is a non-interactive printer that writes to the given output
// without paging.
type batchPrinter struct {
	out    io.Writer
	err    errors.Once
	fmtBuf [64]byte
}

// NewBatchPrinter creates a Printer that writes to the given output.
func NewBatchPrinter(out io.Writer) Printer {
	return &batchPrinter{out: out}
}

func (b *batchPrinter) Write(data []byte) (int, error) {
	n, err := b.out.Write(data)
	b.err.Set(err)
	return n, err
}

func (b *batchPrinter) WriteString(data string) {
	_, err := io.WriteString(b.out, data)
	b.err.Set(err)
}

func (b *batchPrinter) WriteInt(v int64) {
	buf := strconv.AppendInt(b.fmtBuf[:0], v, 10)
	_, err := b.out.Write(buf)
	b.err.Set(err)
}

func (b *batchPrinter) WriteFloat(v float64) {
	b.WriteString(FormatFloat(v))
}

func (b *batchPrinter) Err() error { return b.err.Err() }

func (b *batchPrinter) Close() {}

// BufferPrinter is a Printer implementation that accumulates the outputs in a
// bytes.Buffer.
type BufferPrinter struct {
	buf bytes.Buffer
}

// NewBufferPrinter creates an empty BufferPrinter.
func NewBufferPrinter() *BufferPrinter {
	return &BufferPrinter{}
}

// String returns the data written to the printer so far.
func (b *BufferPrinter) String() string { return b.buf.String() }

// Len returns the length of the data written so far.
func (b *BufferPrinter) Len() int { return b.buf.Len() }

// Reset resets the buffer.
func (b *BufferPrinter) Reset() { b.buf.Reset() }

// Lines returns the data written so far, split into lines. A trailing
// newline does not produce a trailing empty line.
func (b *BufferPrinter) Lines() []string {
	s := strings.TrimSuffix(b.buf.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Write implements Printer.
func (b *BufferPrinter) Write(data []byte) (int, error) { return b.buf.Write(data) }

// WriteString implements Printer.
func (b *BufferPrinter) WriteString(data string) { b.buf.WriteString(data) }

// WriteInt implements Printer.
func (b *BufferPrinter) WriteInt(v int64) { fmt.Fprintf(&b.buf, "%d", v) }

// WriteFloat implements Printer.
func (b *BufferPrinter) WriteFloat(v float64) { b.buf.WriteString(FormatFloat(v)) }

// Err implements Printer.
func (b *BufferPrinter) Err() error { return nil }

// Close implements Printer.
func (b *BufferPrinter) Close() {}
