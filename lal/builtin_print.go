package lal

import (
	"github.com/grailbio/lal/symbol"
)

// print writes its arguments space-separated, followed by a newline, to the
// session's line sink. Strings print as raw text.
func builtinPrint(fr *frame, args []Value) Value {
	out := fr.sess.out
	for i, arg := range args {
		if i > 0 {
			out.WriteString(" ")
		}
		arg.Print(PrintArgs{Out: out, Mode: PrintValues})
	}
	out.WriteString("\n")
	return Unit
}

func init() {
	registerBuiltinForm(&form{
		name:    symbol.Intern("print"),
		exact:   false,
		numArgs: 0,
		apply:   builtinPrint,
	})
}
