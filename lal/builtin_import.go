package lal

import (
	"github.com/grailbio/lal/symbol"
)

// (import "PATH") reads a file through the session's source loader and runs
// each of its top-level blocks against the current global scope, exposing
// every definition the file makes. Import cycles are not detected; a cyclic
// file set recurses until memory runs out, so keep import graphs acyclic.

func importCanPrepare(fr *frame, idx int) bool {
	// The path may itself be an expression.
	return idx == 0
}

func importPrepare(fr *frame) {
	path := fr.args[0].val
	if !path.Type().LikeString() {
		throwf(TypeError, "import path must be a string, got '%v' (type %v) in \"%s\".",
			path, path.Type(), fr.context())
	}
	text, err := fr.sess.loader(path.Str(fr.call))
	if err != nil {
		throwf(IOError, "import \"%s\": %v (in \"%s\")", path.Str(fr.call), err, fr.context())
	}
	for _, block := range parseSource(text) {
		// Each block gets a fresh local scope; the global scope is shared
		// with the importing program.
		fr.sess.executeBlock(block)
	}
}

func importApply(fr *frame, args []Value) Value {
	return Unit
}

func init() {
	registerBuiltinForm(&form{
		name:              symbol.Intern("import"),
		exact:             true,
		numArgs:           1,
		validateOnResolve: true,
		canPrepare:        importCanPrepare,
		prepare:           importPrepare,
		apply:             importApply,
	})
}
