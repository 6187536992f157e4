package lal

import (
	"context"
	"os"

	"github.com/grailbio/base/file"
	"github.com/grailbio/lal/symbol"
	"github.com/grailbio/lal/termutil"
)

// SourceLoader reads the source text behind an import path. Failures
// propagate as IOError.
type SourceLoader func(path string) (string, error)

// Opts is passed to NewSession.
type Opts struct {
	// Out is the line sink used by the print builtin. If unset, standard
	// output is used.
	Out termutil.Printer
	// Loader reads imported files. If unset, files are read through
	// grailbio/base/file.
	Loader SourceLoader
}

// Session represents one interpreter instance: the global scope shared by
// every top-level block, the output sink, and the import loader. Sessions
// are single-threaded; callers running programs concurrently must use
// independent sessions.
type Session struct {
	env    *bindings
	out    termutil.Printer
	loader SourceLoader
}

func defaultLoader(path string) (string, error) {
	data, err := file.ReadFile(context.Background(), path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// NewSession creates a new session whose global scope contains only the
// builtins.
func NewSession(opts Opts) *Session {
	out := opts.Out
	if out == nil {
		out = termutil.NewBatchPrinter(os.Stdout)
	}
	loader := opts.Loader
	if loader == nil {
		loader = defaultLoader
	}
	return &Session{
		env:    &bindings{consts: globalConsts, global: newCallFrame(), local: newCallFrame()},
		out:    out,
		loader: loader,
	}
}

// Out returns the session's line sink.
func (s *Session) Out() termutil.Printer { return s.out }

// SetGlobal binds a global variable, overwriting any previous binding.
func (s *Session) SetGlobal(name string, val Value) {
	s.env.setGlobal(symbol.Intern(name), val)
}

// LookupGlobal returns the value bound to a name in the global scope or the
// builtins.
func (s *Session) LookupGlobal(name string) (Value, bool) {
	return s.env.Lookup(symbol.Intern(name))
}

// Run normalises, parses and executes a program. Top-level blocks run
// left-to-right, each with a fresh local scope; the program's value is the
// last block's result, or Unit for an empty program. The first error aborts
// the run.
func (s *Session) Run(text string) (val Value, err error) {
	err = Recover(func() { val = s.run(text) })
	if err != nil {
		return Value{}, err
	}
	return val, nil
}

func (s *Session) run(text string) Value {
	result := Unit
	for _, block := range parseSource(text) {
		result = s.executeBlock(block)
	}
	return result
}

func (s *Session) executeBlock(call *ASTCall) Value {
	return s.execute(call, s.env.freshLocal())
}

// EvalFile reads a program through the session loader and runs it.
func (s *Session) EvalFile(path string) (Value, error) {
	text, err := s.loader(path)
	if err != nil {
		return Value{}, &Error{Kind: IOError, Msg: "read " + path + ": " + err.Error()}
	}
	return s.Run(text)
}
