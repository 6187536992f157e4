package lal

// Logging functions, similar to those in the "log" package. They can show the
// source form of the call being evaluated.

import (
	"fmt"

	"github.com/grailbio/base/log"
)

// Debugf is similar to log.Debug.Printf(...). Arg "ast" is the call being
// evaluated; pass nil if unknown.
func Debugf(ast ASTNode, format string, args ...interface{}) {
	if log.At(log.Debug) {
		log.Output(2, log.Debug, astContext(ast)+fmt.Sprintf(format, args...)) // nolint: errcheck
	}
}

// Logf is similar to log.Printf(...). Arg "ast" is the call being evaluated;
// pass nil if unknown.
func Logf(ast ASTNode, format string, args ...interface{}) {
	if log.At(log.Info) {
		log.Output(2, log.Info, astContext(ast)+fmt.Sprintf(format, args...)) // nolint: errcheck
	}
}

// Errorf is similar to log.Error.Printf(...). Arg "ast" is the call being
// evaluated; pass nil if unknown.
func Errorf(ast ASTNode, format string, args ...interface{}) {
	log.Output(2, log.Error, astContext(ast)+fmt.Sprintf(format, args...)) // nolint: errcheck
}
