package lal

import (
	"github.com/grailbio/lal/symbol"
)

// (cond C1 A1 C2 A2 ...) evaluates conditions in order and runs the action
// of the first truthy one. sortArgs moves all conditions to the front so the
// evaluator reaches them before any action.

func condSortArgs(args []evalArg) []evalArg {
	// c1, a1, c2, a2 => c1, c2, a1, a2
	sorted := make([]evalArg, 0, len(args))
	for i := 0; i < len(args); i += 2 {
		sorted = append(sorted, args[i])
	}
	for i := 1; i < len(args); i += 2 {
		sorted = append(sorted, args[i])
	}
	return sorted
}

func condCanPrepare(fr *frame, idx int) bool {
	// All conditions evaluated, no actions yet.
	return idx == len(fr.args)/2-1
}

func condPrepare(fr *frame) {
	mid := len(fr.args) / 2
	fr.aux = mid
	for i := 0; i < mid; i++ {
		if fr.args[i].val.Truthy() {
			// Keep the conditions (the walk position points into them) and
			// the single chosen action; every other action is dropped
			// unevaluated.
			fr.args = append(fr.args[:mid:mid], fr.args[mid+i])
			return
		}
	}
	// Nothing matched, nothing to run.
	fr.args = fr.args[:mid]
}

func condValidate(fr *frame, n int) {
	const expect = "(cond <condition> <action> ...)"
	if n < 2 {
		throwf(ArityError, "cond \"%s\" requires at least 2 arguments. Expected %s",
			fr.context(), expect)
	}
	if n%2 == 1 {
		throwf(ArityError, "Wrong number arguments for cond \"%s\". Expected %s",
			fr.context(), expect)
	}
}

func condApply(fr *frame, args []Value) Value {
	mid := fr.aux.(int)
	if len(args) > mid {
		// The trailing arg is the action of the first truthy condition.
		return args[len(args)-1]
	}
	return Unit
}

func init() {
	registerBuiltinForm(&form{
		name:              symbol.Intern("cond"),
		exact:             false,
		numArgs:           2,
		validateOnResolve: true,
		canPrepare:        condCanPrepare,
		sortArgs:          condSortArgs,
		prepare:           condPrepare,
		validate:          condValidate,
		apply:             condApply,
	})
}
