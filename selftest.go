package main

import (
	"fmt"

	"github.com/grailbio/lal/lal"
	"github.com/grailbio/lal/termutil"
)

// selfTest is a scenario executed by "lal -test": a program, the expected
// final value in source form, and the expected print output.
type selfTest struct {
	src     string
	want    string
	wantOut []string
}

var selfTests = []selfTest{
	{src: `(+ 1 2)`, want: `3`},
	{src: `(sqrt (+ 2 2))`, want: `2.0`},
	{src: `(let 'x 1 'y 2 (+ x y))`, want: `3`},
	{src: `(defun 'B 'y (+ y 10)) (defun 'A 'x (+ (B x) 1)) (A 24)`, want: `35`},
	{src: `(cond (eq 1 2) (+ 1) (eq 2 2) (+ 2))`, want: `2`},
	{src: `(print "The result is:") (+ 1 2)`, want: `3`,
		wantOut: []string{"The result is:"}},
	{src: `(% 5 3)`, want: `2`},
	{src: `(let 'ls (list 1 2) (+ *ls))`, want: `3`},
	{src: `(defun 'f 'otherf '* (otherf **)) (f + 1 2 3)`, want: `6`},
	{src: `((+ +) 2 2)`, want: `4`},
	{src: `(if (eq 1 1) (+ 1))`, want: `1`},
	{src: `(not (eq 1 0))`, want: `true`},
}

// runSelfTest runs the embedded scenarios and returns the process exit code.
func runSelfTest() int {
	failed := 0
	for _, test := range selfTests {
		out := termutil.NewBufferPrinter()
		sess := newSession(lal.Opts{Out: out})
		val, err := sess.Run(test.src)
		switch {
		case err != nil:
			fmt.Printf("FAIL %s: %v\n", test.src, err)
			failed++
			continue
		case val.String() != test.want:
			fmt.Printf("FAIL %s: got %s, want %s\n", test.src, val.String(), test.want)
			failed++
			continue
		}
		lines := out.Lines()
		ok := len(lines) == len(test.wantOut)
		if ok {
			for i := range lines {
				if lines[i] != test.wantOut[i] {
					ok = false
					break
				}
			}
		}
		if !ok {
			fmt.Printf("FAIL %s: output %q, want %q\n", test.src, lines, test.wantOut)
			failed++
			continue
		}
		fmt.Printf("ok   %s\n", test.src)
	}
	if failed > 0 {
		fmt.Printf("%d of %d tests failed\n", failed, len(selfTests))
		return 1
	}
	fmt.Printf("all %d tests passed\n", len(selfTests))
	return 0
}
