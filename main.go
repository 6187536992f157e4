package main

import (
	"flag"
	"fmt"
	"os"
	"syscall"

	"github.com/grailbio/base/log"
	"github.com/grailbio/base/must"
	"github.com/grailbio/lal/cmd"
	"github.com/grailbio/lal/lal"
	"github.com/grailbio/lal/lib"
	"github.com/grailbio/lal/termutil"
	"github.com/yasushi-saito/readline"
	"golang.org/x/crypto/ssh/terminal"
)

var testFlag = flag.Bool("test", false, "Run the embedded self-test programs, then exit.")

// newSession creates a session with the prelude loaded.
func newSession(opts lal.Opts) *lal.Session {
	sess := lal.NewSession(opts)
	_, err := sess.Run(lib.Script)
	must.Nil(err, "load lib")
	return sess
}

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	flag.Parse()
	if *testFlag {
		os.Exit(runSelfTest())
	}
	if flag.NArg() == 0 {
		if terminal.IsTerminal(syscall.Stdin) && terminal.IsTerminal(syscall.Stdout) {
			if err := readline.Init(readline.Opts{Name: "lal", ExpandHistory: true}); err != nil {
				log.Error.Printf("readline.Init: %v", err)
			}
			fmt.Println("LAL. Type \"help\" for help.")
			cmd.New(newSession(lal.Opts{}), true).Loop()
			return
		}
		fmt.Fprintln(os.Stderr, "Filename is required if not running tests.")
		os.Exit(1)
	}
	sess := newSession(lal.Opts{})
	val, err := sess.EvalFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	out := termutil.NewBatchPrinter(os.Stdout)
	val.Print(lal.PrintArgs{Out: out, Mode: lal.PrintValues})
	out.WriteString("\n")
}
