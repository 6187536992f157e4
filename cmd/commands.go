// Package cmd implements the interactive REPL loop.
package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/grailbio/base/log"
	"github.com/grailbio/lal/lal"
	"github.com/grailbio/lal/termutil"
	"github.com/yasushi-saito/readline"
)

// command defines a REPL command.
type command struct {
	callback func(args string)
	help     string
}

// Env captures all the state needed to run REPL commands. Thread compatible.
type Env struct {
	// sess is the LAL session that runs the programs. It is shared across
	// inputs, so defuns accumulate.
	sess        *lal.Session
	interactive bool
	// To implement "help", "quit", etc.
	builtinCmds map[string]command
}

// New creates a new environment. Arg interactive should be true if this is
// an interactive commandline session.
func New(sess *lal.Session, interactive bool) *Env {
	env := &Env{
		sess:        sess,
		interactive: interactive,
	}
	env.builtinCmds = map[string]command{
		"quit": {
			callback: env.runQuit,
			help: `Usage: quit

  Quit terminates LAL.`},
		"help": {
			callback: env.runHelp,
			help: `Usage: help [command]

  Help shows help messages.`},
	}
	return env
}

// Loop reads inputs and evaluates them until EOF or "quit".
func (c *Env) Loop() {
	for {
		line, err := readline.Readline("lal> ")
		if err != nil {
			fmt.Printf("\nreadline: %v\n", err)
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if err := readline.AddHistory(line); err != nil {
			log.Error.Printf("readline.AddHistory: %v", err)
		}
		fields := strings.SplitN(line, " ", 2)
		if cmd, ok := c.builtinCmds[fields[0]]; ok {
			args := ""
			if len(fields) > 1 {
				args = fields[1]
			}
			cmd.callback(args)
			continue
		}
		c.runEval(line)
	}
}

func (c *Env) runEval(line string) {
	val, err := c.sess.Run(line)
	if err != nil {
		log.Error.Printf("%v", err)
		return
	}
	out := termutil.NewBatchPrinter(os.Stdout)
	val.Print(lal.PrintArgs{Out: out, Mode: lal.PrintValues})
	out.WriteString("\n")
}

func (c *Env) runQuit(args string) {
	os.Exit(0)
}

func (c *Env) runHelp(args string) {
	args = strings.TrimSpace(args)
	if cmd, ok := c.builtinCmds[args]; ok {
		fmt.Println(cmd.help)
		return
	}
	var names []string
	for name := range c.builtinCmds {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Printf("Commands: %s\n", strings.Join(names, ", "))
	fmt.Println(`Anything else is evaluated as a LAL program, e.g. (+ 1 2).`)
}
