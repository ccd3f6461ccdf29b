/*
File    : rlox/cmd/rlox/main.go
*/

// Command rlox is the interpreter's entry point: zero arguments starts an
// interactive REPL, one argument runs that file as an rlox script, and
// anything else prints a usage message and exits 64 (EX_USAGE).
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/akashmaji946/rlox/internal/repl"
	"github.com/akashmaji946/rlox/internal/session"
)

const version = "0.1.0"

func main() {
	root := &cobra.Command{
		Use:                   "rlox [script]",
		Short:                 "rlox is a tree-walking interpreter",
		Args:                  cobra.MaximumNArgs(1),
		DisableFlagsInUseLine: true,
		Version:               version,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return runFile(args[0])
			}
			runPrompt()
			return nil
		},
	}

	if err := root.Execute(); err != nil {
		// cobra already printed the usage/error; match the original
		// `Usage: rlox [script]` exit code.
		os.Exit(64)
	}
}

// runFile reads path and executes it as a single rlox program. Any lex,
// parse, or runtime error is reported to stderr, but does not alter the
// process's exit code: 0 normal, 64 usage are the only exit codes in
// this design.
func runFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read %s: %w", path, err)
	}

	red := color.New(color.FgRed)
	sess := session.New(func(line string) { fmt.Println(line) })

	for _, e := range sess.RunSource(string(src)) {
		red.Fprintln(os.Stderr, e.Error())
	}
	return nil
}

func runPrompt() {
	r := repl.New("rlox> ", version)
	r.Start(os.Stdout)
}
