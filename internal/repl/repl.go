/*
File    : rlox/internal/repl/repl.go
Package : repl
*/

// Package repl implements the interactive Read-Eval-Print Loop for rlox.
// It wraps a single internal/session.Session so that variable and
// function declarations persist across lines, the way a REPL user
// expects, and gives colored feedback: a colored startup banner,
// red error text, nothing extra on success (rlox has no implicit
// expression-result echo, only `print` produces output).
package repl

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/rlox/internal/session"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// historyPath is where REPL line history is persisted between sessions.
const historyPath = ".dev-data/history"

const banner = `       _
 _ __ | | _____  __
| '__| |/ _ \ \/ /
| |  | | (_) >  <
|_|  |_|\___/_/\_\`

// Repl is an interactive rlox session bound to a particular prompt and
// banner text.
type Repl struct {
	Prompt  string
	Version string
}

// New creates a Repl with the given prompt (e.g. "rlox> ").
func New(prompt, version string) *Repl {
	return &Repl{Prompt: prompt, Version: version}
}

// printBanner writes the startup banner and usage hints to writer.
func (r *Repl) printBanner(writer io.Writer) {
	line := strings.Repeat("-", 40)
	blueColor.Fprintf(writer, "%s\n", line)
	greenColor.Fprintf(writer, "%s\n", banner)
	blueColor.Fprintf(writer, "%s\n", line)
	yellowColor.Fprintf(writer, "rlox %s\n", r.Version)
	blueColor.Fprintf(writer, "%s\n", line)
	cyanColor.Fprintln(writer, "Type rlox statements and press enter.")
	cyanColor.Fprintln(writer, "Type '.exit' to quit.")
	blueColor.Fprintf(writer, "%s\n", line)
}

// Start runs the REPL loop against writer until the user exits (`.exit`,
// Ctrl+D, or a readline error). Each accepted line is fed to a shared
// session.Session, so declarations from earlier lines remain visible.
func (r *Repl) Start(writer io.Writer) {
	r.printBanner(writer)

	if dir := filepath.Dir(historyPath); dir != "." {
		os.MkdirAll(dir, 0o755)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      r.Prompt,
		HistoryFile: historyPath,
	})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	sess := session.New(func(line string) {
		io.WriteString(writer, line+"\n")
	})

	for {
		line, err := rl.Readline()
		if err != nil {
			io.WriteString(writer, "Good bye!\n")
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			io.WriteString(writer, "Good bye!\n")
			return
		}

		if errs := sess.RunSource(line); len(errs) > 0 {
			for _, e := range errs {
				redColor.Fprintf(writer, "%s\n", e.Error())
			}
		}
	}
}
