/*
File    : rlox/internal/session/session.go
Package : session
*/

// Package session owns the lifetime of a single rlox global environment
// across repeated source submissions, one REPL line at a time, or one
// whole file. It is the seam between internal/interp's tree-walker and
// the external interfaces (internal/repl, cmd/rlox) that feed it text.
package session

import (
	"github.com/akashmaji946/rlox/internal/callable"
	"github.com/akashmaji946/rlox/internal/interp"
	"github.com/akashmaji946/rlox/internal/lexer"
	"github.com/akashmaji946/rlox/internal/parser"
)

// Session holds one Evaluator and the global bindings that persist across
// every RunSource call made against it.
type Session struct {
	eval *interp.Evaluator
}

// New creates a Session with a fresh global environment, pre-seeded with
// the native `clock` function.
func New(print interp.Printer) *Session {
	s := &Session{eval: interp.New(print)}
	s.eval.Globals.Define("clock", callable.Clock())
	return s
}

// RunSource lexes, parses, and evaluates text against the session's
// persistent global scope. A parse error is reported but does not stop
// the run: the parser already skips the broken statement and recovers
// at the next one, so every statement that did parse is still
// evaluated. It returns every error encountered, parse errors first, in
// the order they were produced, followed by a runtime error if one
// occurred.
func (s *Session) RunSource(text string) []error {
	toks := scan(text)

	p := parser.New(toks)
	stmts, parseErrs := p.Parse()

	var errs []error
	errs = append(errs, parseErrs...)

	if err := s.eval.Interpret(stmts); err != nil {
		errs = append(errs, err)
	}
	return errs
}

// scan runs the lexer to completion and returns every token. An Unknown
// token is not an error in its own right, LexingError is declared but
// not presently raised, an unknown character is instead left for the
// parser to trip over as a downstream "Expect expression." error.
func scan(text string) []lexer.Token {
	lx := lexer.New(text)
	var toks []lexer.Token

	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == lexer.EOF {
			break
		}
	}
	return toks
}
