/*
File    : rlox/internal/interp/evaluator.go
Package : interp
*/

// Package interp walks the statement and expression trees produced by
// internal/parser, evaluating them against an internal/environment scope
// chain. It is the single place that knows how rlox's dynamic semantics
// work: truthiness, operand type checks, call protocol, and control flow.
package interp

import (
	"github.com/akashmaji946/rlox/internal/callable"
	"github.com/akashmaji946/rlox/internal/environment"
	"github.com/akashmaji946/rlox/internal/lexer"
	"github.com/akashmaji946/rlox/internal/parser"
	"github.com/akashmaji946/rlox/internal/rlerr"
	"github.com/akashmaji946/rlox/internal/value"
)

// Printer receives the text a `print` statement produces, one line at a
// time, without a trailing newline; the Printer adds it. internal/repl and
// cmd/rlox supply Printers that write to their writer or to stdout.
type Printer func(line string)

// Evaluator walks statements and expressions against a mutable global
// environment. A single Evaluator is reused across every line typed at a
// REPL, so that top-level declarations persist between inputs.
type Evaluator struct {
	Globals *environment.Environment
	env     *environment.Environment
	print   Printer
}

// New creates an Evaluator whose current and global scope are the same
// fresh environment.
func New(print Printer) *Evaluator {
	g := environment.New(nil)
	return &Evaluator{Globals: g, env: g, print: print}
}

// returnSignal carries a `return` statement's value up through the Go
// call stack until it reaches the Call that is executing the enclosing
// function body. It implements error only so it can travel through
// existing error-returning signatures, but it is never reported to a
// user and must never escape Interpret or Call, reaching the top
// uncaught would be an interpreter bug, not a user-facing RuntimeError.
type returnSignal struct {
	value value.Value
}

func (r *returnSignal) Error() string {
	return "uncaught return signal (interpreter bug)"
}

// Interpret runs a full program's statements against the evaluator's
// current scope. It stops at the first runtime error.
func (ev *Evaluator) Interpret(stmts []parser.Stmt) error {
	for _, s := range stmts {
		if err := ev.execute(s); err != nil {
			if _, isReturn := err.(*returnSignal); isReturn {
				continue // bare top-level `return`; nothing to unwind into
			}
			return err
		}
	}
	return nil
}

func (ev *Evaluator) execute(s parser.Stmt) error {
	switch st := s.(type) {
	case *parser.ExpressionStmt:
		_, err := ev.evaluate(st.Expr)
		return err

	case *parser.PrintStmt:
		v, err := ev.evaluate(st.Expr)
		if err != nil {
			return err
		}
		ev.print(v.String())
		return nil

	case *parser.VarStmt:
		var v value.Value = value.Instance
		if st.Init != nil {
			var err error
			v, err = ev.evaluate(st.Init)
			if err != nil {
				return err
			}
		}
		ev.env.Define(st.Name.Lexeme, v)
		return nil

	case *parser.BlockStmt:
		rv, didReturn, err := ev.ExecuteBlock(st.Stmts, environment.New(ev.env))
		if err != nil {
			return err
		}
		if didReturn {
			// Re-wrap as a signal so it keeps unwinding through whatever
			// called this block (another block, an if/while body, ...)
			// until it reaches the function-call boundary in Call.
			return &returnSignal{value: rv}
		}
		return nil

	case *parser.IfStmt:
		cond, err := ev.evaluate(st.Cond)
		if err != nil {
			return err
		}
		if cond.Truthy() {
			return ev.execute(st.Then)
		}
		if st.Else != nil {
			return ev.execute(st.Else)
		}
		return nil

	case *parser.WhileStmt:
		for {
			cond, err := ev.evaluate(st.Cond)
			if err != nil {
				return err
			}
			if !cond.Truthy() {
				return nil
			}
			if err := ev.execute(st.Body); err != nil {
				return err
			}
		}

	case *parser.FunctionStmt:
		fn := callable.New(st, ev.env)
		ev.env.Define(st.Name.Lexeme, fn)
		return nil

	case *parser.ReturnStmt:
		var v value.Value = value.Instance
		if st.Value != nil {
			var err error
			v, err = ev.evaluate(st.Value)
			if err != nil {
				return err
			}
		}
		return &returnSignal{value: v}

	default:
		return rlerr.NewRuntimeError(0, "unhandled statement type %T", s)
	}
}

// ExecuteBlock runs stmts in scope, satisfying callable.FunctionRuntime
// so UserFunction.Call can ask the evaluator to run a body without
// importing this package. The caller's current scope is restored before
// returning, even on error, so a panic-free failure path never leaves
// the evaluator pointed at a scope that is about to go out of scope
// itself.
func (ev *Evaluator) ExecuteBlock(stmts []parser.Stmt, scope *environment.Environment) (value.Value, bool, error) {
	previous := ev.env
	ev.env = scope
	defer func() { ev.env = previous }()

	for _, s := range stmts {
		if err := ev.execute(s); err != nil {
			if rs, ok := err.(*returnSignal); ok {
				return rs.value, true, nil
			}
			return nil, false, err
		}
	}
	return nil, false, nil
}

func runtimeErr(tok lexer.Token, format string, args ...interface{}) error {
	return rlerr.NewRuntimeError(tok.Line, format, args...)
}
