/*
File    : rlox/internal/callable/function.go
Package : callable
*/

// Package callable implements the Callable values that user code can
// invoke: functions declared with `fun`, closing over the environment
// that was current at their declaration.
package callable

import (
	"fmt"

	"github.com/akashmaji946/rlox/internal/environment"
	"github.com/akashmaji946/rlox/internal/lexer"
	"github.com/akashmaji946/rlox/internal/parser"
	"github.com/akashmaji946/rlox/internal/value"
)

// FunctionRuntime is the slice of the evaluator a UserFunction needs to
// run its body. interp.Evaluator satisfies this structurally, callable
// never imports interp, so there is no cycle.
type FunctionRuntime interface {
	// ExecuteBlock runs stmts with env as the current scope, and reports
	// didReturn (with the returned value) if a ReturnStmt unwound out of it.
	ExecuteBlock(stmts []parser.Stmt, env *environment.Environment) (returnValue value.Value, didReturn bool, err error)
}

// UserFunction is a `fun`-declared function value. Its Closure is the
// environment in effect at the point of declaration, this is what makes
// the counter-closure pattern in spec.md's end-to-end scenarios work:
// every call shares and mutates the same captured scope rather than a
// copy of it.
type UserFunction struct {
	Decl    *parser.FunctionStmt
	Closure *environment.Environment
}

// New wraps decl as a callable value closing over closure.
func New(decl *parser.FunctionStmt, closure *environment.Environment) *UserFunction {
	return &UserFunction{Decl: decl, Closure: closure}
}

func (f *UserFunction) String() string { return fmt.Sprintf("<fn %s>", f.Decl.Name.Lexeme) }
func (f *UserFunction) Truthy() bool   { return true }
func (f *UserFunction) Arity() int     { return len(f.Decl.Params) }

// Call binds args to the declared parameters in a fresh environment
// enclosing the closure, then runs the body. rt must implement
// FunctionRuntime; any other Runtime is a programming error, not a user
// error, so Call panics rather than returning it as a RuntimeError.
func (f *UserFunction) Call(rt value.Runtime, args []value.Value) (value.Value, error) {
	run, ok := rt.(FunctionRuntime)
	if !ok {
		panic("callable: Runtime does not implement FunctionRuntime")
	}

	callEnv := environment.New(f.Closure)
	for i, param := range f.Decl.Params {
		callEnv.Define(param.Lexeme, args[i])
	}

	result, didReturn, err := run.ExecuteBlock(f.Decl.Body, callEnv)
	if err != nil {
		return nil, err
	}
	if didReturn {
		return result, nil
	}
	return value.Instance, nil
}

// Name identifies the binding this function was declared under.
func (f *UserFunction) Name() lexer.Token { return f.Decl.Name }
