/*
File    : rlox/internal/interp/evaluate.go
Package : interp
*/
package interp

import (
	"github.com/akashmaji946/rlox/internal/lexer"
	"github.com/akashmaji946/rlox/internal/parser"
	"github.com/akashmaji946/rlox/internal/rlerr"
	"github.com/akashmaji946/rlox/internal/value"
)

func (ev *Evaluator) evaluate(e parser.Expr) (value.Value, error) {
	switch ex := e.(type) {
	case *parser.LiteralExpr:
		return literalValue(ex.Value), nil

	case *parser.GroupingExpr:
		return ev.evaluate(ex.Inner)

	case *parser.VariableExpr:
		v, err := ev.env.Get(ex.Name.Lexeme)
		if err != nil {
			return nil, runtimeErr(ex.Name, "%s", err.Error())
		}
		return v, nil

	case *parser.AssignExpr:
		v, err := ev.evaluate(ex.Value)
		if err != nil {
			return nil, err
		}
		if err := ev.env.Assign(ex.Name.Lexeme, v); err != nil {
			return nil, runtimeErr(ex.Name, "%s", err.Error())
		}
		return v, nil

	case *parser.UnaryExpr:
		return ev.evalUnary(ex)

	case *parser.LogicalExpr:
		return ev.evalLogical(ex)

	case *parser.BinaryExpr:
		return ev.evalBinary(ex)

	case *parser.CallExpr:
		return ev.evalCall(ex)

	default:
		return nil, rlerr.NewRuntimeError(0, "unhandled expression type %T", e)
	}
}

// literalValue converts a LiteralExpr's raw interface{} payload (set by
// the parser from a token, or nil/bool for the nil/true/false keywords)
// into a Value.
func literalValue(raw interface{}) value.Value {
	switch v := raw.(type) {
	case nil:
		return value.Instance
	case bool:
		return value.Bool(v)
	case float64:
		return value.Number(v)
	case string:
		return value.String(v)
	default:
		return value.Instance
	}
}

// evalUnary implements `-e` and `!e`. Negation requires a number; `!`
// applies to any value via truthiness and always yields the corrected
// `!truthy(e)` result (see SPEC_FULL.md's note on the historical `!`
// bug, which returned `truthy(e)` without negating it).
func (ev *Evaluator) evalUnary(ex *parser.UnaryExpr) (value.Value, error) {
	operand, err := ev.evaluate(ex.Operand)
	if err != nil {
		return nil, err
	}

	switch ex.Op.Kind {
	case lexer.Minus:
		n, ok := operand.(value.Number)
		if !ok {
			return nil, runtimeErr(ex.Op, "Operand must be a number")
		}
		return -n, nil
	case lexer.Bang:
		return value.Bool(!operand.Truthy()), nil
	default:
		return nil, runtimeErr(ex.Op, "unhandled unary operator %s", ex.Op.Lexeme)
	}
}

// evalLogical implements `and`/`or` with short-circuit evaluation: the
// right operand is only evaluated if the left doesn't already determine
// the result. The result is whichever operand value decided it, not a
// coerced Bool.
func (ev *Evaluator) evalLogical(ex *parser.LogicalExpr) (value.Value, error) {
	left, err := ev.evaluate(ex.Left)
	if err != nil {
		return nil, err
	}

	if ex.Op.Kind == lexer.Or {
		if left.Truthy() {
			return left, nil
		}
	} else {
		if !left.Truthy() {
			return left, nil
		}
	}
	return ev.evaluate(ex.Right)
}

func (ev *Evaluator) evalCall(ex *parser.CallExpr) (value.Value, error) {
	callee, err := ev.evaluate(ex.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]value.Value, 0, len(ex.Args))
	for _, a := range ex.Args {
		v, err := ev.evaluate(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	fn, ok := callee.(value.Callable)
	if !ok {
		return nil, runtimeErr(ex.Paren, "Can only call functions and classes")
	}
	if len(args) != fn.Arity() {
		return nil, runtimeErr(ex.Paren, "Expected %d arguments but got %d.", fn.Arity(), len(args))
	}
	return fn.Call(ev, args)
}
