/*
File    : rlox/internal/interp/binary.go
Package : interp
*/
package interp

import (
	"github.com/akashmaji946/rlox/internal/lexer"
	"github.com/akashmaji946/rlox/internal/parser"
	"github.com/akashmaji946/rlox/internal/value"
)

// evalBinary implements arithmetic, `+`'s dual number/string role,
// comparison, and equality. Equality (`==`/`!=`) never errors, any two
// values can be compared, and differently-typed operands simply compare
// unequal.
func (ev *Evaluator) evalBinary(ex *parser.BinaryExpr) (value.Value, error) {
	left, err := ev.evaluate(ex.Left)
	if err != nil {
		return nil, err
	}
	right, err := ev.evaluate(ex.Right)
	if err != nil {
		return nil, err
	}

	switch ex.Op.Kind {
	case lexer.EqualEqual:
		return value.Bool(value.Equal(left, right)), nil
	case lexer.BangEqual:
		return value.Bool(!value.Equal(left, right)), nil

	case lexer.Plus:
		return evalPlus(ex.Op, left, right)

	case lexer.Minus, lexer.Slash, lexer.Star,
		lexer.Greater, lexer.GreaterEqual, lexer.Less, lexer.LessEqual:
		ln, lok := left.(value.Number)
		rn, rok := right.(value.Number)
		if !lok || !rok {
			return nil, runtimeErr(ex.Op, "Operands must be numbers")
		}
		return numericOp(ex.Op, ln, rn)

	default:
		return nil, runtimeErr(ex.Op, "unhandled binary operator %s", ex.Op.Lexeme)
	}
}

// evalPlus handles `+`'s two legal shapes: number+number adds, and
// string+string concatenates. Anything else, including a number and a
// string, is an error.
func evalPlus(op lexer.Token, left, right value.Value) (value.Value, error) {
	if ln, ok := left.(value.Number); ok {
		if rn, ok := right.(value.Number); ok {
			return ln + rn, nil
		}
	}
	if ls, ok := left.(value.String); ok {
		if rs, ok := right.(value.String); ok {
			return ls + rs, nil
		}
	}
	return nil, runtimeErr(op, "Operands must be two numbers or two strings")
}

func numericOp(op lexer.Token, l, r value.Number) (value.Value, error) {
	switch op.Kind {
	case lexer.Minus:
		return l - r, nil
	case lexer.Slash:
		return l / r, nil
	case lexer.Star:
		return l * r, nil
	case lexer.Greater:
		return value.Bool(l > r), nil
	case lexer.GreaterEqual:
		return value.Bool(l >= r), nil
	case lexer.Less:
		return value.Bool(l < r), nil
	case lexer.LessEqual:
		return value.Bool(l <= r), nil
	default:
		return nil, runtimeErr(op, "unhandled numeric operator %s", op.Lexeme)
	}
}
