/*
File    : rlox/internal/parser/parser_functions.go
Package : parser
*/
package parser

import "github.com/akashmaji946/rlox/internal/lexer"

// call parses a primary expression followed by zero or more call
// suffixes: `f(a, b)(c)` chains, each producing its own CallExpr wrapping
// the previous one.
func (p *Parser) call() Expr {
	expr := p.primary()

	for {
		if p.match(lexer.LeftParen) {
			expr = p.finishCall(expr)
		} else {
			break
		}
	}
	return expr
}

func (p *Parser) finishCall(callee Expr) Expr {
	var args []Expr
	if !p.check(lexer.RightParen) {
		for {
			if len(args) >= 255 {
				p.recordError(p.peek(), "Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(lexer.Comma) {
				break
			}
		}
	}
	paren, ok := p.consume(lexer.RightParen, "Expect ')' after arguments.")
	if !ok {
		return callee
	}
	return &CallExpr{Callee: callee, Paren: paren, Args: args}
}

func (p *Parser) primary() Expr {
	switch {
	case p.match(lexer.False):
		return &LiteralExpr{Value: false}
	case p.match(lexer.True):
		return &LiteralExpr{Value: true}
	case p.match(lexer.Nil):
		return &LiteralExpr{Value: nil}
	case p.match(lexer.Number):
		return &LiteralExpr{Value: p.previous().NumberValue()}
	case p.match(lexer.String):
		return &LiteralExpr{Value: p.previous().Lexeme}
	case p.match(lexer.UnterminatedString):
		p.recordError(p.previous(), "Unterminated string.")
		return &LiteralExpr{Value: ""}
	case p.match(lexer.Identifier):
		return &VariableExpr{Name: p.previous()}
	case p.match(lexer.LeftParen):
		expr := p.expression()
		p.consume(lexer.RightParen, "Expect ')' after expression.")
		return &GroupingExpr{Inner: expr}
	default:
		p.recordError(p.peek(), "Expect expression.")
		p.advance()
		return &LiteralExpr{Value: nil}
	}
}
