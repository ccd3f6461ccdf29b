/*
File    : rlox/internal/parser/parser_precedence.go
Package : parser
*/

// Expression parsing follows the standard precedence ladder, lowest to
// highest: assignment, or, and, equality, comparison, term, factor,
// unary, call, primary. Each level's method parses everything at its own
// precedence and below, recursing upward for its operands.
package parser

import "github.com/akashmaji946/rlox/internal/lexer"

func (p *Parser) expression() Expr {
	return p.assignment()
}

// assignment is right-associative and is not itself a binary operator:
// the left-hand side is parsed as a full `or` expression, and only
// afterward checked for being a valid assignment target (a bare
// variable). Anything else on the left of `=` is a parse error.
func (p *Parser) assignment() Expr {
	expr := p.or()

	if p.match(lexer.Equal) {
		equals := p.previous()
		value := p.assignment()

		if v, ok := expr.(*VariableExpr); ok {
			return &AssignExpr{Name: v.Name, Value: value}
		}
		p.recordError(equals, "Invalid assignment target.")
	}
	return expr
}

func (p *Parser) or() Expr {
	expr := p.and()
	for p.match(lexer.Or) {
		op := p.previous()
		right := p.and()
		expr = &LogicalExpr{Op: op, Left: expr, Right: right}
	}
	return expr
}

func (p *Parser) and() Expr {
	expr := p.equality()
	for p.match(lexer.And) {
		op := p.previous()
		right := p.equality()
		expr = &LogicalExpr{Op: op, Left: expr, Right: right}
	}
	return expr
}

func (p *Parser) equality() Expr {
	expr := p.comparison()
	for p.match(lexer.BangEqual, lexer.EqualEqual) {
		op := p.previous()
		right := p.comparison()
		expr = &BinaryExpr{Op: op, Left: expr, Right: right}
	}
	return expr
}

func (p *Parser) comparison() Expr {
	expr := p.term()
	for p.match(lexer.Greater, lexer.GreaterEqual, lexer.Less, lexer.LessEqual) {
		op := p.previous()
		right := p.term()
		expr = &BinaryExpr{Op: op, Left: expr, Right: right}
	}
	return expr
}

func (p *Parser) term() Expr {
	expr := p.factor()
	for p.match(lexer.Minus, lexer.Plus) {
		op := p.previous()
		right := p.factor()
		expr = &BinaryExpr{Op: op, Left: expr, Right: right}
	}
	return expr
}

func (p *Parser) factor() Expr {
	expr := p.unary()
	for p.match(lexer.Slash, lexer.Star) {
		op := p.previous()
		right := p.unary()
		expr = &BinaryExpr{Op: op, Left: expr, Right: right}
	}
	return expr
}

func (p *Parser) unary() Expr {
	if p.match(lexer.Bang, lexer.Minus) {
		op := p.previous()
		operand := p.unary()
		return &UnaryExpr{Op: op, Operand: operand}
	}
	return p.call()
}
