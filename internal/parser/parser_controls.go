/*
File    : rlox/internal/parser/parser_controls.go
Package : parser
*/
package parser

import "github.com/akashmaji946/rlox/internal/lexer"

func (p *Parser) ifStatement() Stmt {
	if _, ok := p.consume(lexer.LeftParen, "Expect '(' after 'if'."); !ok {
		return nil
	}
	cond := p.expression()
	if _, ok := p.consume(lexer.RightParen, "Expect ')' after if condition."); !ok {
		return nil
	}

	then := p.statement()
	var els Stmt
	if p.match(lexer.Else) {
		els = p.statement()
	}
	return &IfStmt{Cond: cond, Then: then, Else: els}
}

func (p *Parser) whileStatement() Stmt {
	if _, ok := p.consume(lexer.LeftParen, "Expect '(' after 'while'."); !ok {
		return nil
	}
	cond := p.expression()
	if _, ok := p.consume(lexer.RightParen, "Expect ')' after condition."); !ok {
		return nil
	}
	body := p.statement()
	return &WhileStmt{Cond: cond, Body: body}
}

// forStatement desugars `for (init; cond; incr) body` into the equivalent
// block-and-while form at parse time: there is no dedicated For AST node,
// so the evaluator never needs to know `for` loops exist at all.
//
//	{ init; while (cond) { body; incr; } }
func (p *Parser) forStatement() Stmt {
	if _, ok := p.consume(lexer.LeftParen, "Expect '(' after 'for'."); !ok {
		return nil
	}

	var initializer Stmt
	switch {
	case p.match(lexer.Semicolon):
		initializer = nil
	case p.match(lexer.Var):
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var cond Expr
	if !p.check(lexer.Semicolon) {
		cond = p.expression()
	}
	if _, ok := p.consume(lexer.Semicolon, "Expect ';' after loop condition."); !ok {
		return nil
	}

	var increment Expr
	if !p.check(lexer.RightParen) {
		increment = p.expression()
	}
	if _, ok := p.consume(lexer.RightParen, "Expect ')' after for clauses."); !ok {
		return nil
	}

	body := p.statement()

	if increment != nil {
		body = &BlockStmt{Stmts: []Stmt{body, &ExpressionStmt{Expr: increment}}}
	}
	if cond == nil {
		cond = &LiteralExpr{Value: true}
	}
	body = &WhileStmt{Cond: cond, Body: body}

	if initializer != nil {
		body = &BlockStmt{Stmts: []Stmt{initializer, body}}
	}
	return body
}
