/*
File    : rlox/internal/parser/parser_statements.go
Package : parser
*/
package parser

import "github.com/akashmaji946/rlox/internal/lexer"

// declaration parses one top-level or block-level item: a var
// declaration, a function declaration, or any other statement. On a
// parse error it synchronizes and returns nil so the caller can skip the
// broken declaration and keep parsing the rest of the program.
func (p *Parser) declaration() Stmt {
	errsBefore := len(p.errs)

	var s Stmt
	switch {
	case p.match(lexer.Var):
		s = p.varDeclaration()
	case p.match(lexer.Fun):
		s = p.functionDeclaration("function")
	default:
		s = p.statement()
	}

	if len(p.errs) > errsBefore {
		p.synchronize()
		return nil
	}
	return s
}

func (p *Parser) varDeclaration() Stmt {
	name, ok := p.consume(lexer.Identifier, "Expect variable name.")
	if !ok {
		return nil
	}

	var init Expr
	if p.match(lexer.Equal) {
		init = p.expression()
	}

	if _, ok := p.consume(lexer.Semicolon, "Expect ';' after variable declaration."); !ok {
		return nil
	}
	return &VarStmt{Name: name, Init: init}
}

func (p *Parser) functionDeclaration(kind string) Stmt {
	name, ok := p.consume(lexer.Identifier, "Expect "+kind+" name.")
	if !ok {
		return nil
	}
	if _, ok := p.consume(lexer.LeftParen, "Expect '(' after "+kind+" name."); !ok {
		return nil
	}

	var params []lexer.Token
	if !p.check(lexer.RightParen) {
		for {
			if len(params) >= 255 {
				p.recordError(p.peek(), "Can't have more than 255 parameters.")
			}
			param, ok := p.consume(lexer.Identifier, "Expect parameter name.")
			if !ok {
				return nil
			}
			params = append(params, param)
			if !p.match(lexer.Comma) {
				break
			}
		}
	}
	if _, ok := p.consume(lexer.RightParen, "Expect ')' after parameters."); !ok {
		return nil
	}

	if _, ok := p.consume(lexer.LeftBrace, "Expect '{' before "+kind+" body."); !ok {
		return nil
	}
	body := p.block()

	return &FunctionStmt{Name: name, Params: params, Body: body}
}

func (p *Parser) statement() Stmt {
	switch {
	case p.match(lexer.Print):
		return p.printStatement()
	case p.match(lexer.LeftBrace):
		return &BlockStmt{Stmts: p.block()}
	case p.match(lexer.If):
		return p.ifStatement()
	case p.match(lexer.While):
		return p.whileStatement()
	case p.match(lexer.For):
		return p.forStatement()
	case p.match(lexer.Return):
		return p.returnStatement()
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) printStatement() Stmt {
	expr := p.expression()
	if _, ok := p.consume(lexer.Semicolon, "Expect ';' after value."); !ok {
		return nil
	}
	return &PrintStmt{Expr: expr}
}

func (p *Parser) expressionStatement() Stmt {
	expr := p.expression()
	if _, ok := p.consume(lexer.Semicolon, "Expect ';' after expression."); !ok {
		return nil
	}
	return &ExpressionStmt{Expr: expr}
}

// block parses `{ declaration* }`. The opening brace has already been
// consumed by the caller.
func (p *Parser) block() []Stmt {
	var stmts []Stmt
	for !p.check(lexer.RightBrace) && !p.isAtEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.consume(lexer.RightBrace, "Expect '}' after block.")
	return stmts
}

func (p *Parser) returnStatement() Stmt {
	keyword := p.previous()
	var value Expr
	if !p.check(lexer.Semicolon) {
		value = p.expression()
	}
	if _, ok := p.consume(lexer.Semicolon, "Expect ';' after return value."); !ok {
		return nil
	}
	return &ReturnStmt{Keyword: keyword, Value: value}
}
