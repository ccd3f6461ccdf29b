/*
File    : rlox/cmd/astprint/main.go
*/

// Command astprint is a debug tool: it lexes and parses a snippet of
// rlox source and prints its statement tree as parenthesized,
// indented text, one line per node. It never evaluates anything, it
// exists to let a developer inspect what internal/parser actually built
// for a given input.
package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/akashmaji946/rlox/internal/lexer"
	"github.com/akashmaji946/rlox/internal/parser"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: astprint <file>")
		os.Exit(64)
	}

	src, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	toks := lexer.New(string(src)).All()
	toks = append(toks, lexer.Token{Kind: lexer.EOF})

	p := parser.New(toks)
	stmts, errs := p.Parse()
	for _, e := range errs {
		fmt.Fprintln(os.Stderr, e)
	}

	v := &printVisitor{}
	for _, s := range stmts {
		v.printStmt(s)
	}
	fmt.Print(v.buf.String())
}

const indentSize = 2

// printVisitor walks statement and expression trees, writing a
// parenthesized, indented line per node to buf.
type printVisitor struct {
	buf    bytes.Buffer
	indent int
}

func (v *printVisitor) line(format string, args ...interface{}) {
	v.buf.WriteString(strings.Repeat(" ", v.indent))
	fmt.Fprintf(&v.buf, format, args...)
	v.buf.WriteByte('\n')
}

func (v *printVisitor) nested(f func()) {
	v.indent += indentSize
	f()
	v.indent -= indentSize
}

func (v *printVisitor) printStmt(s parser.Stmt) {
	switch st := s.(type) {
	case *parser.ExpressionStmt:
		v.line("(expr")
		v.nested(func() { v.printExpr(st.Expr) })
		v.line(")")

	case *parser.PrintStmt:
		v.line("(print")
		v.nested(func() { v.printExpr(st.Expr) })
		v.line(")")

	case *parser.VarStmt:
		v.line("(var %s", st.Name.Lexeme)
		if st.Init != nil {
			v.nested(func() { v.printExpr(st.Init) })
		}
		v.line(")")

	case *parser.BlockStmt:
		v.line("(block")
		v.nested(func() {
			for _, inner := range st.Stmts {
				v.printStmt(inner)
			}
		})
		v.line(")")

	case *parser.IfStmt:
		v.line("(if")
		v.nested(func() {
			v.printExpr(st.Cond)
			v.printStmt(st.Then)
			if st.Else != nil {
				v.printStmt(st.Else)
			}
		})
		v.line(")")

	case *parser.WhileStmt:
		v.line("(while")
		v.nested(func() {
			v.printExpr(st.Cond)
			v.printStmt(st.Body)
		})
		v.line(")")

	case *parser.FunctionStmt:
		names := make([]string, len(st.Params))
		for i, p := range st.Params {
			names[i] = p.Lexeme
		}
		v.line("(fun %s(%s)", st.Name.Lexeme, strings.Join(names, ", "))
		v.nested(func() {
			for _, inner := range st.Body {
				v.printStmt(inner)
			}
		})
		v.line(")")

	case *parser.ReturnStmt:
		v.line("(return")
		if st.Value != nil {
			v.nested(func() { v.printExpr(st.Value) })
		}
		v.line(")")

	default:
		v.line("(unknown-stmt %T)", s)
	}
}

func (v *printVisitor) printExpr(e parser.Expr) {
	switch ex := e.(type) {
	case *parser.LiteralExpr:
		v.line("%v", ex.Value)

	case *parser.GroupingExpr:
		v.line("(group")
		v.nested(func() { v.printExpr(ex.Inner) })
		v.line(")")

	case *parser.UnaryExpr:
		v.line("(%s", ex.Op.Lexeme)
		v.nested(func() { v.printExpr(ex.Operand) })
		v.line(")")

	case *parser.BinaryExpr:
		v.line("(%s", ex.Op.Lexeme)
		v.nested(func() {
			v.printExpr(ex.Left)
			v.printExpr(ex.Right)
		})
		v.line(")")

	case *parser.LogicalExpr:
		v.line("(%s", ex.Op.Lexeme)
		v.nested(func() {
			v.printExpr(ex.Left)
			v.printExpr(ex.Right)
		})
		v.line(")")

	case *parser.VariableExpr:
		v.line("%s", ex.Name.Lexeme)

	case *parser.AssignExpr:
		v.line("(= %s", ex.Name.Lexeme)
		v.nested(func() { v.printExpr(ex.Value) })
		v.line(")")

	case *parser.CallExpr:
		v.line("(call")
		v.nested(func() {
			v.printExpr(ex.Callee)
			for _, a := range ex.Args {
				v.printExpr(a)
			}
		})
		v.line(")")

	default:
		v.line("(unknown-expr %T)", e)
	}
}
