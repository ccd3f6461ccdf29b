/*
File    : rlox/internal/lexer/lexer_test.go
Package : lexer_test
*/
package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/rlox/internal/lexer"
)

func kinds(toks []lexer.Token) []lexer.Kind {
	out := make([]lexer.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestPunctuationAndOperators(t *testing.T) {
	toks := lexer.New("(){},.-+;*!= == <= >=").All()
	assert.Equal(t, []lexer.Kind{
		lexer.LeftParen, lexer.RightParen, lexer.LeftBrace, lexer.RightBrace,
		lexer.Comma, lexer.Dot, lexer.Minus, lexer.Plus, lexer.Semicolon,
		lexer.Star, lexer.BangEqual, lexer.EqualEqual, lexer.LessEqual, lexer.GreaterEqual,
	}, kinds(toks))
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	toks := lexer.New("var fun orchid").All()
	require.Len(t, toks, 3)
	assert.Equal(t, lexer.Var, toks[0].Kind)
	assert.Equal(t, lexer.Fun, toks[1].Kind)
	assert.Equal(t, lexer.Identifier, toks[2].Kind, "orchid must not be mistaken for `or`")
}

func TestNumberLiteral(t *testing.T) {
	toks := lexer.New("123 45.67 1.foo").All()
	require.Len(t, toks, 5)
	assert.Equal(t, lexer.Number, toks[0].Kind)
	assert.Equal(t, float64(123), toks[0].NumberValue())
	assert.Equal(t, lexer.Number, toks[1].Kind)
	assert.Equal(t, 45.67, toks[1].NumberValue())
	// "1.foo" must lex as NUMBER(1), DOT, IDENT(foo), the dot is not
	// consumed as a decimal point unless followed by another digit.
	assert.Equal(t, []lexer.Kind{lexer.Number, lexer.Dot, lexer.Identifier}, kinds(toks[2:]))
}

func TestStringLiteral(t *testing.T) {
	toks := lexer.New(`"hello world"`).All()
	require.Len(t, toks, 1)
	assert.Equal(t, lexer.String, toks[0].Kind)
	assert.Equal(t, "hello world", toks[0].Lexeme)
}

func TestUnterminatedString(t *testing.T) {
	toks := lexer.New(`"never closes`).All()
	require.Len(t, toks, 1)
	assert.Equal(t, lexer.UnterminatedString, toks[0].Kind)
}

func TestLineAndColumnTracking(t *testing.T) {
	toks := lexer.New("var a\nvar b").All()
	require.Len(t, toks, 4)
	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, 2, toks[2].Line)
	assert.Equal(t, 5, toks[1].Column)
	assert.Equal(t, 5, toks[3].Column)
}

func TestLineCommentsAndBlockCommentsAreSkipped(t *testing.T) {
	toks := lexer.New("1 // comment\n/* block\ncomment */ 2").All()
	require.Len(t, toks, 2)
	assert.Equal(t, lexer.Number, toks[0].Kind)
	assert.Equal(t, lexer.Number, toks[1].Kind)
}

func TestUnicodeIdentifierIsAtomic(t *testing.T) {
	toks := lexer.New("var café = 1;").All()
	require.Len(t, toks, 5)
	assert.Equal(t, lexer.Identifier, toks[1].Kind)
	assert.Equal(t, "café", toks[1].Lexeme)
}

func TestUnknownCharacter(t *testing.T) {
	toks := lexer.New("@").All()
	require.Len(t, toks, 1)
	assert.Equal(t, lexer.Unknown, toks[0].Kind)
}

func TestLexingIsTotal(t *testing.T) {
	// Invariant 1: every input produces a terminating token sequence.
	lx := lexer.New("")
	tok := lx.Next()
	assert.Equal(t, lexer.EOF, tok.Kind)
}
