/*
File    : rlox/internal/callable/function_test.go
Package : callable_test
*/
package callable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/rlox/internal/callable"
	"github.com/akashmaji946/rlox/internal/environment"
	"github.com/akashmaji946/rlox/internal/lexer"
	"github.com/akashmaji946/rlox/internal/parser"
	"github.com/akashmaji946/rlox/internal/value"
)

func dummyDecl(name string) (*parser.FunctionStmt, *environment.Environment) {
	decl := &parser.FunctionStmt{
		Name:   lexer.Token{Kind: lexer.Identifier, Lexeme: name},
		Params: nil,
		Body:   nil,
	}
	return decl, environment.New(nil)
}

func TestClockIsZeroArityAndReturnsANumber(t *testing.T) {
	clock := callable.Clock()
	assert.Equal(t, 0, clock.Arity())

	result, err := clock.Call(nil, nil)
	assert.NoError(t, err)

	n, ok := result.(value.Number)
	assert.True(t, ok)
	assert.Greater(t, float64(n), 0.0)
}

func TestUserFunctionStringIncludesItsName(t *testing.T) {
	decl, closure := dummyDecl("greet")
	fn := callable.New(decl, closure)
	assert.Equal(t, "<fn greet>", fn.String())
	assert.True(t, fn.Truthy())
}
