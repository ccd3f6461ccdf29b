/*
File    : rlox/internal/session/session_test.go
Package : session_test
*/
package session_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/rlox/internal/session"
)

func run(t *testing.T, src string) (string, []error) {
	t.Helper()
	var out []string
	s := session.New(func(line string) { out = append(out, line) })
	errs := s.RunSource(src)
	return strings.Join(out, "\n"), errs
}

func TestArithmeticPrecedence(t *testing.T) {
	out, errs := run(t, "print 1 + 2 * 3;")
	require.Empty(t, errs)
	assert.Equal(t, "7", out)
}

func TestVariablesAndAddition(t *testing.T) {
	out, errs := run(t, `var a = 1; var b = 2; print a + b;`)
	require.Empty(t, errs)
	assert.Equal(t, "3", out)
}

func TestBlockShadowing(t *testing.T) {
	out, errs := run(t, `var a = "hi"; { var a = "inner"; print a; } print a;`)
	require.Empty(t, errs)
	assert.Equal(t, "inner\nhi", out)
}

func TestFunctionCall(t *testing.T) {
	out, errs := run(t, `fun add(a,b){return a+b;} print add(3,4);`)
	require.Empty(t, errs)
	assert.Equal(t, "7", out)
}

func TestClosureSharesState(t *testing.T) {
	out, errs := run(t, `fun mk(){var i=0; fun inc(){i=i+1; return i;} return inc;} var f = mk(); print f(); print f(); print f();`)
	require.Empty(t, errs)
	assert.Equal(t, "1\n2\n3", out)
}

func TestShortCircuit(t *testing.T) {
	out, errs := run(t, `print nil or "x"; print false or nil; print 1 and 2;`)
	require.Empty(t, errs)
	assert.Equal(t, "x\nnil\n2", out)
}

func TestForLoopDesugaring(t *testing.T) {
	out, errs := run(t, `for (var i=0; i<3; i=i+1) print i;`)
	require.Empty(t, errs)
	assert.Equal(t, "0\n1\n2", out)
}

func TestRuntimeErrorHaltsRemainingStatements(t *testing.T) {
	out, errs := run(t, `print 1 + "a"; print 2;`)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Error(), "Operands must be two numbers or two strings")
	assert.Empty(t, out)
}

func TestAssignmentToSelfIsANoop(t *testing.T) {
	out, errs := run(t, `var a = 5; a = a; print a;`)
	require.Empty(t, errs)
	assert.Equal(t, "5", out)
}

func TestCorrectedBangSemantics(t *testing.T) {
	out, errs := run(t, `print !true; print !false; print !nil;`)
	require.Empty(t, errs)
	assert.Equal(t, "false\ntrue\ntrue", out)
}

func TestVarWithoutInitializerBindsNil(t *testing.T) {
	out, errs := run(t, `var a; print a;`)
	require.Empty(t, errs)
	assert.Equal(t, "nil", out)
}

func TestRedefineInSameScopeIsLegal(t *testing.T) {
	out, errs := run(t, `var a = 1; var a = 2; print a;`)
	require.Empty(t, errs)
	assert.Equal(t, "2", out)
}

func TestAssignToUndefinedVariableErrors(t *testing.T) {
	_, errs := run(t, `a = 1;`)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Error(), "Undefined variable 'a'")
}

func TestClockIsSeeded(t *testing.T) {
	out, errs := run(t, `print clock() > 0;`)
	require.Empty(t, errs)
	assert.Equal(t, "true", out)
}

func TestParseErrorsAccumulateAcrossStatements(t *testing.T) {
	out, errs := run(t, `print ; var ; print 1;`)
	assert.GreaterOrEqual(t, len(errs), 2)
	assert.Equal(t, "1", out)
}
