/*
File    : rlox/internal/environment/environment_test.go
Package : environment_test
*/
package environment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/rlox/internal/environment"
	"github.com/akashmaji946/rlox/internal/value"
)

func TestDefineAndGet(t *testing.T) {
	env := environment.New(nil)
	env.Define("x", value.Number(1))

	v, err := env.Get("x")
	require.NoError(t, err)
	assert.Equal(t, value.Number(1), v)
}

func TestGetSearchesEnclosingScopes(t *testing.T) {
	outer := environment.New(nil)
	outer.Define("x", value.Number(1))
	inner := environment.New(outer)

	v, err := inner.Get("x")
	require.NoError(t, err)
	assert.Equal(t, value.Number(1), v)
}

func TestGetUndefinedReturnsError(t *testing.T) {
	env := environment.New(nil)
	_, err := env.Get("missing")
	require.Error(t, err)
	assert.Equal(t, "Undefined variable 'missing'.", err.Error())
}

func TestAssignUpdatesInEnclosingScope(t *testing.T) {
	outer := environment.New(nil)
	outer.Define("x", value.Number(1))
	inner := environment.New(outer)

	require.NoError(t, inner.Assign("x", value.Number(2)))

	v, err := outer.Get("x")
	require.NoError(t, err)
	assert.Equal(t, value.Number(2), v)
}

func TestAssignNeverCreatesANewBinding(t *testing.T) {
	env := environment.New(nil)
	err := env.Assign("never-defined", value.Number(1))
	require.Error(t, err)

	_, getErr := env.Get("never-defined")
	assert.Error(t, getErr)
}

func TestDefineOverwritesWithoutError(t *testing.T) {
	env := environment.New(nil)
	env.Define("x", value.Number(1))
	env.Define("x", value.Number(2))

	v, err := env.Get("x")
	require.NoError(t, err)
	assert.Equal(t, value.Number(2), v)
}

func TestSharedEnvironmentMutationIsVisibleThroughEveryAlias(t *testing.T) {
	// Closures capture the *Environment pointer, not a copy, a mutation
	// through one alias must be visible through every other alias of the
	// same scope.
	shared := environment.New(nil)
	shared.Define("count", value.Number(0))

	alias := shared
	require.NoError(t, alias.Assign("count", value.Number(1)))

	v, err := shared.Get("count")
	require.NoError(t, err)
	assert.Equal(t, value.Number(1), v)
}
