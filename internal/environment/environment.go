/*
File    : rlox/internal/environment/environment.go
Package : environment
*/

// Package environment implements rlox's lexical scope chain: a mapping
// from variable name to value, plus a link to the enclosing scope.
// Environments are shared by reference, the current evaluation scope and
// every closure that captured it point at the same *Environment, so a
// mutation through one alias is visible through all of them, exactly as
// spec.md requires for closures over shared, mutable state.
package environment

import (
	"fmt"

	"github.com/akashmaji946/rlox/internal/value"
)

// UndefinedVariableError reports a failed lookup or assignment to a name
// that is bound nowhere in the scope chain.
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("Undefined variable '%s'.", e.Name)
}

// Environment is one lexical scope. The global environment has a nil
// Enclosing; every other environment encloses exactly one parent.
type Environment struct {
	values    map[string]value.Value
	Enclosing *Environment
}

// New creates a scope enclosed by parent. Pass nil to create the global
// scope.
func New(parent *Environment) *Environment {
	return &Environment{values: make(map[string]value.Value), Enclosing: parent}
}

// Define binds name to v in this scope, overwriting any existing binding
// in this scope only. Redeclaration is not an error, `var x = 1; var x =
// 2;` is legal and simply rebinds x.
func (e *Environment) Define(name string, v value.Value) {
	e.values[name] = v
}

// Get looks up name, searching outward through enclosing scopes.
func (e *Environment) Get(name string) (value.Value, error) {
	if v, ok := e.values[name]; ok {
		return v, nil
	}
	if e.Enclosing != nil {
		return e.Enclosing.Get(name)
	}
	return nil, &UndefinedVariableError{Name: name}
}

// Assign updates the binding for name in the scope where it was defined,
// searching outward until it finds one. It never creates a new binding:
// assigning to an unbound name is an error.
func (e *Environment) Assign(name string, v value.Value) error {
	if _, ok := e.values[name]; ok {
		e.values[name] = v
		return nil
	}
	if e.Enclosing != nil {
		return e.Enclosing.Assign(name, v)
	}
	return &UndefinedVariableError{Name: name}
}
