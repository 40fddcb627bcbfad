package interpreter

import (
	"fmt"

	"golang.org/x/exp/slices"

	"plox/internal/errors"
	"plox/internal/lexer"
)

// Environment provides lexical scoping. Absence of a key, not a sentinel
// value, means "not bound here", so a binding deliberately set to nil is
// still found.
type Environment struct {
	values    map[string]Value
	enclosing *Environment
}

// NewEnvironment creates a new environment, optionally nested under a parent.
func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{
		values:    make(map[string]Value),
		enclosing: enclosing,
	}
}

// Enclosing exposes the lexical parent (nil for the root).
func (e *Environment) Enclosing() *Environment {
	return e.enclosing
}

// Define inserts or replaces a binding in this scope only.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Lookup searches outward through the scope chain.
func (e *Environment) Lookup(name string) (Value, bool) {
	for env := e; env != nil; env = env.enclosing {
		if v, ok := env.values[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Get is Lookup that fails with a RuntimeError anchored at name.
func (e *Environment) Get(name lexer.Token) (Value, error) {
	if v, ok := e.Lookup(name.Lexeme); ok {
		return v, nil
	}
	return nil, undefined(name)
}

// Assign updates an existing binding in the first scope where it appears.
// It never creates a binding.
func (e *Environment) Assign(name lexer.Token, value Value) error {
	for env := e; env != nil; env = env.enclosing {
		if _, ok := env.values[name.Lexeme]; ok {
			env.values[name.Lexeme] = value
			return nil
		}
	}
	return undefined(name)
}

// Names returns the names bound directly in this scope, sorted.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.values))
	for name := range e.values {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func undefined(name lexer.Token) *errors.RuntimeError {
	return errors.NewRuntimeError(name, fmt.Sprintf("Undefined variable '%s'.", name.Lexeme))
}
