package interpreter

import (
	stderrors "errors"
	"reflect"
	"testing"

	"plox/internal/errors"
	"plox/internal/lexer"
)

func ident(name string) lexer.Token {
	return lexer.Token{Type: lexer.TokenIdentifier, Lexeme: name, Line: 1}
}

func TestEnvironmentDefineShadowsInSameScope(t *testing.T) {
	env := NewEnvironment(nil)
	env.Define("x", 1.0)
	env.Define("x", 2.0)
	v, err := env.Get(ident("x"))
	if err != nil || v != 2.0 {
		t.Fatalf("got %v, %v; want 2", v, err)
	}
}

func TestEnvironmentNilBindingIsFound(t *testing.T) {
	root := NewEnvironment(nil)
	root.Define("x", "outer")
	child := NewEnvironment(root)
	child.Define("x", nil)

	v, ok := child.Lookup("x")
	if !ok || v != nil {
		t.Fatalf("got %v, %v; want nil, true", v, ok)
	}
}

func TestEnvironmentLookupWalksOutward(t *testing.T) {
	root := NewEnvironment(nil)
	root.Define("a", "root")
	middle := NewEnvironment(root)
	leaf := NewEnvironment(middle)

	v, err := leaf.Get(ident("a"))
	if err != nil || v != "root" {
		t.Fatalf("got %v, %v", v, err)
	}
	if leaf.Enclosing() != middle || middle.Enclosing() != root || root.Enclosing() != nil {
		t.Fatal("enclosing chain is wrong")
	}
}

func TestEnvironmentAssignUpdatesNearestBinding(t *testing.T) {
	root := NewEnvironment(nil)
	root.Define("a", 1.0)
	child := NewEnvironment(root)

	if err := child.Assign(ident("a"), 5.0); err != nil {
		t.Fatal(err)
	}
	if v, _ := root.Lookup("a"); v != 5.0 {
		t.Errorf("root binding: got %v, want 5", v)
	}
	if _, ok := child.values["a"]; ok {
		t.Error("assign created a binding in the child scope")
	}
}

func TestEnvironmentUndefined(t *testing.T) {
	env := NewEnvironment(NewEnvironment(nil))
	tok := lexer.Token{Type: lexer.TokenIdentifier, Lexeme: "missing", Line: 9}

	_, err := env.Get(tok)
	assertUndefined(t, err, tok)

	err = env.Assign(tok, 1.0)
	assertUndefined(t, err, tok)
	if _, ok := env.Lookup("missing"); ok {
		t.Error("failed assign created a binding")
	}
}

func assertUndefined(t *testing.T, err error, tok lexer.Token) {
	t.Helper()
	var rerr *errors.RuntimeError
	if !stderrors.As(err, &rerr) {
		t.Fatalf("got %v, want *errors.RuntimeError", err)
	}
	if rerr.Token != tok {
		t.Errorf("error token: got %+v, want %+v", rerr.Token, tok)
	}
	if rerr.Message != "Undefined variable 'missing'." {
		t.Errorf("message: got %q", rerr.Message)
	}
}

func TestEnvironmentNames(t *testing.T) {
	env := NewEnvironment(nil)
	for _, name := range []string{"zeta", "alpha", "mid"} {
		env.Define(name, nil)
	}
	if got := env.Names(); !reflect.DeepEqual(got, []string{"alpha", "mid", "zeta"}) {
		t.Errorf("got %v", got)
	}
}
