package lox

import "testing"

func TestEnvironmentDefineShadowsEnclosing(t *testing.T) {
	global := NewEnvironment(nil)
	global.Define("a", "outer")

	child := NewEnvironment(global)
	child.Define("a", "inner")

	if v := child.Get(Token{Lexeme: "a"}); v != "inner" {
		t.Fatalf("got %v, want inner", v)
	}
	if v := global.Get(Token{Lexeme: "a"}); v != "outer" {
		t.Fatalf("shadowing a child binding mutated the parent: got %v", v)
	}
}

func TestEnvironmentAssignWalksToEnclosing(t *testing.T) {
	global := NewEnvironment(nil)
	global.Define("a", 1.0)

	child := NewEnvironment(global)
	child.Assign(Token{Lexeme: "a"}, 2.0)

	if v := global.Get(Token{Lexeme: "a"}); v != 2.0 {
		t.Fatalf("assign through a child should update the defining frame, got %v", v)
	}
}

func TestEnvironmentAssignUndefinedIsRuntimeError(t *testing.T) {
	env := NewEnvironment(nil)
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a panic for assignment to an undefined global")
		}
		if _, ok := r.(*RuntimeError); !ok {
			t.Fatalf("expected *RuntimeError, got %#v", r)
		}
	}()
	env.Assign(Token{Lexeme: "nope", Line: 1}, 1.0)
}

func TestEnvironmentGetAtAssignAtTargetSameFrame(t *testing.T) {
	global := NewEnvironment(nil)
	scope1 := NewEnvironment(global)
	scope2 := NewEnvironment(scope1)
	scope1.Define("n", 0.0)

	scope2.AssignAt(1, Token{Lexeme: "n"}, 5.0)
	if v := scope2.GetAt(1, "n"); v != 5.0 {
		t.Fatalf("got %v, want 5.0", v)
	}
	if v := scope1.Get(Token{Lexeme: "n"}); v != 5.0 {
		t.Fatalf("AssignAt should have written through to scope1, got %v", v)
	}
}
