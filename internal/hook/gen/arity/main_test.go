package main

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"
)

// TestRender_Declarations verifies every family member is declared.
func TestRender_Declarations(t *testing.T) {
	src, err := Render(MaxAction, MaxConditional)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "arity_gen.go", src, 0)
	if err != nil {
		t.Fatalf("generated source does not parse: %v", err)
	}

	decls := map[string]bool{}
	for _, d := range file.Decls {
		switch d := d.(type) {
		case *ast.FuncDecl:
			if d.Recv == nil {
				decls[d.Name.Name] = true
			}
		case *ast.GenDecl:
			for _, s := range d.Specs {
				if ts, ok := s.(*ast.TypeSpec); ok {
					decls[ts.Name.Name] = true
				}
			}
		}
	}

	want := []string{}
	for n := 0; n <= MaxAction; n++ {
		s := string(rune('0' + n))
		want = append(want, "Action"+s, "ActionFunc"+s, "Callback"+s, "New"+s, "dispatch"+s)
	}
	for n := 0; n <= MaxConditional; n++ {
		s := string(rune('0' + n))
		want = append(want, "Predicate"+s, "PredicateFunc"+s, "Conditional"+s, "NewConditional"+s, "decide"+s)
	}
	for _, name := range want {
		if !decls[name] {
			t.Errorf("missing declaration %s", name)
		}
	}
	if _, ok := decls["Callback9"]; ok {
		t.Error("Callback9 must not be generated")
	}
	if _, ok := decls["Conditional5"]; ok {
		t.Error("Conditional5 must not be generated")
	}
}

// TestRender_Shape verifies the generated code of one arity.
func TestRender_Shape(t *testing.T) {
	src, err := Render(2, 1)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	s := string(src)

	for _, want := range []string{
		"// Code generated by internal/hook/gen/arity; DO NOT EDIT.",
		"Analyze(w1 W1, w2 W2, x arg.Extra)",
		"func New2[N1, W1, N2, W2 any](hd Action2[W1, W2], a1 arg.Descriptor[N1, W1], a2 arg.Descriptor[N2, W2]) *Callback2[N1, W1, N2, W2] {",
		"c.init(c, dispatch2[N1, W1, N2, W2], a1.Extraction(), a2.Extraction())",
		"c.hd.Analyze(c.a1.Decode(f.Values[0]), c.a2.Decode(f.Values[1]), arg.ExtraOf(f.Extra))",
		"return scope.FlagOf(c.hd.Proceed(c.a1.Decode(f.Values[0]), arg.ExtraOf(f.Extra)))",
		"func (f PredicateFunc1[W1]) Proceed(w1 W1, x arg.Extra) bool { return f(w1, x) }",
		"creates a callback that passes the values described by a1 and a2 to hd.",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("generated source lacks %q", want)
		}
	}
}

// TestRender_Unsupported verifies out-of-range ceilings are rejected.
func TestRender_Unsupported(t *testing.T) {
	if _, err := Render(9, 4); err == nil {
		t.Error("expected error for action ceiling 9")
	}
	if _, err := Render(2, 3); err == nil {
		t.Error("expected error for conditional ceiling above action ceiling")
	}
}
