package astbuilder_test

import (
	"testing"

	"github.com/dhamidi/ecmacst/astbuilder"
	"github.com/dhamidi/ecmacst/ecmascript"
	"github.com/dhamidi/ecmacst/engine"
)

func parseAndLower(t *testing.T, source, dialect string) *astbuilder.Program {
	t.Helper()
	toks := ecmascript.Tokens([]byte(source))
	p := engine.New(toks)
	root, err := ecmascript.Parse(p, dialect)
	if err != nil {
		t.Fatalf("parse %q: %v", source, err)
	}
	prog, err := astbuilder.Lower(root)
	if err != nil {
		t.Fatalf("lower %q: %v", source, err)
	}
	return prog
}

func TestLowerVariableDeclaration(t *testing.T) {
	prog := parseAndLower(t, "let x = 1;", "es2015")
	if len(prog.Body) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Body))
	}
	decl, ok := prog.Body[0].(*astbuilder.VariableDeclaration)
	if !ok {
		t.Fatalf("expected *VariableDeclaration, got %T", prog.Body[0])
	}
	if decl.Kind != "let" {
		t.Errorf("Kind = %q, want %q", decl.Kind, "let")
	}
	if len(decl.Declarations) != 1 {
		t.Fatalf("expected 1 declarator, got %d", len(decl.Declarations))
	}
	d := decl.Declarations[0]
	if d.Id == nil || d.Id.Name != "x" {
		t.Fatalf("Id = %+v, want Identifier{Name: x}", d.Id)
	}
	lit, ok := d.Init.(*astbuilder.NumericLiteral)
	if !ok || lit.Value != "1" {
		t.Fatalf("Init = %+v, want NumericLiteral{1}", d.Init)
	}
}

func TestLowerMemberAndCallChain(t *testing.T) {
	prog := parseAndLower(t, "a.b.c()[0];", "es5")
	if len(prog.Body) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Body))
	}
	exprStmt, ok := prog.Body[0].(*astbuilder.ExpressionStatement)
	if !ok {
		t.Fatalf("expected *ExpressionStatement, got %T", prog.Body[0])
	}

	// a.b.c()[0] lowers outside-in as MemberExpression{ Object:
	// CallExpression{ Callee: MemberExpression{a.b.c} }, Property: 0 }.
	outer, ok := exprStmt.Expression.(*astbuilder.MemberExpression)
	if !ok || !outer.Computed {
		t.Fatalf("outer = %+v, want computed MemberExpression", exprStmt.Expression)
	}
	idx, ok := outer.Property.(*astbuilder.NumericLiteral)
	if !ok || idx.Value != "0" {
		t.Fatalf("outer.Property = %+v, want NumericLiteral{0}", outer.Property)
	}

	call, ok := outer.Object.(*astbuilder.CallExpression)
	if !ok {
		t.Fatalf("outer.Object = %+v, want *CallExpression", outer.Object)
	}
	if len(call.Arguments) != 0 {
		t.Fatalf("expected zero call arguments, got %d", len(call.Arguments))
	}

	callee, ok := call.Callee.(*astbuilder.MemberExpression)
	if !ok || callee.Computed {
		t.Fatalf("call.Callee = %+v, want dotted MemberExpression", call.Callee)
	}
	prop, ok := callee.Property.(*astbuilder.Identifier)
	if !ok || prop.Name != "c" {
		t.Fatalf("callee.Property = %+v, want Identifier{c}", callee.Property)
	}
}

func TestLowerBinaryExpression(t *testing.T) {
	prog := parseAndLower(t, "1 + 2 * 3;", "es5")
	exprStmt := prog.Body[0].(*astbuilder.ExpressionStatement)
	add, ok := exprStmt.Expression.(*astbuilder.BinaryExpression)
	if !ok || add.Operator != "+" {
		t.Fatalf("expression = %+v, want BinaryExpression{+}", exprStmt.Expression)
	}
	left, ok := add.Left.(*astbuilder.NumericLiteral)
	if !ok || left.Value != "1" {
		t.Fatalf("left = %+v, want NumericLiteral{1}", add.Left)
	}
	mul, ok := add.Right.(*astbuilder.BinaryExpression)
	if !ok || mul.Operator != "*" {
		t.Fatalf("right = %+v, want BinaryExpression{*}", add.Right)
	}
}

func TestLowerEmptyProgram(t *testing.T) {
	prog := parseAndLower(t, "", "es5")
	if len(prog.Body) != 0 {
		t.Fatalf("expected empty body, got %d statements", len(prog.Body))
	}
}

func TestLowerCallArguments(t *testing.T) {
	prog := parseAndLower(t, "foo(1, x);", "es5")
	exprStmt := prog.Body[0].(*astbuilder.ExpressionStatement)
	call, ok := exprStmt.Expression.(*astbuilder.CallExpression)
	if !ok {
		t.Fatalf("expression = %+v, want *CallExpression", exprStmt.Expression)
	}
	callee, ok := call.Callee.(*astbuilder.Identifier)
	if !ok || callee.Name != "foo" {
		t.Fatalf("callee = %+v, want Identifier{foo}", call.Callee)
	}
	if len(call.Arguments) != 2 {
		t.Fatalf("expected 2 arguments, got %d", len(call.Arguments))
	}
	if _, ok := call.Arguments[0].(*astbuilder.NumericLiteral); !ok {
		t.Fatalf("arg0 = %+v, want NumericLiteral", call.Arguments[0])
	}
	if id, ok := call.Arguments[1].(*astbuilder.Identifier); !ok || id.Name != "x" {
		t.Fatalf("arg1 = %+v, want Identifier{x}", call.Arguments[1])
	}
}
