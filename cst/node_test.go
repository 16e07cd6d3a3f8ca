package cst

import (
	"testing"

	"github.com/dhamidi/ecmacst/token"
)

func mustTok(name, value string, line, col int) token.MatchToken {
	return token.MatchToken{
		Name:           name,
		Value:          value,
		RowNum:         line,
		ColumnStartNum: col,
		ColumnEndNum:   col + len(value),
		Index:          col,
	}
}

func TestNodeAddChild(t *testing.T) {
	parent := NewRule("Statement")
	child1 := NewTerminal("Identifier", mustTok("Identifier", "x", 1, 1))
	child2 := NewTerminal("Semicolon", mustTok("Semicolon", ";", 1, 2))

	parent.AddChild(child1)
	parent.AddChild(child2)
	parent.AddChild(nil)

	if len(parent.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(parent.Children))
	}
	if parent.Children[0] != child1 || parent.Children[1] != child2 {
		t.Error("children out of order or mismatched")
	}
}

func TestNewTerminalValueAndLoc(t *testing.T) {
	tok := mustTok("NumericLiteral", "42", 3, 5)
	leaf := NewTerminal("NumericLiteral", tok)

	if !leaf.IsTerminal {
		t.Error("expected IsTerminal to be true")
	}
	if leaf.TokenValue() != "42" {
		t.Errorf("TokenValue() = %q, want %q", leaf.TokenValue(), "42")
	}
	if leaf.Loc == nil || leaf.Loc.Start.Line != 3 || leaf.Loc.Start.Column != 5 {
		t.Errorf("unexpected loc: %+v", leaf.Loc)
	}
}

func TestRecomputeLocEmptyNode(t *testing.T) {
	n := NewRule("ArrowParameters")
	n.RecomputeLoc()
	if n.Loc != nil {
		t.Errorf("expected nil loc for empty node, got %+v", n.Loc)
	}
}

func TestRecomputeLocSpansChildren(t *testing.T) {
	n := NewRule("VariableDeclarator")
	n.AddChild(NewTerminal("Identifier", mustTok("Identifier", "x", 1, 1)))
	n.AddChild(NewTerminal("Eq", mustTok("Eq", "=", 1, 3)))
	n.AddChild(NewTerminal("NumericLiteral", mustTok("NumericLiteral", "1", 1, 5)))
	n.RecomputeLoc()

	if n.Loc == nil {
		t.Fatal("expected non-nil loc")
	}
	if n.Loc.Start.Column != 1 {
		t.Errorf("Loc.Start.Column = %d, want 1", n.Loc.Start.Column)
	}
	if n.Loc.End.Column != 6 {
		t.Errorf("Loc.End.Column = %d, want 6", n.Loc.End.Column)
	}
	if n.Loc.Index != n.Children[0].Loc.Index {
		t.Errorf("Loc.Index should match first child's index")
	}
}

func TestFindChildByName(t *testing.T) {
	n := NewRule("BinaryExpression")
	lhs := NewTerminal("Identifier", mustTok("Identifier", "a", 1, 1))
	op := NewTerminal("Plus", mustTok("Plus", "+", 1, 2))
	rhs := NewTerminal("Identifier", mustTok("Identifier", "b", 1, 3))
	n.AddChild(lhs)
	n.AddChild(op)
	n.AddChild(rhs)

	if got := n.FindChildByName("Plus"); got != op {
		t.Errorf("FindChildByName(Plus) = %v, want %v", got, op)
	}
	if got := n.FindChildByName("Missing"); got != nil {
		t.Errorf("FindChildByName(Missing) = %v, want nil", got)
	}
	if got := n.FindChildrenByName("Identifier"); len(got) != 2 {
		t.Errorf("FindChildrenByName(Identifier) returned %d nodes, want 2", len(got))
	}
}

func TestErrorNodeSentinel(t *testing.T) {
	n := NewError(mustTok("Illegal", "@", 1, 1))
	if !n.IsError() {
		t.Error("expected IsError() to be true")
	}
	if NewRule("Program").IsError() {
		t.Error("a plain rule node must not be an error node")
	}
}
