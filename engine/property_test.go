package engine

import (
	"testing"

	"github.com/dhamidi/ecmacst/cst"
)

// checkSpanMonotonicity walks n and asserts that every child's Loc.Index
// is >= the previous sibling's, and that a child's span is contained
// within its parent's (spec §8 "span monotonicity").
func checkSpanMonotonicity(t *testing.T, n *cst.Node) {
	t.Helper()
	var prevIndex = -1
	for _, child := range n.Children {
		if child.Loc != nil {
			if child.Loc.Index < prevIndex {
				t.Errorf("child %s at index %d comes before previous sibling at index %d", child.Name, child.Loc.Index, prevIndex)
			}
			prevIndex = child.Loc.Index
			if n.Loc != nil {
				if child.Loc.Index < n.Loc.Index {
					t.Errorf("child %s span starts before parent %s span", child.Name, n.Name)
				}
				end, parentEnd := child.Loc.End, n.Loc.End
				if end.Line > parentEnd.Line || (end.Line == parentEnd.Line && end.Column > parentEnd.Column) {
					t.Errorf("child %s span ends after parent %s span", child.Name, n.Name)
				}
			}
		}
		checkSpanMonotonicity(t, child)
	}
}

func TestSpanMonotonicityAcrossRealParse(t *testing.T) {
	root, err := parseToy("let", "Ident", "=", "Ident", ";")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkSpanMonotonicity(t, root)
}

func TestTerminalIdentityAcrossRealParse(t *testing.T) {
	names := []string{"let", "Ident", "=", "Ident", ";"}
	root, err := parseToy(names...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var leaves []*cst.Node
	var walk func(*cst.Node)
	walk = func(n *cst.Node) {
		if n.IsTerminal {
			leaves = append(leaves, n)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)

	if len(leaves) != len(names) {
		t.Fatalf("expected %d leaves, got %d", len(names), len(leaves))
	}
	for i, leaf := range leaves {
		if leaf.TokenValue() != names[i] {
			t.Errorf("leaf %d: value = %q, want %q", i, leaf.TokenValue(), names[i])
		}
		if leaf.Loc == nil || leaf.Loc.Index != i {
			t.Errorf("leaf %d: loc index = %v, want %d", i, leaf.Loc, i)
		}
	}
}

func TestEmptyInputProducesNilLocRoot(t *testing.T) {
	p := New(nil)
	rules := NewRuleTable("Empty")
	g := struct {
		Grammar
	}{Grammar: NewGrammar(p, rules, "Empty")}

	root, err := Parse(p, func() (*cst.Node, error) {
		return g.Invoke("Empty", func() error { return nil })
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root.Loc != nil {
		t.Errorf("expected nil loc for a rule that consumed nothing, got %+v", root.Loc)
	}
	if len(root.Children) != 0 {
		t.Errorf("expected no children, got %+v", root.Children)
	}
}
