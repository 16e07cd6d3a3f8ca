package engine

import (
	"testing"

	"github.com/dhamidi/ecmacst/token"
)

// toks builds a minimal token stream with one token per name, whose Name
// and Value are both that name, e.g. ("A", "B") -> [A("A"), B("B")].
// This keeps the combinator tests independent of any real grammar.
func toks(names ...string) []token.MatchToken {
	out := make([]token.MatchToken, len(names))
	for i, name := range names {
		out[i] = token.MatchToken{Name: name, Value: name, RowNum: 1, ColumnStartNum: i, ColumnEndNum: i + 1, Index: i}
	}
	return out
}

func TestTerminalMatchAndMismatch(t *testing.T) {
	p := New(toks("A", "B"))
	root, _ := p.Rule("Root", func() error {
		return p.Terminal("A")
	})
	if root == nil || len(root.Children) != 1 {
		t.Fatalf("expected one child, got %+v", root)
	}
	if root.Children[0].Name != "A" || root.Children[0].TokenValue() != "A" {
		t.Errorf("terminal identity violated: %+v", root.Children[0])
	}

	p2 := New(toks("B"))
	_, err := p2.Rule("Root", func() error {
		return p2.Terminal("A")
	})
	mismatch, ok := err.(TokenMismatch)
	if !ok {
		t.Fatalf("expected TokenMismatch, got %v (%T)", err, err)
	}
	if mismatch.Expected != "A" || mismatch.Got.Name != "B" {
		t.Errorf("unexpected mismatch details: %+v", mismatch)
	}
}

func TestOrPicksFirstMatchingAlternative(t *testing.T) {
	p := New(toks("B"))
	root, err := p.Rule("Root", func() error {
		return p.Or(
			Named("A", func() error { return p.Terminal("A") }),
			Named("B", func() error { return p.Terminal("B") }),
		)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(root.Children) != 1 || root.Children[0].Name != "B" {
		t.Fatalf("expected single B child, got %+v", root.Children)
	}
}

func TestOrBacktrackNeutrality(t *testing.T) {
	// The first alternative partially matches (consumes A) then fails on
	// the second token; the state after Or must look exactly as if only
	// the second, fully-succeeding alternative had run.
	p := New(toks("A", "C"))
	root, err := p.Rule("Root", func() error {
		return p.Or(
			Named("A-then-B", func() error {
				if err := p.Terminal("A"); err != nil {
					return err
				}
				return p.Terminal("B")
			}),
			Named("A-then-C", func() error {
				if err := p.Terminal("A"); err != nil {
					return err
				}
				return p.Terminal("C")
			}),
		)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(root.Children) != 2 || root.Children[0].Name != "A" || root.Children[1].Name != "C" {
		t.Fatalf("leaked partial match from failed alternative: %+v", root.Children)
	}
	if !p.AtEnd() {
		t.Error("expected cursor to be at end after full match")
	}
}

func TestOrAllAlternativesFail(t *testing.T) {
	p := New(toks("C"))
	_, err := p.Rule("Root", func() error {
		return p.Or(
			Named("A", func() error { return p.Terminal("A") }),
			Named("B", func() error { return p.Terminal("B") }),
		)
	})
	noAlt, ok := err.(NoAlternative)
	if !ok {
		t.Fatalf("expected NoAlternative, got %v (%T)", err, err)
	}
	if len(noAlt.Tried) != 2 {
		t.Errorf("expected both alternatives recorded as tried, got %v", noAlt.Tried)
	}
}

func TestManyZeroOrMore(t *testing.T) {
	p := New(toks("A", "A", "A", "B"))
	root, err := p.Rule("Root", func() error {
		if err := p.Many("As", func() error { return p.Terminal("A") }); err != nil {
			return err
		}
		return p.Terminal("B")
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(root.Children) != 4 {
		t.Fatalf("expected 3 A's and a B, got %d children", len(root.Children))
	}
}

func TestManyStopsCleanlyOnEmptyMatch(t *testing.T) {
	p := New(toks("B"))
	root, err := p.Rule("Root", func() error {
		if err := p.Many("As", func() error { return p.Terminal("A") }); err != nil {
			return err
		}
		return p.Terminal("B")
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(root.Children) != 1 || root.Children[0].Name != "B" {
		t.Fatalf("Many should not have consumed or appended anything: %+v", root.Children)
	}
}

func TestOptionBacktracksCleanly(t *testing.T) {
	// Regression for the "PostfixExpression on bare identifier" scenario:
	// an Option whose body fails must leave no trace at all.
	p := New(toks("A"))
	root, err := p.Rule("Root", func() error {
		if err := p.Terminal("A"); err != nil {
			return err
		}
		return p.Option(func() error { return p.Terminal("PlusPlus") })
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(root.Children) != 1 {
		t.Fatalf("Option leaked a child on failed match: %+v", root.Children)
	}
}

func TestFaultToleranceManyEmitsErrorNodeAndProgresses(t *testing.T) {
	p := New(toks("garbage", "A"))
	root, err := p.Rule("Root", func() error {
		return p.FaultToleranceMany("Items", func() error { return p.Terminal("A") })
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(root.Children) != 2 {
		t.Fatalf("expected an ErrorNode followed by a matched A, got %+v", root.Children)
	}
	if !root.Children[0].IsError() {
		t.Errorf("expected first child to be an ErrorNode, got %s", root.Children[0].Name)
	}
	if root.Children[1].Name != "A" {
		t.Errorf("expected second child A, got %s", root.Children[1].Name)
	}
	if !p.AtEnd() {
		t.Error("expected FaultToleranceMany to consume the whole stream")
	}
}

func TestFaultToleranceManyNeverAborts(t *testing.T) {
	p := New(toks("x", "y", "z"))
	_, err := p.Rule("Root", func() error {
		return p.FaultToleranceMany("Items", func() error { return p.Terminal("A") })
	})
	if err != nil {
		t.Fatalf("FaultToleranceMany must never fail, got %v", err)
	}
	if !p.AtEnd() {
		t.Error("expected every bad token to be skipped")
	}
}

func TestManyNonProgressingRepetitionIsFatal(t *testing.T) {
	p := New(toks("A"))
	_, err := p.Rule("Root", func() error {
		return p.Many("Empty", func() error { return nil })
	})
	if _, ok := err.(NonProgressingRepetition); !ok {
		t.Fatalf("expected NonProgressingRepetition, got %v (%T)", err, err)
	}
}
