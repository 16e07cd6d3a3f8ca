package engine

import (
	"errors"

	"github.com/dhamidi/ecmacst/cst"
	"github.com/dhamidi/ecmacst/token"
)

// EntryFunc is a grammar's top-level rule, e.g. (*ES5Grammar).Program.
type EntryFunc func() (*cst.Node, error)

// Parse drives entry to build a CST over p's whole token stream, or
// returns a ParseError describing why it couldn't. entry is invoked
// through a synthetic root frame (spec §4.2 "Entry"): a throwaway node is
// pushed before calling entry so that entry, like every other rule,
// always has something to attach itself to, and the synthetic root's
// only child — entry's own node — is returned as the parse result.
//
// Fatal engine errors (NonProgressingRepetition, checkpoint imbalance)
// surface as a ParseError with Kind "internal". An uncaught recoverable
// failure surfaces as a ParseError positioned at the furthest cursor
// reached during the whole parse, not the position of the last attempt —
// the standard recursive-descent "furthest-reach" diagnostic (spec §7).
func Parse(p *Parser, entry EntryFunc) (*cst.Node, error) {
	root := cst.NewRule("__root__")
	p.nodeStack = append(p.nodeStack, root)

	node, err := entry()

	p.nodeStack = p.nodeStack[:len(p.nodeStack)-1]

	if len(p.saveStack) != 0 {
		return nil, &ParseError{Kind: "internal", Message: ErrCheckpointImbalance.Error()}
	}

	if err != nil {
		return nil, p.toParseError(err)
	}

	// Rule already attached node to root as a side effect of entry()
	// running with root as the open parent; nothing left to do but hand
	// it back.
	return node, nil
}

func (p *Parser) toParseError(err error) *ParseError {
	var nonProgressing NonProgressingRepetition
	if errors.As(err, &nonProgressing) {
		return &ParseError{Kind: "internal", Message: nonProgressing.Error()}
	}

	// Recoverable failure that escaped every combinator: report the
	// furthest position reached across the whole parse, per §7.
	if p.sawFurthest {
		return &ParseError{
			Kind:     "syntax",
			At:       p.locationAt(p.furthestAt),
			Expected: dedupe(p.furthestExpected),
			Got:      p.furthestGot,
			Message:  err.Error(),
		}
	}
	return &ParseError{Kind: "syntax", Message: err.Error()}
}

func (p *Parser) locationAt(index int) token.SourceLocation {
	return p.tokens.At(index).Loc()
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
