package engine

import (
	"github.com/dhamidi/ecmacst/cst"
	"github.com/dhamidi/ecmacst/token"
)

// Parser is the rule runtime: it owns the token stream, the cursor
// position, the stack of in-progress CST nodes, and the checkpoint stack
// used for speculative backtracking. A Parser is not reentrant — rules
// recurse on the same instance — but separate Parser instances share no
// mutable state and may run concurrently.
type Parser struct {
	tokens    *token.View
	cur       int
	nodeStack []*cst.Node
	saveStack []Checkpoint

	furthestAt       int
	furthestExpected []string
	furthestGot      token.MatchToken
	sawFurthest      bool
}

// New builds a Parser over a fixed token stream. The token slice is read
// only; New never mutates it.
func New(tokens []token.MatchToken) *Parser {
	return &Parser{tokens: token.NewView(tokens)}
}

// Thunk is the body of a rule, a helper, or a single Or alternative: a
// closure that appends matches to whatever CST node is currently open
// (see GetCurCst) and returns a recoverable or fatal error on failure.
type Thunk func() error

// Rule runs body as a rule invocation (spec §4.2): it pushes a fresh node
// named name, runs body against it, and on success pops the node, fills
// in its Loc, and appends it to the new top of the node stack. On
// failure the node is discarded without being attached anywhere, and the
// error propagates to the caller (typically a combinator) to decide
// whether to roll back and try something else.
//
// This is the "single generic rule(name, body) form" that spec §4.6
// calls out as an equivalent to decorator-based rule marking: rule-ness
// is a property of *how a grammar method is written*, not of its shape.
// A grammar method that never calls Rule is a helper (§4.6): its matches
// land directly on the caller's open node.
func (p *Parser) Rule(name string, body Thunk) (*cst.Node, error) {
	n := cst.NewRule(name)
	p.nodeStack = append(p.nodeStack, n)
	err := body()
	p.nodeStack = p.nodeStack[:len(p.nodeStack)-1]
	if err != nil {
		return nil, err
	}
	n.RecomputeLoc()
	if top := p.topOrNil(); top != nil {
		top.AddChild(n)
	}
	return n, nil
}

// Terminal attempts to match the current token against name. On success
// it consumes the token, builds a leaf CST node from it, appends the
// leaf to the currently open node, and returns nil. On failure it
// returns TokenMismatch without consuming anything or touching the CST.
func (p *Parser) Terminal(name string) error {
	next := p.peek(0)
	if next.Name != name {
		p.recordFurthest(p.cur, []string{name}, next)
		return TokenMismatch{Expected: name, Got: next, At: p.cur}
	}
	p.cur++
	leaf := cst.NewTerminal(name, next)
	if top := p.topOrNil(); top != nil {
		top.AddChild(leaf)
	}
	return nil
}

// Peek exposes the current lookahead token to grammar code that needs to
// make an ordered-choice decision without consuming (e.g. deciding which
// Or alternative is even worth attempting). It never mutates state.
func (p *Parser) Peek(k int) token.MatchToken {
	return p.peek(k)
}

// GetCurCst returns the CST node currently open for appends — the top of
// the node stack — or nil before any rule has been entered.
func (p *Parser) GetCurCst() *cst.Node {
	return p.topOrNil()
}

// AtEnd reports whether the cursor has consumed every real token.
func (p *Parser) AtEnd() bool {
	return p.cur >= p.tokens.Len()
}

func errorNodeFor(tok token.MatchToken) *cst.Node {
	return cst.NewError(tok)
}

func (p *Parser) recordFurthest(at int, expected []string, got token.MatchToken) {
	if !p.sawFurthest || at > p.furthestAt {
		p.furthestAt = at
		p.furthestExpected = append([]string(nil), expected...)
		p.furthestGot = got
		p.sawFurthest = true
	} else if at == p.furthestAt {
		p.furthestExpected = append(p.furthestExpected, expected...)
	}
}
