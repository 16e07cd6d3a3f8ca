package engine

import (
	"github.com/dhamidi/ecmacst/cst"
	"github.com/dhamidi/ecmacst/token"
)

// Checkpoint is a saved (cursor, nodeStack-depth, top-node-child-count)
// tuple. Checkpoints nest: a Restore undoes only what was appended since
// the matching Save, because it also truncates the open parent's children
// back to the count captured at Save time — Or alternatives may have
// already appended children to the enclosing rule's node before failing.
type Checkpoint struct {
	cur        int
	nodeDepth  int
	childCount int
}

// peek looks at the k-th token ahead of the cursor without consuming it.
func (p *Parser) peek(k int) token.MatchToken {
	return p.tokens.At(p.cur + k)
}

// consume advances the cursor by one token and returns it, failing with
// UnexpectedEnd if the cursor is already at end-of-stream.
func (p *Parser) consume() (token.MatchToken, error) {
	if p.cur >= p.tokens.Len() {
		p.recordFurthest(p.cur, nil, p.peek(0))
		return token.MatchToken{}, UnexpectedEnd{At: p.cur}
	}
	tok := p.tokens.At(p.cur)
	p.cur++
	return tok, nil
}

// save captures the current position for later rollback. It must be
// paired with exactly one commit or restore.
func (p *Parser) save() Checkpoint {
	cp := Checkpoint{
		cur:       p.cur,
		nodeDepth: len(p.nodeStack),
	}
	if top := p.topOrNil(); top != nil {
		cp.childCount = len(top.Children)
	}
	p.saveStack = append(p.saveStack, cp)
	return cp
}

// restore rewinds the cursor to cp, truncates the open parent's children
// back to the count saved at cp, and drops the checkpoint from the
// tracking stack. Nodes pushed after cp are already gone by the time
// restore is called, because Rule pops its own frame on every return
// path (success or failure) before propagating a failure upward.
func (p *Parser) restore(cp Checkpoint) {
	p.cur = cp.cur
	if top := p.topOrNil(); top != nil && cp.childCount <= len(top.Children) {
		top.Children = top.Children[:cp.childCount]
	}
	// By construction every Rule invocation pops its own frame before
	// propagating a failure, so the node stack is already back to
	// cp.nodeDepth by the time a combinator calls restore. This is a
	// belt-and-suspenders check for that invariant, not a mechanism
	// restore relies on to do the truncation itself.
	if len(p.nodeStack) != cp.nodeDepth {
		panic("engine: node stack depth changed across a checkpoint; Rule must pop its own frame on every return path")
	}
	p.popCheckpoint(cp)
}

// commit discards a checkpoint on the success path, without touching the
// cursor or the open parent's children.
func (p *Parser) commit(cp Checkpoint) {
	p.popCheckpoint(cp)
}

// popCheckpoint removes cp from the checkpoint stack. Checkpoints are
// created and destroyed in strict LIFO order by construction (every
// combinator saves, then either commits or restores before returning),
// so cp is always the top of the stack.
func (p *Parser) popCheckpoint(cp Checkpoint) {
	if n := len(p.saveStack); n > 0 {
		p.saveStack = p.saveStack[:n-1]
	}
}

func (p *Parser) topOrNil() *cst.Node {
	if len(p.nodeStack) == 0 {
		return nil
	}
	return p.nodeStack[len(p.nodeStack)-1]
}
