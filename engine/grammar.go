package engine

import "github.com/dhamidi/ecmacst/cst"

// Grammar is the base a concrete ECMAScript dialect embeds. It pairs a
// Parser with the dialect's RuleTable and the dialect's own name (spec
// §4.6: "the grammar class also tracks thisClassName so that rule nodes
// carry the dialect name for diagnostic tooling" — note that a CST
// node's Name is always the rule name, never the class name). DialectName
// is stored on the Grammar only: no CST node and no error message
// carries it.
type Grammar struct {
	*Parser
	Rules       *RuleTable
	DialectName string
}

// NewGrammar builds a Grammar over an already-constructed Parser.
func NewGrammar(p *Parser, rules *RuleTable, dialectName string) Grammar {
	return Grammar{Parser: p, Rules: rules, DialectName: dialectName}
}

// Invoke runs a grammar method's body under name, deciding whether to
// wrap it as a rule (push/pop a node) or run it as a helper (append
// directly to the caller's open node) purely by looking name up in the
// dialect's RuleTable — never by inspecting body itself. A grammar
// method that goes through the table calls this exactly once as its
// first statement, and the distinction is invisible to its callers;
// plain Go helpers that never call Invoke (such as ecmascript's
// functionTail) always append to the caller's open node.
func (g Grammar) Invoke(name string, body Thunk) (*cst.Node, error) {
	if g.Rules.IsRule(name) {
		return g.Rule(name, body)
	}
	if err := body(); err != nil {
		return nil, err
	}
	return g.GetCurCst(), nil
}

// Terminals is the token-consumer base from spec §4.5: a polymorphic
// base a grammar dialect embeds to get one method per terminal name. It
// is deliberately minimal — Consume is the only primitive — because the
// per-terminal methods themselves (Identifier(), LParen(), ...) belong
// to the dialect, which knows what its terminal names actually are.
// ES2015 extends the terminal set with a second consumer type that embeds
// Terminals directly and sits beside ES5's in the ES2015 grammar (spec
// §9: "dialect inheritance maps to composition").
type Terminals struct {
	*Parser
}

// Consume matches and consumes exactly one token named name, appending a
// leaf CST node to the currently open parent. It is the single method
// every per-terminal method (Identifier, LParen, Semicolon, ...)
// forwards to.
func (t Terminals) Consume(name string) error {
	return t.Terminal(name)
}
