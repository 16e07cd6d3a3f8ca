// Package cst defines the concrete syntax tree built by the parsing
// engine: every grammar rule produces a named Node, and every matched
// token produces a leaf Node holding that token's value.
package cst

import "github.com/dhamidi/ecmacst/token"

// Node is a single CST node. Name is the rule name for interior nodes, or
// the terminal name for leaves. Value is non-nil only on leaves. Loc is
// nil iff the node consumed zero tokens and has no descendants.
type Node struct {
	Name       string
	Value      *string
	Loc        *token.SourceLocation
	Children   []*Node
	IsTerminal bool
}

// NewTerminal builds a leaf node from a matched token.
func NewTerminal(name string, tok token.MatchToken) *Node {
	value := tok.Value
	loc := tok.Loc()
	return &Node{
		Name:       name,
		Value:      &value,
		Loc:        &loc,
		IsTerminal: true,
	}
}

// NewRule builds an empty interior node for the given rule name. Its Loc
// is computed once children have been attached, via RecomputeLoc.
func NewRule(name string) *Node {
	return &Node{Name: name}
}

// NewError builds the sentinel node FaultToleranceMany emits when it
// skips a token instead of aborting the parse.
func NewError(at token.MatchToken) *Node {
	loc := at.Loc()
	value := at.Value
	return &Node{
		Name:  "ErrorNode",
		Value: &value,
		Loc:   &loc,
	}
}

// AddChild appends a child in source order. Nil children are ignored so
// that helper methods can freely propagate "no node produced" results
// (e.g. an Option that didn't match anything).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		return
	}
	n.Children = append(n.Children, child)
}

// RecomputeLoc derives n.Loc from its first and last descendant leaves,
// per the invariant in spec §3: a non-terminal's Loc.Start equals its
// first descendant leaf's start, and Loc.End equals its last descendant
// leaf's end. If it has no children, Loc stays nil.
func (n *Node) RecomputeLoc() {
	if n.IsTerminal {
		return
	}
	var first, last *token.SourceLocation
	for _, child := range n.Children {
		if child.Loc == nil {
			continue
		}
		if first == nil {
			first = child.Loc
		}
		last = child.Loc
	}
	if first == nil {
		n.Loc = nil
		return
	}
	n.Loc = &token.SourceLocation{
		Start: first.Start,
		End:   last.End,
		Index: first.Index,
	}
}

// IsError reports whether n is a FaultToleranceMany-emitted sentinel.
func (n *Node) IsError() bool {
	return n.Name == "ErrorNode"
}

// FindChildByName returns the first child with the given name, or nil.
func (n *Node) FindChildByName(name string) *Node {
	for _, child := range n.Children {
		if child.Name == name {
			return child
		}
	}
	return nil
}

// FindChildrenByName returns every child with the given name, in source
// order.
func (n *Node) FindChildrenByName(name string) []*Node {
	var result []*Node
	for _, child := range n.Children {
		if child.Name == name {
			result = append(result, child)
		}
	}
	return result
}

// TokenValue returns n.Value dereferenced, or "" for a non-terminal.
func (n *Node) TokenValue() string {
	if n.Value == nil {
		return ""
	}
	return *n.Value
}
