// Package astbuilder lowers a parsed CST into a small typed AST. Per
// spec.md's own scoping, AST shapes are a thin external concern layered
// on top of the engine, not something the engine itself knows about;
// this package exists to prove that CST.Node's public shape
// (Name/Value/Loc/Children plus FindChildByName/FindChildrenByName) is
// enough to build a real consumer on top of, not to be a complete
// ECMAScript AST.
package astbuilder

// Node is implemented by every AST node this package produces.
type Node interface {
	astNode()
}

// Program is the AST root: the module's statements in source order.
type Program struct {
	Body []Node
}

func (*Program) astNode() {}

// VariableDeclaration is `var|let|const x = ..., y = ...;`.
type VariableDeclaration struct {
	Kind         string // "var", "let", or "const"
	Declarations []*VariableDeclarator
}

func (*VariableDeclaration) astNode() {}

// VariableDeclarator is one `x` or `x = value` inside a declaration list.
type VariableDeclarator struct {
	Id   *Identifier
	Init Node // nil if uninitialized
}

func (*VariableDeclarator) astNode() {}

// Identifier is a bare name in expression or binding position.
type Identifier struct {
	Name string
}

func (*Identifier) astNode() {}

// NumericLiteral holds the literal's source text verbatim; no numeric
// interpretation is performed.
type NumericLiteral struct {
	Value string
}

func (*NumericLiteral) astNode() {}

// StringLiteral holds the literal's source text between its quotes,
// with no escape processing.
type StringLiteral struct {
	Value string
}

func (*StringLiteral) astNode() {}

// BinaryExpression covers every binary operator this package lowers,
// spanning the whole precedence chain (arithmetic, comparison, logical,
// bitwise) plus assignment, represented with Operator "=".
type BinaryExpression struct {
	Operator string
	Left     Node
	Right    Node
}

func (*BinaryExpression) astNode() {}

// CallExpression is `callee(arguments...)`.
type CallExpression struct {
	Callee    Node
	Arguments []Node
}

func (*CallExpression) astNode() {}

// MemberExpression is `object.property` (Computed false) or
// `object[property]` (Computed true).
type MemberExpression struct {
	Object   Node
	Property Node
	Computed bool
}

func (*MemberExpression) astNode() {}

// ExpressionStatement is a bare expression used as a statement.
type ExpressionStatement struct {
	Expression Node
}

func (*ExpressionStatement) astNode() {}
