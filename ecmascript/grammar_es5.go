// Package ecmascript is the external collaborator that drives package
// engine: a hand-written ES5 + ES2015 grammar built entirely out of
// engine.Grammar.Invoke, engine.Terminals, and the four combinators. It
// is grammar-specific in exactly the way the engine is not (spec §1).
package ecmascript

import (
	"github.com/dhamidi/ecmacst/cst"
	"github.com/dhamidi/ecmacst/engine"
)

// es5RuleNames is the ES5 dialect's rule table (spec §4.6): every method
// name listed here pushes a CST node when invoked through Grammar.Invoke;
// anything not listed runs as a helper directly against the caller's
// open node. Known in full before any parsing starts.
var es5RuleNames = []string{
	"Program", "ModuleItemList", "ImportDeclaration", "ExportDeclaration", "StatementListItem",
	"Statement", "Block", "StatementList", "EmptyStatement", "ExpressionStatement",
	"IfStatement", "ReturnStatement",
	"VariableDeclaration", "VariableLetOrConst", "VariableDeclarationList", "VariableDeclarator",
	"BindingIdentifier", "Initializer",
	"FunctionDeclaration", "FunctionExpression", "FormalParameterList", "FunctionBody",
	"Expression", "AssignmentExpression", "ConditionalExpression",
	"LogicalORExpression", "LogicalANDExpression",
	"BitwiseORExpression", "BitwiseXORExpression", "BitwiseANDExpression",
	"EqualityExpression", "RelationalExpression", "ShiftExpression",
	"AdditiveExpression", "MultiplicativeExpression",
	"UnaryExpression", "PostfixExpression",
	"LeftHandSideExpression", "NewExpression", "CallExpression", "MemberExpression",
	"Arguments", "ArgumentList", "BracketExpression",
	"PrimaryExpression", "ParenExpression", "Literal",
	"ArrayLiteral", "ElementList",
	"ObjectLiteral", "PropertyDefinitionList", "PropertyDefinition",
	"MethodDefinition", "PropertyNameValue", "IdentifierReference", "PropertyName",
	"ArrowParameters",
}

// dialectHooks is every rule method a dialect can override. Go's struct
// embedding gives method *shadowing* — an outer type's method of the
// same name hides the embedded one for callers holding the outer type —
// but it does not give virtual dispatch: a method defined on ES5Grammar
// that calls g.StatementListItem() directly always calls ES5Grammar's
// own StatementListItem, even when that ES5Grammar value is embedded
// inside an ES6Grammar that shadows it. Every ES5Grammar method that
// needs to see an ES2015 override therefore calls through g.self instead
// of calling the method directly; NewES6 is what points self at the
// outer ES6Grammar (spec §9: "dialect inheritance maps to composition" —
// composition here needs one explicit indirection Go doesn't give for
// free).
type dialectHooks interface {
	VariableLetOrConst() (*cst.Node, error)
	StatementListItem() (*cst.Node, error)
	ImportDeclaration() (*cst.Node, error)
	ExportDeclaration() (*cst.Node, error)
}

// ES5Grammar is the ECMAScript 5 dialect. It embeds engine.Grammar for
// Invoke/Or/Many/Option/FaultToleranceMany and ES5Terminals for its
// per-terminal Consume wrappers.
type ES5Grammar struct {
	engine.Grammar
	ES5Terminals
	self dialectHooks
}

// NewES5 builds an ES5 grammar instance over p.
func NewES5(p *engine.Parser) *ES5Grammar {
	g := &ES5Grammar{}
	g.Grammar = engine.NewGrammar(p, engine.NewRuleTable(es5RuleNames...), "ES5Grammar")
	g.ES5Terminals = ES5Terminals{Terminals: engine.Terminals{Parser: p}}
	g.self = g
	return g
}

// Parse runs the entry rule (Program) of the named dialect over p's whole
// token stream: "es5" or "" selects ES5Grammar, "es2015" or "es6"
// selects ES6Grammar, and any other name returns a ParseError of Kind
// "config".
func Parse(p *engine.Parser, dialect string) (*cst.Node, error) {
	switch dialect {
	case "es5", "":
		g := NewES5(p)
		return engine.Parse(p, func() (*cst.Node, error) { return g.Program() })
	case "es2015", "es6":
		g := NewES6(p)
		return engine.Parse(p, func() (*cst.Node, error) { return g.Program() })
	default:
		return nil, &engine.ParseError{Kind: "config", Message: "unknown dialect: " + dialect}
	}
}
