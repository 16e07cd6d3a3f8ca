package ecmascript

import (
	"github.com/dhamidi/ecmacst/cst"
	"github.com/dhamidi/ecmacst/engine"
)

// PrimaryExpression is the base of the whole expression grammar: every
// precedence level eventually bottoms out here. ObjectLiteral is tried
// before ParenExpression's sibling alternatives only in the sense that
// ordering across this Or never matters for these particular
// alternatives, since each starts on a token none of the others do —
// unlike PropertyDefinition below, where ordering is load-bearing.
func (g *ES5Grammar) PrimaryExpression() (*cst.Node, error) {
	return g.Invoke("PrimaryExpression", func() error {
		return g.Or(
			engine.Named("This", g.This),
			engine.Named("IdentifierReference", func() error { _, err := g.IdentifierReference(); return err }),
			engine.Named("Literal", func() error { _, err := g.Literal(); return err }),
			engine.Named("ArrayLiteral", func() error { _, err := g.ArrayLiteral(); return err }),
			engine.Named("ObjectLiteral", func() error { _, err := g.ObjectLiteral(); return err }),
			engine.Named("FunctionExpression", func() error { _, err := g.FunctionExpression(); return err }),
			engine.Named("ParenExpression", func() error { _, err := g.ParenExpression(); return err }),
		)
	})
}

// ParenExpression := "(" Expression ")". This is what lets a parenthesized
// object literal like `({ m() {} })` reach ObjectLiteral through
// Expression rather than needing its own alternative here (spec §8
// scenario "PropertyDefinition ordering").
func (g *ES5Grammar) ParenExpression() (*cst.Node, error) {
	return g.Invoke("ParenExpression", func() error {
		if err := g.LParen(); err != nil {
			return err
		}
		if _, err := g.Expression(); err != nil {
			return err
		}
		return g.RParen()
	})
}

// Literal := NumericLiteral | StringLiteral | BooleanLiteral | NullLiteral.
func (g *ES5Grammar) Literal() (*cst.Node, error) {
	return g.Invoke("Literal", func() error {
		return g.Or(
			engine.Named("NumericLiteral", g.NumericLiteral),
			engine.Named("StringLiteral", g.StringLiteral),
			engine.Named("BooleanLiteral", g.BooleanLiteral),
			engine.Named("NullLiteral", g.NullLiteral),
		)
	})
}

// IdentifierReference wraps a bare Identifier used in expression
// position, distinct from BindingIdentifier used in declaration
// position, even though both consume the same terminal.
func (g *ES5Grammar) IdentifierReference() (*cst.Node, error) {
	return g.Invoke("IdentifierReference", func() error {
		return g.Identifier()
	})
}

// ArrayLiteral := "[" ElementList? "]".
func (g *ES5Grammar) ArrayLiteral() (*cst.Node, error) {
	return g.Invoke("ArrayLiteral", func() error {
		if err := g.LBracket(); err != nil {
			return err
		}
		if err := g.Option(func() error { _, err := g.ElementList(); return err }); err != nil {
			return err
		}
		return g.RBracket()
	})
}

// ElementList := AssignmentExpression ("," AssignmentExpression)*.
func (g *ES5Grammar) ElementList() (*cst.Node, error) {
	return g.Invoke("ElementList", func() error {
		if _, err := g.AssignmentExpression(); err != nil {
			return err
		}
		return g.Many("ElementList", func() error {
			if err := g.Comma(); err != nil {
				return err
			}
			_, err := g.AssignmentExpression()
			return err
		})
	})
}

// ObjectLiteral := "{" PropertyDefinitionList? "}".
func (g *ES5Grammar) ObjectLiteral() (*cst.Node, error) {
	return g.Invoke("ObjectLiteral", func() error {
		if err := g.LBrace(); err != nil {
			return err
		}
		if err := g.Option(func() error { _, err := g.PropertyDefinitionList(); return err }); err != nil {
			return err
		}
		return g.RBrace()
	})
}

// PropertyDefinitionList := PropertyDefinition ("," PropertyDefinition)*.
func (g *ES5Grammar) PropertyDefinitionList() (*cst.Node, error) {
	return g.Invoke("PropertyDefinitionList", func() error {
		if _, err := g.PropertyDefinition(); err != nil {
			return err
		}
		return g.Many("PropertyDefinitionList", func() error {
			if err := g.Comma(); err != nil {
				return err
			}
			_, err := g.PropertyDefinition()
			return err
		})
	})
}

// PropertyDefinition := MethodDefinition | PropertyNameValue | IdentifierReference,
// tried strictly in that order. MethodDefinition must come before
// IdentifierReference: both start on the same PropertyName token, and
// IdentifierReference's shorthand form (a bare name, no "(" following)
// would greedily match the "m" in "m() {}" and leave "() {}" behind for
// PropertyDefinitionList to choke on when it next expects "," or "}"
// (spec §8 scenario "PropertyDefinition ordering" — this is exactly the
// backtracking-vs-ordering distinction the scenario is built to show).
func (g *ES5Grammar) PropertyDefinition() (*cst.Node, error) {
	return g.Invoke("PropertyDefinition", func() error {
		return g.Or(
			engine.Named("MethodDefinition", func() error { _, err := g.MethodDefinition(); return err }),
			engine.Named("PropertyNameValue", func() error { _, err := g.PropertyNameValue(); return err }),
			engine.Named("IdentifierReference", func() error { _, err := g.IdentifierReference(); return err }),
		)
	})
}

// MethodDefinition := PropertyName "(" FormalParameterList? ")" "{" FunctionBody? "}".
func (g *ES5Grammar) MethodDefinition() (*cst.Node, error) {
	return g.Invoke("MethodDefinition", func() error {
		if _, err := g.PropertyName(); err != nil {
			return err
		}
		return g.functionTail()
	})
}

// PropertyNameValue := PropertyName ":" AssignmentExpression.
func (g *ES5Grammar) PropertyNameValue() (*cst.Node, error) {
	return g.Invoke("PropertyNameValue", func() error {
		if _, err := g.PropertyName(); err != nil {
			return err
		}
		if err := g.Colon(); err != nil {
			return err
		}
		_, err := g.AssignmentExpression()
		return err
	})
}

// PropertyName := Identifier | StringLiteral | NumericLiteral.
func (g *ES5Grammar) PropertyName() (*cst.Node, error) {
	return g.Invoke("PropertyName", func() error {
		return g.Or(
			engine.Named("Identifier", g.Identifier),
			engine.Named("StringLiteral", g.StringLiteral),
			engine.Named("NumericLiteral", g.NumericLiteral),
		)
	})
}

// FunctionExpression := "function" BindingIdentifier? "(" FormalParameterList? ")" "{" FunctionBody? "}".
func (g *ES5Grammar) FunctionExpression() (*cst.Node, error) {
	return g.Invoke("FunctionExpression", func() error {
		if err := g.Function(); err != nil {
			return err
		}
		if err := g.Option(func() error { _, err := g.BindingIdentifier(); return err }); err != nil {
			return err
		}
		return g.functionTail()
	})
}

// ArrowParameters is reserved in the rule table but deliberately left
// unimplemented: arrow functions are out of scope for both dialects
// here, so no method implements it and no production refers to it. Keeping the name
// registered (rather than deleting it from es5RuleNames) documents that
// the gap is intentional, not an oversight.
