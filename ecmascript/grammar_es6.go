package ecmascript

import (
	"github.com/dhamidi/ecmacst/cst"
	"github.com/dhamidi/ecmacst/engine"
)

// es6RuleNames extends the ES5 rule table with the class productions
// ES2015 adds. ImportDeclaration and ExportDeclaration need no entry here:
// they are already in es5RuleNames, where ES5Grammar's versions always
// fail (spec §9: "dialect inheritance maps to composition" — here, an
// embedded RuleTable grown with Extend rather than mutated in place).
var es6RuleNames = []string{"ClassDeclaration", "ClassBody", "ClassElement"}

// ES6Grammar is the ECMAScript 2015 dialect. It embeds ES5Grammar for
// every rule it doesn't need to change and ES6Terminals for the
// terminals ES5 doesn't have. VariableLetOrConst, StatementListItem,
// ImportDeclaration, and ExportDeclaration are overridden below; every
// override reaches its callers through ES5Grammar.self (see
// dialectHooks in grammar_es5.go), not through embedding alone.
type ES6Grammar struct {
	ES5Grammar
	ES6Terminals
}

// Or, Many, and Option are promoted ambiguously from both ES5Grammar
// (via Grammar) and ES6Terminals (via Terminals), which wrap the same
// underlying *engine.Parser. These forward explicitly to break the
// ambiguity without changing behavior.
func (g *ES6Grammar) Or(alternatives ...engine.Alt) error {
	return g.ES5Grammar.Or(alternatives...)
}

func (g *ES6Grammar) Many(rule string, body engine.Thunk) error {
	return g.ES5Grammar.Many(rule, body)
}

func (g *ES6Grammar) Option(body engine.Thunk) error {
	return g.ES5Grammar.Option(body)
}

// NewES6 builds an ES2015 grammar instance over p.
func NewES6(p *engine.Parser) *ES6Grammar {
	g := &ES6Grammar{}
	rules := engine.NewRuleTable(es5RuleNames...).Extend(es6RuleNames...)
	g.ES5Grammar.Grammar = engine.NewGrammar(p, rules, "ES6Grammar")
	g.ES5Grammar.ES5Terminals = ES5Terminals{Terminals: engine.Terminals{Parser: p}}
	g.ES6Terminals = ES6Terminals{Terminals: engine.Terminals{Parser: p}}
	g.ES5Grammar.self = g
	return g
}

// VariableLetOrConst overrides ES5Grammar's var-only version to also
// accept let and const (spec §8 scenario "let x = 1;" is only reachable
// under this dialect).
func (g *ES6Grammar) VariableLetOrConst() (*cst.Node, error) {
	return g.Invoke("VariableLetOrConst", func() error {
		return g.Or(
			engine.Named("Let", g.Let),
			engine.Named("Const", g.Const),
			engine.Named("Var", g.Var),
		)
	})
}

// StatementListItem overrides ES5Grammar's version to also accept a
// ClassDeclaration, tried ahead of the ES5 alternatives.
func (g *ES6Grammar) StatementListItem() (*cst.Node, error) {
	return g.Invoke("StatementListItem", func() error {
		return g.Or(
			engine.Named("ClassDeclaration", func() error { _, err := g.ClassDeclaration(); return err }),
			engine.Named("FunctionDeclaration", func() error { _, err := g.FunctionDeclaration(); return err }),
			engine.Named("Statement", func() error { _, err := g.Statement(); return err }),
		)
	})
}

// ImportDeclaration := "import" BindingIdentifier "from" StringLiteral ";".
// A default-import-only form; named and namespace imports are the kind
// of module-system detail this grammar doesn't attempt to be exhaustive
// about.
func (g *ES6Grammar) ImportDeclaration() (*cst.Node, error) {
	return g.Invoke("ImportDeclaration", func() error {
		if err := g.Import(); err != nil {
			return err
		}
		if _, err := g.BindingIdentifier(); err != nil {
			return err
		}
		if err := g.From(); err != nil {
			return err
		}
		if err := g.StringLiteral(); err != nil {
			return err
		}
		return g.Semicolon()
	})
}

// ExportDeclaration := "export" "default" AssignmentExpression ";"
// | "export" StatementListItem.
func (g *ES6Grammar) ExportDeclaration() (*cst.Node, error) {
	return g.Invoke("ExportDeclaration", func() error {
		if err := g.Export(); err != nil {
			return err
		}
		return g.Or(
			engine.Named("ExportDefault", func() error {
				if err := g.Default(); err != nil {
					return err
				}
				if _, err := g.AssignmentExpression(); err != nil {
					return err
				}
				return g.Semicolon()
			}),
			engine.Named("ExportDeclared", func() error {
				_, err := g.StatementListItem()
				return err
			}),
		)
	})
}

// ClassDeclaration := "class" BindingIdentifier ("extends" LeftHandSideExpression)? "{" ClassBody? "}".
func (g *ES6Grammar) ClassDeclaration() (*cst.Node, error) {
	return g.Invoke("ClassDeclaration", func() error {
		if err := g.Class(); err != nil {
			return err
		}
		if _, err := g.BindingIdentifier(); err != nil {
			return err
		}
		if err := g.Option(func() error {
			if err := g.Extends(); err != nil {
				return err
			}
			_, err := g.LeftHandSideExpression()
			return err
		}); err != nil {
			return err
		}
		if err := g.LBrace(); err != nil {
			return err
		}
		if err := g.Option(func() error { _, err := g.ClassBody(); return err }); err != nil {
			return err
		}
		return g.RBrace()
	})
}

// ClassBody := ClassElement+.
func (g *ES6Grammar) ClassBody() (*cst.Node, error) {
	return g.Invoke("ClassBody", func() error {
		if _, err := g.ClassElement(); err != nil {
			return err
		}
		return g.Many("ClassBody", func() error {
			_, err := g.ClassElement()
			return err
		})
	})
}

// ClassElement reuses MethodDefinition wholesale: a class element here is
// just a method, no static/getter/setter modifiers.
func (g *ES6Grammar) ClassElement() (*cst.Node, error) {
	return g.Invoke("ClassElement", func() error {
		_, err := g.MethodDefinition()
		return err
	})
}
