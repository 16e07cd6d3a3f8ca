package ecmascript

import (
	"github.com/dhamidi/ecmacst/cst"
)

// VariableDeclaration := VariableLetOrConst VariableDeclarationList ";"
// (three children, in order: spec §8 scenario "let x = 1;").
//
// ES5Grammar.VariableLetOrConst only ever matches "var"; ES6Grammar
// overrides it to also accept "let" and "const" (spec §9: dialect
// inheritance maps to method shadowing over an embedded base).
func (g *ES5Grammar) VariableDeclaration() (*cst.Node, error) {
	return g.Invoke("VariableDeclaration", func() error {
		if _, err := g.self.VariableLetOrConst(); err != nil {
			return err
		}
		if _, err := g.VariableDeclarationList(); err != nil {
			return err
		}
		return g.Semicolon()
	})
}

// VariableLetOrConst is a rule (not a bare terminal call) so it shows up
// as its own CST node regardless of which keyword it matched — the
// grammar author's choice from spec §4.6 to make a single-terminal
// production a rule when downstream tooling wants to know "this was a
// variable-introducing keyword" without inspecting the leaf's value.
func (g *ES5Grammar) VariableLetOrConst() (*cst.Node, error) {
	return g.Invoke("VariableLetOrConst", func() error {
		return g.Var()
	})
}

// VariableDeclarationList := VariableDeclarator ("," VariableDeclarator)*.
func (g *ES5Grammar) VariableDeclarationList() (*cst.Node, error) {
	return g.Invoke("VariableDeclarationList", func() error {
		if _, err := g.VariableDeclarator(); err != nil {
			return err
		}
		return g.Many("VariableDeclarationList", func() error {
			if err := g.Comma(); err != nil {
				return err
			}
			_, err := g.VariableDeclarator()
			return err
		})
	})
}

// VariableDeclarator := BindingIdentifier Initializer?.
func (g *ES5Grammar) VariableDeclarator() (*cst.Node, error) {
	return g.Invoke("VariableDeclarator", func() error {
		if _, err := g.BindingIdentifier(); err != nil {
			return err
		}
		return g.Option(func() error { _, err := g.Initializer(); return err })
	})
}

// BindingIdentifier wraps a plain Identifier so that binding positions
// (parameters, declarators, function and class names, default imports)
// share one rule name in the
// CST regardless of where they occur.
func (g *ES5Grammar) BindingIdentifier() (*cst.Node, error) {
	return g.Invoke("BindingIdentifier", func() error {
		return g.Identifier()
	})
}

// Initializer := "=" AssignmentExpression.
func (g *ES5Grammar) Initializer() (*cst.Node, error) {
	return g.Invoke("Initializer", func() error {
		if err := g.Eq(); err != nil {
			return err
		}
		_, err := g.AssignmentExpression()
		return err
	})
}

// FunctionDeclaration := "function" BindingIdentifier "(" FormalParameterList? ")" "{" FunctionBody? "}".
func (g *ES5Grammar) FunctionDeclaration() (*cst.Node, error) {
	return g.Invoke("FunctionDeclaration", func() error {
		if err := g.Function(); err != nil {
			return err
		}
		if _, err := g.BindingIdentifier(); err != nil {
			return err
		}
		return g.functionTail()
	})
}

// functionTail is a helper (not a rule): the "(" params ")" "{" body "}"
// shape shared by FunctionDeclaration and FunctionExpression.
func (g *ES5Grammar) functionTail() error {
	if err := g.LParen(); err != nil {
		return err
	}
	if err := g.Option(func() error { _, err := g.FormalParameterList(); return err }); err != nil {
		return err
	}
	if err := g.RParen(); err != nil {
		return err
	}
	if err := g.LBrace(); err != nil {
		return err
	}
	if err := g.Option(func() error { _, err := g.FunctionBody(); return err }); err != nil {
		return err
	}
	return g.RBrace()
}

// FormalParameterList := BindingIdentifier ("," BindingIdentifier)*.
func (g *ES5Grammar) FormalParameterList() (*cst.Node, error) {
	return g.Invoke("FormalParameterList", func() error {
		if _, err := g.BindingIdentifier(); err != nil {
			return err
		}
		return g.Many("FormalParameterList", func() error {
			if err := g.Comma(); err != nil {
				return err
			}
			_, err := g.BindingIdentifier()
			return err
		})
	})
}

// FunctionBody := StatementListItem+ (an empty body is handled by the
// Option around FunctionBody in functionTail). A function body is a
// sequence of statements/declarations, not fault-tolerant — FaultToleranceMany is
// reserved for the module top level per spec §4.4).
func (g *ES5Grammar) FunctionBody() (*cst.Node, error) {
	return g.Invoke("FunctionBody", func() error {
		if _, err := g.self.StatementListItem(); err != nil {
			return err
		}
		return g.Many("FunctionBody", func() error {
			_, err := g.self.StatementListItem()
			return err
		})
	})
}
