package ecmascript

import (
	"github.com/dhamidi/ecmacst/cst"
	"github.com/dhamidi/ecmacst/engine"
)

// Statement covers everything that can appear where a bare statement is
// legal. VariableDeclaration is listed directly as an alternative rather
// than through an intermediate VariableStatement wrapper, so a `let x =
// 1;` module item's CST reads StatementListItem -> Statement ->
// VariableDeclaration -> [...] with no extra layer in between.
func (g *ES5Grammar) Statement() (*cst.Node, error) {
	return g.Invoke("Statement", func() error {
		return g.Or(
			engine.Named("Block", func() error { _, err := g.Block(); return err }),
			engine.Named("VariableDeclaration", func() error { _, err := g.VariableDeclaration(); return err }),
			engine.Named("EmptyStatement", func() error { _, err := g.EmptyStatement(); return err }),
			engine.Named("IfStatement", func() error { _, err := g.IfStatement(); return err }),
			engine.Named("ReturnStatement", func() error { _, err := g.ReturnStatement(); return err }),
			engine.Named("ExpressionStatement", func() error { _, err := g.ExpressionStatement(); return err }),
		)
	})
}

// Block := "{" StatementList? "}".
func (g *ES5Grammar) Block() (*cst.Node, error) {
	return g.Invoke("Block", func() error {
		if err := g.LBrace(); err != nil {
			return err
		}
		if err := g.Option(func() error { _, err := g.StatementList(); return err }); err != nil {
			return err
		}
		return g.RBrace()
	})
}

// StatementList := StatementListItem+.
func (g *ES5Grammar) StatementList() (*cst.Node, error) {
	return g.Invoke("StatementList", func() error {
		if _, err := g.self.StatementListItem(); err != nil {
			return err
		}
		return g.Many("StatementList", func() error {
			_, err := g.self.StatementListItem()
			return err
		})
	})
}

// EmptyStatement := ";".
func (g *ES5Grammar) EmptyStatement() (*cst.Node, error) {
	return g.Invoke("EmptyStatement", func() error {
		return g.Semicolon()
	})
}

// ExpressionStatement := Expression ";".
func (g *ES5Grammar) ExpressionStatement() (*cst.Node, error) {
	return g.Invoke("ExpressionStatement", func() error {
		if _, err := g.Expression(); err != nil {
			return err
		}
		return g.Semicolon()
	})
}

// IfStatement := "if" "(" Expression ")" Statement ("else" Statement)?.
func (g *ES5Grammar) IfStatement() (*cst.Node, error) {
	return g.Invoke("IfStatement", func() error {
		if err := g.If(); err != nil {
			return err
		}
		if err := g.LParen(); err != nil {
			return err
		}
		if _, err := g.Expression(); err != nil {
			return err
		}
		if err := g.RParen(); err != nil {
			return err
		}
		if _, err := g.Statement(); err != nil {
			return err
		}
		return g.Option(func() error {
			if err := g.Else(); err != nil {
				return err
			}
			_, err := g.Statement()
			return err
		})
	})
}

// ReturnStatement := "return" Expression? ";".
func (g *ES5Grammar) ReturnStatement() (*cst.Node, error) {
	return g.Invoke("ReturnStatement", func() error {
		if err := g.Return(); err != nil {
			return err
		}
		if err := g.Option(func() error { _, err := g.Expression(); return err }); err != nil {
			return err
		}
		return g.Semicolon()
	})
}
