package ecmascript

import (
	"github.com/dhamidi/ecmacst/cst"
	"github.com/dhamidi/ecmacst/engine"
)

// Program is the grammar's entry rule: a single ModuleItemList child, no
// other structure. Its Loc is nil on an empty source, since ModuleItemList
// itself will have produced zero children (spec §8 scenario "Empty
// module").
func (g *ES5Grammar) Program() (*cst.Node, error) {
	return g.Invoke("Program", func() error {
		_, err := g.ModuleItemList()
		return err
	})
}

// ModuleItemList is the fault-tolerant top-level loop (spec §4.4): each
// iteration tries an ImportDeclaration, an ExportDeclaration, or a
// StatementListItem, in that order. A recoverable failure of all three
// does not abort the parse — FaultToleranceMany appends a synthetic
// ErrorNode for the offending token and force-advances by one, so a
// single bad top-level item never prevents the rest of the module from
// parsing (spec §8 scenario "Fault-tolerant top level").
func (g *ES5Grammar) ModuleItemList() (*cst.Node, error) {
	return g.Invoke("ModuleItemList", func() error {
		return g.FaultToleranceMany("ModuleItemList", func() error {
			return g.Or(
				engine.Named("ImportDeclaration", func() error {
					_, err := g.self.ImportDeclaration()
					return err
				}),
				engine.Named("ExportDeclaration", func() error {
					_, err := g.self.ExportDeclaration()
					return err
				}),
				engine.Named("StatementListItem", func() error {
					_, err := g.self.StatementListItem()
					return err
				}),
			)
		})
	})
}

// ImportDeclaration is ES2015-only. ES5Grammar has no ImportTok consumer
// at all, so this base version always fails recoverably and lets
// ModuleItemList's Or move on to the next alternative; ES6Grammar
// overrides it with the real production.
func (g *ES5Grammar) ImportDeclaration() (*cst.Node, error) {
	return g.Invoke("ImportDeclaration", func() error {
		return engine.TokenMismatch{Expected: "es2015-only", At: -1}
	})
}

// ExportDeclaration mirrors ImportDeclaration: unreachable under ES5,
// overridden by ES6Grammar.
func (g *ES5Grammar) ExportDeclaration() (*cst.Node, error) {
	return g.Invoke("ExportDeclaration", func() error {
		return engine.TokenMismatch{Expected: "es2015-only", At: -1}
	})
}

// StatementListItem := FunctionDeclaration | Statement in ES5.
// ES6Grammar overrides this to add ClassDeclaration as a further
// alternative, tried ahead of both.
func (g *ES5Grammar) StatementListItem() (*cst.Node, error) {
	return g.Invoke("StatementListItem", func() error {
		return g.Or(
			engine.Named("FunctionDeclaration", func() error {
				_, err := g.FunctionDeclaration()
				return err
			}),
			engine.Named("Statement", func() error {
				_, err := g.Statement()
				return err
			}),
		)
	})
}
