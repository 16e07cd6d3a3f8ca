package ecmascript

import (
	"github.com/dhamidi/ecmacst/cst"
	"github.com/dhamidi/ecmacst/engine"
)

// opAlt names one operator alternative of a left-associative binary
// precedence level: the alternative's name and the terminal to consume.
// The next-tighter level parsed on its right-hand side is leftAssoc's
// next argument, shared by every opAlt of that level.
type opAlt struct {
	name    string
	consume func() error
}

// leftAssoc parses `next (op next)*` for one precedence level and wraps
// it as rule, mirroring spec §4.7's "each precedence level is its own
// distinct Or/Many-driven rule" without repeating the same three lines
// ten times across the chain. Each call site still registers its own
// rule name in es5RuleNames and produces its own CST node — this only
// factors out the boilerplate body, not the grammar structure.
func (g *ES5Grammar) leftAssoc(ruleName string, next func() (*cst.Node, error), ops []opAlt) (*cst.Node, error) {
	return g.Invoke(ruleName, func() error {
		if _, err := next(); err != nil {
			return err
		}
		return g.Many(ruleName, func() error {
			alts := make([]engine.Alt, len(ops))
			for i, o := range ops {
				o := o
				alts[i] = engine.Named(o.name, func() error {
					if err := o.consume(); err != nil {
						return err
					}
					_, err := next()
					return err
				})
			}
			return g.Or(alts...)
		})
	})
}

// Expression := AssignmentExpression ("," AssignmentExpression)*.
func (g *ES5Grammar) Expression() (*cst.Node, error) {
	return g.Invoke("Expression", func() error {
		if _, err := g.AssignmentExpression(); err != nil {
			return err
		}
		return g.Many("Expression", func() error {
			if err := g.Comma(); err != nil {
				return err
			}
			_, err := g.AssignmentExpression()
			return err
		})
	})
}

// AssignmentExpression := LeftHandSideExpression "=" AssignmentExpression
// | ConditionalExpression. The assignment form is tried first since a
// LeftHandSideExpression is always also a valid ConditionalExpression
// prefix; Or's backtracking is what makes trying it first safe (spec §8
// scenario "Backtrack neutrality").
func (g *ES5Grammar) AssignmentExpression() (*cst.Node, error) {
	return g.Invoke("AssignmentExpression", func() error {
		return g.Or(
			engine.Named("Assignment", func() error {
				if _, err := g.LeftHandSideExpression(); err != nil {
					return err
				}
				if err := g.Eq(); err != nil {
					return err
				}
				_, err := g.AssignmentExpression()
				return err
			}),
			engine.Named("ConditionalExpression", func() error {
				_, err := g.ConditionalExpression()
				return err
			}),
		)
	})
}

// ConditionalExpression := LogicalORExpression ("?" AssignmentExpression ":" AssignmentExpression)?.
func (g *ES5Grammar) ConditionalExpression() (*cst.Node, error) {
	return g.Invoke("ConditionalExpression", func() error {
		if _, err := g.LogicalORExpression(); err != nil {
			return err
		}
		return g.Option(func() error {
			if err := g.Question(); err != nil {
				return err
			}
			if _, err := g.AssignmentExpression(); err != nil {
				return err
			}
			if err := g.Colon(); err != nil {
				return err
			}
			_, err := g.AssignmentExpression()
			return err
		})
	})
}

func (g *ES5Grammar) LogicalORExpression() (*cst.Node, error) {
	return g.leftAssoc("LogicalORExpression", g.LogicalANDExpression, []opAlt{
		{"PipePipe", g.PipePipe},
	})
}

func (g *ES5Grammar) LogicalANDExpression() (*cst.Node, error) {
	return g.leftAssoc("LogicalANDExpression", g.BitwiseORExpression, []opAlt{
		{"AmpAmp", g.AmpAmp},
	})
}

func (g *ES5Grammar) BitwiseORExpression() (*cst.Node, error) {
	return g.leftAssoc("BitwiseORExpression", g.BitwiseXORExpression, []opAlt{
		{"Pipe", g.Pipe},
	})
}

func (g *ES5Grammar) BitwiseXORExpression() (*cst.Node, error) {
	return g.leftAssoc("BitwiseXORExpression", g.BitwiseANDExpression, []opAlt{
		{"Caret", g.Caret},
	})
}

func (g *ES5Grammar) BitwiseANDExpression() (*cst.Node, error) {
	return g.leftAssoc("BitwiseANDExpression", g.EqualityExpression, []opAlt{
		{"Amp", g.Amp},
	})
}

func (g *ES5Grammar) EqualityExpression() (*cst.Node, error) {
	return g.leftAssoc("EqualityExpression", g.RelationalExpression, []opAlt{
		{"EqEqEq", g.EqEqEq},
		{"NotEqEq", g.NotEqEq},
		{"EqEq", g.EqEq},
		{"NotEq", g.NotEq},
	})
}

func (g *ES5Grammar) RelationalExpression() (*cst.Node, error) {
	return g.leftAssoc("RelationalExpression", g.ShiftExpression, []opAlt{
		{"Le", g.Le},
		{"Ge", g.Ge},
		{"Lt", g.Lt},
		{"Gt", g.Gt},
		{"Instanceof", g.Instanceof},
		{"In", g.In},
	})
}

func (g *ES5Grammar) ShiftExpression() (*cst.Node, error) {
	return g.leftAssoc("ShiftExpression", g.AdditiveExpression, []opAlt{
		{"Ushr", g.Ushr},
		{"Shl", g.Shl},
		{"Shr", g.Shr},
	})
}

func (g *ES5Grammar) AdditiveExpression() (*cst.Node, error) {
	return g.leftAssoc("AdditiveExpression", g.MultiplicativeExpression, []opAlt{
		{"Plus", g.Plus},
		{"Minus", g.Minus},
	})
}

func (g *ES5Grammar) MultiplicativeExpression() (*cst.Node, error) {
	return g.leftAssoc("MultiplicativeExpression", g.UnaryExpression, []opAlt{
		{"Star", g.Star},
		{"Slash", g.Slash},
		{"Percent", g.Percent},
	})
}

// UnaryExpression := ("+"|"-"|"!"|"~"|"++"|"--") UnaryExpression | PostfixExpression.
func (g *ES5Grammar) UnaryExpression() (*cst.Node, error) {
	return g.Invoke("UnaryExpression", func() error {
		return g.Or(
			engine.Named("Plus", func() error { return g.unaryOp(g.Plus) }),
			engine.Named("Minus", func() error { return g.unaryOp(g.Minus) }),
			engine.Named("Bang", func() error { return g.unaryOp(g.Bang) }),
			engine.Named("Tilde", func() error { return g.unaryOp(g.Tilde) }),
			engine.Named("PlusPlus", func() error { return g.unaryOp(g.PlusPlus) }),
			engine.Named("MinusMinus", func() error { return g.unaryOp(g.MinusMinus) }),
			engine.Named("PostfixExpression", func() error { _, err := g.PostfixExpression(); return err }),
		)
	})
}

func (g *ES5Grammar) unaryOp(consumeOp func() error) error {
	if err := consumeOp(); err != nil {
		return err
	}
	_, err := g.UnaryExpression()
	return err
}

// PostfixExpression := LeftHandSideExpression ("++"|"--")?. When the
// suffix is absent, PostfixExpression's only child is the
// LeftHandSideExpression node (spec §8 scenario "Backtrack neutrality":
// PostfixExpression over a bare `a` has no trailing operator child).
func (g *ES5Grammar) PostfixExpression() (*cst.Node, error) {
	return g.Invoke("PostfixExpression", func() error {
		if _, err := g.LeftHandSideExpression(); err != nil {
			return err
		}
		return g.Option(func() error {
			return g.Or(
				engine.Named("PlusPlus", g.PlusPlus),
				engine.Named("MinusMinus", g.MinusMinus),
			)
		})
	})
}

// LeftHandSideExpression := CallExpression | MemberExpression. CallExpression
// is tried first: it always begins with the same MemberExpression prefix
// a bare MemberExpression would parse, so trying it first and
// backtracking on failure (rather than looking ahead) is what spec §9
// calls out as the natural fit for Or over prediction.
func (g *ES5Grammar) LeftHandSideExpression() (*cst.Node, error) {
	return g.Invoke("LeftHandSideExpression", func() error {
		return g.Or(
			engine.Named("CallExpression", func() error { _, err := g.CallExpression(); return err }),
			engine.Named("MemberExpression", func() error { _, err := g.MemberExpression(); return err }),
		)
	})
}

// NewExpression := "new" MemberExpression Arguments?.
func (g *ES5Grammar) NewExpression() (*cst.Node, error) {
	return g.Invoke("NewExpression", func() error {
		if err := g.New(); err != nil {
			return err
		}
		if _, err := g.MemberExpression(); err != nil {
			return err
		}
		return g.Option(func() error { _, err := g.Arguments(); return err })
	})
}

// memberSuffix is the ".Identifier" or "[Expression]" tail shared by
// MemberExpression and CallExpression.
func (g *ES5Grammar) memberSuffix() error {
	return g.Or(
		engine.Named("BracketExpression", func() error { _, err := g.BracketExpression(); return err }),
		engine.Named("DotAccess", func() error {
			if err := g.Dot(); err != nil {
				return err
			}
			return g.Identifier()
		}),
	)
}

// MemberExpression := (NewExpression | PrimaryExpression) (".Identifier" | "[Expression]")*.
func (g *ES5Grammar) MemberExpression() (*cst.Node, error) {
	return g.Invoke("MemberExpression", func() error {
		if err := g.Or(
			engine.Named("NewExpression", func() error { _, err := g.NewExpression(); return err }),
			engine.Named("PrimaryExpression", func() error { _, err := g.PrimaryExpression(); return err }),
		); err != nil {
			return err
		}
		return g.Many("MemberExpression", g.memberSuffix)
	})
}

// CallExpression := MemberExpression Arguments (Arguments | "[Expression]" | ".Identifier")*.
// The mandatory first Arguments is what distinguishes a call from a bare
// member access; this is why LeftHandSideExpression tries CallExpression
// before MemberExpression and relies on backtracking when it isn't a
// call at all (spec §8 scenario "left-recursive-looking member/call
// chain").
func (g *ES5Grammar) CallExpression() (*cst.Node, error) {
	return g.Invoke("CallExpression", func() error {
		if _, err := g.MemberExpression(); err != nil {
			return err
		}
		if _, err := g.Arguments(); err != nil {
			return err
		}
		return g.Many("CallExpression", func() error {
			return g.Or(
				engine.Named("Arguments", func() error { _, err := g.Arguments(); return err }),
				engine.Named("BracketExpression", func() error { _, err := g.BracketExpression(); return err }),
				engine.Named("DotAccess", func() error {
					if err := g.Dot(); err != nil {
						return err
					}
					return g.Identifier()
				}),
			)
		})
	})
}

// Arguments := "(" ArgumentList? ")".
func (g *ES5Grammar) Arguments() (*cst.Node, error) {
	return g.Invoke("Arguments", func() error {
		if err := g.LParen(); err != nil {
			return err
		}
		if err := g.Option(func() error { _, err := g.ArgumentList(); return err }); err != nil {
			return err
		}
		return g.RParen()
	})
}

// ArgumentList := AssignmentExpression ("," AssignmentExpression)*.
func (g *ES5Grammar) ArgumentList() (*cst.Node, error) {
	return g.Invoke("ArgumentList", func() error {
		if _, err := g.AssignmentExpression(); err != nil {
			return err
		}
		return g.Many("ArgumentList", func() error {
			if err := g.Comma(); err != nil {
				return err
			}
			_, err := g.AssignmentExpression()
			return err
		})
	})
}

// BracketExpression := "[" Expression "]".
func (g *ES5Grammar) BracketExpression() (*cst.Node, error) {
	return g.Invoke("BracketExpression", func() error {
		if err := g.LBracket(); err != nil {
			return err
		}
		if _, err := g.Expression(); err != nil {
			return err
		}
		return g.RBracket()
	})
}
