package astbuilder

import "github.com/dhamidi/ecmacst/cst"

// binaryLevels names every precedence-level CST rule whose children are a
// flat left-associative operator chain: operand, operator leaf, operand,
// operator leaf, operand, ... Each is folded into a left-leaning
// BinaryExpression tree.
var binaryLevels = map[string]bool{
	"LogicalORExpression":      true,
	"LogicalANDExpression":     true,
	"BitwiseORExpression":      true,
	"BitwiseXORExpression":     true,
	"BitwiseANDExpression":     true,
	"EqualityExpression":       true,
	"RelationalExpression":     true,
	"ShiftExpression":          true,
	"AdditiveExpression":       true,
	"MultiplicativeExpression": true,
}

// Lower walks a CST produced by ecmascript.Parse and builds a Program.
// It never fails on its own: any CST shape it doesn't recognize is
// dropped from the AST rather than reported as an error, since the AST
// this package produces is deliberately a subset of what the grammar
// accepts (spec.md §1 — AST completeness is explicitly out of scope).
func Lower(root *cst.Node) (*Program, error) {
	prog := &Program{}
	if root == nil {
		return prog, nil
	}
	items := root.FindChildByName("ModuleItemList")
	if items == nil {
		return prog, nil
	}
	for _, item := range items.Children {
		if item.IsError() {
			continue
		}
		stmt, err := lowerModuleItem(item)
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			prog.Body = append(prog.Body, stmt)
		}
	}
	return prog, nil
}

func lowerModuleItem(n *cst.Node) (Node, error) {
	switch n.Name {
	case "StatementListItem":
		if len(n.Children) == 0 {
			return nil, nil
		}
		return lowerModuleItem(n.Children[0])
	case "Statement":
		if len(n.Children) == 0 {
			return nil, nil
		}
		return lowerStatement(n.Children[0])
	default:
		// ImportDeclaration, ExportDeclaration, FunctionDeclaration,
		// ClassDeclaration: no AST shape defined for these.
		return nil, nil
	}
}

func lowerStatement(n *cst.Node) (Node, error) {
	switch n.Name {
	case "VariableDeclaration":
		return lowerVariableDeclaration(n)
	case "ExpressionStatement":
		return lowerExpressionStatement(n)
	default:
		// Block, EmptyStatement, IfStatement, ReturnStatement: no AST
		// shape defined for these.
		return nil, nil
	}
}

func lowerVariableDeclaration(n *cst.Node) (*VariableDeclaration, error) {
	kind := "var"
	if kindNode := n.FindChildByName("VariableLetOrConst"); kindNode != nil && len(kindNode.Children) > 0 {
		switch kindNode.Children[0].Name {
		case "LetTok":
			kind = "let"
		case "ConstTok":
			kind = "const"
		}
	}

	var decls []*VariableDeclarator
	if list := n.FindChildByName("VariableDeclarationList"); list != nil {
		for _, d := range list.FindChildrenByName("VariableDeclarator") {
			vd, err := lowerVariableDeclarator(d)
			if err != nil {
				return nil, err
			}
			decls = append(decls, vd)
		}
	}
	return &VariableDeclaration{Kind: kind, Declarations: decls}, nil
}

func lowerVariableDeclarator(n *cst.Node) (*VariableDeclarator, error) {
	var id *Identifier
	if binding := n.FindChildByName("BindingIdentifier"); binding != nil {
		if idNode := binding.FindChildByName("Identifier"); idNode != nil {
			id = &Identifier{Name: idNode.TokenValue()}
		}
	}
	var init Node
	if initializer := n.FindChildByName("Initializer"); initializer != nil {
		v, err := lowerExpression(initializer.FindChildByName("AssignmentExpression"))
		if err != nil {
			return nil, err
		}
		init = v
	}
	return &VariableDeclarator{Id: id, Init: init}, nil
}

func lowerExpressionStatement(n *cst.Node) (Node, error) {
	v, err := lowerExpression(n.FindChildByName("Expression"))
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	return &ExpressionStatement{Expression: v}, nil
}

// lowerExpression dispatches on a CST node's rule/terminal name. Every
// other wrapper (ConditionalExpression, UnaryExpression,
// PostfixExpression, LeftHandSideExpression, PrimaryExpression, the
// comma-sequence Expression) falls through to the default case, which
// recurses into its first child only. That is the whole expression when
// the wrapper matched a single operand; otherwise the rest is dropped: a
// "?:" tail, a postfix "++"/"--", and every operand after the first comma
// are lost, and a prefix unary expression lowers to nil because its
// first child is the operator leaf.
func lowerExpression(n *cst.Node) (Node, error) {
	if n == nil {
		return nil, nil
	}
	if n.IsTerminal {
		switch n.Name {
		case "NumericLiteral":
			return &NumericLiteral{Value: n.TokenValue()}, nil
		case "StringLiteral":
			return &StringLiteral{Value: n.TokenValue()}, nil
		case "Identifier":
			return &Identifier{Name: n.TokenValue()}, nil
		default:
			return nil, nil
		}
	}

	switch {
	case binaryLevels[n.Name]:
		return lowerBinaryChain(n)
	case n.Name == "AssignmentExpression":
		return lowerAssignment(n)
	case n.Name == "MemberExpression":
		return lowerMemberChain(n)
	case n.Name == "CallExpression":
		return lowerCallChain(n)
	case n.Name == "NewExpression":
		// Lossy: `new Foo(...)` lowers to Foo's member chain alone, since
		// no NewExpression AST shape is defined.
		return lowerExpression(n.FindChildByName("MemberExpression"))
	case n.Name == "IdentifierReference" || n.Name == "BindingIdentifier":
		return lowerExpression(n.FindChildByName("Identifier"))
	case n.Name == "ParenExpression":
		return lowerExpression(n.FindChildByName("Expression"))
	case n.Name == "Literal":
		if len(n.Children) == 0 {
			return nil, nil
		}
		return lowerExpression(n.Children[0])
	default:
		if len(n.Children) == 0 {
			return nil, nil
		}
		return lowerExpression(n.Children[0])
	}
}

func lowerBinaryChain(n *cst.Node) (Node, error) {
	if len(n.Children) == 0 {
		return nil, nil
	}
	left, err := lowerExpression(n.Children[0])
	if err != nil {
		return nil, err
	}
	for i := 1; i+1 < len(n.Children); i += 2 {
		right, err := lowerExpression(n.Children[i+1])
		if err != nil {
			return nil, err
		}
		left = &BinaryExpression{Operator: n.Children[i].TokenValue(), Left: left, Right: right}
	}
	return left, nil
}

func lowerAssignment(n *cst.Node) (Node, error) {
	if len(n.Children) == 3 {
		left, err := lowerExpression(n.Children[0])
		if err != nil {
			return nil, err
		}
		right, err := lowerExpression(n.Children[2])
		if err != nil {
			return nil, err
		}
		return &BinaryExpression{Operator: "=", Left: left, Right: right}, nil
	}
	if len(n.Children) == 0 {
		return nil, nil
	}
	return lowerExpression(n.Children[0])
}

func lowerMemberChain(n *cst.Node) (Node, error) {
	if len(n.Children) == 0 {
		return nil, nil
	}
	base, err := lowerExpression(n.Children[0])
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(n.Children); {
		c := n.Children[i]
		switch c.Name {
		case "BracketExpression":
			prop, err := lowerExpression(c.FindChildByName("Expression"))
			if err != nil {
				return nil, err
			}
			base = &MemberExpression{Object: base, Property: prop, Computed: true}
			i++
		case "Dot":
			if i+1 >= len(n.Children) {
				i++
				continue
			}
			base = &MemberExpression{Object: base, Property: &Identifier{Name: n.Children[i+1].TokenValue()}, Computed: false}
			i += 2
		default:
			i++
		}
	}
	return base, nil
}

func lowerCallChain(n *cst.Node) (Node, error) {
	if len(n.Children) < 2 {
		return nil, nil
	}
	callee, err := lowerExpression(n.Children[0])
	if err != nil {
		return nil, err
	}
	args, err := lowerArguments(n.Children[1])
	if err != nil {
		return nil, err
	}
	var result Node = &CallExpression{Callee: callee, Arguments: args}
	for i := 2; i < len(n.Children); {
		c := n.Children[i]
		switch c.Name {
		case "Arguments":
			a, err := lowerArguments(c)
			if err != nil {
				return nil, err
			}
			result = &CallExpression{Callee: result, Arguments: a}
			i++
		case "BracketExpression":
			prop, err := lowerExpression(c.FindChildByName("Expression"))
			if err != nil {
				return nil, err
			}
			result = &MemberExpression{Object: result, Property: prop, Computed: true}
			i++
		case "Dot":
			if i+1 >= len(n.Children) {
				i++
				continue
			}
			result = &MemberExpression{Object: result, Property: &Identifier{Name: n.Children[i+1].TokenValue()}, Computed: false}
			i += 2
		default:
			i++
		}
	}
	return result, nil
}

func lowerArguments(n *cst.Node) ([]Node, error) {
	list := n.FindChildByName("ArgumentList")
	if list == nil {
		return nil, nil
	}
	var out []Node
	for _, c := range list.FindChildrenByName("AssignmentExpression") {
		v, err := lowerExpression(c)
		if err != nil {
			return nil, err
		}
		if v != nil {
			out = append(out, v)
		}
	}
	return out, nil
}
