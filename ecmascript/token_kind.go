package ecmascript

// Terminal names. These are the values that show up as CstNode.Name on
// every leaf the lexer's tokens can produce; the token-consumer bases in
// terminals_es5.go and terminals_es6.go have one method per name here.
const (
	Identifier      = "Identifier"
	NumericLiteral  = "NumericLiteral"
	StringLiteral   = "StringLiteral"
	BooleanLiteral  = "BooleanLiteral"
	NullLiteral     = "NullLiteral"
	ThisTok         = "ThisTok"

	VarTok      = "VarTok"
	LetTok      = "LetTok"
	ConstTok    = "ConstTok"
	FunctionTok = "FunctionTok"
	ReturnTok   = "ReturnTok"
	IfTok       = "IfTok"
	ElseTok     = "ElseTok"
	NewTok      = "NewTok"
	InstanceofTok = "InstanceofTok"
	InTok       = "InTok"
	ClassTok    = "ClassTok"
	ExtendsTok  = "ExtendsTok"
	SuperTok    = "SuperTok"
	ImportTok   = "ImportTok"
	ExportTok   = "ExportTok"
	FromTok     = "FromTok"
	DefaultTok  = "DefaultTok"
	GetTok      = "GetTok"
	SetTok      = "SetTok"

	LParen   = "LParen"
	RParen   = "RParen"
	LBrace   = "LBrace"
	RBrace   = "RBrace"
	LBracket = "LBracket"
	RBracket = "RBracket"
	Semicolon = "Semicolon"
	Comma     = "Comma"
	Dot       = "Dot"
	Colon     = "Colon"
	Question  = "Question"
	Ellipsis  = "Ellipsis"
	Arrow     = "Arrow"

	Eq       = "Eq"
	PlusPlus   = "PlusPlus"
	MinusMinus = "MinusMinus"

	Plus  = "Plus"
	Minus = "Minus"
	Star  = "Star"
	Slash = "Slash"
	Percent = "Percent"

	Bang  = "Bang"
	Tilde = "Tilde"

	EqEq     = "EqEq"
	NotEq    = "NotEq"
	EqEqEq   = "EqEqEq"
	NotEqEq  = "NotEqEq"
	Lt       = "Lt"
	Gt       = "Gt"
	Le       = "Le"
	Ge       = "Ge"

	Shl  = "Shl"
	Shr  = "Shr"
	Ushr = "Ushr"

	Amp     = "Amp"
	Pipe    = "Pipe"
	Caret   = "Caret"
	AmpAmp  = "AmpAmp"
	PipePipe = "PipePipe"
)
