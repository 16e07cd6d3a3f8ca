package ecmascript

import "github.com/dhamidi/ecmacst/engine"

// ES5Terminals is the token-consumer base for the ES5 dialect (spec
// §4.5): one thin method per terminal name, each forwarding straight to
// Consume. ES5Grammar embeds this to get Identifier(), LParen(), and so
// on as ordinary method calls a rule body can chain together.
type ES5Terminals struct {
	engine.Terminals
}

func (t ES5Terminals) Identifier() error     { return t.Consume(Identifier) }
func (t ES5Terminals) NumericLiteral() error { return t.Consume(NumericLiteral) }
func (t ES5Terminals) StringLiteral() error  { return t.Consume(StringLiteral) }
func (t ES5Terminals) BooleanLiteral() error { return t.Consume(BooleanLiteral) }
func (t ES5Terminals) NullLiteral() error    { return t.Consume(NullLiteral) }
func (t ES5Terminals) This() error           { return t.Consume(ThisTok) }

func (t ES5Terminals) Var() error      { return t.Consume(VarTok) }
func (t ES5Terminals) Function() error { return t.Consume(FunctionTok) }
func (t ES5Terminals) Return() error   { return t.Consume(ReturnTok) }
func (t ES5Terminals) If() error       { return t.Consume(IfTok) }
func (t ES5Terminals) Else() error     { return t.Consume(ElseTok) }
func (t ES5Terminals) New() error      { return t.Consume(NewTok) }
func (t ES5Terminals) Instanceof() error { return t.Consume(InstanceofTok) }
func (t ES5Terminals) In() error       { return t.Consume(InTok) }
func (t ES5Terminals) Get() error      { return t.Consume(GetTok) }
func (t ES5Terminals) Set() error      { return t.Consume(SetTok) }

func (t ES5Terminals) LParen() error   { return t.Consume(LParen) }
func (t ES5Terminals) RParen() error   { return t.Consume(RParen) }
func (t ES5Terminals) LBrace() error   { return t.Consume(LBrace) }
func (t ES5Terminals) RBrace() error   { return t.Consume(RBrace) }
func (t ES5Terminals) LBracket() error { return t.Consume(LBracket) }
func (t ES5Terminals) RBracket() error { return t.Consume(RBracket) }
func (t ES5Terminals) Semicolon() error { return t.Consume(Semicolon) }
func (t ES5Terminals) Comma() error    { return t.Consume(Comma) }
func (t ES5Terminals) Dot() error      { return t.Consume(Dot) }
func (t ES5Terminals) Colon() error    { return t.Consume(Colon) }
func (t ES5Terminals) Question() error { return t.Consume(Question) }

func (t ES5Terminals) Eq() error         { return t.Consume(Eq) }
func (t ES5Terminals) PlusPlus() error   { return t.Consume(PlusPlus) }
func (t ES5Terminals) MinusMinus() error { return t.Consume(MinusMinus) }

func (t ES5Terminals) Plus() error    { return t.Consume(Plus) }
func (t ES5Terminals) Minus() error   { return t.Consume(Minus) }
func (t ES5Terminals) Star() error    { return t.Consume(Star) }
func (t ES5Terminals) Slash() error   { return t.Consume(Slash) }
func (t ES5Terminals) Percent() error { return t.Consume(Percent) }
func (t ES5Terminals) Bang() error    { return t.Consume(Bang) }
func (t ES5Terminals) Tilde() error   { return t.Consume(Tilde) }

func (t ES5Terminals) EqEq() error    { return t.Consume(EqEq) }
func (t ES5Terminals) NotEq() error   { return t.Consume(NotEq) }
func (t ES5Terminals) EqEqEq() error  { return t.Consume(EqEqEq) }
func (t ES5Terminals) NotEqEq() error { return t.Consume(NotEqEq) }
func (t ES5Terminals) Lt() error      { return t.Consume(Lt) }
func (t ES5Terminals) Gt() error      { return t.Consume(Gt) }
func (t ES5Terminals) Le() error      { return t.Consume(Le) }
func (t ES5Terminals) Ge() error      { return t.Consume(Ge) }

func (t ES5Terminals) Shl() error  { return t.Consume(Shl) }
func (t ES5Terminals) Shr() error  { return t.Consume(Shr) }
func (t ES5Terminals) Ushr() error { return t.Consume(Ushr) }

func (t ES5Terminals) Amp() error      { return t.Consume(Amp) }
func (t ES5Terminals) Pipe() error     { return t.Consume(Pipe) }
func (t ES5Terminals) Caret() error    { return t.Consume(Caret) }
func (t ES5Terminals) AmpAmp() error   { return t.Consume(AmpAmp) }
func (t ES5Terminals) PipePipe() error { return t.Consume(PipePipe) }
