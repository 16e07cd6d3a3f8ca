package ecmascript

import "github.com/dhamidi/ecmacst/engine"

// ES6Terminals holds the terminal set ES2015 adds beyond ES5: let/const,
// classes, modules, and the arrow token (spec §4.5 "grammar dialects
// extend the terminal set by subclassing"; here, by embedding).
//
// It embeds engine.Terminals directly rather than ES5Terminals: ES6Grammar
// already reaches ES5Terminals through its embedded ES5Grammar, and
// embedding it a second time here would make every ES5 terminal method
// an ambiguous selector on ES6Grammar (two embedded fields at the same
// depth both defining, say, Identifier()).
type ES6Terminals struct {
	engine.Terminals
}

func (t ES6Terminals) Let() error   { return t.Consume(LetTok) }
func (t ES6Terminals) Const() error { return t.Consume(ConstTok) }

func (t ES6Terminals) Class() error   { return t.Consume(ClassTok) }
func (t ES6Terminals) Extends() error { return t.Consume(ExtendsTok) }
func (t ES6Terminals) Super() error   { return t.Consume(SuperTok) }

func (t ES6Terminals) Import() error  { return t.Consume(ImportTok) }
func (t ES6Terminals) Export() error  { return t.Consume(ExportTok) }
func (t ES6Terminals) From() error    { return t.Consume(FromTok) }
func (t ES6Terminals) Default() error { return t.Consume(DefaultTok) }

func (t ES6Terminals) Ellipsis() error { return t.Consume(Ellipsis) }
func (t ES6Terminals) Arrow() error    { return t.Consume(Arrow) }
