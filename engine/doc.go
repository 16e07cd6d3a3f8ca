// Package engine is the parser engine: a combinator-style
// recursive-descent core that consumes a token stream, runs grammar
// rules written as ordinary Go methods that call four structured
// combinators (Or, Many, Option, FaultToleranceMany), and builds a
// concrete syntax tree with full speculative backtracking. It knows
// nothing about ECMAScript or any other grammar — see package
// ecmascript for the grammar that drives it.
package engine
