package engine

import (
	"fmt"

	"github.com/dhamidi/ecmacst/token"
)

// TokenMismatch is raised by a terminal matcher that saw the wrong token.
// It is recoverable: Or, Option, Many and FaultToleranceMany all catch it.
type TokenMismatch struct {
	Expected string
	Got      token.MatchToken
	At       int
}

func (e TokenMismatch) Error() string {
	return fmt.Sprintf("at token %d: expected %s, got %s %q", e.At, e.Expected, e.Got.Name, e.Got.Value)
}

func (e TokenMismatch) recoverable() {}

// UnexpectedEnd is raised by Parser.consume when called past end-of-stream.
// Recoverable.
type UnexpectedEnd struct {
	At int
}

func (e UnexpectedEnd) Error() string {
	return fmt.Sprintf("at token %d: unexpected end of input", e.At)
}

func (e UnexpectedEnd) recoverable() {}

// NoAlternative is raised by Or when every alternative failed with a
// recoverable error. Recoverable (an enclosing Or can itself be one
// alternative of an outer Or).
type NoAlternative struct {
	At    int
	Tried []string
}

func (e NoAlternative) Error() string {
	return fmt.Sprintf("at token %d: no alternative matched (tried %v)", e.At, e.Tried)
}

func (e NoAlternative) recoverable() {}

// NonProgressingRepetition is raised when a Many or FaultToleranceMany
// body succeeds without consuming any input; this indicates a grammar
// bug, not a syntax error in the source being parsed, and is fatal.
type NonProgressingRepetition struct {
	At   int
	Rule string
}

func (e NonProgressingRepetition) Error() string {
	return fmt.Sprintf("at token %d: rule %q made no progress in a repetition combinator", e.At, e.Rule)
}

// ErrCheckpointImbalance is fatal; it means a Save was never paired with
// a matching Commit or Restore. This is an internal engine error, always
// caused by a bug in a combinator implementation, never by input text.
var ErrCheckpointImbalance = fmt.Errorf("engine: checkpoint stack imbalance at end of parse")

// recoverableError is satisfied by the three error kinds that Or, Option,
// Many and FaultToleranceMany are allowed to catch and roll back from.
// NonProgressingRepetition and checkpoint imbalance are deliberately not
// in this set: they unwind straight to Parse.
type recoverableError interface {
	error
	recoverable()
}

func isRecoverable(err error) bool {
	_, ok := err.(recoverableError)
	return ok
}

// ParseError is the user-visible failure returned by Parse when an
// uncaught recoverable failure reaches the top of the parse, or when a
// fatal engine error occurs. At is the furthest cursor position reached
// during the whole parse (the "furthest-reach" diagnostic convention),
// not necessarily the position of the last alternative tried.
type ParseError struct {
	Kind     string
	At       token.SourceLocation
	Expected []string
	Got      token.MatchToken
	Message  string
}

func (e *ParseError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s at %s: expected %v, got %s %q", e.Kind, e.At.Start, e.Expected, e.Got.Name, e.Got.Value)
}
