package token

// EOF is the sentinel name used for the synthetic end-of-stream token
// returned by View.At once the cursor runs past the last real token.
const EOF = "EOF"

// View is an immutable, indexed view over a sequence of tokens produced by
// a lexer. It never mutates its underlying slice; the engine's Cursor is
// the only thing that tracks a moving position into a View.
type View struct {
	tokens []MatchToken
	eof    MatchToken
}

// NewView builds a View over tokens. The last token's location (or the
// zero location, for an empty stream) is used to synthesize the
// end-of-stream sentinel token returned once the view is exhausted.
func NewView(tokens []MatchToken) *View {
	eof := MatchToken{Name: EOF, Index: len(tokens)}
	if n := len(tokens); n > 0 {
		last := tokens[n-1]
		eof.RowNum = last.RowNum
		eof.ColumnStartNum = last.ColumnEndNum
		eof.ColumnEndNum = last.ColumnEndNum
	}
	return &View{tokens: tokens, eof: eof}
}

// Len reports the number of real (non-EOF) tokens in the view.
func (v *View) Len() int {
	return len(v.tokens)
}

// At returns the token at absolute index i, or the synthesized EOF token
// if i is at or past the end of the stream.
func (v *View) At(i int) MatchToken {
	if i < 0 || i >= len(v.tokens) {
		return v.eof
	}
	return v.tokens[i]
}
