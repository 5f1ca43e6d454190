package source

import "github.com/aledsdavies/sable/syntax"

// Token pairs a syntax kind with its byte span in the source text. The
// token stream produced by the lexer always terminates in an Eof token
// with an empty 0..0 span.
type Token struct {
	Kind syntax.Kind
	Span Span
}

// EOF is a zero-position Eof sentinel, useful as a zero value in tests
// and for parser state that has not yet consumed any input.
var EOF = Token{Kind: syntax.Eof, Span: Span{}}

// Text returns the token's source text.
func (t Token) Text(source string) string {
	return t.Span.Slice(source)
}
