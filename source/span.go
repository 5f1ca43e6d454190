// Package source defines the byte-span and token representations shared by
// the lexer and parser.
package source

import "fmt"

// Span is a half-open byte range [Start, End) over the source text.
type Span struct {
	Start uint32
	End   uint32
}

// NewSpan builds a Span from a pair of offsets.
func NewSpan(start, end uint32) Span {
	return Span{Start: start, End: end}
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() uint32 {
	return s.End - s.Start
}

// Slice returns the portion of text covered by the span.
func (s Span) Slice(text string) string {
	return text[s.Start:s.End]
}

// String renders the span as "start..end".
func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}
