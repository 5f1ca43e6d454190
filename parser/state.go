package parser

import (
	"github.com/aledsdavies/sable/green"
	"github.com/aledsdavies/sable/lexer"
	"github.com/aledsdavies/sable/source"
	"github.com/aledsdavies/sable/syntax"
)

// State owns the token stream, the cursor into it, the growing event log,
// and the accumulated diagnostics for a single parse.
//
// The lexer keeps whitespace and comments as ordinary tokens, rather
// than skipping trivia out of the token stream entirely at lex time, so
// the resulting tree is lossless. State.at/peek/span transparently skip
// over trivia when inspecting upcoming structure, while bump flushes any
// pending trivia into the event log as plain Token events before the
// significant token it precedes, so every byte of source still ends up
// somewhere in the tree, attached to whichever node is open when it is
// reached.
type State struct {
	src     string
	tokens  []source.Token
	cursor  int
	events  []event
	reports []Report
}

// NewState lexes src and prepares a parse state over it.
func NewState(src string) *State {
	return &State{
		src:    src,
		tokens: lexer.Tokenize(src),
		events: make([]event, 0, len(src)/4),
	}
}

// significantFrom returns the index of the first non-trivia token at or
// after i.
func (s *State) significantFrom(i int) int {
	for i < len(s.tokens) && s.tokens[i].Kind.IsTrivia() {
		i++
	}
	return i
}

// at returns the kind of the next significant token.
func (s *State) at() syntax.Kind {
	i := s.significantFrom(s.cursor)
	if i >= len(s.tokens) {
		return syntax.Eof
	}
	return s.tokens[i].Kind
}

// peek returns the kind of the significant token after the next one,
// used by table-element dispatch to look two tokens ahead without
// consuming anything.
func (s *State) peek() syntax.Kind {
	i := s.significantFrom(s.cursor)
	i = s.significantFrom(i + 1)
	if i >= len(s.tokens) {
		return syntax.Eof
	}
	return s.tokens[i].Kind
}

// span returns the byte span of the next significant token.
func (s *State) span() source.Span {
	i := s.significantFrom(s.cursor)
	if i >= len(s.tokens) {
		last := s.tokens[len(s.tokens)-1]
		return last.Span
	}
	return s.tokens[i].Span
}

// start opens a new node at the current event position.
func (s *State) start() Marker {
	pos := len(s.events)
	s.events = append(s.events, tombstoneEvent())
	return Marker{position: pos}
}

// expect consumes the next significant token if it matches kind,
// reporting an error and leaving the cursor untouched otherwise.
func (s *State) expect(kind syntax.Kind) bool {
	if s.at() == kind {
		s.bump()
		return true
	}

	found := s.at()
	message := "expected token " + kind.String() + " but found " + found.String()

	if found == syntax.Ident {
		text := s.span().Slice(s.src)
		if suggestion := suggestKeyword(text); suggestion != "" {
			message += " (did you mean \"" + suggestion + "\"?)"
		}
	}

	s.report(newErrorReport(s.span().Start).
		withMessage("unexpected token").
		withLabel(s.span(), message).
		finish())
	return false
}

func (s *State) report(r Report) {
	s.reports = append(s.reports, r)
}

// bump flushes any trivia immediately before the next significant token,
// then consumes that token, appending Token events for all of it in
// source order.
func (s *State) bump() {
	i := s.cursor
	for i < len(s.tokens) && s.tokens[i].Kind.IsTrivia() {
		tok := s.tokens[i]
		s.events = append(s.events, event{tag: eventToken, kind: tok.Kind, span: tok.Span})
		i++
	}

	if i >= len(s.tokens) {
		s.cursor = i
		return
	}

	tok := s.tokens[i]
	s.events = append(s.events, event{tag: eventToken, kind: tok.Kind, span: tok.Span})
	s.cursor = i + 1
}

// flushRemaining drains any trivia left after the last significant token
// has been bumped, attaching it to whatever node is open (normally Root)
// so trailing whitespace/comments are never dropped from the tree. The
// terminal Eof token carries no text and is left unconsumed.
func (s *State) flushRemaining() {
	for s.cursor < len(s.tokens) {
		tok := s.tokens[s.cursor]
		if tok.Kind == syntax.Eof {
			return
		}
		s.events = append(s.events, event{tag: eventToken, kind: tok.Kind, span: tok.Span})
		s.cursor++
	}
}

// source returns the source text covered by span.
func (s *State) source(span source.Span) string {
	return span.Slice(s.src)
}

// errorEatUntil consumes tokens up to (but not including) the first one
// whose kind is in oneOf, wrapping them in a single Invalid node, and
// returns the span from the first to the last eaten token. Eof
// always stops the scan even if absent from oneOf, so malformed input
// can never run the cursor past the end of the token stream.
func (s *State) errorEatUntil(oneOf []syntax.Kind) source.Span {
	marker := s.start()
	first := s.span()
	last := first

	for !containsKind(oneOf, s.at()) && s.at() != syntax.Eof {
		last = s.span()
		s.bump()
	}

	marker.complete(s, syntax.Invalid)
	return source.NewSpan(first.Start, last.End)
}

func containsKind(kinds []syntax.Kind, k syntax.Kind) bool {
	for _, kk := range kinds {
		if kk == k {
			return true
		}
	}
	return false
}

// finish converts the accumulated event log into a green tree.
func (s *State) finish(cache *green.NodeCache) (*green.Node, []Report) {
	tree := buildTree(cache, s.events, s.src)
	return tree, s.reports
}
