// Package parser implements a lossless, error-recovering recursive
// descent parser over the lexer's token stream, producing a green tree
// plus any diagnostics accumulated along the way.
package parser

import (
	"github.com/aledsdavies/sable/green"
	"github.com/aledsdavies/sable/source"
	"github.com/aledsdavies/sable/syntax"
)

// Parser drives a single parse. It holds the State and forwards
// start/at/peek/expect/errorEatUntil/report/source to it, so grammar
// methods can call them directly.
type Parser struct {
	state *State
}

func newParser(src string) *Parser {
	return &Parser{state: NewState(src)}
}

func (p *Parser) start() Marker {
	return p.state.start()
}

func (p *Parser) at() syntax.Kind {
	return p.state.at()
}

func (p *Parser) peek() syntax.Kind {
	return p.state.peek()
}

func (p *Parser) expect(kind syntax.Kind) bool {
	return p.state.expect(kind)
}

func (p *Parser) errorEatUntil(kinds []syntax.Kind) source.Span {
	return p.state.errorEatUntil(kinds)
}

func (p *Parser) report(r Report) {
	p.state.report(r)
}

func (p *Parser) source(span source.Span) string {
	return p.state.source(span)
}

func (p *Parser) root() {
	marker := p.start()
	p.rItems()
	p.state.flushRemaining()
	marker.complete(p.state, syntax.Root)
}

// Parse lexes and parses source, interning its tree into cache. Parsing
// never fails outright: malformed input produces a partial tree plus one
// or more Reports describing what went wrong.
func Parse(cache *green.NodeCache, source string) (*green.Node, []Report) {
	p := newParser(source)
	p.root()
	return p.state.finish(cache)
}
