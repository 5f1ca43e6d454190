package parser

import "github.com/aledsdavies/sable/syntax"

// rItems parses the top-level sequence of statements that makes up a
// whole chunk.
func (p *Parser) rItems() {
	for p.at() != syntax.Eof {
		if _, ok := p.rStmt(); !ok {
			break
		}
	}
}
