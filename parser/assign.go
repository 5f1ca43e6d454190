package parser

import "github.com/aledsdavies/sable/syntax"

// rMaybeAssign disambiguates a statement that starts like an expression:
// it always parses a simple-expr first, then decides whether what
// follows turns it into an assignment (`=`/`,`) or leaves it as a bare
// expression statement (typically a function call).
func (p *Parser) rMaybeAssign() (CompletedMarker, bool) {
	assignMarker := p.start()
	exprMarker, ok := p.rSimpleExpr(true)

	if p.at() == syntax.Assign || p.at() == syntax.Comma {
		return p.rAssign(assignMarker)
	}

	assignMarker.abandon(p.state)
	return exprMarker, ok
}

func (p *Parser) rAssign(marker Marker) (CompletedMarker, bool) {
	for p.at() == syntax.Comma {
		p.expect(syntax.Comma)
		p.rSimpleExpr(true)
	}

	p.expect(syntax.Assign)
	p.rExprList()
	return marker.complete(p.state, syntax.AssignStmt), true
}

func (p *Parser) rDecl() (CompletedMarker, bool) {
	marker := p.start()
	p.expect(syntax.Local)

	if p.at() == syntax.Function {
		p.rFunc(false)
	} else {
		p.rDeclTarget()

		for p.at() == syntax.Comma {
			p.expect(syntax.Comma)
			p.rDeclTarget()
		}

		if p.at() == syntax.Assign {
			p.expect(syntax.Assign)
			p.rExprList()
		}
	}

	return marker.complete(p.state, syntax.DeclStmt), true
}

func (p *Parser) rDeclTarget() (CompletedMarker, bool) {
	marker := p.start()
	p.expect(syntax.Ident)
	p.rAttrib()
	return marker.complete(p.state, syntax.DeclTarget), true
}

func (p *Parser) rAttrib() {
	t := p.at()
	if t == syntax.Const || t == syntax.Close {
		p.expect(t)
	}
}
