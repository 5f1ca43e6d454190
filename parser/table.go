package parser

import "github.com/aledsdavies/sable/syntax"

func (p *Parser) rTable() (CompletedMarker, bool) {
	marker := p.start()
	p.expect(syntax.LCurly)

	for {
		if p.at() == syntax.RCurly {
			p.expect(syntax.RCurly)
			break
		}
		p.rTableElem()

		t := p.at()
		if t == syntax.Comma || t == syntax.Semicolon {
			p.expect(t)
		} else {
			p.expect(syntax.RCurly)
			break
		}
	}

	return marker.complete(p.state, syntax.TableExpr), true
}

func (p *Parser) rTableElem() (CompletedMarker, bool) {
	switch {
	case p.at() == syntax.Ident && p.peek() == syntax.Assign:
		return p.rTableElemMap()
	case p.at() == syntax.LBracket:
		return p.rTableElemGeneric()
	case syntax.IsExprStart(p.at()):
		return p.rTableElemArray()
	default:
		return CompletedMarker{}, false
	}
}

func (p *Parser) rTableElemArray() (CompletedMarker, bool) {
	marker := p.start()
	p.rExpr()
	return marker.complete(p.state, syntax.TableArrayElem), true
}

func (p *Parser) rTableElemMap() (CompletedMarker, bool) {
	marker := p.start()
	p.expect(syntax.Ident)
	p.expect(syntax.Assign)
	p.rExpr()
	return marker.complete(p.state, syntax.TableMapElem), true
}

func (p *Parser) rTableElemGeneric() (CompletedMarker, bool) {
	marker := p.start()
	p.expect(syntax.LBracket)
	p.rExpr()
	p.expect(syntax.RBracket)
	p.expect(syntax.Assign)
	p.rExpr()
	return marker.complete(p.state, syntax.TableGenericElem), true
}
