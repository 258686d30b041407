package parser

import (
	"github.com/cybertec-plsql/plsqlcst/syntax"
	"github.com/cybertec-plsql/plsqlcst/token"
)

// parsePackage parses both CREATE PACKAGE (the specification: a
// PackageHeader followed by a declare section of public items) and
// CREATE PACKAGE BODY (the same shape plus an optional BEGIN
// initialization section), since the two differ only in the BODY
// keyword and whether an initialization section follows.
func (p *Parser) parsePackage() {
	p.start(syntax.Package)
	p.parseCreateOrReplacePrefix()
	p.expect(token.PackageKw)
	isBody := p.eat(token.BodyKw)

	p.start(syntax.PackageHeader)
	p.parseIdentGroup(0)
	p.parseSubprogramOptions()
	p.finish()

	p.expectOneOf(token.IsKw, token.AsKw)
	p.parseDeclareSection()

	if isBody && p.eat(token.BeginKw) {
		p.parseStatementSequence()
		if p.eat(token.ExceptionKw) {
			p.parseExceptionSection()
		}
	}

	p.expect(token.EndKw)
	if identComponent(p.current()) {
		p.parseIdent(1)
	}
	p.expect(token.Semicolon)
	p.finish()
}
