package parser

import (
	"github.com/cybertec-plsql/plsqlcst/syntax"
	"github.com/cybertec-plsql/plsqlcst/token"
)

// parseFunction parses a standalone or nested function: CREATE prefix,
// FUNCTION, a FunctionHeader (name, parameters, mandatory RETURN
// datatype), and a forward-declaration ';' or full IS/AS body.
func (p *Parser) parseFunction() {
	p.start(syntax.Function)
	p.parseCreateOrReplacePrefix()
	p.expect(token.FunctionKw)

	p.start(syntax.FunctionHeader)
	p.parseIdentGroup(0)
	if p.at(token.LParen) {
		p.parseParamList()
	}
	p.expect(token.ReturnKw)
	p.parseDatatype()
	p.parseSubprogramOptions()
	p.finish()

	p.parseSubprogramBody()
	p.finish()
}
