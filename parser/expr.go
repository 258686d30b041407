package parser

import (
	"github.com/cybertec-plsql/plsqlcst/syntax"
	"github.com/cybertec-plsql/plsqlcst/token"
)

// Pratt operator-precedence expression parser. Binding powers follow the
// table: OR 1/2, AND 3/4, prefix NOT 5->6, comparison 7/8, LIKE/ILIKE/
// BETWEEN/IN 9/10, concat (||) 11/12, additive (+/-) 13/14, multiplicative
// (* / %) 15/16, prefix sign/PRIOR/CONNECT_BY_ROOT 17->18, postfix (!) 19.
// A checkpoint taken before the primary lets the loop retroactively wrap
// it (and everything built so far) into a new Expression node each time
// an operator is found, which is what gives the final tree its correct
// left-associative nesting without any lookahead past one operator.

type operator struct {
	bp      int
	mapping syntax.Kind // 0 means use the token's default projection
	hasCB   bool
}

func prefixOp(k token.Kind) (operator, bool) {
	switch k {
	case token.NotKw:
		return operator{bp: 5, mapping: syntax.LogicOp}, true
	case token.PriorKw, token.ConnectByRootKw:
		return operator{bp: 17, mapping: syntax.HierarchicalOp}, true
	case token.Plus, token.Minus:
		return operator{bp: 17}, true
	}
	return operator{}, false
}

func postfixOp(k token.Kind) (operator, bool) {
	if k == token.Exclam {
		return operator{bp: 19}, true
	}
	return operator{}, false
}

func infixOp(k token.Kind) (operator, bool) {
	switch k {
	case token.OrKw:
		return operator{bp: 1, mapping: syntax.LogicOp}, true
	case token.AndKw:
		return operator{bp: 3, mapping: syntax.LogicOp}, true
	case token.Equals, token.Comparison:
		return operator{bp: 7}, true
	case token.LikeKw, token.IlikeKw, token.BetweenKw, token.InKw:
		return operator{bp: 9, hasCB: true}, true
	case token.DoublePipe:
		return operator{bp: 11}, true
	case token.Plus, token.Minus:
		return operator{bp: 13}, true
	case token.Asterisk, token.Slash, token.Percentage:
		return operator{bp: 15, mapping: syntax.ArithmeticOp}, true
	}
	return operator{}, false
}

// leadingIdentOrLiteral reports whether k starts a primary other than '('
// and the prefix operators, i.e. an identifier/literal-class token not
// itself one of the operator keywords that double as reserved words in
// this grammar.
func leadingIdentOrLiteral(k token.Kind) bool {
	if !(k.IsIdent() || k.IsLiteral()) {
		return false
	}
	switch k {
	case token.AndKw, token.BetweenKw, token.IlikeKw, token.InKw, token.LikeKw,
		token.NotKw, token.OrKw, token.ThenKw, token.PriorKw, token.ConnectByRootKw:
		return false
	}
	return true
}

// parseExpr parses one expression, recording an error and bumping one
// token for resynchronisation if nothing recognisable as a primary is
// found.
func (p *Parser) parseExpr() {
	if err := p.exprBP(0); err {
		it := p.currentItem()
		p.errors = append(p.errors, &Error{
			Kind: ExpectedOneOfTokens, Start: it.Pos.Offset, End: it.End(),
			Tokens: []token.Kind{token.UnquotedIdent, token.QuotedIdent, token.Integer, token.LParen, token.Minus, token.NotKw, token.Plus, token.QuotedLiteral, token.BindVar, token.PriorKw, token.ConnectByRootKw},
		})
		if p.current() != token.Eof {
			p.bumpAny()
		}
	}
}

// optExpr attempts an expression and reports whether one was found,
// without recording an error if not — used where an expression is one of
// several alternatives a production tries in turn.
func (p *Parser) optExpr() bool {
	return !p.exprBP(0)
}

// exprBP returns true on failure (no primary recognised at this position).
func (p *Parser) exprBP(minBP int) bool {
	cp := p.checkpoint()

	cur := p.current()
	switch {
	case leadingIdentOrLiteral(cur):
		switch {
		case cur.IsIdent():
			p.parseIdentOrFunctionInvocation()
		case cur == token.BindVar:
			p.parseIdent(1)
		default:
			p.bumpAny()
		}
		p.eat(token.OracleJoin)
	case cur == token.LParen:
		p.bumpAny()
		p.exprBP(0)
		if !p.expect(token.RParen) {
			p.errorAt(UnbalancedParens)
		}
	default:
		if op, ok := prefixOp(cur); ok {
			if op.mapping != 0 {
				p.bumpAnyMap(op.mapping)
			} else {
				p.bumpAny()
			}
			p.addExprNode(cp, op.bp+1)
		} else {
			return true
		}
	}

	for p.current() != token.Semicolon && p.current() != token.Eof {
		p.eat(token.NotKw) // NOT BETWEEN / NOT LIKE / NOT IN lead-in
		op := p.current()

		if pf, ok := postfixOp(op); ok {
			if pf.bp < minBP {
				break
			}
			p.bumpAny()
			p.addExprNode(cp, -1)
			continue
		}

		if inf, ok := infixOp(op); ok {
			if inf.bp < minBP {
				break
			}
			if inf.mapping != 0 {
				p.bumpAnyMap(inf.mapping)
			} else {
				p.bumpAny()
			}
			if inf.hasCB {
				switch op {
				case token.BetweenKw:
					p.betweenCond(inf.bp + 1)
				case token.InKw:
					p.inCond(inf.bp + 1)
				}
			}
			p.addExprNode(cp, inf.bp+1)
			continue
		}
		break
	}
	return false
}

// addExprNode retroactively wraps everything built since cp into an
// Expression node; if subBP >= 0 it first recurses to consume the
// right-hand operand at that binding power before closing the wrap.
func (p *Parser) addExprNode(cp Checkpoint, subBP int) {
	p.startNodeAt(cp, syntax.Expression)
	if subBP >= 0 {
		p.exprBP(subBP)
	}
	p.finish()
}

func (p *Parser) betweenCond(minBP int) {
	p.exprBP(minBP)
	p.expect(token.AndKw)
	p.exprBP(minBP)
}

func (p *Parser) inCond(minBP int) {
	p.expect(token.LParen)
	p.safeLoop(func() bool {
		p.exprBP(minBP)
		if !p.eat(token.Comma) {
			return false
		}
		return true
	})
	p.expect(token.RParen)
}
