package parser

import (
	"github.com/cybertec-plsql/plsqlcst/syntax"
	"github.com/cybertec-plsql/plsqlcst/token"
)

var systemEventKeywords = []token.Kind{
	token.LogonKw, token.LogoffKw, token.ServererrorKw, token.StartupKw, token.ShutdownKw,
	token.DbRoleChangeKw, token.SuspendKw, token.DdlKw,
	token.CreateKw, token.AlterKw, token.DropKw, token.TruncateKw, token.RenameKw,
	token.GrantKw, token.RevokeKw, token.AuditKw, token.NoauditKw, token.CommentKw,
}

func isTriggerEventStart(k token.Kind) bool {
	switch k {
	case token.InsertKw, token.UpdateKw, token.DeleteKw:
		return true
	}
	for _, e := range systemEventKeywords {
		if k == e {
			return true
		}
	}
	return false
}

// parseTrigger parses `CREATE [OR REPLACE] TRIGGER name {BEFORE|AFTER|
// INSTEAD OF} event [OR event]* ON target [REFERENCING ...] [FOR EACH
// ROW] [[FORWARD|REVERSE] CROSSEDITION] [WHEN (cond)] [FOLLOWS|PRECEDES
// name [, name]*] [ENABLE|DISABLE] body`; the body is either a plain
// block or, for a compound trigger, explicitly unimplemented per the
// open design question on its shape.
func (p *Parser) parseTrigger() {
	p.start(syntax.Trigger)
	p.parseCreateOrReplacePrefix()
	p.expect(token.TriggerKw)

	p.start(syntax.TriggerHeader)
	p.parseIdentGroup(0)

	p.expectOneOf(token.BeforeKw, token.AfterKw, token.InsteadKw)
	if p.current() == token.OfKw {
		p.bumpAny()
	}

	p.safeLoop(func() bool {
		p.parseTriggerEvent()
		return p.eat(token.OrKw)
	})

	p.expect(token.OnKw)
	if identComponent(p.current()) {
		p.parseIdentGroup(0)
	} else if p.atOneOf(token.SchemaKw, token.DatabaseKw) {
		p.bumpAny()
	} else {
		p.errorAt(ExpectedDdlOrDatabaseEvent)
	}

	if p.at(token.ReferencingKw) {
		p.parseReferencingClause()
	}

	if p.at(token.ForKw) && p.nth(1) == token.EachKw {
		p.bumpAny()
		p.bumpAny()
		p.expect(token.RowKw)
	}

	p.parseTriggerEditionClause()

	if p.eat(token.WhenKw) {
		p.expect(token.LParen)
		p.parseExpr()
		p.expect(token.RParen)
	}

	p.parseTriggerOrderingClause()
	p.eatOneOf(token.EnableKw, token.DisableKw)

	p.finish()

	if p.at(token.CompoundKw) {
		p.errorHere(Unimplemented, "compound trigger")
		p.safeLoop(func() bool {
			if p.current() == token.Eof {
				return false
			}
			p.bumpAny()
			return true
		})
	} else {
		p.parseBlock()
	}

	p.finish()
}

// parseTriggerEvent parses one DML event (INSERT, DELETE, or UPDATE
// with an optional OF column list) or one bare system/DDL event
// keyword.
func (p *Parser) parseTriggerEvent() {
	p.start(syntax.TriggerEvent)
	switch {
	case p.eat(token.UpdateKw):
		if p.eat(token.OfKw) {
			p.safeLoop(func() bool {
				p.parseIdent(1)
				return p.eat(token.Comma)
			})
		}
	case isTriggerEventStart(p.current()):
		p.bumpAny()
	default:
		p.errorAt(ExpectedDdlOrDatabaseEvent)
	}
	p.finish()
}

// parseTriggerEditionClause parses the optional `[FORWARD|REVERSE]
// CROSSEDITION` clause. CROSSEDITION never appears bare: it is always
// gated on one of FORWARD or REVERSE naming the edition direction, so
// it's a no-op unless one of those two is actually present.
func (p *Parser) parseTriggerEditionClause() {
	if p.eatOneOf(token.ForwardKw, token.ReverseKw) {
		p.expect(token.CrosseditionKw)
	}
}

// parseTriggerOrderingClause parses the optional `FOLLOWS|PRECEDES
// name [, name]*` ordering clause naming one or more sibling triggers
// this one must fire before or after.
func (p *Parser) parseTriggerOrderingClause() {
	if p.eatOneOf(token.FollowsKw, token.PrecedesKw) {
		p.safeLoop(func() bool {
			p.parseIdent(1)
			return p.eat(token.Comma)
		})
	}
}

// parseReferencingClause parses `REFERENCING {OLD|NEW|PARENT} AS alias
// ...`.
func (p *Parser) parseReferencingClause() {
	p.start(syntax.ReferencingClause)
	p.expect(token.ReferencingKw)
	p.safeLoop(func() bool {
		if !p.atOneOf(token.OldKw, token.NewKw, token.ParentKw) {
			return false
		}
		p.bumpAny()
		p.eat(token.AsKw)
		p.parseIdent(1)
		return p.atOneOf(token.OldKw, token.NewKw, token.ParentKw)
	})
	p.finish()
}
