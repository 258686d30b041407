package parser

import (
	"fmt"
	"strings"

	"github.com/cybertec-plsql/plsqlcst/token"
)

// ErrorKind enumerates the parser's error taxonomy. Every value is
// attached to a byte range when recorded; none of them unwind the parse.
type ErrorKind int

const (
	// Incomplete means the parse finished but the token buffer still held
	// unconsumed tokens.
	Incomplete ErrorKind = iota
	// UnknownToken means the lexer produced an Error token and the parser
	// consumed it.
	UnknownToken
	// ExpectedDdlOrDatabaseEvent means trigger grammar saw neither a DDL
	// keyword nor a known database event where one was required.
	ExpectedDdlOrDatabaseEvent
	// ExpectedIdent means an identifier position held a non-identifier
	// token.
	ExpectedIdent
	// ExpectedStatement means a statement position held an unexpected
	// token.
	ExpectedStatement
	// ExpectedConstraint means a constraint position held an unexpected
	// token.
	ExpectedConstraint
	// ExpectedToken means expect() failed for one specific token kind.
	ExpectedToken
	// ExpectedOneOfTokens means expect_one_of() failed.
	ExpectedOneOfTokens
	// UnbalancedParens means a '(' opened inside an expression was not
	// closed by a matching ')'. A stray ')' with no '(' is not reported
	// under this kind; the production that meets it records what it
	// expected there instead.
	UnbalancedParens
	// EndlessLoop means a grammar loop made no progress in one iteration
	// and the safe-loop guard broke out of it.
	EndlessLoop
	// Eof means an unexpected end of input.
	Eof
	// Unimplemented means a reachable but undeveloped production was hit.
	Unimplemented
	// Unhandled is the catch-all.
	Unhandled
)

func (k ErrorKind) String() string {
	switch k {
	case Incomplete:
		return "Incomplete"
	case UnknownToken:
		return "UnknownToken"
	case ExpectedDdlOrDatabaseEvent:
		return "ExpectedDdlOrDatabaseEvent"
	case ExpectedIdent:
		return "ExpectedIdent"
	case ExpectedStatement:
		return "ExpectedStatement"
	case ExpectedConstraint:
		return "ExpectedConstraint"
	case ExpectedToken:
		return "ExpectedToken"
	case ExpectedOneOfTokens:
		return "ExpectedOneOfTokens"
	case UnbalancedParens:
		return "UnbalancedParens"
	case EndlessLoop:
		return "EndlessLoop"
	case Eof:
		return "Eof"
	case Unimplemented:
		return "Unimplemented"
	case Unhandled:
		return "Unhandled"
	default:
		return "Unknown"
	}
}

// Error is one recorded parse error: a Kind, the byte range it occurred
// at, and whatever payload that Kind carries (Token, Tokens, Text, What).
// It implements the error interface so it can be handled like any other
// Go error, but it is never returned in place of a parse tree — it is
// only ever appended to Result.Errors.
type Error struct {
	Kind       ErrorKind
	Start, End int
	Token      token.Kind
	Tokens     []token.Kind
	Text       string
	What       string
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s at [%d,%d)", e.Kind, e.Start, e.End)
	switch e.Kind {
	case UnknownToken, Incomplete:
		fmt.Fprintf(&b, ": %q", e.Text)
	case ExpectedStatement, ExpectedConstraint, ExpectedToken:
		fmt.Fprintf(&b, ": %s", e.Token)
	case ExpectedOneOfTokens:
		parts := make([]string, len(e.Tokens))
		for i, t := range e.Tokens {
			parts[i] = t.String()
		}
		fmt.Fprintf(&b, ": one of [%s]", strings.Join(parts, ", "))
	case Unimplemented:
		fmt.Fprintf(&b, ": %s", e.What)
	case Unhandled:
		fmt.Fprintf(&b, ": %s %q", e.What, e.Text)
	}
	return b.String()
}
