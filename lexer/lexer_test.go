package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybertec-plsql/plsqlcst/token"
)

// drain scans input to completion and returns every item, including
// trivia, verifying along the way that byte completeness holds: the
// concatenation of every item's text equals the input exactly.
func drain(t *testing.T, input string) []token.Item {
	t.Helper()
	l := New(input)
	var items []token.Item
	var text string
	for !l.AtEOF() {
		it := l.Next()
		if it.Type == token.Eof {
			break
		}
		items = append(items, it)
		text += it.Value
	}
	require.Equal(t, input, text, "byte completeness")
	return items
}

func TestKeywordCaseInsensitive(t *testing.T) {
	for _, s := range []string{"select", "SELECT", "Select", "sElEcT"} {
		items := drain(t, s)
		require.Len(t, items, 1)
		assert.Equal(t, token.SelectKw, items[0].Type)
		assert.Equal(t, s, items[0].Value, "original case preserved in Value")
	}
}

func TestAmbiguousCKeyword(t *testing.T) {
	items := drain(t, "c")
	require.Len(t, items, 1)
	assert.Equal(t, token.CKw, items[0].Type, "priority must resolve c to the keyword, not unquoted_ident")
}

func TestIdentifierNotStartingWithC(t *testing.T) {
	items := drain(t, "customer")
	require.Len(t, items, 1)
	assert.Equal(t, token.UnquotedIdent, items[0].Type)
}

func TestIntegerLiteralIsUnsigned(t *testing.T) {
	items := drain(t, "-1")
	require.Len(t, items, 2)
	assert.Equal(t, token.Minus, items[0].Type, "leading - is its own token, not folded into the literal")
	assert.Equal(t, token.Integer, items[1].Type)
	assert.Equal(t, "1", items[1].Value)
}

func TestQuotedLiteralNoEscape(t *testing.T) {
	items := drain(t, "'it''s'")
	require.Len(t, items, 2, "a doubled quote is not an escape: it closes one literal and opens the next")
	assert.Equal(t, token.QuotedLiteral, items[0].Type)
	assert.Equal(t, "'it'", items[0].Value)
	assert.Equal(t, token.QuotedLiteral, items[1].Type)
	assert.Equal(t, "'s'", items[1].Value)
}

func TestQuotedIdentDoubledQuote(t *testing.T) {
	items := drain(t, `"He said ""hi"""`)
	require.Len(t, items, 1)
	assert.Equal(t, token.QuotedIdent, items[0].Type)
}

func TestBindVariable(t *testing.T) {
	items := drain(t, ":my_var")
	require.Len(t, items, 1)
	assert.Equal(t, token.BindVar, items[0].Type)
}

func TestOracleJoinMarkerNeverSplits(t *testing.T) {
	items := drain(t, "a.b(+)")
	var kinds []token.Kind
	for _, it := range items {
		kinds = append(kinds, it.Type)
	}
	assert.Contains(t, kinds, token.OracleJoin)
	for _, it := range items {
		if it.Type == token.OracleJoin {
			assert.Equal(t, "(+)", it.Value)
		}
	}
}

func TestUnrecognisedByteBecomesErrorToken(t *testing.T) {
	items := drain(t, "a \x01\x02 b")
	var sawError bool
	for _, it := range items {
		if it.Type == token.Error {
			sawError = true
			assert.Equal(t, "\x01\x02", it.Value, "a run of garbage coalesces into one Error token")
		}
	}
	assert.True(t, sawError)
}

func TestTriviaPreserved(t *testing.T) {
	items := drain(t, "a  -- comment\nb")
	var sawComment, sawWhitespace bool
	for _, it := range items {
		switch it.Type {
		case token.Comment:
			sawComment = true
			assert.Equal(t, "-- comment", it.Value)
		case token.Whitespace:
			sawWhitespace = true
		}
	}
	assert.True(t, sawComment)
	assert.True(t, sawWhitespace)
}

func TestPositionTracksLinesAndColumns(t *testing.T) {
	items := drain(t, "a\nbc")
	var last token.Item
	for _, it := range items {
		if it.Value == "bc" {
			last = it
		}
	}
	require.NotZero(t, last.Pos.Line)
	assert.Equal(t, 2, last.Pos.Line)
	assert.Equal(t, 1, last.Pos.Column)
}

func TestEmptyInput(t *testing.T) {
	items := drain(t, "")
	assert.Empty(t, items)
}

func TestPoolRoundTrip(t *testing.T) {
	l := Get("select")
	it := l.Next()
	assert.Equal(t, token.SelectKw, it.Type)
	Put(l)

	l2 := Get("from")
	it2 := l2.Next()
	assert.Equal(t, token.FromKw, it2.Type)
	Put(l2)
}
