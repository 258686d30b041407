// Package lexer tokenizes PL/SQL source text against the catalogue-derived
// token.Matchers table: longest match wins; at equal length a literal
// shorthand beats a regex entry, and between regex entries the higher
// declared priority wins. Literal shorthands are compared case-folded;
// regex entries carry their own (?i) flag where case is irrelevant, and
// every regex is matched leftmost-longest. Every byte of
// input is covered; bytes matching nothing are coalesced into a single
// Error token rather than skipped, which is what lets a parser built on
// top of this lexer guarantee byte completeness even on garbage input.
package lexer

import (
	"regexp"
	"sync"

	"golang.org/x/text/cases"

	"github.com/cybertec-plsql/plsqlcst/token"
)

var foldCase = cases.Fold()

type compiledMatcher struct {
	token.Matcher
	re *regexp.Regexp // non-nil for regex entries, anchored at ^
}

var matchers = compileMatchers()

func compileMatchers() []compiledMatcher {
	out := make([]compiledMatcher, len(token.Matchers))
	for i, m := range token.Matchers {
		out[i] = compiledMatcher{Matcher: m}
		if m.Regex != "" {
			out[i].re = regexp.MustCompile(`^(?:` + m.Regex + `)`)
			out[i].re.Longest()
		}
	}
	return out
}

// Lexer scans one input string into a stream of token.Item. It is
// pool-reusable: Get/Put avoid an allocation per parse the same way the
// teacher's lexer.Lexer does.
type Lexer struct {
	input   string
	pos     int
	line    int
	linePos int
	item    token.Item
	peeked  bool
}

var lexerPool = sync.Pool{
	New: func() any { return &Lexer{} },
}

// New creates a Lexer for input without going through the pool.
func New(input string) *Lexer {
	l := &Lexer{}
	l.Reset(input)
	return l
}

// Get returns a pooled Lexer initialized with input.
func Get(input string) *Lexer {
	l := lexerPool.Get().(*Lexer)
	l.Reset(input)
	return l
}

// Put returns l to the pool. l must not be used again by the caller.
func Put(l *Lexer) {
	lexerPool.Put(l)
}

// Reset rewinds l to scan input from the beginning.
func (l *Lexer) Reset(input string) {
	l.input = input
	l.pos = 0
	l.line = 1
	l.linePos = 0
	l.item = token.Item{}
	l.peeked = false
}

// Next returns the next token, including trivia and Error tokens, and
// advances past it. Call AtEOF before Next to know whether input remains;
// once input is exhausted Next keeps returning a zero-length token.Eof
// item rather than panicking, so a careless extra call is harmless.
func (l *Lexer) Next() token.Item {
	if l.peeked {
		l.peeked = false
		return l.item
	}
	l.item = l.scan()
	return l.item
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() token.Item {
	if !l.peeked {
		l.item = l.scan()
		l.peeked = true
	}
	return l.item
}

// AtEOF reports whether the lexer has consumed the entire input.
func (l *Lexer) AtEOF() bool {
	if l.peeked {
		return false
	}
	return l.pos >= len(l.input)
}

func (l *Lexer) scan() token.Item {
	pos := token.Pos{Offset: l.pos, Line: l.line, Column: l.pos - l.linePos + 1}

	kind, text := l.matchLongest()
	l.advance(text)

	return token.Item{Type: kind, Value: text, Pos: pos}
}

// matchLongest tries every catalogue matcher against the input at the
// current position and returns the longest match. Ties go to a literal
// (regex-free) entry over a regex entry, so a keyword beats the
// identifier pattern; between regex entries the higher declared priority
// wins; anything still tied goes to catalogue order (earlier wins, which
// keeps results deterministic). If nothing matches, it
// coalesces a run of otherwise-unmatched bytes into one Error token so
// input is never silently skipped.
func (l *Lexer) matchLongest() (token.Kind, string) {
	rest := l.input[l.pos:]
	if rest == "" {
		return token.Eof, ""
	}

	bestLen := -1
	bestPriority := -1
	bestLiteral := false
	bestKind := token.Invalid

	for _, m := range matchers {
		n, ok := matchOne(m, rest)
		if !ok {
			continue
		}
		literal := m.re == nil
		if n > bestLen || (n == bestLen && !bestLiteral && (literal || m.Priority > bestPriority)) {
			bestLen = n
			bestPriority = m.Priority
			bestLiteral = literal
			bestKind = m.Kind
		}
	}

	if bestLen > 0 {
		return bestKind, rest[:bestLen]
	}

	return token.Error, l.scanErrorRun(rest)
}

func matchOne(m compiledMatcher, rest string) (int, bool) {
	if m.re != nil {
		loc := m.re.FindStringIndex(rest)
		if loc == nil || loc[0] != 0 {
			return 0, false
		}
		return loc[1], true
	}
	sh := m.Shorthand
	if len(rest) < len(sh) {
		return 0, false
	}
	if foldCase.String(rest[:len(sh)]) == foldCase.String(sh) {
		return len(sh), true
	}
	return 0, false
}

// scanErrorRun consumes bytes up to (but not including) the next position
// where some matcher succeeds, or to end of input, so a run of garbage
// collapses into a single Error token instead of one per byte.
func (l *Lexer) scanErrorRun(rest string) string {
	n := 1
	for n < len(rest) {
		ok := false
		for _, m := range matchers {
			if _, matched := matchOne(m, rest[n:]); matched {
				ok = true
				break
			}
		}
		if ok {
			break
		}
		n++
	}
	return rest[:n]
}

func (l *Lexer) advance(text string) {
	for i, r := range text {
		if r == '\n' {
			l.line++
			l.linePos = l.pos + i + 1
		}
	}
	l.pos += len(text)
}
