// Package parser implements the hand-written, error-tolerant PL/SQL
// parser: a pull-style token-buffer engine (this file and errors.go) plus
// one grammar file per language area (expr.go, ident.go, block.go, and so
// on). The engine never panics and never returns an error in place of a
// tree; every deviation from the expected grammar becomes an *Error
// appended to the Result.
package parser

import (
	"sync"

	"github.com/cybertec-plsql/plsqlcst/lexer"
	"github.com/cybertec-plsql/plsqlcst/syntax"
	"github.com/cybertec-plsql/plsqlcst/token"
)

// Result is what every entry point returns: the tree always exists,
// independent of how many errors were recorded against it.
type Result struct {
	Root   *syntax.GreenNode
	Errors []*Error
}

type openFrame struct {
	kind  syntax.Kind
	start int
}

// Parser is the pull-style engine over a reversed token buffer: tokens
// are popped from the end, which is why buf holds them in reverse
// document order (buf[len(buf)-1] is the next token to be read). A single
// flat children buffer backs every currently open node; start/finish
// push and pop frames recording where in that flat buffer each node's
// content begins, the same scheme rust-analyzer's rowan uses to make
// Checkpoint/StartNodeAt a simple two-field record.
type Parser struct {
	buf      []token.Item
	children []syntax.GreenChild
	open     []openFrame
	errors   []*Error
}

var parserPool = sync.Pool{
	New: func() any { return &Parser{} },
}

// Get returns a pooled Parser fed by lexing src in full. Lexing happens
// eagerly because the engine needs random lookahead (nth/lookahead) that
// a pull-as-you-go lexer can't give it cheaply.
func Get(src string) *Parser {
	p := parserPool.Get().(*Parser)
	p.reset(src)
	return p
}

// Put returns p to the pool. p must not be used again by the caller.
func Put(p *Parser) {
	parserPool.Put(p)
}

func (p *Parser) reset(src string) {
	p.buf = p.buf[:0]
	p.children = p.children[:0]
	p.open = p.open[:0]
	p.errors = p.errors[:0]

	l := lexer.Get(src)
	var fwd []token.Item
	for !l.AtEOF() {
		fwd = append(fwd, l.Next())
	}
	lexer.Put(l)

	p.buf = make([]token.Item, len(fwd))
	for i, it := range fwd {
		p.buf[len(fwd)-1-i] = it
	}
}

// New builds an un-pooled Parser, for callers that don't want pool reuse
// (tests, one-shot tools).
func New(src string) *Parser {
	p := &Parser{}
	p.reset(src)
	return p
}

// rawPeek returns the k-th remaining token without consuming anything,
// trivia included, or a synthetic Eof item if the buffer has fewer than
// k+1 tokens left.
func (p *Parser) rawPeek(k int) token.Item {
	idx := len(p.buf) - 1 - k
	if idx < 0 {
		end := 0
		if len(p.buf) > 0 {
			end = p.buf[0].End()
		}
		return token.Item{Type: token.Eof, Pos: token.Pos{Offset: end}}
	}
	return p.buf[idx]
}

// skipTrivia drains leading trivia tokens from the front of the buffer,
// attaching each as an ordinary leaf of whatever node is presently open.
func (p *Parser) skipTrivia() {
	for len(p.buf) > 0 && p.buf[len(p.buf)-1].Type.IsTrivia() {
		p.pushToken(p.popRaw(), syntax.Kind(0))
	}
}

func (p *Parser) popRaw() token.Item {
	it := p.buf[len(p.buf)-1]
	p.buf = p.buf[:len(p.buf)-1]
	return it
}

func (p *Parser) pushToken(it token.Item, override syntax.Kind) {
	kind := syntax.Of(it.Type)
	if override != 0 {
		kind = override
	}
	p.children = append(p.children, syntax.GreenChild{Token: syntax.NewGreenToken(kind, it.Value)})
}

// current returns the kind of the next non-trivia token, skipping and
// attaching any leading trivia to the node presently open. It does not
// consume the non-trivia token itself.
func (p *Parser) current() token.Kind {
	p.skipTrivia()
	return p.rawPeek(0).Type
}

// currentItem is like current but returns the full item, for productions
// that need the token's text or position without consuming it yet.
func (p *Parser) currentItem() token.Item {
	p.skipTrivia()
	return p.rawPeek(0)
}

// nth returns the kind of the k-th non-trivia token ahead of the current
// position (nth(0) == current()), without consuming or skipping anything
// permanently.
func (p *Parser) nth(k int) token.Kind {
	p.skipTrivia()
	seen := 0
	for i := len(p.buf) - 1; i >= 0; i-- {
		if p.buf[i].Type.IsTrivia() {
			continue
		}
		if seen == k {
			return p.buf[i].Type
		}
		seen++
	}
	return token.Eof
}

// lookahead returns the next n non-trivia kinds starting at current, for
// productions that need to discriminate on more than one token.
func (p *Parser) lookahead(n int) []token.Kind {
	out := make([]token.Kind, n)
	for i := range out {
		out[i] = p.nth(i)
	}
	return out
}

// at reports whether current() == kind.
func (p *Parser) at(kind token.Kind) bool {
	return p.current() == kind
}

func (p *Parser) atOneOf(kinds ...token.Kind) bool {
	cur := p.current()
	for _, k := range kinds {
		if cur == k {
			return true
		}
	}
	return false
}

// eat consumes current() if it equals kind, attaching it to the open
// node, and reports whether it did.
func (p *Parser) eat(kind token.Kind) bool {
	if p.at(kind) {
		p.bumpAny()
		return true
	}
	return false
}

func (p *Parser) eatOneOf(kinds ...token.Kind) bool {
	if p.atOneOf(kinds...) {
		p.bumpAny()
		return true
	}
	return false
}

// bumpAny unconditionally consumes current() (which must already be the
// non-trivia token, i.e. current()/at() was called first) and attaches it
// to the open node using its catalogue-default projected syntax kind.
func (p *Parser) bumpAny() token.Item {
	p.skipTrivia()
	it := p.popRaw()
	p.pushToken(it, 0)
	return it
}

// bump is bumpAny under a name that records, at the call site, which kind
// the caller has already checked for; it does not itself check that
// current() == kind.
func (p *Parser) bump(kind token.Kind) token.Item {
	return p.bumpAny()
}

// bumpAnyMap is bumpAny but overrides the projected syntax kind, the
// mechanism that lets the Pratt engine attach '+' as ArithmeticOp in a
// unary-prefix position, or 'AND'/'OR' as LogicOp, regardless of what the
// catalogue's default projection for that token would otherwise be.
func (p *Parser) bumpAnyMap(target syntax.Kind) token.Item {
	p.skipTrivia()
	it := p.popRaw()
	p.pushToken(it, target)
	return it
}

// expect consumes current() if it equals kind; otherwise it records an
// ExpectedToken error at the current token's range without advancing,
// leaving the next grammar step to decide how to recover.
func (p *Parser) expect(kind token.Kind) bool {
	if p.at(kind) {
		p.bumpAny()
		return true
	}
	it := p.currentItem()
	p.errors = append(p.errors, &Error{Kind: ExpectedToken, Start: it.Pos.Offset, End: it.End(), Token: kind})
	return false
}

func (p *Parser) expectOneOf(kinds ...token.Kind) bool {
	if p.atOneOf(kinds...) {
		p.bumpAny()
		return true
	}
	it := p.currentItem()
	p.errors = append(p.errors, &Error{Kind: ExpectedOneOfTokens, Start: it.Pos.Offset, End: it.End(), Tokens: kinds})
	return false
}

// start pushes a new open node of kind onto the builder stack.
func (p *Parser) start(kind syntax.Kind) {
	p.open = append(p.open, openFrame{kind: kind, start: len(p.children)})
}

// finish pops the most recently opened node, wrapping every child pushed
// since its start (tokens bumped, or sub-nodes already finished) into a
// single GreenNode that becomes one child of whatever is now on top.
func (p *Parser) finish() {
	top := p.open[len(p.open)-1]
	p.open = p.open[:len(p.open)-1]

	nodeChildren := append([]syntax.GreenChild(nil), p.children[top.start:]...)
	p.children = p.children[:top.start]
	node := syntax.NewGreenNode(top.kind, nodeChildren)
	p.children = append(p.children, syntax.GreenChild{Node: node})
}

// Checkpoint marks a position in the flat child buffer so a parent node
// can be introduced retroactively around everything built since, via
// StartNodeAt. It first drains trivia so the checkpoint lands exactly at
// the boundary a later wrap should start from.
type Checkpoint int

func (p *Parser) checkpoint() Checkpoint {
	p.skipTrivia()
	return Checkpoint(len(p.children))
}

// startNodeAt retroactively opens kind starting at cp: when this frame
// finishes, it wraps everything built since cp (which may already include
// one or more already-finished sub-nodes) as its children. This is how
// the Pratt engine promotes a bare primary into an Expression once it
// discovers an infix operator follows it.
func (p *Parser) startNodeAt(cp Checkpoint, kind syntax.Kind) {
	p.open = append(p.open, openFrame{kind: kind, start: int(cp)})
}

// errorAt records kind at the current token's range without consuming
// anything.
func (p *Parser) errorAt(kind ErrorKind) {
	it := p.currentItem()
	p.errors = append(p.errors, &Error{Kind: kind, Start: it.Pos.Offset, End: it.End()})
}

// errorHere is errorAt plus a free-form What, used for Unimplemented and
// Unhandled.
func (p *Parser) errorHere(kind ErrorKind, what string) {
	it := p.currentItem()
	p.errors = append(p.errors, &Error{Kind: kind, Start: it.Pos.Offset, End: it.End(), What: what})
}

// untilLast consumes tokens through the *last* occurrence of kind in the
// remaining buffer, attaching each (trivia included) to the open node. If
// kind does not occur again, it consumes nothing and returns false.
func (p *Parser) untilLast(kind token.Kind) bool {
	target := -1
	for i := len(p.buf) - 1; i >= 0; i-- {
		if p.buf[i].Type == kind {
			target = i
		}
	}
	if target < 0 {
		return false
	}
	for len(p.buf)-1 >= target {
		if p.buf[len(p.buf)-1].Type.IsTrivia() {
			p.pushToken(p.popRaw(), 0)
			continue
		}
		p.bumpAny()
	}
	return true
}

// safeLoop runs body repeatedly until it returns false or stop, guarding
// against a production that claims to make progress but doesn't: if one
// iteration leaves both the token buffer and the child buffer at the same
// length (nothing consumed, not even trivia), the loop records
// EndlessLoop and breaks. Every grammar loop
// that iterates on unbounded input goes through this, per the parser's
// unconditional safety net.
func (p *Parser) safeLoop(body func() (cont bool)) {
	for {
		before := len(p.buf)
		beforeChildren := len(p.children)
		if !body() {
			return
		}
		if len(p.buf) == before && len(p.children) == beforeChildren {
			p.errorAt(EndlessLoop)
			return
		}
	}
}

// finishParse closes any still-open frames (defensive: well-formed
// grammar productions close everything they open, but a production that
// returns early after an error must not leave the builder unbalanced),
// drains any trailing trivia, and reports Incomplete if tokens remain.
func (p *Parser) finishParse(rootKind syntax.Kind) *Result {
	p.skipTrivia()
	for len(p.open) > 0 {
		p.finish()
	}
	if len(p.buf) > 0 {
		var text string
		for i := len(p.buf) - 1; i >= 0; i-- {
			text += p.buf[i].Value
		}
		start := p.buf[len(p.buf)-1].Pos.Offset
		end := p.buf[0].End()
		p.errors = append(p.errors, &Error{Kind: Incomplete, Start: start, End: end, Text: text})
		// bump_any-through-EOF so the tree still covers every byte.
		for len(p.buf) > 0 {
			p.pushToken(p.popRaw(), 0)
		}
	}

	root := syntax.NewGreenNode(rootKind, p.children)
	p.children = p.children[:0]
	return &Result{Root: root, Errors: p.errors}
}
