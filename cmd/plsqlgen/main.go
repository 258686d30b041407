// Command plsqlgen is the build-time code generator that keeps
// token/generated.go and syntax/generated.go in sync with the single
// declarative catalogue at catalog/catalog.yaml. It is self-verifying in
// the style of the original project's source_gen build step: run with no
// flags, it regenerates both files in place and exits non-zero if either
// changed, so CI notices drift between the catalogue and the checked-in
// artifacts without anyone having to remember to run it by hand.
package main

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/juju/errors"
	"github.com/sirupsen/logrus"

	"github.com/cybertec-plsql/plsqlcst/catalog"
)

var log = logrus.WithField("component", "plsqlgen")

func main() {
	if err := run(); err != nil {
		log.WithError(err).Error("generation failed")
		os.Exit(1)
	}
}

func run() error {
	cat, err := catalog.Load()
	if err != nil {
		return errors.Annotate(err, "loading catalogue")
	}

	tokenSrc, err := generateToken(cat)
	if err != nil {
		return errors.Annotate(err, "generating token/generated.go")
	}
	syntaxSrc, err := generateSyntax(cat)
	if err != nil {
		return errors.Annotate(err, "generating syntax/generated.go")
	}

	changed := false
	for _, f := range []struct {
		path    string
		content []byte
	}{
		{"token/generated.go", tokenSrc},
		{"syntax/generated.go", syntaxSrc},
	} {
		c, err := guaranteeFileContent(f.path, f.content)
		if err != nil {
			return errors.Annotatef(err, "writing %s", f.path)
		}
		changed = changed || c
	}
	if changed {
		return errors.New("generated artifacts were stale and have been rewritten; re-run to verify")
	}
	log.Info("generated artifacts up to date")
	return nil
}

// guaranteeFileContent writes content to path only if it differs from what
// is already there, logging a warning when it does. Returns whether the
// file changed.
func guaranteeFileContent(path string, content []byte) (bool, error) {
	existing, err := os.ReadFile(path)
	if err == nil && bytes.Equal(existing, content) {
		return false, nil
	}
	log.WithField("path", path).Warn("generated content is stale, rewriting")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return false, errors.Trace(err)
	}
	return true, nil
}

var identSplit = regexp.MustCompile(`[_\-]`)

func upperCamel(s string) string {
	parts := identSplit.Split(s, -1)
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

func isKeywordEntry(e catalog.Entry) bool {
	return e.Shorthand == e.Name && e.Regex == ""
}

// tokenIdent reproduces the original generator's to_ident rule: the
// catalogue name in UpperCamel, with a "Kw" suffix exactly when the entry
// is a bare keyword (shorthand equal to name, no regex).
func tokenIdent(e catalog.Entry) string {
	id := upperCamel(e.Name)
	if isKeywordEntry(e) {
		id += "Kw"
	}
	return id
}

func allEntries(cat *catalog.Catalogue) []catalog.GroupedEntry {
	return cat.All()
}

func generateToken(cat *catalog.Catalogue) ([]byte, error) {
	entries := allEntries(cat)

	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		id := tokenIdent(e.Entry)
		if seen[id] {
			return nil, errors.Errorf("duplicate generated identifier %q from entry %q", id, e.Shorthand)
		}
		seen[id] = true
	}

	var b strings.Builder
	fmt.Fprintln(&b, "// Code generated by cmd/plsqlgen from catalog/catalog.yaml; DO NOT EDIT.")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "package token")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, `import "strconv"`)
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "// Kind identifies a lexical token class. The zero value is not a valid")
	fmt.Fprintln(&b, "// token kind produced by the lexer; it exists only as Go's zero value.")
	fmt.Fprintln(&b, "type Kind int")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "const (")
	fmt.Fprintln(&b, "\tInvalid Kind = iota")
	for _, e := range entries {
		fmt.Fprintf(&b, "\t%s\n", tokenIdent(e.Entry))
	}
	fmt.Fprintln(&b, "\tError")
	fmt.Fprintln(&b, "\t// Eof is synthetic and covers no input: Lexer.Next returns it once")
	fmt.Fprintln(&b, "\t// the input is exhausted, Parser.current once the buffer is drained.")
	fmt.Fprintln(&b, "\tEof")
	fmt.Fprintln(&b, ")")
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "var kindNames = [...]string{")
	fmt.Fprintln(&b, `	Invalid: "Invalid",`)
	for _, e := range entries {
		fmt.Fprintf(&b, "\t%s: %q,\n", tokenIdent(e.Entry), tokenIdent(e.Entry))
	}
	fmt.Fprintln(&b, `	Error: "Error",`)
	fmt.Fprintln(&b, `	Eof:   "Eof",`)
	fmt.Fprintln(&b, "}")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "func (k Kind) String() string {")
	fmt.Fprintln(&b, "\tif int(k) >= 0 && int(k) < len(kindNames) && kindNames[k] != \"\" {")
	fmt.Fprintln(&b, "\t\treturn kindNames[k]")
	fmt.Fprintln(&b, "\t}")
	fmt.Fprintln(&b, `	return "Kind(" + strconv.Itoa(int(k)) + ")"`)
	fmt.Fprintln(&b, "}")
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "// Matcher describes how a single catalogue entry is recognised by the")
	fmt.Fprintln(&b, "// lexer: either a case-insensitive literal match on Shorthand, or a")
	fmt.Fprintln(&b, "// regular expression with a declared Priority used to break ties between")
	fmt.Fprintln(&b, "// overlapping matches of equal length.")
	fmt.Fprintln(&b, "type Matcher struct {")
	fmt.Fprintln(&b, "\tKind      Kind")
	fmt.Fprintln(&b, "\tShorthand string")
	fmt.Fprintln(&b, "\tRegex     string // empty means literal, case-insensitive match on Shorthand")
	fmt.Fprintln(&b, "\tPriority  int")
	fmt.Fprintln(&b, "}")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "// Matchers lists every lexable token in declaration order: trivia,")
	fmt.Fprintln(&b, "// punctuation, literals, keywords. The lexer tries all of them at each")
	fmt.Fprintln(&b, "// position and keeps the longest match, breaking ties by Priority.")
	fmt.Fprintln(&b, "var Matchers = []Matcher{")
	for _, e := range entries {
		fmt.Fprintf(&b, "\t{Kind: %s, Shorthand: %q, Regex: %q, Priority: %d},\n",
			tokenIdent(e.Entry), e.Shorthand, e.Regex, e.Priority)
	}
	fmt.Fprintln(&b, "}")
	fmt.Fprintln(&b)

	for _, grp := range []struct{ pred, group string }{
		{"IsTrivia", "trivia"},
		{"IsPunct", "punctuation"},
		{"IsLiteral", "literals"},
	} {
		var members []string
		for _, e := range entries {
			if e.Group == grp.group {
				members = append(members, tokenIdent(e.Entry))
			}
		}
		fmt.Fprintf(&b, "// %s reports whether k belongs to the catalogue's %s group.\n", grp.pred, grp.group)
		fmt.Fprintf(&b, "func (k Kind) %s() bool {\n", grp.pred)
		fmt.Fprintln(&b, "\tswitch k {")
		fmt.Fprintf(&b, "\tcase %s:\n", strings.Join(members, ", "))
		fmt.Fprintln(&b, "\t\treturn true")
		fmt.Fprintln(&b, "\tdefault:")
		fmt.Fprintln(&b, "\t\treturn false")
		fmt.Fprintln(&b, "\t}")
		fmt.Fprintln(&b, "}")
		fmt.Fprintln(&b)
	}

	fmt.Fprintln(&b, "// IsIdent reports whether k may occupy an identifier position: the three")
	fmt.Fprintln(&b, "// literal identifier-shaped kinds, or any keyword admitted by the")
	fmt.Fprintln(&b, "// permissive keywords-as-identifiers rule (anything that is not trivia,")
	fmt.Fprintln(&b, "// punctuation, a literal, Error, or Eof).")
	fmt.Fprintln(&b, "func (k Kind) IsIdent() bool {")
	fmt.Fprintln(&b, "\tswitch k {")
	fmt.Fprintln(&b, "\tcase UnquotedIdent, QuotedIdent, BindVar:")
	fmt.Fprintln(&b, "\t\treturn true")
	fmt.Fprintln(&b, "\t}")
	fmt.Fprintln(&b, "\treturn !(k.IsTrivia() || k.IsPunct() || k.IsLiteral() || k == Eof || k == Error)")
	fmt.Fprintln(&b, "}")
	fmt.Fprintln(&b)

	return []byte(b.String()), nil
}

func generateSyntax(cat *catalog.Catalogue) ([]byte, error) {
	entries := allEntries(cat)

	nameToIdent := make(map[string]string, len(cat.SyntaxNodes))
	var syntaxIdents []string
	for _, n := range cat.SyntaxNodes {
		id := upperCamel(n.Name)
		if _, dup := nameToIdent[n.Name]; dup {
			return nil, errors.Errorf("duplicate syntax node name %q", n.Name)
		}
		nameToIdent[n.Name] = id
		syntaxIdents = append(syntaxIdents, id)
	}
	if _, ok := nameToIdent["keyword"]; !ok {
		return nil, errors.New(`catalogue must declare a "keyword" syntax node: it is the default projection target`)
	}

	for _, required := range []string{"root", "error"} {
		if _, ok := nameToIdent[required]; !ok {
			return nil, errors.Errorf("catalogue must declare a %q syntax node", required)
		}
	}

	var b strings.Builder
	fmt.Fprintln(&b, "// Code generated by cmd/plsqlgen from catalog/catalog.yaml; DO NOT EDIT.")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "package syntax")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, `import "github.com/cybertec-plsql/plsqlcst/token"`)
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "// Kind identifies a node or leaf label in the concrete syntax tree.")
	fmt.Fprintln(&b, "type Kind int")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "const (")
	fmt.Fprintln(&b, "\tInvalid Kind = iota")
	for _, id := range syntaxIdents {
		fmt.Fprintf(&b, "\t%s\n", id)
	}
	fmt.Fprintln(&b, ")")
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "var kindNames = [...]string{")
	fmt.Fprintln(&b, `	Invalid: "Invalid",`)
	for _, n := range cat.SyntaxNodes {
		fmt.Fprintf(&b, "\t%s: %q,\n", nameToIdent[n.Name], n.Name)
	}
	fmt.Fprintln(&b, "}")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "func (k Kind) String() string {")
	fmt.Fprintln(&b, "\tif int(k) >= 0 && int(k) < len(kindNames) && kindNames[k] != \"\" {")
	fmt.Fprintln(&b, "\t\treturn kindNames[k]")
	fmt.Fprintln(&b, "\t}")
	fmt.Fprintln(&b, `	return "Kind(?)"`)
	fmt.Fprintln(&b, "}")
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "// Of is the total projection from a token kind to the syntax kind it")
	fmt.Fprintln(&b, "// collapses into as a tree leaf: the catalogue's declared override, or")
	fmt.Fprintln(&b, "// Keyword by default for any token (of any group) that declares none.")
	fmt.Fprintln(&b, "// Eof never appears in the tree and has no entry.")
	fmt.Fprintln(&b, "func Of(k token.Kind) Kind {")
	fmt.Fprintln(&b, "\tswitch k {")
	for _, e := range entries {
		target := "Keyword"
		if e.SyntaxKind != "" {
			id, ok := nameToIdent[e.SyntaxKind]
			if !ok {
				return nil, errors.Errorf("entry %q overrides to unknown syntax kind %q", e.Shorthand, e.SyntaxKind)
			}
			target = id
		}
		fmt.Fprintf(&b, "\tcase token.%s:\n\t\treturn %s\n", tokenIdent(e.Entry), target)
	}
	fmt.Fprintln(&b, "\tcase token.Error:")
	fmt.Fprintln(&b, "\t\treturn Error")
	fmt.Fprintln(&b, "\tdefault:")
	fmt.Fprintln(&b, "\t\treturn Keyword")
	fmt.Fprintln(&b, "\t}")
	fmt.Fprintln(&b, "}")
	fmt.Fprintln(&b)

	return []byte(b.String()), nil
}
