// Package catalog holds the single declarative source of truth for the
// token and syntax-kind enumerations: catalog.yaml. cmd/plsqlgen reads it
// at build time to emit token/generated.go and syntax/generated.go; tests
// in this package check the catalogue itself for the failure conditions
// spec'd for the generator (duplicate shorthand, missing regex, priority
// collisions).
package catalog

import (
	_ "embed"
	"fmt"

	"github.com/juju/errors"
	"gopkg.in/yaml.v2"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Entry is one token catalogue record: shorthand is the source-level
// fragment used in grammar productions (e.g. "select", ":="); name is the
// identifier-safe canonical name; SyntaxKind, if set, is the node label
// this token collapses into as a tree leaf; Regex, if set, replaces a plain
// case-insensitive literal match on shorthand; Priority disambiguates
// overlapping regex matches of equal length, higher wins.
type Entry struct {
	Shorthand  string `yaml:"shorthand"`
	Name       string `yaml:"name"`
	SyntaxKind string `yaml:"syntax_kind,omitempty"`
	Regex      string `yaml:"regex,omitempty"`
	Priority   int    `yaml:"priority,omitempty"`
}

// IsKeyword reports whether an entry of group is a keyword. That depends
// on the group alone: every entry of the keywords group is one, whatever
// its shorthand, name or regex.
func (e Entry) IsKeyword(group string) bool {
	return group == "keywords"
}

// SyntaxNode is one entry of the syntax-kind catalogue: a node label and
// its documentation.
type SyntaxNode struct {
	Name        string `yaml:"name"`
	Explanation string `yaml:"explanation"`
}

// Catalogue is the fully decoded contents of catalog.yaml.
type Catalogue struct {
	Trivia      []Entry      `yaml:"trivia"`
	Punctuation []Entry      `yaml:"punctuation"`
	Literals    []Entry      `yaml:"literals"`
	Keywords    []Entry      `yaml:"keywords"`
	SyntaxNodes []SyntaxNode `yaml:"syntax_nodes"`
}

// All returns every token entry across all four groups, in catalogue
// order: trivia, punctuation, literals, keywords. Order matters only for
// determinism of generated output, not for lexing semantics.
func (c *Catalogue) All() []GroupedEntry {
	out := make([]GroupedEntry, 0, len(c.Trivia)+len(c.Punctuation)+len(c.Literals)+len(c.Keywords))
	add := func(group string, es []Entry) {
		for _, e := range es {
			out = append(out, GroupedEntry{Entry: e, Group: group})
		}
	}
	add("trivia", c.Trivia)
	add("punctuation", c.Punctuation)
	add("literals", c.Literals)
	add("keywords", c.Keywords)
	return out
}

// GroupedEntry pairs a catalogue Entry with the group it was declared in.
type GroupedEntry struct {
	Entry
	Group string
}

// Load decodes the embedded catalog.yaml.
func Load() (*Catalogue, error) {
	var c Catalogue
	if err := yaml.Unmarshal(catalogYAML, &c); err != nil {
		return nil, errors.Annotate(err, "catalog: decode catalog.yaml")
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	return &c, nil
}

// Validate checks the failure conditions spec'd for the code generator:
// duplicate shorthand, a non-keyword entry whose shorthand contains
// non-identifier characters but carries no regex, and priority collisions
// that the generator cannot resolve because two entries of the same
// matched length declare the same priority.
func (c *Catalogue) Validate() error {
	seen := make(map[string]string, 300)
	priorityAtLen := make(map[int]map[int]string)

	check := func(group string, e Entry) error {
		if prev, ok := seen[e.Shorthand]; ok {
			return errors.Errorf("catalog: duplicate shorthand %q (first seen in %s, again in %s)", e.Shorthand, prev, group)
		}
		seen[e.Shorthand] = group

		if group != "keywords" && e.Regex == "" && !isPlainIdent(e.Shorthand) {
			return errors.Errorf("catalog: entry %q in %s has non-identifier shorthand and no regex", e.Shorthand, group)
		}

		if e.Priority != 0 {
			length := len(e.Shorthand)
			if e.Regex != "" {
				length = -1 // regex entries cannot be bucketed by static length
			}
			if length >= 0 {
				byLen, ok := priorityAtLen[length]
				if !ok {
					byLen = make(map[int]string)
					priorityAtLen[length] = byLen
				}
				if prev, ok := byLen[e.Priority]; ok {
					return errors.Errorf("catalog: priority %d collides between %q and %q at length %d", e.Priority, prev, e.Shorthand, length)
				}
				byLen[e.Priority] = e.Shorthand
			}
		}
		return nil
	}

	for _, e := range c.All() {
		if err := check(e.Group, e.Entry); err != nil {
			return err
		}
	}
	return nil
}

func isPlainIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// String renders an Entry for diagnostics.
func (e Entry) String() string {
	return fmt.Sprintf("%s(%s)", e.Name, e.Shorthand)
}
