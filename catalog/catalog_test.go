package catalog

import (
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedCatalogue(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)
	assert.NotEmpty(t, cat.Keywords)
	assert.NotEmpty(t, cat.Punctuation)
	assert.NotEmpty(t, cat.SyntaxNodes)
}

// TestLoadEmbeddedCatalogueIsDeterministic checks that loading the
// embedded catalogue twice yields identical data, since Load parses
// the embedded YAML fresh each call and a nondeterministic map
// iteration order anywhere in that path would otherwise go unnoticed.
// On mismatch it pretty-prints both catalogues so the offending field
// is legible instead of a wall of Go syntax.
func TestLoadEmbeddedCatalogueIsDeterministic(t *testing.T) {
	first, err := Load()
	require.NoError(t, err)
	second, err := Load()
	require.NoError(t, err)

	if diff := pretty.Diff(first, second); len(diff) > 0 {
		t.Errorf("Load() is not deterministic:\n%s", pretty.Sprint(diff))
	}
}

func TestAllCoversEveryGroupInOrder(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	all := cat.All()
	require.Len(t, all, len(cat.Trivia)+len(cat.Punctuation)+len(cat.Literals)+len(cat.Keywords))

	want := append([]string{}, groupNames(cat.Trivia, "trivia")...)
	want = append(want, groupNames(cat.Punctuation, "punctuation")...)
	want = append(want, groupNames(cat.Literals, "literals")...)
	want = append(want, groupNames(cat.Keywords, "keywords")...)

	for i, g := range all {
		assert.Equal(t, want[i], g.Group+":"+g.Shorthand, "entry %d out of order", i)
	}
}

func groupNames(es []Entry, group string) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = group + ":" + e.Shorthand
	}
	return out
}

func TestValidateRejectsDuplicateShorthand(t *testing.T) {
	cat := &Catalogue{
		Keywords: []Entry{
			{Shorthand: "begin", Name: "begin"},
			{Shorthand: "begin", Name: "begin_dup"},
		},
	}
	err := cat.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate shorthand")
}

func TestValidateRejectsNonIdentShorthandWithoutRegex(t *testing.T) {
	cat := &Catalogue{
		Punctuation: []Entry{
			{Shorthand: "@#", Name: "weird"},
		},
	}
	err := cat.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-identifier shorthand")
}

func TestValidateAllowsKeywordShorthandEqualToName(t *testing.T) {
	cat := &Catalogue{
		Keywords: []Entry{
			{Shorthand: "select", Name: "select"},
		},
	}
	assert.NoError(t, cat.Validate())
}

func TestValidateRejectsPriorityCollisionAtSameLength(t *testing.T) {
	cat := &Catalogue{
		Punctuation: []Entry{
			{Shorthand: "ab", Name: "ab", Priority: 1},
			{Shorthand: "cd", Name: "cd", Priority: 1},
		},
	}
	err := cat.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "priority")
}

func TestValidateAllowsPriorityCollisionAcrossLengths(t *testing.T) {
	cat := &Catalogue{
		Punctuation: []Entry{
			{Shorthand: "a", Name: "a", Priority: 1},
			{Shorthand: "bb", Name: "bb", Priority: 1},
		},
	}
	assert.NoError(t, cat.Validate())
}

func TestValidateAllowsRegexEntriesToShareLength(t *testing.T) {
	cat := &Catalogue{
		Literals: []Entry{
			{Shorthand: "int_literal", Name: "integer", Regex: `[0-9]+`, Priority: 1},
			{Shorthand: "ident", Name: "ident", Regex: `[a-z]+`, Priority: 1},
		},
	}
	assert.NoError(t, cat.Validate())
}
