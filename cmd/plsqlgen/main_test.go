package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybertec-plsql/plsqlcst/catalog"
)

func TestGenerationIsDeterministic(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)

	tok1, err := generateToken(cat)
	require.NoError(t, err)
	tok2, err := generateToken(cat)
	require.NoError(t, err)
	assert.Equal(t, tok1, tok2)

	syn1, err := generateSyntax(cat)
	require.NoError(t, err)
	syn2, err := generateSyntax(cat)
	require.NoError(t, err)
	assert.Equal(t, syn1, syn2)
}

// TestCheckedInArtifactsAreUpToDate guards against editing catalog.yaml
// without regenerating the two files it drives: a drift here means CI's
// own run of this command would rewrite and fail, same as it would for
// a contributor who forgot to run it.
func TestCheckedInArtifactsAreUpToDate(t *testing.T) {
	root, err := filepath.Abs("../..")
	require.NoError(t, err)

	cat, err := catalog.Load()
	require.NoError(t, err)

	tokenSrc, err := generateToken(cat)
	require.NoError(t, err)
	syntaxSrc, err := generateSyntax(cat)
	require.NoError(t, err)

	tokenOnDisk, err := os.ReadFile(filepath.Join(root, "token", "generated.go"))
	require.NoError(t, err)
	syntaxOnDisk, err := os.ReadFile(filepath.Join(root, "syntax", "generated.go"))
	require.NoError(t, err)

	assert.Equal(t, string(tokenSrc), string(tokenOnDisk), "token/generated.go is stale; re-run cmd/plsqlgen")
	assert.Equal(t, string(syntaxSrc), string(syntaxOnDisk), "syntax/generated.go is stale; re-run cmd/plsqlgen")
}

func TestTokenIdentAppliesKwSuffixOnlyToBareKeywords(t *testing.T) {
	kw := catalog.Entry{Shorthand: "select", Name: "select"}
	assert.Equal(t, "SelectKw", tokenIdent(kw))

	lit := catalog.Entry{Shorthand: "int_literal", Name: "integer", Regex: `[0-9]+`}
	assert.Equal(t, "Integer", tokenIdent(lit))

	punct := catalog.Entry{Shorthand: ":=", Name: "assign"}
	assert.Equal(t, "Assign", tokenIdent(punct))
}
