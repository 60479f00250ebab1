package grammarfile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grammarforge/cykgrammar/cyk"
	"github.com/grammarforge/cykgrammar/internal/grammarfile"
)

func TestBuildResolvesPlainAndSpecifierItems(t *testing.T) {
	doc := &grammarfile.Document{
		Terminals: []string{"n"},
		Rules: []grammarfile.RuleDef{
			{Head: "A", RHS: []string{"n"}},
			{Head: "S", RHS: []string{"A", "keyword:+", "A"}},
		},
	}

	g, err := grammarfile.Build(doc)
	require.NoError(t, err)

	specs, err := g.Specifiers()
	require.NoError(t, err)
	require.Len(t, specs, 1)
	assert.Equal(t, cyk.NewKeyword("+"), specs[0])
}

func TestBuildResolvesNestedNearFar(t *testing.T) {
	doc := &grammarfile.Document{
		Terminals: []string{"n"},
		Rules: []grammarfile.RuleDef{
			{Head: "S", RHS: []string{"near:keyword:+"}},
		},
	}

	g, err := grammarfile.Build(doc)
	require.NoError(t, err)

	specs, err := g.Specifiers()
	require.NoError(t, err)
	require.Len(t, specs, 1)
	near, ok := specs[0].(cyk.Near)
	require.True(t, ok)
	assert.Equal(t, cyk.NewKeyword("+"), near.Inner)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := grammarfile.Load("/nonexistent/path/grammar.toml")
	assert.Error(t, err)
}

func TestParseRuleTextExpandsAlternativesAndLiterals(t *testing.T) {
	doc, err := grammarfile.ParseRuleText(`
		# a tiny arithmetic grammar
		<term> ::= $num
		<expr> ::= <term> + <term> | <term>
	`)
	require.NoError(t, err)
	require.Len(t, doc.Rules, 3)

	assert.Equal(t, "term", doc.Rules[0].Head)
	assert.Equal(t, []string{"num"}, doc.Rules[0].RHS)

	assert.Equal(t, "expr", doc.Rules[1].Head)
	assert.Equal(t, []string{"term", "keyword:+", "term"}, doc.Rules[1].RHS)

	assert.Equal(t, "expr", doc.Rules[2].Head)
	assert.Equal(t, []string{"term"}, doc.Rules[2].RHS)

	assert.Equal(t, []string{"num"}, doc.Terminals)

	g, err := grammarfile.Build(doc)
	require.NoError(t, err)
	specs, err := g.Specifiers()
	require.NoError(t, err)
	require.Len(t, specs, 1)
	assert.Equal(t, cyk.NewKeyword("+"), specs[0])
}

func TestParseRuleTextRejectsMalformedLine(t *testing.T) {
	_, err := grammarfile.ParseRuleText("<broken> := missing arrow")
	assert.Error(t, err)
}
