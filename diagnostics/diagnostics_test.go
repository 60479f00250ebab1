package diagnostics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grammarforge/cykgrammar/cyk"
	"github.com/grammarforge/cykgrammar/diagnostics"
)

type posTok struct {
	typ    string
	val    interface{}
	nr     bool
	pos    int
	length int
}

func (t posTok) Type() string        { return t.typ }
func (t posTok) Value() interface{}  { return t.val }
func (t posTok) IsNear() bool        { return t.nr }
func (t posTok) Pos() int            { return t.pos }
func (t posTok) Length() int         { return t.length }

func buildGrammar(t *testing.T) *cyk.Grammar {
	t.Helper()
	g := cyk.NewGrammar()
	g.AddTerminal("n")
	_, err := g.AddRule("A", "n")
	require.NoError(t, err)
	_, err = g.AddRule("S", "A", cyk.NewKeyword("+"), "A")
	require.NoError(t, err)
	_, err = g.AddRule("S", "A")
	require.NoError(t, err)
	return g
}

func TestIntervalsReportsShortestCovers(t *testing.T) {
	g := buildGrammar(t)
	tokens := []cyk.Token{
		posTok{typ: "n", val: 1, nr: true, pos: 1000, length: 1},
	}
	table, err := g.Parse(tokens)
	require.NoError(t, err)

	intervals, err := diagnostics.Intervals(table)
	require.NoError(t, err)
	require.NotEmpty(t, intervals)
	assert.Equal(t, []int{1}, intervals[0])
}

func TestRelevantRulesetFindsTheAdditionRule(t *testing.T) {
	g := buildGrammar(t)
	tokens := []cyk.Token{
		posTok{typ: "n", val: 1, nr: true, pos: 1000, length: 1},
		posTok{typ: "n", val: "+", nr: true, pos: 1001, length: 1},
		posTok{typ: "n", val: 2, nr: true, pos: 1002, length: 1},
	}
	table, err := g.Parse(tokens)
	require.NoError(t, err)

	rules, err := diagnostics.RelevantRuleset(table)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "S", rules[0].Head)
}

func TestShortestSequencesAssignsUnitLengthToTerminals(t *testing.T) {
	g := buildGrammar(t)
	info, err := diagnostics.ComputeShortestSequences(g)
	require.NoError(t, err)
	assert.Equal(t, 1, info.Lengths["n"])
	assert.Equal(t, 1, info.Lengths["A"])
	assert.Equal(t, 1, info.Lengths["S"])
}

func TestCompletionDistanceToIsZeroAtTheGoal(t *testing.T) {
	g := buildGrammar(t)
	info, err := diagnostics.ComputeShortestSequences(g)
	require.NoError(t, err)
	groups := diagnostics.RulesByNonterminal(g)

	distances := diagnostics.CompletionDistanceTo(info.Lengths, groups, map[string]bool{"S": true})
	assert.Equal(t, 0, distances["S"])
}
