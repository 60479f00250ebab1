package cyk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grammarforge/cykgrammar/cyk"
)

// plainToken is the minimal cyk.Token for tests that don't need
// position/adjacency tracking.
type plainToken struct {
	typ string
	val interface{}
	nr  bool
}

func (t plainToken) Type() string       { return t.typ }
func (t plainToken) Value() interface{} { return t.val }
func (t plainToken) IsNear() bool       { return t.nr }

func tok(typ string, val interface{}) plainToken {
	return plainToken{typ: typ, val: val, nr: true}
}

// arithGrammar builds S -> A "+" A | A, A -> "n", a tiny unambiguous
// addition grammar, ported in spirit from original_source/cyk.py's own
// smoke tests.
func arithGrammar(t *testing.T) *cyk.Grammar {
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

func TestParseRecognizesSingleSegmentCover(t *testing.T) {
	g := arithGrammar(t)
	tokens := []cyk.Token{tok("n", 1), tok("n", "+"), tok("n", 2)}

	table, err := g.Parse(tokens)
	require.NoError(t, err)

	results, err := table.Just(1)
	require.NoError(t, err)

	var found bool
	for _, r := range results {
		if r.Len() == 1 && r.Head(0).Kind == cyk.KindNonterminal && r.Head(0).Name == "S" {
			found = true
			assert.Equal(t, 1, r.Ambiguity())
		}
	}
	assert.True(t, found, "expected an S cover of the whole input")
}

func TestParseRejectsUngrammaticalInput(t *testing.T) {
	g := arithGrammar(t)
	tokens := []cyk.Token{tok("n", 1), tok("n", 2)} // no "+" between them, and A+A needs it

	table, err := g.Parse(tokens)
	require.NoError(t, err)

	results, err := table.Just(1)
	require.NoError(t, err)
	for _, r := range results {
		assert.False(t, r.Head(0).Kind == cyk.KindNonterminal && r.Head(0).Name == "S",
			"two bare terminals with no + between them must not cover as S")
	}
}

func TestEmptyTokenSequenceParsesToEmptyCover(t *testing.T) {
	g := arithGrammar(t)

	table, err := g.Parse(nil)
	require.NoError(t, err)

	assert.Equal(t, 0, table.N())
	assert.Equal(t, 0, table.Shortest())
	assert.Equal(t, 1, table.Len())
}

func TestTraverseRejectsAmbiguousResult(t *testing.T) {
	g := cyk.NewGrammar()
	g.AddTerminal("n")
	_, err := g.AddRule("A", "n")
	require.NoError(t, err)
	_, err = g.AddRule("B", "n")
	require.NoError(t, err)
	_, err = g.AddRule("S", "A")
	require.NoError(t, err)
	_, err = g.AddRule("S", "B")
	require.NoError(t, err)

	table, err := g.Parse([]cyk.Token{tok("n", 1)})
	require.NoError(t, err)

	results, err := table.Just(1)
	require.NoError(t, err)
	var s cyk.Result
	for _, r := range results {
		if r.Head(0).Name == "S" {
			s = r
		}
	}
	require.Equal(t, 2, s.Ambiguity())

	_, err = s.Traverse(nil)
	require.Error(t, err)
	var terr *cyk.TraversalError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, 2, terr.Ambiguity)
}

func TestTraverseReconstructsValueThroughBinarization(t *testing.T) {
	// A 3-element rhs (A, "+", A) binarizes to a single Implicit pair; the
	// outer Pair (Var=S, RHS=Implicit) flattens it back into a 3-element
	// children list for the visitor, per traverseItem's "pair.RHS.IsImplicit"
	// branch.
	g := cyk.NewGrammar()
	g.AddTerminal("n")
	aRule, err := g.AddRule("A", "n")
	require.NoError(t, err)
	sRule, err := g.AddRule("S", "A", cyk.NewKeyword("+"), "A")
	require.NoError(t, err)

	tokens := []cyk.Token{tok("n", 2), tok("n", "+"), tok("n", 3)}
	table, err := g.Parse(tokens)
	require.NoError(t, err)

	results, err := table.Just(1)
	require.NoError(t, err)

	var s cyk.Result
	for _, r := range results {
		if r.Head(0).Kind == cyk.KindNonterminal && r.Head(0).Name == "S" {
			s = r
		}
	}
	require.Equal(t, 1, s.Ambiguity())

	values, err := s.Traverse(func(rule *cyk.Rule, children []interface{}) interface{} {
		switch rule {
		case aRule:
			return children[0].(plainToken).Value()
		case sRule:
			require.Len(t, children, 3)
			return children[0].(int) + children[2].(int)
		default:
			return children
		}
	})
	require.NoError(t, err)
	require.Len(t, values, 1)
	assert.Equal(t, 5, values[0])
}

func TestGrammarRejectsTerminalNonterminalClash(t *testing.T) {
	g := cyk.NewGrammar()
	g.AddTerminal("n")
	_, err := g.AddRule("n", "n")
	require.NoError(t, err) // AddRule itself doesn't resolve symbols yet

	_, err = g.Parse([]cyk.Token{tok("n", 1)})
	assert.Error(t, err)
}

func TestGrammarRejectsUnknownRHSSymbol(t *testing.T) {
	g := cyk.NewGrammar()
	g.AddTerminal("n")
	_, err := g.AddRule("S", "nope")
	require.NoError(t, err) // AddRule itself doesn't resolve symbols yet

	_, err = g.Parse([]cyk.Token{tok("n", 1)})
	assert.Error(t, err)
}

func TestSetDebugDoesNotAlterParseResults(t *testing.T) {
	tokens := []cyk.Token{tok("n", 1), tok("n", "+"), tok("n", 2)}

	quiet, err := arithGrammar(t).Parse(tokens)
	require.NoError(t, err)
	quietCount := quiet.Len()

	cyk.SetDebug(true)
	defer cyk.SetDebug(false)
	loud, err := arithGrammar(t).Parse(tokens)
	require.NoError(t, err)

	assert.Equal(t, quietCount, loud.Len(), "enabling the debug trace must not change parse results")
}

func TestGrammarRejectsDegenerateUnitRule(t *testing.T) {
	g := cyk.NewGrammar()
	_, err := g.AddRule("S", "S")
	require.NoError(t, err) // AddRule itself doesn't resolve symbols yet

	_, err = g.Parse(nil)
	require.Error(t, err)
	var gerr *cyk.GrammarError
	assert.ErrorAs(t, err, &gerr)
}

func TestResultExplainProducesRuleTrace(t *testing.T) {
	t.Run("unambiguous", func(t *testing.T) {
		g := cyk.NewGrammar()
		g.AddTerminal("n")
		_, err := g.AddRule("A", "n")
		require.NoError(t, err)
		sRule, err := g.AddRule("S", "A", cyk.NewKeyword("+"), "A")
		require.NoError(t, err)

		tokens := []cyk.Token{tok("n", 1), tok("n", "+"), tok("n", 2)}
		table, err := g.Parse(tokens)
		require.NoError(t, err)

		results, err := table.Just(1)
		require.NoError(t, err)
		var s cyk.Result
		for _, r := range results {
			if r.Head(0).Kind == cyk.KindNonterminal && r.Head(0).Name == "S" {
				s = r
			}
		}
		require.Equal(t, 1, s.Ambiguity())

		explanations := s.Explain()
		require.Len(t, explanations, 1)
		require.Len(t, explanations[0], 1)
		assert.Equal(t, sRule, explanations[0][0].Rule)
		assert.Equal(t, 0, explanations[0][0].Index)
		assert.Equal(t, 3, explanations[0][0].Length)
		assert.Equal(t, 1, explanations[0][0].Split)
	})

	t.Run("ambiguous", func(t *testing.T) {
		g := cyk.NewGrammar()
		g.AddTerminal("n")
		_, err := g.AddRule("A", "n")
		require.NoError(t, err)
		_, err = g.AddRule("B", "n")
		require.NoError(t, err)
		sFromA, err := g.AddRule("S", "A")
		require.NoError(t, err)
		sFromB, err := g.AddRule("S", "B")
		require.NoError(t, err)

		table, err := g.Parse([]cyk.Token{tok("n", 1)})
		require.NoError(t, err)

		results, err := table.Just(1)
		require.NoError(t, err)
		var s cyk.Result
		for _, r := range results {
			if r.Head(0).Name == "S" {
				s = r
			}
		}
		require.Equal(t, 2, s.Ambiguity())

		explanations := s.Explain()
		require.Len(t, explanations, 1)
		require.Len(t, explanations[0], 2)
		rules := []*cyk.Rule{explanations[0][0].Rule, explanations[0][1].Rule}
		assert.ElementsMatch(t, []*cyk.Rule{sFromA, sFromB}, rules)
	})
}

func TestJustRejectsNonPositiveSize(t *testing.T) {
	g := arithGrammar(t)
	table, err := g.Parse([]cyk.Token{tok("n", 1)})
	require.NoError(t, err)

	_, err = table.Just(0)
	require.Error(t, err)
	var cerr *cyk.ContractError
	require.ErrorAs(t, err, &cerr)
}
