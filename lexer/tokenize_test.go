package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grammarforge/cykgrammar/lexer"
)

func TestTokenizeClassifiesRuns(t *testing.T) {
	tokens := lexer.Tokenize("return 12 + x", map[string]bool{"return": true})
	require.Len(t, tokens, 4)

	assert.Equal(t, "keyword", tokens[0].Type())
	assert.Equal(t, "return", tokens[0].Value())

	assert.Equal(t, "num", tokens[1].Type())
	assert.Equal(t, 12, tokens[1].Value())

	assert.Equal(t, "unk", tokens[2].Type())
	assert.Equal(t, "+", tokens[2].Value())

	assert.Equal(t, "sym", tokens[3].Type())
	assert.Equal(t, "x", tokens[3].Value())
}

func TestTokenizeTracksAdjacency(t *testing.T) {
	tokens := lexer.Tokenize("1+2", nil)
	require.Len(t, tokens, 3)
	for _, tok := range tokens {
		assert.True(t, tok.IsNear())
	}

	tokens = lexer.Tokenize("1 + 2", nil)
	require.Len(t, tokens, 3)
	assert.True(t, tokens[0].IsNear(), "the first token has nothing preceding it to be far from")
	assert.False(t, tokens[1].IsNear())
	assert.False(t, tokens[2].IsNear())
}

func TestTokenizePositionsTrackLineBreaks(t *testing.T) {
	tokens := lexer.Tokenize("ab\ncd", nil)
	require.Len(t, tokens, 3)

	first := tokens[0].(lexer.Token)
	last := tokens[2].(lexer.Token)
	assert.Equal(t, "ab", first.Value())
	assert.Equal(t, 1, first.Pos()/1000)
	assert.Equal(t, "cd", last.Value())
	assert.Equal(t, 2, last.Pos()/1000, "a token after a newline should be on line 2")
}

func TestTokenizeEmptyInput(t *testing.T) {
	tokens := lexer.Tokenize("", nil)
	assert.Empty(t, tokens)
}
