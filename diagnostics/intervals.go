// Package diagnostics supplements the core cyk engine with read-only
// reporting views: shortest-interval visualization, the relevant ruleset
// for an ambiguous or failing input, and a shortest-terminal-sequence /
// completion-distance estimate per nonterminal. All of it is ported from
// original_source/grammarboy/__init__.py and operates purely on an
// already-computed cyk.Table/cyk.Grammar — none of it resolves ambiguity.
package diagnostics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/grammarforge/cykgrammar/cyk"
)

// PositionedToken extends cyk.Token with the positional fields the
// reference tokenizer provides: a dense position encoding
// line*1000+column, and the token's source length in characters.
type PositionedToken interface {
	cyk.Token
	Pos() int
	Length() int
}

// Intervals collects, for the shortest covers of table, the distinct tuples
// of segment lengths that realize that shortest cover. Ported from
// grammarboy's intervals().
func Intervals(table *cyk.Table) ([][]int, error) {
	shortest := table.Shortest()
	results, err := table.Just(shortest)
	if err != nil {
		return nil, err
	}
	seen := map[string][]int{}
	var order []string
	for _, r := range results {
		lengths := make([]int, 0, r.Len())
		for _, seg := range r.Segments() {
			lengths = append(lengths, seg.Length)
		}
		key := fmt.Sprint(lengths)
		if _, ok := seen[key]; !ok {
			seen[key] = lengths
			order = append(order, key)
		}
	}
	sort.Strings(order)
	out := make([][]int, 0, len(order))
	for _, k := range order {
		out = append(out, seen[k])
	}
	return out, nil
}

// VisualizeIntervals renders one ASCII ruler line per distinct shortest
// interval, using each token's Pos/Length to place markers at the
// character offsets the interval spans — '|---|' for multi-character
// tokens, a bare quote for single-character ones. Ported from
// grammarboy's visualize_intervals().
func VisualizeIntervals(table *cyk.Table) ([]string, error) {
	intervals, err := Intervals(table)
	if err != nil {
		return nil, err
	}
	tokens := table.Tokens()
	lines := make([]string, 0, len(intervals))
	for _, interval := range intervals {
		offset := 0
		var sb strings.Builder
		for _, length := range interval {
			if offset >= len(tokens) || offset+length-1 >= len(tokens) {
				break
			}
			startTok, ok1 := tokens[offset].(PositionedToken)
			endTok, ok2 := tokens[offset+length-1].(PositionedToken)
			if !ok1 || !ok2 {
				offset += length
				continue
			}
			start := startTok.Pos() % 1000
			stop := endTok.Pos()%1000 + endTok.Length()
			pad := start - sb.Len()
			if pad > 0 {
				sb.WriteString(strings.Repeat(" ", pad))
			}
			if endTok.Length() > 1 {
				sb.WriteByte('|')
				if stop-start-2 > 0 {
					sb.WriteString(strings.Repeat("-", stop-start-2))
				}
				sb.WriteByte('|')
			} else {
				sb.WriteByte('\'')
			}
			offset += length
		}
		lines = append(lines, sb.String())
	}
	return lines, nil
}
