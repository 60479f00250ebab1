package diagnostics

import (
	"sort"

	"github.com/grammarforge/cykgrammar/cyk"
)

// ShortestSequenceInfo is the result of a relaxation over a grammar's raw
// rules: for every terminal, specifier, and nonterminal, the length of the
// shortest terminal sequence it can expand to, and one witnessing
// sequence. Ported from grammarboy's shortest_sequences().
type ShortestSequenceInfo struct {
	Lengths       map[interface{}]int
	Sequences     map[interface{}][]interface{}
	RuleSequences map[*cyk.Rule][]interface{}
}

// ComputeShortestSequences runs the fixed-point relaxation: every terminal
// and specifier starts at length 1; a rule's head length is the sum of its
// RHS members' lengths once every member has a known length, relaxed until
// no rule's head length can shrink further.
func ComputeShortestSequences(g *cyk.Grammar) (*ShortestSequenceInfo, error) {
	specifiers, err := g.Specifiers()
	if err != nil {
		return nil, err
	}

	lengths := map[interface{}]int{}
	sequences := map[interface{}][]interface{}{}
	for term := range g.Terminals() {
		lengths[term] = 1
		sequences[term] = []interface{}{term}
	}
	for _, s := range specifiers {
		lengths[s] = 1
		sequences[s] = []interface{}{s}
	}

	priceSum := func(rule *cyk.Rule) (int, bool) {
		price := 0
		for _, cell := range rule.RHS {
			l, ok := lengths[cell]
			if !ok {
				return 0, false
			}
			price += l
		}
		return price, true
	}

	unrelaxed := true
	for unrelaxed {
		unrelaxed = false
		for _, rule := range g.Rules() {
			p, ok := priceSum(rule)
			if !ok || p == 0 {
				continue
			}
			var cat []interface{}
			for _, cell := range rule.RHS {
				cat = append(cat, sequences[cell]...)
			}
			was, exists := lengths[rule.Head]
			if !exists {
				was = p + 1
			}
			if p < was {
				lengths[rule.Head] = p
				sequences[rule.Head] = cat
				unrelaxed = true
			} else {
				lengths[rule.Head] = was
			}
		}
	}

	ruleSeqs := map[*cyk.Rule][]interface{}{}
	for _, rule := range g.Rules() {
		var cat []interface{}
		for _, cell := range rule.RHS {
			cat = append(cat, sequences[cell]...)
		}
		ruleSeqs[rule] = cat
	}
	return &ShortestSequenceInfo{Lengths: lengths, Sequences: sequences, RuleSequences: ruleSeqs}, nil
}

// RulesByNonterminal groups rules by their head symbol. Ported from
// grammarboy's rules_by_nonterminal().
func RulesByNonterminal(g *cyk.Grammar) map[string][]*cyk.Rule {
	out := map[string][]*cyk.Rule{}
	for _, rule := range g.Rules() {
		out[rule.Head] = append(out[rule.Head], rule)
	}
	return out
}

// CompletionDistanceTo runs a weighted BFS from goals over rule groups,
// estimating for every symbol the minimum number of additional tokens
// needed to complete some rule that eventually reaches a goal nonterminal.
// Ported from grammarboy's completion_distance_to().
func CompletionDistanceTo(lengths map[interface{}]int, groups map[string][]*cyk.Rule, goals map[string]bool) map[interface{}]int {
	distance := map[interface{}]int{}
	var queue []interface{}
	for goal := range goals {
		distance[goal] = 0
		queue = append(queue, goal)
	}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		dCurrent := distance[current]
		name, _ := current.(string)
		for _, rule := range groups[name] {
			weight := 0
			for _, cell := range rule.RHS {
				weight += lengths[cell]
			}
			for _, cell := range rule.RHS {
				d := weight - lengths[cell] + dCurrent
				if existing, ok := distance[cell]; ok {
					if d < existing {
						distance[cell] = d
					}
				} else {
					queue = append(queue, cell)
					distance[cell] = d
				}
			}
		}
		sort.Slice(queue, func(i, j int) bool { return distance[queue[i]] < distance[queue[j]] })
	}
	return distance
}
