package diagnostics

import (
	"sort"

	"github.com/grammarforge/cykgrammar/cyk"
)

// Inversion records that rule references a symbol at RHS position index.
type Inversion struct {
	Index int
	Rule  *cyk.Rule
}

// RuleInversions indexes every rule by each of its RHS elements (terminal
// name, nonterminal name, or Specifier), so that a symbol can be mapped
// back to the rules that mention it. Ported from grammarboy's
// rule_inversions().
func RuleInversions(g *cyk.Grammar) map[interface{}][]Inversion {
	inv := map[interface{}][]Inversion{}
	for _, rule := range g.Rules() {
		for i, item := range rule.RHS {
			inv[item] = append(inv[item], Inversion{Index: i, Rule: rule})
		}
	}
	return inv
}

func symKey(s cyk.Sym) interface{} {
	if s.Kind == cyk.KindSpecifier {
		return s.Spec
	}
	return s.Name
}

// RelevantRuleset collects every rule of arity > 1 whose head is, or whose
// RHS mentions, a symbol that heads some segment in one of the table's
// shortest covers. This surfaces the set of grammar rules relevant to an
// ambiguous or failing input. Ported from grammarboy's relevant_ruleset().
func RelevantRuleset(table *cyk.Table) ([]*cyk.Rule, error) {
	inversions := RuleInversions(table.Grammar())
	byHead := RulesByNonterminal(table.Grammar())
	results, err := table.Just(table.Shortest())
	if err != nil {
		return nil, err
	}
	seen := map[*cyk.Rule]bool{}
	var out []*cyk.Rule
	add := func(rule *cyk.Rule) {
		if len(rule.RHS) > 1 && !seen[rule] {
			seen[rule] = true
			out = append(out, rule)
		}
	}
	for _, r := range results {
		for _, seg := range r.Segments() {
			for _, inv := range inversions[symKey(seg.Var)] {
				add(inv.Rule)
			}
			if seg.Var.Kind == cyk.KindNonterminal {
				for _, rule := range byHead[seg.Var.Name] {
					add(rule)
				}
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Head < out[j].Head })
	return out, nil
}
