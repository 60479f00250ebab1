package cyk

// Visitor reconstructs a value for one reduction step: rule is the source
// Rule that produced this node (nil for an implicit/internal step), and
// children are the already-reconstructed child values. A nil visitor
// behaves like the reference implementation's default: it returns
// append([]interface{}{rule}, children...).
type Visitor func(rule *Rule, children []interface{}) interface{}

func defaultVisitor(rule *Rule, children []interface{}) interface{} {
	out := make([]interface{}, 0, len(children)+1)
	out = append(out, rule)
	out = append(out, children...)
	return out
}

// Traverse reconstructs one concrete value per top-level segment by walking
// the packed forest through Lead chains and implicit binarization nodes,
// It requires an unambiguous Result (Ambiguity() == 1);
// calling it on an ambiguous Result returns a TraversalError.
func (r *Result) Traverse(visitor Visitor) ([]interface{}, error) {
	if r.ambiguity > 1 {
		return nil, &TraversalError{Ambiguity: r.ambiguity}
	}
	if visitor == nil {
		visitor = defaultVisitor
	}
	index := 0
	out := make([]interface{}, 0, len(r.segments))
	for _, seg := range r.segments {
		out = append(out, traverseItem(r.table, seg.Var, seg.Length, index, visitor))
		index += seg.Length
	}
	return out, nil
}

// findApplied returns the first applied-rule entry at (length,index)
// producing var — the same first-match-wins rule prescribes;
// when ambiguity == 1 the match is unique up to Lead chains.
func findApplied(t *Table, var_ Sym, length, index int) (appliedRule, int, bool) {
	for _, e := range t.apl[t.idx(length, index)] {
		if e.Rule.producedVar() == var_ {
			return e.Rule, e.Split, true
		}
	}
	return nil, 0, false
}

func traverseItem(t *Table, v Sym, length, index int, visitor Visitor) interface{} {
	if length == 1 {
		obj, _, ok := findApplied(t, v, length, index)
		if !ok {
			return t.tokens[index]
		}
		if lead, isLead := obj.(*Lead); isLead {
			return visitor(lead.Rule, []interface{}{traverseItem(t, lead.Node, length, index, visitor)})
		}
		if init, isInit := obj.(*InitTerm); isInit {
			return visitor(init.Rule, []interface{}{t.tokens[index]})
		}
		// InitSpec: var is a Specifier, yield the raw token.
		return t.tokens[index]
	}

	obj, k, ok := findApplied(t, v, length, index)
	if !ok {
		// Unreachable for a Result produced by this Table, but fail soft
		// rather than panic on a malformed caller-constructed Result.
		return nil
	}
	if lead, isLead := obj.(*Lead); isLead {
		return visitor(lead.Rule, []interface{}{traverseItem(t, lead.Node, length, index, visitor)})
	}

	pair := obj.(*Pair)
	lhsLength, lhsIndex := k, index
	rhsLength, rhsIndex := length-k, index+k

	left := traverseItem(t, pair.LHS, lhsLength, lhsIndex, visitor)
	right := traverseItem(t, pair.RHS, rhsLength, rhsIndex, visitor)

	if pair.Var.IsImplicit() {
		return []interface{}{left, right}
	}
	if pair.RHS.IsImplicit() {
		rightList, _ := right.([]interface{})
		children := append([]interface{}{left}, rightList...)
		return visitor(pair.Rule, children)
	}
	return visitor(pair.Rule, []interface{}{left, right})
}

// Explanation names a rule that could have derived a segment: Rule itself,
// the segment's start index and length in the token stream, and the split
// point (left-side length) at which the rule was applied.
type Explanation struct {
	Rule   *Rule
	Index  int
	Length int
	Split  int
}

// Explain returns, for each top-level segment, the list of rules in apl
// whose head equals the segment's symbol, excluding InitSpec entries. This
// surfaces every rule that could have derived that segment.
func (r *Result) Explain() [][]Explanation {
	index := 0
	out := make([][]Explanation, 0, len(r.segments))
	for _, seg := range r.segments {
		var rules []Explanation
		for _, e := range r.table.apl[r.table.idx(seg.Length, index)] {
			if e.Rule.producedVar() != seg.Var {
				continue
			}
			if _, isInitSpec := e.Rule.(*InitSpec); isInitSpec {
				continue
			}
			rules = append(rules, Explanation{Rule: ruleOf(e.Rule), Index: index, Length: seg.Length, Split: e.Split})
		}
		index += seg.Length
		out = append(out, rules)
	}
	return out
}

func ruleOf(r appliedRule) *Rule {
	switch v := r.(type) {
	case *InitTerm:
		return v.Rule
	case *Pair:
		return v.Rule
	case *Lead:
		return v.Rule
	default:
		return nil
	}
}
