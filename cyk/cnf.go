package cyk

import "strings"

// appliedRule is the common shape of everything that can appear in an apl
// cell: InitTerm, InitSpec, Pair, or Lead. The traversal and explanation
// code switches on the concrete type rather than using a marker method, but
// every shape exposes the symbol it produces so the CYK fill loop can stay
// generic.
type appliedRule interface {
	producedVar() Sym
}

// InitTerm is a nonterminal derivable from a single terminal token:
// Var -> terminal, recorded against the source Rule.
type InitTerm struct {
	Var      Sym
	Rule     *Rule
	Terminal string
}

func (r *InitTerm) producedVar() Sym { return r.Var }

// InitSpec treats a Specifier as a self-identifying nonterminal, matched
// directly against tokens.
type InitSpec struct {
	Var  Sym // Kind == KindSpecifier
	Spec Specifier
}

func (r *InitSpec) producedVar() Sym { return r.Var }

// Pair is a binary production Var -> LHS RHS.
type Pair struct {
	Var  Sym
	Rule *Rule
	LHS  Sym
	RHS  Sym
}

func (r *Pair) producedVar() Sym { return r.Var }

// Lead is a unit production recorded as "Node leads to Var": a cell
// containing Node additionally yields Var. The lead map is transitively
// closed at CNF-build time.
type Lead struct {
	Var  Sym
	Rule *Rule
	Node Sym
}

func (r *Lead) producedVar() Sym { return r.Var }

// cnfArtifact is the reduction of a Grammar to CNF: InitTerm/InitSpec,
// Pair, and the transitively-closed Lead map, plus pair/lead indices used
// by the CYK fill loop.
type cnfArtifact struct {
	initTerms []*InitTerm
	initSpecs []*InitSpec
	pairs     []*Pair

	// leads[node] is the closed set of Leads triggered by node appearing
	// in a cell.
	leads map[Sym][]*Lead

	// pairsByLHS[lhs][rhs] indexes pairs for the CYK inner loop, avoiding a
	// full scan of the pair list per split point.
	pairsByLHS map[Sym]map[Sym][]*Pair

	specifiers []Specifier

	implicitCount int
}

type cnfBuilder struct {
	terminals    map[string]bool
	nonterminals map[string]bool

	initTerms []*InitTerm
	initSpecs []*InitSpec
	pairs     []*Pair
	leads     []*Lead

	specifiers    map[Specifier]bool
	implicits     map[string]Sym // tail-signature -> implicit symbol
	implicitCount int
}

// buildCNF converts an arbitrary right-hand-side grammar into CNF:
// unit/terminal-init rules, binary pairs, transitively closed
// unit-production leads, and right-binarization of RHS sequences of length
// >= 3 with tail-sharing across rules.
func buildCNF(rules []*Rule, terminals map[string]bool) (*cnfArtifact, error) {
	b := &cnfBuilder{
		terminals:    terminals,
		nonterminals: map[string]bool{},
		specifiers:   map[Specifier]bool{},
		implicits:    map[string]Sym{},
	}

	for _, rule := range rules {
		if terminals[rule.Head] {
			return nil, grammarErrorf("%s is both a terminal and a nonterminal, remove the rules or the terminal of this name", rule.Head)
		}
		b.nonterminals[rule.Head] = true
	}

	for _, rule := range rules {
		resolved := make([]Sym, len(rule.RHS))
		for i, item := range rule.RHS {
			sym, err := b.resolve(item)
			if err != nil {
				return nil, err
			}
			resolved[i] = sym
		}
		if err := b.decompose(Nonterminal(rule.Head), rule, resolved); err != nil {
			return nil, err
		}
	}

	return b.finish()
}

// resolve turns a raw rhs item (string or Specifier) into a Sym, validating
// it against the known terminal/nonterminal sets and registering each
// distinct Specifier exactly once.
func (b *cnfBuilder) resolve(item interface{}) (Sym, error) {
	switch v := item.(type) {
	case Specifier:
		if !b.specifiers[v] {
			b.specifiers[v] = true
			b.initSpecs = append(b.initSpecs, &InitSpec{Var: SpecifierSym(v), Spec: v})
			if err := v.Validate(b.terminals); err != nil {
				return Sym{}, grammarErrorf("specifier %v: %v", v, err)
			}
		}
		return SpecifierSym(v), nil
	case string:
		if b.nonterminals[v] {
			return Nonterminal(v), nil
		}
		if b.terminals[v] {
			return Terminal(v), nil
		}
		return Sym{}, grammarErrorf("%s neither in terminals or nonterminals", v)
	default:
		return Sym{}, grammarErrorf("unexpected rhs element %v", item)
	}
}

// decompose reduces a single rule's (already-resolved) rhs into InitTerm,
// Lead, or Pair entries, introducing implicits for sequences of length >= 3.
func (b *cnfBuilder) decompose(head Sym, rule *Rule, seq []Sym) error {
	switch {
	case len(seq) <= 1:
		rhs := seq[0]
		if head == rhs {
			return grammarErrorf("degenerate rule %v", rule)
		}
		if rhs.Kind == KindTerminal {
			b.initTerms = append(b.initTerms, &InitTerm{Var: head, Rule: rule, Terminal: rhs.Name})
		} else {
			b.leads = append(b.leads, &Lead{Var: head, Rule: rule, Node: rhs})
		}
		return nil
	case len(seq) == 2:
		debugf("pair %v -> %v %v", head, seq[0], seq[1])
		b.pairs = append(b.pairs, &Pair{Var: head, Rule: rule, LHS: seq[0], RHS: seq[1]})
		return nil
	default:
		lhs := seq[0]
		tail := seq[1:]
		key := tailKey(tail)
		imp, ok := b.implicits[key]
		if !ok {
			imp = implicitSym(b.implicitCount)
			b.implicitCount++
			b.implicits[key] = imp
			debugf("binarize %v: new implicit %v for tail %v", head, imp, tail)
			if err := b.decompose(imp, nil, tail); err != nil {
				return err
			}
		}
		b.pairs = append(b.pairs, &Pair{Var: head, Rule: rule, LHS: lhs, RHS: imp})
		return nil
	}
}

// tailKey builds a stable string signature for a RHS tail so that identical
// tails across distinct rules share a single Implicit reused for every
// identical RHS tail.
func tailKey(tail []Sym) string {
	var sb strings.Builder
	for i, s := range tail {
		if i > 0 {
			sb.WriteByte(0x1f)
		}
		sb.WriteByte(byte(s.Kind))
		sb.WriteByte(':')
		sb.WriteString(s.String())
	}
	return sb.String()
}

func (b *cnfBuilder) finish() (*cnfArtifact, error) {
	leadtab := map[Sym][]*Lead{}
	for v := range b.nonterminals {
		leadtab[Nonterminal(v)] = nil
	}
	for s := range b.specifiers {
		leadtab[SpecifierSym(s)] = nil
	}
	for _, lead := range b.leads {
		leadtab[lead.Node] = append(leadtab[lead.Node], lead)
	}

	changed := true
	for changed {
		changed = false
		for node, row := range leadtab {
			seen := make(map[*Lead]bool, len(row))
			for _, l := range row {
				seen[l] = true
			}
			grew := false
			merged := row
			for _, l := range row {
				for _, l2 := range leadtab[l.Var] {
					if !seen[l2] {
						seen[l2] = true
						merged = append(merged, l2)
						grew = true
					}
				}
			}
			if grew {
				leadtab[node] = merged
				changed = true
			}
		}
	}

	pairsByLHS := map[Sym]map[Sym][]*Pair{}
	for _, p := range b.pairs {
		row, ok := pairsByLHS[p.LHS]
		if !ok {
			row = map[Sym][]*Pair{}
			pairsByLHS[p.LHS] = row
		}
		row[p.RHS] = append(row[p.RHS], p)
	}

	specifiers := make([]Specifier, 0, len(b.initSpecs))
	for _, is := range b.initSpecs {
		specifiers = append(specifiers, is.Spec)
	}

	return &cnfArtifact{
		initTerms:     b.initTerms,
		initSpecs:     b.initSpecs,
		pairs:         b.pairs,
		leads:         leadtab,
		pairsByLHS:    pairsByLHS,
		specifiers:    specifiers,
		implicitCount: b.implicitCount,
	}, nil
}
