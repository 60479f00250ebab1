package cyk

import "github.com/pkg/errors"

// Rule is a single production head -> rhs. Rules carry identity by pointer
// (reference equality), not by structural equality: two textually identical
// rules added separately remain distinct rules.
type Rule struct {
	Head string
	RHS  []interface{} // each element is a string (terminal/nonterminal name) or a Specifier
}

func (r *Rule) String() string {
	parts := make([]string, len(r.RHS))
	for i, item := range r.RHS {
		switch v := item.(type) {
		case string:
			parts[i] = v
		case Specifier:
			parts[i] = v.(interface{ String() string }).String()
		default:
			parts[i] = "?"
		}
	}
	s := r.Head + " ->"
	for _, p := range parts {
		s += " " + p
	}
	return s
}

// Grammar is a mutable set of rules and terminal names. Its CNF artifact is
// computed lazily on first Parse and cached; mutating a Grammar after that
// point invalidates the cache (the caller's responsibility, per the
// single-threaded cooperative resource model).
type Grammar struct {
	rules     []*Rule
	terminals map[string]bool

	cnf      *cnfArtifact
	cnfError error
}

// NewGrammar creates an empty grammar.
func NewGrammar() *Grammar {
	return &Grammar{
		terminals: map[string]bool{},
	}
}

// AddTerminal registers name as a terminal symbol.
func (g *Grammar) AddTerminal(name string) {
	g.terminals[name] = true
	g.invalidate()
}

// AddRule appends a production head -> rhs... and returns its handle. Each
// rhs element must be a string (terminal or nonterminal name) or a
// Specifier value. An empty rhs is rejected.
func (g *Grammar) AddRule(head string, rhs ...interface{}) (*Rule, error) {
	if len(rhs) == 0 {
		return nil, contractErrorf("AddRule: %s: rhs must not be empty", head)
	}
	for _, item := range rhs {
		switch item.(type) {
		case string, Specifier:
		default:
			return nil, contractErrorf("AddRule: %s: rhs element %v is neither a symbol name nor a Specifier", head, item)
		}
	}
	rule := &Rule{Head: head, RHS: append([]interface{}{}, rhs...)}
	g.rules = append(g.rules, rule)
	g.invalidate()
	return rule, nil
}

// Rules returns the grammar's rule set in insertion order. Exposed for
// diagnostics (relevant-ruleset reporting, shortest-sequence relaxation)
// that need to walk raw rules rather than the CNF artifact.
func (g *Grammar) Rules() []*Rule { return g.rules }

// Terminals returns the grammar's terminal name set.
func (g *Grammar) Terminals() map[string]bool { return g.terminals }

// Union returns a new Grammar containing the set union of g's and other's
// rules and terminals. Rule handles are shared (not copied), preserving
// reference identity, and a handle present in both grammars appears once.
func (g *Grammar) Union(other *Grammar) *Grammar {
	merged := NewGrammar()
	seen := map[*Rule]bool{}
	for _, rules := range [][]*Rule{g.rules, other.rules} {
		for _, r := range rules {
			if !seen[r] {
				seen[r] = true
				merged.rules = append(merged.rules, r)
			}
		}
	}
	for t := range g.terminals {
		merged.terminals[t] = true
	}
	for t := range other.terminals {
		merged.terminals[t] = true
	}
	return merged
}

func (g *Grammar) invalidate() {
	g.cnf = nil
	g.cnfError = nil
}

func (g *Grammar) ensureCNF() (*cnfArtifact, error) {
	if g.cnf == nil && g.cnfError == nil {
		g.cnf, g.cnfError = buildCNF(g.rules, g.terminals)
	}
	if g.cnfError != nil {
		return nil, g.cnfError
	}
	return g.cnf, nil
}

// Specifiers returns the set of distinct Specifier values registered
// across the grammar's rules, triggering CNF construction if needed.
func (g *Grammar) Specifiers() ([]Specifier, error) {
	cnf, err := g.ensureCNF()
	if err != nil {
		return nil, errors.Wrap(err, "specifiers")
	}
	return cnf.specifiers, nil
}

// Parse runs CYK recognition of tokens against the grammar, triggering CNF
// construction if the cache is stale. An ungrammatical input is not an
// error. Each token's own terminal type counts as a segment head, so the
// Table of a non-empty input always has Len() >= 1; whether some symbol
// covers the whole input is read from Just(1).
func (g *Grammar) Parse(tokens []Token) (*Table, error) {
	cnf, err := g.ensureCNF()
	if err != nil {
		return nil, errors.Wrap(err, "parse")
	}
	return runCYK(g, cnf, tokens), nil
}
