package cyk

// appliedEntry is one element of an apl cell: the rule that produced a
// symbol over this span, and the left-side split length (1 for unit-length
// cells).
type appliedEntry struct {
	Rule  appliedRule
	Split int
}

// cell is a small flat map from symbol to derivation count. Grammar cells
// typically hold only a handful of distinct symbols, so a linear-scan slice
// outperforms a general hash map, per the design notes.
type cell struct {
	keys   []Sym
	counts []int
}

func (c *cell) get(s Sym) (int, bool) {
	for i, k := range c.keys {
		if k == s {
			return c.counts[i], true
		}
	}
	return 0, false
}

func (c *cell) has(s Sym) bool {
	_, ok := c.get(s)
	return ok
}

func (c *cell) increment(s Sym, by int) {
	for i, k := range c.keys {
		if k == s {
			c.counts[i] += by
			return
		}
	}
	c.keys = append(c.keys, s)
	c.counts = append(c.counts, by)
}

// nonImplicitKeyCount returns the number of distinct non-Implicit symbols in
// the cell, used by the count/mintab recurrences.
func (c *cell) nonImplicitKeyCount() int {
	n := 0
	for _, k := range c.keys {
		if !k.IsImplicit() {
			n++
		}
	}
	return n
}

func (c *cell) hasNonImplicit() bool {
	for _, k := range c.keys {
		if !k.IsImplicit() {
			return true
		}
	}
	return false
}

// Table is the immutable per-parse view produced by Grammar.Parse: the
// recognition table tab, the applied-rule table apl, and the derived
// count/mintab indices. Tables and Results borrow the underlying Grammar
// and token slice; callers must not mutate either while enumerating.
type Table struct {
	grammar *Grammar
	cnf     *cnfArtifact
	tokens  []Token
	n       int

	// offsets[length] is the flat-buffer base offset for row `length`
	// (1 <= length <= n); tab/apl cells are stored in a single triangular
	// buffer of size n(n+1)/2 indexed via idx(length, start).
	offsets []int
	tab     []cell
	apl     [][]appliedEntry

	// shortestAt[i] is the minimum non-Implicit segment length starting at
	// position i across any valid cover; mintab[idx(length,i)] is
	// shortestAt[i+length]+1 for every cell holding a non-Implicit symbol.
	// Both use the sentinel n+1 where no such segment exists.
	shortestAt []int
	mintab     []int

	cachedCount    int
	countComputed  bool
}

func (t *Table) idx(length, start int) int {
	return t.offsets[length] + start
}

// Shortest is the minimum non-Implicit segment length reachable from
// position 0, i.e. shortestAt[0]. Every length-1 cell holds its token's
// terminal type, so for a non-empty input this is always 1; it is 0 for an
// empty input.
func (t *Table) Shortest() int {
	if t.n == 0 {
		return 0
	}
	return t.shortestAt[0]
}

// Len returns the total number of distinct parse covers of the whole token
// span, computed lazily and cached.
func (t *Table) Len() int {
	if !t.countComputed {
		t.cachedCount = computeCount(t)
		t.countComputed = true
	}
	return t.cachedCount
}

// Tokens returns the token sequence this table was parsed from.
func (t *Table) Tokens() []Token { return t.tokens }

// Grammar returns the grammar this table was parsed against.
func (t *Table) Grammar() *Grammar { return t.grammar }

// N returns the number of tokens this table was parsed from.
func (t *Table) N() int { return t.n }

// CellSymbols returns the non-Implicit symbols present in the cell at
// (length, start), used by diagnostics to cross-reference a segment against
// the grammar's rules.
func (t *Table) CellSymbols(length, start int) []Sym {
	c := &t.tab[t.idx(length, start)]
	out := make([]Sym, 0, len(c.keys))
	for _, k := range c.keys {
		if !k.IsImplicit() {
			out = append(out, k)
		}
	}
	return out
}

// runCYK fills tab/apl bottom-up, then derives mintab.
// Counting is intentionally asymmetric: Pair applications accumulate full
// ambiguity multiplicity (lc*rc), while each triggered Lead adds exactly
// one count regardless of the underlying pair's multiplicity — this is
// reference behavior and must not be "corrected".
func runCYK(g *Grammar, cnf *cnfArtifact, tokens []Token) *Table {
	n := len(tokens)
	debugf("parse: %d tokens", n)
	t := &Table{grammar: g, cnf: cnf, tokens: tokens, n: n}
	if n == 0 {
		t.shortestAt = []int{0}
		t.mintab = nil
		t.cachedCount = 1
		t.countComputed = true
		return t
	}

	t.offsets = make([]int, n+2)
	size := 0
	for length := 1; length <= n; length++ {
		t.offsets[length] = size
		size += n - length + 1
	}
	t.tab = make([]cell, size)
	t.apl = make([][]appliedEntry, size)

	// Row 1: terminal presence plus InitTerm/InitSpec matches and their
	// immediate lead closure.
	for i, tok := range tokens {
		ci := t.idx(1, i)
		c := &t.tab[ci]
		c.increment(Terminal(tok.Type()), 1)
		for _, init := range cnf.initTerms {
			if init.Terminal == tok.Type() {
				c.increment(init.Var, 1)
				t.apl[ci] = append(t.apl[ci], appliedEntry{init, 1})
				for _, lead := range cnf.leads[init.Var] {
					c.increment(lead.Var, 1)
					t.apl[ci] = append(t.apl[ci], appliedEntry{lead, 1})
				}
			}
		}
		for _, init := range cnf.initSpecs {
			if init.Spec.Match(tok) {
				c.increment(init.Var, 1)
				t.apl[ci] = append(t.apl[ci], appliedEntry{init, 1})
				for _, lead := range cnf.leads[init.Var] {
					c.increment(lead.Var, 1)
					t.apl[ci] = append(t.apl[ci], appliedEntry{lead, 1})
				}
			}
		}
	}

	for length := 2; length <= n; length++ {
		for start := 0; start <= n-length; start++ {
			ci := t.idx(length, start)
			c := &t.tab[ci]
			for k := 1; k < length; k++ {
				lc := &t.tab[t.idx(k, start)]
				rc := &t.tab[t.idx(length-k, start+k)]
				for _, lsym := range lc.keys {
					row, ok := cnf.pairsByLHS[lsym]
					if !ok {
						continue
					}
					lcount, _ := lc.get(lsym)
					for _, rsym := range rc.keys {
						pairs, ok := row[rsym]
						if !ok {
							continue
						}
						rcount, _ := rc.get(rsym)
						for _, pair := range pairs {
							c.increment(pair.Var, lcount*rcount)
							t.apl[ci] = append(t.apl[ci], appliedEntry{pair, k})
							for _, lead := range cnf.leads[pair.Var] {
								c.increment(lead.Var, 1)
								t.apl[ci] = append(t.apl[ci], appliedEntry{lead, k})
							}
						}
					}
				}
			}
		}
	}

	buildMintab(t)
	debugf("parse: shortest=%d", t.shortestAt[0])
	return t
}

// computeCount recomputes Table.Len() from scratch per the right-to-left
// recurrence: count[n] = 1; count[i] = sum over segment lengths of
// (#non-Implicit keys in that cell) * count[i+length].
func computeCount(t *Table) int {
	n := t.n
	count := make([]int, n+1)
	count[n] = 1
	for i := n - 1; i >= 0; i-- {
		score := 0
		for length := 1; length <= n-i; length++ {
			c := &t.tab[t.idx(length, i)]
			if k := c.nonImplicitKeyCount(); k > 0 {
				score += k * count[i+length]
			}
		}
		count[i] = score
	}
	return count[0]
}

// buildMintab fills t.shortestAt and t.mintab per the min recurrence:
// shortest[n] = 0; for every cell with a non-Implicit symbol,
// mintab[length][i] = shortest[i+length] + 1; shortest[i] is the minimum
// segment length of any segment starting at i that participates in a valid
// cover.
func buildMintab(t *Table) {
	n := t.n
	nom := n + 1
	t.shortestAt = make([]int, n+1)
	t.mintab = make([]int, len(t.tab))
	for i := range t.mintab {
		t.mintab[i] = nom
	}
	for i := 0; i <= n; i++ {
		t.shortestAt[i] = nom
	}
	t.shortestAt[n] = 0

	for i := n - 1; i >= 0; i-- {
		best := nom
		for length := 1; length <= n-i; length++ {
			c := &t.tab[t.idx(length, i)]
			if c.hasNonImplicit() {
				s := t.shortestAt[i+length] + 1
				t.mintab[t.idx(length, i)] = s
				if length < best {
					best = length
				}
			}
		}
		t.shortestAt[i] = best
	}
}
