package cyk

// Segment is one covered span in a Result: the symbol heading it, its
// token length, and the number of distinct derivations ("count") producing
// that symbol over that span.
type Segment struct {
	Var    Sym
	Length int
	Count  int
}

// Result is one full cover of the token span by a specific sequence of
// segments. Ambiguity is the product of each segment's derivation count;
// ambiguity == 1 means the cover is unambiguous and can be Traversed.
type Result struct {
	table     *Table
	ambiguity int
	segments  []Segment
}

// Ambiguity returns the product of this Result's per-segment counts.
func (r *Result) Ambiguity() int { return r.ambiguity }

// Segments returns the ordered list of covering segments.
func (r *Result) Segments() []Segment { return r.segments }

// Len returns the number of top-level segments in this Result.
func (r *Result) Len() int { return len(r.segments) }

// Head returns the symbol heading segment i.
func (r *Result) Head(i int) Sym { return r.segments[i].Var }

// Just enumerates every Result covering the full token span using exactly
// size non-Implicit segments. Enumeration is depth-first and tries longer
// segments first at each position, skipping Implicit keys.
func (t *Table) Just(size int) ([]Result, error) {
	if size < 1 {
		return nil, contractErrorf("Just: size must be >= 1, got %d", size)
	}
	var out []Result
	iterResults(t, size, 0, nil, 1, &out)
	return out, nil
}

// All enumerates Results of every size from 1 through the token count.
func (t *Table) All() []Result {
	var out []Result
	for size := 1; size <= t.n; size++ {
		iterResults(t, size, 0, nil, 1, &out)
	}
	return out
}

func iterResults(t *Table, size, index int, prefix []Segment, ambiguity int, out *[]Result) {
	n := t.n
	if size == 0 {
		if index == n {
			trees := make([]Segment, len(prefix))
			copy(trees, prefix)
			*out = append(*out, Result{table: t, ambiguity: ambiguity, segments: trees})
		}
		return
	}
	for length := n - size - index + 1; length >= 1; length-- {
		if index+length > n {
			continue
		}
		c := &t.tab[t.idx(length, index)]
		for i, sym := range c.keys {
			if sym.IsImplicit() {
				continue
			}
			count := c.counts[i]
			iterResults(t, size-1, index+length, append(prefix, Segment{sym, length, count}), ambiguity*count, out)
		}
	}
}
