// Package cyk implements a context-free grammar engine: a Chomsky Normal
// Form (CNF) builder and a CYK recognizer that parses a token sequence into
// a packed forest of every possible derivation.
package cyk

import "fmt"

// Kind tags the four shapes a Sym can take. Ported from the sum-type design
// sketched in the grammar's design notes: a table cell key is always one of
// a terminal name, a nonterminal name, a Specifier, or an Implicit
// introduced by binarization.
type Kind uint8

const (
	KindTerminal Kind = iota
	KindNonterminal
	KindSpecifier
	KindImplicit
)

func (k Kind) String() string {
	switch k {
	case KindTerminal:
		return "terminal"
	case KindNonterminal:
		return "nonterminal"
	case KindSpecifier:
		return "specifier"
	case KindImplicit:
		return "implicit"
	default:
		return "unknown"
	}
}

// Sym is a single grammar symbol: a terminal, a nonterminal, a Specifier, or
// an anonymous Implicit introduced by right-binarization. Sym is comparable
// so it can be used directly as a map key in table cells, provided every
// Specifier implementation is itself a comparable value (no slices, maps,
// or funcs among its fields).
type Sym struct {
	Kind Kind
	Name string // valid for KindTerminal / KindNonterminal
	Spec Specifier
	Imp  int // valid for KindImplicit
}

// Terminal builds a terminal symbol.
func Terminal(name string) Sym { return Sym{Kind: KindTerminal, Name: name} }

// Nonterminal builds a nonterminal symbol.
func Nonterminal(name string) Sym { return Sym{Kind: KindNonterminal, Name: name} }

// SpecifierSym wraps a Specifier as a self-identifying symbol: it is matched
// directly against tokens and behaves as its own nonterminal in the lead and
// pair tables.
func SpecifierSym(s Specifier) Sym { return Sym{Kind: KindSpecifier, Spec: s} }

func implicitSym(id int) Sym { return Sym{Kind: KindImplicit, Imp: id} }

// IsImplicit reports whether s is an anonymous binarization symbol. Such
// symbols never appear in user-visible Result segments or traversal output.
func (s Sym) IsImplicit() bool { return s.Kind == KindImplicit }

func (s Sym) String() string {
	switch s.Kind {
	case KindTerminal:
		return s.Name
	case KindNonterminal:
		return s.Name
	case KindSpecifier:
		return fmt.Sprintf("%v", s.Spec)
	case KindImplicit:
		return fmt.Sprintf("imp%d", s.Imp)
	default:
		return "<invalid-sym>"
	}
}

// Specifier is an extensible terminal matcher treated as a first-class RHS
// symbol. Implementations must be comparable values so they can serve as
// table keys (value-equality, hashable). The closed set shipped here is
// Keyword, Near, and Far; additional variants may be added as long as they
// satisfy this interface.
type Specifier interface {
	// Match reports whether tok satisfies this specifier.
	Match(tok Token) bool
	// Validate checks the specifier against the terminal set of a grammar,
	// returning an error if it refers to an unknown terminal.
	Validate(terminals map[string]bool) error
}

// Keyword matches a token whose value equals val exactly.
type Keyword struct {
	Value string
}

// NewKeyword builds a Keyword specifier.
func NewKeyword(val string) Keyword { return Keyword{Value: val} }

func (k Keyword) Match(tok Token) bool { return tok.Value() == k.Value }

func (k Keyword) Validate(terminals map[string]bool) error { return nil }

func (k Keyword) String() string { return fmt.Sprintf("keyword(%s)", k.Value) }

// Near matches a token adjacent to (not separated by whitespace from) the
// previous token. Inner is either a terminal name (string) or another
// Specifier. When Inner is a Specifier, Near's match requirement inverts to
// "not near" before delegating — this mirrors the reference implementation
// verbatim and is not a bug to be "corrected".
type Near struct {
	Inner interface{}
}

// NewNear builds a Near specifier over a terminal name or Specifier.
func NewNear(inner interface{}) Near { return Near{Inner: inner} }

func (n Near) Match(tok Token) bool {
	if spec, ok := n.Inner.(Specifier); ok {
		return !tok.IsNear() && spec.Match(tok)
	}
	name, _ := n.Inner.(string)
	return tok.IsNear() && tok.Type() == name
}

func (n Near) Validate(terminals map[string]bool) error {
	if spec, ok := n.Inner.(Specifier); ok {
		return spec.Validate(terminals)
	}
	name, _ := n.Inner.(string)
	if !terminals[name] {
		return fmt.Errorf("%s of %v is not a terminal or a specifier", name, n)
	}
	return nil
}

func (n Near) String() string { return fmt.Sprintf("near(%v)", n.Inner) }

// Far matches a token separated by whitespace from the previous token
// (i.e. not near). Inner has the same two shapes as Near's.
type Far struct {
	Inner interface{}
}

// NewFar builds a Far specifier over a terminal name or Specifier.
func NewFar(inner interface{}) Far { return Far{Inner: inner} }

func (f Far) Match(tok Token) bool {
	if spec, ok := f.Inner.(Specifier); ok {
		return !tok.IsNear() && spec.Match(tok)
	}
	name, _ := f.Inner.(string)
	return !tok.IsNear() && tok.Type() == name
}

func (f Far) Validate(terminals map[string]bool) error {
	if spec, ok := f.Inner.(Specifier); ok {
		return spec.Validate(terminals)
	}
	name, _ := f.Inner.(string)
	if !terminals[name] {
		return fmt.Errorf("%s of %v is not a terminal", name, f)
	}
	return nil
}

func (f Far) String() string { return fmt.Sprintf("far(%v)", f.Inner) }

// Token is the external token contract. The core reads only Type, Value and
// IsNear for grammar matching; Pos/Length are consumed by the diagnostics package,
// not by the core itself.
type Token interface {
	// Type is the terminal name this token was classified as.
	Type() string
	// Value is the token's literal payload, matched by Keyword specifiers.
	Value() interface{}
	// IsNear reports whether this token is adjacent to the previous one
	// (no intervening whitespace), matched by Near/Far specifiers.
	IsNear() bool
}
