// Package grammarfile loads a cyk.Grammar from a small TOML document, the
// CLI's configuration surface for authoring grammars outside of Go source.
package grammarfile

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/grammarforge/cykgrammar/cyk"
)

// Document is the on-disk TOML shape: a flat terminal list plus an ordered
// rule list. Each rhs element is a plain symbol name, or a "kind:value"
// pair describing a Specifier — see parseItem.
type Document struct {
	Terminals []string  `toml:"terminals"`
	Rules     []RuleDef `toml:"rules"`
}

// RuleDef is one [[rules]] table entry.
type RuleDef struct {
	Head string   `toml:"head"`
	RHS  []string `toml:"rhs"`
}

// Load reads path and builds a Grammar from it.
func Load(path string) (*cyk.Grammar, error) {
	var doc Document
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return nil, errors.Wrap(err, "grammarfile: decode")
	}
	return Build(&doc)
}

// Build constructs a Grammar from an already-decoded Document.
func Build(doc *Document) (*cyk.Grammar, error) {
	g := cyk.NewGrammar()
	for _, t := range doc.Terminals {
		g.AddTerminal(t)
	}
	for _, rd := range doc.Rules {
		items := make([]interface{}, len(rd.RHS))
		for i, raw := range rd.RHS {
			item, err := parseItem(raw)
			if err != nil {
				return nil, errors.Wrapf(err, "rule %s", rd.Head)
			}
			items[i] = item
		}
		if _, err := g.AddRule(rd.Head, items...); err != nil {
			return nil, errors.Wrapf(err, "rule %s", rd.Head)
		}
	}
	return g, nil
}

// parseItem resolves one rhs string into either a plain symbol name or a
// Specifier. "keyword:VALUE", "near:REST", and "far:REST" are recognized
// prefixes; REST is itself resolved recursively, so "near:keyword:plus"
// builds Near(Keyword("plus")).
func parseItem(raw string) (interface{}, error) {
	switch {
	case strings.HasPrefix(raw, "keyword:"):
		return cyk.NewKeyword(strings.TrimPrefix(raw, "keyword:")), nil
	case strings.HasPrefix(raw, "near:"):
		inner, err := parseItem(strings.TrimPrefix(raw, "near:"))
		if err != nil {
			return nil, err
		}
		return cyk.NewNear(inner), nil
	case strings.HasPrefix(raw, "far:"):
		inner, err := parseItem(strings.TrimPrefix(raw, "far:"))
		if err != nil {
			return nil, err
		}
		return cyk.NewFar(inner), nil
	default:
		return raw, nil
	}
}
