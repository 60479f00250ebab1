package grammarfile

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ParseRuleText parses a compact line-oriented rule notation into a
// Document, an alternative to the TOML format for small hand-authored
// grammars (the CLI's default arithmetic demo is expressible in either).
// One rule per line:
//
//	<head> ::= item item item | item item
//
// Alternatives separated by "|" expand into one RuleDef per alternative.
// Each rhs item is resolved by its shape:
//   - "<Name>"  -> a reference to nonterminal Name
//   - "$name"   -> a reference to terminal name
//   - anything else -> a literal keyword (see parseItem's "keyword:" form)
//
// Blank lines and lines starting with "#" are ignored. Unlike the PCFG
// bracket-rule notation this is adapted from, there is no weight field —
// this grammar model carries no probabilities, only ambiguity counts.
func ParseRuleText(text string) (*Document, error) {
	doc := &Document{}
	terminalSet := map[string]bool{}

	for lineNo, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		defs, terms, err := parseRuleLine(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo+1)
		}
		for _, name := range terms {
			terminalSet[name] = true
		}
		doc.Rules = append(doc.Rules, defs...)
	}

	for name := range terminalSet {
		doc.Terminals = append(doc.Terminals, name)
	}
	return doc, nil
}

func parseRuleLine(line string) ([]RuleDef, []string, error) {
	fields := strings.SplitN(line, "::=", 2)
	if len(fields) != 2 {
		return nil, nil, fmt.Errorf("expected exactly one '::=' in %q", line)
	}
	head := strings.TrimSpace(fields[0])
	head = strings.TrimPrefix(strings.TrimSuffix(head, ">"), "<")
	if head == "" {
		return nil, nil, fmt.Errorf("empty rule head in %q", line)
	}

	var out []RuleDef
	var terminals []string
	for _, alt := range strings.Split(fields[1], "|") {
		items := strings.Fields(alt)
		if len(items) == 0 {
			return nil, nil, fmt.Errorf("empty alternative in %q", line)
		}
		rhs := make([]string, len(items))
		for i, item := range items {
			resolved, isTerminal := resolveRuleTextItem(item)
			rhs[i] = resolved
			if isTerminal {
				terminals = append(terminals, resolved)
			}
		}
		out = append(out, RuleDef{Head: head, RHS: rhs})
	}
	return out, terminals, nil
}

// resolveRuleTextItem translates one bracket-notation token into the
// string shape parseItem expects ("name" for a terminal/nonterminal
// reference, "keyword:VALUE" for a literal), along with whether it was a
// "$name" terminal reference so the caller can register it in Terminals.
func resolveRuleTextItem(item string) (string, bool) {
	if strings.HasPrefix(item, "<") && strings.HasSuffix(item, ">") {
		return strings.TrimSuffix(strings.TrimPrefix(item, "<"), ">"), false
	}
	if name, ok := strings.CutPrefix(item, "$"); ok {
		return name, true
	}
	return "keyword:" + item, false
}
