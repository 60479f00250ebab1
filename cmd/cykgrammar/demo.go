package main

import (
	"github.com/grammarforge/cykgrammar/cyk"
	"github.com/grammarforge/cykgrammar/lexer"
)

// demoGrammar builds the small arithmetic language from original_source's
// demo.py: statements of the form "return EXPR", where EXPR is built from
// num literals, "+"/"-" (left-associative) and "and"/"or" (lower
// precedence than +/-). It is the grammar the parse/repl/explain
// subcommands fall back to when no -g flag is given.
func demoGrammar() (*cyk.Grammar, *lexer.Interpreter) {
	g := cyk.NewGrammar()
	g.AddTerminal("num")
	g.AddTerminal("sym")
	g.AddTerminal("keyword")
	g.AddTerminal("unk")

	ip := lexer.NewInterpreter()

	term, _ := g.AddRule("term", "num")
	ip.Register(term, "a number literal", func(children []interface{}, env map[string]interface{}) interface{} {
		return children[0].(cyk.Token).Value()
	})

	_, _ = g.AddRule("expr90", "term")

	expr90Add, _ := g.AddRule("expr90", "expr90", cyk.NewKeyword("+"), "term")
	ip.Register(expr90Add, "left + right", func(children []interface{}, env map[string]interface{}) interface{} {
		return children[0].(int) + children[2].(int)
	})

	expr90Sub, _ := g.AddRule("expr90", "expr90", cyk.NewKeyword("-"), "term")
	ip.Register(expr90Sub, "left - right", func(children []interface{}, env map[string]interface{}) interface{} {
		return children[0].(int) - children[2].(int)
	})

	_, _ = g.AddRule("expr", "expr90")

	exprAnd, _ := g.AddRule("expr", "expr90", cyk.NewKeyword("and"), "expr")
	ip.Register(exprAnd, "left and right", func(children []interface{}, env map[string]interface{}) interface{} {
		return boolToInt(intToBool(children[0]) && intToBool(children[2]))
	})

	exprOr, _ := g.AddRule("expr", "expr90", cyk.NewKeyword("or"), "expr")
	ip.Register(exprOr, "left or right", func(children []interface{}, env map[string]interface{}) interface{} {
		return boolToInt(intToBool(children[0]) || intToBool(children[2]))
	})

	_, _ = g.AddRule("stmt", cyk.NewKeyword("return"), "expr")

	return g, ip
}

func intToBool(v interface{}) bool {
	n, ok := v.(int)
	return ok && n != 0
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// demoKeywords is the set of sym-shaped runs that should be reclassified
// as "keyword" tokens by the tokenizer, matching demo.py's KEYWORDS set.
var demoKeywords = map[string]bool{
	"return": true,
	"and":    true,
	"or":     true,
}
