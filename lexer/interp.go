package lexer

import (
	"fmt"

	"github.com/grammarforge/cykgrammar/cyk"
)

// InterpretFunc evaluates one reduction step of a rule given its already
// evaluated children and a mutable environment.
type InterpretFunc func(children []interface{}, env map[string]interface{}) interface{}

// Interpreter is a rule-keyed evaluator registry plus a parallel
// human-readable "guide" string per rule, ported from demo.py's module
// level guide{}/interpreter{} maps. It is deliberately kept outside the cyk
// core — interpreter callbacks are a layer on top of the engine, not part
// of it.
type Interpreter struct {
	fns   map[*cyk.Rule]InterpretFunc
	guide map[*cyk.Rule]string
}

// NewInterpreter creates an empty registry.
func NewInterpreter() *Interpreter {
	return &Interpreter{fns: map[*cyk.Rule]InterpretFunc{}, guide: map[*cyk.Rule]string{}}
}

// Register binds an evaluator and an optional one-line guide string to a
// rule handle.
func (ip *Interpreter) Register(rule *cyk.Rule, guide string, fn InterpretFunc) {
	ip.fns[rule] = fn
	if guide != "" {
		ip.guide[rule] = guide
	}
}

// Guide returns the human-readable description registered for rule, or ""
// if none was given.
func (ip *Interpreter) Guide(rule *cyk.Rule) string { return ip.guide[rule] }

// Visitor builds a cyk.Visitor bound to env, evaluating rules via the
// registry; a rule with no registered evaluator and exactly one child
// passes that child through, matching demo.py's interpret() default.
// Unregistered multi-child rules panic, matching interpret()'s
// `raise Exception(repr(rule))`.
func (ip *Interpreter) Visitor(env map[string]interface{}) cyk.Visitor {
	return func(rule *cyk.Rule, children []interface{}) interface{} {
		if fn, ok := ip.fns[rule]; ok {
			return fn(children, env)
		}
		if len(children) == 1 {
			return children[0]
		}
		panic(fmt.Sprintf("no interpreter registered for rule %v", rule))
	}
}
