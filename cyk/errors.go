package cyk

import "github.com/pkg/errors"

// GrammarError reports a fatal defect found while building the CNF
// artifact: a terminal/nonterminal name clash, an unknown RHS symbol, a
// specifier validation failure, or a degenerate unit rule X -> X.
type GrammarError struct {
	msg string
}

func (e *GrammarError) Error() string { return e.msg }

func grammarErrorf(format string, args ...interface{}) error {
	return &GrammarError{msg: errors.Errorf(format, args...).Error()}
}

// TraversalError reports that Traverse was called on an ambiguous Result
// (ambiguity > 1), for which no single parse tree is defined.
type TraversalError struct {
	Ambiguity int
}

func (e *TraversalError) Error() string {
	return errors.Errorf("traverse: ambiguous result does not produce an unambiguous traversal (ambiguity=%d)", e.Ambiguity).Error()
}

// ContractError reports a caller-side misuse of the Table/Result API, such
// as requesting Table.Just with size < 1.
type ContractError struct {
	msg string
}

func (e *ContractError) Error() string { return e.msg }

func contractErrorf(format string, args ...interface{}) error {
	return &ContractError{msg: errors.Errorf(format, args...).Error()}
}
