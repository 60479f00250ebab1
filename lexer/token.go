// Package lexer provides a reference tokenizer and a small rule-keyed
// interpreter registry. Neither is part of the cyk core contract; they
// exist here so the CLI demo has something concrete to drive the engine
// with.
package lexer

import "fmt"

// Token is the reference token implementation: it satisfies cyk.Token (via
// Type/Value/IsNear) and diagnostics.PositionedToken (via Pos/Length).
type Token struct {
	PosVal    int
	LengthVal int
	TypeVal   string
	ValueVal  interface{}
	NearVal   bool
}

func (t Token) Type() string        { return t.TypeVal }
func (t Token) Value() interface{}  { return t.ValueVal }
func (t Token) IsNear() bool        { return t.NearVal }
func (t Token) Pos() int            { return t.PosVal }
func (t Token) Length() int         { return t.LengthVal }

func (t Token) String() string {
	return fmt.Sprintf("%s %v at %d", t.TypeVal, t.ValueVal, t.PosVal)
}
