package lexer

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/grammarforge/cykgrammar/cyk"
)

// Tokenize classifies text into the reference token stream: alphabetic runs
// as "sym" (or "keyword" when the run matches keywords), digit runs as
// "num", and any other character (tabs and newlines included) as a
// single-character "unk" token. Runs of spaces are skipped and mark the
// next token as not near. Position is encoded as line*1000+column, with line breaks
// rolling the position to the next thousand. Ported from
// original_source/grammarboy/__init__.py's tokenize().
func Tokenize(text string, keywords map[string]bool) []cyk.Token {
	return tokenizeAt(text, keywords, 1000)
}

func tokenizeAt(text string, keywords map[string]bool, location int) []cyk.Token {
	runes := []rune(text)
	idx := 0
	pos := location - 2
	nearFlag := true
	var ch rune
	chValid := false

	advance := func() (rune, bool) {
		lastCh, lastValid := ch, chValid
		if idx < len(runes) {
			ch = runes[idx]
			chValid = true
			idx++
		} else {
			chValid = false
		}
		pos++
		if lastValid && lastCh == '\n' {
			pos = 1000 + (pos/1000)*1000
		}
		return lastCh, lastValid
	}

	makeToken := func(typ string, val interface{}, runeLen int) Token {
		w := nearFlag
		nearFlag = true
		return Token{PosVal: pos - runeLen + 1, LengthVal: runeLen, TypeVal: typ, ValueVal: val, NearVal: w}
	}

	advance() // prime ch with the first rune, mirroring the reference's initial advance()

	var out []cyk.Token
	for chValid {
		switch {
		case isSym(ch):
			var sb strings.Builder
			for chValid && isSym(ch) {
				r, _ := advance()
				sb.WriteRune(r)
			}
			s := sb.String()
			typ := "sym"
			if keywords[s] {
				typ = "keyword"
			}
			out = append(out, makeToken(typ, s, utf8.RuneCountInString(s)))
		case ch == ' ':
			for chValid && ch == ' ' {
				advance()
			}
			nearFlag = false
		case isNum(ch):
			var sb strings.Builder
			for chValid && isNum(ch) {
				r, _ := advance()
				sb.WriteRune(r)
			}
			s := sb.String()
			n, _ := strconv.Atoi(s)
			out = append(out, makeToken("num", n, utf8.RuneCountInString(s)))
		default:
			r, _ := advance()
			out = append(out, makeToken("unk", string(r), 1))
		}
	}
	return out
}

func isSym(r rune) bool { return unicode.IsLetter(r) }
func isNum(r rune) bool { return unicode.IsDigit(r) }
