package expression

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokName
	tokIRI
	tokInt
	tokDecimal
	tokString
	tokLang
	tokPunct
	tokFacet
)

type token struct {
	kind   tokenKind
	text   string
	offset int
}

func (t token) String() string {
	switch t.kind {
	case tokEOF:
		return "<EOF>"
	case tokIRI:
		return "<" + t.text + ">"
	case tokString:
		return `"` + t.text + `"`
	case tokLang:
		return "@" + t.text
	}
	return t.text
}

func (t token) is(punct string) bool {
	return (t.kind == tokPunct || t.kind == tokFacet) && t.text == punct
}

func (t token) keyword(kw string) bool {
	return t.kind == tokName && t.text == kw
}

const delimiters = `(){}[],"<>^@`

func isNameRune(r rune) bool {
	return !unicode.IsSpace(r) && !strings.ContainsRune(delimiters, r)
}

// lex splits an expression into tokens. It fails only on unterminated
// strings and stray characters.
func lex(src string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(src) {
		r, w := utf8.DecodeRuneInString(src[i:])
		switch {
		case unicode.IsSpace(r):
			i += w
		case strings.ContainsRune("(){}[],", r):
			toks = append(toks, token{kind: tokPunct, text: string(r), offset: i})
			i += w
		case r == '"':
			var b strings.Builder
			j := i + 1
			for ; j < len(src) && src[j] != '"'; j++ {
				if src[j] == '\\' && j+1 < len(src) {
					j++
				}
				b.WriteByte(src[j])
			}
			if j >= len(src) {
				return nil, newError(src, i, "", "unterminated string")
			}
			toks = append(toks, token{kind: tokString, text: b.String(), offset: i})
			i = j + 1
		case r == '^':
			if !strings.HasPrefix(src[i:], "^^") {
				return nil, newError(src, i, "^", "unexpected character")
			}
			toks = append(toks, token{kind: tokPunct, text: "^^", offset: i})
			i += 2
		case r == '@':
			j := i + 1
			for j < len(src) && (isAlnum(src[j]) || src[j] == '-') {
				j++
			}
			if j == i+1 {
				return nil, newError(src, i, "@", "empty language tag")
			}
			toks = append(toks, token{kind: tokLang, text: src[i+1 : j], offset: i})
			i = j
		case r == '>':
			if strings.HasPrefix(src[i:], ">=") {
				toks = append(toks, token{kind: tokFacet, text: ">=", offset: i})
				i += 2
			} else {
				toks = append(toks, token{kind: tokFacet, text: ">", offset: i})
				i++
			}
		case r == '<':
			if strings.HasPrefix(src[i:], "<=") {
				toks = append(toks, token{kind: tokFacet, text: "<=", offset: i})
				i += 2
				continue
			}
			end := strings.IndexAny(src[i+1:], "> \t\r\n")
			if end > 0 && src[i+1+end] == '>' {
				toks = append(toks, token{kind: tokIRI, text: src[i+1 : i+1+end], offset: i})
				i += end + 2
				continue
			}
			toks = append(toks, token{kind: tokFacet, text: "<", offset: i})
			i++
		case isDigit(r) || ((r == '-' || r == '+') && i+1 < len(src) && isDigit(rune(src[i+1]))):
			j := i + 1
			kind := tokInt
			for j < len(src) && (isDigit(rune(src[j])) || (src[j] == '.' && kind == tokInt)) {
				if src[j] == '.' {
					kind = tokDecimal
				}
				j++
			}
			toks = append(toks, token{kind: kind, text: src[i:j], offset: i})
			i = j
		case isNameRune(r):
			j := i
			for j < len(src) {
				r, w := utf8.DecodeRuneInString(src[j:])
				if !isNameRune(r) {
					break
				}
				j += w
			}
			toks = append(toks, token{kind: tokName, text: src[i:j], offset: i})
			i = j
		default:
			return nil, newError(src, i, string(r), "unexpected character")
		}
	}
	return append(toks, token{kind: tokEOF, offset: len(src)}), nil
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isAlnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
