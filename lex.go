package woflang

import (
	"strings"
	"unicode"
)

// Tokenize splits a source line into whitespace-delimited tokens. A double
// quote opens a quoted region whose contents are copied verbatim, with no
// escape processing, into a single token; the region closes at the next
// double quote, or at end of input if the line ends first. Quoted tokens keep
// their delimiting quotes so the dispatcher can tell a string literal from a
// symbol that happens to contain spaces. Each call scans the line afresh and
// returns a newly allocated slice.
func Tokenize(line string) []string {
	var tokens []string
	var b strings.Builder
	inString := false
	for _, r := range line {
		switch {
		case inString:
			if r == '"' {
				b.WriteByte('"')
				tokens = append(tokens, b.String())
				b.Reset()
				inString = false
			} else {
				b.WriteRune(r)
			}
		case unicode.IsSpace(r):
			if b.Len() > 0 {
				tokens = append(tokens, b.String())
				b.Reset()
			}
		case r == '"':
			if b.Len() > 0 {
				tokens = append(tokens, b.String())
				b.Reset()
			}
			b.WriteByte('"')
			inString = true
		default:
			b.WriteRune(r)
		}
	}
	if inString {
		// Unterminated quoted region: taken as closed at end of input.
		b.WriteByte('"')
		tokens = append(tokens, b.String())
	} else if b.Len() > 0 {
		tokens = append(tokens, b.String())
	}
	return tokens
}

// isIntegerLiteral reports whether the token matches [+-]?[0-9]+.
func isIntegerLiteral(token string) bool {
	if token == "" {
		return false
	}
	i := 0
	if token[0] == '-' || token[0] == '+' {
		i = 1
	}
	if i == len(token) {
		return false
	}
	for ; i < len(token); i++ {
		if token[i] < '0' || token[i] > '9' {
			return false
		}
	}
	return true
}

// isStringLiteral reports whether the token is wrapped in a double-quote
// pair, as produced by Tokenize for quoted regions.
func isStringLiteral(token string) bool {
	return len(token) >= 2 && token[0] == '"' && token[len(token)-1] == '"'
}
