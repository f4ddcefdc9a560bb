package htmlsemdiff

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// tokenRE matches, in order of preference, a whitespace run, a word run, or a
// single character of anything else. Word characters are letters, non-spacing
// marks, decimal digits and connector punctuation; whitespace is everything
// unicode.IsSpace accepts.
var tokenRE = regexp.MustCompile(`(?s)[\s\v\x{85}\p{Z}]+|[\p{L}\p{Mn}\p{Nd}\p{Pc}]+|.`)

// SplitText splits decoded text into tokens. Concatenating the result gives
// back s.
func SplitText(s string) []string {
	if s == "" {
		return nil
	}
	return tokenRE.FindAllString(s, -1)
}

// Tokenize returns the tokens of every leaf of doc in document order.
func Tokenize(doc *Document) []Token {
	var tokens []Token
	for i, leaf := range doc.Leaves {
		for _, part := range SplitText(leaf.Node.Data) {
			tokens = append(tokens, Token{Text: part, Leaf: i})
		}
	}
	return tokens
}

// meaningful filters out whitespace-only tokens.
func meaningful(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Meaningful() {
			out = append(out, t)
		}
	}
	return out
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func startsWithLetterOrDigit(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return s != "" && isLetterOrDigit(r)
}

func endsWithLetterOrDigit(s string) bool {
	r, _ := utf8.DecodeLastRuneInString(s)
	return s != "" && isLetterOrDigit(r)
}

func isLetterOrDigit(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func endsWithSpace(s string) bool {
	r, _ := utf8.DecodeLastRuneInString(s)
	return s != "" && unicode.IsSpace(r)
}
