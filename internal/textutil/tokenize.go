package textutil

import (
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// wordPattern matches runs of Unicode letters, digits, and underscores.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Tokenize splits text into lowercase word tokens.
func Tokenize(text string) []string {
	raw := wordPattern.FindAllString(text, -1)
	tokens := make([]string, len(raw))
	if len(raw) == 0 {
		return tokens
	}
	lower := cases.Lower(language.Und)
	for i, word := range raw {
		tokens[i] = lower.String(word)
	}
	return tokens
}

// CountWords returns the number of tokens Tokenize would produce for text.
func CountWords(text string) int {
	return len(wordPattern.FindAllStringIndex(text, -1))
}
