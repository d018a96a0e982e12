package script

import (
	"strings"
	"unicode"
)

// Detector decides whether a raw line opens a new speech. It returns the new
// speaker (empty for none) and the body text the line contributes (empty for
// none).
type Detector interface {
	Detect(line string) (speaker, remainder string, err error)
}

// DetectorFunc adapts an ordinary function to the Detector interface.
type DetectorFunc func(line string) (speaker, remainder string, err error)

// Detect calls f(line).
func (f DetectorFunc) Detect(line string) (string, string, error) {
	return f(line)
}

// UppercaseDetector treats a line whose trimmed content is entirely uppercase
// as a speaker heading. Every other line contributes its trimmed content.
var UppercaseDetector Detector = DetectorFunc(detectUppercase)

// ColonDetector recognizes inline headings such as "ROMEO: I love thee." where
// the text before the first colon is uppercase. A bare uppercase line is also a
// heading.
var ColonDetector Detector = DetectorFunc(detectColon)

// maxColonSpeakerLen bounds the prefix ColonDetector accepts as a speaker.
const maxColonSpeakerLen = 40

func detectUppercase(line string) (string, string, error) {
	trimmed := strings.TrimSpace(line)
	if isUpper(trimmed) {
		return trimmed, "", nil
	}
	return "", trimmed, nil
}

func detectColon(line string) (string, string, error) {
	trimmed := strings.TrimSpace(line)
	if prefix, rest, ok := strings.Cut(trimmed, ":"); ok {
		prefix = strings.TrimSpace(prefix)
		if len(prefix) <= maxColonSpeakerLen && isUpper(prefix) {
			return prefix, strings.TrimSpace(rest), nil
		}
	}
	return detectUppercase(trimmed)
}

// isUpper reports whether s has at least one cased rune and no lowercase or
// titlecase runes.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		switch {
		case unicode.IsLower(r), unicode.IsTitle(r):
			return false
		case unicode.IsUpper(r):
			cased = true
		}
	}
	return cased
}
