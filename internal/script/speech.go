package script

import (
	"slices"
	"strings"

	"sproct/internal/textutil"
)

// Speech is a maximal run of text attributed to one speaker. It is immutable:
// accessors return copies and nothing mutates a Speech after construction.
type Speech struct {
	speaker string
	lines   []string
}

// NewSpeech builds a Speech from a speaker and its raw text lines.
func NewSpeech(speaker string, lines ...string) Speech {
	return Speech{speaker: speaker, lines: slices.Clone(lines)}
}

// Speaker returns the speaker identifier.
func (s Speech) Speaker() string { return s.speaker }

// Lines returns a copy of the raw text lines.
func (s Speech) Lines() []string { return slices.Clone(s.lines) }

// LineCount returns the number of raw text lines.
func (s Speech) LineCount() int { return len(s.lines) }

// Text joins the raw lines with newlines.
func (s Speech) Text() string { return strings.Join(s.lines, "\n") }

// Words tokenizes the space-joined raw lines.
func (s Speech) Words() []string {
	return textutil.Tokenize(strings.Join(s.lines, " "))
}

// WordCount returns len(s.Words()) without building the token slice.
func (s Speech) WordCount() int {
	return textutil.CountWords(strings.Join(s.lines, " "))
}

// Equal reports structural equality: same speaker and same raw lines.
func (s Speech) Equal(other Speech) bool {
	return s.speaker == other.speaker && slices.Equal(s.lines, other.lines)
}

// CacheKey lets a Speech take part in Play cache keys.
func (s Speech) CacheKey() (string, bool) {
	var b strings.Builder
	b.WriteString(s.speaker)
	for _, line := range s.lines {
		b.WriteByte('\n')
		b.WriteString(line)
	}
	return b.String(), true
}
