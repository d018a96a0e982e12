package diff

import (
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// DefaultChangedCutoff is the line similarity at which a replaced pair is
// shown as one changed line instead of a removal and an addition.
const DefaultChangedCutoff = 0.6

// Mark prefixes a rendered line.
type Mark string

const (
	// Kept prefixes lines present in both sequences.
	Kept Mark = "  "
	// Added prefixes lines only in the second sequence.
	Added Mark = "+ "
	// Removed prefixes lines only in the first sequence.
	Removed Mark = "- "
	// Changed prefixes a line edited in place.
	Changed Mark = "~ "
)

// MarkedLine is one row of a line transcript. Original is set only for
// changed lines and holds the line from the first sequence.
type MarkedLine struct {
	Mark     Mark   `json:"mark" yaml:"mark"`
	Text     string `json:"text" yaml:"text"`
	Original string `json:"original,omitempty" yaml:"original,omitempty"`
}

func (l MarkedLine) String() string {
	if l.Mark == Changed {
		return string(l.Mark) + l.Original + " -> " + l.Text
	}
	return string(l.Mark) + l.Text
}

// RenderOption customizes RenderLineDiff.
type RenderOption func(*renderer)

// WithChangedCutoff sets the similarity a replaced pair needs to render as
// changed. Values outside [0,1] are ignored.
func WithChangedCutoff(cutoff float64) RenderOption {
	return func(r *renderer) {
		if cutoff >= 0 && cutoff <= 1 {
			r.cutoff = cutoff
		}
	}
}

type renderer struct {
	cutoff float64
}

// RenderLineDiff produces a marked transcript of the line-level alignment of a
// and b. Inside replace blocks lines are paired by position.
func RenderLineDiff(a, b []string, opts ...RenderOption) []MarkedLine {
	r := renderer{cutoff: DefaultChangedCutoff}
	for _, opt := range opts {
		opt(&r)
	}

	res := Lines(a, b)
	out := make([]MarkedLine, 0, max(len(a), len(b)))
	for _, op := range res.Opcodes {
		switch op.Tag {
		case Equal:
			for _, line := range a[op.A1:op.A2] {
				out = append(out, MarkedLine{Mark: Kept, Text: line})
			}
		case Delete:
			for _, line := range a[op.A1:op.A2] {
				out = append(out, MarkedLine{Mark: Removed, Text: line})
			}
		case Insert:
			for _, line := range b[op.B1:op.B2] {
				out = append(out, MarkedLine{Mark: Added, Text: line})
			}
		case Replace:
			out = r.replaceBlock(out, a[op.A1:op.A2], b[op.B1:op.B2])
		}
	}
	return out
}

func (r renderer) replaceBlock(out []MarkedLine, before, after []string) []MarkedLine {
	for i := 0; i < max(len(before), len(after)); i++ {
		switch {
		case i >= len(after):
			out = append(out, MarkedLine{Mark: Removed, Text: before[i]})
		case i >= len(before):
			out = append(out, MarkedLine{Mark: Added, Text: after[i]})
		case LineSimilarity(before[i], after[i]) >= r.cutoff:
			out = append(out, MarkedLine{Mark: Changed, Text: after[i], Original: before[i]})
		default:
			out = append(out,
				MarkedLine{Mark: Removed, Text: before[i]},
				MarkedLine{Mark: Added, Text: after[i]},
			)
		}
	}
	return out
}

// LineSimilarity is 1 minus the Levenshtein distance over the longer rune
// length. Two empty lines are identical.
func LineSimilarity(a, b string) float64 {
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 1
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}
