package diff

import (
	"fmt"
	"slices"

	"github.com/pmezard/go-difflib/difflib"

	"sproct/internal/script"
	"sproct/internal/textutil"
)

// Tag classifies one opcode.
type Tag uint8

const (
	// Equal marks ranges that match in both sequences.
	Equal Tag = iota
	// Insert marks elements present only in b.
	Insert
	// Delete marks elements present only in a.
	Delete
	// Replace marks a range of a rewritten as a range of b.
	Replace
)

var tagNames = [...]string{
	Equal:   "equal",
	Insert:  "insert",
	Delete:  "delete",
	Replace: "replace",
}

func (t Tag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return fmt.Sprintf("tag(%d)", uint8(t))
}

// MarshalText renders the tag name in JSON and YAML reports.
func (t Tag) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText parses a tag name produced by MarshalText.
func (t *Tag) UnmarshalText(text []byte) error {
	for i, name := range tagNames {
		if string(text) == name {
			*t = Tag(i)
			return nil
		}
	}
	return fmt.Errorf("unknown opcode tag %q", text)
}

// Opcode turns a[A1:A2] into b[B1:B2].
type Opcode struct {
	Tag Tag `json:"tag" yaml:"tag"`
	A1  int `json:"a1" yaml:"a1"`
	A2  int `json:"a2" yaml:"a2"`
	B1  int `json:"b1" yaml:"b1"`
	B2  int `json:"b2" yaml:"b2"`
}

// Result is the alignment of two sequences. Opcodes cover every index of both
// sequences exactly once, in left-to-right order.
type Result struct {
	Ratio   float64  `json:"ratio" yaml:"ratio"`
	Matched int      `json:"matched" yaml:"matched"`
	Total   int      `json:"total" yaml:"total"`
	Opcodes []Opcode `json:"opcodes" yaml:"opcodes"`
}

// Summary counts the elements touched by each kind of opcode.
type Summary struct {
	Equal    int `json:"equal" yaml:"equal"`
	Inserted int `json:"inserted" yaml:"inserted"`
	Deleted  int `json:"deleted" yaml:"deleted"`
	Replaced int `json:"replaced" yaml:"replaced"`
}

// Summary reports element counts per opcode kind. Replaced counts elements of a.
func (r Result) Summary() Summary {
	var s Summary
	for _, op := range r.Opcodes {
		switch op.Tag {
		case Equal:
			s.Equal += op.A2 - op.A1
		case Insert:
			s.Inserted += op.B2 - op.B1
		case Delete:
			s.Deleted += op.A2 - op.A1
		case Replace:
			s.Replaced += op.A2 - op.A1
		}
	}
	return s
}

// Align matches a against b. Ratio is 2*M/T where M is the matched element
// count and T the combined length; two empty sequences have ratio 1.
//
// Block matching is order sensitive, so the matcher always runs on the
// lexicographically smaller sequence first and the opcodes are transposed
// back. Align(a, b) and Align(b, a) therefore report the same ratio.
func Align(a, b []string) Result {
	swapped := slices.Compare(a, b) > 0
	first, second := a, b
	if swapped {
		first, second = b, a
	}

	matcher := difflib.NewMatcherWithJunk(first, second, false, nil)
	raw := matcher.GetOpCodes()

	res := Result{Total: len(a) + len(b), Opcodes: make([]Opcode, 0, len(raw))}
	for _, op := range raw {
		code := Opcode{Tag: tagFromByte(op.Tag), A1: op.I1, A2: op.I2, B1: op.J1, B2: op.J2}
		if swapped {
			code = code.transpose()
		}
		if code.Tag == Equal {
			res.Matched += code.A2 - code.A1
		}
		res.Opcodes = append(res.Opcodes, code)
	}
	res.Ratio = 1
	if res.Total > 0 {
		res.Ratio = 2 * float64(res.Matched) / float64(res.Total)
	}
	return res
}

// Words aligns the token sequences of two speeches.
func Words(a, b script.Speech) Result {
	return Align(a.Words(), b.Words())
}

// Texts aligns the token sequences of two texts, such as whole-play renderings.
func Texts(a, b string) Result {
	return Align(textutil.Tokenize(a), textutil.Tokenize(b))
}

// Lines aligns raw text lines.
func Lines(a, b []string) Result {
	return Align(a, b)
}

func (op Opcode) transpose() Opcode {
	tag := op.Tag
	switch tag {
	case Insert:
		tag = Delete
	case Delete:
		tag = Insert
	}
	return Opcode{Tag: tag, A1: op.B1, A2: op.B2, B1: op.A1, B2: op.A2}
}

func tagFromByte(b byte) Tag {
	switch b {
	case 'e':
		return Equal
	case 'i':
		return Insert
	case 'd':
		return Delete
	default:
		return Replace
	}
}
