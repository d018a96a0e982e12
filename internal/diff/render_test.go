package diff

import (
	"math"
	"slices"
	"testing"
)

func renderStrings(lines []MarkedLine) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = line.String()
	}
	return out
}

func TestRenderLineDiff(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		opts []RenderOption
		want []string
	}{
		{
			name: "identical",
			a:    []string{"ROMEO", "I love thee."},
			b:    []string{"ROMEO", "I love thee."},
			want: []string{"  ROMEO", "  I love thee."},
		},
		{
			name: "changed and added",
			a:    []string{"ROMEO", "I love thee.", "JULIET", "Wherefore art thou?"},
			b:    []string{"ROMEO", "I love thee!", "JULIET", "Wherefore art thou?", "NURSE"},
			want: []string{
				"  ROMEO",
				"~ I love thee. -> I love thee!",
				"  JULIET",
				"  Wherefore art thou?",
				"+ NURSE",
			},
		},
		{
			name: "dissimilar replacement",
			a:    []string{"x", "hello world"},
			b:    []string{"x", "zzz"},
			want: []string{"  x", "- hello world", "+ zzz"},
		},
		{
			name: "uneven replacement",
			a:    []string{"A", "one", "two", "B"},
			b:    []string{"A", "one!", "B"},
			want: []string{"  A", "~ one -> one!", "- two", "  B"},
		},
		{
			name: "strict cutoff",
			a:    []string{"x", "I love thee."},
			b:    []string{"x", "I love thee!"},
			opts: []RenderOption{WithChangedCutoff(1)},
			want: []string{"  x", "- I love thee.", "+ I love thee!"},
		},
		{
			name: "removed",
			a:    []string{"A", "B"},
			b:    []string{"A"},
			want: []string{"  A", "- B"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderStrings(RenderLineDiff(tt.a, tt.b, tt.opts...))
			if !slices.Equal(got, tt.want) {
				t.Fatalf("RenderLineDiff =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestRenderLineDiffAccountsForEveryLine(t *testing.T) {
	a := []string{"one", "two", "three", "four"}
	b := []string{"zero", "two", "3", "four", "five"}
	var fromA, fromB int
	for _, line := range RenderLineDiff(a, b) {
		switch line.Mark {
		case Kept, Changed:
			fromA++
			fromB++
		case Removed:
			fromA++
		case Added:
			fromB++
		}
	}
	if fromA != len(a) || fromB != len(b) {
		t.Fatalf("transcript covers %d/%d lines, want %d/%d", fromA, fromB, len(a), len(b))
	}
}

func TestLineSimilarity(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"", "", 1},
		{"abc", "abc", 1},
		{"abc", "xyz", 0},
		{"", "abc", 0},
		{"kitten", "sitting", 1 - 3.0/7.0},
		{"café", "cafe", 0.75},
	}
	for _, tt := range tests {
		if got := LineSimilarity(tt.a, tt.b); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("LineSimilarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
