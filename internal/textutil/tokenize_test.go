package textutil

import (
	"slices"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "simple words",
			input: "I love thee.",
			want:  []string{"i", "love", "thee"},
		},
		{
			name:  "keeps short tokens",
			input: "O, be some other name!",
			want:  []string{"o", "be", "some", "other", "name"},
		},
		{
			name:  "splits on apostrophes and hyphens",
			input: "'Tis Lammas-eve",
			want:  []string{"tis", "lammas", "eve"},
		},
		{
			name:  "digits and underscores",
			input: "Act_3 scene 2",
			want:  []string{"act_3", "scene", "2"},
		},
		{
			name:  "unicode letters",
			input: "Ça VA, Ærø",
			want:  []string{"ça", "va", "ærø"},
		},
		{
			name:  "empty string",
			input: "",
			want:  []string{},
		},
		{
			name:  "only punctuation",
			input: "-- ... !",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if !slices.Equal(got, tt.want) {
				t.Fatalf("Tokenize() = %v, want %v", got, tt.want)
			}
			if n := CountWords(tt.input); n != len(tt.want) {
				t.Errorf("CountWords() = %d, want %d", n, len(tt.want))
			}
		})
	}
}

func TestTokenizeDeterministic(t *testing.T) {
	text := "Wherefore art thou Romeo? Deny thy father and refuse thy name."
	first := Tokenize(text)
	for i := 0; i < 5; i++ {
		if got := Tokenize(text); !slices.Equal(got, first) {
			t.Fatalf("Tokenize() run %d = %v, want %v", i, got, first)
		}
	}
}
