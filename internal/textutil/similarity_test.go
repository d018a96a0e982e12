package textutil

import (
	"math"
	"testing"
)

func TestCosineSimilarityZeroNorm(t *testing.T) {
	tests := []struct {
		name string
		a    []float64
		b    []float64
		want float64
	}{
		{"both zero", []float64{0, 0, 0}, []float64{0, 0, 0}, 0},
		{"a zero", []float64{0, 0, 0}, []float64{1, 2, 3}, 0},
		{"b zero", []float64{1, 2, 3}, []float64{0, 0, 0}, 0},
		{"empty", nil, nil, 0},
		{"length mismatch", []float64{1, 2}, []float64{1, 2, 3}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CosineSimilarity(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("CosineSimilarity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCosineSimilarityIdentical(t *testing.T) {
	vectors := [][]float64{
		{1},
		{1, 2, 3},
		{3, 0, 7, 1, 1, 2},
		{2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2},
	}
	for _, v := range vectors {
		if got := CosineSimilarity(v, v); got != 1.0 {
			t.Errorf("CosineSimilarity(%v, itself) = %v, want 1.0", v, got)
		}
	}
}

func TestCosineSimilarityOrthogonal(t *testing.T) {
	got := CosineSimilarity([]float64{1, 0, 2, 0}, []float64{0, 3, 0, 1})
	if got != 0 {
		t.Errorf("CosineSimilarity(orthogonal) = %v, want 0", got)
	}
}

func TestCosineSimilarityPartialOverlap(t *testing.T) {
	// dot = 1, norms = sqrt(2) and sqrt(2)
	got := CosineSimilarity([]float64{1, 1, 0}, []float64{0, 1, 1})
	if math.Abs(got-0.5) > 1e-12 {
		t.Errorf("CosineSimilarity(partial) = %v, want 0.5", got)
	}
}

func TestCosineSimilaritySymmetric(t *testing.T) {
	a := []float64{4, 1, 0, 2}
	b := []float64{1, 3, 5, 0}

	ab := CosineSimilarity(a, b)
	ba := CosineSimilarity(b, a)
	if ab != ba {
		t.Errorf("CosineSimilarity not symmetric: (%v, %v)", ab, ba)
	}
}

func TestCosineSimilarityNegativeComponentsClamp(t *testing.T) {
	got := CosineSimilarity([]float64{1, 0}, []float64{-1, 0})
	if got != 0 {
		t.Errorf("CosineSimilarity(opposed) = %v, want 0", got)
	}
}

func TestCosineSimilarityRealisticSpeeches(t *testing.T) {
	romeo := Tokenize(`But soft, what light through yonder window breaks?
		It is the east, and Juliet is the sun.`)
	echo := Tokenize(`But soft, what light through yonder window breaks?
		It is the east, and Juliet is the sun!`)
	nurse := Tokenize(`Even or odd, of all days in the year,
		Come Lammas-eve at night shall she be fourteen.`)

	counts := []Counts{
		NGramCounts(romeo, DefaultNGramSize),
		NGramCounts(echo, DefaultNGramSize),
		NGramCounts(nurse, DefaultNGramSize),
	}
	vocab := BuildVocabulary(counts[:1], counts[1:])
	romeoVec := vocab.Project(counts[0])
	echoVec := vocab.Project(counts[1])
	nurseVec := vocab.Project(counts[2])

	if sim := CosineSimilarity(romeoVec, echoVec); sim != 1.0 {
		t.Errorf("punctuation-only difference similarity = %v, want 1.0", sim)
	}
	if sim := CosineSimilarity(romeoVec, nurseVec); sim >= 0.1 {
		t.Errorf("unrelated speech similarity = %v, should be < 0.1", sim)
	}
}
