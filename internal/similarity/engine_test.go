package similarity

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"sproct/internal/script"
)

// longSpeech builds a speech of n distinct tokens prefixed by seed.
func longSpeech(speaker, seed string, n int) script.Speech {
	words := make([]string, n)
	for i := range words {
		words[i] = fmt.Sprintf("%s%d", seed, i)
	}
	return script.NewSpeech(speaker, strings.Join(words, " "))
}

func TestFilterLongIsStrict(t *testing.T) {
	speeches := []script.Speech{
		longSpeech("A", "w", 74),
		longSpeech("B", "w", 75),
		longSpeech("C", "w", 10),
		longSpeech("D", "w", 200),
	}
	got := FilterLong(speeches, 74)
	if len(got) != 2 || got[0].Speaker() != "B" || got[1].Speaker() != "D" {
		t.Fatalf("FilterLong kept %v", got)
	}
	if got := FilterLong(nil, 74); len(got) != 0 {
		t.Fatalf("FilterLong(nil) = %v", got)
	}
}

func TestMatrixIdenticalSpeechScoresOne(t *testing.T) {
	shared := longSpeech("HAMLET", "shared", 80)
	a := []script.Speech{
		script.NewSpeech("GUARD", "Who's there?"),
		longSpeech("HORATIO", "other", 90),
		shared,
	}
	b := []script.Speech{shared, longSpeech("OPHELIA", "distinct", 85)}

	engine := NewEngine(DefaultOptions(), nil)
	m, err := engine.Matrix(context.Background(), a, b)
	if err != nil {
		t.Fatalf("Matrix returned error: %v", err)
	}
	rows, cols := m.Dims()
	if rows != 2 || cols != 2 {
		t.Fatalf("Dims() = %d,%d, want 2,2", rows, cols)
	}
	if got := m.At(1, 0); got != 1.0 {
		t.Fatalf("identical speeches scored %v, want 1.0", got)
	}
	if got := m.At(0, 1); got != 0 {
		t.Fatalf("disjoint speeches scored %v, want 0", got)
	}
	for i, row := range m.Scores {
		for j, score := range row {
			if score < 0 || score > 1 || math.IsNaN(score) {
				t.Fatalf("score[%d][%d] = %v out of range", i, j, score)
			}
		}
	}
}

func TestMatrixIDFKeepsIdenticalAtOne(t *testing.T) {
	shared := longSpeech("HAMLET", "shared", 80)
	opts := DefaultOptions()
	opts.IDF = true
	m, err := NewEngine(opts, nil).Matrix(context.Background(),
		[]script.Speech{shared, longSpeech("X", "x", 80)},
		[]script.Speech{shared},
	)
	if err != nil {
		t.Fatalf("Matrix returned error: %v", err)
	}
	if math.Abs(m.At(0, 0)-1) > 1e-12 {
		t.Fatalf("identical speeches scored %v with IDF", m.At(0, 0))
	}
}

func TestMatrixEmptySets(t *testing.T) {
	m, err := NewEngine(DefaultOptions(), nil).Matrix(context.Background(),
		[]script.Speech{script.NewSpeech("A", "short")}, nil)
	if err != nil {
		t.Fatalf("Matrix returned error: %v", err)
	}
	if rows, cols := m.Dims(); rows != 0 || cols != 0 {
		t.Fatalf("Dims() = %d,%d, want 0,0", rows, cols)
	}
	if pairs := CandidatePairs(m, 0.1); len(pairs) != 0 {
		t.Fatalf("CandidatePairs = %v", pairs)
	}
}

func TestMatrixHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	speeches := []script.Speech{longSpeech("A", "a", 80)}
	_, err := NewEngine(DefaultOptions(), nil).Matrix(ctx, speeches, speeches)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestCandidatePairsRowMajorStrict(t *testing.T) {
	m := &Matrix{Scores: [][]float64{
		{0.1, 0.5, 0.0},
		{0.9, 0.1000001, 0.05},
	}}
	got := CandidatePairs(m, 0.1)
	want := []Pair{{0, 1, 0.5}, {1, 0, 0.9}, {1, 1, 0.1000001}}
	if len(got) != len(want) {
		t.Fatalf("CandidatePairs = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("pair %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestEngineCandidatesUsesThreshold(t *testing.T) {
	shared := longSpeech("HAMLET", "shared", 80)
	opts := DefaultOptions()
	opts.Threshold = 0.99
	_, pairs, err := NewEngine(opts, nil).Candidates(context.Background(),
		[]script.Speech{longSpeech("A", "a", 80), shared},
		[]script.Speech{shared},
	)
	if err != nil {
		t.Fatalf("Candidates returned error: %v", err)
	}
	if len(pairs) != 1 || pairs[0].Row != 1 || pairs[0].Col != 0 {
		t.Fatalf("Candidates = %v", pairs)
	}
}

func TestNewEngineFallsBackToDefaults(t *testing.T) {
	got := NewEngine(Options{MinWords: -1, NGramSize: 0, Threshold: -1}, nil).Options()
	if got != DefaultOptions() {
		t.Fatalf("Options() = %+v, want %+v", got, DefaultOptions())
	}
}
