package textutil

import (
	"math"
	"slices"
	"strings"
)

// DefaultNGramSize is the window length used when callers do not pick one.
const DefaultNGramSize = 2

// ngramSeparator never occurs inside a token produced by Tokenize.
const ngramSeparator = "\x1f"

// NGram is an ordered tuple of consecutive tokens usable as a map key.
type NGram string

// NewNGram joins tokens into an NGram.
func NewNGram(tokens ...string) NGram {
	return NGram(strings.Join(tokens, ngramSeparator))
}

// Tokens returns the tokens that make up the n-gram.
func (g NGram) Tokens() []string {
	if g == "" {
		return nil
	}
	return strings.Split(string(g), ngramSeparator)
}

// String renders the n-gram with its tokens separated by spaces.
func (g NGram) String() string {
	return strings.ReplaceAll(string(g), ngramSeparator, " ")
}

// Counts maps each n-gram of one token sequence to its number of occurrences.
type Counts map[NGram]int

// NGramCounts slides a window of n tokens over tokens and counts each window.
// The mapping is empty when n < 1 or there are fewer than n tokens.
func NGramCounts(tokens []string, n int) Counts {
	counts := make(Counts)
	if n < 1 || len(tokens) < n {
		return counts
	}
	for i := 0; i+n <= len(tokens); i++ {
		counts[NewNGram(tokens[i:i+n]...)]++
	}
	return counts
}

// Vocabulary is the set of n-grams considered by one similarity computation,
// frozen in a fixed iteration order so every projected vector lines up.
type Vocabulary struct {
	grams   []NGram
	index   map[NGram]int
	weights []float64
}

// BuildVocabulary returns the union of every key in both collections. Grams
// are sorted so the projection order does not depend on map iteration.
func BuildVocabulary(a, b []Counts) *Vocabulary {
	index := make(map[NGram]int)
	var grams []NGram
	for _, set := range [][]Counts{a, b} {
		for _, counts := range set {
			for gram := range counts {
				if _, ok := index[gram]; ok {
					continue
				}
				index[gram] = 0
				grams = append(grams, gram)
			}
		}
	}
	slices.Sort(grams)
	for i, gram := range grams {
		index[gram] = i
	}
	return &Vocabulary{grams: grams, index: index}
}

// Len returns the number of distinct n-grams.
func (v *Vocabulary) Len() int {
	if v == nil {
		return 0
	}
	return len(v.grams)
}

// Grams returns the n-grams in projection order.
func (v *Vocabulary) Grams() []NGram {
	if v == nil {
		return nil
	}
	return slices.Clone(v.grams)
}

// Contains reports whether gram belongs to the vocabulary.
func (v *Vocabulary) Contains(gram NGram) bool {
	if v == nil {
		return false
	}
	_, ok := v.index[gram]
	return ok
}

// Project lays counts out as a dense vector in the vocabulary's order. Grams
// absent from counts are 0; grams absent from the vocabulary are ignored.
func (v *Vocabulary) Project(counts Counts) []float64 {
	if v == nil {
		return nil
	}
	vec := make([]float64, len(v.grams))
	for gram, count := range counts {
		i, ok := v.index[gram]
		if !ok {
			continue
		}
		w := float64(count)
		if v.weights != nil {
			w *= v.weights[i]
		}
		vec[i] = w
	}
	return vec
}

// Weighted returns a copy of the vocabulary whose projections multiply each
// count by its IDF weight. Grams missing from idf keep weight 1.
func (v *Vocabulary) Weighted(idf map[NGram]float64) *Vocabulary {
	if v == nil || len(idf) == 0 {
		return v
	}
	weights := make([]float64, len(v.grams))
	for i, gram := range v.grams {
		weights[i] = 1
		if w, ok := idf[gram]; ok {
			weights[i] = w
		}
	}
	return &Vocabulary{grams: v.grams, index: v.index, weights: weights}
}

// Corpus collects document frequency statistics for IDF computation.
type Corpus struct {
	docCount int
	docFreq  map[NGram]int
}

// NewCorpus creates an empty corpus.
func NewCorpus() *Corpus {
	return &Corpus{docFreq: make(map[NGram]int)}
}

// Add registers the distinct n-grams of one document.
func (c *Corpus) Add(counts Counts) {
	if c == nil || counts == nil {
		return
	}
	c.docCount++
	for gram := range counts {
		c.docFreq[gram]++
	}
}

// Documents returns the number of documents added.
func (c *Corpus) Documents() int {
	if c == nil {
		return 0
	}
	return c.docCount
}

// IDF computes smoothed inverse document frequency weights:
// log((N+1)/(1+df)) + 1, so grams shared by every document keep weight 1.
func (c *Corpus) IDF() map[NGram]float64 {
	if c == nil || c.docCount == 0 {
		return nil
	}
	idf := make(map[NGram]float64, len(c.docFreq))
	n := float64(c.docCount)
	for gram, df := range c.docFreq {
		idf[gram] = math.Log((n+1)/(1+float64(df))) + 1
	}
	return idf
}
