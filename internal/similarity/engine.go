package similarity

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	"sproct/internal/logging"
	"sproct/internal/script"
	"sproct/internal/textutil"
)

const (
	// DefaultMinWords is the token count a speech must strictly exceed to be compared.
	DefaultMinWords = 74
	// DefaultThreshold is the score a pair must strictly exceed to become a candidate.
	DefaultThreshold = 0.1
)

// ErrNoLongSpeeches is returned when ranking a set with nothing above MinWords.
var ErrNoLongSpeeches = errors.New("no speeches above the word threshold")

// Options tune an Engine.
type Options struct {
	MinWords  int
	NGramSize int
	Threshold float64
	// IDF weights every n-gram by its inverse document frequency across both
	// sets. Off, projected values are raw counts.
	IDF bool
}

// DefaultOptions returns the stock comparison settings.
func DefaultOptions() Options {
	return Options{
		MinWords:  DefaultMinWords,
		NGramSize: textutil.DefaultNGramSize,
		Threshold: DefaultThreshold,
	}
}

// Engine computes similarity matrices over speech sets. It holds no mutable
// state and may be shared.
type Engine struct {
	opts   Options
	logger *slog.Logger
}

// NewEngine builds an Engine. Non-positive sizes fall back to defaults.
func NewEngine(opts Options, logger *slog.Logger) *Engine {
	if opts.MinWords < 0 {
		opts.MinWords = DefaultMinWords
	}
	if opts.NGramSize < 1 {
		opts.NGramSize = textutil.DefaultNGramSize
	}
	if opts.Threshold < 0 {
		opts.Threshold = DefaultThreshold
	}
	return &Engine{
		opts:   opts,
		logger: logging.NewComponentLogger(logger, "similarity"),
	}
}

// Options returns the effective settings.
func (e *Engine) Options() Options {
	return e.opts
}

// FilterLong keeps the speeches whose token count strictly exceeds minWords,
// preserving order.
func FilterLong(speeches []script.Speech, minWords int) []script.Speech {
	out := make([]script.Speech, 0, len(speeches))
	for _, sp := range speeches {
		if sp.WordCount() > minWords {
			out = append(out, sp)
		}
	}
	return out
}

// Matrix filters a and b to their long speeches and scores every pair. Rows
// follow a, columns follow b. A cancelled context aborts between rows.
func (e *Engine) Matrix(ctx context.Context, a, b []script.Speech) (*Matrix, error) {
	rows := FilterLong(a, e.opts.MinWords)
	cols := FilterLong(b, e.opts.MinWords)

	rowCounts := e.counts(rows)
	colCounts := e.counts(cols)
	vocab := textutil.BuildVocabulary(rowCounts, colCounts)
	if e.opts.IDF {
		corpus := textutil.NewCorpus()
		for _, counts := range slices.Concat(rowCounts, colCounts) {
			corpus.Add(counts)
		}
		vocab = vocab.Weighted(corpus.IDF())
	}

	rowVecs := project(vocab, rowCounts)
	colVecs := project(vocab, colCounts)

	m := newMatrix(rows, cols)
	for i, rv := range rowVecs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for j, cv := range colVecs {
			m.Scores[i][j] = textutil.CosineSimilarity(rv, cv)
		}
	}

	logging.WithContext(ctx, e.logger).Debug("similarity matrix computed",
		logging.Int("rows", len(rows)),
		logging.Int("cols", len(cols)),
		logging.Int("vocabulary", vocab.Len()),
		logging.Bool("idf", e.opts.IDF),
	)
	return m, nil
}

// Candidates computes the matrix for a and b and returns every pair scoring
// above the engine threshold.
func (e *Engine) Candidates(ctx context.Context, a, b []script.Speech) (*Matrix, []Pair, error) {
	m, err := e.Matrix(ctx, a, b)
	if err != nil {
		return nil, nil, err
	}
	return m, CandidatePairs(m, e.opts.Threshold), nil
}

func (e *Engine) counts(speeches []script.Speech) []textutil.Counts {
	out := make([]textutil.Counts, len(speeches))
	for i, sp := range speeches {
		out[i] = textutil.NGramCounts(sp.Words(), e.opts.NGramSize)
	}
	return out
}

func project(vocab *textutil.Vocabulary, counts []textutil.Counts) [][]float64 {
	out := make([][]float64, len(counts))
	for i, c := range counts {
		out[i] = vocab.Project(c)
	}
	return out
}
