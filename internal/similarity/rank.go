package similarity

import (
	"context"

	"sproct/internal/logging"
	"sproct/internal/script"
)

// SelfSimilaritySums filters speeches to the long ones and returns, for each,
// the sum of its row in the self-similarity matrix, diagonal included. The
// returned speeches line up with the sums.
func (e *Engine) SelfSimilaritySums(ctx context.Context, speeches []script.Speech) ([]script.Speech, []float64, error) {
	m, err := e.Matrix(ctx, speeches, speeches)
	if err != nil {
		return nil, nil, err
	}
	sums := make([]float64, len(m.Scores))
	for i, row := range m.Scores {
		for _, score := range row {
			sums[i] += score
		}
	}
	return m.Rows, sums, nil
}

// MostRepresentative returns the long speech with the highest self-similarity
// sum. Ties go to the earliest speech.
func (e *Engine) MostRepresentative(ctx context.Context, speeches []script.Speech) (script.Speech, float64, error) {
	long, sums, err := e.SelfSimilaritySums(ctx, speeches)
	if err != nil {
		return script.Speech{}, 0, err
	}
	if len(long) == 0 {
		return script.Speech{}, 0, ErrNoLongSpeeches
	}
	best := 0
	for i := 1; i < len(sums); i++ {
		if sums[i] > sums[best] {
			best = i
		}
	}
	logging.WithContext(ctx, e.logger).Debug("representative speech selected",
		logging.String(logging.FieldSpeaker, long[best].Speaker()),
		logging.Int("index", best),
		logging.Float64("sum", sums[best]),
	)
	return long[best], sums[best], nil
}
