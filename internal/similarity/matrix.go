package similarity

import "sproct/internal/script"

// Matrix holds cosine scores between the long speeches of two sets.
type Matrix struct {
	Rows   []script.Speech
	Cols   []script.Speech
	Scores [][]float64
}

func newMatrix(rows, cols []script.Speech) *Matrix {
	scores := make([][]float64, len(rows))
	for i := range scores {
		scores[i] = make([]float64, len(cols))
	}
	return &Matrix{Rows: rows, Cols: cols, Scores: scores}
}

// Dims returns the row and column counts.
func (m *Matrix) Dims() (rows, cols int) {
	if m == nil {
		return 0, 0
	}
	return len(m.Rows), len(m.Cols)
}

// At returns the score for row i and column j.
func (m *Matrix) At(i, j int) float64 {
	return m.Scores[i][j]
}

// Pair is one matrix cell worth a closer look.
type Pair struct {
	Row   int     `json:"row" yaml:"row"`
	Col   int     `json:"col" yaml:"col"`
	Score float64 `json:"score" yaml:"score"`
}

// CandidatePairs returns every entry strictly greater than threshold in
// row-major order.
func CandidatePairs(m *Matrix, threshold float64) []Pair {
	if m == nil {
		return nil
	}
	var pairs []Pair
	for i, row := range m.Scores {
		for j, score := range row {
			if score > threshold {
				pairs = append(pairs, Pair{Row: i, Col: j, Score: score})
			}
		}
	}
	return pairs
}
