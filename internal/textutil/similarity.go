package textutil

import "math"

// CosineSimilarity computes dot(a,b) / (|a|*|b|) for two vectors projected
// onto the same vocabulary. Returns 0 when either vector has zero norm or the
// lengths differ. The result is clamped into [0,1].
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 || dot == 0 {
		return 0
	}
	// Taking one square root of the product keeps cos(v, v) exactly 1 for
	// integer counts.
	sim := dot / math.Sqrt(normA*normB)
	return min(max(sim, 0), 1)
}
