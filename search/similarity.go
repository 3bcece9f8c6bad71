package search

import (
	"math"

	"github.com/poiesic/faqit/core"
)

// CosineSimilarity returns dot(a, b) / (|a| |b|) clamped to [-1, 1].
// It returns 0 when either vector is empty, the lengths differ, either
// norm is zero, or a component is NaN or infinite.
func CosineSimilarity(a, b core.Vector) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}
	if normA == 0 || normB == 0 || !finite(dot) || !finite(normA) || !finite(normB) {
		return 0
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	return max(-1, min(1, sim))
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
