package search

import (
	"math"
	"testing"

	"github.com/poiesic/faqit/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b core.Vector
		want float64
	}{
		{"identical", core.Vector{1, 2, 3}, core.Vector{1, 2, 3}, 1},
		{"scaled", core.Vector{1, 2, 3}, core.Vector{2, 4, 6}, 1},
		{"orthogonal", core.Vector{1, 0}, core.Vector{0, 1}, 0},
		{"opposite", core.Vector{1, 0}, core.Vector{-1, 0}, -1},
		{"empty left", nil, core.Vector{1}, 0},
		{"empty right", core.Vector{1}, core.Vector{}, 0},
		{"zero norm", core.Vector{0, 0}, core.Vector{1, 1}, 0},
		{"length mismatch", core.Vector{1, 0}, core.Vector{1, 0, 0}, 0},
		{"nan component", core.Vector{float32(math.NaN()), 1}, core.Vector{1, 0}, 0},
		{"inf component", core.Vector{float32(math.Inf(1)), 1}, core.Vector{1, 0}, 0},
		{"negative inf query", core.Vector{1, 0}, core.Vector{float32(math.Inf(-1)), 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CosineSimilarity(tt.a, tt.b), 1e-6)
		})
	}
}

func TestCosineSimilarity_SymmetricAndBounded(t *testing.T) {
	vectors := []core.Vector{
		{0.1, 0.9, -0.3},
		{5, -2, 0.5},
		{-1e-3, 1e-3, 7},
		{1e6, 1e6, 1e6},
	}
	for _, a := range vectors {
		for _, b := range vectors {
			ab := CosineSimilarity(a, b)
			ba := CosineSimilarity(b, a)
			assert.Equal(t, ab, ba)
			assert.GreaterOrEqual(t, ab, -1.0)
			assert.LessOrEqual(t, ab, 1.0)
			assert.False(t, math.IsNaN(ab))
		}
	}
}

func entries(n int) []core.FAQEntry {
	out := make([]core.FAQEntry, n)
	for i := range out {
		out[i] = core.FAQEntry{ID: int64(i + 1), Question: "q", Answer: "a"}
	}
	return out
}

func TestRank(t *testing.T) {
	query := core.Vector{1, 0}
	vectors := []core.Vector{
		{0, 1},     // 0.0
		{1, 0},     // 1.0
		nil,        // skipped
		{1, 1},     // ~0.707
		{-1, 0},    // -1.0
		{1, 0.001}, // ~1.0
	}

	matches, err := Rank(query, entries(len(vectors)), vectors, 3)
	require.NoError(t, err)
	require.Len(t, matches, 3)

	assert.Equal(t, int64(2), matches[0].Entry.ID)
	assert.Equal(t, int64(6), matches[1].Entry.ID)
	assert.Equal(t, int64(4), matches[2].Entry.ID)
	assert.GreaterOrEqual(t, matches[0].Similarity, matches[1].Similarity)
	assert.GreaterOrEqual(t, matches[1].Similarity, matches[2].Similarity)
}

func TestRank_NonFiniteVectorScoresZero(t *testing.T) {
	query := core.Vector{1, 0}
	vectors := []core.Vector{
		{0.5, 0.866},
		{float32(math.NaN()), 1},
		{1, 0.1},
	}

	matches, err := Rank(query, entries(len(vectors)), vectors, 3)
	require.NoError(t, err)
	require.Len(t, matches, 3)

	assert.Equal(t, int64(3), matches[0].Entry.ID)
	assert.Equal(t, int64(1), matches[1].Entry.ID)
	assert.Equal(t, int64(2), matches[2].Entry.ID)
	assert.Equal(t, 0.0, matches[2].Similarity)
	for _, m := range matches {
		assert.False(t, math.IsNaN(m.Similarity))
	}
}

func TestRank_TiesKeepCorpusOrder(t *testing.T) {
	vectors := []core.Vector{{1, 0}, {2, 0}, {3, 0}, {4, 0}}

	matches, err := Rank(core.Vector{1, 0}, entries(4), vectors, 10)
	require.NoError(t, err)
	require.Len(t, matches, 4)
	for i, m := range matches {
		assert.Equal(t, int64(i+1), m.Entry.ID)
	}
}

func TestRank_DefaultTopK(t *testing.T) {
	vectors := []core.Vector{{1}, {1}, {1}, {1}, {1}}

	matches, err := Rank(core.Vector{1}, entries(5), vectors, 0)
	require.NoError(t, err)
	assert.Len(t, matches, DefaultTopK)
}

func TestRank_EmptyInputs(t *testing.T) {
	t.Run("empty query", func(t *testing.T) {
		matches, err := Rank(nil, entries(2), []core.Vector{{1}, {1}}, 3)
		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("all vectors empty", func(t *testing.T) {
		matches, err := Rank(core.Vector{1}, entries(2), []core.Vector{nil, {}}, 3)
		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("empty corpus", func(t *testing.T) {
		matches, err := Rank(core.Vector{1}, nil, nil, 3)
		require.NoError(t, err)
		assert.Empty(t, matches)
	})
}

func TestRank_CountMismatch(t *testing.T) {
	_, err := Rank(core.Vector{1}, entries(2), []core.Vector{{1}}, 3)
	assert.ErrorIs(t, err, ErrVectorCountMismatch)
}

func TestRankWithMonitor(t *testing.T) {
	monitor := &CountingMonitor{}
	vectors := []core.Vector{{1, 0}, nil, {0, 1}, {1, 1}}

	matches, err := RankWithMonitor(core.Vector{1, 0}, entries(4), vectors, 1, monitor)
	require.NoError(t, err)

	assert.Len(t, matches, 1)
	assert.Equal(t, 4, monitor.Entries)
	assert.Len(t, monitor.SkippedEntries, 1)
	assert.Equal(t, int64(2), monitor.SkippedEntries[0].ID)
	assert.Len(t, monitor.ScoredMatches, 3, "monitor sees scores beyond top K")
}

func TestClassify(t *testing.T) {
	th := DefaultThresholds()

	tests := []struct {
		top  float64
		want core.Confidence
	}{
		{-0.5, core.ConfidenceLow},
		{0.29, core.ConfidenceLow},
		{0.30, core.ConfidenceMedium},
		{0.50, core.ConfidenceMedium},
		{0.85, core.ConfidenceMedium},
		{0.851, core.ConfidenceHigh},
		{1.0, core.ConfidenceHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.top, th), "top %.3f", tt.top)
	}
}

func TestThresholds_Validate(t *testing.T) {
	assert.NoError(t, DefaultThresholds().Validate())
	assert.NoError(t, Thresholds{Low: 0.35, High: 0.85}.Validate())
	assert.NoError(t, Thresholds{Low: 0.5, High: 0.5}.Validate())

	for _, bad := range []Thresholds{
		{Low: -0.1, High: 0.5},
		{Low: 0.5, High: 1.1},
		{Low: 0.9, High: 0.8},
		{Low: math.NaN(), High: 0.85},
		{Low: 0.3, High: math.NaN()},
	} {
		assert.ErrorIs(t, bad.Validate(), ErrInvalidThresholds)
	}
}

func TestThresholds_Usable(t *testing.T) {
	th := Thresholds{Low: 0.35, High: 0.85}
	assert.False(t, th.Usable(0.349))
	assert.True(t, th.Usable(0.35))
}
