package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprintOf(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantSame bool
	}{
		{
			name:     "same content produces same fingerprint",
			content:  `{"faqs": []}`,
			wantSame: true,
		},
		{
			name:     "empty source",
			content:  "",
			wantSame: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fp1 := FingerprintOf([]byte(tt.content))
			fp2 := FingerprintOf([]byte(tt.content))

			if tt.wantSame && fp1 != fp2 {
				t.Errorf("FingerprintOf() produced different digests for same content: %s vs %s", fp1, fp2)
			}
		})
	}
}

func TestFingerprintOf_ByteSensitive(t *testing.T) {
	base := FingerprintOf([]byte(`{"faqs": [{"id": 1, "question": "a", "answer": "b"}]}`))

	t.Run("one character differs", func(t *testing.T) {
		other := FingerprintOf([]byte(`{"faqs": [{"id": 1, "question": "a", "answer": "c"}]}`))
		assert.NotEqual(t, base, other)
	})

	t.Run("whitespace only differs", func(t *testing.T) {
		other := FingerprintOf([]byte(`{"faqs":[{"id":1,"question":"a","answer":"b"}]}`))
		assert.NotEqual(t, base, other)
	})
}

func TestFingerprint_String(t *testing.T) {
	fp := FingerprintOf([]byte("hello"))
	s := fp.String()

	assert.Len(t, s, FingerprintSize*2)
	assert.False(t, fp.IsZero())
	assert.True(t, Fingerprint{}.IsZero())
}

func TestNewCacheRecord(t *testing.T) {
	fp := FingerprintOf([]byte("corpus"))
	vectors := []Vector{{1, 0}, nil, {0, 1}}

	record := NewCacheRecord(fp, "openai:text-embedding-3-small", vectors)

	assert.Equal(t, CacheSchemaVersion, record.Version)
	assert.Equal(t, fp, record.Fingerprint)
	assert.Equal(t, 3, record.EntryCount)
	assert.Equal(t, 2, record.Available())
	assert.False(t, record.CreatedAt.IsZero())
}

func TestEmbeddingResult_Available(t *testing.T) {
	assert.True(t, EmbeddingResult{Vector: Vector{0.1}}.Available())
	assert.False(t, EmbeddingResult{}.Available())
	assert.False(t, EmbeddingResult{Vector: Vector{0.1}, Err: assert.AnError}.Available())
}

func TestConfidence_Text(t *testing.T) {
	for _, c := range []Confidence{ConfidenceLow, ConfidenceMedium, ConfidenceHigh} {
		text, err := c.MarshalText()
		require.NoError(t, err)

		var parsed Confidence
		require.NoError(t, parsed.UnmarshalText(text))
		assert.Equal(t, c, parsed)
	}

	_, err := Confidence(0).MarshalText()
	assert.ErrorIs(t, err, ErrInvalidConfidence)

	_, err = ParseConfidence("certain")
	assert.ErrorIs(t, err, ErrInvalidConfidence)
}

func TestConfidence_JSON(t *testing.T) {
	data, err := json.Marshal(map[string]Confidence{"confidence": ConfidenceHigh})
	require.NoError(t, err)
	assert.JSONEq(t, `{"confidence":"high"}`, string(data))
}

func TestAnswerResult_MatchedFAQs(t *testing.T) {
	result := AnswerResult{
		Matches: []RankedMatch{
			{Entry: FAQEntry{ID: 1, Question: "How do I upload a photo?"}, Similarity: 0.9123},
			{Entry: FAQEntry{ID: 2, Question: "Which formats are supported?"}, Similarity: 0.456},
		},
	}

	got := result.MatchedFAQs()
	require.Len(t, got, 2)

	assert.Equal(t, "How do I upload a photo?", got[0].Question)
	assert.InDelta(t, 0.91, got[0].SimilarityFraction, 1e-9)
	assert.Equal(t, 91, got[0].SimilarityPercent)
	assert.InDelta(t, 0.46, got[1].SimilarityFraction, 1e-9)
	assert.Equal(t, 46, got[1].SimilarityPercent)

	assert.Empty(t, AnswerResult{}.MatchedFAQs())
}
