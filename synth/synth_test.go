package synth

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/poiesic/faqit/ai/mock"
	"github.com/poiesic/faqit/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMatches() []core.RankedMatch {
	return []core.RankedMatch{
		{Entry: core.FAQEntry{ID: 1, Question: "How do I upload a photo?", Answer: "Use the upload button."}, Similarity: 0.9123},
		{Entry: core.FAQEntry{ID: 4, Question: "Which formats are supported?", Answer: "JPEG and PNG."}, Similarity: 0.456},
	}
}

func TestBuildContext(t *testing.T) {
	ctx := BuildContext(testMatches(), English)

	assert.True(t, strings.HasPrefix(ctx, English.ContextHeader+"\n\n"))
	assert.Contains(t, ctx, "1. QUESTION: How do I upload a photo?\n   ANSWER: Use the upload button.\n   (similarity: 0.91)")
	assert.Contains(t, ctx, "2. QUESTION: Which formats are supported?")
	assert.Contains(t, ctx, "(similarity: 0.46)")
	assert.Less(t, strings.Index(ctx, "upload a photo"), strings.Index(ctx, "formats"))
}

func TestBuildContext_Polish(t *testing.T) {
	ctx := BuildContext(testMatches()[:1], Polish)

	assert.Contains(t, ctx, "Powiązane pytania i odpowiedzi z bazy FAQ:")
	assert.Contains(t, ctx, "1. PYTANIE: How do I upload a photo?")
	assert.Contains(t, ctx, "ODPOWIEDŹ: Use the upload button.")
	assert.Contains(t, ctx, "(podobieństwo: 0.91)")
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt("Can I upload TIFF?", testMatches(), English)

	assert.Contains(t, prompt, English.ContextHeader)
	assert.Contains(t, prompt, "USER QUESTION:\nCan I upload TIFF?")
	assert.NotContains(t, prompt, "%!")
}

func TestCatalog(t *testing.T) {
	tests := []struct {
		locale string
		want   string
		err    error
	}{
		{"", "en", nil},
		{"en", "en", nil},
		{" PL ", "pl", nil},
		{"de", "", ErrUnknownLocale},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			m, err := Catalog(tt.locale)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Locale)
		})
	}
}

func TestSystemPrompt_GroundsAnswers(t *testing.T) {
	tests := []struct {
		messages    Messages
		contextOnly string
		admitNone   string
	}{
		{English, "only from the FAQ context", "say so honestly"},
		{Polish, "wyłącznie na podstawie", "powiedz o tym szczerze"},
	}

	for _, tt := range tests {
		t.Run(tt.messages.Locale, func(t *testing.T) {
			assert.Contains(t, tt.messages.SystemPrompt, tt.contextOnly)
			assert.Contains(t, tt.messages.SystemPrompt, tt.admitNone)
		})
	}
}

func TestNew_RequiresGenerator(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrGeneratorRequired)
}

func TestSynthesize(t *testing.T) {
	gen := mock.NewMockGenerator().WithReply("  You can upload photos with the upload button.\n", nil)
	s, err := New(gen)
	require.NoError(t, err)

	out := s.Synthesize(context.Background(), "How to upload?", testMatches())

	assert.False(t, out.Degraded)
	assert.NoError(t, out.Err)
	assert.Equal(t, "You can upload photos with the upload button.", out.Text)
	assert.Equal(t, 1, gen.CallCount())

	prompt := gen.LastPrompt()
	assert.Equal(t, English.SystemPrompt, prompt.System)
	assert.Contains(t, prompt.User, "How to upload?")
	assert.Contains(t, prompt.User, "Use the upload button.")
}

func TestSynthesize_Degraded(t *testing.T) {
	t.Run("provider error", func(t *testing.T) {
		gen := mock.NewMockGenerator().WithReply("", errors.New("rate limited"))
		s, err := New(gen, WithMessages(Polish))
		require.NoError(t, err)

		out := s.Synthesize(context.Background(), "q", testMatches())

		assert.True(t, out.Degraded)
		assert.Error(t, out.Err)
		assert.Equal(t, "Przepraszam, wystąpił błąd podczas generowania odpowiedzi: rate limited", out.Text)
	})

	t.Run("empty reply", func(t *testing.T) {
		gen := mock.NewMockGenerator().WithReply("   ", nil)
		s, err := New(gen)
		require.NoError(t, err)

		out := s.Synthesize(context.Background(), "q", testMatches())

		assert.True(t, out.Degraded)
		assert.ErrorIs(t, out.Err, ErrEmptyCompletion)
		assert.True(t, strings.HasPrefix(out.Text, "Sorry, an error occurred"))
	})
}
