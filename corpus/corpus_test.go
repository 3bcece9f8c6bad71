package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/faqit/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `{
  "faqs": [
    {"id": 1, "question": "How do I upload a photo?", "answer": "Use the upload button on the main page."},
    {"id": 2, "question": "Which formats are supported?", "answer": "JPEG, PNG and GIF."},
    {"id": 2, "question": "Duplicate id", "answer": "Second entry with id 2."}
  ]
}`

func writeCorpus(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "faq.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeCorpus(t, sample)

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, c.Count())
	assert.Equal(t, path, c.Path())
	assert.Equal(t, []byte(sample), c.Raw())
	assert.Equal(t, core.FingerprintOf([]byte(sample)), c.Fingerprint())
	assert.Equal(t, "Which formats are supported?", c.Entry(1).Question)
	assert.Equal(t, []string{
		"How do I upload a photo?",
		"Which formats are supported?",
		"Duplicate id",
	}, c.Questions())
}

func TestEntryByID(t *testing.T) {
	c, err := Parse([]byte(sample))
	require.NoError(t, err)

	e, ok := c.EntryByID(2)
	require.True(t, ok)
	assert.Equal(t, "JPEG, PNG and GIF.", e.Answer, "first match wins")

	_, ok = c.EntryByID(99)
	assert.False(t, ok)
}

func TestEntries_ReturnsCopy(t *testing.T) {
	c, err := Parse([]byte(sample))
	require.NoError(t, err)

	entries := c.Entries()
	entries[0].Question = "mutated"

	assert.Equal(t, "How do I upload a photo?", c.Entry(0).Question)
}

func TestParse_EmptyList(t *testing.T) {
	c, err := Parse([]byte(`{"faqs": []}`))
	require.NoError(t, err)
	assert.Equal(t, 0, c.Count())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"malformed json", `{"faqs": [`, nil},
		{"missing faqs key", `{"questions": []}`, ErrMissingFAQs},
		{"null faqs", `{"faqs": null}`, ErrMissingFAQs},
		{"blank question", `{"faqs": [{"id": 1, "question": " ", "answer": "a"}]}`, core.ErrEmptyQuestion},
		{"missing answer", `{"faqs": [{"id": 1, "question": "q"}]}`, core.ErrEmptyAnswer},
		{"second document", `{"faqs": [{"id": 1, "question": "q", "answer": "a"}]} {"not": "json"`, ErrTrailingData},
		{"trailing garbage", `{"faqs": []} ,`, ErrTrailingData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCorpus(t, tt.content)

			c, err := Load(path)
			require.Error(t, err)
			assert.Nil(t, c)
			assert.ErrorIs(t, err, core.ErrCorpus)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}

			var cerr *Error
			require.True(t, errors.As(err, &cerr))
			assert.Equal(t, path, cerr.Path)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrCorpus)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_TrailingWhitespace(t *testing.T) {
	c, err := Parse([]byte("{\"faqs\": [{\"id\": 1, \"question\": \"q\", \"answer\": \"a\"}]}\n\n  \t"))
	require.NoError(t, err)
	assert.Equal(t, 1, c.Count())
}
