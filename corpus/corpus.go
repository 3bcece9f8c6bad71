package corpus

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/poiesic/faqit/core"
)

// Corpus is an immutable, ordered FAQ knowledge base.
type Corpus struct {
	entries     []core.FAQEntry
	raw         []byte
	fingerprint core.Fingerprint
	path        string
}

type document struct {
	FAQs *[]core.FAQEntry `json:"faqs"`
}

// Load reads and parses the corpus at path.
func Load(path string) (*Corpus, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}

	c, err := Parse(raw)
	if err != nil {
		var cerr *Error
		if errors.As(err, &cerr) {
			cerr.Path = path
		}
		return nil, err
	}
	c.path = path
	return c, nil
}

// Parse builds a corpus from raw JSON bytes. The bytes are retained.
func Parse(raw []byte) (*Corpus, error) {
	var doc document
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&doc); err != nil {
		return nil, &Error{Err: fmt.Errorf("malformed json: %w", err)}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &Error{Err: ErrTrailingData}
	}
	if doc.FAQs == nil {
		return nil, &Error{Err: ErrMissingFAQs}
	}

	entries := *doc.FAQs
	for i := range entries {
		if err := core.ValidateEntry(&entries[i]); err != nil {
			return nil, &Error{Err: fmt.Errorf("entry %d: %w", i, err)}
		}
	}

	kept := make([]byte, len(raw))
	copy(kept, raw)
	return &Corpus{
		entries:     entries,
		raw:         kept,
		fingerprint: core.FingerprintOf(kept),
	}, nil
}

// Entries returns the entries in source order. The slice is a copy.
func (c *Corpus) Entries() []core.FAQEntry {
	out := make([]core.FAQEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Entry returns the entry at position i.
func (c *Corpus) Entry(i int) core.FAQEntry {
	return c.entries[i]
}

// Count returns the number of entries.
func (c *Corpus) Count() int {
	return len(c.entries)
}

// EntryByID returns the first entry with the given id.
func (c *Corpus) EntryByID(id int64) (core.FAQEntry, bool) {
	for _, e := range c.entries {
		if e.ID == id {
			return e, true
		}
	}
	return core.FAQEntry{}, false
}

// Questions returns the question texts in source order.
func (c *Corpus) Questions() []string {
	out := make([]string, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Question
	}
	return out
}

// Raw returns the source bytes the corpus was parsed from.
func (c *Corpus) Raw() []byte {
	return c.raw
}

// Fingerprint returns the content hash of Raw.
func (c *Corpus) Fingerprint() core.Fingerprint {
	return c.fingerprint
}

// Path returns the file the corpus was loaded from, if any.
func (c *Corpus) Path() string {
	return c.path
}
