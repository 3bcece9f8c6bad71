package core

import (
	"encoding/hex"
	"math"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// CacheSchemaVersion is the layout version written into every CacheRecord.
// Records carrying any other version are treated as absent.
const CacheSchemaVersion uint8 = 1

// FingerprintSize is the length in bytes of a corpus fingerprint.
const FingerprintSize = 32

// Fingerprint is a content hash of the raw corpus source bytes.
// It is byte-based: any change to the source, including whitespace, changes it.
type Fingerprint [FingerprintSize]byte

// FingerprintOf computes the BLAKE2b-256 digest of raw.
func FingerprintOf(raw []byte) Fingerprint {
	h, _ := blake2b.New256(nil)
	h.Write(raw)
	var fp Fingerprint
	copy(fp[:], h.Sum(nil))
	return fp
}

// String renders the fingerprint as lowercase hex.
func (f Fingerprint) String() string {
	return hex.EncodeToString(f[:])
}

// IsZero reports whether the fingerprint was never set.
func (f Fingerprint) IsZero() bool {
	return f == Fingerprint{}
}

// FAQEntry is a single question/answer pair of the knowledge base.
// Entries are immutable once loaded.
type FAQEntry struct {
	ID       int64  `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Vector is an embedding. An empty vector means no embedding is available.
type Vector []float32

// Empty reports whether the vector carries no embedding.
func (v Vector) Empty() bool {
	return len(v) == 0
}

// CacheRecord is the persisted set of corpus embeddings.
// It is written whole and never partially mutated.
type CacheRecord struct {
	Version       uint8
	Fingerprint   Fingerprint
	ModelIdentity string
	EntryCount    int
	Vectors       []Vector // One per corpus entry, in corpus order
	CreatedAt     time.Time
}

// NewCacheRecord builds a record at the current schema version.
func NewCacheRecord(fp Fingerprint, modelIdentity string, vectors []Vector) *CacheRecord {
	return &CacheRecord{
		Version:       CacheSchemaVersion,
		Fingerprint:   fp,
		ModelIdentity: modelIdentity,
		EntryCount:    len(vectors),
		Vectors:       vectors,
		CreatedAt:     time.Now().UTC(),
	}
}

// Available counts the vectors that hold an embedding.
func (r *CacheRecord) Available() int {
	n := 0
	for _, v := range r.Vectors {
		if !v.Empty() {
			n++
		}
	}
	return n
}

// RankedMatch is a corpus entry scored against a query.
type RankedMatch struct {
	Entry      FAQEntry
	Similarity float64 // Cosine similarity in [-1, 1]
}

// Percent returns the similarity as a whole percentage for display.
func (m RankedMatch) Percent() int {
	return int(math.Round(m.Similarity * 100))
}

// EmbeddingResult is the outcome of embedding one text.
// A nil Err with an empty Vector is still unavailable.
type EmbeddingResult struct {
	Vector Vector
	Err    error
}

// Available reports whether the result holds a usable vector.
func (r EmbeddingResult) Available() bool {
	return r.Err == nil && !r.Vector.Empty()
}

// Synthesis is the outcome of answer generation.
// Degraded results carry a fallback text and the cause in Err.
type Synthesis struct {
	Text     string
	Degraded bool
	Err      error
}
