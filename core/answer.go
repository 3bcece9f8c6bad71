package core

import (
	"fmt"
	"math"
)

// Confidence is the trust tier assigned to the best match.
type Confidence int

const (
	// ConfidenceLow means no usable match was found.
	ConfidenceLow Confidence = iota + 1
	// ConfidenceMedium means the best match is usable but not conclusive.
	ConfidenceMedium
	// ConfidenceHigh means the best match is a near paraphrase.
	ConfidenceHigh
)

// String returns the wire name of the tier.
func (c Confidence) String() string {
	switch c {
	case ConfidenceLow:
		return "low"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceHigh:
		return "high"
	default:
		return fmt.Sprintf("confidence(%d)", int(c))
	}
}

// ParseConfidence converts a wire name back into a Confidence.
func ParseConfidence(s string) (Confidence, error) {
	switch s {
	case "low":
		return ConfidenceLow, nil
	case "medium":
		return ConfidenceMedium, nil
	case "high":
		return ConfidenceHigh, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidConfidence, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Confidence) MarshalText() ([]byte, error) {
	if c < ConfidenceLow || c > ConfidenceHigh {
		return nil, fmt.Errorf("%w: %d", ErrInvalidConfidence, int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Confidence) UnmarshalText(text []byte) error {
	parsed, err := ParseConfidence(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// AnswerResult is what the engine returns for one question.
type AnswerResult struct {
	Answer        string
	Matches       []RankedMatch
	Confidence    Confidence
	TopSimilarity float64
}

// MatchedFAQ is the display form of a RankedMatch.
type MatchedFAQ struct {
	Question           string  `json:"question"`
	SimilarityFraction float64 `json:"similarity_fraction"`
	SimilarityPercent  int     `json:"similarity_percent"`
}

// MatchedFAQs renders the matches for display, rounding the fraction to two
// decimals and the percentage to a whole number.
func (r AnswerResult) MatchedFAQs() []MatchedFAQ {
	out := make([]MatchedFAQ, 0, len(r.Matches))
	for _, m := range r.Matches {
		out = append(out, MatchedFAQ{
			Question:           m.Entry.Question,
			SimilarityFraction: math.Round(m.Similarity*100) / 100,
			SimilarityPercent:  m.Percent(),
		})
	}
	return out
}
