package search

import (
	"fmt"
	"math"

	"github.com/poiesic/faqit/core"
)

// Thresholds bound the medium confidence tier.
type Thresholds struct {
	Low  float64 `yaml:"low" json:"low"`   // Below this no match is used
	High float64 `yaml:"high" json:"high"` // Above this the match is high confidence
}

// DefaultThresholds returns Low 0.30 and High 0.85.
func DefaultThresholds() Thresholds {
	return Thresholds{Low: 0.30, High: 0.85}
}

// Validate requires 0 <= Low <= High <= 1.
func (t Thresholds) Validate() error {
	if math.IsNaN(t.Low) || math.IsNaN(t.High) || t.Low < 0 || t.High > 1 || t.Low > t.High {
		return fmt.Errorf("%w: low %.2f, high %.2f", ErrInvalidThresholds, t.Low, t.High)
	}
	return nil
}

// Classify maps the top similarity to a confidence tier.
func Classify(top float64, t Thresholds) core.Confidence {
	switch {
	case top < t.Low:
		return core.ConfidenceLow
	case top > t.High:
		return core.ConfidenceHigh
	default:
		return core.ConfidenceMedium
	}
}

// Usable reports whether the top similarity clears the low threshold.
func (t Thresholds) Usable(top float64) bool {
	return top >= t.Low
}
