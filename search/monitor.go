package search

import "github.com/poiesic/faqit/core"

// RankMonitor provides hooks to observe a ranking pass.
// Implement this interface to inspect every score, not just the top K.
type RankMonitor interface {
	Start(entries int)
	Skipped(entry core.FAQEntry)
	Scored(match core.RankedMatch)
	Finish(matches []core.RankedMatch)
}

// noopMonitor is a no-op implementation of RankMonitor
type noopMonitor struct{}

var _ RankMonitor = noopMonitor{}

func (noopMonitor) Start(_ int)                 {}
func (noopMonitor) Skipped(_ core.FAQEntry)     {}
func (noopMonitor) Scored(_ core.RankedMatch)   {}
func (noopMonitor) Finish(_ []core.RankedMatch) {}

// CountingMonitor tallies what a ranking pass saw.
type CountingMonitor struct {
	Entries        int
	SkippedEntries []core.FAQEntry
	ScoredMatches  []core.RankedMatch
}

var _ RankMonitor = (*CountingMonitor)(nil)

func (c *CountingMonitor) Start(entries int) {
	c.Entries = entries
	c.SkippedEntries = nil
	c.ScoredMatches = nil
}

func (c *CountingMonitor) Skipped(entry core.FAQEntry) {
	c.SkippedEntries = append(c.SkippedEntries, entry)
}

func (c *CountingMonitor) Scored(m core.RankedMatch) {
	c.ScoredMatches = append(c.ScoredMatches, m)
}

func (c *CountingMonitor) Finish(_ []core.RankedMatch) {}
