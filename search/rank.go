package search

import (
	"fmt"
	"slices"

	"github.com/poiesic/faqit/core"
)

// DefaultTopK is the number of matches kept when the caller asks for zero.
const DefaultTopK = 3

// Rank scores every entry that has a vector against query and returns the
// best topK matches, similarity descending, ties in corpus order.
// topK <= 0 means DefaultTopK. An empty query yields no matches.
func Rank(query core.Vector, entries []core.FAQEntry, vectors []core.Vector, topK int) ([]core.RankedMatch, error) {
	return RankWithMonitor(query, entries, vectors, topK, nil)
}

// RankWithMonitor is Rank with a monitor observing every scored and skipped entry.
func RankWithMonitor(query core.Vector, entries []core.FAQEntry, vectors []core.Vector, topK int, monitor RankMonitor) ([]core.RankedMatch, error) {
	if monitor == nil {
		monitor = noopMonitor{}
	}
	if len(entries) != len(vectors) {
		return nil, fmt.Errorf("%w: %d entries, %d vectors", ErrVectorCountMismatch, len(entries), len(vectors))
	}
	if topK <= 0 {
		topK = DefaultTopK
	}

	monitor.Start(len(entries))
	if query.Empty() {
		monitor.Finish(nil)
		return nil, nil
	}

	matches := make([]core.RankedMatch, 0, len(entries))
	for i, vec := range vectors {
		if vec.Empty() {
			monitor.Skipped(entries[i])
			continue
		}
		m := core.RankedMatch{Entry: entries[i], Similarity: CosineSimilarity(query, vec)}
		monitor.Scored(m)
		matches = append(matches, m)
	}

	slices.SortStableFunc(matches, func(a, b core.RankedMatch) int {
		switch {
		case a.Similarity > b.Similarity:
			return -1
		case a.Similarity < b.Similarity:
			return 1
		default:
			return 0
		}
	})

	if len(matches) > topK {
		matches = matches[:topK]
	}
	monitor.Finish(matches)
	return matches, nil
}
