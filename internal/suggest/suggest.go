// Package suggest provides "did you mean" fuzzy-matching for diagnostics,
// used when a lookup misses (e.g. node.Get on an unknown path segment).
package suggest

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Best returns the candidate closest to target by normalized, case-folded
// fuzzy rank, and whether any candidate was close enough to suggest.
func Best(target string, candidates []string) (string, bool) {
	if len(candidates) == 0 {
		return "", false
	}

	ranks := fuzzy.RankFindNormalizedFold(target, candidates)
	if len(ranks) == 0 {
		return "", false
	}

	sort.Sort(ranks)
	return ranks[0].Target, true
}
