package catalog

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Suggest returns up to limit display strings close to query, best first.
// It answers "did you mean" when a name does not resolve.
func (c *Catalog) Suggest(query string, limit int) []string {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || limit <= 0 || c == nil {
		return nil
	}
	all := c.All()
	targets := make([]string, len(all))
	for i, s := range all {
		targets[i] = s.Display()
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, targets)
	if len(ranks) == 0 {
		return typoMatches(all, trimmed, limit)
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})
	if len(ranks) > limit {
		ranks = ranks[:limit]
	}
	out := make([]string, len(ranks))
	for i, rank := range ranks {
		out[i] = rank.Target
	}
	return out
}

// typoMatches compares against bare script names by edit distance, which
// catches transposed letters that are no longer a subsequence.
func typoMatches(all []Script, query string, limit int) []string {
	lower := strings.ToLower(query)
	if _, name, ok := strings.Cut(lower, "/"); ok {
		lower = name
	}
	threshold := len([]rune(lower)) / 3
	if threshold < 2 {
		threshold = 2
	}
	type candidate struct {
		display  string
		distance int
		index    int
	}
	var found []candidate
	for i, s := range all {
		name := strings.ToLower(s.Name)
		d := fuzzy.LevenshteinDistance(lower, name)
		if d2 := fuzzy.LevenshteinDistance(lower, strings.TrimSuffix(name, ScriptExt)); d2 < d {
			d = d2
		}
		if d <= threshold {
			found = append(found, candidate{display: s.Display(), distance: d, index: i})
		}
	}
	sort.SliceStable(found, func(i, j int) bool {
		if found[i].distance != found[j].distance {
			return found[i].distance < found[j].distance
		}
		return found[i].index < found[j].index
	})
	if len(found) > limit {
		found = found[:limit]
	}
	out := make([]string, len(found))
	for i, f := range found {
		out[i] = f.display
	}
	return out
}
