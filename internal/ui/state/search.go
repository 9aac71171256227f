package state

import (
	"sort"
	"strings"

	"github.com/atomicstack/script-popup/internal/catalog"
	"github.com/sahilm/fuzzy"
)

// Result is one ranked search hit. Indices are the byte offsets of the
// matched characters within Script.Display(), strictly increasing.
type Result struct {
	Script  catalog.Script
	Score   int
	Indices []int
}

// Search is the incremental fuzzy finder over every script in a catalog.
// Results and Autocomplete are derived from the catalog and the query on
// each edit and are never cached across queries.
type Search struct {
	Query        Query
	Results      []Result
	Selected     int
	Autocomplete string

	catalog  *catalog.Catalog
	scripts  []catalog.Script
	displays []string
}

// NewSearch prepares a search over c. The initial result set is the whole
// catalog.
func NewSearch(c *catalog.Catalog) *Search {
	s := &Search{catalog: c}
	if c != nil {
		s.scripts = c.All()
	}
	s.displays = make([]string, len(s.scripts))
	for i, script := range s.scripts {
		s.displays[i] = script.Display()
	}
	s.Reset()
	return s
}

// Reset clears the query and shows every script.
func (s *Search) Reset() {
	s.Query.Reset()
	s.refresh()
}

// Match ranks the catalog against query. An empty query returns every
// script in catalog order with a zero score.
func (s *Search) Match(query string) []Result {
	if query == "" {
		results := make([]Result, len(s.scripts))
		for i, script := range s.scripts {
			results[i] = Result{Script: script}
		}
		return results
	}
	matches := fuzzy.FindNoSort(query, s.displays)
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	results := make([]Result, len(matches))
	for i, match := range matches {
		indices := make([]int, len(match.MatchedIndexes))
		copy(indices, match.MatchedIndexes)
		results[i] = Result{
			Script:  s.scripts[match.Index],
			Score:   match.Score,
			Indices: indices,
		}
	}
	return results
}

// refresh re-runs the match for the current query and resets the selection.
func (s *Search) refresh() {
	query := s.Query.Text()
	s.Results = s.Match(query)
	s.Selected = 0
	s.Autocomplete = suggestion(query, s.Results)
}

func suggestion(query string, results []Result) string {
	if query == "" || len(results) == 0 {
		return ""
	}
	top := results[0].Script.Display()
	if len(top) <= len(query) {
		return ""
	}
	if !strings.HasPrefix(strings.ToLower(top), strings.ToLower(query)) {
		return ""
	}
	return top
}

// Insert types text at the caret and re-runs the search.
func (s *Search) Insert(text string) bool {
	if !s.Query.Insert(text) {
		return false
	}
	s.refresh()
	return true
}

// Backspace deletes the rune before the caret and re-runs the search.
func (s *Search) Backspace() bool {
	if !s.Query.Backspace() {
		return false
	}
	s.refresh()
	return true
}

// DeleteWordBackward deletes the word before the caret and re-runs the search.
func (s *Search) DeleteWordBackward() bool {
	if !s.Query.DeleteWordBackward() {
		return false
	}
	s.refresh()
	return true
}

// CursorLeft moves the caret back and drops the pending suggestion.
func (s *Search) CursorLeft() {
	s.Query.Left()
	s.Autocomplete = ""
}

// CursorRight moves the caret forward. Once the caret is at the end of the
// input a pending suggestion is accepted.
func (s *Search) CursorRight() bool {
	s.Query.Right()
	if s.Query.AtEnd() && s.Autocomplete != "" {
		return s.Accept()
	}
	return false
}

// Accept replaces the query with the pending suggestion and re-runs the
// search. The suggestion slot is empty afterwards.
func (s *Search) Accept() bool {
	if s.Autocomplete == "" {
		return false
	}
	s.Query.SetText(s.Autocomplete)
	s.refresh()
	s.Autocomplete = ""
	return true
}

// Next selects the following result, wrapping to the first.
func (s *Search) Next() {
	if len(s.Results) == 0 {
		return
	}
	s.Selected = (s.Selected + 1) % len(s.Results)
}

// Prev selects the preceding result, wrapping to the last.
func (s *Search) Prev() {
	if len(s.Results) == 0 {
		return
	}
	s.Selected = (s.Selected - 1 + len(s.Results)) % len(s.Results)
}

// Current returns the selected result.
func (s *Search) Current() (Result, bool) {
	if s.Selected < 0 || s.Selected >= len(s.Results) {
		return Result{}, false
	}
	return s.Results[s.Selected], true
}
