package catalog

import (
	"sort"

	"github.com/sahilm/fuzzy"

	"github.com/ytget/resource-browser/internal/model"
)

// FilterMode selects how search text is matched against resource paths
type FilterMode string

const (
	FilterWildcard FilterMode = "wildcard"
	FilterFuzzy    FilterMode = "fuzzy"
)

// FilterModes returns the available filter modes
func FilterModes() []FilterMode {
	return []FilterMode{FilterWildcard, FilterFuzzy}
}

// FilterState is the active view transform
type FilterState struct {
	Text          string // raw search text as typed
	Mode          FilterMode
	CaseSensitive bool
}

// Pattern returns the wildcard pattern derived from the search text
func (fs FilterState) Pattern() string {
	return SearchPattern(fs.Text)
}

// FilterWildcardPattern returns source indexes of entries whose path matches
// pattern, in source order.
func FilterWildcardPattern(entries []model.ResourceEntry, pattern string, caseSensitive bool) []int {
	p := CompileWildcard(pattern, caseSensitive)

	idx := make([]int, 0, len(entries))
	for i, e := range entries {
		if p.Match(e.Path) {
			idx = append(idx, i)
		}
	}
	return idx
}

// Filter returns source indexes of entries visible under state, in source order
func Filter(entries []model.ResourceEntry, state FilterState) []int {
	if state.Mode == FilterFuzzy && state.Text != "" {
		return filterByFuzzy(entries, state.Text, state.CaseSensitive)
	}
	return FilterWildcardPattern(entries, state.Pattern(), state.CaseSensitive)
}

// filterByFuzzy keeps fuzzy matches but reports them in source order so the
// list does not jump around while typing. fuzzy folds case, so a
// case-sensitive search also requires an exact subsequence match.
func filterByFuzzy(entries []model.ResourceEntry, text string, caseSensitive bool) []int {
	base := make([]string, len(entries))
	for i, e := range entries {
		base[i] = e.Path
	}

	matches := fuzzy.Find(text, base)
	idx := make([]int, 0, len(matches))
	for _, m := range matches {
		if caseSensitive && !isSubsequence(text, m.Str) {
			continue
		}
		idx = append(idx, m.Index)
	}
	sort.Ints(idx)
	return idx
}

// isSubsequence reports whether the runes of text appear in s in order,
// compared exactly
func isSubsequence(text, s string) bool {
	pattern := []rune(text)
	i := 0
	for _, r := range s {
		if i < len(pattern) && r == pattern[i] {
			i++
		}
	}
	return i == len(pattern)
}

// Apply returns the entries visible under state without touching the input slice
func Apply(entries []model.ResourceEntry, state FilterState) []model.ResourceEntry {
	idx := Filter(entries, state)
	out := make([]model.ResourceEntry, len(idx))
	for i, j := range idx {
		out[i] = entries[j]
	}
	return out
}
