package catalog

import (
	"github.com/ytget/resource-browser/internal/model"
	"github.com/ytget/resource-browser/internal/resource"
)

// List is the filterable list model behind the browser view. The display list
// is replaced wholesale on Refresh; the filter only changes the view.
type List struct {
	entries []model.ResourceEntry
	state   FilterState
	view    []int
}

// NewList creates an empty list using wildcard matching
func NewList() *List {
	l := &List{state: FilterState{Mode: FilterWildcard, CaseSensitive: true}}
	l.invalidateFilter()
	return l
}

// Refresh rebuilds the display list from the provider. On error the previous
// entries are kept.
func (l *List) Refresh(provider resource.Provider) error {
	entries, err := Enumerate(provider)
	if err != nil {
		return err
	}
	l.SetEntries(entries)
	return nil
}

// SetEntries replaces the display list and re-applies the active filter
func (l *List) SetEntries(entries []model.ResourceEntry) {
	l.entries = entries
	l.invalidateFilter()
}

// SetFilterText sets the search text and re-evaluates the view
func (l *List) SetFilterText(text string) {
	l.state.Text = text
	l.invalidateFilter()
}

// SetFilterMode switches between wildcard and fuzzy matching
func (l *List) SetFilterMode(mode FilterMode) {
	if mode != FilterFuzzy {
		mode = FilterWildcard
	}
	l.state.Mode = mode
	l.invalidateFilter()
}

// SetCaseSensitive toggles case sensitivity of wildcard matching
func (l *List) SetCaseSensitive(caseSensitive bool) {
	l.state.CaseSensitive = caseSensitive
	l.invalidateFilter()
}

// FilterState returns the active filter
func (l *List) FilterState() FilterState {
	return l.state
}

func (l *List) invalidateFilter() {
	l.view = Filter(l.entries, l.state)
}

// Len returns the number of visible entries
func (l *List) Len() int {
	return len(l.view)
}

// Total returns the number of entries in the display list
func (l *List) Total() int {
	return len(l.entries)
}

// At returns the visible entry at view index i
func (l *List) At(i int) (model.ResourceEntry, bool) {
	src, ok := l.SourceIndex(i)
	if !ok {
		return model.ResourceEntry{}, false
	}
	return l.entries[src], true
}

// SourceIndex maps a view index to its display list index
func (l *List) SourceIndex(i int) (int, bool) {
	if i < 0 || i >= len(l.view) {
		return -1, false
	}
	return l.view[i], true
}

// Entries returns a copy of the display list
func (l *List) Entries() []model.ResourceEntry {
	out := make([]model.ResourceEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Visible returns the entries in view order
func (l *List) Visible() []model.ResourceEntry {
	out := make([]model.ResourceEntry, len(l.view))
	for i, j := range l.view {
		out[i] = l.entries[j]
	}
	return out
}
