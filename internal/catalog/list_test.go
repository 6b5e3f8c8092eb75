package catalog

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/ytget/resource-browser/internal/resource"
)

func TestList_Defaults(t *testing.T) {
	list := NewList()

	if list.Len() != 0 || list.Total() != 0 {
		t.Errorf("Expected empty list, got len=%d total=%d", list.Len(), list.Total())
	}
	state := list.FilterState()
	if state.Mode != FilterWildcard {
		t.Errorf("Expected wildcard mode, got %s", state.Mode)
	}
	if !state.CaseSensitive {
		t.Error("Expected case-sensitive matching by default")
	}
}

func TestList_FilterAndMapping(t *testing.T) {
	list := NewList()
	list.SetEntries(sampleEntries())

	list.SetFilterText("foo")
	if list.Len() != 3 {
		t.Fatalf("Expected 3 visible entries, got %d", list.Len())
	}
	if list.Total() != 6 {
		t.Errorf("Filtering must not change the display list, total=%d", list.Total())
	}

	src, ok := list.SourceIndex(1)
	if !ok || src != 3 {
		t.Errorf("Expected view index 1 to map to source 3, got %d (%v)", src, ok)
	}

	entry, ok := list.At(1)
	if !ok || entry.Path != "foo/bar.bmp" {
		t.Errorf("Expected foo/bar.bmp, got %s (%v)", entry.Path, ok)
	}

	if _, ok := list.At(3); ok {
		t.Error("Expected out-of-range view index to fail")
	}
	if _, ok := list.SourceIndex(-1); ok {
		t.Error("Expected negative view index to fail")
	}

	list.SetFilterText("")
	if list.Len() != 6 {
		t.Errorf("Expected all entries after clearing filter, got %d", list.Len())
	}
}

func TestList_ModeAndCase(t *testing.T) {
	list := NewList()
	list.SetEntries(sampleEntries())

	list.SetFilterText("FOO")
	if list.Len() != 0 {
		t.Errorf("Expected no matches, got %d", list.Len())
	}

	list.SetCaseSensitive(false)
	if list.Len() != 3 {
		t.Errorf("Expected 3 matches ignoring case, got %d", list.Len())
	}

	list.SetFilterMode(FilterFuzzy)
	if list.FilterState().Mode != FilterFuzzy {
		t.Errorf("Expected fuzzy mode, got %s", list.FilterState().Mode)
	}

	list.SetFilterMode("bogus")
	if list.FilterState().Mode != FilterWildcard {
		t.Errorf("Unknown mode should fall back to wildcard, got %s", list.FilterState().Mode)
	}
}

func TestList_RefreshKeepsFilter(t *testing.T) {
	list := NewList()
	list.SetFilterText("icons")

	fsys := fstest.MapFS{
		"icons/a.svg": {Data: []byte("<svg/>")},
		"other/b.svg": {Data: []byte("<svg/>")},
	}
	if err := list.Refresh(resource.NewFSProvider(fsys, "")); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if list.Total() != 2 || list.Len() != 1 {
		t.Errorf("Expected total=2 len=1, got total=%d len=%d", list.Total(), list.Len())
	}

	failing := resource.ProviderFunc(func() ([]resource.Resource, error) {
		return nil, errors.New("gone")
	})
	if err := list.Refresh(failing); err == nil {
		t.Fatal("Expected refresh error")
	}
	if list.Total() != 2 {
		t.Errorf("Failed refresh must keep previous entries, total=%d", list.Total())
	}
}

func TestList_EntriesAreCopies(t *testing.T) {
	list := NewList()
	list.SetEntries(sampleEntries())

	entries := list.Entries()
	entries[0].Path = "changed.png"

	if first, _ := list.At(0); first.Path != "icons/play.png" {
		t.Errorf("List entries were modified through Entries(): %s", first.Path)
	}
	if len(list.Visible()) != list.Len() {
		t.Errorf("Visible() length %d does not match Len() %d", len(list.Visible()), list.Len())
	}
}
