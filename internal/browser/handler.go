package browser

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"github.com/ytget/resource-browser/internal/catalog"
	"github.com/ytget/resource-browser/internal/export"
	"github.com/ytget/resource-browser/internal/model"
	"github.com/ytget/resource-browser/internal/resource"
)

// ErrNoSelection is returned when an action needs a current entry and there is none
var ErrNoSelection = errors.New("no resource selected")

// Handler owns the current selection and runs copy and export for it
type Handler struct {
	list      *catalog.List
	clipboard Clipboard
	prompter  SavePrompter
	exporter  export.Exporter
	reporter  Reporter

	current   *model.ResourceEntry
	exportDir string
	reveal    func(path string) error

	// OnExported is called after a file was written successfully
	OnExported func(task *model.ExportTask)
}

// NewHandler creates a handler working on list
func NewHandler(list *catalog.List, clipboard Clipboard, prompter SavePrompter, exporter export.Exporter, reporter Reporter) *Handler {
	return &Handler{
		list:      list,
		clipboard: clipboard,
		prompter:  prompter,
		exporter:  exporter,
		reporter:  reporter,
	}
}

// List returns the list model the handler selects from
func (h *Handler) List() *catalog.List {
	return h.list
}

// SetExportDir sets the directory the save prompt starts in
func (h *Handler) SetExportDir(dir string) {
	h.exportDir = dir
}

// SetReveal sets the function used to show an exported file in the file
// manager. nil disables revealing.
func (h *Handler) SetReveal(reveal func(path string) error) {
	h.reveal = reveal
}

// Select makes the entry at view index i current. An invalid index clears
// the selection.
func (h *Handler) Select(i int) bool {
	entry, ok := h.list.At(i)
	if !ok {
		h.current = nil
		return false
	}
	h.current = &entry
	return true
}

// SelectPath makes the visible entry with the given path current
func (h *Handler) SelectPath(resourcePath string) error {
	for i := 0; i < h.list.Len(); i++ {
		if entry, _ := h.list.At(i); entry.Path == resourcePath {
			h.current = &entry
			return nil
		}
	}
	h.current = nil
	return fmt.Errorf("%w: %s is not in the list", ErrNoSelection, resourcePath)
}

// ClearSelection drops the current entry
func (h *Handler) ClearSelection() {
	h.current = nil
}

// Current returns the selected entry
func (h *Handler) Current() (model.ResourceEntry, bool) {
	if h.current == nil {
		return model.ResourceEntry{}, false
	}
	return *h.current, true
}

// SetFilterText re-filters the list. The selection is cleared because view
// indexes change.
func (h *Handler) SetFilterText(text string) {
	h.list.SetFilterText(text)
	h.current = nil
}

// Refresh rebuilds the list from provider and clears the selection
func (h *Handler) Refresh(provider resource.Provider) error {
	h.current = nil
	return h.list.Refresh(provider)
}

// Copy puts the current entry's path on the clipboard
func (h *Handler) Copy() bool {
	entry, ok := h.Current()
	if !ok {
		return false
	}
	h.clipboard.SetContent(entry.Path)
	log.Printf("Copied resource path: %s", entry.Path)
	return true
}

// Export prompts for a destination and writes the current entry there in its
// own format. Dismissing the prompt writes nothing.
func (h *Handler) Export() bool {
	entry, ok := h.Current()
	if !ok {
		return false
	}

	req := SaveRequest{
		Name:     entry.Path,
		FileName: export.SuggestFileName(entry),
		Ext:      entry.Ext,
		Dir:      h.exportDir,
	}
	h.prompter.PromptSave(req, func(path string) {
		if path == "" {
			h.exporter.Cancel(entry)
			log.Printf("Operation aborted...")
			return
		}
		h.save(entry, path)
	})
	return true
}

func (h *Handler) save(entry model.ResourceEntry, path string) {
	log.Printf("Saving resource to: %s", path)

	task, err := h.exporter.ExportToFile(entry, path)
	if err != nil {
		if h.reporter != nil {
			h.reporter.ReportError(err)
		}
		return
	}

	h.exportDir = filepath.Dir(path)
	if h.OnExported != nil {
		h.OnExported(task)
	}

	if h.reveal != nil {
		if err := h.reveal(path); err != nil {
			log.Printf("Failed to reveal %s: %v", path, err)
		}
	}
}
