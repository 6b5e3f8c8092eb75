package ui

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"github.com/ytget/resource-browser/internal/browser"
	"github.com/ytget/resource-browser/internal/platform"
)

// FileSavePrompter asks for an export destination with the Fyne save dialog
type FileSavePrompter struct {
	window       fyne.Window
	localization *Localization
}

// NewFileSavePrompter creates a save prompt bound to window
func NewFileSavePrompter(window fyne.Window, localization *Localization) *FileSavePrompter {
	return &FileSavePrompter{window: window, localization: localization}
}

// PromptSave implements browser.SavePrompter
func (p *FileSavePrompter) PromptSave(req browser.SaveRequest, done func(path string)) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, p.window)
			done("")
			return
		}
		if writer == nil {
			done("")
			return
		}

		path := writer.URI().Path()
		writer.Close()
		// The dialog creates the file up front. Drop the empty placeholder so
		// the destination only appears once the export is complete.
		if err := os.Remove(path); err != nil {
			log.Printf("Failed to remove placeholder %s: %v", path, err)
		}

		p.confirmDestination(path, req.Ext, done)
	}, p.window)

	d.SetTitleText(p.caption(req))
	d.SetFileName(req.FileName)
	if req.Ext != "" {
		d.SetFilter(storage.NewExtensionFileFilter([]string{req.Ext}))
	}
	if req.Dir != "" {
		if err := platform.CreateDirectoryIfNotExists(req.Dir); err != nil {
			log.Printf("Failed to create export directory %s: %v", req.Dir, err)
		}
		if lister, err := storage.ListerForURI(storage.NewFileURI(req.Dir)); err == nil {
			d.SetLocation(lister)
		}
	}
	d.Resize(fyne.NewSize(SaveDialogWidth, SaveDialogHeight))
	d.Show()
}

// caption names the resource in the dialog title
func (p *FileSavePrompter) caption(req browser.SaveRequest) string {
	title := p.localization.GetText(KeySaveResource)
	if req.Name == "" {
		return title
	}
	return fmt.Sprintf("%s - %s", title, req.Name)
}

// confirmDestination adds the extension to chosen and asks before replacing a
// file the save dialog did not check, which happens when the extension was added.
func (p *FileSavePrompter) confirmDestination(chosen, ext string, done func(path string)) {
	path := withExtension(chosen, ext)
	if !needsReplaceConfirm(chosen, path) {
		done(path)
		return
	}

	text := p.localization.GetText
	dialog.ShowConfirm(text(KeyReplaceFile), fmt.Sprintf(text(KeyReplaceFileQuery), filepath.Base(path)), func(replace bool) {
		if !replace {
			done("")
			return
		}
		done(path)
	}, p.window)
}

// needsReplaceConfirm reports whether path differs from the name the user
// confirmed and already exists
func needsReplaceConfirm(chosen, path string) bool {
	if path == chosen {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// withExtension appends ext when the user typed a name without one
func withExtension(path, ext string) string {
	if ext == "" || strings.EqualFold(filepath.Ext(path), ext) {
		return path
	}
	if filepath.Ext(path) == "" {
		return path + ext
	}
	return path
}

// DialogReporter shows export errors in an error dialog
type DialogReporter struct {
	window fyne.Window
}

// NewDialogReporter creates a reporter bound to window
func NewDialogReporter(window fyne.Window) *DialogReporter {
	return &DialogReporter{window: window}
}

// ReportError implements browser.Reporter
func (r *DialogReporter) ReportError(err error) {
	dialog.ShowError(err, r.window)
}
