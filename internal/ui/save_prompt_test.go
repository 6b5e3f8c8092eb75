package ui

import (
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/resource-browser/internal/browser"
)

func TestWithExtension(t *testing.T) {
	tests := []struct {
		path     string
		ext      string
		expected string
	}{
		{"/tmp/out.png", ".png", "/tmp/out.png"},
		{"/tmp/out.PNG", ".png", "/tmp/out.PNG"},
		{"/tmp/out", ".png", "/tmp/out.png"},
		{"/tmp/out.bak", ".png", "/tmp/out.bak"},
		{"/tmp/out", "", "/tmp/out"},
	}

	for _, test := range tests {
		if got := withExtension(test.path, test.ext); got != test.expected {
			t.Errorf("withExtension(%s, %s) = %s, expected %s", test.path, test.ext, got, test.expected)
		}
	}
}

func newTestPrompter(t *testing.T) *FileSavePrompter {
	t.Helper()
	app := test.NewTempApp(t)
	window := app.NewWindow("test")
	t.Cleanup(window.Close)
	return NewFileSavePrompter(window, NewLocalization())
}

func TestNeedsReplaceConfirm(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "play.png")
	if err := os.WriteFile(existing, []byte("old"), 0o644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	tests := []struct {
		chosen   string
		path     string
		expected bool
	}{
		{filepath.Join(dir, "play"), existing, true},
		{existing, existing, false},
		{filepath.Join(dir, "new"), filepath.Join(dir, "new.png"), false},
	}

	for _, test := range tests {
		if got := needsReplaceConfirm(test.chosen, test.path); got != test.expected {
			t.Errorf("needsReplaceConfirm(%s, %s) = %v, expected %v", test.chosen, test.path, got, test.expected)
		}
	}
}

func TestConfirmDestination_NewFile(t *testing.T) {
	prompter := newTestPrompter(t)
	dir := t.TempDir()

	var got []string
	prompter.confirmDestination(filepath.Join(dir, "play"), ".png", func(path string) {
		got = append(got, path)
	})

	expected := filepath.Join(dir, "play.png")
	if len(got) != 1 || got[0] != expected {
		t.Errorf("Expected destination %s, got %v", expected, got)
	}
}

func TestConfirmDestination_AddedExtensionWouldReplace(t *testing.T) {
	prompter := newTestPrompter(t)
	dir := t.TempDir()
	existing := filepath.Join(dir, "play.png")
	if err := os.WriteFile(existing, []byte("old"), 0o644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	called := false
	prompter.confirmDestination(filepath.Join(dir, "play"), ".png", func(string) {
		called = true
	})

	if called {
		t.Error("Expected the export to wait for confirmation")
	}
	if prompter.window.Canvas().Overlays().Top() == nil {
		t.Error("Expected a replace confirmation dialog")
	}

	data, err := os.ReadFile(existing)
	if err != nil || string(data) != "old" {
		t.Errorf("Expected existing file untouched, got %q (%v)", data, err)
	}
}

func TestFileSavePrompter_Caption(t *testing.T) {
	prompter := newTestPrompter(t)

	if got := prompter.caption(browser.SaveRequest{Name: "icons/play.png"}); got != "Save Image Resource - icons/play.png" {
		t.Errorf("Unexpected caption %q", got)
	}
	if got := prompter.caption(browser.SaveRequest{}); got != "Save Image Resource" {
		t.Errorf("Unexpected caption without name %q", got)
	}

	prompter.localization.SetLanguage("pt")
	if got := prompter.caption(browser.SaveRequest{Name: "app/app.ico"}); got != "Salvar Imagem - app/app.ico" {
		t.Errorf("Unexpected Portuguese caption %q", got)
	}
}
