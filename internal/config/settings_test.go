package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/resource-browser/internal/catalog"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestExportDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetExportDirectory()
	if dir == "" {
		t.Error("Export directory should not be empty")
	}

	customDir := "/custom/exports"
	settings.SetExportDirectory(customDir)

	if got := settings.GetExportDirectory(); got != customDir {
		t.Errorf("Expected export directory %s, got %s", customDir, got)
	}
}

func TestFilterMode(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if mode := settings.GetFilterMode(); mode != DefaultFilterMode {
		t.Errorf("Expected default filter mode %s, got %s", DefaultFilterMode, mode)
	}

	settings.SetFilterMode(catalog.FilterFuzzy)
	if mode := settings.GetFilterMode(); mode != catalog.FilterFuzzy {
		t.Errorf("Expected filter mode %s, got %s", catalog.FilterFuzzy, mode)
	}

	// Unknown values fall back to the default
	app.Preferences().SetString(KeyFilterMode, "regex")
	if mode := settings.GetFilterMode(); mode != DefaultFilterMode {
		t.Errorf("Expected fallback to %s, got %s", DefaultFilterMode, mode)
	}
}

func TestBoolSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetCaseSensitive() != DefaultCaseSensitive {
		t.Errorf("Expected default case sensitivity %v", DefaultCaseSensitive)
	}
	if settings.GetRevealAfterExport() != DefaultRevealAfterExport {
		t.Errorf("Expected default reveal %v", DefaultRevealAfterExport)
	}
	if settings.GetIncludeThemeIcons() != DefaultThemeIcons {
		t.Errorf("Expected default theme icons %v", DefaultThemeIcons)
	}

	settings.SetCaseSensitive(false)
	settings.SetRevealAfterExport(true)
	settings.SetIncludeThemeIcons(false)

	if settings.GetCaseSensitive() {
		t.Error("Expected case-insensitive after update")
	}
	if !settings.GetRevealAfterExport() {
		t.Error("Expected reveal after export after update")
	}
	if settings.GetIncludeThemeIcons() {
		t.Error("Expected theme icons to be disabled after update")
	}
}

func TestMountsFileSetting(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetMountsFile() != "" {
		t.Errorf("Expected no mounts file by default, got %s", settings.GetMountsFile())
	}

	settings.SetMountsFile("/etc/resbrowser/mounts.yaml")
	if settings.GetMountsFile() != "/etc/resbrowser/mounts.yaml" {
		t.Errorf("Unexpected mounts file %s", settings.GetMountsFile())
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("en")
	if lang := settings.GetLanguage(); lang != "en" {
		t.Errorf("Expected language 'en', got %s", lang)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
