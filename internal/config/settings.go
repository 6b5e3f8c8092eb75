package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/resource-browser/internal/catalog"
	"github.com/ytget/resource-browser/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyExportDir         = "export_directory"
	KeyFilterMode        = "filter_mode"
	KeyCaseSensitive     = "case_sensitive"
	KeyRevealAfterExport = "reveal_after_export"
	KeyLanguage          = "app_language"
	KeyMountsFile        = "mounts_file"
	KeyThemeIcons        = "include_theme_icons"
)

// Default values
const (
	DefaultFilterMode        = catalog.FilterWildcard
	DefaultCaseSensitive     = true
	DefaultRevealAfterExport = false
	DefaultLanguage          = "system"
	DefaultThemeIcons        = true
	FallbackExportDir        = "/tmp/exports"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetExportDirectory returns the directory the save prompt starts in
func (s *Settings) GetExportDirectory() string {
	dir := s.app.Preferences().String(KeyExportDir)
	if dir == "" {
		defaultDir, err := platform.GetDefaultExportDir()
		if err != nil {
			defaultDir = FallbackExportDir
		}
		s.SetExportDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetExportDirectory sets the export directory
func (s *Settings) SetExportDirectory(dir string) {
	s.app.Preferences().SetString(KeyExportDir, dir)
}

// GetFilterMode returns how search text is matched
func (s *Settings) GetFilterMode() catalog.FilterMode {
	mode := catalog.FilterMode(s.app.Preferences().String(KeyFilterMode))
	for _, m := range catalog.FilterModes() {
		if m == mode {
			return mode
		}
	}
	s.SetFilterMode(DefaultFilterMode)
	return DefaultFilterMode
}

// SetFilterMode sets the filter mode
func (s *Settings) SetFilterMode(mode catalog.FilterMode) {
	s.app.Preferences().SetString(KeyFilterMode, string(mode))
}

// GetFilterModeOptions returns available filter modes
func (s *Settings) GetFilterModeOptions() []catalog.FilterMode {
	return catalog.FilterModes()
}

// GetCaseSensitive returns whether wildcard matching is case-sensitive
func (s *Settings) GetCaseSensitive() bool {
	return s.app.Preferences().BoolWithFallback(KeyCaseSensitive, DefaultCaseSensitive)
}

// SetCaseSensitive sets case sensitivity of wildcard matching
func (s *Settings) SetCaseSensitive(caseSensitive bool) {
	s.app.Preferences().SetBool(KeyCaseSensitive, caseSensitive)
}

// GetRevealAfterExport returns whether exported files are shown in the file manager
func (s *Settings) GetRevealAfterExport() bool {
	return s.app.Preferences().BoolWithFallback(KeyRevealAfterExport, DefaultRevealAfterExport)
}

// SetRevealAfterExport sets whether exported files are shown in the file manager
func (s *Settings) SetRevealAfterExport(reveal bool) {
	s.app.Preferences().SetBool(KeyRevealAfterExport, reveal)
}

// GetIncludeThemeIcons returns whether toolkit theme icons are listed
func (s *Settings) GetIncludeThemeIcons() bool {
	return s.app.Preferences().BoolWithFallback(KeyThemeIcons, DefaultThemeIcons)
}

// SetIncludeThemeIcons sets whether toolkit theme icons are listed
func (s *Settings) SetIncludeThemeIcons(include bool) {
	s.app.Preferences().SetBool(KeyThemeIcons, include)
}

// GetMountsFile returns the YAML mounts file, empty if none
func (s *Settings) GetMountsFile() string {
	return s.app.Preferences().String(KeyMountsFile)
}

// SetMountsFile sets the YAML mounts file
func (s *Settings) SetMountsFile(path string) {
	s.app.Preferences().SetString(KeyMountsFile, path)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
