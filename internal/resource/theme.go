package resource

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// ThemeIconNames lists the toolkit icons exposed by ThemeProvider
var ThemeIconNames = []fyne.ThemeIconName{
	theme.IconNameCancel,
	theme.IconNameConfirm,
	theme.IconNameContentCopy,
	theme.IconNameDelete,
	theme.IconNameDocumentSave,
	theme.IconNameError,
	theme.IconNameFile,
	theme.IconNameFileImage,
	theme.IconNameFolder,
	theme.IconNameHome,
	theme.IconNameInfo,
	theme.IconNameMediaPause,
	theme.IconNameMediaPlay,
	theme.IconNameMediaStop,
	theme.IconNameSearch,
	theme.IconNameSettings,
	theme.IconNameViewRefresh,
	theme.IconNameWarning,
}

// ThemeProvider lists the SVG icons bundled with the Fyne toolkit
type ThemeProvider struct {
	theme fyne.Theme
	names []fyne.ThemeIconName
}

// NewThemeProvider creates a provider over the given theme. A nil theme uses
// the toolkit default.
func NewThemeProvider(th fyne.Theme) *ThemeProvider {
	if th == nil {
		th = theme.DefaultTheme()
	}
	return &ThemeProvider{theme: th, names: ThemeIconNames}
}

// List implements Provider
func (p *ThemeProvider) List() ([]Resource, error) {
	resources := make([]Resource, 0, len(p.names))
	for _, name := range p.names {
		res := p.theme.Icon(name)
		if res == nil {
			continue
		}
		resources = append(resources, Resource{
			Path: string(name) + ".svg",
			Data: res.Content(),
		})
	}
	return resources, nil
}
