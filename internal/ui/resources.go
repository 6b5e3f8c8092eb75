package ui

import (
	"fmt"
	"io/fs"

	"fyne.io/fyne/v2"
)

const (
	AppIconPath = "icons/search.svg"
)

// LoadAppIcon loads the window icon from the resource bundle
func LoadAppIcon(bundle fs.FS) (fyne.Resource, error) {
	data, err := fs.ReadFile(bundle, AppIconPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load app icon: %w", err)
	}
	return fyne.NewStaticResource("resource-browser.svg", data), nil
}
