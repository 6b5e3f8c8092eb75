package catalog

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/resource-browser/internal/imaging"
	"github.com/ytget/resource-browser/internal/model"
	"github.com/ytget/resource-browser/internal/resource"
)

// AllowedExtensions lists the image extensions shown in the browser
var AllowedExtensions = []string{".png", ".ico", ".svg", ".bmp", ".cur"}

// IsAllowed reports whether the path carries an allow-listed extension (case-insensitive)
func IsAllowed(resourcePath string) bool {
	ext := model.Extension(resourcePath)
	for _, allowed := range AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// Enumerate lists the provider and builds one entry per allow-listed resource,
// preserving traversal order. An empty namespace yields an empty list.
func Enumerate(provider resource.Provider) ([]model.ResourceEntry, error) {
	resources, err := provider.List()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate resources: %w", err)
	}

	entries := make([]model.ResourceEntry, 0, len(resources))
	for _, r := range resources {
		if !IsAllowed(r.Path) {
			continue
		}
		entries = append(entries, model.NewResourceEntry(r.Path, r.Data, iconFor(r)))
	}

	log.Printf("Enumerated %d image resources out of %d", len(entries), len(resources))
	return entries, nil
}

// iconFor builds a preview resource the toolkit can draw
func iconFor(r resource.Resource) fyne.Resource {
	ext := model.Extension(r.Path)
	switch ext {
	case imaging.ExtPNG, imaging.ExtSVG:
		return fyne.NewStaticResource(r.Path, r.Data)
	}

	thumb, err := imaging.Thumbnail(ext, r.Data)
	if err != nil {
		log.Printf("No preview for %s: %v", r.Path, err)
		return theme.FileImageIcon()
	}
	return fyne.NewStaticResource(r.Path+imaging.ExtPNG, thumb)
}
