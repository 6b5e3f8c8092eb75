package model

import (
	"path"
	"strings"

	"fyne.io/fyne/v2"
)

// ResourceEntry represents one image resource in the browser list
type ResourceEntry struct {
	Path string        // namespace path, e.g. "icons/play.png"
	Ext  string        // lower-case extension including the dot
	Data []byte        // raw resource bytes as stored in the namespace
	Icon fyne.Resource // preview image drawn next to the path
}

// NewResourceEntry creates an entry for the given path and content
func NewResourceEntry(resourcePath string, data []byte, icon fyne.Resource) ResourceEntry {
	return ResourceEntry{
		Path: resourcePath,
		Ext:  Extension(resourcePath),
		Data: data,
		Icon: icon,
	}
}

// Name returns the base name of the entry without its extension
func (e ResourceEntry) Name() string {
	base := path.Base(e.Path)
	return strings.TrimSuffix(base, path.Ext(base))
}

// FileName returns the base name of the entry including its extension
func (e ResourceEntry) FileName() string {
	return path.Base(e.Path)
}

// Format returns the image format name derived from the extension ("png", "svg", ...)
func (e ResourceEntry) Format() string {
	return strings.TrimPrefix(e.Ext, ".")
}

// Extension returns the lower-case extension of a slash separated path
func Extension(resourcePath string) string {
	return strings.ToLower(path.Ext(resourcePath))
}
