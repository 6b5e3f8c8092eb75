package config

import (
	"io/fs"

	"fyne.io/fyne/v2"

	"github.com/ytget/resource-browser/internal/resource"
)

// ThemeMountPrefix is where toolkit theme icons appear in the namespace
const ThemeMountPrefix = "theme"

// NamespaceOptions selects what goes into the resource namespace
type NamespaceOptions struct {
	Bundle       fs.FS      // embedded application bundle, mounted at the root
	IncludeTheme bool       // mount toolkit theme icons under ThemeMountPrefix
	Theme        fyne.Theme // theme to list icons from, nil for the default
	MountsFile   string     // optional YAML mounts file
}

// NamespaceOptions fills theme and mounts options from the saved settings
func (s *Settings) NamespaceOptions(bundle fs.FS) NamespaceOptions {
	return NamespaceOptions{
		Bundle:       bundle,
		IncludeTheme: s.GetIncludeThemeIcons(),
		MountsFile:   s.GetMountsFile(),
	}
}

// BuildNamespace assembles the namespace: bundle first, then theme icons,
// then the mounts listed in the mounts file.
func BuildNamespace(opts NamespaceOptions) (*resource.Namespace, error) {
	ns := resource.NewNamespace()

	if opts.Bundle != nil {
		ns.Mount("", resource.NewFSProvider(opts.Bundle, ""), false)
	}
	if opts.IncludeTheme {
		ns.Mount(ThemeMountPrefix, resource.NewThemeProvider(opts.Theme), true)
	}
	if opts.MountsFile != "" {
		mounts, err := LoadMounts(opts.MountsFile)
		if err != nil {
			return nil, err
		}
		MountInto(ns, mounts)
	}

	return ns, nil
}
