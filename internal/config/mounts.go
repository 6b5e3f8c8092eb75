package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ytget/resource-browser/internal/resource"
)

// MountConfig describes one directory mounted into the resource namespace
type MountConfig struct {
	Prefix   string `yaml:"prefix"`
	Path     string `yaml:"path"`
	Optional bool   `yaml:"optional"`
}

// MountsFile is the YAML document listing extra namespace mounts:
//
//	mounts:
//	  - prefix: hicolor
//	    path: /usr/share/icons/hicolor
//	    optional: true
type MountsFile struct {
	Mounts []MountConfig `yaml:"mounts"`
}

// ParseMounts parses and validates a mounts document. Relative paths are
// resolved against baseDir.
func ParseMounts(data []byte, baseDir string) ([]MountConfig, error) {
	var file MountsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse mounts: %w", err)
	}

	seen := make(map[string]bool)
	for i := range file.Mounts {
		m := &file.Mounts[i]
		m.Prefix = strings.Trim(m.Prefix, "/")
		if m.Path == "" {
			return nil, fmt.Errorf("mount %d (%q) has no path", i+1, m.Prefix)
		}
		if seen[m.Prefix] {
			return nil, fmt.Errorf("duplicate mount prefix %q", m.Prefix)
		}
		seen[m.Prefix] = true

		if !filepath.IsAbs(m.Path) && baseDir != "" {
			m.Path = filepath.Join(baseDir, m.Path)
		}
	}

	return file.Mounts, nil
}

// LoadMounts reads a mounts file. Relative mount paths are resolved against
// the file's directory.
func LoadMounts(path string) ([]MountConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mounts file: %w", err)
	}
	return ParseMounts(data, filepath.Dir(path))
}

// MountInto attaches every configured directory to the namespace
func MountInto(ns *resource.Namespace, mounts []MountConfig) {
	for _, m := range mounts {
		ns.Mount(m.Prefix, resource.NewFSProvider(os.DirFS(m.Path), ""), m.Optional)
	}
}
