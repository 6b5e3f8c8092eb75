package resource

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// Resource is one leaf of a resource namespace
type Resource struct {
	Path string
	Data []byte
}

// Provider lists the leaves of a resource namespace in traversal order.
type Provider interface {
	List() ([]Resource, error)
}

// ProviderFunc adapts a plain function to the Provider interface
type ProviderFunc func() ([]Resource, error)

// List calls f
func (f ProviderFunc) List() ([]Resource, error) {
	return f()
}

// FSProvider walks an fs.FS (an embed.FS, os.DirFS, ...) in lexical order
type FSProvider struct {
	fsys fs.FS
	root string
}

// NewFSProvider creates a provider listing every regular file below root.
// An empty root means the whole file system.
func NewFSProvider(fsys fs.FS, root string) *FSProvider {
	if root == "" {
		root = "."
	}
	return &FSProvider{fsys: fsys, root: root}
}

// List implements Provider
func (p *FSProvider) List() ([]Resource, error) {
	var resources []Resource

	err := fs.WalkDir(p.fsys, p.root, func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		data, err := fs.ReadFile(p.fsys, filePath)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", filePath, err)
		}

		resources = append(resources, Resource{
			Path: relativeTo(p.root, filePath),
			Data: data,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk resources: %w", err)
	}

	return resources, nil
}

// relativeTo strips root from a walked path so listings start below the root
func relativeTo(root, filePath string) string {
	if root == "." {
		return filePath
	}
	return strings.TrimPrefix(strings.TrimPrefix(filePath, root), "/")
}

// Join builds a namespace path from a mount prefix and a provider-relative path
func Join(prefix, resourcePath string) string {
	if prefix == "" {
		return resourcePath
	}
	return path.Join(prefix, resourcePath)
}
