package resource

import (
	"fmt"
	"log"
)

// Mount attaches a provider to the namespace under Prefix
type Mount struct {
	Prefix   string
	Provider Provider
	Optional bool // failures are logged and skipped instead of aborting the listing
}

// Namespace composes several providers into one namespace. Entries of each
// mount appear in mount order, prefixed with the mount prefix.
type Namespace struct {
	mounts []Mount
}

// NewNamespace creates a namespace from the given mounts
func NewNamespace(mounts ...Mount) *Namespace {
	return &Namespace{mounts: mounts}
}

// Mount appends a provider to the namespace
func (n *Namespace) Mount(prefix string, provider Provider, optional bool) {
	n.mounts = append(n.mounts, Mount{Prefix: prefix, Provider: provider, Optional: optional})
}

// Mounts returns the number of mounted providers
func (n *Namespace) Mounts() int {
	return len(n.mounts)
}

// List implements Provider
func (n *Namespace) List() ([]Resource, error) {
	var resources []Resource

	for _, m := range n.mounts {
		listed, err := m.Provider.List()
		if err != nil {
			if m.Optional {
				log.Printf("Skipping mount %q: %v", m.Prefix, err)
				continue
			}
			return nil, fmt.Errorf("failed to list mount %q: %w", m.Prefix, err)
		}

		for _, r := range listed {
			resources = append(resources, Resource{
				Path: Join(m.Prefix, r.Path),
				Data: r.Data,
			})
		}
	}

	return resources, nil
}
