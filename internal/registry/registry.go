package registry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/tauriforge/cli/internal/output"
)

// ErrManifestNotFound indicates no manifest exists for the requested module id.
var ErrManifestNotFound = errors.New("module manifest not found")

// Registry reads module manifests from the modules root. It is a read-only
// view over the filesystem; nothing is cached across invocations.
type Registry struct {
	// Root is the modules root directory. Each subdirectory holding a
	// module.json is a module; the directory name is the module id.
	Root string
}

// New creates a registry over the given modules root.
func New(root string) *Registry {
	return &Registry{Root: root}
}

// ModuleDir returns the source directory for a module id.
func (r *Registry) ModuleDir(id string) string {
	return filepath.Join(r.Root, id)
}

// Discover enumerates the modules root and parses every manifest it finds.
// A directory without a parseable manifest is skipped with a warning, not
// fatal. A missing modules root yields an empty result: a project may simply
// have no modules configured.
func (r *Registry) Discover() ([]*Manifest, error) {
	entries, err := os.ReadDir(r.Root)
	if err != nil {
		if os.IsNotExist(err) {
			output.Debug("modules root does not exist", "root", r.Root)
			return nil, nil
		}
		return nil, fmt.Errorf("reading modules root %s: %w", r.Root, err)
	}

	var manifests []*Manifest
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		id := entry.Name()

		manifestPath := filepath.Join(r.Root, id, ManifestFileName)
		if _, err := os.Stat(manifestPath); err != nil {
			output.Debug("skipping directory without manifest", "dir", id)
			continue
		}

		m, err := parseManifest(manifestPath, id)
		if err != nil {
			output.Warn("skipping module with bad manifest", "module", id, "error", err)
			continue
		}
		manifests = append(manifests, m)
	}

	sort.Slice(manifests, func(i, j int) bool { return manifests[i].ID < manifests[j].ID })
	return manifests, nil
}

// Load looks up a single module's manifest by id.
// Returns ErrManifestNotFound when the module directory or its manifest file
// is absent; that is a normal result the caller reports as "module not found".
func (r *Registry) Load(id string) (*Manifest, error) {
	manifestPath := filepath.Join(r.Root, id, ManifestFileName)
	if _, err := os.Stat(manifestPath); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("module %q: %w", id, ErrManifestNotFound)
		}
		return nil, fmt.Errorf("checking manifest for %q: %w", id, err)
	}

	return parseManifest(manifestPath, id)
}

// IDs returns the discovered module ids in sorted order.
func (r *Registry) IDs() ([]string, error) {
	manifests, err := r.Discover()
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(manifests))
	for _, m := range manifests {
		ids = append(ids, m.ID)
	}
	return ids, nil
}
