// Package modconfig persists the per-project module configuration document.
//
// The document is a single JSON file at the project root mapping module id to
// its entry. It is the source of truth for "enabled"; the filesystem is the
// source of truth for "installed". The file is loaded at the start of a
// command, mutated in memory, and either fully persisted or discarded.
package modconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Entry is the mutable persisted state for one installed module.
type Entry struct {
	// ModuleID is the module this entry belongs to.
	ModuleID string `json:"moduleId"`

	// Enabled drives feature-flag and aggregator generation.
	Enabled bool `json:"enabled"`

	// Config holds the user's values for the module's config schema keys.
	Config map[string]any `json:"config"`

	// DependencyOverrides allows pinning a dependency to a specific source.
	DependencyOverrides map[string]string `json:"dependencyOverrides,omitempty"`
}

// NewEntry returns the entry created when a module is installed.
func NewEntry(id string) *Entry {
	return &Entry{
		ModuleID: id,
		Enabled:  true,
		Config:   make(map[string]any),
	}
}

// GlobalConfig maps module id to its persisted entry.
type GlobalConfig map[string]*Entry

// EnabledIDs returns the ids with enabled=true, sorted.
func (c GlobalConfig) EnabledIDs() []string {
	ids := make([]string, 0, len(c))
	for id, entry := range c {
		if entry != nil && entry.Enabled {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// IsEnabled reports whether the config marks the id enabled.
func (c GlobalConfig) IsEnabled(id string) bool {
	entry, ok := c[id]
	return ok && entry != nil && entry.Enabled
}

// Store reads and writes the global config file.
type Store struct {
	// Path is the config file location (modules.config.json at project root).
	Path string
}

// NewStore creates a store for the given file path.
func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Load reads the config document. A missing file means an empty map, not an
// error: a freshly generated project has no module state yet.
func (s *Store) Load() (GlobalConfig, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return GlobalConfig{}, nil
		}
		return nil, fmt.Errorf("reading module config %s: %w", s.Path, err)
	}

	cfg := GlobalConfig{}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing module config %s: %w", s.Path, err)
	}

	// Backfill ids for entries whose moduleId field drifted from the map key.
	for id, entry := range cfg {
		if entry == nil {
			cfg[id] = NewEntry(id)
			cfg[id].Enabled = false
			continue
		}
		entry.ModuleID = id
		if entry.Config == nil {
			entry.Config = make(map[string]any)
		}
	}

	return cfg, nil
}

// Save overwrites the whole config document. The write goes to a temp file in
// the same directory followed by an atomic rename, so readers never observe a
// partially written document.
func (s *Store) Save(cfg GlobalConfig) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing module config: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.Path)
	tmp, err := os.CreateTemp(dir, ".modules.config-*.json")
	if err != nil {
		return fmt.Errorf("creating temp config file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing module config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing module config: %w", err)
	}

	if err := os.Rename(tmpPath, s.Path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing module config %s: %w", s.Path, err)
	}

	return nil
}
