// Package registry discovers and parses module manifests from the modules root.
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"

	"github.com/Masterminds/semver/v3"
)

// ManifestFileName is the manifest file inside each module directory.
const ManifestFileName = "module.json"

// idPattern constrains module ids so they are usable verbatim as directory
// names, Cargo feature suffixes, and Rust module identifiers.
var idPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Field types allowed in a manifest config schema.
const (
	FieldBool   = "bool"
	FieldNumber = "number"
	FieldString = "string"
)

// Dependency is a manifest-declared edge to another module.
type Dependency struct {
	// ModuleID is the id of the required module.
	ModuleID string `json:"moduleId"`

	// VersionReq is an optional semver constraint on the required module's
	// manifest version. Empty means any version.
	VersionReq string `json:"versionReq,omitempty"`

	// Optional marks the edge as non-blocking: it is never validated.
	Optional bool `json:"optional,omitempty"`
}

// ConfigField describes one key of a module's config schema.
type ConfigField struct {
	// FieldType is one of bool, number, string.
	FieldType string `json:"fieldType"`

	// Required marks the key as mandatory for a working module.
	Required bool `json:"required,omitempty"`

	// Default is substituted for display when the key is unset.
	Default any `json:"default,omitempty"`

	// Description explains the key to the user.
	Description string `json:"description,omitempty"`
}

// Manifest is the static descriptor for a module. Manifests are immutable
// and loaded fresh on every command invocation.
type Manifest struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Version     string   `json:"version"`
	Category    string   `json:"category,omitempty"`
	Authors     []string `json:"authors,omitempty"`
	License     string   `json:"license,omitempty"`

	// CanDisable is false for protected/core modules that can never be
	// uninstalled by any code path.
	CanDisable bool `json:"canDisable"`

	Dependencies []Dependency           `json:"dependencies,omitempty"`
	Commands     []string               `json:"commands,omitempty"`
	ConfigSchema map[string]ConfigField `json:"configSchema,omitempty"`
	Tags         []string               `json:"tags,omitempty"`
}

// parseManifest decodes and validates a manifest file. dirID is the module
// directory name the manifest id must match.
func parseManifest(path, dirID string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	if err := m.validate(dirID); err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", path, err)
	}

	return &m, nil
}

// validate rejects malformed manifests at load time so later stages never see
// partially-populated objects.
func (m *Manifest) validate(dirID string) error {
	if m.ID == "" {
		return fmt.Errorf("missing id")
	}
	if !idPattern.MatchString(m.ID) {
		return fmt.Errorf("id %q must match %s", m.ID, idPattern.String())
	}
	if dirID != "" && m.ID != dirID {
		return fmt.Errorf("id %q does not match directory name %q", m.ID, dirID)
	}
	if m.Name == "" {
		return fmt.Errorf("module %q: missing name", m.ID)
	}

	for i, dep := range m.Dependencies {
		if dep.ModuleID == "" {
			return fmt.Errorf("module %q: dependencies[%d] missing moduleId", m.ID, i)
		}
		if dep.ModuleID == m.ID {
			return fmt.Errorf("module %q: dependencies[%d] references itself", m.ID, i)
		}
		if dep.VersionReq != "" {
			if _, err := semver.NewConstraint(dep.VersionReq); err != nil {
				return fmt.Errorf("module %q: dependencies[%d] versionReq %q: %w", m.ID, i, dep.VersionReq, err)
			}
		}
	}

	for key, field := range m.ConfigSchema {
		switch field.FieldType {
		case FieldBool, FieldNumber, FieldString:
		default:
			return fmt.Errorf("module %q: configSchema[%q] has unknown fieldType %q", m.ID, key, field.FieldType)
		}
	}

	return nil
}

// SemVersion parses the manifest version as semver. A manifest with a
// non-semver version still loads; dependents with a versionReq against it
// fail their constraint check instead.
func (m *Manifest) SemVersion() (*semver.Version, error) {
	return semver.NewVersion(m.Version)
}
