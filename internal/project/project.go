// Package project locates the fixed, well-known paths of a generated
// tauriforge project and inspects which modules are physically installed.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotAProject indicates the directory is not a generated tauriforge project.
var ErrNotAProject = errors.New("not a tauriforge project")

// Layout fixes the artifact and state locations inside a generated project.
// All paths are derived from the project root; none are configurable, so the
// synchronizer and the inspector always agree on where things live.
type Layout struct {
	// Root is the generated project root.
	Root string
}

// New returns the layout for a project root.
func New(root string) Layout {
	return Layout{Root: root}
}

// ConfigFile is the persisted global module configuration document.
func (l Layout) ConfigFile() string {
	return filepath.Join(l.Root, "modules.config.json")
}

// BackendDir is the Tauri backend source tree.
func (l Layout) BackendDir() string {
	return filepath.Join(l.Root, "src-tauri")
}

// BuildDescriptor is the backend build descriptor (Cargo.toml).
func (l Layout) BuildDescriptor() string {
	return filepath.Join(l.BackendDir(), "Cargo.toml")
}

// ModulesDir is the directory module source trees are copied into.
func (l Layout) ModulesDir() string {
	return filepath.Join(l.BackendDir(), "src", "modules")
}

// ModuleDir is the copied source subtree for a single module.
func (l Layout) ModuleDir(id string) string {
	return filepath.Join(l.ModulesDir(), id)
}

// AggregatorFile is the generated module aggregator source file.
func (l Layout) AggregatorFile() string {
	return filepath.Join(l.ModulesDir(), "mod.rs")
}

// Check verifies the root looks like a generated project.
// The build descriptor is the marker: every generated backend has one.
func (l Layout) Check() error {
	if _, err := os.Stat(l.BuildDescriptor()); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s has no src-tauri/Cargo.toml", ErrNotAProject, l.Root)
		}
		return fmt.Errorf("checking project at %s: %w", l.Root, err)
	}
	return nil
}

// IsInstalled reports whether a module's source subtree is physically present.
// The filesystem is ground truth for "installed"; the config file is ground
// truth for "enabled". The two can drift when users hand-edit the project.
func (l Layout) IsInstalled(id string) bool {
	info, err := os.Stat(l.ModuleDir(id))
	return err == nil && info.IsDir()
}

// InstalledModules returns the set of candidate ids whose source subtrees are
// physically present under the backend modules directory.
func (l Layout) InstalledModules(candidates []string) map[string]bool {
	installed := make(map[string]bool, len(candidates))
	for _, id := range candidates {
		if l.IsInstalled(id) {
			installed[id] = true
		}
	}
	return installed
}
