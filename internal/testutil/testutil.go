// Package testutil provides test fixtures for module-management tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// cargoToml is the build descriptor of a freshly generated project. The
// [features] default array is the region the synchronizer rewrites.
const cargoToml = `[package]
name = "app"
version = "0.1.0"
edition = "2021"

[lib]
name = "app_lib"
crate-type = ["staticlib", "cdylib", "rlib"]

[features]
default = []
custom-protocol = ["tauri/custom-protocol"]

[dependencies]
serde = { version = "1", features = ["derive"] }
serde_json = "1"
`

// TempProject creates a minimal generated project (src-tauri tree with a
// Cargo.toml) in a temp directory and returns its root.
func TempProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	srcDir := filepath.Join(root, "src-tauri", "src")
	if err := os.MkdirAll(srcDir, 0o755); err != nil {
		t.Fatalf("creating project tree: %v", err)
	}

	WriteFile(t, root, filepath.Join("src-tauri", "Cargo.toml"), cargoToml)
	return root
}

// ModuleSpec describes a fixture module for WriteModule.
type ModuleSpec struct {
	ID           string
	Version      string
	CanDisable   bool
	Dependencies []map[string]any
	ConfigSchema map[string]any

	// Files maps relative paths to contents; defaults to a single mod.rs.
	Files map[string]string
}

// WriteModule materializes a module (manifest + source files) under the
// modules root.
func WriteModule(t *testing.T, modulesRoot string, spec ModuleSpec) {
	t.Helper()

	version := spec.Version
	if version == "" {
		version = "1.0.0"
	}

	manifest := map[string]any{
		"id":         spec.ID,
		"name":       spec.ID,
		"version":    version,
		"canDisable": spec.CanDisable,
	}
	if spec.Dependencies != nil {
		manifest["dependencies"] = spec.Dependencies
	}
	if spec.ConfigSchema != nil {
		manifest["configSchema"] = spec.ConfigSchema
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		t.Fatalf("marshaling manifest for %s: %v", spec.ID, err)
	}

	dir := filepath.Join(modulesRoot, spec.ID)
	WriteFile(t, dir, "module.json", string(data))

	files := spec.Files
	if files == nil {
		files = map[string]string{"mod.rs": "pub fn init() {}\n"}
	}
	for name, content := range files {
		WriteFile(t, dir, name, content)
	}
}

// Dep builds a dependency entry for ModuleSpec.Dependencies.
func Dep(moduleID, versionReq string, optional bool) map[string]any {
	dep := map[string]any{"moduleId": moduleID}
	if versionReq != "" {
		dep["versionReq"] = versionReq
	}
	if optional {
		dep["optional"] = true
	}
	return dep
}

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// ReadFile reads a file or fails the test.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file %s: %v", path, err)
	}
	return string(data)
}
