package artifacts

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tauriforge/cli/internal/registry"
)

// CopyModuleTree copies a module's source subtree from its registry directory
// into the project's modules directory. The manifest file itself stays behind;
// everything else is copied verbatim.
func CopyModuleTree(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("reading module source %s: %w", src, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("module source %s is not a directory", src)
	}

	return filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		if rel == registry.ManifestFileName {
			return nil
		}

		target := filepath.Join(dst, rel)
		if info.IsDir() {
			return os.MkdirAll(target, info.Mode().Perm())
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}
		return os.WriteFile(target, data, info.Mode().Perm())
	})
}

// RemoveModuleTree deletes a module's copied subtree. Removing an absent tree
// is not an error; uninstall tolerates manual drift.
func RemoveModuleTree(dst string) error {
	if err := os.RemoveAll(dst); err != nil {
		return fmt.Errorf("removing module tree %s: %w", dst, err)
	}
	return nil
}

// writeFileAtomic writes data to path via a temp file in the same directory
// and an atomic rename. Parent directories are created as needed.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
