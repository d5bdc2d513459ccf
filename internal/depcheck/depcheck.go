// Package depcheck validates install and uninstall operations against the
// dependency edges declared in module manifests.
//
// Validation is deliberately single-hop: only direct edges of the module
// under change are checked, never transitive chains. Install-time enforcement
// of every module keeps multi-hop chains consistent in practice.
package depcheck

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/tauriforge/cli/internal/modconfig"
	"github.com/tauriforge/cli/internal/registry"
)

// Sentinels for errors.Is checks; the typed errors below carry the ids.
var (
	// ErrDependencyMissing indicates a required module is not installed+enabled.
	ErrDependencyMissing = errors.New("dependency missing")

	// ErrDependencyVersion indicates a required module does not satisfy the
	// declared version constraint.
	ErrDependencyVersion = errors.New("dependency version unsatisfied")

	// ErrProtectedModule indicates the module declares canDisable=false.
	ErrProtectedModule = errors.New("protected module")

	// ErrReverseDependency indicates another enabled module requires this one.
	ErrReverseDependency = errors.New("reverse dependency exists")
)

// DependencyMissingError names the first blocking dependency of an install.
type DependencyMissingError struct {
	// Module is the module being installed.
	Module string

	// Missing is the dependency that is not installed+enabled.
	Missing string
}

func (e *DependencyMissingError) Error() string {
	return fmt.Sprintf("module %q requires %q, which is not installed and enabled", e.Module, e.Missing)
}

func (e *DependencyMissingError) Unwrap() error { return ErrDependencyMissing }

// DependencyVersionError names a dependency whose version does not satisfy
// the declared constraint.
type DependencyVersionError struct {
	// Module is the module being installed.
	Module string

	// Dependency is the required module.
	Dependency string

	// Version is the dependency's manifest version ("unknown" when it cannot
	// be determined).
	Version string

	// Constraint is the declared versionReq.
	Constraint string
}

func (e *DependencyVersionError) Error() string {
	return fmt.Sprintf("module %q requires %q version %q, but %q is installed",
		e.Module, e.Dependency, e.Constraint, e.Version)
}

func (e *DependencyVersionError) Unwrap() error { return ErrDependencyVersion }

// ProtectedModuleError names a module that can never be uninstalled.
type ProtectedModuleError struct {
	Module string
}

func (e *ProtectedModuleError) Error() string {
	return fmt.Sprintf("module %q is protected and cannot be uninstalled", e.Module)
}

func (e *ProtectedModuleError) Unwrap() error { return ErrProtectedModule }

// ReverseDependencyError names the enabled module that blocks an uninstall.
type ReverseDependencyError struct {
	// Module is the module being uninstalled.
	Module string

	// Dependent is the installed+enabled module that requires it.
	Dependent string
}

func (e *ReverseDependencyError) Error() string {
	return fmt.Sprintf("module %q is required by %q; uninstall %q first", e.Module, e.Dependent, e.Dependent)
}

func (e *ReverseDependencyError) Unwrap() error { return ErrReverseDependency }

// ValidateInstall checks that every non-optional dependency of the manifest is
// installed and enabled, and satisfies its version constraint when one is
// declared. The first failing edge is reported. Optional edges are never
// checked.
func ValidateInstall(m *registry.Manifest, cfg modconfig.GlobalConfig, installed map[string]bool, reg *registry.Registry) error {
	for _, dep := range m.Dependencies {
		if dep.Optional {
			continue
		}

		if !installed[dep.ModuleID] || !cfg.IsEnabled(dep.ModuleID) {
			return &DependencyMissingError{Module: m.ID, Missing: dep.ModuleID}
		}

		if dep.VersionReq == "" {
			continue
		}
		if err := checkVersion(m.ID, dep, reg); err != nil {
			return err
		}
	}
	return nil
}

// checkVersion verifies the dependency's manifest version against the edge's
// semver constraint.
func checkVersion(moduleID string, dep registry.Dependency, reg *registry.Registry) error {
	constraint, err := semver.NewConstraint(dep.VersionReq)
	if err != nil {
		// Rejected at manifest load time; kept as a guard for callers that
		// construct manifests directly.
		return fmt.Errorf("module %q: invalid versionReq %q for %q: %w", moduleID, dep.VersionReq, dep.ModuleID, err)
	}

	depManifest, err := reg.Load(dep.ModuleID)
	if err != nil {
		return &DependencyVersionError{
			Module:     moduleID,
			Dependency: dep.ModuleID,
			Version:    "unknown",
			Constraint: dep.VersionReq,
		}
	}

	version, err := depManifest.SemVersion()
	if err != nil || !constraint.Check(version) {
		installedVersion := depManifest.Version
		if installedVersion == "" {
			installedVersion = "unknown"
		}
		return &DependencyVersionError{
			Module:     moduleID,
			Dependency: dep.ModuleID,
			Version:    installedVersion,
			Constraint: dep.VersionReq,
		}
	}

	return nil
}

// ValidateUninstall checks that the module may be removed: it must be
// disableable, and no other installed+enabled module may declare a
// non-optional dependency on it. Manifests are scanned in the (sorted) order
// the registry discovered them, so the reported dependent is deterministic.
func ValidateUninstall(m *registry.Manifest, manifests []*registry.Manifest, cfg modconfig.GlobalConfig, installed map[string]bool) error {
	if !m.CanDisable {
		return &ProtectedModuleError{Module: m.ID}
	}

	for _, other := range manifests {
		if other.ID == m.ID {
			continue
		}
		if !installed[other.ID] || !cfg.IsEnabled(other.ID) {
			continue
		}
		for _, dep := range other.Dependencies {
			if dep.Optional {
				continue
			}
			if dep.ModuleID == m.ID {
				return &ReverseDependencyError{Module: m.ID, Dependent: other.ID}
			}
		}
	}

	return nil
}
