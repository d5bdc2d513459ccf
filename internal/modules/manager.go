// Package modules sequences the user-facing module operations: list, info,
// install, uninstall, configure, and sync.
//
// Every operation loads the registry and the persisted config fresh, mutates
// in memory, and persists once; nothing is cached across invocations. Two
// concurrent invocations against the same project are an unguarded hazard:
// the last config writer wins.
package modules

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/tauriforge/cli/internal/artifacts"
	"github.com/tauriforge/cli/internal/depcheck"
	"github.com/tauriforge/cli/internal/modconfig"
	"github.com/tauriforge/cli/internal/output"
	"github.com/tauriforge/cli/internal/project"
	"github.com/tauriforge/cli/internal/registry"
)

// Manager orchestrates module operations for one generated project.
type Manager struct {
	Layout   project.Layout
	Registry *registry.Registry
	Store    *modconfig.Store
}

// New creates a manager for the project at projectRoot, reading module
// sources from modulesRoot.
func New(projectRoot, modulesRoot string) *Manager {
	layout := project.New(projectRoot)
	return &Manager{
		Layout:   layout,
		Registry: registry.New(modulesRoot),
		Store:    modconfig.NewStore(layout.ConfigFile()),
	}
}

// Result reports the outcome of a mutating operation.
type Result struct {
	// Changed is false for idempotent no-ops (already installed, not installed).
	Changed bool

	// Message is the human-readable outcome.
	Message string
}

// Install copies the module's source tree into the project, records it as
// enabled, and regenerates the derived artifacts.
//
// Ordering: validate, copy source tree, persist config, regenerate artifacts.
// A crash between the last two steps leaves artifacts stale; Sync reconverges
// them from the persisted config.
func (m *Manager) Install(id string) (*Result, error) {
	manifest, err := m.Registry.Load(id)
	if err != nil {
		return nil, err
	}

	if err := m.Layout.Check(); err != nil {
		return nil, err
	}

	if m.Layout.IsInstalled(id) {
		return &Result{Changed: false, Message: fmt.Sprintf("module %q is already installed", id)}, nil
	}

	cfg, err := m.Store.Load()
	if err != nil {
		return nil, err
	}

	installed, err := m.installedSet(cfg)
	if err != nil {
		return nil, err
	}

	if err := depcheck.ValidateInstall(manifest, cfg, installed, m.Registry); err != nil {
		return nil, err
	}

	if err := artifacts.CopyModuleTree(m.Registry.ModuleDir(id), m.Layout.ModuleDir(id)); err != nil {
		return nil, err
	}
	output.Debug("copied module source tree", "module", id, "dst", m.Layout.ModuleDir(id))

	cfg[id] = modconfig.NewEntry(id)
	if err := m.Store.Save(cfg); err != nil {
		return nil, err
	}

	if err := m.regenerate(cfg); err != nil {
		return nil, err
	}

	return &Result{Changed: true, Message: fmt.Sprintf("installed module %q", id)}, nil
}

// Uninstall removes the module's source tree and config entry, then
// regenerates the derived artifacts.
func (m *Manager) Uninstall(id string) (*Result, error) {
	manifest, err := m.Registry.Load(id)
	if err != nil {
		return nil, err
	}

	if err := m.Layout.Check(); err != nil {
		return nil, err
	}

	if !m.Layout.IsInstalled(id) {
		return &Result{Changed: false, Message: fmt.Sprintf("module %q is not installed", id)}, nil
	}

	cfg, err := m.Store.Load()
	if err != nil {
		return nil, err
	}

	manifests, err := m.Registry.Discover()
	if err != nil {
		return nil, err
	}

	installed, err := m.installedSet(cfg)
	if err != nil {
		return nil, err
	}

	if err := depcheck.ValidateUninstall(manifest, manifests, cfg, installed); err != nil {
		return nil, err
	}

	if err := artifacts.RemoveModuleTree(m.Layout.ModuleDir(id)); err != nil {
		return nil, err
	}
	output.Debug("removed module source tree", "module", id)

	delete(cfg, id)
	if err := m.Store.Save(cfg); err != nil {
		return nil, err
	}

	if err := m.regenerate(cfg); err != nil {
		return nil, err
	}

	return &Result{Changed: true, Message: fmt.Sprintf("uninstalled module %q", id)}, nil
}

// Configure sets one config key for an installed module. The key must exist
// in the manifest's config schema and the value must coerce to the declared
// type. Artifacts are untouched: configuration never changes the enabled set.
func (m *Manager) Configure(id, key, rawValue string) error {
	manifest, err := m.Registry.Load(id)
	if err != nil {
		return err
	}

	if !m.Layout.IsInstalled(id) {
		return &NotInstalledError{Module: id}
	}

	field, ok := manifest.ConfigSchema[key]
	if !ok {
		return &ConfigKeyError{Module: id, Key: key}
	}

	value, err := CoerceValue(id, key, field, rawValue)
	if err != nil {
		return err
	}

	cfg, err := m.Store.Load()
	if err != nil {
		return err
	}

	entry, ok := cfg[id]
	if !ok {
		// Installed on disk but unknown to the config: manual drift. Record
		// the value without flipping the module on.
		entry = modconfig.NewEntry(id)
		entry.Enabled = false
		cfg[id] = entry
	}
	entry.Config[key] = value

	return m.Store.Save(cfg)
}

// CoerceValue converts a raw CLI string into the schema's declared type.
func CoerceValue(id, key string, field registry.ConfigField, raw string) (any, error) {
	switch field.FieldType {
	case registry.FieldBool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, &CoercionError{Module: id, Key: key, Value: raw, FieldType: field.FieldType}
		}
		return v, nil
	case registry.FieldNumber:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, &CoercionError{Module: id, Key: key, Value: raw, FieldType: field.FieldType}
		}
		return v, nil
	case registry.FieldString:
		return raw, nil
	default:
		// Rejected at manifest load time; kept as a guard.
		return nil, &CoercionError{Module: id, Key: key, Value: raw, FieldType: field.FieldType}
	}
}

// List returns a status row for every module the registry, the config file,
// or the filesystem knows about. Ids present in only one of the three (manual
// drift) still appear.
func (m *Manager) List() ([]ModuleStatus, error) {
	manifests, err := m.Registry.Discover()
	if err != nil {
		return nil, err
	}

	cfg, err := m.Store.Load()
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*registry.Manifest, len(manifests))
	ids := make(map[string]bool, len(manifests))
	for _, manifest := range manifests {
		byID[manifest.ID] = manifest
		ids[manifest.ID] = true
	}
	for id := range cfg {
		ids[id] = true
	}

	ordered := make([]string, 0, len(ids))
	for id := range ids {
		ordered = append(ordered, id)
	}
	sort.Strings(ordered)

	rows := make([]ModuleStatus, 0, len(ordered))
	for _, id := range ordered {
		row := ModuleStatus{
			ID:     id,
			Status: Classify(m.Layout.IsInstalled(id), cfg.IsEnabled(id)),
		}
		if manifest, ok := byID[id]; ok {
			row.HasManifest = true
			row.Version = manifest.Version
			row.Category = manifest.Category
			for _, dep := range manifest.Dependencies {
				row.Dependencies = append(row.Dependencies, dep.ModuleID)
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// Info describes one module: manifest metadata, current status, and the
// effective config with schema defaults substituted where unset.
type Info struct {
	Manifest *registry.Manifest `json:"manifest"`
	Status   Status             `json:"status"`

	// Config maps each schema key to its effective value.
	Config map[string]any `json:"config,omitempty"`
}

// Info returns the full description of a module.
func (m *Manager) Info(id string) (*Info, error) {
	manifest, err := m.Registry.Load(id)
	if err != nil {
		return nil, err
	}

	cfg, err := m.Store.Load()
	if err != nil {
		return nil, err
	}

	effective := make(map[string]any, len(manifest.ConfigSchema))
	var entry *modconfig.Entry
	if e, ok := cfg[id]; ok {
		entry = e
	}
	for key, field := range manifest.ConfigSchema {
		if entry != nil {
			if v, ok := entry.Config[key]; ok {
				effective[key] = v
				continue
			}
		}
		effective[key] = field.Default
	}

	return &Info{
		Manifest: manifest,
		Status:   Classify(m.Layout.IsInstalled(id), cfg.IsEnabled(id)),
		Config:   effective,
	}, nil
}

// Sync recomputes the feature-flag list and the aggregator file from the
// persisted config. Per-module source trees are untouched: sync repairs the
// two generated files after manual edits or a crash, it does not install or
// uninstall anything.
func (m *Manager) Sync() error {
	if err := m.Layout.Check(); err != nil {
		return err
	}

	cfg, err := m.Store.Load()
	if err != nil {
		return err
	}

	return m.regenerate(cfg)
}

// Drift reports which artifacts differ from what the persisted config would
// generate.
type Drift struct {
	Features   bool
	Aggregator bool
}

// InSync reports whether neither artifact drifted.
func (d Drift) InSync() bool {
	return !d.Features && !d.Aggregator
}

// SyncCheck compares both artifacts against the persisted config without
// writing anything.
func (m *Manager) SyncCheck() (*Drift, error) {
	if err := m.Layout.Check(); err != nil {
		return nil, err
	}

	cfg, err := m.Store.Load()
	if err != nil {
		return nil, err
	}
	enabled := cfg.EnabledIDs()

	featuresOK, err := artifacts.CheckFeatures(m.Layout.BuildDescriptor(), enabled)
	if err != nil {
		return nil, err
	}

	aggregatorOK, err := artifacts.CheckAggregator(m.Layout.AggregatorFile(), enabled)
	if err != nil {
		return nil, err
	}

	return &Drift{Features: !featuresOK, Aggregator: !aggregatorOK}, nil
}

// regenerate rewrites both derived artifacts from the config's enabled set.
func (m *Manager) regenerate(cfg modconfig.GlobalConfig) error {
	enabled := cfg.EnabledIDs()

	if err := artifacts.SyncFeatures(m.Layout.BuildDescriptor(), enabled); err != nil {
		return err
	}
	if err := artifacts.SyncAggregator(m.Layout.AggregatorFile(), enabled); err != nil {
		return err
	}

	output.Debug("regenerated artifacts", "enabled", enabled)
	return nil
}

// installedSet returns physical presence for every id the registry or the
// config knows about.
func (m *Manager) installedSet(cfg modconfig.GlobalConfig) (map[string]bool, error) {
	ids, err := m.Registry.IDs()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(ids)+len(cfg))
	for _, id := range ids {
		seen[id] = true
	}
	for id := range cfg {
		seen[id] = true
	}

	candidates := make([]string, 0, len(seen))
	for id := range seen {
		candidates = append(candidates, id)
	}
	return m.Layout.InstalledModules(candidates), nil
}
