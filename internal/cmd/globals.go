package cmd

import (
	"path/filepath"

	"github.com/tauriforge/cli/internal/config"
)

// Globals carries the resolved global flag and config values from the root
// command to the subcommand groups. Set once during PersistentPreRunE.
type Globals struct {
	// ProjectRoot is the generated project root (--project, default ".").
	ProjectRoot string

	// ModulesDir is the --modules-dir flag value ("" when unset).
	ModulesDir string

	// ToolConfig is the loaded tool-level configuration.
	ToolConfig *config.Config
}

var globals = Globals{ProjectRoot: "."}

// SetGlobals stores the resolved global values.
func SetGlobals(g Globals) {
	if g.ProjectRoot == "" {
		g.ProjectRoot = "."
	}
	globals = g
}

// GetGlobals returns the resolved global values.
func GetGlobals() Globals {
	return globals
}

// ResolveModulesRoot applies the modules-root precedence:
// flag > env/config file (viper merges TAURIFORGE_MODULES_DIR) > <project>/modules.
func (g Globals) ResolveModulesRoot() string {
	if g.ModulesDir != "" {
		return g.ModulesDir
	}
	if g.ToolConfig != nil && g.ToolConfig.ModulesDir != "" {
		if expanded, err := config.ExpandPath(g.ToolConfig.ModulesDir); err == nil {
			return expanded
		}
		return g.ToolConfig.ModulesDir
	}
	return filepath.Join(g.ProjectRoot, "modules")
}
