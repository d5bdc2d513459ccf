// Package config provides tool-level configuration loading and management.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: false. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty" mapstructure:"timestamps"`
}

// Config represents the tauriforge CLI configuration.
// Loaded from ~/.tauriforge/config.yaml with TAURIFORGE_* env overrides.
type Config struct {
	// ModulesDir is the default modules root for projects that keep their
	// module sources outside the project tree.
	// Env: TAURIFORGE_MODULES_DIR. Default: "" (use <project>/modules).
	ModulesDir string `json:"modulesDir,omitempty" mapstructure:"modulesDir"`

	// Log contains logging-related settings.
	Log LogConfig `json:"log,omitempty" mapstructure:"log"`
}

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *Config {
	return &Config{}
}

// WithDefaults returns a copy of the config with defaults applied to unset fields.
func (c *Config) WithDefaults() *Config {
	if c == nil {
		return DefaultConfig()
	}
	out := *c
	return &out
}
