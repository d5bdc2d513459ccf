package main

import (
	"github.com/spf13/cobra"

	"github.com/tauriforge/cli/internal/cmd"
	"github.com/tauriforge/cli/internal/cmd/module"
	"github.com/tauriforge/cli/internal/config"
	"github.com/tauriforge/cli/internal/output"
	"github.com/tauriforge/cli/internal/version"
)

var (
	// Global flags
	flagProject    string
	flagModulesDir string
	flagConfig     string
	flagVerbose    bool
	flagTimestamps bool
)

// rootCmd is the base command for the tauriforge CLI.
var rootCmd = &cobra.Command{
	Use:   "tauriforge",
	Short: "Tauri desktop-app project generator",
	Long: `tauriforge generates Tauri+web desktop-app skeletons and manages the
optional modules of a generated project.

Module commands toggle features (database, auth, ...) in an existing
project: they track which modules are installed and enabled, enforce
dependency constraints, and keep the generated build artifacts in sync.`,
	PersistentPreRunE: initializeGlobals,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagProject, "project", "p", ".", "path to the generated project root")
	rootCmd.PersistentFlags().StringVar(&flagModulesDir, "modules-dir", "", "modules root directory (env: TAURIFORGE_MODULES_DIR)")
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "path to the tool config file (env: TAURIFORGE_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "increase output verbosity")
	rootCmd.PersistentFlags().BoolVar(&flagTimestamps, "timestamps", false, "show timestamps in log output")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(module.NewModuleCmd())
}

// initializeGlobals loads the tool config and sets up logging.
func initializeGlobals(c *cobra.Command, _ []string) error {
	toolConfig, err := config.NewLoader().LoadWithDefaults(flagConfig)
	if err != nil {
		output.Debug("config load error", "error", err)
		// Commands work without a tool config; fall back to defaults.
		toolConfig = config.DefaultConfig()
	}

	// Timestamps: flag (if explicitly set) > config file > default (off).
	logCfg := output.LogConfig{Verbose: flagVerbose}
	if c.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(flagTimestamps)
	} else if toolConfig.Log.Timestamps != nil {
		logCfg.Timestamps = toolConfig.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	cmd.SetGlobals(cmd.Globals{
		ProjectRoot: flagProject,
		ModulesDir:  flagModulesDir,
		ToolConfig:  toolConfig,
	})

	output.Debug("tauriforge started",
		"version", version.GetInfo().Version,
		"project", flagProject,
		"modulesDir", cmd.GetGlobals().ResolveModulesRoot(),
	)

	return nil
}
