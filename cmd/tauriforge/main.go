// Package main is the entry point for the tauriforge CLI.
package main

import (
	"fmt"
	"os"

	"github.com/tauriforge/cli/internal/cmd"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cmd.ExitCodeFromError(err))
	}
}
