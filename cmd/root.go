/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/termrain/termrain/internal/config"
	"github.com/termrain/termrain/internal/errors"
	"github.com/termrain/termrain/internal/logging"
	"github.com/termrain/termrain/internal/version"
)

// ui reports command outcomes on the terminal.
var ui errors.ErrorHandler = errors.NewCLIHandler()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "termrain",
	Short: "Digital rain for your terminal.",
	Long: `Digital rain for your terminal.

Runs a configurable falling-glyph animation and persists its settings
across sessions. Start the rain with "termrain run", inspect or change
settings with "termrain settings", and manage symbol sets with
"termrain sets".`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		if err := logging.InitGlobal(); err != nil {
			// Logging is best effort; the command still runs.
			cmd.PrintErrln("warning: logging disabled:", err)
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logging.ShutdownGlobal()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = version.String()
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
}
