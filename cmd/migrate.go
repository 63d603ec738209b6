/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/termrain/termrain/internal/config"
	"github.com/termrain/termrain/internal/store"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Import settings from a legacy settings.toml",
	Long: `Import settings from a legacy settings.toml.

Migration normally happens automatically the first time the store is
opened. This command reports what happened, which helps when the
legacy file is malformed. The store only accepts a migration while it
has never been written; after that the legacy file is ignored.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		legacyPath := store.LegacyFilePath()
		if _, err := os.Stat(legacyPath); os.IsNotExist(err) {
			cmd.Println("No legacy settings file at", legacyPath)
			return nil
		}

		st, err := store.OpenBackend(config.Get("storage_backend", config.BackendFile))
		if err != nil {
			return fmt.Errorf("failed to open settings store: %w", err)
		}
		defer st.Close()

		if !st.NeverWritten() {
			cmd.Println("Settings store already has data; legacy file left untouched.")
			return nil
		}
		if err := store.MigrateLegacy(st); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		ui.Success("Migrated legacy settings from " + legacyPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
