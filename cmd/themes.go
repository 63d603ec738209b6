/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/termrain/termrain/internal/settings"
	"github.com/termrain/termrain/internal/store"
	"github.com/termrain/termrain/internal/theme"
)

// themesCmd represents the themes command
var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List and apply theme presets",
}

// themesListCmd represents the themes list command
var themesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in theme presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := store.Open()
		if err != nil {
			return fmt.Errorf("failed to open settings store: %w", err)
		}
		defer st.Close()

		active := st.Settings().ThemePresetID
		for _, p := range theme.Presets() {
			marker := " "
			if p.ID == active {
				marker = "*"
			}
			cmd.Printf("%s %-16s %-18s head %s\n", marker, p.ID, p.Name, theme.HexRGB(p.Colors.Head))
		}
		if active == "" {
			cmd.Println("\nNo preset active; colors come from the individual color settings.")
		}
		return nil
	},
}

// themesApplyCmd represents the themes apply command
var themesApplyCmd = &cobra.Command{
	Use:   "apply <id>",
	Short: "Activate a theme preset, or \"none\" to clear it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		if id == "none" {
			id = ""
		}
		if id != "" && !theme.IsValid(id) {
			return fmt.Errorf("unknown theme preset %q, see \"termrain themes list\"", id)
		}

		st, err := store.Open()
		if err != nil {
			return fmt.Errorf("failed to open settings store: %w", err)
		}
		defer st.Close()

		_, err = st.Update(func(s settings.Settings) settings.Settings {
			return settings.SetThemePresetID(id).Apply(s)
		})
		if err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		if id == "" {
			ui.Success("Theme preset cleared")
		} else {
			ui.Success("Theme preset set to " + theme.Lookup(id).Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themesCmd)
	themesCmd.AddCommand(themesListCmd)
	themesCmd.AddCommand(themesApplyCmd)
}
