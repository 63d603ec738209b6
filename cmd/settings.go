/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/termrain/termrain/internal/config"
	"github.com/termrain/termrain/internal/settings"
	"github.com/termrain/termrain/internal/store"
)

// settingsCmd represents the settings command
var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Inspect and change persisted settings",
	Long: `Inspect and change persisted settings.

Fields are addressed by their wire names, e.g. fallSpeed, targetFps or
headColor. Run "termrain settings get" with no argument to list every
field with its current value. Values outside a field's valid range are
clamped, not rejected.`,
}

// settingsGetCmd represents the settings get command
var settingsGetCmd = &cobra.Command{
	Use:   "get [field]",
	Short: "Print one setting, or all of them",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := store.Open()
		if err != nil {
			return fmt.Errorf("failed to open settings store: %w", err)
		}
		defer st.Close()

		current := st.Settings()
		if len(args) == 1 {
			value, err := settings.FieldValue(current, args[0])
			if err != nil {
				return err
			}
			cmd.Println(value)
			return nil
		}

		for _, field := range settings.FieldNames() {
			value, err := settings.FieldValue(current, field)
			if err != nil {
				return err
			}
			cmd.Printf("%-24s %s\n", field, value)
		}
		return nil
	},
}

// settingsSetCmd represents the settings set command
var settingsSetCmd = &cobra.Command{
	Use:   "set <field> <value>",
	Short: "Change one setting and persist it",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		mutation, err := settings.ParseMutation(args[0], args[1])
		if err != nil {
			return err
		}

		st, err := store.Open()
		if err != nil {
			return fmt.Errorf("failed to open settings store: %w", err)
		}
		defer st.Close()

		saved, err := st.Update(func(s settings.Settings) settings.Settings {
			return mutation.Apply(s)
		})
		if err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}

		// Echo the stored value so clamping is visible.
		value, err := settings.FieldValue(saved, args[0])
		if err != nil {
			return err
		}
		ui.Success(fmt.Sprintf("%s = %s", args[0], value))
		return nil
	},
}

// settingsResetCmd represents the settings reset command
var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset settings to defaults",
	Long: `Reset settings to defaults.

Custom symbol sets are kept; only the rendering and color settings go
back to their default values.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := store.Open()
		if err != nil {
			return fmt.Errorf("failed to open settings store: %w", err)
		}
		defer st.Close()

		_, err = st.Update(func(s settings.Settings) settings.Settings {
			next := settings.Default()
			next.SavedCustomSets = s.SavedCustomSets
			return next
		})
		if err != nil {
			return fmt.Errorf("failed to reset settings: %w", err)
		}
		ui.Success("Settings reset to defaults")
		return nil
	},
}

// settingsPathCmd represents the settings path command
var settingsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings storage location",
	RunE: func(cmd *cobra.Command, args []string) error {
		switch config.Get("storage_backend", config.BackendFile) {
		case config.BackendSQLite:
			cmd.Println(store.SettingsDBPath())
		default:
			cmd.Println(store.SettingsFilePath())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	settingsCmd.AddCommand(settingsPathCmd)
}
