/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/termrain/termrain/internal/settings"
	"github.com/termrain/termrain/internal/store"
	"github.com/termrain/termrain/internal/symbolset"
)

// setsCmd represents the sets command
var setsCmd = &cobra.Command{
	Use:   "sets",
	Short: "Manage custom symbol sets",
	Long: `Manage custom symbol sets.

Custom sets are stored alongside the other settings and survive a
settings reset. A custom set overrides the built-in symbol set while
it is active; deactivate it to fall back to the built-in selection.`,
}

// withRepository opens the store and hands a symbol set repository to fn.
func withRepository(fn func(r *symbolset.Repository) error) error {
	st, err := store.Open()
	if err != nil {
		return fmt.Errorf("failed to open settings store: %w", err)
	}
	defer st.Close()
	return fn(symbolset.NewRepository(st))
}

// setsListCmd represents the sets list command
var setsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List custom symbol sets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepository(func(r *symbolset.Repository) error {
			sets := r.List()
			if len(sets) == 0 {
				cmd.Println("No custom symbol sets. Create one with \"termrain sets add\".")
				return nil
			}
			active := r.ActiveID()
			for _, set := range sets {
				marker := " "
				if set.ID == active {
					marker = "*"
				}
				cmd.Printf("%s %-36s %-20s %d glyphs\n", marker, set.ID, set.Name, len([]rune(set.Characters)))
			}
			return nil
		})
	},
}

var (
	setsAddName  string
	setsAddChars string
	setsAddFont  string
)

// setsAddCmd represents the sets add command
var setsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a custom symbol set",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepository(func(r *symbolset.Repository) error {
			set, err := r.Create(setsAddName, setsAddChars, setsAddFont)
			if err != nil {
				return err
			}
			ui.Success(fmt.Sprintf("Created %q (%s)", set.Name, set.ID))
			return nil
		})
	},
}

// setsRenameCmd represents the sets rename command
var setsRenameCmd = &cobra.Command{
	Use:   "rename <id> <name>",
	Short: "Rename a custom symbol set",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepository(func(r *symbolset.Repository) error {
			var target settings.CustomSet
			found := false
			for _, set := range r.List() {
				if set.ID == args[0] {
					target = set
					found = true
					break
				}
			}
			if !found {
				return symbolset.ErrSetNotFound
			}
			target.Name = args[1]
			if err := r.Upsert(target); err != nil {
				return err
			}
			ui.Success("Renamed to " + args[1])
			return nil
		})
	},
}

// setsDeleteCmd represents the sets delete command
var setsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a custom symbol set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepository(func(r *symbolset.Repository) error {
			if err := r.Delete(args[0]); err != nil {
				return err
			}
			ui.Success("Deleted " + args[0])
			return nil
		})
	},
}

// setsActivateCmd represents the sets activate command
var setsActivateCmd = &cobra.Command{
	Use:   "activate [id]",
	Short: "Activate a custom symbol set, or none to deactivate",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepository(func(r *symbolset.Repository) error {
			id := ""
			if len(args) == 1 {
				id = args[0]
			}
			if err := r.SetActive(id); err != nil {
				return err
			}
			if id == "" {
				ui.Success("Custom symbol set deactivated")
			} else {
				ui.Success("Activated " + id)
			}
			return nil
		})
	},
}

// setsExportCmd represents the sets export command
var setsExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export custom symbol sets as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepository(func(r *symbolset.Repository) error {
			payload, err := symbolset.ExportJSON(r.List())
			if err != nil {
				return err
			}
			if len(args) == 0 {
				cmd.Println(payload)
				return nil
			}
			if err := os.WriteFile(args[0], []byte(payload+"\n"), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", args[0], err)
			}
			ui.Success("Exported to " + args[0])
			return nil
		})
	},
}

// setsImportCmd represents the sets import command
var setsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import custom symbol sets from a JSON export",
	Long: `Import custom symbol sets from a JSON export.

Imported sets never overwrite existing ones. A set whose id is already
in use comes in as a copy with a fresh id and an "(Imported)" suffix.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		return withRepository(func(r *symbolset.Repository) error {
			added, err := r.ImportAndMerge(string(data))
			if err != nil {
				return err
			}
			ui.Success(fmt.Sprintf("Imported %d symbol set(s)", added))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(setsCmd)
	setsCmd.AddCommand(setsListCmd)
	setsCmd.AddCommand(setsAddCmd)
	setsCmd.AddCommand(setsRenameCmd)
	setsCmd.AddCommand(setsDeleteCmd)
	setsCmd.AddCommand(setsActivateCmd)
	setsCmd.AddCommand(setsExportCmd)
	setsCmd.AddCommand(setsImportCmd)

	setsAddCmd.Flags().StringVar(&setsAddName, "name", "", "display name for the set")
	setsAddCmd.Flags().StringVar(&setsAddChars, "chars", "", "glyphs the set draws from")
	setsAddCmd.Flags().StringVar(&setsAddFont, "font", "", "font file name (defaults to the bundled monospace)")
	_ = setsAddCmd.MarkFlagRequired("name")
}
