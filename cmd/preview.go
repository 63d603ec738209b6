/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/termrain/termrain/internal/preview"
	"github.com/termrain/termrain/internal/render"
	"github.com/termrain/termrain/internal/store"
)

var (
	previewOut   string
	previewCols  int
	previewRows  int
	previewRates string
)

// previewCmd represents the preview command
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render a PNG snapshot of the rain",
	Long: `Render a PNG snapshot of the rain using the saved settings.

Useful for checking a color or theme change without starting the
full-screen animation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rates, err := parseRefreshRates(previewRates)
		if err != nil {
			return err
		}

		st, err := store.Open()
		if err != nil {
			return fmt.Errorf("failed to open settings store: %w", err)
		}
		defer st.Close()

		params := render.Resolve(st.Settings(), rates)
		if err := preview.WritePNG(previewOut, params, previewCols, previewRows); err != nil {
			return fmt.Errorf("failed to render preview: %w", err)
		}
		ui.Success("Preview written to " + previewOut)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVar(&previewOut, "out", "rain.png", "output PNG path")
	previewCmd.Flags().IntVar(&previewCols, "columns", 120, "frame width in cells")
	previewCmd.Flags().IntVar(&previewRows, "rows", 40, "frame height in cells")
	previewCmd.Flags().StringVar(&previewRates, "refresh-rates", "30,60,120",
		"comma separated refresh rates the display supports")
}
