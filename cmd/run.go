/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/termrain/termrain/internal/colors"
	"github.com/termrain/termrain/internal/logging"
	"github.com/termrain/termrain/internal/store"
	"github.com/termrain/termrain/internal/tui"
)

var runRefreshRates string

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the rain animation",
	Long: `Start the full-screen rain animation.

Press "s" inside the animation to open the settings overlay. Edits
preview live; enter saves them, esc discards them. The frame rate is
coerced to the nearest rate in --refresh-rates.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rates, err := parseRefreshRates(runRefreshRates)
		if err != nil {
			return err
		}

		st, err := store.Open()
		if err != nil {
			return fmt.Errorf("failed to open settings store: %w", err)
		}
		defer st.Close()

		// Terminal output helpers would corrupt the alternate screen.
		colors.Silence(true)
		defer colors.Silence(false)

		logging.Info("rain started", "refresh_rates", rates)
		p := tea.NewProgram(tui.NewModel(st, rates), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("animation failed: %w", err)
		}
		return nil
	},
}

// parseRefreshRates parses a comma separated rate list like "30,60,120".
// An empty string means no known rates; the resolver falls back on its own.
func parseRefreshRates(raw string) ([]int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	var rates []int
	for _, part := range strings.Split(raw, ",") {
		rate, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid refresh rate %q: %w", part, err)
		}
		rates = append(rates, rate)
	}
	return rates, nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&runRefreshRates, "refresh-rates", "30,60,120",
		"comma separated refresh rates the display supports")
}
