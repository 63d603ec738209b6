/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/termrain/termrain/internal/version"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the termrain version",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println("termrain " + version.String())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
