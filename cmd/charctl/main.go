// Package main is the entry point for the charctl CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "charctl",
	Short: "Emberhollow character tool",
	Long:  `charctl manages Emberhollow characters: create them and resolve their effective stats against the compendium.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(resolveCmd)
}
