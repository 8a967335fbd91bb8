package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "berichtctl",
	Short: "A CLI and TUI for school Berichtshefte",
	Long: `berichtctl is an application for apprentices whose school runs an
Untis-style web portal. It collects the teaching content of a date range
and generates the Berichtsheft document from it.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
