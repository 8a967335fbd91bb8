package cmd

import (
	"fmt"

	"berichtctl/pkg/config"
	"berichtctl/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage berichtctl configuration",
	Long:  "View or edit your local configuration settings (portal access, output directory, subject renames).",
	RunE: func(cmd *cobra.Command, args []string) error {
		view, _ := cmd.Flags().GetBool("view")
		if view {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			fmt.Println("--- Current Configuration (~/.berichtctl.json) ---")
			fmt.Printf("Server URL:  %s\n", orUnset(cfg.ServerURL))
			fmt.Printf("School:      %s\n", orUnset(cfg.School))
			fmt.Printf("Username:    %s\n", orUnset(cfg.Username))
			if cfg.Password != "" {
				fmt.Println("Password:    (saved)")
			} else {
				fmt.Println("Password:    Not set")
			}
			fmt.Printf("Output dir:  %s\n", orUnset(cfg.OutputDir))
			fmt.Printf("Accent:      %s\n", orUnset(cfg.AccentColor))
			fmt.Printf("Renames:     %d\n", len(cfg.SubjectRenames))
			return nil
		}

		// If no flags are given, launch the interactive TUI flow
		return tui.RunConfigTUI()
	},
}

func orUnset(s string) string {
	if s == "" {
		return "Not set"
	}
	return s
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().BoolP("view", "v", false, "Print the current configuration instead of editing it")
}
