package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"berichtctl/pkg/config"
	"berichtctl/pkg/exporter"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Generate the Berichtsheft document for a date range",
	Long: `Collect the teaching content for an inclusive date range from the
school portal and write it as an HTML document (or an ICS calendar).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fromStr, _ := cmd.Flags().GetString("from")
		toStr, _ := cmd.Flags().GetString("to")
		output, _ := cmd.Flags().GetString("output")
		format, _ := cmd.Flags().GetString("format")
		timegridPath, _ := cmd.Flags().GetString("timegrid")

		if format != "html" && format != "ics" {
			return fmt.Errorf("unknown format %q, use html or ics", format)
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		r, err := collectRange(cfg, fromStr, toStr, timegridPath)
		if err != nil {
			return err
		}

		if r.Empty() {
			return fmt.Errorf("no lesson content found between %s and %s, nothing written", fromStr, toStr)
		}

		if output == "" {
			name := fmt.Sprintf("berichtsheft_%s_%s.%s", r.From.Format("2006-01-02"), r.To.Format("2006-01-02"), format)
			output = filepath.Join(cfg.OutputDir, name)
		}

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		if format == "ics" {
			err = exporter.GenerateICS(r.Days, file)
		} else {
			err = exporter.GenerateHTML(r, file)
		}
		if err != nil {
			return fmt.Errorf("failed to generate %s: %w", format, err)
		}

		fmt.Printf("Successfully exported %d days to %s\n", len(r.Days), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("from", "f", "", "Start date (inclusive), e.g. 2026-03-02 or 02.03.2026")
	exportCmd.Flags().StringP("to", "t", "", "End date (inclusive)")
	exportCmd.Flags().StringP("output", "o", "", "Output file path (defaults to the configured output directory)")
	exportCmd.Flags().String("format", "html", "Output format: html or ics")
	exportCmd.Flags().String("timegrid", "", "Optional YAML timegrid file overriding the 07:00-18:00 slot range")
	exportCmd.MarkFlagRequired("from")
	exportCmd.MarkFlagRequired("to")
}
