package cmd

import (
	"fmt"

	"berichtctl/pkg/config"
	"berichtctl/pkg/report"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the collected report to the terminal",
	Long:  `Collect the teaching content for a date range and print it styled to the terminal instead of writing a file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fromStr, _ := cmd.Flags().GetString("from")
		toStr, _ := cmd.Flags().GetString("to")
		timegridPath, _ := cmd.Flags().GetString("timegrid")

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		r, err := collectRange(cfg, fromStr, toStr, timegridPath)
		if err != nil {
			return err
		}

		if r.Empty() {
			return fmt.Errorf("no lesson content found between %s and %s", fromStr, toStr)
		}

		printReport(r, cfg.AccentColor)
		return nil
	},
}

func printReport(r *report.Report, accentColor string) {
	if accentColor == "" {
		accentColor = "99"
	}

	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(accentColor)).Bold(true).Padding(1, 0)
	weekStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(accentColor)).Bold(true).Underline(true)
	dayStyle := lipgloss.NewStyle().Bold(true)
	subjectStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(accentColor))
	missingStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	fmt.Println(titleStyle.Render(fmt.Sprintf("Berichtsheft %s - %s", r.From.Format("02.01.2006"), r.To.Format("02.01.2006"))))

	lastWeek := ""
	for _, day := range r.Days {
		if week := report.WeekLabel(day.Date); week != lastWeek {
			fmt.Println(weekStyle.Render(week))
			lastWeek = week
		}

		fmt.Println(dayStyle.Render(day.Date.Format("Monday, 02.01.2006")))

		for _, subject := range day.Subjects {
			fmt.Printf("  %s\n", subjectStyle.Render(subject.Name))
			for _, line := range subject.Lines {
				if report.IsMissingContent(line) {
					fmt.Printf("  • %s\n", missingStyle.Render(line))
				} else {
					fmt.Printf("  • %s\n", line)
				}
			}
		}

		fmt.Println()
	}
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().StringP("from", "f", "", "Start date (inclusive), e.g. 2026-03-02 or 02.03.2026")
	showCmd.Flags().StringP("to", "t", "", "End date (inclusive)")
	showCmd.Flags().String("timegrid", "", "Optional YAML timegrid file overriding the 07:00-18:00 slot range")
	showCmd.MarkFlagRequired("from")
	showCmd.MarkFlagRequired("to")
}
