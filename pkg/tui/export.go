package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"berichtctl/pkg/config"
	"berichtctl/pkg/exporter"
	"berichtctl/pkg/report"
	"berichtctl/pkg/untis"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

// parseDate accepts ISO and German date formats
func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", "02.01.2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, use YYYY-MM-DD or DD.MM.YYYY", s)
}

// RunExportTUI runs the interactive flow for collecting a date range and exporting the Berichtsheft
func RunExportTUI() error {
	fmt.Println(accentStyle.Render("Welcome to the Berichtctl Exporter!"))

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.ServerURL == "" || cfg.School == "" || cfg.Username == "" {
		fmt.Println(errorStyle.Render("Portal access is not configured yet, let's do that first."))
		if err := RunConfigTUI(); err != nil {
			return err
		}
		if cfg, err = config.Load(); err != nil {
			return err
		}
	}

	// Default to the current week, Monday through today
	now := time.Now()
	monday := now.AddDate(0, 0, -int((now.Weekday()+6)%7))

	fromStr := monday.Format("02.01.2006")
	toStr := now.Format("02.01.2006")
	format := "html"

	dateForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Start date (inclusive)").
				Value(&fromStr).
				Validate(func(s string) error {
					_, err := parseDate(s)
					return err
				}),
			huh.NewInput().
				Title("End date (inclusive)").
				Value(&toStr).
				Validate(func(s string) error {
					_, err := parseDate(s)
					return err
				}),
			huh.NewSelect[string]().
				Title("Output format").
				Options(
					huh.NewOption("HTML document", "html"),
					huh.NewOption("ICS calendar", "ics"),
				).
				Value(&format),
		),
	).WithTheme(GetTheme())

	if err := dateForm.Run(); err != nil {
		return err
	}

	from, _ := parseDate(fromStr)
	to, _ := parseDate(toStr)
	if from.After(to) {
		fmt.Println(errorStyle.Render("The start date is after the end date!"))
		return nil
	}

	client := untis.NewClient(cfg.ServerURL)

	var session *untis.Session
	var loginErr error
	_ = spinner.New().
		Title(fmt.Sprintf("Logging in to %s...", cfg.School)).
		Action(func() {
			session, loginErr = client.Login(cfg.School, cfg.Username, cfg.Password)
		}).
		Run()

	if loginErr != nil {
		return fmt.Errorf("login failed: %w", loginErr)
	}

	fetcher := &untis.DayFetcher{
		Client:  client,
		Session: session,
		School:  cfg.School,
		Hours:   config.DefaultTimegrid().Hours(),
	}

	var r *report.Report
	var collectErr error
	_ = spinner.New().
		Title("Collecting lessons...").
		Action(func() {
			r, collectErr = report.Collect(fetcher, from, to, cfg.SubjectRenames)
		}).
		Run()

	if collectErr != nil {
		return collectErr
	}

	if r.Empty() {
		fmt.Println(errorStyle.Render("No lesson content found in that range, nothing to export."))
		return nil
	}

	defaultName := fmt.Sprintf("berichtsheft_%s_%s.%s", from.Format("2006-01-02"), to.Format("2006-01-02"), format)
	output := filepath.Join(cfg.OutputDir, defaultName)

	pathForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Output file").
				Value(&output),
		),
	).WithTheme(GetTheme())

	if err := pathForm.Run(); err != nil {
		return err
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

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Successfully exported %d days to %s\n", len(r.Days), output)))
	return nil
}
