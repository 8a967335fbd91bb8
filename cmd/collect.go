package cmd

import (
	"fmt"
	"time"

	"berichtctl/pkg/config"
	"berichtctl/pkg/report"
	"berichtctl/pkg/untis"

	"github.com/charmbracelet/huh/spinner"
)

// dateLayouts accepted on the command line, ISO first, then German
var dateLayouts = []string{"2006-01-02", "02.01.2006"}

// parseDate parses a user-supplied calendar date
func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, use YYYY-MM-DD or DD.MM.YYYY", s)
}

// collectRange validates the range, logs into the portal and aggregates the
// report. Date validation happens before any network traffic.
func collectRange(cfg *config.AppConfig, fromStr, toStr, timegridPath string) (*report.Report, error) {
	from, err := parseDate(fromStr)
	if err != nil {
		return nil, err
	}
	to, err := parseDate(toStr)
	if err != nil {
		return nil, err
	}
	if from.After(to) {
		return nil, fmt.Errorf("start date %s is after end date %s", from.Format("02.01.2006"), to.Format("02.01.2006"))
	}

	if cfg.ServerURL == "" || cfg.School == "" || cfg.Username == "" {
		return nil, fmt.Errorf("portal access is not configured, run 'berichtctl config' first")
	}

	grid, err := config.LoadTimegrid(timegridPath)
	if err != nil {
		return nil, err
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
		return nil, fmt.Errorf("login failed: %w", loginErr)
	}

	fetcher := &untis.DayFetcher{
		Client:  client,
		Session: session,
		School:  cfg.School,
		Hours:   grid.Hours(),
	}

	var r *report.Report
	var collectErr error
	_ = spinner.New().
		Title(fmt.Sprintf("Collecting lessons %s - %s...", from.Format("02.01.2006"), to.Format("02.01.2006"))).
		Action(func() {
			r, collectErr = report.Collect(fetcher, from, to, cfg.SubjectRenames)
		}).
		Run()

	if collectErr != nil {
		return nil, collectErr
	}

	return r, nil
}
