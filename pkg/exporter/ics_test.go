package exporter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"berichtctl/pkg/report"
	"berichtctl/pkg/untis"
)

func TestGenerateICS(t *testing.T) {
	date := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	r := report.New(date, date, nil)
	d := r.StartDay(date)
	r.Add(d, untis.Entry{
		Subject:         "Mathematik",
		Status:          untis.StatusRegular,
		TeachingContent: "Lineare Funktionen",
		StartTime:       "08:15",
		EndTime:         "09:45",
	})
	r.Add(d, untis.Entry{
		Subject:   "Englisch",
		Status:    untis.StatusCancelled,
		StartTime: "10:15",
		EndTime:   "11:00",
	})

	var buf bytes.Buffer
	err := GenerateICS(r.Days, &buf)
	if err != nil {
		t.Fatalf("GenerateICS failed: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "SUMMARY:Mathematik") {
		t.Errorf("expected ICS to contain lesson summary, got: \n%s", output)
	}

	if !strings.Contains(output, "DESCRIPTION:Lineare Funktionen") {
		t.Errorf("expected ICS to contain teaching content as description")
	}

	// 04-Mar-2026 08:15 Berlin time is 07:15 UTC.
	if !strings.Contains(output, "DTSTART:20260304T071500Z") {
		t.Errorf("expected start time string in ICS (should be UTC), got: \n%s", output)
	}

	if !strings.Contains(output, "SUMMARY:Entfallen: Englisch") {
		t.Errorf("expected cancelled lesson to be marked in its summary")
	}
}

func TestGenerateICS_SkipsMalformedTimes(t *testing.T) {
	date := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	r := report.New(date, date, nil)
	d := r.StartDay(date)
	r.Add(d, untis.Entry{
		Subject:         "Mathematik",
		Status:          untis.StatusRegular,
		TeachingContent: "Folgen",
		StartTime:       "kaputt",
		EndTime:         "09:45",
	})

	var buf bytes.Buffer
	if err := GenerateICS(r.Days, &buf); err != nil {
		t.Fatalf("GenerateICS failed: %v", err)
	}

	if strings.Contains(buf.String(), "BEGIN:VEVENT") {
		t.Errorf("expected lesson with malformed time to be skipped, got:\n%s", buf.String())
	}
}
