package exporter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"berichtctl/pkg/report"
	"berichtctl/pkg/untis"
)

func buildTestReport() *report.Report {
	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // Monday, KW 10
	to := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)

	r := report.New(from, to, nil)

	monday := r.StartDay(from)
	r.Add(monday, untis.Entry{
		Subject:         "Mathematik",
		Status:          untis.StatusRegular,
		TeachingContent: "Lineare Funktionen",
		StartTime:       "08:15",
		EndTime:         "09:45",
	})
	r.Add(monday, untis.Entry{
		Subject:   "Englisch",
		Status:    untis.StatusCancelled,
		StartTime: "10:15",
		EndTime:   "11:00",
	})
	r.Add(monday, untis.Entry{
		Subject:         "Sport",
		Status:          untis.StatusRegular,
		TeachingContent: "",
		StartTime:       "12:00",
		EndTime:         "12:45",
	})

	// Tuesday stays empty
	r.StartDay(to)

	return r
}

func TestGenerateHTML(t *testing.T) {
	var buf bytes.Buffer
	if err := GenerateHTML(buildTestReport(), &buf); err != nil {
		t.Fatalf("GenerateHTML failed: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "<h1>Berichtsheft</h1>") {
		t.Errorf("expected title block, got:\n%s", output)
	}

	// 2026-03-02 falls into ISO week 10
	if !strings.Contains(output, "KW 10") {
		t.Errorf("expected week label KW 10 in output")
	}
	if strings.Count(output, "<h2 class=\"week\">") != 1 {
		t.Errorf("expected exactly one week label for a single-week range")
	}

	if !strings.Contains(output, "Montag, 02.03.2026") {
		t.Errorf("expected German day heading for Monday")
	}

	if !strings.Contains(output, "<li>Lineare Funktionen</li>") {
		t.Errorf("expected normal content as plain bullet")
	}

	if !strings.Contains(output, `<li class="missing">`+report.MissingContent+"</li>") {
		t.Errorf("expected missing-content line to carry the red class")
	}

	if !strings.Contains(output, "<li>Entfallen (10:15 - 11:00)</li>") {
		t.Errorf("expected cancellation bullet with the entry's own times")
	}
	if strings.Contains(output, `class="missing">Entfallen`) {
		t.Errorf("cancellation lines must not be styled as missing content")
	}
}

func TestGenerateHTML_EmptyDayHeadingOnly(t *testing.T) {
	var buf bytes.Buffer
	if err := GenerateHTML(buildTestReport(), &buf); err != nil {
		t.Fatalf("GenerateHTML failed: %v", err)
	}

	output := buf.String()

	// The empty Tuesday must appear as a heading without any subject blocks after it
	tuesdayIdx := strings.Index(output, "Dienstag, 03.03.2026")
	if tuesdayIdx == -1 {
		t.Fatalf("expected heading for the empty day")
	}
	if strings.Contains(output[tuesdayIdx:], "<h4") {
		t.Errorf("expected no subject blocks after the empty day's heading")
	}
}

func TestGenerateHTML_EscapesContent(t *testing.T) {
	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	r := report.New(from, from, nil)
	d := r.StartDay(from)
	r.Add(d, untis.Entry{
		Subject:         "Informatik",
		Status:          untis.StatusRegular,
		TeachingContent: "HTML-Tags: <b> & <i>",
	})

	var buf bytes.Buffer
	if err := GenerateHTML(r, &buf); err != nil {
		t.Fatalf("GenerateHTML failed: %v", err)
	}

	if !strings.Contains(buf.String(), "HTML-Tags: &lt;b&gt; &amp; &lt;i&gt;") {
		t.Errorf("expected content to be HTML-escaped, got:\n%s", buf.String())
	}
}
