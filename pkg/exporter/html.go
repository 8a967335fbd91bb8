package exporter

import (
	"fmt"
	"html"
	"io"
	"time"

	"berichtctl/pkg/report"
)

// weekdayNames translates time.Weekday for the day headings
var weekdayNames = map[time.Weekday]string{
	time.Monday:    "Montag",
	time.Tuesday:   "Dienstag",
	time.Wednesday: "Mittwoch",
	time.Thursday:  "Donnerstag",
	time.Friday:    "Freitag",
	time.Saturday:  "Samstag",
	time.Sunday:    "Sonntag",
}

// GenerateHTML writes the report as a standalone HTML document. Lines with
// the missing-content placeholder are rendered red, everything else black.
func GenerateHTML(r *report.Report, w io.Writer) error {
	var err error
	printf := func(format string, args ...interface{}) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	printf("<!DOCTYPE html>\n<html lang=\"de\">\n<head>\n<meta charset=\"utf-8\">\n")
	printf("<title>Berichtsheft %s - %s</title>\n", r.From.Format("02.01.2006"), r.To.Format("02.01.2006"))
	printf("<style>\n")
	printf("body { font-family: Arial, sans-serif; max-width: 50em; margin: 2em auto; color: #000; }\n")
	printf("h2.week { border-bottom: 2px solid #444; padding-bottom: 0.2em; }\n")
	printf("h3.day { margin-bottom: 0.2em; }\n")
	printf("h4.subject { margin: 0.6em 0 0.1em 0; }\n")
	printf("ul { margin: 0.2em 0; }\n")
	printf("li.missing { color: #cc0000; }\n")
	printf(".day-sep { margin-bottom: 1.5em; }\n")
	printf("</style>\n</head>\n<body>\n")

	// Title block
	printf("<h1>Berichtsheft</h1>\n")
	printf("<p>Zeitraum: %s bis %s</p>\n", r.From.Format("02.01.2006"), r.To.Format("02.01.2006"))

	lastWeek := ""
	for _, day := range r.Days {
		// Emit the week label whenever the ISO week changes
		if week := report.WeekLabel(day.Date); week != lastWeek {
			printf("<h2 class=\"week\">%s</h2>\n", html.EscapeString(week))
			lastWeek = week
		}

		printf("<h3 class=\"day\">%s, %s</h3>\n", weekdayNames[day.Date.Weekday()], day.Date.Format("02.01.2006"))

		for _, subject := range day.Subjects {
			printf("<h4 class=\"subject\">%s</h4>\n<ul>\n", html.EscapeString(subject.Name))
			for _, line := range subject.Lines {
				if report.IsMissingContent(line) {
					printf("<li class=\"missing\">%s</li>\n", html.EscapeString(line))
				} else {
					printf("<li>%s</li>\n", html.EscapeString(line))
				}
			}
			printf("</ul>\n")
		}

		// Blank separator after each day
		printf("<div class=\"day-sep\"></div>\n")
	}

	printf("</body>\n</html>\n")

	return err
}
