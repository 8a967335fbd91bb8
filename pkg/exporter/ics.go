package exporter

import (
	"fmt"
	"io"
	"time"

	"berichtctl/pkg/report"
	"berichtctl/pkg/untis"

	ics "github.com/arran4/golang-ical"
)

// GenerateICS creates an ICS calendar from the collected lessons and writes
// it to the provided writer. Cancelled lessons keep their slot but get a
// marked summary so they stay visible in the calendar.
func GenerateICS(days []*report.Day, w io.Writer) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	// Timezone location for Germany
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		return fmt.Errorf("could not load timezone: %w", err)
	}

	layout := "2006-01-02 15:04"
	i := 0

	for _, day := range days {
		dateStr := day.Date.Format("2006-01-02")

		for _, lesson := range day.Lessons {
			startTime, err := time.ParseInLocation(layout, fmt.Sprintf("%s %s", dateStr, lesson.StartTime), loc)
			if err != nil {
				continue // Skip invalid times
			}

			endTime, err := time.ParseInLocation(layout, fmt.Sprintf("%s %s", dateStr, lesson.EndTime), loc)
			if err != nil {
				continue
			}

			summary := lesson.Subject
			if lesson.Status == untis.StatusCancelled {
				summary = fmt.Sprintf("Entfallen: %s", lesson.Subject)
			}

			event := cal.AddEvent(fmt.Sprintf("%s-%d", startTime.Format("20060102T150405Z"), i))
			i++
			event.SetCreatedTime(time.Now())
			event.SetDtStampTime(time.Now())
			event.SetModifiedAt(time.Now())
			event.SetStartAt(startTime)
			event.SetEndAt(endTime)
			event.SetSummary(summary)

			if lesson.TeachingContent != "" {
				event.SetDescription(lesson.TeachingContent)
			}
		}
	}

	return cal.SerializeTo(w)
}
