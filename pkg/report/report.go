package report

import (
	"fmt"
	"strings"
	"time"

	"berichtctl/pkg/untis"
)

// MissingContent is the placeholder line used when a lesson has no
// teaching content entered. The exporters render it in red.
const MissingContent = "Kein Inhalt eingetragen"

// defaultSubjectRenames normalizes portal subject names that nobody wants
// spelled out in a Berichtsheft.
var defaultSubjectRenames = map[string]string{
	"Ev. Religionslehre": "Religion",
}

// Subject groups the distinct content lines of one subject on one day.
// Lines keep their insertion order; duplicates (exact string match) collapse.
type Subject struct {
	Name  string
	Lines []string

	seen map[string]bool
}

// Day holds one calendar day of the report. Subjects appear in the order
// they were first seen. Lessons keeps the raw entries for the ICS export.
type Day struct {
	Date     time.Time
	Subjects []*Subject
	Lessons  []untis.Entry

	index map[string]*Subject
}

// Report is the aggregation of an inclusive date range.
type Report struct {
	From time.Time
	To   time.Time
	Days []*Day

	renames map[string]string
}

// New creates an empty report for the given range. The renames map extends
// the built-in subject normalization and wins on conflicts.
func New(from, to time.Time, renames map[string]string) *Report {
	return &Report{From: from, To: to, renames: renames}
}

// StartDay appends a new (possibly empty) day to the report.
func (r *Report) StartDay(date time.Time) *Day {
	day := &Day{Date: date, index: make(map[string]*Subject)}
	r.Days = append(r.Days, day)
	return day
}

// Add folds one portal entry into the day.
func (r *Report) Add(day *Day, entry untis.Entry) {
	day.Lessons = append(day.Lessons, entry)

	name := r.subjectName(entry.Subject)

	var line string
	switch {
	case entry.Status == untis.StatusCancelled:
		line = fmt.Sprintf("Entfallen (%s - %s)", entry.StartTime, entry.EndTime)
	case strings.TrimSpace(entry.TeachingContent) == "":
		line = MissingContent
	default:
		line = entry.TeachingContent
	}

	subject, ok := day.index[name]
	if !ok {
		subject = &Subject{Name: name, seen: make(map[string]bool)}
		day.index[name] = subject
		day.Subjects = append(day.Subjects, subject)
	}

	if !subject.seen[line] {
		subject.seen[line] = true
		subject.Lines = append(subject.Lines, line)
	}
}

// subjectName resolves the display name through the rename maps.
func (r *Report) subjectName(raw string) string {
	if renamed, ok := r.renames[raw]; ok {
		return renamed
	}
	if renamed, ok := defaultSubjectRenames[raw]; ok {
		return renamed
	}
	return raw
}

// Empty reports whether the whole range produced no content lines at all.
func (r *Report) Empty() bool {
	for _, day := range r.Days {
		if len(day.Subjects) > 0 {
			return false
		}
	}
	return true
}

// IsMissingContent reports whether a line is the missing-content placeholder.
// Matches by containment so decorated variants stay red too.
func IsMissingContent(line string) bool {
	return strings.Contains(line, MissingContent)
}

// WeekLabel returns the "KW n" label for the ISO week of the given date.
func WeekLabel(date time.Time) string {
	_, week := date.ISOWeek()
	return fmt.Sprintf("KW %d", week)
}
