package report

import (
	"fmt"
	"time"

	"berichtctl/pkg/untis"
)

// Source yields all lessons of one calendar day. Implemented by
// untis.DayFetcher; tests substitute their own.
type Source interface {
	LessonsFor(day time.Time) []untis.Entry
}

// Collect walks the inclusive date range one day at a time and aggregates
// every returned entry. The range is validated before the source is asked
// for anything.
func Collect(src Source, from, to time.Time, renames map[string]string) (*Report, error) {
	if from.After(to) {
		return nil, fmt.Errorf("start date %s is after end date %s", from.Format("02.01.2006"), to.Format("02.01.2006"))
	}

	r := New(from, to, renames)

	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		d := r.StartDay(day)
		for _, entry := range src.LessonsFor(day) {
			r.Add(d, entry)
		}
	}

	return r, nil
}
