package untis

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// FetchEntries queries the calendar endpoint for all lessons overlapping the
// one-hour slot beginning at startHour on the given day.
func (c *Client) FetchEntries(session *Session, day time.Time, startHour int) ([]Entry, error) {
	params := url.Values{}
	params.Set("date", day.Format("2006-01-02"))
	params.Set("start", fmt.Sprintf("%02d:00", startHour))
	params.Set("end", fmt.Sprintf("%02d:00", startHour+1))

	reqURL := fmt.Sprintf("%s/api/rest/view/v1/calendar-entries?%s", c.baseURL, params.Encode())

	resp, err := c.getWithRetries(reqURL, session)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch calendar entries: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var decoded entryResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode JSON response: %w", err)
	}

	var entries []Entry
	for _, raw := range decoded.CalendarEntries {
		entries = append(entries, Entry{
			Subject:         raw.Subject.DisplayName,
			Status:          raw.Status,
			TeachingContent: raw.TeachingContent,
			StartTime:       clockPart(raw.StartDateTime),
			EndTime:         clockPart(raw.EndDateTime),
		})
	}

	return entries, nil
}

// clockPart reduces "2026-03-04T08:15:00" to "08:15"
func clockPart(dateTime string) string {
	t, err := time.Parse("2006-01-02T15:04:05", dateTime)
	if err != nil {
		return dateTime
	}
	return t.Format("15:04")
}

// DayFetcher bundles a logged-in client with the slot grid so callers can
// request whole days without carrying session details around.
type DayFetcher struct {
	Client  *Client
	Session *Session
	School  string
	Hours   []int
}

// LessonsFor collects all entries for one calendar day, one lookup per hour
// slot. A failed slot lookup is printed and skipped, the day continues.
// Results are cached on disk so re-runs don't hammer the portal.
func (f *DayFetcher) LessonsFor(day time.Time) []Entry {
	if cached, ok := readCache(f.School, day); ok {
		return cached
	}

	var entries []Entry
	complete := true

	for _, hour := range f.Hours {
		slotEntries, err := f.Client.FetchEntries(f.Session, day, hour)
		if err != nil {
			fmt.Printf("\r\033[K[Portal] Skipping slot %02d:00 on %s: %v\n", hour, day.Format("02.01.2006"), err)
			complete = false
			continue
		}
		entries = append(entries, slotEntries...)
	}

	// Only cache fully fetched days, otherwise a flaky run would pin the gaps for 12 hours
	if complete {
		writeCache(f.School, day, entries)
	}

	return entries
}
