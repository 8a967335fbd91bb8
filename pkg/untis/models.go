package untis

import "net/http"

// Session holds everything the portal hands out after a successful login
type Session struct {
	Cookie   *http.Cookie // session cookie, sent with every lookup
	TenantID string       // school tenant identifier, sent as a header
}

// Entry statuses as reported by the calendar endpoint
const (
	StatusRegular   = "REGULAR"
	StatusCancelled = "CANCELLED"
)

// Entry represents a single lesson record returned for an hour slot
type Entry struct {
	Subject         string // display name of the subject, e.g. "Mathematik"
	Status          string // REGULAR or CANCELLED
	TeachingContent string // what was taught, may be empty
	StartTime       string // "08:15"
	EndTime         string // "09:45"
}

// entryResponse mirrors the JSON shape of the calendar-entries endpoint
type entryResponse struct {
	CalendarEntries []struct {
		Subject struct {
			DisplayName string `json:"displayName"`
		} `json:"subject"`
		Status          string `json:"status"`
		TeachingContent string `json:"teachingContent"`
		StartDateTime   string `json:"startDateTime"` // "2026-03-04T08:15:00"
		EndDateTime     string `json:"endDateTime"`
	} `json:"calendarEntries"`
}
