package helper

import (
	"time"

	"booking_console/model"

	"github.com/gosimple/slug"
)

var statusLabels = map[string]string{
	model.StatusPending:   "Awaiting confirmation",
	model.StatusConfirmed: "Confirmed",
	model.StatusCancelled: "Cancelled",
}

// FormatDate renders a timestamp the way the cards show it. A zero time
// renders "Invalid Date", same as an unparsable value in the old console.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "Invalid Date"
	}
	return t.Format("January 2, 2006 at 15:04")
}

// ParseDate accepts the wire timestamp and falls back through the formats the
// API has been seen to emit. Unparsable input yields the zero time.
func ParseDate(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// FormatBookingStatus maps a status to its display label. Unknown statuses
// pass through unchanged so a new server-side state still renders.
func FormatBookingStatus(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}

// StatusClass derives the CSS class for a status. Slugging keeps the class
// deterministic even for status strings the console has never seen.
func StatusClass(status string) string {
	return "status-" + slug.Make(status)
}

// CountByStatus filters a freshly fetched booking list. Callers recompute on
// every render instead of caching the counters.
func CountByStatus(bookings []model.Booking, status string) int {
	n := 0
	for _, b := range bookings {
		if b.Status == status {
			n++
		}
	}
	return n
}
