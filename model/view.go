package model

// EventCard is the render-ready projection of an Event. Counters are
// re-derived from the bookings of the snapshot being rendered, never cached.
type EventCard struct {
	ID             string
	Title          string
	EventAtLabel   string
	TotalSeats     int
	AvailableSeats int
	ConfirmedCount int
	PendingCount   int
	Bookings       []BookingRow
	ShowBookings   bool
}

type BookingRow struct {
	ShortID        string
	PlacesCount    int
	TelegramID     int
	CreatedAtLabel string
	StatusLabel    string
	StatusClass    string
}

// ActionResult is the console's answer to a mutating action. HTML carries the
// refreshed fragment (or the inline error markup when the re-fetch failed).
type ActionResult struct {
	Message       string `json:"message"`
	HTML          string `json:"html,omitempty"`
	ClearForm     bool   `json:"clear_form,omitempty"`
	CloseModal    string `json:"close_modal,omitempty"`
	RefreshFailed bool   `json:"refresh_failed,omitempty"`
}

type Notification struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
