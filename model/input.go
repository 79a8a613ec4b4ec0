package model

import "time"

// CreateEventInput is the create-event form body. EventAt arrives as a
// datetime-local string without a zone, the validate layer converts it.
type CreateEventInput struct {
	Title      string `json:"title" validate:"required"`
	EventAt    string `json:"event_at" validate:"required"`
	TotalSeats int    `json:"total_seats" validate:"required,gt=0"`
}

// CreateEventRequest is what actually goes upstream, with an absolute timestamp.
type CreateEventRequest struct {
	Title      string    `json:"title"`
	EventAt    time.Time `json:"event_at"`
	TotalSeats int       `json:"total_seats"`
}

type BookInput struct {
	TelegramID  int `json:"telegram_id" validate:"required,gt=0"`
	PlacesCount int `json:"places_count" validate:"required,gt=0"`
}

type CancelInput struct {
	// The browser sends "yes" only after the user accepted the blocking prompt.
	Confirm string `json:"confirm"`
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
