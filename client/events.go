package client

import (
	"context"
	"encoding/json"
	"net/http"

	"booking_console/model"

	"github.com/google/uuid"
)

func (c *Client) GetEvents(ctx context.Context) ([]model.Event, error) {
	raw, err := c.Send(ctx, http.MethodGet, "", nil)
	if err != nil {
		return nil, err
	}

	var events []model.Event
	if err = json.Unmarshal(raw, &events); err != nil {
		return nil, &RequestError{Message: "malformed events payload", Err: err}
	}
	return events, nil
}

func (c *Client) GetEventByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	raw, err := c.Send(ctx, http.MethodGet, "/"+id.String(), nil)
	if err != nil {
		return nil, err
	}

	var event model.Event
	if err = json.Unmarshal(raw, &event); err != nil {
		return nil, &RequestError{Message: "malformed event payload", Err: err}
	}
	return &event, nil
}

func (c *Client) CreateEvent(ctx context.Context, req model.CreateEventRequest) (*model.Event, error) {
	raw, err := c.Send(ctx, http.MethodPost, "", req)
	if err != nil {
		return nil, err
	}

	var event model.Event
	if err = json.Unmarshal(raw, &event); err != nil {
		return nil, &RequestError{Message: "malformed event payload", Err: err}
	}
	return &event, nil
}

func (c *Client) BookSeats(ctx context.Context, eventID uuid.UUID, req model.BookInput) (*model.Booking, error) {
	raw, err := c.Send(ctx, http.MethodPost, "/"+eventID.String()+"/book", req)
	if err != nil {
		return nil, err
	}

	var booking model.Booking
	if err = json.Unmarshal(raw, &booking); err != nil {
		return nil, &RequestError{Message: "malformed booking payload", Err: err}
	}
	return &booking, nil
}

func (c *Client) ConfirmBooking(ctx context.Context, eventID uuid.UUID) error {
	_, err := c.Send(ctx, http.MethodPost, "/"+eventID.String()+"/confirm", nil)
	return err
}

// CancelBooking posts to /events/{id} with no booking id in the payload. The
// API addresses the event's booking context itself; the console sends exactly
// what the endpoint accepts.
func (c *Client) CancelBooking(ctx context.Context, eventID uuid.UUID) error {
	_, err := c.Send(ctx, http.MethodPost, "/"+eventID.String(), nil)
	return err
}
