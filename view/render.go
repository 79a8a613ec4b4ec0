// Package view re-renders the event list after every mutating action. It
// always does a full re-fetch and a full rebuild of the fragment; nothing in
// here patches previously rendered state.
package view

import (
	"bytes"
	"context"
	"html/template"
	"log"

	"booking_console/client"
	"booking_console/helper"
	"booking_console/model"

	"github.com/jinzhu/copier"
)

type Renderer struct {
	api  *client.Client
	tmpl *template.Template
}

func New(api *client.Client) *Renderer {
	return &Renderer{
		api:  api,
		tmpl: template.Must(template.New("events").Parse(eventsTemplate)),
	}
}

// Refresh fetches the current collection and renders it. On fetch failure the
// returned markup is the inline error block and no cards survive from before —
// the caller swaps the container wholesale either way.
func (r *Renderer) Refresh(ctx context.Context, includeBookings bool) (string, error) {
	events, err := r.api.GetEvents(ctx)
	if err != nil {
		log.Printf("refresh failed: %v", err)
		return r.renderError(err), err
	}
	return r.Render(events, includeBookings), nil
}

// Render builds the fragment for an already fetched snapshot. Deterministic:
// the same snapshot renders to identical markup.
func (r *Renderer) Render(events []model.Event, includeBookings bool) string {
	if len(events) == 0 {
		return `<p class="loading">No events found</p>`
	}

	cards := make([]model.EventCard, 0, len(events))
	for _, event := range events {
		cards = append(cards, buildCard(event, includeBookings))
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, cards); err != nil {
		log.Printf("template execute failed: %v", err)
		return r.renderError(err)
	}
	return buf.String()
}

func (r *Renderer) renderError(err error) string {
	var buf bytes.Buffer
	tmpl := template.Must(template.New("err").Parse(
		`<p class="notification error">Failed to load events: {{.}}</p>`))
	tmpl.Execute(&buf, err.Error())
	return buf.String()
}

func buildCard(event model.Event, includeBookings bool) model.EventCard {
	var card model.EventCard
	copier.Copy(&card, &event)

	card.ID = event.ID.String()
	card.EventAtLabel = helper.FormatDate(event.EventAt)
	card.ConfirmedCount = helper.CountByStatus(event.Bookings, model.StatusConfirmed)
	card.PendingCount = helper.CountByStatus(event.Bookings, model.StatusPending)
	card.ShowBookings = includeBookings

	if includeBookings {
		card.Bookings = make([]model.BookingRow, 0, len(event.Bookings))
		for _, b := range event.Bookings {
			short := b.ID.String()
			if len(short) > 8 {
				short = short[:8]
			}
			card.Bookings = append(card.Bookings, model.BookingRow{
				ShortID:        short,
				PlacesCount:    b.PlacesCount,
				TelegramID:     b.TelegramID,
				CreatedAtLabel: helper.FormatDate(b.CreatedAt),
				StatusLabel:    helper.FormatBookingStatus(b.Status),
				StatusClass:    helper.StatusClass(b.Status),
			})
		}
	} else {
		card.Bookings = nil
	}

	return card
}
