// Package handler orchestrates the booking workflow: each mutating action
// validates, calls the booking API, and on success re-renders the affected
// view from a fresh fetch. Failures surface the upstream message and leave
// the rendered state untouched.
package handler

import (
	"booking_console/client"
	"booking_console/helper"
	"booking_console/view"
)

type Handler struct {
	api    *client.Client
	views  *view.Renderer
	flash  *Flash
	hub    *Hub
	sender *helper.TelegramSender

	// publicURL is the externally reachable console address, used for the
	// booking deep links encoded into QR codes.
	publicURL string
}

func New(api *client.Client, views *view.Renderer, flash *Flash, hub *Hub, sender *helper.TelegramSender, publicURL string) *Handler {
	return &Handler{
		api:       api,
		views:     views,
		flash:     flash,
		hub:       hub,
		sender:    sender,
		publicURL: publicURL,
	}
}
