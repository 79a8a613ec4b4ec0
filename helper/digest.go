package helper

import (
	"bytes"
	"context"
	"html/template"
	"log"
	"strconv"
	"time"

	"booking_console/client"
	"booking_console/config"
	"booking_console/model"

	"github.com/robfig/cron/v3"
	"gopkg.in/gomail.v2"
)

var digestCron *cron.Cron

const digestTemplate = `<h2>Pending bookings digest</h2>
<p>{{.PendingTotal}} booking(s) are still awaiting confirmation across {{.EventCount}} event(s).</p>
<ul>
{{range .Events}}<li>{{.Title}} — {{.Pending}} pending, {{.Available}}/{{.Total}} seats free</li>
{{end}}</ul>`

type digestEvent struct {
	Title     string
	Pending   int
	Available int
	Total     int
}

type digestData struct {
	PendingTotal int
	EventCount   int
	Events       []digestEvent
}

// StartDigestScheduler mails a daily summary of pending bookings to the admin
// address. Needs DIGEST_TO and SMTP settings, otherwise it stays off.
func StartDigestScheduler(api *client.Client) {
	if config.Config("DIGEST_TO") == "" || config.Config("SMTP_HOST") == "" {
		log.Println("digest email not configured, skipping scheduler")
		return
	}

	digestCron = cron.New()
	spec := config.ConfigOr("DIGEST_CRON", "0 8 * * *")
	_, err := digestCron.AddFunc(spec, func() { sendPendingDigest(api) })
	if err != nil {
		log.Printf("could not schedule digest: %v", err)
		return
	}
	digestCron.Start()
}

func StopDigestScheduler() {
	if digestCron != nil {
		digestCron.Stop()
	}
}

func sendPendingDigest(api *client.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	events, err := api.GetEvents(ctx)
	if err != nil {
		log.Printf("digest fetch failed: %v", err)
		return
	}

	data := digestData{EventCount: len(events)}
	for _, event := range events {
		pending := CountByStatus(event.Bookings, model.StatusPending)
		if pending == 0 {
			continue
		}
		data.PendingTotal += pending
		data.Events = append(data.Events, digestEvent{
			Title:     event.Title,
			Pending:   pending,
			Available: event.AvailableSeats,
			Total:     event.TotalSeats,
		})
	}

	if data.PendingTotal == 0 {
		log.Println("digest: nothing pending, not sending")
		return
	}

	tmpl, err := template.New("digest").Parse(digestTemplate)
	if err != nil {
		log.Printf("digest template error: %v", err)
		return
	}
	var body bytes.Buffer
	if err = tmpl.Execute(&body, data); err != nil {
		log.Printf("digest render error: %v", err)
		return
	}

	port, _ := strconv.Atoi(config.ConfigOr("SMTP_PORT", "587"))

	m := gomail.NewMessage()
	m.SetHeader("From", config.Config("SMTP_FROM"))
	m.SetHeader("To", config.Config("DIGEST_TO"))
	m.SetHeader("Subject", "Pending bookings digest")
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(config.Config("SMTP_HOST"), port, config.Config("SMTP_USERNAME"), config.Config("SMTP_PASSWORD"))
	if err := d.DialAndSend(m); err != nil {
		log.Printf("digest send failed: %v", err)
	}
}
