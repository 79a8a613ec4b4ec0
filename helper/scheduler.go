package helper

import (
	"context"
	"log"
	"time"

	"booking_console/client"

	"github.com/go-co-op/gocron/v2"
)

var probeScheduler gocron.Scheduler

// StartUpstreamProbe checks the booking API once a minute so reachability
// problems show up in the logs before an admin hits them in the UI.
func StartUpstreamProbe(api *client.Client) {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Printf("could not create probe scheduler: %v", err)
		return
	}

	_, err = s.NewJob(
		gocron.DurationJob(1*time.Minute),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			events, err := api.GetEvents(ctx)
			if err != nil {
				log.Printf("upstream probe: booking API unhealthy: %v", err)
				return
			}
			log.Printf("upstream probe: booking API ok, %d events", len(events))
		}),
	)
	if err != nil {
		log.Printf("could not schedule upstream probe: %v", err)
		return
	}

	s.Start()
	probeScheduler = s
}

func StopUpstreamProbe() {
	if probeScheduler != nil {
		probeScheduler.Shutdown()
	}
}
