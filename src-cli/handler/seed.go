package handler

import (
	"fmt"
	"time"

	"agenda/src-cli/event"
	"agenda/src-cli/utils"
)

func Seed(as *utils.AppState) {
	id := "seed"
	as.AddAppCmdInfo(id, &utils.CommandInfo{
		Name:        id,
		Usage:       "seed",
		Description: "Load a handful of sample events into the scheduler.",
	})
	as.AddAppCmdHandler(id, seedHandler(as))
}

func seedHandler(as *utils.AppState) func(args string) error {
	return func(args string) error {
		if err := SeedData(as); err != nil {
			return fmt.Errorf("seedHandler: %w", err)
		}
		fmt.Fprintf(as.Out, "Seeded sample events; %d event(s) total.\n", as.Scheduler.GetTotalEvents())
		return nil
	}
}

// SeedData loads the sample events through the same core API the commands
// use: a meeting tomorrow, a review the day after, a presentation today.
func SeedData(as *utils.AppState) error {
	now := as.Now()
	dayAt := func(daysAhead, hour int) time.Time {
		day := now.AddDate(0, 0, daysAhead)
		return time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, as.Config.GetLocation())
	}

	samples := []struct {
		title     string
		date      time.Time
		attendees []string
	}{
		{"Team Meeting", dayAt(1, 10), []string{"Alice", "Bob"}},
		{"Project Review", dayAt(2, 14), []string{"Charlie", "Diana"}},
		{"Client Presentation", dayAt(0, 15), []string{"Eve", "Frank"}},
	}

	for _, sample := range samples {
		e, err := event.New(sample.title, sample.date, sample.attendees...)
		if err != nil {
			return fmt.Errorf("SeedData: can't create %q: %w", sample.title, err)
		}
		e.WithClock(as.Now)
		if err := as.Scheduler.AddEvent(e); err != nil {
			return fmt.Errorf("SeedData: can't add %q: %w", sample.title, err)
		}
	}
	as.MetricChans.ObserveEventsTotal(float64(as.Scheduler.GetTotalEvents()))
	return nil
}
