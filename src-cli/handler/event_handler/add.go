package event_handler

import (
	"fmt"
	"strings"
	"time"

	"agenda/src-cli/event"
	"agenda/src-cli/utils"
)

func add(as *utils.AppState) {
	id := "add"
	as.AddAppCmdInfo(id, &utils.CommandInfo{
		Name:        id,
		Usage:       "add <title> | <date> | [attendee, attendee, ...]",
		Description: "Create a new event.",
	})
	as.AddAppCmdHandler(id, addHandler(as))
}

func addHandler(as *utils.AppState) func(args string) error {
	return func(args string) error {
		fields := splitFields(args)
		if len(fields) < 2 {
			fmt.Fprintln(as.Out, `Usage: add <title> | <date> | [attendee, attendee, ...]`)
			return nil
		}

		title := utils.CleanupString(fields[0])
		date, err := utils.ParseDate(as.When, fields[1], as.Now())
		if err != nil {
			fmt.Fprintf(as.Out, "Can't understand %q as a date.\n", fields[1])
			return nil
		}

		var attendees []string
		if len(fields) >= 3 && fields[2] != "" {
			for _, name := range strings.Split(fields[2], ",") {
				attendees = append(attendees, utils.CleanupString(name))
			}
		}

		startTimer := time.Now()
		e, err := event.New(title, date, attendees...)
		if err != nil {
			fmt.Fprintf(as.Out, "Can't create event: %s\n", err.Error())
			return nil
		}
		e.WithClock(as.Now)
		if err := as.Scheduler.AddEvent(e); err != nil {
			return fmt.Errorf("addHandler: %w", err)
		}
		as.MetricChans.ObserveSchedulerWrite(float64(time.Since(startTimer).Microseconds()))
		as.MetricChans.ObserveEventsTotal(float64(as.Scheduler.GetTotalEvents()))

		fmt.Fprintln(as.Out, "Created: "+renderEventLine(as, e))
		return nil
	}
}
