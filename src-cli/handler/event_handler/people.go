package event_handler

import (
	"fmt"
	"strings"
	"time"

	"agenda/src-cli/utils"
)

func people(as *utils.AppState) {
	id := "people"
	as.AddAppCmdInfo(id, &utils.CommandInfo{
		Name:        id,
		Usage:       "people",
		Description: "List every attendee across all events, deduplicated.",
	})
	as.AddAppCmdHandler(id, peopleHandler(as))
}

func peopleHandler(as *utils.AppState) func(args string) error {
	return func(args string) error {
		startTimer := time.Now()
		names := as.Scheduler.GetAllAttendees()
		as.MetricChans.ObserveSchedulerRead(float64(time.Since(startTimer).Microseconds()))

		if len(names) == 0 {
			fmt.Fprintln(as.Out, "No attendees yet.")
			return nil
		}
		fmt.Fprintln(as.Out, strings.Join(names, ", "))
		return nil
	}
}
