package event_handler

import (
	"fmt"
	"strings"
	"time"

	"agenda/src-cli/utils"
)

func remove(as *utils.AppState) {
	id := "remove"
	as.AddAppCmdInfo(id, &utils.CommandInfo{
		Name:        id,
		Usage:       "remove <id>",
		Description: "Remove the event with the given id.",
	})
	as.AddAppCmdHandler(id, removeHandler(as))
}

func removeHandler(as *utils.AppState) func(args string) error {
	return func(args string) error {
		id := strings.TrimSpace(args)
		if id == "" {
			fmt.Fprintln(as.Out, "Usage: remove <id>")
			return nil
		}

		startTimer := time.Now()
		removed := as.Scheduler.RemoveEvent(id)
		as.MetricChans.ObserveSchedulerWrite(float64(time.Since(startTimer).Microseconds()))
		as.MetricChans.ObserveEventsTotal(float64(as.Scheduler.GetTotalEvents()))

		if removed {
			fmt.Fprintf(as.Out, "Removed event %s.\n", id)
		} else {
			fmt.Fprintf(as.Out, "No event with id %q.\n", id)
		}
		return nil
	}
}
