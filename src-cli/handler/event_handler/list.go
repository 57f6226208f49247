package event_handler

import (
	"fmt"
	"time"

	"agenda/src-cli/utils"
)

func list(as *utils.AppState) {
	id := "list"
	as.AddAppCmdInfo(id, &utils.CommandInfo{
		Name:        id,
		Usage:       "list",
		Description: "List every event, earliest first.",
	})
	as.AddAppCmdHandler(id, listHandler(as))
}

func listHandler(as *utils.AppState) func(args string) error {
	return func(args string) error {
		startTimer := time.Now()
		events := as.Scheduler.GetAllEvents()
		as.MetricChans.ObserveSchedulerRead(float64(time.Since(startTimer).Microseconds()))

		if len(events) > 0 {
			fmt.Fprintf(as.Out, "%d event(s):\n", len(events))
		}
		renderEventList(as, events, "No events yet.")
		return nil
	}
}
