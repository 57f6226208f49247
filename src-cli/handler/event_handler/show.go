package event_handler

import (
	"fmt"
	"strings"
	"time"

	"agenda/src-cli/utils"
)

func show(as *utils.AppState) {
	id := "show"
	as.AddAppCmdInfo(id, &utils.CommandInfo{
		Name:        id,
		Usage:       "show <id>",
		Description: "Show the full details of one event.",
	})
	as.AddAppCmdHandler(id, showHandler(as))
}

func showHandler(as *utils.AppState) func(args string) error {
	return func(args string) error {
		id := strings.TrimSpace(args)
		if id == "" {
			fmt.Fprintln(as.Out, "Usage: show <id>")
			return nil
		}

		startTimer := time.Now()
		e, ok := as.Scheduler.GetEvent(id)
		as.MetricChans.ObserveSchedulerRead(float64(time.Since(startTimer).Microseconds()))
		if !ok {
			fmt.Fprintf(as.Out, "No event with id %q.\n", id)
			return nil
		}

		details := e.Details()
		fmt.Fprintf(as.Out, "Title:     %s\n", details.Title)
		fmt.Fprintf(as.Out, "When:      %s\n", details.Date.In(as.Config.GetLocation()).Format(as.Config.GetDateFormat()))
		fmt.Fprintf(as.Out, "Today:     %v\n", details.IsToday)
		if len(details.Attendees) > 0 {
			fmt.Fprintf(as.Out, "Attendees: %s\n", strings.Join(details.Attendees, ", "))
		} else {
			fmt.Fprintln(as.Out, "Attendees: (none)")
		}
		fmt.Fprintf(as.Out, "ID:        %s\n", details.ID)
		return nil
	}
}
