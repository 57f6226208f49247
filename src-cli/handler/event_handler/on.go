package event_handler

import (
	"fmt"
	"strings"
	"time"

	"agenda/src-cli/utils"
)

func on(as *utils.AppState) {
	id := "on"
	as.AddAppCmdInfo(id, &utils.CommandInfo{
		Name:        id,
		Usage:       "on <date>",
		Description: "List events falling on the given calendar day.",
	})
	as.AddAppCmdHandler(id, onHandler(as))
}

func onHandler(as *utils.AppState) func(args string) error {
	return func(args string) error {
		raw := strings.TrimSpace(args)
		if raw == "" {
			fmt.Fprintln(as.Out, "Usage: on <date>")
			return nil
		}
		date, err := utils.ParseDate(as.When, raw, as.Now())
		if err != nil {
			fmt.Fprintf(as.Out, "Can't understand %q as a date.\n", raw)
			return nil
		}

		startTimer := time.Now()
		events, err := as.Scheduler.GetEventsOnDate(date)
		if err != nil {
			return fmt.Errorf("onHandler: %w", err)
		}
		as.MetricChans.ObserveSchedulerRead(float64(time.Since(startTimer).Microseconds()))

		renderEventList(as, events, "Nothing scheduled on that day.")
		return nil
	}
}
