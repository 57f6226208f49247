package event_handler

import (
	"strings"
	"time"

	"agenda/src-cli/utils"
)

func find(as *utils.AppState) {
	id := "find"
	as.AddAppCmdInfo(id, &utils.CommandInfo{
		Name:        id,
		Usage:       "find [term]",
		Description: "List events whose title contains the term, case-insensitively. An empty term matches everything.",
	})
	as.AddAppCmdHandler(id, findHandler(as))
}

func findHandler(as *utils.AppState) func(args string) error {
	return func(args string) error {
		term := strings.TrimSpace(args)

		startTimer := time.Now()
		events := as.Scheduler.FindEventsByTitle(term)
		as.MetricChans.ObserveSchedulerRead(float64(time.Since(startTimer).Microseconds()))

		renderEventList(as, events, "No matching events.")
		return nil
	}
}
