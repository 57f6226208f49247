package event_handler

import (
	"time"

	"agenda/src-cli/utils"
)

func today(as *utils.AppState) {
	id := "today"
	as.AddAppCmdInfo(id, &utils.CommandInfo{
		Name:        id,
		Usage:       "today",
		Description: "List events falling on the current calendar day.",
	})
	as.AddAppCmdHandler(id, todayHandler(as))
}

func todayHandler(as *utils.AppState) func(args string) error {
	return func(args string) error {
		startTimer := time.Now()
		events := as.Scheduler.GetTodaysEvents()
		as.MetricChans.ObserveSchedulerRead(float64(time.Since(startTimer).Microseconds()))

		renderEventList(as, events, "Nothing scheduled for today.")
		return nil
	}
}
