package handler

import (
	"fmt"

	"agenda/src-cli/ical"
	"agenda/src-cli/utils"
)

func Export(as *utils.AppState) {
	id := "export"
	as.AddAppCmdInfo(id, &utils.CommandInfo{
		Name:        id,
		Usage:       "export",
		Description: "Render every event as iCalendar text.",
	})
	as.AddAppCmdHandler(id, exportHandler(as))
}

func exportHandler(as *utils.AppState) func(args string) error {
	return func(args string) error {
		calendar := ical.NewCalendar("agenda")
		for _, e := range as.Scheduler.GetAllEvents() {
			calendar.AddEvent(e)
		}
		fmt.Fprint(as.Out, calendar.ToIcal())
		return nil
	}
}
