package event_handler

import (
	"fmt"
	"time"

	"agenda/src-cli/utils"
)

func modify(as *utils.AppState) {
	id := "modify"
	as.AddAppCmdInfo(id, &utils.CommandInfo{
		Name:        id,
		Usage:       "modify <id> | title | <new title>  (or)  modify <id> | date | <new date>",
		Description: "Change the title or the date of an existing event.",
	})
	as.AddAppCmdHandler(id, modifyHandler(as))
}

func modifyHandler(as *utils.AppState) func(args string) error {
	return func(args string) error {
		fields := splitFields(args)
		if len(fields) < 3 {
			fmt.Fprintln(as.Out, "Usage: modify <id> | title|date | <new value>")
			return nil
		}
		e, ok := as.Scheduler.GetEvent(fields[0])
		if !ok {
			fmt.Fprintf(as.Out, "No event with id %q.\n", fields[0])
			return nil
		}

		startTimer := time.Now()
		switch fields[1] {
		case "title":
			if err := e.SetTitle(utils.CleanupString(fields[2])); err != nil {
				fmt.Fprintf(as.Out, "Can't change title: %s\n", err.Error())
				return nil
			}
		case "date":
			date, err := utils.ParseDate(as.When, fields[2], as.Now())
			if err != nil {
				fmt.Fprintf(as.Out, "Can't understand %q as a date.\n", fields[2])
				return nil
			}
			if err := e.SetDate(date); err != nil {
				fmt.Fprintf(as.Out, "Can't change date: %s\n", err.Error())
				return nil
			}
		default:
			fmt.Fprintf(as.Out, "Don't know how to modify %q; use title or date.\n", fields[1])
			return nil
		}
		as.MetricChans.ObserveSchedulerWrite(float64(time.Since(startTimer).Microseconds()))

		fmt.Fprintln(as.Out, "Updated: "+renderEventLine(as, e))
		return nil
	}
}
