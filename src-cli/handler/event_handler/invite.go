package event_handler

import (
	"fmt"
	"time"

	"agenda/src-cli/utils"
)

func invite(as *utils.AppState) {
	id := "invite"
	as.AddAppCmdInfo(id, &utils.CommandInfo{
		Name:        id,
		Usage:       "invite <id> | <attendee name>",
		Description: "Add one attendee to an event. Inviting the same name twice is a no-op.",
	})
	as.AddAppCmdHandler(id, inviteHandler(as))
}

func inviteHandler(as *utils.AppState) func(args string) error {
	return func(args string) error {
		fields := splitFields(args)
		if len(fields) < 2 {
			fmt.Fprintln(as.Out, "Usage: invite <id> | <attendee name>")
			return nil
		}
		e, ok := as.Scheduler.GetEvent(fields[0])
		if !ok {
			fmt.Fprintf(as.Out, "No event with id %q.\n", fields[0])
			return nil
		}

		startTimer := time.Now()
		if err := e.AddAttendee(utils.CleanupString(fields[1])); err != nil {
			fmt.Fprintf(as.Out, "Can't add attendee: %s\n", err.Error())
			return nil
		}
		as.MetricChans.ObserveSchedulerWrite(float64(time.Since(startTimer).Microseconds()))

		fmt.Fprintln(as.Out, "Now attending: "+renderEventLine(as, e))
		return nil
	}
}
