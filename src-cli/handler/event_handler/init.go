// This package contains one file per event command of the interactive
// loop.
//
// There are 2 functions per command, one for registering the handler and
// its info into the AppState maps (private, called from Init), and one
// returning the handler closure itself.
//
// Only return errors when it's the backend's fault; print and return nil
// when it's the user's fault.
package event_handler

import (
	"fmt"
	"strings"

	"agenda/src-cli/event"
	"agenda/src-cli/utils"
)

// Init injects every event command into appCmdInfo and appCmdHandler in
// AppState.
func Init(as *utils.AppState) {
	add(as)
	list(as)
	find(as)
	on(as)
	today(as)
	modify(as)
	remove(as)
	invite(as)
	show(as)
	people(as)
}

// Split a " | "-separated argument tail into trimmed fields. An empty
// tail is nil, not a single empty field.
func splitFields(args string) []string {
	parts := strings.Split(args, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) == 1 && parts[0] == "" {
		return nil
	}
	return parts
}

// One event as a single display line.
func renderEventLine(as *utils.AppState, e *event.Event) string {
	line := fmt.Sprintf("%s — %s (id %s)",
		e.Title(),
		e.Date().In(as.Config.GetLocation()).Format(as.Config.GetDateFormat()),
		e.ID(),
	)
	if attendees := e.Attendees(); len(attendees) > 0 {
		line += " — with " + strings.Join(attendees, ", ")
	}
	return line
}

func renderEventList(as *utils.AppState, events []*event.Event, emptyMsg string) {
	if len(events) == 0 {
		fmt.Fprintln(as.Out, emptyMsg)
		return
	}
	for _, e := range events {
		fmt.Fprintln(as.Out, "- "+renderEventLine(as, e))
	}
}
