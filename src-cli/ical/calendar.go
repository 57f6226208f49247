package ical

import (
	"fmt"
	"strings"
	"time"

	"agenda/src-cli/event"
)

// Outbound-only VCALENDAR rendering of scheduled events. Nothing here
// touches the filesystem; the result is a string for the caller to
// display.
type Calendar struct {
	prodID string
	events []*event.Event
}

func NewCalendar(prodID string) *Calendar {
	return &Calendar{prodID: prodID}
}

func (c *Calendar) AddEvent(e *event.Event) {
	if e == nil {
		return
	}
	c.events = append(c.events, e)
}

// Render the calendar as iCalendar text. Lines longer than 75 characters
// are folded with a leading space per RFC 5545.
func (c *Calendar) ToIcal() string {
	var sb strings.Builder
	writer := foldedWriter(&sb)

	writer("BEGIN:VCALENDAR\n")
	writer("VERSION:2.0\n")
	writer(fmt.Sprintf("PRODID:-//%s//EN\n", c.prodID))
	for _, e := range c.events {
		writer("BEGIN:VEVENT\n")
		writer("UID:" + e.ID() + "\n")
		writer("SUMMARY:" + e.Title() + "\n")
		writer("DTSTART:" + icalDatetime(e.Date()) + "\n")
		writer("DTSTAMP:" + icalDatetime(time.Now()) + "\n")
		for _, name := range e.Attendees() {
			writer("ATTENDEE;CN=" + name + ":invalid:nomail\n")
		}
		writer("END:VEVENT\n")
	}
	writer("END:VCALENDAR\n")

	return sb.String()
}

func icalDatetime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// Wrap a builder into a writer that folds every line at 75 characters,
// continuation lines prefixed with a single space.
func foldedWriter(sb *strings.Builder) func(string) {
	return func(str string) {
		line := strings.TrimSuffix(str, "\n")
		for len(line) > 75 {
			sb.WriteString(line[:75])
			sb.WriteString("\n")
			line = " " + line[75:]
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
}
