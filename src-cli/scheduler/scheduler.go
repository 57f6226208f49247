package scheduler

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"agenda/src-cli/event"

	"golang.org/x/text/cases"
)

// Contract error for AddEvent: the given value is not a well-formed Event.
var ErrNotAnEvent = errors.New("not a well-formed event")

// In-memory owner of a collection of events, keyed by event id. Consumers
// never see raw insertion order; every query returns a sorted or filtered
// view built on demand.
//
// Not safe for concurrent writers; the expected caller is a single
// interactive loop.
type Scheduler struct {
	events map[string]*event.Event
	// insertion sequence per id, the tiebreak for equal dates
	seq     map[string]int
	nextSeq int

	now func() time.Time
}

func New() *Scheduler {
	return &Scheduler{
		events: make(map[string]*event.Event),
		seq:    make(map[string]int),
		now:    time.Now,
	}
}

// Override the wall-clock used by GetTodaysEvents.
// Returns itself for chaining.
func (s *Scheduler) WithClock(now func() time.Time) *Scheduler {
	if now != nil {
		s.now = now
	}
	return s
}

// Store an event under its id. An id collision silently replaces the
// previous entry and refreshes its position in the date-tie ordering.
func (s *Scheduler) AddEvent(e *event.Event) error {
	if e == nil || e.ID() == "" {
		return fmt.Errorf("Scheduler.AddEvent: %w", ErrNotAnEvent)
	}
	s.events[e.ID()] = e
	s.seq[e.ID()] = s.nextSeq
	s.nextSeq++
	return nil
}

// Remove the entry for id. Reports whether a removal happened; a missing
// id is a normal outcome, not an error.
func (s *Scheduler) RemoveEvent(id string) bool {
	if _, ok := s.events[id]; !ok {
		return false
	}
	delete(s.events, id)
	delete(s.seq, id)
	return true
}

// Look up an event by id, comma-ok style.
func (s *Scheduler) GetEvent(id string) (*event.Event, bool) {
	e, ok := s.events[id]
	return e, ok
}

// Get every owned event sorted ascending by date, ties broken by insertion
// order. Always a fresh slice.
func (s *Scheduler) GetAllEvents() []*event.Event {
	all := make([]*event.Event, 0, len(s.events))
	for _, e := range s.events {
		all = append(all, e)
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Date().Equal(all[j].Date()) {
			return s.seq[all[i].ID()] < s.seq[all[j].ID()]
		}
		return all[i].Date().Before(all[j].Date())
	})
	return all
}

// Get the events falling on the same calendar day as date, in ascending
// date order. A day with no events is an empty slice, not an error.
func (s *Scheduler) GetEventsOnDate(date time.Time) ([]*event.Event, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("Scheduler.GetEventsOnDate: %w", event.ErrDateInvalid)
	}
	matched := make([]*event.Event, 0)
	for _, e := range s.GetAllEvents() {
		if e.IsHappeningOn(date) {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

// Get the events whose title contains term, compared case-insensitively
// with Unicode case folding. An empty term matches every event. Order is
// the GetAllEvents order.
func (s *Scheduler) FindEventsByTitle(term string) []*event.Event {
	fold := cases.Fold()
	needle := fold.String(term)
	matched := make([]*event.Event, 0)
	for _, e := range s.GetAllEvents() {
		if strings.Contains(fold.String(e.Title()), needle) {
			matched = append(matched, e)
		}
	}
	return matched
}

// Get the number of owned events
func (s *Scheduler) GetTotalEvents() int {
	return len(s.events)
}

// Get the events falling on the current calendar day. Depends on the
// wall-clock, see WithClock.
func (s *Scheduler) GetTodaysEvents() []*event.Event {
	events, err := s.GetEventsOnDate(s.now())
	if err != nil {
		// the clock never returns a zero time
		return []*event.Event{}
	}
	return events
}

// Get every attendee name across all events, deduplicated, in first-seen
// order walking events in ascending-date order.
func (s *Scheduler) GetAllAttendees() []string {
	seen := make(map[string]struct{})
	names := make([]string, 0)
	for _, e := range s.GetAllEvents() {
		for _, name := range e.Attendees() {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	return names
}
