package event

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Validation errors returned by the constructor and the mutators. Callers
// can match them with errors.Is regardless of the wrapping context.
var (
	ErrTitleEmpty    = errors.New("title must not be empty or whitespace-only")
	ErrDateInvalid   = errors.New("date must be a valid, non-zero date")
	ErrAttendeeEmpty = errors.New("attendee name must not be empty or whitespace-only")
)

// One scheduled occurrence: a title, a date and a set of attendee names.
//
// All fields are unexported; mutation only goes through the validated
// setters, so a held *Event never violates its invariants. The id is
// assigned once at construction and never changes.
type Event struct {
	id        string
	title     string
	date      time.Time
	attendees []string

	now func() time.Time
}

// Create a new Event with a fresh unique id. The title is stored trimmed;
// initial attendees go through the same validation and dedup as
// AddAttendee. Nothing is constructed when any argument is invalid.
func New(title string, date time.Time, attendees ...string) (*Event, error) {
	e := &Event{
		id:  uuid.NewString(),
		now: time.Now,
	}
	if err := e.SetTitle(title); err != nil {
		return nil, fmt.Errorf("event.New: %w", err)
	}
	if err := e.SetDate(date); err != nil {
		return nil, fmt.Errorf("event.New: %w", err)
	}
	for _, attendee := range attendees {
		if err := e.AddAttendee(attendee); err != nil {
			return nil, fmt.Errorf("event.New: %w", err)
		}
	}
	return e, nil
}

// Override the wall-clock used by IsHappeningToday and Details.
// Returns itself for chaining.
func (e *Event) WithClock(now func() time.Time) *Event {
	if now != nil {
		e.now = now
	}
	return e
}

// Get the event id
func (e *Event) ID() string {
	return e.id
}

// Get the event title
func (e *Event) Title() string {
	return e.title
}

// Get the event date
func (e *Event) Date() time.Time {
	return e.date
}

// Get a snapshot of the attendee names in first-insertion order. The
// returned slice is a copy; mutating it does not touch the event.
func (e *Event) Attendees() []string {
	attendees := make([]string, len(e.attendees))
	copy(attendees, e.attendees)
	return attendees
}

// Set the event title. The stored value is the trimmed string.
func (e *Event) SetTitle(title string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return fmt.Errorf("Event.SetTitle: %w", ErrTitleEmpty)
	}
	e.title = trimmed
	return nil
}

// Set the event date
func (e *Event) SetDate(date time.Time) error {
	if date.IsZero() {
		return fmt.Errorf("Event.SetDate: %w", ErrDateInvalid)
	}
	e.date = date
	return nil
}

// Add one attendee. Duplicate names are a silent no-op, so the attendee
// list behaves as a set with first-insertion iteration order. There is no
// removal operation.
func (e *Event) AddAttendee(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("Event.AddAttendee: %w", ErrAttendeeEmpty)
	}
	for _, existing := range e.attendees {
		if existing == trimmed {
			return nil
		}
	}
	e.attendees = append(e.attendees, trimmed)
	return nil
}

// Whether the event falls on the same calendar day as t, compared by date
// components in t's location.
func (e *Event) IsHappeningOn(t time.Time) bool {
	y1, m1, d1 := e.date.In(t.Location()).Date()
	y2, m2, d2 := t.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Whether the event falls on the current calendar day. Depends on the
// wall-clock, see WithClock.
func (e *Event) IsHappeningToday() bool {
	return e.IsHappeningOn(e.now())
}
