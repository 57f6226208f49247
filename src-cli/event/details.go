package event

import "time"

// A read-only projection of an Event, safe to hand to display code. The
// IsToday field is computed at the moment Details is called.
type Details struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Date      time.Time `json:"date"`
	Attendees []string  `json:"attendees"`
	IsToday   bool      `json:"isToday"`
}

// Get a display snapshot of the event
func (e *Event) Details() Details {
	return Details{
		ID:        e.id,
		Title:     e.title,
		Date:      e.date,
		Attendees: e.Attendees(),
		IsToday:   e.IsHappeningToday(),
	}
}
