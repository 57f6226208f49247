package event_test

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"agenda/src-cli/event"
)

func TestEventConstruction(t *testing.T) {
	date := time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC)

	// case: valid construction stores the trimmed title
	func() {
		e, err := event.New("  Team Meeting  ", date)
		if err != nil {
			t.Error(err)
			return
		}
		if e.Title() != "Team Meeting" {
			t.Error("title should be stored trimmed, got", e.Title())
		}
		if e.ID() == "" {
			t.Error("id should be assigned at construction")
		}
		if !e.Date().Equal(date) {
			t.Error("date mismatch", e.Date())
		}
	}()

	// case: two events never share an id
	func() {
		a, err := event.New("A", date)
		if err != nil {
			t.Error(err)
		}
		b, err := event.New("A", date)
		if err != nil {
			t.Error(err)
		}
		if a.ID() == b.ID() {
			t.Error("ids must be unique per construction")
		}
	}()

	// case: empty and whitespace-only titles are rejected
	func() {
		for _, title := range []string{"", "   ", "\t\n"} {
			if _, err := event.New(title, date); !errors.Is(err, event.ErrTitleEmpty) {
				t.Errorf("title %q: want ErrTitleEmpty, got %v", title, err)
			}
		}
	}()

	// case: a zero date is rejected
	func() {
		if _, err := event.New("Standup", time.Time{}); !errors.Is(err, event.ErrDateInvalid) {
			t.Error("want ErrDateInvalid, got", err)
		}
	}()

	// case: initial attendees are deduplicated in first-seen order
	func() {
		e, err := event.New("Standup", date, "Alice", "Alice", "Bob")
		if err != nil {
			t.Error(err)
			return
		}
		if !reflect.DeepEqual(e.Attendees(), []string{"Alice", "Bob"}) {
			t.Error("unexpected attendees", e.Attendees())
		}
	}()

	// case: an empty initial attendee fails the whole construction
	func() {
		if _, err := event.New("Standup", date, "Alice", "  "); !errors.Is(err, event.ErrAttendeeEmpty) {
			t.Error("want ErrAttendeeEmpty, got", err)
		}
	}()
}

func TestEventMutators(t *testing.T) {
	date := time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC)
	e, err := event.New("Planning", date)
	if err != nil {
		t.Fatal(err)
	}

	// case: a rejected title leaves the stored title untouched
	func() {
		if err := e.SetTitle("   "); !errors.Is(err, event.ErrTitleEmpty) {
			t.Error("want ErrTitleEmpty, got", err)
		}
		if e.Title() != "Planning" {
			t.Error("failed setter must not mutate, got", e.Title())
		}
	}()

	// case: a rejected date leaves the stored date untouched
	func() {
		if err := e.SetDate(time.Time{}); !errors.Is(err, event.ErrDateInvalid) {
			t.Error("want ErrDateInvalid, got", err)
		}
		if !e.Date().Equal(date) {
			t.Error("failed setter must not mutate, got", e.Date())
		}
	}()

	// case: valid setters replace the values
	func() {
		if err := e.SetTitle("  Sprint Planning "); err != nil {
			t.Error(err)
		}
		if e.Title() != "Sprint Planning" {
			t.Error("unexpected title", e.Title())
		}
		newDate := date.AddDate(0, 0, 7)
		if err := e.SetDate(newDate); err != nil {
			t.Error(err)
		}
		if !e.Date().Equal(newDate) {
			t.Error("unexpected date", e.Date())
		}
	}()
}

func TestEventAttendees(t *testing.T) {
	date := time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC)
	e, err := event.New("Retro", date)
	if err != nil {
		t.Fatal(err)
	}

	// case: names are trimmed and duplicates collapse silently
	func() {
		if err := e.AddAttendee("  Alice "); err != nil {
			t.Error(err)
		}
		if err := e.AddAttendee("Alice"); err != nil {
			t.Error(err)
		}
		if err := e.AddAttendee("Bob"); err != nil {
			t.Error(err)
		}
		if !reflect.DeepEqual(e.Attendees(), []string{"Alice", "Bob"}) {
			t.Error("unexpected attendees", e.Attendees())
		}
	}()

	// case: empty names are rejected
	func() {
		if err := e.AddAttendee(" "); !errors.Is(err, event.ErrAttendeeEmpty) {
			t.Error("want ErrAttendeeEmpty, got", err)
		}
	}()

	// case: the returned slice is a snapshot, not a live view
	func() {
		snapshot := e.Attendees()
		snapshot[0] = "Mallory"
		if e.Attendees()[0] != "Alice" {
			t.Error("mutating the snapshot must not touch the event")
		}
	}()
}

func TestEventIsHappening(t *testing.T) {
	date := time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC)
	e, err := event.New("Demo Day", date)
	if err != nil {
		t.Fatal(err)
	}

	// case: same calendar day matches regardless of time-of-day
	func() {
		if !e.IsHappeningOn(time.Date(2026, time.March, 10, 23, 59, 0, 0, time.UTC)) {
			t.Error("same day should match")
		}
	}()

	// case: the next day does not match
	func() {
		if e.IsHappeningOn(time.Date(2026, time.March, 11, 0, 0, 0, 0, time.UTC)) {
			t.Error("next day should not match")
		}
	}()

	// case: IsHappeningToday follows the injected clock
	func() {
		e.WithClock(func() time.Time {
			return time.Date(2026, time.March, 10, 18, 0, 0, 0, time.UTC)
		})
		if !e.IsHappeningToday() {
			t.Error("should be happening today under the injected clock")
		}
		e.WithClock(func() time.Time {
			return time.Date(2026, time.March, 11, 18, 0, 0, 0, time.UTC)
		})
		if e.IsHappeningToday() {
			t.Error("should not be happening today under the injected clock")
		}
	}()
}

func TestEventDetails(t *testing.T) {
	date := time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC)
	e, err := event.New("Demo Day", date, "Alice")
	if err != nil {
		t.Fatal(err)
	}
	e.WithClock(func() time.Time {
		return time.Date(2026, time.March, 10, 18, 0, 0, 0, time.UTC)
	})

	details := e.Details()
	if details.ID != e.ID() || details.Title != "Demo Day" || !details.Date.Equal(date) {
		t.Error("details should mirror the event", details)
	}
	if !details.IsToday {
		t.Error("IsToday should be computed from the injected clock")
	}

	// case: the snapshot is isolated from the event
	details.Attendees[0] = "Mallory"
	if e.Attendees()[0] != "Alice" {
		t.Error("mutating the details must not touch the event")
	}
}
