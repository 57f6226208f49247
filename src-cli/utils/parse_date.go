package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/olebedev/when"
)

// Explicit layouts accepted when the natural-language parser finds
// nothing in the input.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Turn raw user input into a date. Explicit layouts are tried first in
// base's location so that "2026-09-01 10:30" never gets partially eaten
// by a natural-language rule; the natural-language parser ("tomorrow
// 2pm", "next friday") is the fallback. Anything unparseable is a
// validation error.
func ParseDate(parser *when.Parser, raw string, base time.Time) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("ParseDate: date input is empty")
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.ParseInLocation(layout, raw, base.Location()); err == nil {
			return parsed, nil
		}
	}

	if parser != nil {
		// a nil result with a nil error means "no rule matched"
		if result, err := parser.Parse(raw, base); err == nil && result != nil {
			return result.Time, nil
		}
	}

	return time.Time{}, fmt.Errorf("ParseDate: can't understand %q as a date", raw)
}
