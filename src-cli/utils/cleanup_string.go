package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize user-typed titles and attendee names: collapse whitespace
// runs, uppercase the first letter of each word, drop a trailing period.
func CleanupString(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	s = cases.Title(language.English, cases.NoLower).String(s)
	s = strings.TrimSuffix(s, ".")
	return s
}
