package utils_test

import (
	"testing"

	"agenda/src-cli/utils"
)

func TestCleanupString(t *testing.T) {
	for input, want := range map[string]string{
		"  team   meeting ": "Team Meeting",
		"client demo.":      "Client Demo",
		"Alice":             "Alice",
		"   ":               "",
	} {
		if got := utils.CleanupString(input); got != want {
			t.Errorf("CleanupString(%q) = %q, want %q", input, got, want)
		}
	}
}
