package utils

// What the help command knows about a registered command.
type CommandInfo struct {
	Name        string
	Usage       string
	Description string
}
