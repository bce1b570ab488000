package chat

import "strings"

// Command identifies a side-command collaborator.
type Command string

const (
	CommandWeather Command = "weather"
	CommandSearch  Command = "search"
)

var commandPrefixes = []struct {
	prefix string
	cmd    Command
}{
	{"weather in ", CommandWeather},
	{"search for ", CommandSearch},
}

// ParseCommand matches a raw prompt against the recognized command
// prefixes. The match is a case-insensitive prefix check on the whole
// prompt, not a parser; the trimmed remainder is the argument, passed
// verbatim. A prompt that is only a prefix with no argument still
// dispatches, so the collaborator can answer with a usage hint.
func ParseCommand(prompt string) (Command, string, bool) {
	lower := strings.ToLower(prompt)
	for _, p := range commandPrefixes {
		if strings.HasPrefix(lower, p.prefix) {
			arg := strings.TrimSpace(prompt[len(p.prefix):])
			return p.cmd, arg, true
		}
	}
	return "", "", false
}
