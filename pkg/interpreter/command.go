package interpreter

import "strings"

// Kind identifies what a command does with its matches.
type Kind int

const (
	// KindHelp shows the command list; any unrecognised input is help
	KindHelp Kind = iota
	// KindCount prints how many entries match: #word or #prefix*
	KindCount
	// KindWords prints each matching word: =word or =prefix*
	KindWords
	// KindDefinitions prints each matching definition: ?word or ?prefix*
	KindDefinitions
	// KindGlob prints each word matching a glob pattern: ~pattern
	KindGlob
	// KindQuit ends the session
	KindQuit
)

// Command is one parsed input line
type Command struct {
	Kind Kind
	Word string
}

var prefixes = map[byte]Kind{
	'#': KindCount,
	'=': KindWords,
	'?': KindDefinitions,
	'~': KindGlob,
}

// Parse parses an input line. The word is everything after the command
// character, kept verbatim: words may contain spaces and may be empty.
// The second result is false for lines that are not commands, which the
// interpreter answers with the command list.
func Parse(line string) (Command, bool) {
	line = strings.TrimRight(line, "\r\n")

	switch strings.TrimSpace(line) {
	case "quit", "exit":
		return Command{Kind: KindQuit}, true
	}

	if line == "" {
		return Command{Kind: KindHelp}, false
	}

	kind, ok := prefixes[line[0]]
	if !ok {
		return Command{Kind: KindHelp}, false
	}
	return Command{Kind: kind, Word: line[1:]}, true
}
