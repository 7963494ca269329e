package dictionary

import "strings"

// NotFound is returned by the finders when no entry matches.
const NotFound = -1

// Wildcard marks a search word as a prefix match when it is the last character.
const Wildcard = '*'

// Entry is a single word and its definition. Entries are stored by value,
// so nothing handed out by a Store can alter what the Store holds.
type Entry struct {
	Word       string
	Definition string
}

// IsWildcard reports whether word ends with the wildcard marker.
func IsWildcard(word string) bool {
	return len(word) > 0 && word[len(word)-1] == Wildcard
}

// Matches reports whether candidate satisfies the search word. A search word
// ending in '*' matches every candidate that starts with the rest of it;
// any other search word must equal candidate byte for byte.
func Matches(word, candidate string) bool {
	if IsWildcard(word) {
		return strings.HasPrefix(candidate, word[:len(word)-1])
	}
	return word == candidate
}
