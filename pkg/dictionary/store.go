package dictionary

// Store is an append-only, ordered list of entries. The index an entry gets
// from Append never changes, and duplicate words are kept as separate entries.
//
// A Store is not safe for concurrent use; it is meant to have one owner.
type Store struct {
	entries []Entry
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{}
}

// Size returns the number of entries in the store
func (s *Store) Size() int {
	return len(s.entries)
}

// Append adds an entry for word and definition and returns its index.
// No validation is done; empty strings are stored as given.
func (s *Store) Append(word, definition string) int {
	s.entries = append(s.entries, Entry{Word: word, Definition: definition})
	return len(s.entries) - 1
}

// EntryAt returns the entry at index i. The second result is false when i
// is out of range.
func (s *Store) EntryAt(i int) (Entry, bool) {
	if i < 0 || i >= len(s.entries) {
		return Entry{}, false
	}
	return s.entries[i], true
}

// WordAt returns the word at index i, or false when i is out of range.
func (s *Store) WordAt(i int) (string, bool) {
	e, ok := s.EntryAt(i)
	return e.Word, ok
}

// DefinitionAt returns the definition at index i, or false when i is out of range.
func (s *Store) DefinitionAt(i int) (string, bool) {
	e, ok := s.EntryAt(i)
	return e.Definition, ok
}

// Find returns the index of the first entry at or after start whose word
// matches word (see Matches), or NotFound. A start outside [0, Size())
// yields NotFound.
//
// Every occurrence of a word can be visited by calling Find again with the
// previous result plus one until it returns NotFound.
func (s *Store) Find(word string, start int) int {
	if start < 0 {
		return NotFound
	}
	for i := start; i < len(s.entries); i++ {
		if Matches(word, s.entries[i].Word) {
			return i
		}
	}
	return NotFound
}

// FindFirst is Find starting at index 0.
func (s *Store) FindFirst(word string) int {
	return s.Find(word, 0)
}

// FindAll returns the indices of every entry matching word, in ascending order.
func (s *Store) FindAll(word string) []int {
	var result []int
	for i := s.Find(word, 0); i != NotFound; i = s.Find(word, i+1) {
		result = append(result, i)
	}
	return result
}

// Count returns the number of entries matching word
func (s *Store) Count(word string) int {
	count := 0
	for i := s.Find(word, 0); i != NotFound; i = s.Find(word, i+1) {
		count++
	}
	return count
}
