package dictionary

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newScenarioStore builds the store used by most tests: one word with two
// definitions between two unique words.
func newScenarioStore(t *testing.T) *Store {
	t.Helper()

	s := NewStore()
	require.Equal(t, 0, s.Append("name1", "value1"))
	require.Equal(t, 1, s.Append("name2", "value2.1"))
	require.Equal(t, 2, s.Append("name2", "value2.2"))
	require.Equal(t, 3, s.Append("name3", "value3"))
	return s
}

func TestEmptyStore(t *testing.T) {
	s := NewStore()

	assert.Equal(t, 0, s.Size())
	assert.Equal(t, NotFound, s.Find("", 0))
	assert.Equal(t, NotFound, s.Find("*", 0))
	assert.Equal(t, NotFound, s.Find("", 5000))

	_, ok := s.WordAt(0)
	assert.False(t, ok)
	_, ok = s.DefinitionAt(0)
	assert.False(t, ok)
}

func TestAppendIsIndexMonotonic(t *testing.T) {
	s := NewStore()

	for i := 0; i < 50; i++ {
		before := s.Size()
		idx := s.Append(fmt.Sprintf("%d", i%10), fmt.Sprintf("definition %d", i))
		assert.Equal(t, before, idx)
		assert.Equal(t, before+1, s.Size())
	}
}

func TestAccessorsRoundTrip(t *testing.T) {
	s := NewStore()
	words := []string{"alpha", "", "beta", "alpha", "Γάμμα"}
	for i, w := range words {
		s.Append(w, fmt.Sprintf("def %d", i))
	}

	for i, w := range words {
		word, ok := s.WordAt(i)
		require.True(t, ok)
		assert.Equal(t, w, word)

		def, ok := s.DefinitionAt(i)
		require.True(t, ok)
		assert.Equal(t, fmt.Sprintf("def %d", i), def)

		entry, ok := s.EntryAt(i)
		require.True(t, ok)
		assert.Equal(t, Entry{Word: w, Definition: def}, entry)
	}
}

func TestAccessorsOutOfRange(t *testing.T) {
	s := newScenarioStore(t)

	for _, i := range []int{-1, -100, 4, 5, 1 << 20} {
		word, ok := s.WordAt(i)
		assert.False(t, ok, "WordAt(%d)", i)
		assert.Empty(t, word)

		def, ok := s.DefinitionAt(i)
		assert.False(t, ok, "DefinitionAt(%d)", i)
		assert.Empty(t, def)
	}
}

func TestEntryAtReturnsCopy(t *testing.T) {
	s := newScenarioStore(t)

	e, ok := s.EntryAt(0)
	require.True(t, ok)
	e.Definition = "changed"

	def, _ := s.DefinitionAt(0)
	assert.Equal(t, "value1", def)
}

func TestScenario(t *testing.T) {
	s := newScenarioStore(t)

	idx := s.Find("name2", 0)
	assert.Equal(t, 1, idx)
	def, _ := s.DefinitionAt(idx)
	assert.Equal(t, "value2.1", def)

	idx = s.Find("name2*", idx+1)
	assert.Equal(t, 2, idx)
	def, _ = s.DefinitionAt(idx)
	assert.Equal(t, "value2.2", def)

	assert.Equal(t, NotFound, s.Find("name2", idx+1))
}

func TestFind(t *testing.T) {
	s := newScenarioStore(t)
	s.Append("", "empty word")
	s.Append("name", "bare")
	s.Append("name*", "literal star")

	tests := []struct {
		name  string
		word  string
		start int
		want  int
	}{
		{name: "exact first", word: "name1", start: 0, want: 0},
		{name: "exact duplicate from start", word: "name2", start: 0, want: 1},
		{name: "exact duplicate second", word: "name2", start: 2, want: 2},
		{name: "exact exhausted", word: "name2", start: 3, want: NotFound},
		{name: "exact missing", word: "name4", start: 0, want: NotFound},
		{name: "exact is not prefix", word: "name", start: 0, want: 5},
		{name: "prefix", word: "name*", start: 0, want: 0},
		{name: "prefix from offset", word: "name3*", start: 1, want: 3},
		{name: "prefix includes equal word", word: "name2*", start: 2, want: 2},
		{name: "lone wildcard matches all", word: "*", start: 4, want: 4},
		{name: "empty word matches empty entry", word: "", start: 0, want: 4},
		{name: "empty word after empty entry", word: "", start: 5, want: NotFound},
		{name: "only trailing star is wildcard", word: "n*me1", start: 0, want: NotFound},
		{name: "double star keeps one literal", word: "name**", start: 0, want: 6},
		{name: "case sensitive", word: "NAME1", start: 0, want: NotFound},
		{name: "negative start", word: "name1", start: -1, want: NotFound},
		{name: "start at size", word: "*", start: 7, want: NotFound},
		{name: "start past size", word: "*", start: 100, want: NotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Find(tt.word, tt.start))
		})
	}
}

func TestFindFirst(t *testing.T) {
	s := newScenarioStore(t)

	assert.Equal(t, 1, s.FindFirst("name2"))
	assert.Equal(t, NotFound, s.FindFirst("missing"))
}

func TestEnumerateDuplicates(t *testing.T) {
	s := NewStore()
	for i := 0; i < 10; i++ {
		s.Append(fmt.Sprintf("%d", i), fmt.Sprintf("definition %d", i))
	}
	for i := 10; i < 20; i++ {
		s.Append(fmt.Sprintf("%d", i%10), fmt.Sprintf("definition %d", i))
	}

	for i := 0; i < 10; i++ {
		word := fmt.Sprintf("%d", i)

		first := s.Find(word, 0)
		require.Equal(t, i, first)
		def, _ := s.DefinitionAt(first)
		assert.Equal(t, fmt.Sprintf("definition %d", i), def)

		second := s.Find(word, first+1)
		require.Equal(t, 10+i, second)
		def, _ = s.DefinitionAt(second)
		assert.Equal(t, fmt.Sprintf("definition %d", 10+i), def)

		assert.Equal(t, NotFound, s.Find(word, second+1))
		assert.Equal(t, []int{i, 10 + i}, s.FindAll(word))
		assert.Equal(t, 2, s.Count(word))
	}
}

func TestFindAllAndCount(t *testing.T) {
	s := newScenarioStore(t)

	assert.Equal(t, []int{0, 1, 2, 3}, s.FindAll("*"))
	assert.Equal(t, []int{1, 2}, s.FindAll("name2*"))
	assert.Nil(t, s.FindAll("other"))
	assert.Equal(t, 4, s.Count("name*"))
	assert.Equal(t, 0, s.Count("other"))
}

func TestMatches(t *testing.T) {
	tests := []struct {
		word      string
		candidate string
		want      bool
	}{
		{"abc", "abc", true},
		{"abc", "abcd", false},
		{"abc*", "abcd", true},
		{"abc*", "ab", false},
		{"*", "", true},
		{"*", "anything", true},
		{"", "", true},
		{"", "a", false},
		{"a*c", "abc", false},
	}

	for _, tt := range tests {
		t.Run(tt.word+"/"+tt.candidate, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.word, tt.candidate))
		})
	}

	assert.True(t, IsWildcard("x*"))
	assert.False(t, IsWildcard(""))
	assert.False(t, IsWildcard("*x"))
}
