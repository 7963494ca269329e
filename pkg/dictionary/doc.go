// Package dictionary provides an in-memory, append-only store of word and
// definition entries.
//
// Entries are addressed by the index Append returned for them. Lookups that
// can miss report it through a sentinel rather than an error: Find returns
// NotFound and the positional accessors return false as their second result.
//
// Search words ending in '*' match by prefix:
//
//	s := dictionary.NewStore()
//	s.Append("SAKE", "a Japanese fermented liquor")
//	s.Append("SAKER", "a species of falcon")
//
//	for i := s.Find("SAKE*", 0); i != dictionary.NotFound; i = s.Find("SAKE*", i+1) {
//		def, _ := s.DefinitionAt(i)
//		fmt.Println(def)
//	}
//
// FindGlob and GlobAll accept full shell-style patterns for callers that need
// more than a prefix.
package dictionary
