package dictionary

import (
	"errors"
	"fmt"

	"github.com/gobwas/glob"
)

// ErrInvalidPattern is returned when a glob pattern cannot be compiled.
var ErrInvalidPattern = errors.New("invalid glob pattern")

// CompileGlob compiles a shell-style pattern ("*", "?", "[a-z]", "{a,b}").
func CompileGlob(pattern string) (glob.Glob, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidPattern, pattern, err)
	}
	return g, nil
}

// FindGlob returns the index of the first entry at or after start whose word
// matches the glob pattern, or NotFound.
//
// Unlike Find, every glob metacharacter is significant here.
func (s *Store) FindGlob(pattern string, start int) (int, error) {
	g, err := CompileGlob(pattern)
	if err != nil {
		return NotFound, err
	}
	return s.findCompiled(g, start), nil
}

// GlobAll returns the indices of every entry whose word matches pattern.
func (s *Store) GlobAll(pattern string) ([]int, error) {
	g, err := CompileGlob(pattern)
	if err != nil {
		return nil, err
	}

	var result []int
	for i := s.findCompiled(g, 0); i != NotFound; i = s.findCompiled(g, i+1) {
		result = append(result, i)
	}
	return result, nil
}

func (s *Store) findCompiled(g glob.Glob, start int) int {
	if start < 0 {
		return NotFound
	}
	for i := start; i < len(s.entries); i++ {
		if g.Match(s.entries[i].Word) {
			return i
		}
	}
	return NotFound
}
