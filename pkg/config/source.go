package config

import (
	"fmt"
	"strings"
	"sync"
)

const (
	// SectionIDSource is the identifier for the dictionary source section
	SectionIDSource = "source"

	defaultSourceLocation = "http://www.gutenberg.org/cache/epub/38700/pg38700.txt"
	defaultFirstWord      = "SAB"
	defaultLastWord       = "SYZYGY"
)

// SourceSection says where the dictionary text comes from and which slice
// of it to load.
type SourceSection struct {
	Location  string
	FirstWord string
	LastWord  string
	mu        sync.RWMutex
}

// NewSourceSection creates a source section with default settings.
func NewSourceSection() *SourceSection {
	s := &SourceSection{}
	s.Reset()
	return s
}

// ID returns the section identifier.
func (s *SourceSection) ID() string {
	return SectionIDSource
}

// Title returns the section title.
func (s *SourceSection) Title() string {
	return "Dictionary Source"
}

// Description returns the section description.
func (s *SourceSection) Description() string {
	return "Location of the Chambers dictionary text (URL or file) and the first and last words to load."
}

// Data returns the current configuration data.
func (s *SourceSection) Data() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]interface{}{
		"location":   s.Location,
		"first_word": s.FirstWord,
		"last_word":  s.LastWord,
	}
}

// SetData updates the configuration from the provided data.
func (s *SourceSection) SetData(data map[string]interface{}) error {
	if data == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for key, value := range data {
		var target *string
		switch key {
		case "location":
			target = &s.Location
		case "first_word":
			target = &s.FirstWord
		case "last_word":
			target = &s.LastWord
		default:
			continue
		}

		v, err := stringValue(key, value)
		if err != nil {
			return err
		}
		*target = v
	}
	return nil
}

// Validate requires a location.
func (s *SourceSection) Validate() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if strings.TrimSpace(s.Location) == "" {
		return fmt.Errorf("location cannot be empty")
	}
	return nil
}

// Reset restores the defaults.
func (s *SourceSection) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Location = defaultSourceLocation
	s.FirstWord = defaultFirstWord
	s.LastWord = defaultLastWord
}

// Get returns a consistent snapshot of location, first and last word.
func (s *SourceSection) Get() (location, first, last string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Location, s.FirstWord, s.LastWord
}
