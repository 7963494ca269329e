package config

import (
	"fmt"
	"sync"
)

const (
	// SectionIDLimits is the identifier for the loading limits section
	SectionIDLimits = "limits"

	defaultMaxWord       = 64
	defaultMaxDefinition = 20000
)

// LimitsSection bounds the size of loaded headwords and definitions.
type LimitsSection struct {
	MaxWord       int
	MaxDefinition int
	mu            sync.RWMutex
}

// NewLimitsSection creates a limits section with default settings.
func NewLimitsSection() *LimitsSection {
	s := &LimitsSection{}
	s.Reset()
	return s
}

// ID returns the section identifier.
func (s *LimitsSection) ID() string {
	return SectionIDLimits
}

// Title returns the section title.
func (s *LimitsSection) Title() string {
	return "Loading Limits"
}

// Description returns the section description.
func (s *LimitsSection) Description() string {
	return "Headwords this long or longer are skipped; definitions are cut before reaching max_definition."
}

// Data returns the current configuration data.
func (s *LimitsSection) Data() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]interface{}{
		"max_word":       s.MaxWord,
		"max_definition": s.MaxDefinition,
	}
}

// SetData updates the configuration from the provided data.
func (s *LimitsSection) SetData(data map[string]interface{}) error {
	if data == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for key, value := range data {
		var target *int
		switch key {
		case "max_word":
			target = &s.MaxWord
		case "max_definition":
			target = &s.MaxDefinition
		default:
			continue
		}

		v, err := intValue(key, value)
		if err != nil {
			return err
		}
		*target = v
	}
	return nil
}

// Validate requires both limits to be positive.
func (s *LimitsSection) Validate() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.MaxWord <= 0 {
		return fmt.Errorf("max_word must be positive, got %d", s.MaxWord)
	}
	if s.MaxDefinition <= 0 {
		return fmt.Errorf("max_definition must be positive, got %d", s.MaxDefinition)
	}
	return nil
}

// Reset restores the defaults.
func (s *LimitsSection) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.MaxWord = defaultMaxWord
	s.MaxDefinition = defaultMaxDefinition
}

// Get returns the word and definition limits.
func (s *LimitsSection) Get() (maxWord, maxDefinition int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.MaxWord, s.MaxDefinition
}
