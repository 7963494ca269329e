package config

import (
	"fmt"
	"strings"
	"sync"
)

const (
	// SectionIDInterface is the identifier for the interactive settings section
	SectionIDInterface = "interface"

	defaultPrompt   = "> "
	defaultLogLevel = "info"
)

// InterfaceSection configures the interpreter and logging.
type InterfaceSection struct {
	Prompt   string
	Styled   bool
	LogLevel string
	mu       sync.RWMutex
}

// NewInterfaceSection creates an interface section with default settings.
func NewInterfaceSection() *InterfaceSection {
	s := &InterfaceSection{}
	s.Reset()
	return s
}

// ID returns the section identifier.
func (s *InterfaceSection) ID() string {
	return SectionIDInterface
}

// Title returns the section title.
func (s *InterfaceSection) Title() string {
	return "Interface"
}

// Description returns the section description.
func (s *InterfaceSection) Description() string {
	return "Interpreter prompt, colored output and log level."
}

// Data returns the current configuration data.
func (s *InterfaceSection) Data() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]interface{}{
		"prompt":    s.Prompt,
		"styled":    s.Styled,
		"log_level": s.LogLevel,
	}
}

// SetData updates the configuration from the provided data.
func (s *InterfaceSection) SetData(data map[string]interface{}) error {
	if data == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for key, value := range data {
		switch key {
		case "prompt":
			v, err := stringValue(key, value)
			if err != nil {
				return err
			}
			s.Prompt = v
		case "styled":
			enabled, ok := value.(bool)
			if !ok {
				return fmt.Errorf("invalid value type for styled: expected bool, got %T", value)
			}
			s.Styled = enabled
		case "log_level":
			v, err := stringValue(key, value)
			if err != nil {
				return err
			}
			s.LogLevel = v
		}
	}
	return nil
}

// Validate checks the log level name.
func (s *InterfaceSection) Validate() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch strings.ToLower(s.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return fmt.Errorf("unknown log_level %q", s.LogLevel)
	}
}

// Reset restores the defaults.
func (s *InterfaceSection) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Prompt = defaultPrompt
	s.Styled = false
	s.LogLevel = defaultLogLevel
}

// GetPrompt returns the interpreter prompt.
func (s *InterfaceSection) GetPrompt() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Prompt
}

// IsStyled reports whether output should be colored.
func (s *InterfaceSection) IsStyled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Styled
}

// GetLogLevel returns the configured log level name.
func (s *InterfaceSection) GetLogLevel() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.LogLevel
}
