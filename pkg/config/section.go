package config

import "fmt"

// Section is one named group of settings in the configuration file.
type Section interface {
	// ID is the key of the section in the file
	ID() string

	// Title is a short human readable name
	Title() string

	// Description explains what the section configures
	Description() string

	// Data returns the section's settings keyed as in the file
	Data() map[string]interface{}

	// SetData applies settings read from the file. Unknown keys are ignored.
	SetData(data map[string]interface{}) error

	// Validate checks the current settings
	Validate() error

	// Reset restores the defaults
	Reset()
}

// The helpers below convert values decoded by yaml.v3, which produces int
// for integers and float64 only for numbers with a fraction or exponent.

func stringValue(key string, value interface{}) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("invalid value type for %s: expected string, got %T", key, value)
	}
	return s, nil
}

func intValue(key string, value interface{}) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("invalid value for %s: %v is not a whole number", key, v)
		}
		return int(v), nil
	default:
		return 0, fmt.Errorf("invalid value type for %s: expected integer, got %T", key, value)
	}
}
