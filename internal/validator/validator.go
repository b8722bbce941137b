package validator

import (
	"sysctlcheck/internal/config"
	"sysctlcheck/internal/schema"
)

// Validate checks every config key against the schema and returns the
// first failure as a *ValidationError. Keys are visited in sorted order.
// Schema keys missing from the config are not an error.
func Validate(s schema.Schema, c config.Config) error {
	for _, key := range c.Keys() {
		value, _ := c.Get(key)

		configType, exists := s.Lookup(key)
		if !exists {
			return &ValidationError{Key: key, Value: value, Reason: ReasonUnexpectedKey}
		}

		switch configType {
		case schema.TypeString:
			// Any value is a string
		case schema.TypeBool:
			if !isBool(value) {
				return &ValidationError{Key: key, Value: value, Reason: ReasonNotBoolean}
			}
		}
	}

	return nil
}

// isBool reports whether value is literally "true" or "false"
func isBool(value string) bool {
	return value == "true" || value == "false"
}
