package validator

import "fmt"

// Reason identifies why a config entry failed validation
type Reason int

const (
	// ReasonUnexpectedKey means the key is not declared in the schema
	ReasonUnexpectedKey Reason = iota + 1
	// ReasonNotBoolean means a bool-typed key holds something other than "true" or "false"
	ReasonNotBoolean
)

// ValidationError describes the first config entry that failed validation
type ValidationError struct {
	Key    string // The config key (e.g., "net.ipv4.ip_forward")
	Value  string // The offending value
	Reason Reason
}

func (e *ValidationError) Error() string {
	switch e.Reason {
	case ReasonUnexpectedKey:
		return fmt.Sprintf("Validation error: unexpected key '%s'", e.Key)
	case ReasonNotBoolean:
		return fmt.Sprintf("Validation error: '%s' should be a boolean", e.Key)
	}
	return fmt.Sprintf("Validation error: '%s' is invalid", e.Key)
}
