package schema

import (
	"errors"
	"fmt"
)

// ConfigType represents the expected type of a config value
type ConfigType string

const (
	TypeString ConfigType = "string"
	TypeBool   ConfigType = "bool"
)

var (
	// ErrUnknownType is returned for a type tag other than "string" or "bool"
	ErrUnknownType = errors.New("unknown type")

	// ErrMissingSchema is returned when the document has no "schema" field
	ErrMissingSchema = errors.New("missing required field 'schema'")
)

// ParseConfigType maps a document tag to a ConfigType. Tags are case-sensitive.
func ParseConfigType(tag string) (ConfigType, error) {
	switch ConfigType(tag) {
	case TypeString, TypeBool:
		return ConfigType(tag), nil
	}
	return "", fmt.Errorf("%w '%s'", ErrUnknownType, tag)
}

// Schema maps each allowed config key to its expected type
type Schema struct {
	Config map[string]ConfigType
}

// Lookup returns the declared type for key
func (s Schema) Lookup(key string) (ConfigType, bool) {
	t, ok := s.Config[key]
	return t, ok
}

// FormatError is returned when a schema source cannot be read, is not
// well-formed, or declares an unknown type.
type FormatError struct {
	Path string
	Err  error
}

func (e *FormatError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid schema: %v", e.Err)
	}
	return fmt.Sprintf("invalid schema %s: %v", e.Path, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
