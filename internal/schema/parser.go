package schema

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// schemaFile represents the on-disk document structure
type schemaFile struct {
	Schema map[string]string `json:"schema" yaml:"schema"`
}

// ParseSchema parses JSON content into a Schema
func ParseSchema(content []byte) (Schema, error) {
	var sf schemaFile
	if err := json.Unmarshal(content, &sf); err != nil {
		return Schema{}, &FormatError{Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	return sf.toSchema()
}

// ParseSchemaYAML parses YAML content with the same layout as the JSON form
func ParseSchemaYAML(content []byte) (Schema, error) {
	var sf schemaFile
	if err := yaml.Unmarshal(content, &sf); err != nil {
		return Schema{}, &FormatError{Err: fmt.Errorf("invalid YAML: %w", err)}
	}
	return sf.toSchema()
}

func (sf schemaFile) toSchema() (Schema, error) {
	if sf.Schema == nil {
		return Schema{}, &FormatError{Err: ErrMissingSchema}
	}

	s := Schema{Config: make(map[string]ConfigType, len(sf.Schema))}
	for key, tag := range sf.Schema {
		t, err := ParseConfigType(tag)
		if err != nil {
			return Schema{}, &FormatError{Err: fmt.Errorf("%w for config '%s'", err, key)}
		}
		s.Config[key] = t
	}
	return s, nil
}

// LoadSchemaFromPath reads and parses a schema from the given file path.
// Files ending in .yaml or .yml are parsed as YAML, anything else as JSON.
func LoadSchemaFromPath(path string) (Schema, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Schema{}, &FormatError{Path: path, Err: err}
	}

	parse := ParseSchema
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parse = ParseSchemaYAML
	}

	s, err := parse(content)
	if err != nil {
		var fe *FormatError
		if errors.As(err, &fe) {
			fe.Path = path
		}
		return Schema{}, err
	}
	return s, nil
}
