package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Config holds the settings parsed from a sysctl-style file
type Config struct {
	settings map[string]string
}

// New returns an empty Config
func New() Config {
	return Config{settings: make(map[string]string)}
}

// Set stores a value, replacing any earlier value for the same key
func (c *Config) Set(key, value string) {
	if c.settings == nil {
		c.settings = make(map[string]string)
	}
	c.settings[key] = value
}

// Get returns the value for key and whether it was present
func (c Config) Get(key string) (string, bool) {
	v, ok := c.settings[key]
	return v, ok
}

// Len returns the number of settings
func (c Config) Len() int {
	return len(c.settings)
}

// Keys returns all keys in sorted order
func (c Config) Keys() []string {
	keys := make([]string, 0, len(c.settings))
	for k := range c.settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Debug renders the config as a multi-line, human-readable dump.
// Keys are sorted so the output is stable between runs.
func (c Config) Debug() string {
	var b strings.Builder
	b.WriteString("SysctlConfig {\n")
	if len(c.settings) == 0 {
		b.WriteString("    settings: {},\n")
	} else {
		b.WriteString("    settings: {\n")
		for _, k := range c.Keys() {
			fmt.Fprintf(&b, "        %s: %s,\n", strconv.Quote(k), strconv.Quote(c.settings[k]))
		}
		b.WriteString("    },\n")
	}
	b.WriteString("}")
	return b.String()
}

// String implements fmt.Stringer
func (c Config) String() string {
	return c.Debug()
}
