package config

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// IOError is returned when a config source cannot be opened or read
type IOError struct {
	Path string // empty when reading from a bare io.Reader
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("failed to read config: %v", e.Err)
	}
	return fmt.Sprintf("failed to read config %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ParseLine extracts a key/value pair from a single line.
// Blank lines, comments (# or ;) and lines without a key before the
// first "=" are reported with ok == false.
func ParseLine(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
		return "", "", false
	}

	// Split on first "=" only - values can contain "="
	k, v, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}

	key = strings.TrimSpace(k)
	if key == "" {
		return "", "", false
	}
	return key, strings.TrimSpace(v), true
}

// Loader reads sysctl-style config sources
type Loader struct {
	log logrus.FieldLogger
}

// NewLoader returns a Loader that reports skipped lines to log.
// A nil logger falls back to the standard logrus logger.
func NewLoader(log logrus.FieldLogger) *Loader {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Loader{log: log}
}

// Load parses every line of r into a Config. Later keys overwrite earlier ones.
func (l *Loader) Load(r io.Reader) (Config, error) {
	return l.load(r, "")
}

// LoadFile opens path and parses it into a Config
func (l *Loader) LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, &IOError{Path: path, Err: err}
	}
	defer f.Close()

	return l.load(f, path)
}

func (l *Loader) load(r io.Reader, path string) (Config, error) {
	cfg := New()
	log := l.log
	if path != "" {
		log = log.WithField("path", path)
	}

	scanner := bufio.NewScanner(r)
	// Lines are not length-limited
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		key, value, ok := ParseLine(scanner.Text())
		if !ok {
			log.WithField("line", lineNo).Debug("skipping line")
			continue
		}
		if _, dup := cfg.Get(key); dup {
			log.WithFields(logrus.Fields{
				"line": lineNo,
				"key":  key,
			}).Debug("overriding earlier value")
		}
		cfg.Set(key, value)
	}
	if err := scanner.Err(); err != nil {
		return Config{}, &IOError{Path: path, Err: err}
	}

	log.WithField("keys", cfg.Len()).Debug("config loaded")
	return cfg, nil
}

// Load parses r using the standard logrus logger
func Load(r io.Reader) (Config, error) {
	return NewLoader(nil).Load(r)
}

// LoadFile parses the file at path using the standard logrus logger
func LoadFile(path string) (Config, error) {
	return NewLoader(nil).LoadFile(path)
}
