package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"sysctlcheck/internal/config"
	"sysctlcheck/internal/schema"
	"sysctlcheck/internal/validator"

	"github.com/sirupsen/logrus"
)

const (
	configFile     = "sysctl.conf"
	schemaFile     = "schema.json"
	schemaFileYAML = "schema.yaml"
)

// Exit codes
const (
	exitOK          = 0
	exitConfigError = 1
	exitSchemaError = 3
)

func main() {
	exitCode := run(".", os.Stdout, os.Stderr)
	os.Exit(exitCode)
}

func newLogger(out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.InfoLevel)
	return log
}

// loadSchema reads dir/schema.json, falling back to dir/schema.yaml.
// It returns the path it tried last so callers can report it.
func loadSchema(dir string) (schema.Schema, string, error) {
	var (
		s    schema.Schema
		path string
		err  error
	)
	for _, name := range []string{schemaFile, schemaFileYAML} {
		path = filepath.Join(dir, name)
		s, err = schema.LoadSchemaFromPath(path)
		if !errors.Is(err, fs.ErrNotExist) {
			break
		}
	}
	return s, path, err
}

// run loads dir/sysctl.conf and validates it against the schema in dir.
// It returns an exit code (0 for success, non-zero for failure).
// A validation failure is reported on stderr but still exits 0.
// When neither schema.json nor schema.yaml exists no validation is
// done and the parsed config is printed as-is.
func run(dir string, stdout, stderr io.Writer) int {
	log := newLogger(stderr)

	configPath := filepath.Join(dir, configFile)
	cfg, err := config.NewLoader(log).LoadFile(configPath)
	if err != nil {
		log.WithError(err).WithField("path", configPath).Error("cannot load configuration")
		return exitConfigError
	}

	s, schemaPath, err := loadSchema(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.WithField("dir", dir).Debug("no schema found, skipping validation")
			fmt.Fprintln(stdout, cfg.Debug())
			return exitOK
		}
		log.WithError(err).WithField("path", schemaPath).Error("cannot load schema")
		return exitSchemaError
	}

	if err := validator.Validate(s, cfg); err != nil {
		fmt.Fprintf(stderr, "Configuration validation failed: %v\n", err)
		return exitOK
	}

	fmt.Fprintf(stdout, "Configuration is valid:\n%s\n", cfg.Debug())
	return exitOK
}
