package config

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an explicitly requested configuration file does not exist.
	ErrNotFound = errors.New("configuration file not found")
	// ErrUnsupportedFormat is returned for formats other than JSON and YAML.
	ErrUnsupportedFormat = errors.New("unsupported configuration format")
	// ErrWrite wraps failures writing a configuration file.
	ErrWrite = errors.New("failed to write configuration file")
)

// ParseError reports a configuration file that is not a flat string to string mapping.
type ParseError struct {
	Path   string
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid %s configuration: %v", e.Format, e.Err)
	}
	return fmt.Sprintf("invalid %s configuration in %s: %v", e.Format, e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
